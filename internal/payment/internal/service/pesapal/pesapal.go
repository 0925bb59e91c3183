// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pesapal Pesapal v3 接口，只用到下单、查询和 IPN 需要的部分
package pesapal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ecodeclub/jobmatch/internal/payment/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
)

const (
	statusInvalid   = 0
	statusCompleted = 1
	statusFailed    = 2
	statusReversed  = 3
	// token 有效期是 5 分钟，提前一点刷新
	tokenLeeway = 30 * time.Second
)

var ErrPesapal = errors.New("pesapal 调用失败")

type Config struct {
	BaseURL        string `yaml:"baseURL"`
	ConsumerKey    string `yaml:"consumerKey"`
	ConsumerSecret string `yaml:"consumerSecret"`
	// IPNId 在 pesapal 注册 IPN 地址之后拿到的 notification_id
	IPNId       string `yaml:"ipnId"`
	CallbackURL string `yaml:"callbackURL"`
}

type Client struct {
	cfg    Config
	client *resty.Client

	mu       sync.Mutex
	token    string
	expireAt time.Time

	l *elog.Component
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		client: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(15*time.Second).
			SetHeader("Accept", "application/json").
			ForceContentType("application/json"),
		l: elog.DefaultLogger,
	}
}

func (c *Client) Name() domain.Channel {
	return domain.ChannelPesapal
}

func (c *Client) Initiate(ctx context.Context, p domain.Payment) (domain.Initiation, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return domain.Initiation{}, err
	}
	var res submitOrderResp
	resp, err := c.client.R().SetContext(ctx).
		SetAuthToken(token).
		SetBody(submitOrderReq{
			Id:             p.SN,
			Currency:       p.Currency,
			Amount:         float64(p.Amount) / 100,
			Description:    fmt.Sprintf("jobmatch %s %d days", p.Purpose, p.Days),
			CallbackURL:    c.cfg.CallbackURL,
			NotificationId: c.cfg.IPNId,
			BillingAddress: billingAddress{PhoneNumber: p.Phone},
		}).
		SetResult(&res).
		Post("/api/Transactions/SubmitOrderRequest")
	if err = checkResp(resp, err, res.Error); err != nil {
		return domain.Initiation{}, fmt.Errorf("提交订单失败 sn=%s: %w", p.SN, err)
	}
	if res.OrderTrackingId == "" {
		return domain.Initiation{}, fmt.Errorf("%w: 没有返回 order_tracking_id", ErrPesapal)
	}
	return domain.Initiation{
		ProviderRef: res.OrderTrackingId,
		RedirectURL: res.RedirectURL,
	}, nil
}

func (c *Client) Query(ctx context.Context, p domain.Payment) (domain.Status, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}
	var res transactionStatusResp
	resp, err := c.client.R().SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("orderTrackingId", p.ProviderRef).
		SetResult(&res).
		Get("/api/Transactions/GetTransactionStatus")
	if err = checkResp(resp, err, res.Error); err != nil {
		return "", fmt.Errorf("查询交易状态失败 sn=%s: %w", p.SN, err)
	}
	return toStatus(res.StatusCode), nil
}

func toStatus(code int) domain.Status {
	switch code {
	case statusCompleted:
		return domain.StatusPaidSuccess
	case statusFailed, statusReversed:
		return domain.StatusPaidFailed
	default:
		// statusInvalid 表示用户还没有付款
		return domain.StatusProcessing
	}
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && time.Now().Before(c.expireAt) {
		return c.token, nil
	}
	var res tokenResp
	resp, err := c.client.R().SetContext(ctx).
		SetBody(tokenReq{ConsumerKey: c.cfg.ConsumerKey, ConsumerSecret: c.cfg.ConsumerSecret}).
		SetResult(&res).
		Post("/api/Auth/RequestToken")
	if err = checkResp(resp, err, res.Error); err != nil {
		return "", fmt.Errorf("获取 token 失败: %w", err)
	}
	if res.Token == "" {
		return "", fmt.Errorf("%w: 没有返回 token", ErrPesapal)
	}
	expireAt, er := time.Parse(time.RFC3339Nano, res.ExpiryDate)
	if er != nil {
		c.l.Warn("解析 pesapal token 过期时间失败", elog.FieldErr(er), elog.String("expiryDate", res.ExpiryDate))
		expireAt = time.Now().Add(5 * time.Minute)
	}
	c.token = res.Token
	c.expireAt = expireAt.Add(-tokenLeeway)
	return c.token, nil
}

func checkResp(resp *resty.Response, err error, apiErr *apiError) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPesapal, err)
	}
	if apiErr != nil && (apiErr.Code != "" || apiErr.Message != "") {
		return fmt.Errorf("%w: code=%s message=%s", ErrPesapal, apiErr.Code, apiErr.Message)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: http status=%d body=%s", ErrPesapal, resp.StatusCode(), resp.String())
	}
	return nil
}

type tokenReq struct {
	ConsumerKey    string `json:"consumer_key"`
	ConsumerSecret string `json:"consumer_secret"`
}

type tokenResp struct {
	Token      string    `json:"token"`
	ExpiryDate string    `json:"expiryDate"`
	Error      *apiError `json:"error"`
}

type apiError struct {
	ErrorType string `json:"error_type"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

type submitOrderReq struct {
	Id             string         `json:"id"`
	Currency       string         `json:"currency"`
	Amount         float64        `json:"amount"`
	Description    string         `json:"description"`
	CallbackURL    string         `json:"callback_url"`
	NotificationId string         `json:"notification_id"`
	BillingAddress billingAddress `json:"billing_address"`
}

type billingAddress struct {
	PhoneNumber  string `json:"phone_number,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
}

type submitOrderResp struct {
	OrderTrackingId   string    `json:"order_tracking_id"`
	MerchantReference string    `json:"merchant_reference"`
	RedirectURL       string    `json:"redirect_url"`
	Error             *apiError `json:"error"`
}

type transactionStatusResp struct {
	PaymentMethod            string    `json:"payment_method"`
	Amount                   float64   `json:"amount"`
	ConfirmationCode         string    `json:"confirmation_code"`
	PaymentStatusDescription string    `json:"payment_status_description"`
	StatusCode               int       `json:"status_code"`
	MerchantReference        string    `json:"merchant_reference"`
	Currency                 string    `json:"currency"`
	Error                    *apiError `json:"error"`
}
