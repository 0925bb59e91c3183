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

// Package mpesa Safaricom Daraja 的 STK push
package mpesa

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/ecodeclub/jobmatch/internal/payment/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
)

const (
	timestampLayout = "20060102150405"
	transactionType = "CustomerPayBillOnline"
	// 交易还在处理中时，查询接口返回的错误码
	errCodeProcessing = "500.001.1001"
	tokenLeeway       = time.Minute
)

var (
	ErrMpesa = errors.New("mpesa 调用失败")
	// Daraja 要求使用内罗毕时间
	eat = time.FixedZone("EAT", 3*60*60)
)

type Config struct {
	BaseURL        string `yaml:"baseURL"`
	ConsumerKey    string `yaml:"consumerKey"`
	ConsumerSecret string `yaml:"consumerSecret"`
	Shortcode      string `yaml:"shortcode"`
	Passkey        string `yaml:"passkey"`
	CallbackURL    string `yaml:"callbackURL"`
}

type Client struct {
	cfg    Config
	client *resty.Client
	now    func() time.Time

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
			SetTimeout(15 * time.Second).
			// OAuth 接口不保证返回 application/json
			ForceContentType("application/json"),
		now: time.Now,
		l:   elog.DefaultLogger,
	}
}

func (c *Client) Name() domain.Channel {
	return domain.ChannelMpesa
}

func (c *Client) Initiate(ctx context.Context, p domain.Payment) (domain.Initiation, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return domain.Initiation{}, err
	}
	password, timestamp := c.password()
	var (
		res    stkPushResp
		apiErr apiError
	)
	resp, err := c.client.R().SetContext(ctx).
		SetAuthToken(token).
		SetBody(stkPushReq{
			BusinessShortCode: c.cfg.Shortcode,
			Password:          password,
			Timestamp:         timestamp,
			TransactionType:   transactionType,
			Amount:            wholeShillings(p.Amount),
			PartyA:            p.Phone,
			PartyB:            c.cfg.Shortcode,
			PhoneNumber:       p.Phone,
			CallBackURL:       c.cfg.CallbackURL,
			AccountReference:  accountReference(p.SN),
			TransactionDesc:   p.Purpose.String(),
		}).
		SetResult(&res).
		SetError(&apiErr).
		Post("/mpesa/stkpush/v1/processrequest")
	if err = checkResp(resp, err, apiErr); err != nil {
		return domain.Initiation{}, fmt.Errorf("发起 STK push 失败 sn=%s: %w", p.SN, err)
	}
	if res.ResponseCode != "0" {
		return domain.Initiation{}, fmt.Errorf("%w: code=%s desc=%s", ErrMpesa, res.ResponseCode, res.ResponseDescription)
	}
	return domain.Initiation{ProviderRef: res.CheckoutRequestID}, nil
}

func (c *Client) Query(ctx context.Context, p domain.Payment) (domain.Status, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}
	password, timestamp := c.password()
	var (
		res    stkQueryResp
		apiErr apiError
	)
	resp, err := c.client.R().SetContext(ctx).
		SetAuthToken(token).
		SetBody(stkQueryReq{
			BusinessShortCode: c.cfg.Shortcode,
			Password:          password,
			Timestamp:         timestamp,
			CheckoutRequestID: p.ProviderRef,
		}).
		SetResult(&res).
		SetError(&apiErr).
		Post("/mpesa/stkpushquery/v1/query")
	if apiErr.ErrorCode == errCodeProcessing {
		return domain.StatusProcessing, nil
	}
	if err = checkResp(resp, err, apiErr); err != nil {
		return "", fmt.Errorf("查询 STK push 失败 sn=%s: %w", p.SN, err)
	}
	code, err := strconv.Atoi(res.ResultCode)
	if err != nil {
		return "", fmt.Errorf("%w: 非法的 ResultCode %q", ErrMpesa, res.ResultCode)
	}
	return toStatus(code), nil
}

// password base64(shortcode + passkey + timestamp)
func (c *Client) password() (string, string) {
	timestamp := c.now().In(eat).Format(timestampLayout)
	raw := c.cfg.Shortcode + c.cfg.Passkey + timestamp
	return base64.StdEncoding.EncodeToString([]byte(raw)), timestamp
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && c.now().Before(c.expireAt) {
		return c.token, nil
	}
	var (
		res    tokenResp
		apiErr apiError
	)
	resp, err := c.client.R().SetContext(ctx).
		SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret).
		SetQueryParam("grant_type", "client_credentials").
		SetResult(&res).
		SetError(&apiErr).
		Get("/oauth/v1/generate")
	if err = checkResp(resp, err, apiErr); err != nil {
		return "", fmt.Errorf("获取 token 失败: %w", err)
	}
	if res.AccessToken == "" {
		return "", fmt.Errorf("%w: 没有返回 access_token", ErrMpesa)
	}
	seconds, er := strconv.Atoi(res.ExpiresIn)
	if er != nil || seconds <= 0 {
		seconds = 3599
	}
	c.token = res.AccessToken
	c.expireAt = c.now().Add(time.Duration(seconds)*time.Second - tokenLeeway)
	return c.token, nil
}

// toStatus ResultCode 为 0 表示成功，其他都是失败，比如 1032 用户取消
func toStatus(code int) domain.Status {
	if code == 0 {
		return domain.StatusPaidSuccess
	}
	return domain.StatusPaidFailed
}

// wholeShillings Daraja 只接受整数金额，不足一先令的部分向上取整
func wholeShillings(cents int64) int64 {
	return (cents + 99) / 100
}

// accountReference Daraja 限制最多 12 个字符
func accountReference(sn string) string {
	if len(sn) > 12 {
		return sn[len(sn)-12:]
	}
	return sn
}

func checkResp(resp *resty.Response, err error, apiErr apiError) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMpesa, err)
	}
	if apiErr.ErrorCode != "" {
		return fmt.Errorf("%w: code=%s message=%s", ErrMpesa, apiErr.ErrorCode, apiErr.ErrorMessage)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: http status=%d body=%s", ErrMpesa, resp.StatusCode(), resp.String())
	}
	return nil
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

type apiError struct {
	RequestId    string `json:"requestId"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

type stkPushReq struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResp struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type stkQueryReq struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

type stkQueryResp struct {
	ResponseCode string `json:"ResponseCode"`
	ResultCode   string `json:"ResultCode"`
	ResultDesc   string `json:"ResultDesc"`
}
