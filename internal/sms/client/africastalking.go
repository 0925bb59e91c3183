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

package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/go-resty/resty/v2"
)

type AfricasTalkingConfig struct {
	BaseURL  string `yaml:"baseURL"`
	Username string `yaml:"username"`
	APIKey   string `yaml:"apiKey"`
	// From 发送方 ID，可以为空
	From string `yaml:"from"`
}

// AfricasTalkingClient 调用 Africa's Talking 的 messaging 接口
type AfricasTalkingClient struct {
	cfg    AfricasTalkingConfig
	client *resty.Client
}

func NewAfricasTalkingClient(cfg AfricasTalkingConfig) *AfricasTalkingClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.africastalking.com"
	}
	return &AfricasTalkingClient{
		cfg: cfg,
		client: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(10*time.Second).
			SetHeader("Accept", "application/json").
			SetHeader("apiKey", cfg.APIKey),
	}
}

// statusCode 100~102 表示已经被网关受理
func accepted(code int) bool {
	return code >= 100 && code <= 102
}

func (c *AfricasTalkingClient) Send(ctx context.Context, req SendReq) (SendResp, error) {
	if len(req.PhoneNumbers) == 0 || req.Message == "" {
		return SendResp{}, fmt.Errorf("%w: 手机号和内容不能为空", ErrInvalidParameter)
	}
	form := map[string]string{
		"username": c.cfg.Username,
		"to":       strings.Join(req.PhoneNumbers, ","),
		"message":  req.Message,
	}
	if c.cfg.From != "" {
		form["from"] = c.cfg.From
	}
	var res messagingResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&res).
		Post("/version1/messaging")
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK {
		return SendResp{}, fmt.Errorf("%w: status=%d body=%s", ErrSendFailed, resp.StatusCode(), resp.String())
	}
	recipients := res.SMSMessageData.Recipients
	statuses := slice.ToMapV(recipients, func(element recipient) (string, SendRespStatus) {
		return element.Number, SendRespStatus{Code: element.Status, Message: element.MessageId}
	})
	failed := slice.FilterMap(recipients, func(idx int, src recipient) (string, bool) {
		return src.Number, !accepted(src.StatusCode)
	})
	if len(recipients) == 0 || len(failed) == len(recipients) {
		return SendResp{}, fmt.Errorf("%w: %s", ErrSendFailed, res.SMSMessageData.Message)
	}
	return SendResp{
		RequestID:    recipients[0].MessageId,
		PhoneNumbers: statuses,
	}, nil
}

type messagingResp struct {
	SMSMessageData struct {
		Message    string      `json:"Message"`
		Recipients []recipient `json:"Recipients"`
	} `json:"SMSMessageData"`
}

type recipient struct {
	StatusCode int    `json:"statusCode"`
	Number     string `json:"number"`
	Status     string `json:"status"`
	Cost       string `json:"cost"`
	MessageId  string `json:"messageId"`
}
