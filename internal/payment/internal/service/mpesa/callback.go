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

package mpesa

import (
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/jobmatch/internal/payment/internal/domain"
)

// Callback STK push 的异步通知
type Callback struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string
	Receipt           string
	Amount            float64
	Phone             string
}

func (c Callback) Status() domain.Status {
	return toStatus(c.ResultCode)
}

func ParseCallback(body []byte) (Callback, error) {
	var raw callbackBody
	if err := json.Unmarshal(body, &raw); err != nil {
		return Callback{}, fmt.Errorf("%w: 解析回调失败: %w", ErrMpesa, err)
	}
	cb := raw.Body.StkCallback
	if cb.CheckoutRequestID == "" {
		return Callback{}, fmt.Errorf("%w: 回调缺少 CheckoutRequestID", ErrMpesa)
	}
	res := Callback{
		MerchantRequestID: cb.MerchantRequestID,
		CheckoutRequestID: cb.CheckoutRequestID,
		ResultCode:        cb.ResultCode,
		ResultDesc:        cb.ResultDesc,
	}
	for _, item := range cb.CallbackMetadata.Item {
		switch item.Name {
		case "MpesaReceiptNumber":
			res.Receipt = fmt.Sprint(item.Value)
		case "Amount":
			if v, ok := item.Value.(float64); ok {
				res.Amount = v
			}
		case "PhoneNumber":
			if v, ok := item.Value.(float64); ok {
				res.Phone = fmt.Sprintf("%.0f", v)
			}
		}
	}
	return res, nil
}

type callbackBody struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []struct {
					Name  string `json:"Name"`
					Value any    `json:"Value"`
				} `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}
