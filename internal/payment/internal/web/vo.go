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

package web

import "github.com/ecodeclub/jobmatch/internal/payment/internal/domain"

type PayReq struct {
	Purpose   string `json:"purpose"`
	Channel   string `json:"channel"`
	Phone     string `json:"phone"`
	PromoCode string `json:"promoCode"`
}

type SNReq struct {
	SN string `json:"sn"`
}

type Payment struct {
	SN             string `json:"sn"`
	Purpose        string `json:"purpose"`
	Days           int    `json:"days"`
	OriginalAmount int64  `json:"originalAmount"`
	Discount       int64  `json:"discount"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	PromoCode      string `json:"promoCode"`
	Channel        string `json:"channel"`
	Status         string `json:"status"`
	RedirectURL    string `json:"redirectURL"`
	PaidAt         int64  `json:"paidAt"`
	Ctime          int64  `json:"ctime"`
}

func newPayment(p domain.Payment) Payment {
	return Payment{
		SN:             p.SN,
		Purpose:        p.Purpose.String(),
		Days:           p.Days,
		OriginalAmount: p.OriginalAmount,
		Discount:       p.Discount,
		Amount:         p.Amount,
		Currency:       p.Currency,
		PromoCode:      p.PromoCode,
		Channel:        p.Channel.String(),
		Status:         p.Status.String(),
		RedirectURL:    p.RedirectURL,
		PaidAt:         p.PaidAt,
		Ctime:          p.Ctime,
	}
}

// PesapalIPN pesapal 的 IPN 既可能是 GET 也可能是 POST
type PesapalIPN struct {
	OrderTrackingId        string `json:"OrderTrackingId" form:"OrderTrackingId"`
	OrderMerchantReference string `json:"OrderMerchantReference" form:"OrderMerchantReference"`
	OrderNotificationType  string `json:"OrderNotificationType" form:"OrderNotificationType"`
}

type PesapalIPNResp struct {
	OrderNotificationType  string `json:"orderNotificationType"`
	OrderTrackingId        string `json:"orderTrackingId"`
	OrderMerchantReference string `json:"orderMerchantReference"`
	Status                 int    `json:"status"`
}

type MpesaCallbackResp struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}
