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

package event

const PaymentEventName = "payment_events"

// PaymentEvent 支付成功之后发送
type PaymentEvent struct {
	SN        string `json:"sn"`
	Uid       int64  `json:"uid"`
	Purpose   string `json:"purpose"`
	Days      int    `json:"days"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Channel   string `json:"channel"`
	PromoCode string `json:"promoCode,omitempty"`
	// Phone 付款时校验过的手机号
	Phone  string `json:"phone,omitempty"`
	Status string `json:"status"`
	PaidAt int64  `json:"paidAt"`
}

func (e PaymentEvent) EventKey() string {
	return e.SN
}
