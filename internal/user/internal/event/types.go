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

import "strconv"

const (
	RegistrationEventName = "user_registration_events"
	PaymentEventName      = "payment_events"
)

type RegistrationEvent struct {
	Uid   int64  `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (e RegistrationEvent) EventKey() string {
	return strconv.FormatInt(e.Uid, 10)
}

// PaymentEvent 只关心支付成功之后的会员开通
type PaymentEvent struct {
	SN      string `json:"sn"`
	Uid     int64  `json:"uid"`
	Purpose string `json:"purpose"`
	Days    int    `json:"days"`
	Status  string `json:"status"`
}

const (
	PaymentPurposePremium = "premium"
	PaymentStatusSuccess  = "paid_success"
)
