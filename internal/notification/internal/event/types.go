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

const (
	RegistrationEventName = "user_registration_events"
	ApplicationEventName  = "application_events"
	PaymentEventName      = "payment_events"
)

const (
	ApplicationTypeCreated       = "created"
	ApplicationTypeStatusChanged = "status_changed"
	PaymentStatusSuccess         = "paid_success"
)

type RegistrationEvent struct {
	Uid   int64  `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type ApplicationEvent struct {
	Type          string  `json:"type"`
	ApplicationId int64   `json:"applicationId"`
	JobId         int64   `json:"jobId"`
	JobTitle      string  `json:"jobTitle"`
	Company       string  `json:"company"`
	ApplicantId   int64   `json:"applicantId"`
	RecruiterId   int64   `json:"recruiterId"`
	OldStatus     string  `json:"oldStatus,omitempty"`
	Status        string  `json:"status"`
	Note          string  `json:"note,omitempty"`
	MatchScore    float64 `json:"matchScore"`
}

type PaymentEvent struct {
	SN        string `json:"sn"`
	Uid       int64  `json:"uid"`
	Purpose   string `json:"purpose"`
	Days      int    `json:"days"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Channel   string `json:"channel"`
	PromoCode string `json:"promoCode"`
	Phone     string `json:"phone,omitempty"`
	Status    string `json:"status"`
	PaidAt    int64  `json:"paidAt"`
}
