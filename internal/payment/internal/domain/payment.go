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

package domain

import "time"

type Purpose string

const PurposePremium Purpose = "premium"

func (p Purpose) String() string {
	return string(p)
}

type Channel string

const (
	ChannelPesapal Channel = "pesapal"
	ChannelMpesa   Channel = "mpesa"
)

func (c Channel) String() string {
	return string(c)
}

const CurrencyKES = "KES"

type Status string

const (
	StatusUnpaid        Status = "unpaid"
	StatusProcessing    Status = "processing"
	StatusPaidSuccess   Status = "paid_success"
	StatusPaidFailed    Status = "paid_failed"
	StatusTimeoutClosed Status = "timeout_closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusPaidSuccess || s == StatusPaidFailed || s == StatusTimeoutClosed
}

// CanTransitionTo 只允许从未完成的状态进入终态
func (s Status) CanTransitionTo(next Status) bool {
	return !s.IsTerminal() && next.IsTerminal()
}

// Payment 金额都是最小货币单位，KES 就是分
type Payment struct {
	Id             int64
	SN             string
	Uid            int64
	Purpose        Purpose
	Days           int
	OriginalAmount int64
	Discount       int64
	Amount         int64
	Currency       string
	PromoCode      string
	Channel        Channel
	Phone          string
	Status         Status
	// ProviderRef pesapal 的 order_tracking_id 或者 mpesa 的 CheckoutRequestID
	ProviderRef string
	RedirectURL string
	PaidAt      int64
	Ctime       int64
	Utime       int64
}

func (p Payment) IsFree() bool {
	return p.Amount == 0
}

// Expired 创建之后超过 d 还没有结果
func (p Payment) Expired(now time.Time, d time.Duration) bool {
	return now.Sub(time.UnixMilli(p.Ctime)) >= d
}

type PayRequest struct {
	Purpose   Purpose
	Channel   Channel
	Phone     string
	PromoCode string
}

// Price 某种用途的售价
type Price struct {
	Amount int64 `yaml:"amount"`
	Days   int   `yaml:"days"`
}

// Initiation 渠道受理之后返回的信息
type Initiation struct {
	ProviderRef string
	RedirectURL string
}
