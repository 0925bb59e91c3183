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

package payment

import (
	"github.com/ecodeclub/jobmatch/internal/payment/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/event"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/job"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/service"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/web"
)

type (
	Handler                = web.Handler
	Service                = service.Service
	Payment                = domain.Payment
	Status                 = domain.Status
	Channel                = domain.Channel
	PaymentEvent           = event.PaymentEvent
	SyncPendingPaymentsJob = job.SyncPendingPaymentsJob
)

const (
	ChannelPesapal = domain.ChannelPesapal
	ChannelMpesa   = domain.ChannelMpesa

	StatusProcessing    = domain.StatusProcessing
	StatusPaidSuccess   = domain.StatusPaidSuccess
	StatusPaidFailed    = domain.StatusPaidFailed
	StatusTimeoutClosed = domain.StatusTimeoutClosed
)

type Module struct {
	Hdl                    *Handler
	Svc                    Service
	SyncPendingPaymentsJob *SyncPendingPaymentsJob
}
