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

package consumer

import (
	"context"

	"github.com/ecodeclub/jobmatch/internal/notification/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/notification/internal/event"
	"github.com/ecodeclub/jobmatch/internal/notification/internal/service"
	"github.com/ecodeclub/jobmatch/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

// PaymentEventConsumer 支付成功之后发送收据
type PaymentEventConsumer struct {
	*mqx.GeneralConsumer[event.PaymentEvent]
	svc service.Service
}

func NewPaymentEventConsumer(q mq.MQ, svc service.Service) (*PaymentEventConsumer, error) {
	c := &PaymentEventConsumer{svc: svc}
	gc, err := mqx.NewGeneralConsumer[event.PaymentEvent](q, event.PaymentEventName, groupID, c.Handle)
	if err != nil {
		return nil, err
	}
	c.GeneralConsumer = gc
	return c, nil
}

func (c *PaymentEventConsumer) Handle(ctx context.Context, evt event.PaymentEvent) error {
	if evt.Status != event.PaymentStatusSuccess {
		return nil
	}
	return c.svc.PaymentReceipt(ctx, domain.Payment{
		SN:        evt.SN,
		Uid:       evt.Uid,
		Purpose:   evt.Purpose,
		Days:      evt.Days,
		Amount:    evt.Amount,
		Currency:  evt.Currency,
		Channel:   evt.Channel,
		PromoCode: evt.PromoCode,
		Phone:     evt.Phone,
		PaidAt:    evt.PaidAt,
	})
}
