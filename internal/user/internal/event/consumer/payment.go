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
	"errors"

	"github.com/ecodeclub/jobmatch/internal/pkg/mqx"
	"github.com/ecodeclub/jobmatch/internal/user/internal/event"
	"github.com/ecodeclub/jobmatch/internal/user/internal/repository"
	"github.com/ecodeclub/jobmatch/internal/user/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentEventConsumer 支付成功之后开通会员
type PaymentEventConsumer struct {
	*mqx.GeneralConsumer[event.PaymentEvent]
	svc    service.UserService
	logger *elog.Component
}

func NewPaymentEventConsumer(q mq.MQ, svc service.UserService) (*PaymentEventConsumer, error) {
	c := &PaymentEventConsumer{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
	gc, err := mqx.NewGeneralConsumer[event.PaymentEvent](q, event.PaymentEventName, "user", c.Handle)
	if err != nil {
		return nil, err
	}
	c.GeneralConsumer = gc
	return c, nil
}

func (c *PaymentEventConsumer) Handle(ctx context.Context, evt event.PaymentEvent) error {
	if evt.Status != event.PaymentStatusSuccess || evt.Purpose != event.PaymentPurposePremium {
		return nil
	}
	_, err := c.svc.ActivatePremium(ctx, evt.Uid, evt.SN, evt.Days)
	if errors.Is(err, repository.ErrUserNotFound) {
		c.logger.Warn("开通会员的用户不存在",
			elog.Int64("uid", evt.Uid),
			elog.String("sn", evt.SN))
		return nil
	}
	return err
}
