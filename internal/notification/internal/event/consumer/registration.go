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

const groupID = "notification"

// RegistrationEventConsumer 注册成功之后发送欢迎邮件
type RegistrationEventConsumer struct {
	*mqx.GeneralConsumer[event.RegistrationEvent]
	svc service.Service
}

func NewRegistrationEventConsumer(q mq.MQ, svc service.Service) (*RegistrationEventConsumer, error) {
	c := &RegistrationEventConsumer{svc: svc}
	gc, err := mqx.NewGeneralConsumer[event.RegistrationEvent](q, event.RegistrationEventName, groupID, c.Handle)
	if err != nil {
		return nil, err
	}
	c.GeneralConsumer = gc
	return c, nil
}

func (c *RegistrationEventConsumer) Handle(ctx context.Context, evt event.RegistrationEvent) error {
	return c.svc.Welcome(ctx, domain.Welcome{
		Uid:   evt.Uid,
		Email: evt.Email,
		Name:  evt.Name,
		Role:  evt.Role,
	})
}
