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
	"github.com/gotomicro/ego/core/elog"
)

type ApplicationEventConsumer struct {
	*mqx.GeneralConsumer[event.ApplicationEvent]
	svc    service.Service
	logger *elog.Component
}

func NewApplicationEventConsumer(q mq.MQ, svc service.Service) (*ApplicationEventConsumer, error) {
	c := &ApplicationEventConsumer{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
	gc, err := mqx.NewGeneralConsumer[event.ApplicationEvent](q, event.ApplicationEventName, groupID, c.Handle)
	if err != nil {
		return nil, err
	}
	c.GeneralConsumer = gc
	return c, nil
}

func (c *ApplicationEventConsumer) Handle(ctx context.Context, evt event.ApplicationEvent) error {
	app := domain.Application{
		Id:          evt.ApplicationId,
		JobId:       evt.JobId,
		JobTitle:    evt.JobTitle,
		Company:     evt.Company,
		ApplicantId: evt.ApplicantId,
		RecruiterId: evt.RecruiterId,
		OldStatus:   evt.OldStatus,
		Status:      evt.Status,
		Note:        evt.Note,
		MatchScore:  evt.MatchScore,
	}
	switch evt.Type {
	case event.ApplicationTypeCreated:
		return c.svc.ApplicationCreated(ctx, app)
	case event.ApplicationTypeStatusChanged:
		return c.svc.ApplicationStatusChanged(ctx, app)
	default:
		c.logger.Warn("未知的投递事件", elog.String("type", evt.Type), elog.Int64("id", evt.ApplicationId))
		return nil
	}
}
