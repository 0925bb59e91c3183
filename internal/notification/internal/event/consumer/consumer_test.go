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
	"testing"

	"github.com/ecodeclub/jobmatch/internal/notification/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/notification/internal/event"
	svcmocks "github.com/ecodeclub/jobmatch/internal/notification/internal/service/mocks"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestApplicationEventConsumer_Handle(t *testing.T) {
	testCases := []struct {
		name    string
		evt     event.ApplicationEvent
		mock    func(svc *svcmocks.MockService)
		wantErr error
	}{
		{
			name: "新投递",
			evt:  event.ApplicationEvent{Type: "created", ApplicationId: 1, ApplicantId: 2, RecruiterId: 3, MatchScore: 0.8},
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().ApplicationCreated(gomock.Any(), domain.Application{
					Id: 1, ApplicantId: 2, RecruiterId: 3, MatchScore: 0.8,
				}).Return(nil)
			},
		},
		{
			name: "状态变更",
			evt:  event.ApplicationEvent{Type: "status_changed", ApplicationId: 1, OldStatus: "applied", Status: "interview"},
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().ApplicationStatusChanged(gomock.Any(), domain.Application{
					Id: 1, OldStatus: "applied", Status: "interview",
				}).Return(errors.New("mock error"))
			},
			wantErr: errors.New("mock error"),
		},
		{
			name: "未知类型",
			evt:  event.ApplicationEvent{Type: "deleted", ApplicationId: 1},
			mock: func(svc *svcmocks.MockService) {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := svcmocks.NewMockService(ctrl)
			tc.mock(svc)
			c := &ApplicationEventConsumer{svc: svc, logger: elog.DefaultLogger}
			err := c.Handle(context.Background(), tc.evt)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestPaymentEventConsumer_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockService(ctrl)
	svc.EXPECT().PaymentReceipt(gomock.Any(), domain.Payment{
		SN: "PAY1", Uid: 7, Days: 30, Amount: 100000, Currency: "KES", Channel: "mpesa", Phone: "254712345678",
	}).Return(nil)
	c := &PaymentEventConsumer{svc: svc}

	err := c.Handle(context.Background(), event.PaymentEvent{
		SN: "PAY1", Uid: 7, Days: 30, Amount: 100000, Currency: "KES", Channel: "mpesa",
		Phone: "254712345678", Status: "paid_success",
	})
	assert.NoError(t, err)
	// 失败的支付不发收据
	err = c.Handle(context.Background(), event.PaymentEvent{SN: "PAY2", Status: "paid_failed"})
	assert.NoError(t, err)
}

func TestRegistrationEventConsumer_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockService(ctrl)
	svc.EXPECT().Welcome(gomock.Any(), domain.Welcome{Uid: 1, Email: "amina@example.com", Name: "Amina", Role: "jobseeker"}).
		Return(nil)
	c := &RegistrationEventConsumer{svc: svc}
	err := c.Handle(context.Background(), event.RegistrationEvent{Uid: 1, Email: "amina@example.com", Name: "Amina", Role: "jobseeker"})
	assert.NoError(t, err)
}
