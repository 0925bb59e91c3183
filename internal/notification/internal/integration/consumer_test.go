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

//go:build e2e

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/jobmatch/internal/email"
	emailmocks "github.com/ecodeclub/jobmatch/internal/email/mocks"
	"github.com/ecodeclub/jobmatch/internal/notification/internal/event"
	"github.com/ecodeclub/jobmatch/internal/notification/internal/event/consumer"
	"github.com/ecodeclub/jobmatch/internal/notification/internal/service"
	"github.com/ecodeclub/jobmatch/internal/pkg/mqx"
	"github.com/ecodeclub/jobmatch/internal/sms/client"
	"github.com/ecodeclub/jobmatch/internal/user"
	usermocks "github.com/ecodeclub/jobmatch/internal/user/mocks"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConsumers(t *testing.T) {
	q := memory.NewMQ()
	for _, topic := range []string{event.RegistrationEventName, event.ApplicationEventName, event.PaymentEventName} {
		require.NoError(t, q.CreateTopic(context.Background(), topic, 1))
	}

	ctrl := gomock.NewController(t)
	userSvc := usermocks.NewMockUserService(ctrl)
	userSvc.EXPECT().FindByIds(gomock.Any(), gomock.Any()).
		Return([]user.User{{Id: 1, Name: "Amina", Email: "amina@example.com"}, {Id: 2, Email: "hr@safari.co.ke"}}, nil).
		AnyTimes()
	sent := make(chan email.Mail, 8)
	mail := emailmocks.NewMockService(ctrl)
	mail.EXPECT().SendMail(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, m email.Mail) error {
		sent <- m
		return nil
	}).AnyTimes()
	svc := service.NewService(userSvc, mail, client.NewConsoleClient())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rc, err := consumer.NewRegistrationEventConsumer(q, svc)
	require.NoError(t, err)
	rc.Start(ctx)
	ac, err := consumer.NewApplicationEventConsumer(q, svc)
	require.NoError(t, err)
	ac.Start(ctx)
	pc, err := consumer.NewPaymentEventConsumer(q, svc)
	require.NoError(t, err)
	pc.Start(ctx)

	rp, err := mqx.NewGeneralProducer[event.RegistrationEvent](q, event.RegistrationEventName)
	require.NoError(t, err)
	require.NoError(t, rp.Produce(ctx, event.RegistrationEvent{Uid: 1, Email: "amina@example.com", Name: "Amina", Role: "jobseeker"}))
	assert.Equal(t, "Welcome to JobMatch", receive(t, sent).Subject)

	ap, err := mqx.NewGeneralProducer[event.ApplicationEvent](q, event.ApplicationEventName)
	require.NoError(t, err)
	require.NoError(t, ap.Produce(ctx, event.ApplicationEvent{
		Type: "created", ApplicationId: 10, JobTitle: "Go Developer", ApplicantId: 1, RecruiterId: 2,
	}))
	tos := []string{receive(t, sent).To, receive(t, sent).To}
	assert.ElementsMatch(t, []string{"amina@example.com", "hr@safari.co.ke"}, tos)

	pp, err := mqx.NewGeneralProducer[event.PaymentEvent](q, event.PaymentEventName)
	require.NoError(t, err)
	require.NoError(t, pp.Produce(ctx, event.PaymentEvent{
		SN: "PAY1", Uid: 1, Days: 30, Amount: 100000, Currency: "KES", Status: "paid_success",
	}))
	assert.Equal(t, "Payment receipt PAY1", receive(t, sent).Subject)
}

func receive(t *testing.T, ch <-chan email.Mail) email.Mail {
	select {
	case m := <-ch:
		return m
	case <-time.After(3 * time.Second):
		t.Fatal("没有收到邮件")
		return email.Mail{}
	}
}
