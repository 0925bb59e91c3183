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

package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/jobmatch/internal/email"
	emailmocks "github.com/ecodeclub/jobmatch/internal/email/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_SendMail(t *testing.T) {
	mail := email.Mail{To: "amina@example.com", Subject: "欢迎"}
	testCases := []struct {
		name     string
		ctx      func() (context.Context, context.CancelFunc)
		mock     func(ctrl *gomock.Controller) email.Service
		interval time.Duration
		wantErr  error
	}{
		{
			name: "首次发送成功",
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), time.Second)
			},
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().SendMail(gomock.Any(), mail).Return(nil)
				return svc
			},
		},
		{
			name: "重试之后成功",
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), time.Second)
			},
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().SendMail(gomock.Any(), mail).Return(errors.New("mock error")).Times(2)
				svc.EXPECT().SendMail(gomock.Any(), mail).Return(nil)
				return svc
			},
		},
		{
			name: "超时不重试",
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), time.Second)
			},
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().SendMail(gomock.Any(), mail).Return(context.DeadlineExceeded)
				return svc
			},
			wantErr: context.DeadlineExceeded,
		},
		{
			name: "超过重试次数",
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), time.Second)
			},
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().SendMail(gomock.Any(), mail).Return(errors.New("mock error")).Times(4)
				return svc
			},
			wantErr: ErrOverRetryTimes,
		},
		{
			name: "等待重试的时候被取消",
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 5*time.Millisecond)
			},
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().SendMail(gomock.Any(), mail).Return(errors.New("mock error"))
				return svc
			},
			interval: time.Second,
			wantErr:  context.DeadlineExceeded,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			interval := tc.interval
			if interval == 0 {
				interval = time.Millisecond
			}
			svc := NewService(tc.mock(ctrl), func() retry.Strategy {
				s, err := retry.NewFixedIntervalRetryStrategy(interval, 3)
				require.NoError(t, err)
				return s
			})
			ctx, cancel := tc.ctx()
			defer cancel()
			err := svc.SendMail(ctx, mail)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
