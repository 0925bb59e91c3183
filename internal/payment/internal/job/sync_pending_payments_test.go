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

package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/jobmatch/internal/payment/internal/domain"
	svcmocks "github.com/ecodeclub/jobmatch/internal/payment/internal/service/mocks"
	"github.com/ecodeclub/jobmatch/internal/pkg/mongox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSyncPendingPaymentsJob_Run(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	fresh := domain.Payment{SN: "fresh", Status: domain.StatusProcessing, Ctime: now.Add(-10 * time.Minute).UnixMilli()}
	old := domain.Payment{SN: "old", Status: domain.StatusProcessing, Ctime: now.Add(-2 * time.Hour).UnixMilli()}
	paid := domain.Payment{SN: "paid", Status: domain.StatusProcessing, Ctime: now.Add(-10 * time.Minute).UnixMilli()}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockService(ctrl)
	ctime := now.Add(-5 * time.Minute).UnixMilli()
	svc.EXPECT().FindPending(gomock.Any(), 0, 3, ctime).
		Return([]domain.Payment{fresh, old, paid}, int64(4), nil)
	// fresh 还没有结果，下一页要跳过它
	svc.EXPECT().FindPending(gomock.Any(), 1, 3, ctime).
		Return([]domain.Payment{}, int64(1), nil)

	svc.EXPECT().SyncPending(gomock.Any(), fresh).Return(fresh, nil)
	svc.EXPECT().SyncPending(gomock.Any(), old).Return(domain.Payment{}, errors.New("mock error"))
	svc.EXPECT().CloseTimeout(gomock.Any(), old).Return(nil)
	paidRes := paid
	paidRes.Status = domain.StatusPaidSuccess
	svc.EXPECT().SyncPending(gomock.Any(), paid).Return(paidRes, nil)

	job := NewSyncPendingPaymentsJob(svc, 5*time.Minute, time.Hour, 3)
	job.now = func() time.Time { return now }
	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, "sync_pending_payments_job", job.Name())
}

func TestNewSyncPendingPaymentsJob_Limit(t *testing.T) {
	testCases := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "正常", limit: 50, want: 50},
		{name: "超过分页上限", limit: 500, want: mongox.MaxLimit},
		{name: "非法", limit: 0, want: mongox.MaxLimit},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			job := NewSyncPendingPaymentsJob(nil, time.Minute, time.Hour, tc.limit)
			assert.Equal(t, tc.want, job.limit)
		})
	}
}
