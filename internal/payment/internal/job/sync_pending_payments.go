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
	"fmt"
	"time"

	"github.com/ecodeclub/jobmatch/internal/payment/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/service"
	"github.com/ecodeclub/jobmatch/internal/pkg/mongox"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SyncPendingPaymentsJob)(nil)

// SyncPendingPaymentsJob 长时间没有收到通知的支付，主动去渠道查询，超过期限的直接关闭
type SyncPendingPaymentsJob struct {
	svc service.Service
	// 创建之后多久还没有结果才需要查询
	wait time.Duration
	// 创建之后多久还没有结果就关闭
	timeout time.Duration
	limit   int
	now     func() time.Time
	l       *elog.Component
}

func NewSyncPendingPaymentsJob(svc service.Service, wait, timeout time.Duration, limit int) *SyncPendingPaymentsJob {
	// 超过分页上限时查出来的条数永远小于 limit，会被当成最后一页
	if limit <= 0 || limit > mongox.MaxLimit {
		limit = mongox.MaxLimit
	}
	return &SyncPendingPaymentsJob{
		svc:     svc,
		wait:    wait,
		timeout: timeout,
		limit:   limit,
		now:     time.Now,
		l:       elog.DefaultLogger,
	}
}

func (j *SyncPendingPaymentsJob) Name() string {
	return "sync_pending_payments_job"
}

func (j *SyncPendingPaymentsJob) Run(ctx context.Context) error {
	now := j.now()
	ctime := now.Add(-j.wait).UnixMilli()
	offset := 0
	for {
		payments, total, err := j.svc.FindPending(ctx, offset, j.limit, ctime)
		if err != nil {
			return fmt.Errorf("获取待同步的支付记录失败: %w", err)
		}
		// 处理完之后状态发生变化的记录不会再被查出来
		remained := 0
		for _, pmt := range payments {
			if !j.handle(ctx, now, pmt) {
				remained++
			}
		}
		if len(payments) < j.limit || int64(len(payments)) >= total {
			return nil
		}
		offset += remained
	}
}

// handle 返回 true 表示这条记录已经有结果
func (j *SyncPendingPaymentsJob) handle(ctx context.Context, now time.Time, pmt domain.Payment) bool {
	res, err := j.svc.SyncPending(ctx, pmt)
	if err != nil {
		j.l.Error("同步支付状态失败",
			elog.FieldErr(err),
			elog.String("sn", pmt.SN),
			elog.String("channel", pmt.Channel.String()))
		res = pmt
	}
	if res.Status.IsTerminal() {
		return true
	}
	if !pmt.Expired(now, j.timeout) {
		return false
	}
	err = j.svc.CloseTimeout(ctx, res)
	if err != nil {
		j.l.Error("关闭超时支付失败",
			elog.FieldErr(err),
			elog.String("sn", pmt.SN))
		return false
	}
	return true
}
