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
	"time"

	"github.com/ecodeclub/marketplace/internal/recon/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ReconcileWalletCreditsJob)(nil)

// ReconcileWalletCreditsJob 每次核对一个时间窗口内支付完成的订单
// 窗口的结束时间往前推 delay, 给正在入账的订单留出时间
type ReconcileWalletCreditsJob struct {
	svc    service.Service
	window time.Duration
	delay  time.Duration
	limit  int
	l      *elog.Component
}

func NewReconcileWalletCreditsJob(svc service.Service, window, delay time.Duration, limit int) *ReconcileWalletCreditsJob {
	return &ReconcileWalletCreditsJob{
		svc:    svc,
		window: window,
		delay:  delay,
		limit:  limit,
		l:      elog.DefaultLogger}
}

func (j *ReconcileWalletCreditsJob) Name() string {
	return "reconcile_wallet_credits_job"
}

func (j *ReconcileWalletCreditsJob) Run(ctx context.Context) error {
	end := time.Now().Add(-j.delay)
	start := end.Add(-j.window)
	cnt, err := j.svc.Reconcile(ctx, start.UnixMilli(), end.UnixMilli(), j.limit)
	if err != nil {
		return err
	}
	if cnt > 0 {
		j.l.Warn("钱包入账对账发现不一致订单", elog.Int("count", cnt))
	}
	return nil
}
