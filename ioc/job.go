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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/recon"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

func initCronJobs(om *order.Module, rm *recon.Module) []ecron.Ecron {
	return []ecron.Ecron{
		newCronJob("cron.closeExpiredOrders", om.CloseExpiredOrdersJob),
		newCronJob("cron.reconcileWalletCredits", rm.ReconcileWalletCreditsJob),
	}
}

// newCronJob 每个任务可以在自己的配置下用 timeout 限制单次运行时间, 默认一分钟
func newCronJob(key string, job ecron.NamedJob) ecron.Ecron {
	timeout := econf.GetDuration(key + ".timeout")
	if timeout <= 0 {
		timeout = time.Minute
	}
	return ecron.Load(key).Build(ecron.WithJob(funcJobWrapper(job, timeout)))
}

func funcJobWrapper(job ecron.NamedJob, timeout time.Duration) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		start := time.Now()
		elog.DefaultLogger.Debug("开始运行",
			elog.String("cronjob", name))
		err := job.Run(ctx)
		if err != nil {
			elog.DefaultLogger.Error("执行失败",
				elog.FieldErr(err),
				elog.String("cronjob", name),
				elog.FieldCost(time.Since(start)))
			return err
		}
		elog.DefaultLogger.Debug("结束运行",
			elog.String("cronjob", name),
			elog.FieldCost(time.Since(start)))
		return nil
	}
}
