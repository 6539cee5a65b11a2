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

	"github.com/ecodeclub/marketplace/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// CloseExpiredOrdersJob 关闭超时未支付的订单并归还库存
type CloseExpiredOrdersJob struct {
	svc     service.Service
	limit   int
	minute  int64
	timeout time.Duration
	l       *elog.Component
}

func NewCloseExpiredOrdersJob(svc service.Service, limit int, minute int64, timeout time.Duration) *CloseExpiredOrdersJob {
	return &CloseExpiredOrdersJob{svc: svc, limit: limit, minute: minute, timeout: timeout, l: elog.DefaultLogger}
}

func (c *CloseExpiredOrdersJob) Name() string {
	return "CloseExpiredOrdersJob"
}

func (c *CloseExpiredOrdersJob) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, c.timeout)
	defer cancelFunc()
	// 多留 10 秒, 避免刚好卡在超时边界上支付的订单被关闭
	ctime := time.Now().Add(time.Duration(-c.minute)*time.Minute - 10*time.Second).UnixMilli()

	for {
		// 关闭后的订单不再满足查询条件, 所以每次都从 0 开始
		orders, total, err := c.svc.FindExpiredOrders(ctx, ctime, 0, c.limit)
		if err != nil {
			return fmt.Errorf("获取过期订单失败: %w", err)
		}

		for _, o := range orders {
			if err = c.svc.CloseExpiredOrder(ctx, o.ID); err != nil {
				return fmt.Errorf("关闭过期订单失败 orderID=%d: %w", o.ID, err)
			}
		}
		c.l.Info("关闭过期订单", elog.Int("count", len(orders)), elog.Int64("total", total))

		if len(orders) < c.limit {
			break
		}

		if int64(c.limit) >= total {
			break
		}
	}
	return nil
}
