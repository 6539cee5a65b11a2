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

package order

import (
	"time"

	"github.com/ecodeclub/marketplace/internal/order/internal/domain"
	"github.com/ecodeclub/marketplace/internal/order/internal/event"
	"github.com/ecodeclub/marketplace/internal/order/internal/job"
	"github.com/ecodeclub/marketplace/internal/order/internal/service"
	"github.com/ecodeclub/marketplace/internal/pkg/money"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
)

// 默认运费 40.00, 商品总额满 100.00 包邮
const (
	defaultFlatShipping  = "40.00"
	defaultFreeThreshold = "100.00"
)

func initShippingPolicy() domain.ShippingPolicy {
	type Config struct {
		Flat          string `yaml:"flat"`
		FreeThreshold string `yaml:"freeThreshold"`
	}
	cfg := Config{Flat: defaultFlatShipping, FreeThreshold: defaultFreeThreshold}
	err := econf.UnmarshalKey("order.shipping", &cfg)
	if err != nil {
		panic(err)
	}
	flat, err := money.Parse(cfg.Flat)
	if err != nil {
		panic(err)
	}
	threshold, err := money.Parse(cfg.FreeThreshold)
	if err != nil {
		panic(err)
	}
	return domain.ShippingPolicy{Flat: flat, FreeThreshold: threshold}
}

func initOrderEventProducer(q mq.MQ) event.OrderEventProducer {
	p, err := event.NewOrderEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initCloseExpiredOrdersJob(svc service.Service) *job.CloseExpiredOrdersJob {
	minutes := econf.GetInt64("order.paymentTimeoutMinutes")
	if minutes <= 0 {
		minutes = 30
	}
	return job.NewCloseExpiredOrdersJob(svc, 100, minutes, 10*time.Second)
}
