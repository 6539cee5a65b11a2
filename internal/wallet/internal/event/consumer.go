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

package event

import (
	"context"

	"github.com/ecodeclub/marketplace/internal/pkg/mqx"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/domain"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// DeliveredConsumer 订单送达之后释放配送员在该订单上的待结算配送费
type DeliveredConsumer struct {
	svc      service.Service
	consumer *mqx.GeneralConsumer[DeliveryEvent]
	logger   *elog.Component
}

func NewDeliveredConsumer(svc service.Service, q mq.MQ) (*DeliveredConsumer, error) {
	c := &DeliveredConsumer{svc: svc, logger: elog.DefaultLogger}
	consumer, err := mqx.NewGeneralConsumer[DeliveryEvent](q, DeliveryEventName, "wallet", c.Handle)
	if err != nil {
		return nil, err
	}
	c.consumer = consumer
	return c, nil
}

func (c *DeliveredConsumer) Start(ctx context.Context) {
	c.consumer.Start(ctx)
}

func (c *DeliveredConsumer) Handle(ctx context.Context, evt DeliveryEvent) error {
	if evt.Status != deliveryStatusDelivered || evt.PartnerID <= 0 {
		return nil
	}
	released, err := c.svc.ReleasePending(ctx, evt.PartnerID, domain.RoleDeliveryPartner,
		domain.CategoryDeliveryFee, domain.ReferenceTypeOrder, evt.OrderID)
	if err != nil {
		c.logger.Error("释放配送费失败",
			elog.Int64("orderID", evt.OrderID),
			elog.Int64("partnerID", evt.PartnerID),
			elog.FieldErr(err))
		return err
	}
	if released > 0 {
		c.logger.Info("配送费已转为可提现",
			elog.Int64("orderID", evt.OrderID),
			elog.Int64("partnerID", evt.PartnerID),
			elog.Int64("amount", released))
	}
	return nil
}
