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
	"github.com/ecodeclub/marketplace/internal/order/internal/domain"
	"github.com/ecodeclub/marketplace/internal/order/internal/errs"
	"github.com/ecodeclub/marketplace/internal/order/internal/event"
	"github.com/ecodeclub/marketplace/internal/order/internal/job"
	"github.com/ecodeclub/marketplace/internal/order/internal/service"
	"github.com/ecodeclub/marketplace/internal/order/internal/web"
)

type (
	Handler               = web.Handler
	Service               = service.Service
	Order                 = domain.Order
	OrderItem             = domain.OrderItem
	OrderStatus           = domain.OrderStatus
	PaymentStatus         = domain.PaymentStatus
	OrderEvent            = event.OrderEvent
	CloseExpiredOrdersJob = job.CloseExpiredOrdersJob
)

const (
	StatusPending        = domain.StatusPending
	StatusConfirmed      = domain.StatusConfirmed
	StatusProcessing     = domain.StatusProcessing
	StatusShipped        = domain.StatusShipped
	StatusOutForDelivery = domain.StatusOutForDelivery
	StatusDelivered      = domain.StatusDelivered
	StatusCancelled      = domain.StatusCancelled
	StatusRefunded       = domain.StatusRefunded

	PaymentStatusPending    = domain.PaymentStatusPending
	PaymentStatusProcessing = domain.PaymentStatusProcessing
	PaymentStatusCompleted  = domain.PaymentStatusCompleted
)

var (
	ErrOrderNotFound           = errs.ErrOrderNotFound
	ErrPaymentAlreadyCompleted = errs.ErrPaymentAlreadyCompleted
	ErrOrderNotPayable         = errs.ErrOrderNotPayable
)

type Module struct {
	Hdl                   *Handler
	Svc                   Service
	CloseExpiredOrdersJob *CloseExpiredOrdersJob
}
