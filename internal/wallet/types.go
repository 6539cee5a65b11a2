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

package wallet

import (
	"github.com/ecodeclub/marketplace/internal/wallet/internal/domain"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/errs"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/event"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/service"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/web"
)

type (
	Handler           = web.Handler
	Service           = service.Service
	Wallet            = domain.Wallet
	Role              = domain.Role
	Credit            = domain.Credit
	Category          = domain.Category
	TransactionStatus = domain.TransactionStatus
	Withdrawal        = domain.Withdrawal
	DeliveredConsumer = event.DeliveredConsumer
)

const (
	RoleSeller          = domain.RoleSeller
	RoleDeliveryPartner = domain.RoleDeliveryPartner

	CategoryOrderEarning = domain.CategoryOrderEarning
	CategoryDeliveryFee  = domain.CategoryDeliveryFee

	TransactionStatusReceived = domain.TransactionStatusReceived
	TransactionStatusPending  = domain.TransactionStatusPending

	ReferenceTypeOrder = domain.ReferenceTypeOrder
)

var ErrInsufficientBalance = errs.ErrInsufficientBalance

type Module struct {
	Hdl               *Handler
	Svc               Service
	DeliveredConsumer *DeliveredConsumer
}
