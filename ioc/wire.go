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

//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/marketplace/internal/address"
	"github.com/ecodeclub/marketplace/internal/cart"
	"github.com/ecodeclub/marketplace/internal/delivery"
	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/payment"
	"github.com/ecodeclub/marketplace/internal/product"
	"github.com/ecodeclub/marketplace/internal/recon"
	"github.com/ecodeclub/marketplace/internal/ticket"
	"github.com/ecodeclub/marketplace/internal/user"
	"github.com/ecodeclub/marketplace/internal/wallet"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSMSClient,
		user.InitModule,
		address.InitModule,
		product.InitModule,
		cart.InitModule,
		order.InitModule,
		wallet.InitModule,
		payment.InitModule,
		delivery.InitModule,
		ticket.InitModule,
		recon.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*address.Module), "Hdl"),
		wire.FieldsOf(new(*product.Module), "Hdl"),
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		wire.FieldsOf(new(*order.Module), "Hdl"),
		wire.FieldsOf(new(*wallet.Module), "Hdl"),
		wire.FieldsOf(new(*payment.Module), "Hdl"),
		wire.FieldsOf(new(*delivery.Module), "Hdl"),
		wire.FieldsOf(new(*ticket.Module), "Hdl"),
		InitSession,
		initGinxServer,
		initMQConsumers,
		initCronJobs,
	)
	return new(App), nil
}
