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

package delivery

import (
	"sync"

	"github.com/ecodeclub/marketplace/internal/delivery/internal/repository"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/repository/dao"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/service"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/web"
	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/user"
	"github.com/ecodeclub/marketplace/internal/wallet"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ,
	om *order.Module, wm *wallet.Module, um *user.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewDeliveryRepository,
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.FieldsOf(new(*wallet.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		initDeliveryEventProducer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.DeliveryDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewDeliveryGORMDAO(db)
}
