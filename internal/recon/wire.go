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

package recon

import (
	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/wallet"
	"github.com/google/wire"
)

func InitModule(om *order.Module, wm *wallet.Module) *Module {
	wire.Build(
		initService,
		initReconcileWalletCreditsJob,
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.FieldsOf(new(*wallet.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
