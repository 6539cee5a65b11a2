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

package recon

import (
	"fmt"
	"time"

	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/recon/internal/job"
	"github.com/ecodeclub/marketplace/internal/recon/internal/service"
	"github.com/ecodeclub/marketplace/internal/wallet"
	"github.com/gotomicro/ego/core/econf"
)

func initService(orderSvc order.Service, walletSvc wallet.Service) Service {
	initialInterval := 100 * time.Millisecond
	maxInterval := 1 * time.Second
	maxRetries := int32(6)
	return service.NewService(orderSvc, walletSvc, initialInterval, maxInterval, maxRetries)
}

func initReconcileWalletCreditsJob(svc Service) *ReconcileWalletCreditsJob {
	type Config struct {
		Window time.Duration `yaml:"window"`
		Delay  time.Duration `yaml:"delay"`
		Limit  int           `yaml:"limit"`
	}
	cfg := Config{Window: time.Hour, Delay: 5 * time.Minute, Limit: 100}
	err := econf.UnmarshalKey("recon.walletCredits", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Limit <= 0 || cfg.Window <= 0 || cfg.Delay < 0 {
		panic(fmt.Errorf("recon.walletCredits 配置非法: window=%s delay=%s limit=%d", cfg.Window, cfg.Delay, cfg.Limit))
	}
	return job.NewReconcileWalletCreditsJob(svc, cfg.Window, cfg.Delay, cfg.Limit)
}
