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

package payment

import (
	"github.com/ecodeclub/marketplace/internal/payment/internal/event"
	"github.com/ecodeclub/marketplace/internal/payment/internal/gateway"
	"github.com/ecodeclub/marketplace/internal/payment/internal/service"
	"github.com/ecodeclub/marketplace/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/client/ehttp"
	"github.com/gotomicro/ego/core/econf"
	"github.com/shopspring/decimal"
)

type gatewayConfig struct {
	// Mode local 表示本地模拟网关, http 表示调用真实网关
	Mode      string `yaml:"mode"`
	KeyID     string `yaml:"keyID"`
	KeySecret string `yaml:"keySecret"`
}

func loadGatewayConfig() gatewayConfig {
	cfg := gatewayConfig{Mode: "local"}
	if err := econf.UnmarshalKey("payment.gateway", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func initGatewayClient() gateway.Client {
	cfg := loadGatewayConfig()
	if cfg.Mode == "http" {
		// 网关地址 超时 访问日志都在 payment.gateway.http 下配置
		return gateway.NewHTTPClient(ehttp.Load("payment.gateway.http").Build(), cfg.KeyID, cfg.KeySecret)
	}
	return gateway.NewLocalClient()
}

func initSigner() *gateway.Signer {
	return gateway.NewSigner(loadGatewayConfig().KeySecret)
}

func initServiceConfig() service.Config {
	currency := econf.GetString("payment.currency")
	if currency == "" {
		currency = "INR"
	}
	rate := decimal.RequireFromString("0.10")
	if s := econf.GetString("commission.rate"); s != "" {
		rate = decimal.RequireFromString(s)
	}
	return service.Config{Currency: currency, CommissionRate: rate}
}

func initPaymentEventProducer(q mq.MQ) event.PaymentEventProducer {
	p, err := event.NewPaymentEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initIDGenerator() snowflake.Generator {
	g, err := snowflake.NewNodeGenerator(uint(econf.GetInt("payment.nodeID")), 2)
	if err != nil {
		panic(err)
	}
	return g
}
