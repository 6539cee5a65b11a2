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

package gateway

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/client/ehttp"
)

// HTTPClient 通过网关的 REST 接口下单, 使用 key id 和 key secret 做 Basic 认证
type HTTPClient struct {
	cli       *ehttp.Component
	keyID     string
	keySecret string
}

// NewHTTPClient cli 的地址需要指向网关, 超时和日志由 ehttp 配置控制
func NewHTTPClient(cli *ehttp.Component, keyID, keySecret string) *HTTPClient {
	return &HTTPClient{
		cli:       cli,
		keyID:     keyID,
		keySecret: keySecret,
	}
}

type createOrderReq struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResp struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

func (c *HTTPClient) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (Order, error) {
	var res createOrderResp
	resp, err := c.cli.R().
		SetContext(ctx).
		SetBasicAuth(c.keyID, c.keySecret).
		SetBody(createOrderReq{Amount: amount, Currency: currency, Receipt: receipt}).
		ForceContentType("application/json").
		SetResult(&res).
		Post("/v1/orders")
	if err != nil {
		return Order{}, fmt.Errorf("调用支付网关下单失败: %w", err)
	}
	if !resp.IsSuccess() {
		return Order{}, fmt.Errorf("支付网关下单失败 %d: %s", resp.StatusCode(), resp.String())
	}
	return Order{
		ID:       res.ID,
		Amount:   res.Amount,
		Currency: res.Currency,
		Receipt:  res.Receipt,
		Status:   res.Status,
	}, nil
}
