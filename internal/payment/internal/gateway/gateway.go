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
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Order 支付网关侧的订单
type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

//go:generate mockgen -source=./gateway.go -package=gatewaymocks -destination=./mocks/gateway.mock.go Client
type Client interface {
	// CreateOrder amount 单位为分, receipt 是我们自己的收据号, 网关原样带回
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (Order, error)
}

// Signer 网关回调的签名是 hex(HMAC-SHA256(secret, gatewayOrderID + "|" + paymentID))
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) Sign(gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) Verify(gatewayOrderID, paymentID, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hmac.Equal(mac.Sum(nil), expected)
}
