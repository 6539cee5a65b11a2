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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
	"github.com/ecodeclub/marketplace/internal/payment/internal/service"
	"github.com/ecodeclub/marketplace/internal/pkg/httpx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/payments")
	g.POST("/orders/:id", httpx.S(h.CreateGatewayOrder))
	g.POST("/verify", httpx.BS[VerifyReq](h.Verify))
}

func (h *Handler) CreateGatewayOrder(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	p, err := h.svc.CreateGatewayOrder(ctx, sess.Claims().Uid, id)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Created("Payment order created", newGatewayOrder(p)), nil
}

func (h *Handler) Verify(ctx *ginx.Context, req VerifyReq, sess session.Session) (httpx.Result, error) {
	o, err := h.svc.VerifyPayment(ctx, sess.Claims().Uid, domain.Verification{
		GatewayOrderID: req.GatewayOrderID,
		PaymentID:      req.PaymentID,
		Signature:      req.Signature,
	})
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Result{Success: true, Message: "Payment verified successfully", Data: newOrder(o)}, nil
}
