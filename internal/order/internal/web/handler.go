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
	"github.com/ecodeclub/marketplace/internal/order/internal/domain"
	"github.com/ecodeclub/marketplace/internal/order/internal/service"
	"github.com/ecodeclub/marketplace/internal/pkg/httpx"
	"github.com/ecodeclub/marketplace/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// RequestIDHeader 客户端用来防止重复提交的请求头
const RequestIDHeader = "X-Request-ID"

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/orders")
	g.POST("", httpx.BS[CreateOrderReq](h.Create))
	g.GET("", httpx.BS[ListReq](h.List))
	g.GET("/:id", httpx.S(h.Detail))
	g.POST("/:id/cancel", httpx.S(h.Cancel))

	seller := server.Group("/api/seller/orders", middleware.NewRoleBuilder("seller").Build())
	seller.GET("", httpx.BS[ListReq](h.SellerList))

	admin := server.Group("/api/admin/orders", middleware.NewRoleBuilder("admin").Build())
	admin.PATCH("/:id/status", httpx.BS[StatusReq](h.UpdateStatus))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (httpx.Result, error) {
	o, err := h.svc.CreateFromCart(ctx, sess.Claims().Uid, req.AddressID, req.Notes, ctx.GetHeader(RequestIDHeader))
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Created("Order created successfully", newOrder(o)), nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (httpx.Result, error) {
	os, total, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.limit())
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newListResp(total, os)), nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	o, err := h.svc.Detail(ctx, sess.Claims().Uid, id)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newOrder(o)), nil
}

func (h *Handler) Cancel(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	if err = h.svc.Cancel(ctx, sess.Claims().Uid, id); err != nil {
		return httpx.Result{}, err
	}
	return httpx.Msg("Order cancelled"), nil
}

func (h *Handler) SellerList(ctx *ginx.Context, req ListReq, sess session.Session) (httpx.Result, error) {
	os, total, err := h.svc.SellerList(ctx, sess.Claims().Uid, req.Offset, req.limit())
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newListResp(total, os)), nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req StatusReq, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	if err = h.svc.UpdateStatus(ctx, id, domain.OrderStatus(req.Status)); err != nil {
		return httpx.Result{}, err
	}
	o, err := h.svc.FindByID(ctx, id)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Result{Success: true, Message: "Order status updated", Data: newOrder(o)}, nil
}
