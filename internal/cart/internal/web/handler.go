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
	"github.com/ecodeclub/marketplace/internal/cart/internal/domain"
	"github.com/ecodeclub/marketplace/internal/cart/internal/service"
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
	g := server.Group("/api/cart")
	g.GET("", httpx.S(h.Get))
	g.DELETE("", httpx.S(h.Clear))
	g.POST("/items", httpx.BS[AddItemReq](h.AddItem))
	g.PUT("/items/:id", httpx.BS[UpdateItemReq](h.UpdateItem))
	g.DELETE("/items/:id", httpx.S(h.RemoveItem))
}

func (h *Handler) Get(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	c, err := h.svc.Get(ctx, sess.Claims().Uid)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newCart(c)), nil
}

func (h *Handler) AddItem(ctx *ginx.Context, req AddItemReq, sess session.Session) (httpx.Result, error) {
	uid := sess.Claims().Uid
	err := h.svc.AddItem(ctx, uid, domain.Item{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return httpx.Result{}, err
	}
	return h.cartResult(ctx, uid, "Item added to cart")
}

func (h *Handler) UpdateItem(ctx *ginx.Context, req UpdateItemReq, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	uid := sess.Claims().Uid
	if err = h.svc.UpdateQuantity(ctx, uid, id, req.Quantity); err != nil {
		return httpx.Result{}, err
	}
	return h.cartResult(ctx, uid, "Cart updated")
}

func (h *Handler) RemoveItem(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	uid := sess.Claims().Uid
	if err = h.svc.RemoveItem(ctx, uid, id); err != nil {
		return httpx.Result{}, err
	}
	return h.cartResult(ctx, uid, "Item removed from cart")
}

func (h *Handler) Clear(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	if err := h.svc.Clear(ctx, sess.Claims().Uid); err != nil {
		return httpx.Result{}, err
	}
	return httpx.Msg("Cart cleared"), nil
}

func (h *Handler) cartResult(ctx *ginx.Context, uid int64, msg string) (httpx.Result, error) {
	c, err := h.svc.Get(ctx, uid)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Result{Success: true, Message: msg, Data: newCart(c)}, nil
}
