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
	"github.com/ecodeclub/marketplace/internal/pkg/httpx"
	"github.com/ecodeclub/marketplace/internal/pkg/middleware"
	"github.com/ecodeclub/marketplace/internal/product/internal/domain"
	"github.com/ecodeclub/marketplace/internal/product/internal/errs"
	"github.com/ecodeclub/marketplace/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/products")
	g.GET("", httpx.B[ListReq](h.List))
	g.GET("/:id", httpx.W(h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/seller/products", middleware.NewRoleBuilder("seller").Build())
	g.GET("", httpx.BS[ListReq](h.SellerList))
	g.POST("", httpx.BS[SaveReq](h.Create))
	g.PUT("/:id", httpx.BS[SaveReq](h.Update))
	g.PATCH("/:id/stock", httpx.BS[StockReq](h.SetStock))
	g.PATCH("/:id/status", httpx.BS[StatusReq](h.UpdateStatus))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (httpx.Result, error) {
	total, ps, err := h.svc.List(ctx, req.Offset, req.limit())
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newListResp(total, ps)), nil
}

// Detail 下架的商品对买家不可见
func (h *Handler) Detail(ctx *ginx.Context) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	p, err := h.svc.Detail(ctx, id)
	if err != nil {
		return httpx.Result{}, err
	}
	if !p.Active() {
		return httpx.Result{}, errs.ErrProductNotFound
	}
	return httpx.OK(newProduct(p)), nil
}

func (h *Handler) SellerList(ctx *ginx.Context, req ListReq, sess session.Session) (httpx.Result, error) {
	total, ps, err := h.svc.SellerList(ctx, sess.Claims().Uid, req.Offset, req.limit())
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newListResp(total, ps)), nil
}

func (h *Handler) Create(ctx *ginx.Context, req SaveReq, sess session.Session) (httpx.Result, error) {
	p, err := req.toDomain(sess.Claims().Uid, 0)
	if err != nil {
		return httpx.Result{}, err
	}
	id, err := h.svc.Create(ctx, p)
	if err != nil {
		return httpx.Result{}, err
	}
	p, err = h.svc.Detail(ctx, id)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Created("Product created", newProduct(p)), nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveReq, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	p, err := req.toDomain(sess.Claims().Uid, id)
	if err != nil {
		return httpx.Result{}, err
	}
	if err = h.svc.Update(ctx, p); err != nil {
		return httpx.Result{}, err
	}
	return httpx.Msg("Product updated"), nil
}

func (h *Handler) SetStock(ctx *ginx.Context, req StockReq, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	err = h.svc.SetStock(ctx, sess.Claims().Uid, id, req.VariantID, req.Stock)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Msg("Stock updated"), nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req StatusReq, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	status, _ := domain.StatusFromString(req.Status)
	if err = h.svc.UpdateStatus(ctx, sess.Claims().Uid, id, status); err != nil {
		return httpx.Result{}, err
	}
	return httpx.Msg("Product status updated"), nil
}
