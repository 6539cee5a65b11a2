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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/marketplace/internal/address/internal/domain"
	"github.com/ecodeclub/marketplace/internal/address/internal/service"
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
	g := server.Group("/api/addresses")
	g.GET("", httpx.S(h.List))
	g.POST("", httpx.BS[SaveReq](h.Create))
	g.GET("/:id", httpx.S(h.Detail))
	g.PUT("/:id", httpx.BS[SaveReq](h.Update))
	g.DELETE("/:id", httpx.S(h.Delete))
}

func (h *Handler) Create(ctx *ginx.Context, req SaveReq, sess session.Session) (httpx.Result, error) {
	uid := sess.Claims().Uid
	id, err := h.svc.Save(ctx, req.toDomain(uid, 0))
	if err != nil {
		return httpx.Result{}, err
	}
	a, err := h.svc.Detail(ctx, uid, id)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Created("Address created", newAddress(a)), nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveReq, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	_, err = h.svc.Save(ctx, req.toDomain(sess.Claims().Uid, id))
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Msg("Address updated"), nil
}

func (h *Handler) Delete(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	if err = h.svc.Delete(ctx, sess.Claims().Uid, id); err != nil {
		return httpx.Result{}, err
	}
	return httpx.Msg("Address deleted"), nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	a, err := h.svc.Detail(ctx, sess.Claims().Uid, id)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newAddress(a)), nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	as, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(slice.Map(as, func(idx int, src domain.Address) Address {
		return newAddress(src)
	})), nil
}
