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
	"github.com/ecodeclub/marketplace/internal/ticket/internal/domain"
	"github.com/ecodeclub/marketplace/internal/ticket/internal/service"
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
	g := server.Group("/api/tickets")
	g.POST("", httpx.BS[CreateReq](h.Create))
	g.GET("", httpx.BS[ListReq](h.List))
	g.GET("/:id", httpx.S(h.Detail))
	g.POST("/:id/close", httpx.S(h.Close))

	admin := server.Group("/api/admin/tickets", middleware.NewRoleBuilder("admin").Build())
	admin.GET("", httpx.B[ListReq](h.AdminList))
	admin.POST("/:id/resolve", httpx.BS[ResolveReq](h.Resolve))
}

func isAdmin(sess session.Session) bool {
	return sess.Claims().Get(middleware.RoleClaimKey).StringOrDefault("") == "admin"
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (httpx.Result, error) {
	t, err := h.svc.Create(ctx, domain.Ticket{
		Uid:         sess.Claims().Uid,
		OrderID:     req.OrderID,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    domain.Category(req.Category),
		Priority:    domain.Priority(req.Priority),
	})
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Created("Ticket created", newTicket(t)), nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (httpx.Result, error) {
	ts, total, err := h.svc.List(ctx, sess.Claims().Uid, domain.Status(req.Status), req.Offset, req.limit())
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newTicketList(total, ts)), nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	t, err := h.svc.Detail(ctx, sess.Claims().Uid, id, isAdmin(sess))
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newTicket(t)), nil
}

func (h *Handler) Close(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	t, err := h.svc.Close(ctx, sess.Claims().Uid, id, isAdmin(sess))
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Result{Success: true, Message: "Ticket closed", Data: newTicket(t)}, nil
}

func (h *Handler) AdminList(ctx *ginx.Context, req ListReq) (httpx.Result, error) {
	ts, total, err := h.svc.AdminList(ctx, domain.Status(req.Status), req.Offset, req.limit())
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newTicketList(total, ts)), nil
}

func (h *Handler) Resolve(ctx *ginx.Context, req ResolveReq, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	t, err := h.svc.Resolve(ctx, sess.Claims().Uid, id, req.Resolution)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Result{Success: true, Message: "Ticket resolved", Data: newTicket(t)}, nil
}
