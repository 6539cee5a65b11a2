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
	"github.com/ecodeclub/marketplace/internal/delivery/internal/domain"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/service"
	"github.com/ecodeclub/marketplace/internal/pkg/httpx"
	"github.com/ecodeclub/marketplace/internal/pkg/middleware"
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
	admin := server.Group("/api/admin/deliveries", middleware.NewRoleBuilder("admin").Build())
	admin.POST("", httpx.B[AssignReq](h.Assign))

	g := server.Group("/api/delivery", middleware.NewRoleBuilder("deliveryPartner").Build())
	g.GET("/assignments", httpx.BS[ListReq](h.Assignments))
	g.PATCH("/:id/status", httpx.BS[StatusReq](h.UpdateStatus))

	server.GET("/api/orders/:id/tracking", httpx.S(h.Tracking))
}

func (h *Handler) Assign(ctx *ginx.Context, req AssignReq) (httpx.Result, error) {
	d, err := h.svc.Assign(ctx, req.OrderID, req.PartnerID)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Created("Delivery partner assigned", newDelivery(d)), nil
}

func (h *Handler) Assignments(ctx *ginx.Context, req ListReq, sess session.Session) (httpx.Result, error) {
	ds, total, err := h.svc.Assignments(ctx, sess.Claims().Uid, domain.Status(req.Status), req.Offset, req.limit())
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(DeliveryList{
		Total:      total,
		Deliveries: slice.Map(ds, func(idx int, src domain.Delivery) Delivery { return newDelivery(src) }),
	}), nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req StatusReq, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	d, err := h.svc.UpdateStatus(ctx, sess.Claims().Uid, id, domain.Status(req.Status), req.Note)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Result{Success: true, Message: "Delivery status updated", Data: newDelivery(d)}, nil
}

func (h *Handler) Tracking(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	t, err := h.svc.Tracking(ctx, sess.Claims().Uid, id)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newTracking(t)), nil
}
