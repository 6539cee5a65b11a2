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
	"github.com/ecodeclub/marketplace/internal/pkg/money"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/domain"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/errs"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/service"
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
	g := server.Group("/api/wallet", middleware.NewRoleBuilder(
		domain.RoleSeller.String(), domain.RoleDeliveryPartner.String()).Build())
	g.GET("", httpx.BS[WalletReq](h.Wallet))
	g.GET("/transactions", httpx.BS[ListReq](h.Transactions))
	g.POST("/withdrawals", httpx.BS[WithdrawalReq](h.RequestWithdrawal))
	g.GET("/withdrawals", httpx.BS[ListReq](h.MyWithdrawals))

	admin := server.Group("/api/admin/withdrawals", middleware.NewRoleBuilder("admin").Build())
	admin.GET("", httpx.B[AdminListReq](h.ListWithdrawals))
	admin.POST("/:id/approve", httpx.BS[NoteReq](h.Approve))
	admin.POST("/:id/reject", httpx.BS[NoteReq](h.Reject))
	admin.POST("/:id/complete", httpx.S(h.Complete))
}

// role 没有显式指定时使用登录角色
func role(sess session.Session, explicit string) domain.Role {
	if explicit != "" {
		return domain.Role(explicit)
	}
	return domain.Role(sess.Claims().Get(middleware.RoleClaimKey).StringOrDefault(""))
}

func (h *Handler) Wallet(ctx *ginx.Context, req WalletReq, sess session.Session) (httpx.Result, error) {
	w, err := h.svc.Wallet(ctx, sess.Claims().Uid, role(sess, req.Role))
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newWallet(w)), nil
}

func (h *Handler) Transactions(ctx *ginx.Context, req ListReq, sess session.Session) (httpx.Result, error) {
	ts, total, err := h.svc.Transactions(ctx, sess.Claims().Uid, role(sess, req.Role), req.Offset, req.limit())
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newTransactionList(total, ts)), nil
}

func (h *Handler) RequestWithdrawal(ctx *ginx.Context, req WithdrawalReq, sess session.Session) (httpx.Result, error) {
	amount, err := money.Parse(req.Amount)
	if err != nil {
		return httpx.Result{}, errs.ErrInvalidAmount
	}
	w, err := h.svc.RequestWithdrawal(ctx, sess.Claims().Uid, role(sess, ""), amount, req.Note)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Created("Withdrawal request submitted", newWithdrawal(w)), nil
}

func (h *Handler) MyWithdrawals(ctx *ginx.Context, req ListReq, sess session.Session) (httpx.Result, error) {
	ws, total, err := h.svc.MyWithdrawals(ctx, sess.Claims().Uid, req.Offset, req.limit())
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newWithdrawalList(total, ws)), nil
}

func (h *Handler) ListWithdrawals(ctx *ginx.Context, req AdminListReq) (httpx.Result, error) {
	ws, total, err := h.svc.ListWithdrawals(ctx, domain.WithdrawalStatus(req.Status), req.Offset, req.limit())
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newWithdrawalList(total, ws)), nil
}

func (h *Handler) Approve(ctx *ginx.Context, req NoteReq, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	w, err := h.svc.ApproveWithdrawal(ctx, sess.Claims().Uid, id, req.Note)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Result{Success: true, Message: "Withdrawal approved", Data: newWithdrawal(w)}, nil
}

func (h *Handler) Reject(ctx *ginx.Context, req NoteReq, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	w, err := h.svc.RejectWithdrawal(ctx, sess.Claims().Uid, id, req.Note)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Result{Success: true, Message: "Withdrawal rejected", Data: newWithdrawal(w)}, nil
}

func (h *Handler) Complete(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	id, err := httpx.ParamInt64(ctx, "id")
	if err != nil {
		return httpx.Result{}, err
	}
	w, err := h.svc.CompleteWithdrawal(ctx, sess.Claims().Uid, id)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Result{Success: true, Message: "Withdrawal completed", Data: newWithdrawal(w)}, nil
}
