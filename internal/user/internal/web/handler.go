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
	"github.com/ecodeclub/marketplace/internal/user/internal/domain"
	"github.com/ecodeclub/marketplace/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	otpSvc  service.OTPService
	userSvc service.UserService
}

func NewHandler(otpSvc service.OTPService, userSvc service.UserService) *Handler {
	return &Handler{
		otpSvc:  otpSvc,
		userSvc: userSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	auth := server.Group("/api/auth")
	auth.POST("/otp/send", httpx.B[SendOTPReq](h.SendOTP))
	auth.POST("/otp/verify", httpx.B[VerifyOTPReq](h.VerifyOTP))
	auth.POST("/token/refresh", httpx.W(h.RefreshAccessToken))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/api/users")
	users.GET("/profile", httpx.S(h.Profile))
	users.POST("/profile", httpx.BS[EditReq](h.Edit))
}

func (h *Handler) SendOTP(ctx *ginx.Context, req SendOTPReq) (httpx.Result, error) {
	if err := h.otpSvc.Send(ctx, req.Phone); err != nil {
		return httpx.Result{}, err
	}
	return httpx.Msg("OTP sent"), nil
}

// VerifyOTP 验证通过即登录, 新手机号自动注册
func (h *Handler) VerifyOTP(ctx *ginx.Context, req VerifyOTPReq) (httpx.Result, error) {
	if err := h.otpSvc.Verify(ctx, req.Phone, req.Code); err != nil {
		return httpx.Result{}, err
	}
	u, err := h.userSvc.FindOrCreateByPhone(ctx, req.Phone, domain.Role(req.Role))
	if err != nil {
		return httpx.Result{}, err
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			middleware.RoleClaimKey: u.Role.String(),
		}).Build()
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Result{Success: true, Message: "Login successful", Data: newProfile(u)}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (httpx.Result, error) {
	if err := session.RenewAccessToken(ctx); err != nil {
		return httpx.Result{}, httpx.ErrUnauthorized
	}
	return httpx.Msg("OK"), nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (httpx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.OK(newProfile(u)), nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (httpx.Result, error) {
	err := h.userSvc.UpdateProfile(ctx, domain.User{
		Id:    sess.Claims().Uid,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return httpx.Result{}, err
	}
	return httpx.Msg("Profile updated"), nil
}
