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
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/marketplace/internal/test"
	"github.com/ecodeclub/marketplace/internal/user/internal/domain"
	"github.com/ecodeclub/marketplace/internal/user/internal/errs"
	"github.com/ecodeclub/marketplace/internal/user/internal/service"
	svcmocks "github.com/ecodeclub/marketplace/internal/user/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(otpSvc service.OTPService, userSvc service.UserService, uid int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	if uid > 0 {
		server.Use(test.SessionMiddleware(uid, domain.RoleBuyer.String()))
	}
	hdl := NewHandler(otpSvc, userSvc)
	hdl.PublicRoutes(server)
	hdl.PrivateRoutes(server)
	return server
}

func TestHandler_SendOTP(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.OTPService
		req      any
		wantCode int
		wantResp test.Result[any]
	}{
		{
			name: "发送成功",
			mock: func(ctrl *gomock.Controller) service.OTPService {
				svc := svcmocks.NewMockOTPService(ctrl)
				svc.EXPECT().Send(gomock.Any(), "13800000000").Return(nil)
				return svc
			},
			req:      SendOTPReq{Phone: "13800000000"},
			wantCode: http.StatusOK,
			wantResp: test.Result[any]{Success: true, Message: "OTP sent"},
		},
		{
			name: "手机号为空",
			mock: func(ctrl *gomock.Controller) service.OTPService {
				return svcmocks.NewMockOTPService(ctrl)
			},
			req:      SendOTPReq{},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[any]{
				Message: "Validation failed",
				Errors:  []test.FieldError{{Field: "phone", Message: "is required"}},
			},
		},
		{
			name: "发送太频繁",
			mock: func(ctrl *gomock.Controller) service.OTPService {
				svc := svcmocks.NewMockOTPService(ctrl)
				svc.EXPECT().Send(gomock.Any(), "13800000000").Return(errs.ErrOTPSendTooMany)
				return svc
			},
			req:      SendOTPReq{Phone: "13800000000"},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[any]{Message: errs.ErrOTPSendTooMany.Msg},
		},
		{
			name: "短信服务异常",
			mock: func(ctrl *gomock.Controller) service.OTPService {
				svc := svcmocks.NewMockOTPService(ctrl)
				svc.EXPECT().Send(gomock.Any(), "13800000000").Return(errors.New("网关超时"))
				return svc
			},
			req:      SendOTPReq{Phone: "13800000000"},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[any]{Message: "Internal server error"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl), svcmocks.NewMockUserService(ctrl), 0)
			req, err := http.NewRequest(http.MethodPost, "/api/auth/otp/send", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_VerifyOTP(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (service.OTPService, service.UserService)
		req      VerifyOTPReq
		wantCode int
		wantMsg  string
	}{
		{
			name: "新用户注册并登录",
			mock: func(ctrl *gomock.Controller) (service.OTPService, service.UserService) {
				otpSvc := svcmocks.NewMockOTPService(ctrl)
				otpSvc.EXPECT().Verify(gomock.Any(), "13800000000", "123456").Return(nil)
				userSvc := svcmocks.NewMockUserService(ctrl)
				userSvc.EXPECT().FindOrCreateByPhone(gomock.Any(), "13800000000", domain.RoleSeller).
					Return(domain.User{Id: 1, Phone: "13800000000", Role: domain.RoleSeller}, nil)
				return otpSvc, userSvc
			},
			req:      VerifyOTPReq{Phone: "13800000000", Code: "123456", Role: "seller"},
			wantCode: http.StatusOK,
			wantMsg:  "Login successful",
		},
		{
			name: "验证码错误",
			mock: func(ctrl *gomock.Controller) (service.OTPService, service.UserService) {
				otpSvc := svcmocks.NewMockOTPService(ctrl)
				otpSvc.EXPECT().Verify(gomock.Any(), "13800000000", "000000").Return(errs.ErrOTPInvalid)
				return otpSvc, svcmocks.NewMockUserService(ctrl)
			},
			req:      VerifyOTPReq{Phone: "13800000000", Code: "000000"},
			wantCode: http.StatusBadRequest,
			wantMsg:  errs.ErrOTPInvalid.Msg,
		},
		{
			name: "不能自选管理员角色",
			mock: func(ctrl *gomock.Controller) (service.OTPService, service.UserService) {
				otpSvc := svcmocks.NewMockOTPService(ctrl)
				otpSvc.EXPECT().Verify(gomock.Any(), "13800000000", "123456").Return(nil)
				userSvc := svcmocks.NewMockUserService(ctrl)
				userSvc.EXPECT().FindOrCreateByPhone(gomock.Any(), "13800000000", domain.RoleAdmin).
					Return(domain.User{}, errs.ErrRoleNotAllowed)
				return otpSvc, userSvc
			},
			req:      VerifyOTPReq{Phone: "13800000000", Code: "123456", Role: "admin"},
			wantCode: http.StatusBadRequest,
			wantMsg:  errs.ErrRoleNotAllowed.Msg,
		},
		{
			name: "验证码格式不对",
			mock: func(ctrl *gomock.Controller) (service.OTPService, service.UserService) {
				return svcmocks.NewMockOTPService(ctrl), svcmocks.NewMockUserService(ctrl)
			},
			req:      VerifyOTPReq{Phone: "13800000000", Code: "12"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Validation failed",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			otpSvc, userSvc := tc.mock(ctrl)
			server := newServer(otpSvc, userSvc, 0)
			req, err := http.NewRequest(http.MethodPost, "/api/auth/otp/verify", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode == http.StatusOK, res.Success)
			assert.Equal(t, tc.wantMsg, res.Message)
		})
	}
}

func TestHandler_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	userSvc := svcmocks.NewMockUserService(ctrl)
	userSvc.EXPECT().Profile(gomock.Any(), int64(123)).Return(domain.User{
		Id:    123,
		Phone: "13800000000",
		Name:  "Alice",
		Role:  domain.RoleSeller,
	}, nil)
	userSvc.EXPECT().UpdateProfile(gomock.Any(), domain.User{
		Id:    123,
		Name:  "Bob",
		Email: "bob@example.com",
	}).Return(nil)
	server := newServer(svcmocks.NewMockOTPService(ctrl), userSvc, 123)

	req, err := http.NewRequest(http.MethodGet, "/api/users/profile", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[Profile]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, Profile{
		Id:    123,
		Phone: "13800000000",
		Name:  "Alice",
		Role:  "seller",
	}, recorder.MustScan().Data)

	req, err = http.NewRequest(http.MethodPost, "/api/users/profile",
		iox.NewJSONReader(EditReq{Name: "Bob", Email: "bob@example.com"}))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	editRecorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(editRecorder, req)
	require.Equal(t, http.StatusOK, editRecorder.Code)
	assert.Equal(t, "Profile updated", editRecorder.MustScan().Message)
}

func TestHandler_ProfileWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newServer(svcmocks.NewMockOTPService(ctrl), svcmocks.NewMockUserService(ctrl), 0)
	req, err := http.NewRequest(http.MethodGet, "/api/users/profile", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
