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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	_ "github.com/ecodeclub/marketplace/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRoleBuilder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testCases := []struct {
		name     string
		role     string
		wantCode int
		wantBody string
	}{
		{
			name:     "角色匹配",
			role:     "seller",
			wantCode: http.StatusOK,
			wantBody: "ok",
		},
		{
			name:     "另一个允许的角色",
			role:     "admin",
			wantCode: http.StatusOK,
			wantBody: "ok",
		},
		{
			name:     "角色不匹配",
			role:     "buyer",
			wantCode: http.StatusForbidden,
			wantBody: `{"success":false,"message":"Forbidden"}`,
		},
		{
			name:     "没有角色",
			wantCode: http.StatusForbidden,
			wantBody: `{"success":false,"message":"Forbidden"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				data := map[string]string{}
				if tc.role != "" {
					data[RoleClaimKey] = tc.role
				}
				ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: 1, Data: data}))
			})
			server.Use(NewRoleBuilder("seller", "admin").Build())
			server.GET("/seller/orders", func(ctx *gin.Context) {
				ctx.String(http.StatusOK, "ok")
			})
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/seller/orders", nil))
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantBody, recorder.Body.String())
		})
	}
}
