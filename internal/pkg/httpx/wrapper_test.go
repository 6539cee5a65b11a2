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

package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	_ "github.com/ecodeclub/marketplace/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addItemReq struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
	Quantity  int64 `json:"quantity" binding:"required,min=1,max=99"`
}

var errOutOfStock = BadRequest(400101, "Insufficient stock")

func TestB(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testCases := []struct {
		name       string
		body       any
		handler    func(ctx *ginx.Context, req addItemReq) (Result, error)
		wantCode   int
		wantResult Result
	}{
		{
			name: "成功",
			body: addItemReq{ProductID: 1, Quantity: 2},
			handler: func(ctx *ginx.Context, req addItemReq) (Result, error) {
				return Created("Item added", req.Quantity), nil
			},
			wantCode:   http.StatusCreated,
			wantResult: Result{Success: true, Message: "Item added", Data: float64(2)},
		},
		{
			name: "校验失败返回字段列表",
			body: map[string]any{"productId": 1, "quantity": 0},
			handler: func(ctx *ginx.Context, req addItemReq) (Result, error) {
				return OK(nil), nil
			},
			wantCode: http.StatusBadRequest,
			wantResult: Result{
				Success: false,
				Message: "Validation failed",
				Errors:  []FieldError{{Field: "quantity", Message: "is required"}},
			},
		},
		{
			name: "业务错误",
			body: addItemReq{ProductID: 1, Quantity: 2},
			handler: func(ctx *ginx.Context, req addItemReq) (Result, error) {
				return Result{}, fmt.Errorf("加购失败: %w", errOutOfStock.WithMsg("Insufficient stock for product Pen"))
			},
			wantCode:   http.StatusBadRequest,
			wantResult: Result{Success: false, Message: "Insufficient stock for product Pen"},
		},
		{
			name: "未知错误",
			body: addItemReq{ProductID: 1, Quantity: 2},
			handler: func(ctx *ginx.Context, req addItemReq) (Result, error) {
				return Result{}, errors.New("db down")
			},
			wantCode:   http.StatusInternalServerError,
			wantResult: Result{Success: false, Message: "Internal server error"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := gin.New()
			server.POST("/cart/items", B[addItemReq](tc.handler))
			req := httptest.NewRequest(http.MethodPost, "/cart/items", iox.NewJSONReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			var res Result
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
			assert.Equal(t, tc.wantResult, res)
		})
	}
}

func TestS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: 123}))
	})
	server.GET("/orders/:id", S(func(ctx *ginx.Context, sess session.Session) (Result, error) {
		id, err := ParamInt64(ctx, "id")
		if err != nil {
			return Result{}, err
		}
		return OK(map[string]int64{"id": id, "uid": sess.Claims().Uid}), nil
	}))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/orders/9", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true,"message":"OK","data":{"id":9,"uid":123}}`, recorder.Body.String())

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/orders/abc", nil))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid id"}`, recorder.Body.String())
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("包装: %w", errOutOfStock.WithMsg("Insufficient stock for product Pen"))
	assert.ErrorIs(t, err, errOutOfStock)
	assert.NotErrorIs(t, err, ErrForbidden)
}
