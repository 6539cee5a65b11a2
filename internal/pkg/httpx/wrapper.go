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
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// W 包装不需要请求体也不需要登录态的处理函数
func W(fn func(ctx *ginx.Context) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		res, err := fn(gctx)
		render(ctx, res, err)
	}
}

// B 包装需要绑定请求体的处理函数
func B[Req any](fn func(ctx *ginx.Context, req Req) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if err := ctx.ShouldBind(&req); err != nil {
			renderBindErr(ctx, err)
			return
		}
		gctx := &ginx.Context{Context: ctx}
		res, err := fn(gctx, req)
		render(ctx, res, err)
	}
}

// S 包装需要登录态的处理函数
func S(fn func(ctx *ginx.Context, sess session.Session) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(gctx)
		if err != nil {
			render(ctx, Result{}, ErrUnauthorized)
			return
		}
		res, err := fn(gctx, sess)
		render(ctx, res, err)
	}
}

// BS 包装既需要请求体又需要登录态的处理函数
func BS[Req any](fn func(ctx *ginx.Context, req Req, sess session.Session) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(gctx)
		if err != nil {
			render(ctx, Result{}, ErrUnauthorized)
			return
		}
		var req Req
		if err = ctx.ShouldBind(&req); err != nil {
			renderBindErr(ctx, err)
			return
		}
		res, err := fn(gctx, req, sess)
		render(ctx, res, err)
	}
}

// ParamInt64 读取路径参数中的 ID
func ParamInt64(ctx *ginx.Context, key string) (int64, error) {
	val, err := ctx.Param(key).AsInt64()
	if err != nil || val <= 0 {
		return 0, ErrInvalidParam.WithMsgf("Invalid %s", key)
	}
	return val, nil
}

func render(ctx *gin.Context, res Result, err error) {
	if errors.Is(err, ginx.ErrNoResponse) {
		return
	}
	if err == nil {
		ctx.JSON(res.status(), res)
		return
	}
	var be *Error
	if errors.As(err, &be) {
		ctx.JSON(be.Status, Result{Success: false, Message: be.Msg, Data: res.Data, Errors: res.Errors})
		return
	}
	elog.DefaultLogger.Error("处理请求失败",
		elog.String("method", ctx.Request.Method),
		elog.String("path", ctx.FullPath()),
		elog.FieldErr(err))
	ctx.JSON(http.StatusInternalServerError, Result{Success: false, Message: ErrInternal.Msg})
}

func renderBindErr(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, Result{
		Success: false,
		Message: ErrInvalidParam.Msg,
		Errors:  fieldErrors(err),
	})
}
