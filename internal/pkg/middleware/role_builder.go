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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/marketplace/internal/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RoleClaimKey 登录时写入 JWT 的角色字段
const RoleClaimKey = "role"

type RoleBuilder struct {
	roles  []string
	logger *elog.Component
}

func NewRoleBuilder(roles ...string) *RoleBuilder {
	return &RoleBuilder{roles: roles, logger: elog.DefaultLogger}
}

func (b *RoleBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(gctx)
		if err != nil {
			b.logger.Debug("用户未登录", elog.FieldErr(err))
			abort(ctx, http.StatusUnauthorized, httpx.ErrUnauthorized.Msg)
			return
		}
		claims := sess.Claims()
		role := claims.Get(RoleClaimKey).StringOrDefault("")
		if !slice.Contains(b.roles, role) {
			b.logger.Warn("角色无权访问",
				elog.Int64("uid", claims.Uid),
				elog.String("role", role),
				elog.String("path", ctx.FullPath()))
			abort(ctx, http.StatusForbidden, httpx.ErrForbidden.Msg)
			return
		}
		ctx.Next()
	}
}

func abort(ctx *gin.Context, status int, msg string) {
	ctx.AbortWithStatusJSON(status, httpx.Result{Success: false, Message: msg})
}
