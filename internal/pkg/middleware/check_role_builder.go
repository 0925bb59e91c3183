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
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// 登录时写入 jwt 的字段
const (
	RoleClaimKey    = "role"
	PremiumClaimKey = "premium"
)

type CheckRoleMiddlewareBuilder struct {
	roles   []string
	getSess func(ctx *ginx.Context) (session.Session, error)
	logger  *elog.Component
}

// NewCheckRoleMiddlewareBuilder 只放行 jwt 中角色属于 roles 的请求
func NewCheckRoleMiddlewareBuilder(roles ...string) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		roles:   roles,
		getSess: session.Get,
		logger:  elog.DefaultLogger,
	}
}

func (b *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := b.getSess(gctx)
		if err != nil {
			b.logger.Debug("用户未登录", elog.FieldErr(err))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		role := RoleOf(sess)
		if !slice.Contains(b.roles, role) {
			b.logger.Warn("角色无权访问",
				elog.Int64("uid", sess.Claims().Uid),
				elog.String("role", role),
				elog.String("path", ctx.Request.URL.Path))
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}
	}
}

func RoleOf(sess session.Session) string {
	return sess.Claims().Get(RoleClaimKey).StringOrDefault("")
}

// IsPremium 会员标记在登录或者续签时写入，开通会员后需要重新登录才会生效
func IsPremium(sess session.Session) bool {
	return sess.Claims().Get(PremiumClaimKey).StringOrDefault("") == "true"
}
