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

package ioc

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobmatch/internal/application"
	"github.com/ecodeclub/jobmatch/internal/job"
	"github.com/ecodeclub/jobmatch/internal/matching"
	"github.com/ecodeclub/jobmatch/internal/payment"
	"github.com/ecodeclub/jobmatch/internal/pkg/middleware"
	"github.com/ecodeclub/jobmatch/internal/promo"
	"github.com/ecodeclub/jobmatch/internal/resume"
	"github.com/ecodeclub/jobmatch/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	jobHdl *job.Handler,
	resumeHdl *resume.Handler,
	matchHdl *matching.Handler,
	appHdl *application.Handler,
	promoHdl *promo.Handler,
	promoAdminHdl *promo.AdminHandler,
	payHdl *payment.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	origins := econf.GetStringSlice("web.allowOrigins")
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc:  allowOrigin(origins),
	}))
	res.Use(middleware.NewMetricsBuilder("jobmatch", prometheus.DefaultRegisterer).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	publics := []ginx.Handler{userHdl, jobHdl, resumeHdl, matchHdl, appHdl, promoHdl, payHdl}
	for _, h := range publics {
		h.PublicRoutes(res.Engine)
	}
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	for _, h := range publics {
		h.PrivateRoutes(res.Engine)
	}
	promoAdminHdl.PrivateRoutes(res.Engine)
	return res
}

// allowOrigin 只比较 host：本机开发地址、配置的域名本身以及它的子域名
func allowOrigin(domains []string) func(origin string) bool {
	return func(origin string) bool {
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			return false
		}
		host := strings.ToLower(u.Hostname())
		if host == "localhost" || host == "127.0.0.1" {
			return true
		}
		if u.Scheme != "https" {
			return false
		}
		for _, d := range domains {
			d = strings.ToLower(strings.TrimSpace(d))
			if d != "" && (host == d || strings.HasSuffix(host, "."+d)) {
				return true
			}
		}
		return false
	}
}
