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
	"github.com/ecodeclub/jobmatch/internal/pkg/middleware"
	"github.com/ecodeclub/jobmatch/internal/promo/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/promo/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/promo/admin", middleware.NewCheckRoleMiddlewareBuilder("admin").Build())
	g.POST("/create", ginx.B[PromoCode](h.Create))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/deactivate", ginx.B[IdReq](h.Deactivate))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req PromoCode) (ginx.Result, error) {
	p, err := h.svc.Create(ctx.Request.Context(), req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newPromoCode(p)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	list, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: PromoCodeList{
		Total: total,
		List: slice.Map(list, func(idx int, src domain.PromoCode) PromoCode {
			return newPromoCode(src)
		}),
	}}, nil
}

func (h *AdminHandler) Deactivate(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Deactivate(ctx.Request.Context(), req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
