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
	"github.com/ecodeclub/jobmatch/internal/promo/internal/service"
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
	server.POST("/promo/validate", ginx.BS[ValidateReq](h.Validate))
}

func (h *Handler) Validate(ctx *ginx.Context, req ValidateReq, sess session.Session) (ginx.Result, error) {
	q, err := h.svc.Validate(ctx.Request.Context(), req.Code, req.Amount)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: Quote{
		Code:     q.Code,
		Amount:   q.Amount,
		Discount: q.Discount,
		Final:    q.Final,
	}}, nil
}
