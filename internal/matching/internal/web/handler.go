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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/service"
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
	g := server.Group("/match")
	g.POST("/score", ginx.BS[ScoreReq](h.Score))
	g.POST("/recommend", ginx.BS[RecommendReq](h.Recommend))
}

func (h *Handler) Score(ctx *ginx.Context, req ScoreReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.ScoreLatest(ctx.Request.Context(), sess.Claims().Uid, req.JobId)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newResult(res)}, nil
}

func (h *Handler) Recommend(ctx *ginx.Context, req RecommendReq, sess session.Session) (ginx.Result, error) {
	list, err := h.svc.Recommend(ctx.Request.Context(), sess.Claims().Uid, req.Limit)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: slice.Map(list, func(idx int, src domain.Result) Result {
		return newResult(src)
	})}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrNoResume):
		return noResumeResult, nil
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
