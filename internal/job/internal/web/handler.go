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
	"github.com/ecodeclub/jobmatch/internal/job/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/job/internal/service"
	"github.com/ecodeclub/jobmatch/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/jobs")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/jobs",
		middleware.NewCheckRoleMiddlewareBuilder("recruiter").Build())
	g.POST("/save", ginx.BS[Job](h.Save))
	g.POST("/close", ginx.BS[IdReq](h.Close))
	g.POST("/mine", ginx.BS[Page](h.Mine))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	jobs, total, err := h.svc.List(ctx, req.Offset, req.Limit, domain.Filter{
		Keyword:  req.Keyword,
		Type:     domain.Type(req.Type),
		Location: req.Location,
		Remote:   req.Remote,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toList(jobs, total)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	j, err := h.svc.Detail(ctx, req.Id)
	if errors.Is(err, service.ErrJobNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newJob(j)}, nil
}

func (h *Handler) Save(ctx *ginx.Context, req Job, sess session.Session) (ginx.Result, error) {
	j := req.toDomain()
	j.RecruiterId = sess.Claims().Uid
	id, err := h.svc.Save(ctx, j)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Close(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Close(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	jobs, total, err := h.svc.ListByRecruiter(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toList(jobs, total)}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidJob):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrJobNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) toList(jobs []domain.Job, total int64) JobList {
	return JobList{
		Total: total,
		List: slice.Map(jobs, func(idx int, src domain.Job) Job {
			return newJob(src)
		}),
	}
}
