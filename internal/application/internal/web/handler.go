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
	"github.com/ecodeclub/jobmatch/internal/application/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/application/internal/errs"
	"github.com/ecodeclub/jobmatch/internal/application/internal/service"
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

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.POST("/apply", ginx.BS[ApplyReq](h.Apply))
	g.POST("/detail", ginx.BS[IdReq](h.Detail))
	g.POST("/mine", ginx.BS[Page](h.Mine))
	g.POST("/withdraw", ginx.BS[IdReq](h.Withdraw))

	recruiter := server.Group("/applications",
		middleware.NewCheckRoleMiddlewareBuilder("recruiter").Build())
	recruiter.POST("/job", ginx.BS[JobApplicationsReq](h.ListByJob))
	recruiter.POST("/status", ginx.BS[UpdateStatusReq](h.UpdateStatus))
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Apply(ctx.Request.Context(), sess.Claims().Uid, middleware.RoleOf(sess), req.JobId, req.CoverLetter)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Detail(ctx.Request.Context(), sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	list, total, err := h.svc.ListMine(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toList(list, total)}, nil
}

func (h *Handler) ListByJob(ctx *ginx.Context, req JobApplicationsReq, sess session.Session) (ginx.Result, error) {
	list, total, err := h.svc.ListByJob(ctx.Request.Context(), sess.Claims().Uid, req.JobId, req.Offset, req.Limit)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: h.toList(list, total)}, nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	status := domain.Status(req.Status)
	if !status.IsValid() {
		return errorResult(errs.InvalidTransition), nil
	}
	err := h.svc.UpdateStatus(ctx.Request.Context(), sess.Claims().Uid, req.Id, status, req.Note)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Withdraw(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Withdraw(ctx.Request.Context(), sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrRoleNotAllowed):
		return errorResult(errs.RoleNotAllowed), nil
	case errors.Is(err, service.ErrJobNotFound):
		return errorResult(errs.JobNotFound), nil
	case errors.Is(err, service.ErrJobClosed):
		return errorResult(errs.JobClosed), nil
	case errors.Is(err, service.ErrNoResume):
		return errorResult(errs.NoResume), nil
	case errors.Is(err, service.ErrDuplicateApplication):
		return errorResult(errs.DuplicateApplication), nil
	case errors.Is(err, service.ErrApplicationNotFound):
		return errorResult(errs.ApplicationNotFound), nil
	case errors.Is(err, service.ErrPermissionDenied):
		return errorResult(errs.PermissionDenied), nil
	case errors.Is(err, service.ErrInvalidStatusTransition):
		return errorResult(errs.InvalidTransition), nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) toList(list []domain.Application, total int64) ApplicationList {
	return ApplicationList{
		Total: total,
		List: slice.Map(list, func(idx int, src domain.Application) Application {
			return newApplication(src)
		}),
	}
}
