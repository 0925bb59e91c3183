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
	"fmt"
	"io"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/errs"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/service"
	"github.com/gin-gonic/gin"
)

const formFileKey = "file"

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/resumes")
	g.POST("/upload", ginx.S(h.Upload))
	g.GET("/latest", ginx.S(h.Latest))
	g.POST("/detail", ginx.BS[IdReq](h.Detail))
	g.GET("/list", ginx.S(h.List))
}

func (h *Handler) Upload(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	fh, err := ctx.FormFile(formFileKey)
	if err != nil {
		return errorResult(errs.MissingFile), nil
	}
	if fh.Size > service.MaxFileSize {
		return errorResult(errs.FileTooLarge), nil
	}
	file, err := fh.Open()
	if err != nil {
		return systemErrorResult, fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer file.Close()
	// 多读一个字节，让 service 能判断出超限
	data, err := io.ReadAll(io.LimitReader(file, service.MaxFileSize+1))
	if err != nil {
		return systemErrorResult, fmt.Errorf("读取上传文件失败: %w", err)
	}
	r, err := h.svc.Upload(ctx.Request.Context(), sess.Claims().Uid, domain.File{
		Name: fh.Filename,
		Data: data,
	})
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newResume(r, false)}, nil
}

func (h *Handler) Latest(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.Latest(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newResume(r, false)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.Detail(ctx.Request.Context(), sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newResume(r, true)}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	list, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: slice.Map(list, func(idx int, src domain.Resume) Resume {
		return newResume(src, false)
	})}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedFile):
		return errorResult(errs.UnsupportedFile), nil
	case errors.Is(err, service.ErrFileTooLarge):
		return errorResult(errs.FileTooLarge), nil
	case errors.Is(err, service.ErrUnreadableFile):
		return errorResult(errs.UnreadableFile), nil
	case errors.Is(err, service.ErrResumeNotFound):
		return errorResult(errs.ResumeNotFound), nil
	default:
		return systemErrorResult, err
	}
}

// newResume 只有详情接口返回原文
func newResume(r domain.Resume, withText bool) Resume {
	res := Resume{
		Id:       r.Id,
		FileName: r.FileName,
		Size:     r.Size,
		Status:   r.Status.String(),
		Ctime:    r.Ctime,
		Profile:  newProfile(r.Profile),
	}
	if withText {
		res.Text = r.Text
	}
	return res
}

func newProfile(p domain.Profile) Profile {
	return Profile{
		Name:             p.Name,
		Email:            p.Email,
		Phone:            p.Phone,
		Location:         p.Location,
		Summary:          p.Summary,
		Skills:           p.Skills,
		TotalYears:       p.TotalYears,
		HighestEducation: p.HighestEducation,
		Educations: slice.Map(p.Educations, func(idx int, src domain.Education) Education {
			return Education(src)
		}),
		Experiences: slice.Map(p.Experiences, func(idx int, src domain.Experience) Experience {
			return Experience(src)
		}),
	}
}
