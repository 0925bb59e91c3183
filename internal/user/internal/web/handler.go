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
	"strconv"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobmatch/internal/pkg/middleware"
	"github.com/ecodeclub/jobmatch/internal/user/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/user/internal/errs"
	"github.com/ecodeclub/jobmatch/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	emailRegexPattern = `^\w+([-+.]\w+)*@\w+([-.]\w+)*\.\w+([-.]\w+)*$`
	// 至少 8 位，必须同时包含字母和数字
	passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc         service.UserService
	emailExp    *regexp2.Regexp
	passwordExp *regexp2.Regexp
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{
		svc:         svc,
		emailExp:    regexp2.MustCompile(emailRegexPattern, regexp2.None),
		passwordExp: regexp2.MustCompile(passwordRegexPattern, regexp2.None),
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/signup", ginx.B[SignupReq](h.Signup))
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.POST("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) Signup(ctx *ginx.Context, req SignupReq) (ginx.Result, error) {
	ok, err := h.emailExp.MatchString(req.Email)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return errorResult(errs.EmailFormatError), nil
	}
	if req.Password != req.ConfirmPassword {
		return errorResult(errs.PasswordNotMatch), nil
	}
	ok, err = h.passwordExp.MatchString(req.Password)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return errorResult(errs.PasswordFormatError), nil
	}
	u, err := h.svc.Signup(ctx, domain.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     domain.Role(req.Role),
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrDuplicateEmail):
		return errorResult(errs.EmailDuplicate), nil
	case errors.Is(err, service.ErrRoleNotAllowed):
		return errorResult(errs.RoleNotAllowed), nil
	default:
		return systemErrorResult, err
	}
	err = h.setSession(ctx, u)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toProfile(u)}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.svc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidUserOrPassword) {
		return errorResult(errs.InvalidUserOrPassword), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	err = h.setSession(ctx, u)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toProfile(u)}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if errors.Is(err, service.ErrUserNotFound) {
		return errorResult(errs.UserNotFound), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toProfile(u)}, nil
}

// Edit 编辑个人信息
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:     sess.Claims().Uid,
		Name:   req.Name,
		Phone:  req.Phone,
		Avatar: req.Avatar,
	})
	if errors.Is(err, service.ErrUserNotFound) {
		return errorResult(errs.UserNotFound), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) setSession(ctx *ginx.Context, u domain.User) error {
	_, err := session.NewSessionBuilder(ctx, u.Id).
		// 角色和会员标记放进 JWT，其它模块鉴权不用再查用户
		SetJwtData(map[string]string{
			middleware.RoleClaimKey:    u.Role.String(),
			middleware.PremiumClaimKey: strconv.FormatBool(u.IsPremium(time.Now())),
		}).Build()
	return err
}

func (h *Handler) toProfile(u domain.User) Profile {
	return Profile{
		Id:           u.Id,
		Email:        u.Email,
		Name:         u.Name,
		Phone:        u.Phone,
		Role:         u.Role.String(),
		Avatar:       u.Avatar,
		IsPremium:    u.IsPremium(time.Now()),
		PremiumUntil: u.PremiumUntil,
	}
}
