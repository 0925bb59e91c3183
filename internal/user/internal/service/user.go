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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobmatch/internal/user/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/user/internal/event"
	"github.com/ecodeclub/jobmatch/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateEmail        = repository.ErrDuplicateEmail
	ErrUserNotFound          = repository.ErrUserNotFound
	ErrInvalidUserOrPassword = errors.New("邮箱或密码不对")
	ErrRoleNotAllowed        = errors.New("不允许注册该角色")
	ErrInvalidPremiumDays    = errors.New("会员天数必须大于 0")
	ErrMissingPaymentSN      = errors.New("缺少支付流水号")
)

const day = 24 * time.Hour

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
//go:generate mockgen -source=./user.go -destination=../../mocks/user.mock.go -package=usermocks UserService
type UserService interface {
	// Signup 注册成功之后返回的 User 不包含密码
	Signup(ctx context.Context, u domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// UpdateNonSensitiveInfo 只更新姓名、电话、头像
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	// ActivatePremium 从 max(当前时间, 原到期时间) 开始顺延 days 天。
	// 同一个支付流水号 sn 只会开通一次，重复的消息直接返回当前用户
	ActivatePremium(ctx context.Context, uid int64, sn string, days int) (domain.User, error)
}

type userService struct {
	repo     repository.UserRepository
	producer event.RegistrationEventProducer
	// 配置里的管理员邮箱
	admins []string
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository,
	p event.RegistrationEventProducer,
	admins []string) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		admins: slice.Map(admins, func(idx int, src string) string {
			return normalizeEmail(src)
		}),
		logger: elog.DefaultLogger,
	}
}

func (svc *userService) Signup(ctx context.Context, u domain.User) (domain.User, error) {
	u.Email = normalizeEmail(u.Email)
	if slice.Contains(svc.admins, u.Email) {
		u.Role = domain.RoleAdmin
	} else if !u.Role.CanSelfRegister() {
		return domain.User{}, fmt.Errorf("%w: role=%s", ErrRoleNotAllowed, u.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("加密密码失败: %w", err)
	}
	u.Password = string(hash)
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id
	u.Password = ""
	evt := event.RegistrationEvent{Uid: id, Email: u.Email, Name: u.Name, Role: u.Role.String()}
	if er := svc.producer.Produce(ctx, evt); er != nil {
		// 欢迎邮件丢了不影响注册
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(er),
			elog.Int64("uid", id))
	}
	return u, nil
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 邮箱、角色、密码都不允许在这里修改
	return svc.repo.Update(ctx, domain.User{
		Id:     user.Id,
		Name:   user.Name,
		Phone:  user.Phone,
		Avatar: user.Avatar,
	})
}

func (svc *userService) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *userService) ActivatePremium(ctx context.Context, uid int64, sn string, days int) (domain.User, error) {
	if days <= 0 {
		return domain.User{}, fmt.Errorf("%w: days=%d", ErrInvalidPremiumDays, days)
	}
	if sn == "" {
		return domain.User{}, fmt.Errorf("%w: uid=%d", ErrMissingPaymentSN, uid)
	}
	applied, err := svc.repo.ExtendPremium(ctx, uid, sn, time.Duration(days)*day, time.Now())
	if err != nil {
		return domain.User{}, err
	}
	if !applied {
		svc.logger.Info("重复的会员开通消息",
			elog.Int64("uid", uid),
			elog.String("sn", sn))
	}
	return svc.repo.FindById(ctx, uid)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
