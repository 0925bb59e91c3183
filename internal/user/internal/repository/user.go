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

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobmatch/internal/user/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/user/internal/repository/cache"
	"github.com/ecodeclub/jobmatch/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrDuplicateEmail = dao.ErrDuplicateEmail
	ErrUserNotFound   = dao.ErrRecordNotFound
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	// ExtendPremium 返回 false 表示 sn 已经处理过
	ExtendPremium(ctx context.Context, id int64, sn string, days time.Duration, now time.Time) (bool, error)
}

type CachedUserRepository struct {
	dao    dao.UserDAO
	cache  cache.UserCache
	logger *elog.Component
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	if er := ur.cache.Set(ctx, u); er != nil {
		// 缓存失败不影响业务
		ur.logger.Warn("回写用户缓存失败", elog.Int64("uid", id), elog.FieldErr(er))
	}
	return u, nil
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	users, err := ur.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(users, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), nil
}

func (ur *CachedUserRepository) ExtendPremium(ctx context.Context, id int64, sn string, days time.Duration, now time.Time) (bool, error) {
	applied, err := ur.dao.ExtendPremium(ctx, id, sn, days.Milliseconds(), now.UnixMilli())
	if err != nil || !applied {
		return applied, err
	}
	err = ur.cache.Delete(ctx, id)
	if err != nil && !errors.Is(err, context.Canceled) {
		ur.logger.Warn("删除用户缓存失败", elog.Int64("uid", id), elog.FieldErr(err))
	}
	return true, nil
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:           u.Id,
		Email:        u.Email,
		Password:     u.Password,
		Name:         u.Name,
		Phone:        u.Phone,
		Role:         u.Role.String(),
		Avatar:       u.Avatar,
		PremiumUntil: u.PremiumUntil,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:           ue.Id,
		Email:        ue.Email,
		Password:     ue.Password,
		Name:         ue.Name,
		Phone:        ue.Phone,
		Role:         domain.Role(ue.Role),
		Avatar:       ue.Avatar,
		PremiumUntil: ue.PremiumUntil,
		Ctime:        ue.Ctime,
		Utime:        ue.Utime,
	}
}
