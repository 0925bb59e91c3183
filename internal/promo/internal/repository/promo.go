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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobmatch/internal/promo/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/promo/internal/repository/dao"
)

var (
	ErrPromoNotFound = dao.ErrRecordNotFound
	ErrDuplicateCode = dao.ErrDuplicateCode
	ErrNotRedeemable = dao.ErrNotRedeemable
)

//go:generate mockgen -source=./promo.go -package=repomocks -destination=mocks/promo.mock.go PromoCodeRepository
type PromoCodeRepository interface {
	Create(ctx context.Context, p domain.PromoCode) (int64, error)
	FindByCode(ctx context.Context, code string) (domain.PromoCode, error)
	List(ctx context.Context, offset, limit int) ([]domain.PromoCode, error)
	Count(ctx context.Context) (int64, error)
	Deactivate(ctx context.Context, id int64) error
	IncrUsed(ctx context.Context, code string, now int64) error
}

type promoCodeRepository struct {
	dao dao.PromoCodeDAO
}

func NewPromoCodeRepository(d dao.PromoCodeDAO) PromoCodeRepository {
	return &promoCodeRepository{dao: d}
}

func (r *promoCodeRepository) Create(ctx context.Context, p domain.PromoCode) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(p))
}

func (r *promoCodeRepository) FindByCode(ctx context.Context, code string) (domain.PromoCode, error) {
	p, err := r.dao.FindByCode(ctx, code)
	return r.toDomain(p), err
}

func (r *promoCodeRepository) List(ctx context.Context, offset, limit int) ([]domain.PromoCode, error) {
	list, err := r.dao.List(ctx, offset, limit)
	return slice.Map(list, func(idx int, src dao.PromoCode) domain.PromoCode {
		return r.toDomain(src)
	}), err
}

func (r *promoCodeRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *promoCodeRepository) Deactivate(ctx context.Context, id int64) error {
	return r.dao.Deactivate(ctx, id)
}

func (r *promoCodeRepository) IncrUsed(ctx context.Context, code string, now int64) error {
	return r.dao.IncrUsed(ctx, code, now)
}

func (r *promoCodeRepository) toEntity(p domain.PromoCode) dao.PromoCode {
	return dao.PromoCode{
		Id:            p.Id,
		Code:          p.Code,
		Description:   p.Description,
		DiscountType:  p.DiscountType.String(),
		DiscountValue: p.DiscountValue,
		MaxUses:       p.MaxUses,
		UsedCount:     p.UsedCount,
		ExpiresAt:     p.ExpiresAt,
		Active:        p.Active,
		Ctime:         p.Ctime,
		Utime:         p.Utime,
	}
}

func (r *promoCodeRepository) toDomain(p dao.PromoCode) domain.PromoCode {
	return domain.PromoCode{
		Id:            p.Id,
		Code:          p.Code,
		Description:   p.Description,
		DiscountType:  domain.DiscountType(p.DiscountType),
		DiscountValue: p.DiscountValue,
		MaxUses:       p.MaxUses,
		UsedCount:     p.UsedCount,
		ExpiresAt:     p.ExpiresAt,
		Active:        p.Active,
		Ctime:         p.Ctime,
		Utime:         p.Utime,
	}
}
