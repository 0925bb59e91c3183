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

	"github.com/ecodeclub/jobmatch/internal/promo/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/promo/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrPromoNotFound  = repository.ErrPromoNotFound
	ErrDuplicateCode  = repository.ErrDuplicateCode
	ErrInvalidPromo   = domain.ErrInvalidPromo
	ErrPromoExpired   = domain.ErrPromoExpired
	ErrPromoExhausted = domain.ErrPromoExhausted
	ErrPromoInactive  = domain.ErrPromoInactive
)

const (
	codeLength = 8
	// 生成的优惠码撞上已有的优惠码时重试的次数
	maxGenerateRetries = 3
)

//go:generate mockgen -source=./promo.go -destination=../../mocks/promo.mock.go -package=promomocks Service
type Service interface {
	// Validate 只计算优惠，不占用次数
	Validate(ctx context.Context, code string, amount int64) (domain.Quote, error)
	// Redeem 占用一次使用次数
	Redeem(ctx context.Context, code string) error
}

type service struct {
	repo   repository.PromoCodeRepository
	genFn  func() string
	logger *elog.Component
}

func NewService(repo repository.PromoCodeRepository) Service {
	return newService(repo)
}

func NewAdminService(repo repository.PromoCodeRepository) AdminService {
	return newService(repo)
}

func newService(repo repository.PromoCodeRepository) *service {
	return &service{
		repo:   repo,
		genFn:  generateCode,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Validate(ctx context.Context, code string, amount int64) (domain.Quote, error) {
	p, err := s.repo.FindByCode(ctx, domain.NormalizeCode(code))
	if err != nil {
		return domain.Quote{}, err
	}
	if err = p.Usable(time.Now()); err != nil {
		return domain.Quote{}, fmt.Errorf("%w: code=%s", err, p.Code)
	}
	return p.Quote(amount), nil
}

func (s *service) Redeem(ctx context.Context, code string) error {
	code = domain.NormalizeCode(code)
	now := time.Now()
	err := s.repo.IncrUsed(ctx, code, now.UnixMilli())
	if !errors.Is(err, repository.ErrNotRedeemable) {
		return err
	}
	// 更新失败时再查一次，给出具体原因
	p, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if er := p.Usable(now); er != nil {
		return fmt.Errorf("%w: code=%s", er, code)
	}
	// 并发下被别人抢走了最后一次
	return fmt.Errorf("%w: code=%s", ErrPromoExhausted, code)
}

func generateCode() string {
	return strings.ToUpper(shortuuid.New()[:codeLength])
}
