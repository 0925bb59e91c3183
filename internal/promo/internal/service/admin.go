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

	"github.com/ecodeclub/jobmatch/internal/promo/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

type AdminService interface {
	// Create code 为空时自动生成
	Create(ctx context.Context, p domain.PromoCode) (domain.PromoCode, error)
	List(ctx context.Context, offset, limit int) ([]domain.PromoCode, int64, error)
	Deactivate(ctx context.Context, id int64) error
}

func (s *service) Create(ctx context.Context, p domain.PromoCode) (domain.PromoCode, error) {
	if err := p.Validate(); err != nil {
		return domain.PromoCode{}, err
	}
	p.Active = true
	p.UsedCount = 0
	p.Code = domain.NormalizeCode(p.Code)
	if p.Code != "" {
		return s.create(ctx, p)
	}
	var err error
	for i := 0; i < maxGenerateRetries; i++ {
		p.Code = s.genFn()
		var res domain.PromoCode
		res, err = s.create(ctx, p)
		if !errors.Is(err, ErrDuplicateCode) {
			return res, err
		}
		s.logger.Warn("生成的优惠码重复，重新生成", elog.String("code", p.Code))
	}
	return domain.PromoCode{}, err
}

func (s *service) create(ctx context.Context, p domain.PromoCode) (domain.PromoCode, error) {
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.PromoCode{}, err
	}
	p.Id = id
	return p, nil
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.PromoCode, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.PromoCode
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return list, total, eg.Wait()
}

func (s *service) Deactivate(ctx context.Context, id int64) error {
	return s.repo.Deactivate(ctx, id)
}
