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

	"github.com/ecodeclub/jobmatch/internal/job/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/job/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound      = repository.ErrJobNotFound
	ErrInvalidJob       = domain.ErrInvalidJob
	ErrPermissionDenied = errors.New("不是岗位的发布者")
)

//go:generate mockgen -source=./job.go -destination=../../mocks/job.mock.go -package=jobmocks Service
type Service interface {
	// Save Id 为 0 时创建，否则更新。只有发布者自己可以更新
	Save(ctx context.Context, j domain.Job) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Job, error)
	Close(ctx context.Context, uid, id int64) error
	// List 只返回开放中的岗位
	List(ctx context.Context, offset, limit int, f domain.Filter) ([]domain.Job, int64, error)
	ListByRecruiter(ctx context.Context, uid int64, offset, limit int) ([]domain.Job, int64, error)
}

type service struct {
	repo repository.JobRepository
}

func NewService(repo repository.JobRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, j domain.Job) (int64, error) {
	if err := j.Validate(); err != nil {
		return 0, err
	}
	if j.Id == 0 {
		j.Status = domain.StatusOpen
		return s.repo.Create(ctx, j)
	}
	if _, err := s.ownedJob(ctx, j.RecruiterId, j.Id); err != nil {
		return 0, err
	}
	return j.Id, s.repo.Update(ctx, j)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) Close(ctx context.Context, uid, id int64) error {
	j, err := s.ownedJob(ctx, uid, id)
	if err != nil {
		return err
	}
	if !j.IsOpen() {
		return nil
	}
	return s.repo.UpdateStatus(ctx, id, domain.StatusClosed)
}

func (s *service) List(ctx context.Context, offset, limit int, f domain.Filter) ([]domain.Job, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.Job
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.List(ctx, f, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, f)
		return err
	})
	return jobs, total, eg.Wait()
}

func (s *service) ListByRecruiter(ctx context.Context, uid int64, offset, limit int) ([]domain.Job, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.Job
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.ListByRecruiter(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByRecruiter(ctx, uid)
		return err
	})
	return jobs, total, eg.Wait()
}

func (s *service) ownedJob(ctx context.Context, uid, id int64) (domain.Job, error) {
	j, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	if j.RecruiterId != uid {
		return domain.Job{}, fmt.Errorf("%w: uid=%d, job=%d", ErrPermissionDenied, uid, id)
	}
	return j, nil
}
