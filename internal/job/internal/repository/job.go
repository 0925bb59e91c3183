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
	"github.com/ecodeclub/jobmatch/internal/job/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/job/internal/repository/dao"
)

var ErrJobNotFound = dao.ErrRecordNotFound

type JobRepository interface {
	Create(ctx context.Context, j domain.Job) (int64, error)
	Update(ctx context.Context, j domain.Job) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	FindById(ctx context.Context, id int64) (domain.Job, error)
	List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Job, error)
	Count(ctx context.Context, f domain.Filter) (int64, error)
	ListByRecruiter(ctx context.Context, uid int64, offset, limit int) ([]domain.Job, error)
	CountByRecruiter(ctx context.Context, uid int64) (int64, error)
}

type jobRepository struct {
	dao dao.JobDAO
}

func NewJobRepository(d dao.JobDAO) JobRepository {
	return &jobRepository{dao: d}
}

func (r *jobRepository) Create(ctx context.Context, j domain.Job) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(j))
}

func (r *jobRepository) Update(ctx context.Context, j domain.Job) error {
	return r.dao.Update(ctx, r.toEntity(j))
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.String())
}

func (r *jobRepository) FindById(ctx context.Context, id int64) (domain.Job, error) {
	j, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	return r.toDomain(j), nil
}

func (r *jobRepository) List(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.List(ctx, r.openFilter(f), offset, limit)
	return r.toDomains(jobs), err
}

func (r *jobRepository) Count(ctx context.Context, f domain.Filter) (int64, error) {
	return r.dao.Count(ctx, r.openFilter(f))
}

func (r *jobRepository) ListByRecruiter(ctx context.Context, uid int64, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.List(ctx, dao.Filter{RecruiterId: uid}, offset, limit)
	return r.toDomains(jobs), err
}

func (r *jobRepository) CountByRecruiter(ctx context.Context, uid int64) (int64, error) {
	return r.dao.Count(ctx, dao.Filter{RecruiterId: uid})
}

// openFilter 对外展示的列表只有开放中的岗位
func (r *jobRepository) openFilter(f domain.Filter) dao.Filter {
	return dao.Filter{
		Status:   domain.StatusOpen.String(),
		Keyword:  f.Keyword,
		Type:     f.Type.String(),
		Location: f.Location,
		Remote:   f.Remote,
	}
}

func (r *jobRepository) toDomains(jobs []dao.Job) []domain.Job {
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	})
}

func (r *jobRepository) toEntity(j domain.Job) dao.Job {
	return dao.Job{
		Id:              j.Id,
		RecruiterId:     j.RecruiterId,
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		Remote:          j.Remote,
		Type:            j.Type.String(),
		Description:     j.Description,
		RequiredSkills:  j.RequiredSkills,
		PreferredSkills: j.PreferredSkills,
		MinYears:        j.MinYears,
		MaxYears:        j.MaxYears,
		Education:       j.Education.String(),
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		Status:          j.Status.String(),
	}
}

func (r *jobRepository) toDomain(j dao.Job) domain.Job {
	return domain.Job{
		Id:              j.Id,
		RecruiterId:     j.RecruiterId,
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		Remote:          j.Remote,
		Type:            domain.Type(j.Type),
		Description:     j.Description,
		RequiredSkills:  j.RequiredSkills,
		PreferredSkills: j.PreferredSkills,
		MinYears:        j.MinYears,
		MaxYears:        j.MaxYears,
		Education:       domain.Education(j.Education),
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		Status:          domain.Status(j.Status),
		Ctime:           j.Ctime,
		Utime:           j.Utime,
	}
}
