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
	"github.com/ecodeclub/jobmatch/internal/application/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/application/internal/repository/dao"
)

var (
	ErrDuplicateApplication = dao.ErrDuplicateApplication
	ErrApplicationNotFound  = dao.ErrRecordNotFound
	ErrStatusConflict       = dao.ErrStatusConflict
)

//go:generate mockgen -source=./application.go -package=repomocks -destination=mocks/application.mock.go ApplicationRepository
type ApplicationRepository interface {
	Create(ctx context.Context, a domain.Application) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Application, error)
	ListByApplicant(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, error)
	CountByApplicant(ctx context.Context, uid int64) (int64, error)
	ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]domain.Application, error)
	CountByJob(ctx context.Context, jobId int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status, note string) error
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (r *applicationRepository) Create(ctx context.Context, a domain.Application) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(a))
}

func (r *applicationRepository) FindById(ctx context.Context, id int64) (domain.Application, error) {
	a, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	return r.toDomain(a), nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, error) {
	list, err := r.dao.ListByApplicant(ctx, uid, offset, limit)
	return r.toDomains(list), err
}

func (r *applicationRepository) CountByApplicant(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByApplicant(ctx, uid)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]domain.Application, error) {
	list, err := r.dao.ListByJob(ctx, jobId, offset, limit)
	return r.toDomains(list), err
}

func (r *applicationRepository) CountByJob(ctx context.Context, jobId int64) (int64, error) {
	return r.dao.CountByJob(ctx, jobId)
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.Status, note string) error {
	return r.dao.UpdateStatus(ctx, id, from.String(), to.String(), note)
}

func (r *applicationRepository) toDomains(list []dao.Application) []domain.Application {
	return slice.Map(list, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	})
}

func (r *applicationRepository) toEntity(a domain.Application) dao.Application {
	return dao.Application{
		Id:          a.Id,
		JobId:       a.JobId,
		JobTitle:    a.JobTitle,
		Company:     a.Company,
		RecruiterId: a.RecruiterId,
		ApplicantId: a.ApplicantId,
		ResumeId:    a.ResumeId,
		CoverLetter: a.CoverLetter,
		Status:      a.Status.String(),
		MatchScore:  a.MatchScore,
		Match:       dao.MatchSnapshot(a.Match),
		Note:        a.Note,
		Ctime:       a.Ctime,
		Utime:       a.Utime,
	}
}

func (r *applicationRepository) toDomain(a dao.Application) domain.Application {
	return domain.Application{
		Id:          a.Id,
		JobId:       a.JobId,
		JobTitle:    a.JobTitle,
		Company:     a.Company,
		RecruiterId: a.RecruiterId,
		ApplicantId: a.ApplicantId,
		ResumeId:    a.ResumeId,
		CoverLetter: a.CoverLetter,
		Status:      domain.Status(a.Status),
		MatchScore:  a.MatchScore,
		Match:       domain.MatchSnapshot(a.Match),
		Note:        a.Note,
		Ctime:       a.Ctime,
		Utime:       a.Utime,
	}
}
