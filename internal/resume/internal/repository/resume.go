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
	"github.com/ecodeclub/jobmatch/internal/resume/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/repository/dao"
)

var ErrResumeNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./resume.go -package=repomocks -destination=mocks/resume.mock.go ResumeRepository
type ResumeRepository interface {
	Create(ctx context.Context, r domain.Resume) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Resume, error)
	FindLatest(ctx context.Context, uid int64) (domain.Resume, error)
	FindByUid(ctx context.Context, uid int64) ([]domain.Resume, error)
}

type resumeRepository struct {
	dao dao.ResumeDAO
}

func NewResumeRepository(d dao.ResumeDAO) ResumeRepository {
	return &resumeRepository{dao: d}
}

func (r *resumeRepository) Create(ctx context.Context, res domain.Resume) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(res))
}

func (r *resumeRepository) FindById(ctx context.Context, id int64) (domain.Resume, error) {
	res, err := r.dao.FindById(ctx, id)
	return r.toDomain(res), err
}

func (r *resumeRepository) FindLatest(ctx context.Context, uid int64) (domain.Resume, error) {
	res, err := r.dao.FindLatest(ctx, uid)
	return r.toDomain(res), err
}

func (r *resumeRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Resume, error) {
	list, err := r.dao.FindByUid(ctx, uid)
	return slice.Map(list, func(idx int, src dao.Resume) domain.Resume {
		return r.toDomain(src)
	}), err
}

func (r *resumeRepository) toEntity(res domain.Resume) dao.Resume {
	p := res.Profile
	return dao.Resume{
		Id:          res.Id,
		Uid:         res.Uid,
		FileName:    res.FileName,
		ContentType: res.ContentType,
		ObjectKey:   res.ObjectKey,
		Size:        res.Size,
		Text:        res.Text,
		Status:      res.Status.String(),
		Profile: dao.Profile{
			Name:             p.Name,
			Email:            p.Email,
			Phone:            p.Phone,
			Summary:          p.Summary,
			Skills:           p.Skills,
			TotalYears:       p.TotalYears,
			HighestEducation: p.HighestEducation,
			Location:         p.Location,
			Educations: slice.Map(p.Educations, func(idx int, src domain.Education) dao.Education {
				return dao.Education(src)
			}),
			Experiences: slice.Map(p.Experiences, func(idx int, src domain.Experience) dao.Experience {
				return dao.Experience(src)
			}),
		},
	}
}

func (r *resumeRepository) toDomain(res dao.Resume) domain.Resume {
	p := res.Profile
	return domain.Resume{
		Id:          res.Id,
		Uid:         res.Uid,
		FileName:    res.FileName,
		ContentType: res.ContentType,
		ObjectKey:   res.ObjectKey,
		Size:        res.Size,
		Text:        res.Text,
		Status:      domain.Status(res.Status),
		Ctime:       res.Ctime,
		Utime:       res.Utime,
		Profile: domain.Profile{
			Name:             p.Name,
			Email:            p.Email,
			Phone:            p.Phone,
			Summary:          p.Summary,
			Skills:           p.Skills,
			TotalYears:       p.TotalYears,
			HighestEducation: p.HighestEducation,
			Location:         p.Location,
			Educations: slice.Map(p.Educations, func(idx int, src dao.Education) domain.Education {
				return domain.Education(src)
			}),
			Experiences: slice.Map(p.Experiences, func(idx int, src dao.Experience) domain.Experience {
				return domain.Experience(src)
			}),
		},
	}
}
