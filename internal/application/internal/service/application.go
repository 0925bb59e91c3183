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

	"github.com/ecodeclub/jobmatch/internal/application/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/application/internal/event"
	"github.com/ecodeclub/jobmatch/internal/application/internal/repository"
	"github.com/ecodeclub/jobmatch/internal/job"
	"github.com/ecodeclub/jobmatch/internal/matching"
	"github.com/ecodeclub/jobmatch/internal/resume"
	"github.com/ecodeclub/jobmatch/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRoleNotAllowed          = errors.New("该角色不能投递")
	ErrJobNotFound             = job.ErrJobNotFound
	ErrJobClosed               = errors.New("岗位已关闭")
	ErrNoResume                = errors.New("没有上传简历")
	ErrDuplicateApplication    = repository.ErrDuplicateApplication
	ErrApplicationNotFound     = repository.ErrApplicationNotFound
	ErrPermissionDenied        = errors.New("无权操作该投递记录")
	ErrInvalidStatusTransition = errors.New("非法的状态变更")
)

type Service interface {
	// Apply 使用最新的简历投递，打分失败不影响投递
	Apply(ctx context.Context, uid int64, role string, jobId int64, coverLetter string) (domain.Application, error)
	// Detail 投递人和岗位发布者可以查看
	Detail(ctx context.Context, uid, id int64) (domain.Application, error)
	ListMine(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, int64, error)
	// ListByJob 只有岗位发布者可以查看，按照匹配分数排序
	ListByJob(ctx context.Context, uid, jobId int64, offset, limit int) ([]domain.Application, int64, error)
	UpdateStatus(ctx context.Context, uid, id int64, status domain.Status, note string) error
	Withdraw(ctx context.Context, uid, id int64) error
}

type service struct {
	repo      repository.ApplicationRepository
	jobSvc    job.Service
	resumeSvc resume.Service
	matchSvc  matching.Service
	producer  event.ApplicationEventProducer
	logger    *elog.Component
}

func NewService(repo repository.ApplicationRepository,
	jobSvc job.Service,
	resumeSvc resume.Service,
	matchSvc matching.Service,
	p event.ApplicationEventProducer) Service {
	return &service{
		repo:      repo,
		jobSvc:    jobSvc,
		resumeSvc: resumeSvc,
		matchSvc:  matchSvc,
		producer:  p,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) Apply(ctx context.Context, uid int64, role string, jobId int64, coverLetter string) (domain.Application, error) {
	if role != user.RoleJobSeeker.String() && role != user.RoleIntern.String() {
		return domain.Application{}, fmt.Errorf("%w: role=%s", ErrRoleNotAllowed, role)
	}
	j, err := s.jobSvc.Detail(ctx, jobId)
	if err != nil {
		return domain.Application{}, err
	}
	if !j.IsOpen() {
		return domain.Application{}, ErrJobClosed
	}
	r, err := s.resumeSvc.Latest(ctx, uid)
	if errors.Is(err, resume.ErrResumeNotFound) {
		return domain.Application{}, ErrNoResume
	}
	if err != nil {
		return domain.Application{}, err
	}

	app := domain.Application{
		JobId:       j.Id,
		JobTitle:    j.Title,
		Company:     j.Company,
		RecruiterId: j.RecruiterId,
		ApplicantId: uid,
		ResumeId:    r.Id,
		CoverLetter: coverLetter,
		Status:      domain.StatusApplied,
	}
	res, err := s.matchSvc.Match(ctx, uid, r, j, false)
	if err != nil {
		s.logger.Error("投递时计算匹配分数失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.Int64("jobId", jobId))
	} else {
		app.MatchScore = res.Score
		app.Match = domain.MatchSnapshot{
			Similarity:    res.Similarity,
			FeatureScore:  res.FeatureScore,
			LLMScore:      res.LLMScore,
			MatchedSkills: res.MatchedSkills,
			MissingSkills: res.MissingSkills,
			Strategy:      res.Strategy.String(),
		}
	}
	app.Id, err = s.repo.Create(ctx, app)
	if err != nil {
		return domain.Application{}, err
	}
	// 重新查一次，拿到数据库里的时间戳
	created, err := s.repo.FindById(ctx, app.Id)
	if err == nil {
		app = created
	}
	s.produce(ctx, app, event.TypeCreated, "")
	return app, nil
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Application, error) {
	app, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if !app.CanView(uid) {
		return domain.Application{}, ErrPermissionDenied
	}
	return app, nil
}

func (s *service) ListMine(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.Application
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.ListByApplicant(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByApplicant(ctx, uid)
		return err
	})
	return list, total, eg.Wait()
}

func (s *service) ListByJob(ctx context.Context, uid, jobId int64, offset, limit int) ([]domain.Application, int64, error) {
	j, err := s.jobSvc.Detail(ctx, jobId)
	if err != nil {
		return nil, 0, err
	}
	if j.RecruiterId != uid {
		return nil, 0, ErrPermissionDenied
	}
	var (
		eg    errgroup.Group
		list  []domain.Application
		total int64
	)
	eg.Go(func() error {
		var er error
		list, er = s.repo.ListByJob(ctx, jobId, offset, limit)
		return er
	})
	eg.Go(func() error {
		var er error
		total, er = s.repo.CountByJob(ctx, jobId)
		return er
	})
	return list, total, eg.Wait()
}

func (s *service) UpdateStatus(ctx context.Context, uid, id int64, status domain.Status, note string) error {
	app, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if app.RecruiterId != uid {
		return ErrPermissionDenied
	}
	// 撤回只能由投递人操作
	if status == domain.StatusWithdrawn {
		return fmt.Errorf("%w: 招聘方不能撤回投递", ErrInvalidStatusTransition)
	}
	return s.transit(ctx, app, status, note)
}

func (s *service) Withdraw(ctx context.Context, uid, id int64) error {
	app, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if app.ApplicantId != uid {
		return ErrPermissionDenied
	}
	return s.transit(ctx, app, domain.StatusWithdrawn, "")
}

func (s *service) transit(ctx context.Context, app domain.Application, to domain.Status, note string) error {
	if !app.Status.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, app.Status, to)
	}
	err := s.repo.UpdateStatus(ctx, app.Id, app.Status, to, note)
	if errors.Is(err, repository.ErrStatusConflict) {
		return fmt.Errorf("%w: 状态已经不是 %s", ErrInvalidStatusTransition, app.Status)
	}
	if err != nil {
		return err
	}
	from := app.Status
	app.Status = to
	app.Note = note
	s.produce(ctx, app, event.TypeStatusChanged, from.String())
	return nil
}

// produce 通知丢了不影响主流程
func (s *service) produce(ctx context.Context, app domain.Application, typ, oldStatus string) {
	err := s.producer.Produce(ctx, event.ApplicationEvent{
		Type:          typ,
		ApplicationId: app.Id,
		JobId:         app.JobId,
		JobTitle:      app.JobTitle,
		Company:       app.Company,
		ApplicantId:   app.ApplicantId,
		RecruiterId:   app.RecruiterId,
		OldStatus:     oldStatus,
		Status:        app.Status.String(),
		Note:          app.Note,
		MatchScore:    app.MatchScore,
	})
	if err != nil {
		s.logger.Error("发送投递事件失败",
			elog.FieldErr(err),
			elog.String("type", typ),
			elog.Int64("applicationId", app.Id))
	}
}
