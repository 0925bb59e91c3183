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
	"testing"

	"github.com/ecodeclub/jobmatch/internal/application/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/application/internal/event"
	"github.com/ecodeclub/jobmatch/internal/application/internal/repository"
	repomocks "github.com/ecodeclub/jobmatch/internal/application/internal/repository/mocks"
	"github.com/ecodeclub/jobmatch/internal/job"
	jobmocks "github.com/ecodeclub/jobmatch/internal/job/mocks"
	"github.com/ecodeclub/jobmatch/internal/matching"
	matchingmocks "github.com/ecodeclub/jobmatch/internal/matching/mocks"
	"github.com/ecodeclub/jobmatch/internal/resume"
	resumemocks "github.com/ecodeclub/jobmatch/internal/resume/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeProducer struct {
	events []event.ApplicationEvent
	err    error
}

func (f *fakeProducer) Produce(ctx context.Context, evt event.ApplicationEvent) error {
	f.events = append(f.events, evt)
	return f.err
}

var (
	openJob = job.Job{
		Id:          100,
		RecruiterId: 9,
		Title:       "Go Developer",
		Company:     "Safari Tech",
		Status:      job.StatusOpen,
	}
	latestResume = resume.Resume{Id: 10, Uid: 1, Text: "Go developer"}
)

type deps struct {
	repo      *repomocks.MockApplicationRepository
	jobSvc    *jobmocks.MockService
	resumeSvc *resumemocks.MockService
	matchSvc  *matchingmocks.MockService
	producer  *fakeProducer
}

func newTestService(ctrl *gomock.Controller) (Service, *deps) {
	d := &deps{
		repo:      repomocks.NewMockApplicationRepository(ctrl),
		jobSvc:    jobmocks.NewMockService(ctrl),
		resumeSvc: resumemocks.NewMockService(ctrl),
		matchSvc:  matchingmocks.NewMockService(ctrl),
		producer:  &fakeProducer{},
	}
	return NewService(d.repo, d.jobSvc, d.resumeSvc, d.matchSvc, d.producer), d
}

func TestService_Apply(t *testing.T) {
	testCases := []struct {
		name    string
		role    string
		before  func(d *deps)
		wantErr error
		wantApp domain.Application
		wantEvt int
	}{
		{
			name: "投递成功",
			role: "jobseeker",
			before: func(d *deps) {
				d.jobSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(openJob, nil)
				d.resumeSvc.EXPECT().Latest(gomock.Any(), int64(1)).Return(latestResume, nil)
				d.matchSvc.EXPECT().Match(gomock.Any(), int64(1), latestResume, openJob, false).
					Return(matching.Result{
						Score:         0.8,
						Similarity:    0.7,
						FeatureScore:  0.9,
						MatchedSkills: []string{"go"},
						Strategy:      matching.StrategySimilarityFeatures,
					}, nil)
				d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a domain.Application) (int64, error) {
						assert.Equal(t, domain.StatusApplied, a.Status)
						assert.Equal(t, int64(9), a.RecruiterId)
						assert.Equal(t, 0.8, a.MatchScore)
						return 1000, nil
					})
				d.repo.EXPECT().FindById(gomock.Any(), int64(1000)).Return(domain.Application{
					Id:          1000,
					JobId:       100,
					JobTitle:    "Go Developer",
					Company:     "Safari Tech",
					RecruiterId: 9,
					ApplicantId: 1,
					ResumeId:    10,
					CoverLetter: "hello",
					Status:      domain.StatusApplied,
					MatchScore:  0.8,
					Ctime:       111,
					Utime:       111,
				}, nil)
			},
			wantApp: domain.Application{
				Id:          1000,
				JobId:       100,
				JobTitle:    "Go Developer",
				Company:     "Safari Tech",
				RecruiterId: 9,
				ApplicantId: 1,
				ResumeId:    10,
				CoverLetter: "hello",
				Status:      domain.StatusApplied,
				MatchScore:  0.8,
				Ctime:       111,
				Utime:       111,
			},
			wantEvt: 1,
		},
		{
			name: "打分失败也能投递",
			role: "intern",
			before: func(d *deps) {
				d.jobSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(openJob, nil)
				d.resumeSvc.EXPECT().Latest(gomock.Any(), int64(1)).Return(latestResume, nil)
				d.matchSvc.EXPECT().Match(gomock.Any(), int64(1), latestResume, openJob, false).
					Return(matching.Result{}, errors.New("mock error"))
				d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1001), nil)
				d.repo.EXPECT().FindById(gomock.Any(), int64(1001)).Return(domain.Application{
					Id:          1001,
					JobId:       100,
					ApplicantId: 1,
					Status:      domain.StatusApplied,
				}, nil)
			},
			wantApp: domain.Application{
				Id:          1001,
				JobId:       100,
				ApplicantId: 1,
				Status:      domain.StatusApplied,
			},
			wantEvt: 1,
		},
		{
			name:    "招聘方不能投递",
			role:    "recruiter",
			before:  func(d *deps) {},
			wantErr: ErrRoleNotAllowed,
		},
		{
			name: "岗位不存在",
			role: "jobseeker",
			before: func(d *deps) {
				d.jobSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(job.Job{}, job.ErrJobNotFound)
			},
			wantErr: ErrJobNotFound,
		},
		{
			name: "岗位已关闭",
			role: "jobseeker",
			before: func(d *deps) {
				closed := openJob
				closed.Status = job.StatusClosed
				d.jobSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(closed, nil)
			},
			wantErr: ErrJobClosed,
		},
		{
			name: "没有简历",
			role: "jobseeker",
			before: func(d *deps) {
				d.jobSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(openJob, nil)
				d.resumeSvc.EXPECT().Latest(gomock.Any(), int64(1)).Return(resume.Resume{}, resume.ErrResumeNotFound)
			},
			wantErr: ErrNoResume,
		},
		{
			name: "重复投递",
			role: "jobseeker",
			before: func(d *deps) {
				d.jobSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(openJob, nil)
				d.resumeSvc.EXPECT().Latest(gomock.Any(), int64(1)).Return(latestResume, nil)
				d.matchSvc.EXPECT().Match(gomock.Any(), int64(1), latestResume, openJob, false).
					Return(matching.Result{Score: 0.5}, nil)
				d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrDuplicateApplication)
			},
			wantErr: ErrDuplicateApplication,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, d := newTestService(ctrl)
			tc.before(d)
			app, err := svc.Apply(context.Background(), 1, tc.role, 100, "hello")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Len(t, d.producer.events, tc.wantEvt)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantApp, app)
			evt := d.producer.events[0]
			assert.Equal(t, event.TypeCreated, evt.Type)
			assert.Equal(t, tc.wantApp.Id, evt.ApplicationId)
			assert.Equal(t, "applied", evt.Status)
		})
	}
}

func TestService_Detail(t *testing.T) {
	app := domain.Application{Id: 1000, ApplicantId: 1, RecruiterId: 9, Status: domain.StatusApplied}
	testCases := []struct {
		name    string
		uid     int64
		wantErr error
	}{
		{name: "投递人查看", uid: 1},
		{name: "招聘方查看", uid: 9},
		{name: "其他人查看", uid: 2, wantErr: ErrPermissionDenied},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, d := newTestService(ctrl)
			d.repo.EXPECT().FindById(gomock.Any(), int64(1000)).Return(app, nil)
			res, err := svc.Detail(context.Background(), tc.uid, 1000)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, app, res)
			}
		})
	}
}

func TestService_ListByJob(t *testing.T) {
	t.Run("非岗位发布者", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, d := newTestService(ctrl)
		d.jobSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(openJob, nil)
		_, _, err := svc.ListByJob(context.Background(), 2, 100, 0, 10)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
	t.Run("岗位发布者", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, d := newTestService(ctrl)
		list := []domain.Application{{Id: 2, MatchScore: 0.9}, {Id: 1, MatchScore: 0.3}}
		d.jobSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(openJob, nil)
		d.repo.EXPECT().ListByJob(gomock.Any(), int64(100), 0, 10).Return(list, nil)
		d.repo.EXPECT().CountByJob(gomock.Any(), int64(100)).Return(int64(2), nil)
		res, total, err := svc.ListByJob(context.Background(), 9, 100, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, list, res)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name    string
		uid     int64
		current domain.Status
		to      domain.Status
		before  func(d *deps)
		wantErr error
		wantEvt int
	}{
		{
			name:    "进入面试",
			uid:     9,
			current: domain.StatusInReview,
			to:      domain.StatusInterview,
			before: func(d *deps) {
				d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1000),
					domain.StatusInReview, domain.StatusInterview, "周五面试").Return(nil)
			},
			wantEvt: 1,
		},
		{
			name:    "非岗位发布者",
			uid:     1,
			current: domain.StatusApplied,
			to:      domain.StatusInReview,
			before:  func(d *deps) {},
			wantErr: ErrPermissionDenied,
		},
		{
			name:    "状态不能回退",
			uid:     9,
			current: domain.StatusInterview,
			to:      domain.StatusInReview,
			before:  func(d *deps) {},
			wantErr: ErrInvalidStatusTransition,
		},
		{
			name:    "终态不能修改",
			uid:     9,
			current: domain.StatusRejected,
			to:      domain.StatusHired,
			before:  func(d *deps) {},
			wantErr: ErrInvalidStatusTransition,
		},
		{
			name:    "招聘方不能撤回",
			uid:     9,
			current: domain.StatusApplied,
			to:      domain.StatusWithdrawn,
			before:  func(d *deps) {},
			wantErr: ErrInvalidStatusTransition,
		},
		{
			name:    "并发修改",
			uid:     9,
			current: domain.StatusApplied,
			to:      domain.StatusRejected,
			before: func(d *deps) {
				d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1000),
					domain.StatusApplied, domain.StatusRejected, "周五面试").Return(repository.ErrStatusConflict)
			},
			wantErr: ErrInvalidStatusTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, d := newTestService(ctrl)
			d.repo.EXPECT().FindById(gomock.Any(), int64(1000)).Return(domain.Application{
				Id:          1000,
				ApplicantId: 1,
				RecruiterId: 9,
				Status:      tc.current,
			}, nil)
			tc.before(d)
			err := svc.UpdateStatus(context.Background(), tc.uid, 1000, tc.to, "周五面试")
			assert.ErrorIs(t, err, tc.wantErr)
			require.Len(t, d.producer.events, tc.wantEvt)
			if tc.wantEvt > 0 {
				evt := d.producer.events[0]
				assert.Equal(t, event.TypeStatusChanged, evt.Type)
				assert.Equal(t, tc.current.String(), evt.OldStatus)
				assert.Equal(t, tc.to.String(), evt.Status)
				assert.Equal(t, "周五面试", evt.Note)
			}
		})
	}
}

func TestService_Withdraw(t *testing.T) {
	t.Run("投递人撤回", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, d := newTestService(ctrl)
		d.repo.EXPECT().FindById(gomock.Any(), int64(1000)).Return(domain.Application{
			Id: 1000, ApplicantId: 1, RecruiterId: 9, Status: domain.StatusShortlisted,
		}, nil)
		d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1000),
			domain.StatusShortlisted, domain.StatusWithdrawn, "").Return(nil)
		err := svc.Withdraw(context.Background(), 1, 1000)
		require.NoError(t, err)
		require.Len(t, d.producer.events, 1)
		assert.Equal(t, "withdrawn", d.producer.events[0].Status)
	})
	t.Run("其他人撤回", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, d := newTestService(ctrl)
		d.repo.EXPECT().FindById(gomock.Any(), int64(1000)).Return(domain.Application{
			Id: 1000, ApplicantId: 1, RecruiterId: 9, Status: domain.StatusApplied,
		}, nil)
		err := svc.Withdraw(context.Background(), 9, 1000)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}
