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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobmatch/internal/application"
	"github.com/ecodeclub/jobmatch/internal/application/internal/errs"
	"github.com/ecodeclub/jobmatch/internal/application/internal/event"
	"github.com/ecodeclub/jobmatch/internal/application/internal/repository/dao"
	"github.com/ecodeclub/jobmatch/internal/application/internal/web"
	"github.com/ecodeclub/jobmatch/internal/job"
	jobmocks "github.com/ecodeclub/jobmatch/internal/job/mocks"
	"github.com/ecodeclub/jobmatch/internal/matching"
	matchingmocks "github.com/ecodeclub/jobmatch/internal/matching/mocks"
	"github.com/ecodeclub/jobmatch/internal/pkg/middleware"
	"github.com/ecodeclub/jobmatch/internal/pkg/snowflake"
	"github.com/ecodeclub/jobmatch/internal/resume"
	resumemocks "github.com/ecodeclub/jobmatch/internal/resume/mocks"
	"github.com/ecodeclub/jobmatch/internal/test"
	testioc "github.com/ecodeclub/jobmatch/internal/test/ioc"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/mock/gomock"
)

const (
	applicantId = 3001
	recruiterId = 3002
)

var testJob = job.Job{
	Id:          500,
	RecruiterId: recruiterId,
	Title:       "Go Developer",
	Company:     "Safari Tech",
	Status:      job.StatusOpen,
}

type HandlerTestSuite struct {
	suite.Suite
	db     *mongo.Database
	server *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitMongoDB()
	idGen, err := snowflake.NewNodeIDGenerator(4)
	require.NoError(s.T(), err)

	ctrl := gomock.NewController(s.T())
	jobSvc := jobmocks.NewMockService(ctrl)
	jobSvc.EXPECT().Detail(gomock.Any(), testJob.Id).Return(testJob, nil).AnyTimes()
	resumeSvc := resumemocks.NewMockService(ctrl)
	resumeSvc.EXPECT().Latest(gomock.Any(), int64(applicantId)).
		Return(resume.Resume{Id: 77, Uid: applicantId}, nil).AnyTimes()
	matchSvc := matchingmocks.NewMockService(ctrl)
	matchSvc.EXPECT().Match(gomock.Any(), int64(applicantId), gomock.Any(), testJob, false).
		Return(matching.Result{
			Score:         0.756,
			Similarity:    0.8,
			FeatureScore:  0.71,
			MatchedSkills: []string{"go"},
			MissingSkills: []string{"kafka"},
			Strategy:      matching.StrategySimilarityFeatures,
		}, nil).AnyTimes()

	module := application.InitModule(s.db, idGen, testioc.InitMQ(),
		&job.Module{Svc: jobSvc},
		&resume.Module{Svc: resumeSvc},
		&matching.Module{Svc: matchSvc})

	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	// 通过请求头切换登录用户
	server.Use(func(ctx *gin.Context) {
		uid, _ := strconv.ParseInt(ctx.GetHeader("uid"), 10, 64)
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{middleware.RoleClaimKey: ctx.GetHeader("role")},
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	_, err := s.db.Collection(dao.CollectionApplications).DeleteMany(context.Background(), bson.M{})
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestApplyAndDetail() {
	t := s.T()
	applied := doPost[web.Application](t, s.server, "/applications/apply", applicantId, "jobseeker",
		web.ApplyReq{JobId: testJob.Id, CoverLetter: "我熟悉 Go"})
	require.Equal(t, 0, applied.Code)
	app := applied.Data
	assert.True(t, app.Id > 0)
	assert.True(t, app.Ctime > 0)
	assert.Equal(t, "applied", app.Status)
	assert.Equal(t, 75.6, app.MatchScore)
	assert.Equal(t, int64(77), app.ResumeId)

	// 投递人和招聘方看到的都是同一份记录
	for _, viewer := range []struct {
		uid  int64
		role string
	}{{applicantId, "jobseeker"}, {recruiterId, "recruiter"}} {
		detail := doPost[web.Application](t, s.server, "/applications/detail", viewer.uid, viewer.role, web.IdReq{Id: app.Id})
		require.Equal(t, 0, detail.Code)
		assert.Equal(t, app, detail.Data)
	}

	other := doPost[any](t, s.server, "/applications/detail", 9999, "jobseeker", web.IdReq{Id: app.Id})
	assert.Equal(t, errs.PermissionDenied.Code, other.Code)

	dup := doPost[any](t, s.server, "/applications/apply", applicantId, "jobseeker",
		web.ApplyReq{JobId: testJob.Id})
	assert.Equal(t, errs.DuplicateApplication.Code, dup.Code)
}

func (s *HandlerTestSuite) TestStatusFlow() {
	t := s.T()
	applied := doPost[web.Application](t, s.server, "/applications/apply", applicantId, "intern",
		web.ApplyReq{JobId: testJob.Id})
	require.Equal(t, 0, applied.Code)
	id := applied.Data.Id

	res := doPost[any](t, s.server, "/applications/status", recruiterId, "recruiter",
		web.UpdateStatusReq{Id: id, Status: "interview", Note: "周五面试"})
	require.Equal(t, 0, res.Code)

	res = doPost[any](t, s.server, "/applications/status", recruiterId, "recruiter",
		web.UpdateStatusReq{Id: id, Status: "in_review"})
	assert.Equal(t, errs.InvalidTransition.Code, res.Code)

	list := doPost[web.ApplicationList](t, s.server, "/applications/job", recruiterId, "recruiter",
		web.JobApplicationsReq{JobId: testJob.Id, Limit: 10})
	require.Equal(t, 0, list.Code)
	require.Equal(t, int64(1), list.Data.Total)
	assert.Equal(t, "interview", list.Data.List[0].Status)
	assert.Equal(t, "周五面试", list.Data.List[0].Note)

	res = doPost[any](t, s.server, "/applications/withdraw", applicantId, "intern", web.IdReq{Id: id})
	require.Equal(t, 0, res.Code)

	mine := doPost[web.ApplicationList](t, s.server, "/applications/mine", applicantId, "intern", web.Page{Limit: 10})
	require.Equal(t, 0, mine.Code)
	require.Len(t, mine.Data.List, 1)
	assert.Equal(t, "withdrawn", mine.Data.List[0].Status)
}

func (s *HandlerTestSuite) TestApplyAsRecruiter() {
	t := s.T()
	res := doPost[any](t, s.server, "/applications/apply", recruiterId, "recruiter",
		web.ApplyReq{JobId: testJob.Id})
	assert.Equal(t, errs.RoleNotAllowed.Code, res.Code)

	// 求职者不能访问招聘方的接口
	req, err := http.NewRequest(http.MethodPost, "/applications/job",
		iox.NewJSONReader(web.JobApplicationsReq{JobId: testJob.Id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("uid", strconv.Itoa(applicantId))
	req.Header.Set("role", "jobseeker")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func (s *HandlerTestSuite) TestEventKey() {
	evt := event.ApplicationEvent{ApplicationId: 12}
	assert.Equal(s.T(), "12", evt.EventKey())
}

func doPost[T any](t *testing.T, server *egin.Component, path string, uid int64, role string, body any) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("uid", strconv.FormatInt(uid, 10))
	req.Header.Set("role", role)
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func TestApplicationHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
