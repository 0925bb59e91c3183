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
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobmatch/internal/job"
	"github.com/ecodeclub/jobmatch/internal/job/internal/errs"
	"github.com/ecodeclub/jobmatch/internal/job/internal/repository/dao"
	"github.com/ecodeclub/jobmatch/internal/job/internal/web"
	"github.com/ecodeclub/jobmatch/internal/pkg/middleware"
	"github.com/ecodeclub/jobmatch/internal/pkg/snowflake"
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
)

const uid = 1001

type HandlerTestSuite struct {
	suite.Suite
	db     *mongo.Database
	server *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitMongoDB()
	idGen, err := snowflake.NewNodeIDGenerator(2)
	require.NoError(s.T(), err)
	module := job.InitModule(s.db, idGen)

	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{middleware.RoleClaimKey: "recruiter"},
		}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	_, err := s.db.Collection(dao.CollectionJobs).DeleteMany(context.Background(), bson.M{})
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestSaveAndDetail() {
	t := s.T()
	req := web.Job{
		Title:          "Go Developer",
		Company:        "Acme",
		Location:       "Nairobi",
		Type:           "full_time",
		Description:    "Build services in Go",
		RequiredSkills: []string{"go", "mongodb"},
		MinYears:       2,
		MaxYears:       5,
		Education:      "bachelor",
	}
	id := s.save(t, req).Data
	require.True(t, id > 0)

	detail := s.detail(t, id)
	require.Equal(t, 0, detail.Code)
	got := detail.Data
	assert.True(t, got.Ctime > 0)
	assert.True(t, got.Utime > 0)
	got.Ctime, got.Utime = 0, 0
	req.Id = id
	req.RecruiterId = uid
	req.Status = "open"
	assert.Equal(t, req, got)

	// 更新
	req.Title = "Senior Go Developer"
	req.Id = id
	assert.Equal(t, id, s.save(t, req).Data)
	assert.Equal(t, "Senior Go Developer", s.detail(t, id).Data.Title)
}

func (s *HandlerTestSuite) TestSaveInvalid() {
	t := s.T()
	res := s.save(t, web.Job{Title: "Go", Type: "freelance"})
	assert.Equal(t, errs.InvalidInput.Code, res.Code)
	res = s.save(t, web.Job{Title: "Go", Type: "contract", MinYears: 5, MaxYears: 2})
	assert.Equal(t, errs.InvalidInput.Code, res.Code)
}

func (s *HandlerTestSuite) TestUpdateOthersJob() {
	t := s.T()
	_, err := s.db.Collection(dao.CollectionJobs).InsertOne(context.Background(), dao.Job{
		Id:          99,
		RecruiterId: uid + 1,
		Title:       "Java Developer",
		Type:        "full_time",
		Status:      "open",
	})
	require.NoError(t, err)
	res := s.save(t, web.Job{Id: 99, Title: "Hijacked", Type: "full_time"})
	assert.Equal(t, errs.PermissionDenied.Code, res.Code)

	recorder := s.post(t, "/jobs/close", web.IdReq{Id: 99})
	assert.Equal(t, errs.PermissionDenied.Code, recorder.Code)

	recorder = s.post(t, "/jobs/close", web.IdReq{Id: 100})
	assert.Equal(t, errs.JobNotFound.Code, recorder.Code)
}

func (s *HandlerTestSuite) TestListAndClose() {
	t := s.T()
	goID := s.save(t, web.Job{Title: "Go Developer", Type: "full_time", Location: "Nairobi"}).Data
	s.save(t, web.Job{Title: "Data Intern", Type: "internship", Remote: true, Description: "Python and SQL"})
	s.save(t, web.Job{Title: "C++ Engineer", Type: "contract", Location: "Mombasa"})

	testCases := []struct {
		name      string
		req       web.ListReq
		wantTotal int64
	}{
		{name: "全部", req: web.ListReq{Limit: 10}, wantTotal: 3},
		{name: "关键字匹配描述", req: web.ListReq{Limit: 10, Keyword: "python"}, wantTotal: 1},
		{name: "关键字包含特殊字符", req: web.ListReq{Limit: 10, Keyword: "c++"}, wantTotal: 1},
		{name: "远程", req: web.ListReq{Limit: 10, Remote: true}, wantTotal: 1},
		{name: "类型", req: web.ListReq{Limit: 10, Type: "contract"}, wantTotal: 1},
		{name: "地点", req: web.ListReq{Limit: 10, Location: "nairobi"}, wantTotal: 1},
		{name: "分页", req: web.ListReq{Limit: 2}, wantTotal: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := s.list(t, tc.req)
			assert.Equal(t, tc.wantTotal, res.Total)
			assert.LessOrEqual(t, len(res.List), tc.req.Limit)
		})
	}

	recorder := s.post(t, "/jobs/close", web.IdReq{Id: goID})
	assert.Equal(t, "OK", recorder.Msg)
	assert.Equal(t, int64(2), s.list(t, web.ListReq{Limit: 10}).Total)
	assert.Equal(t, "closed", s.detail(t, goID).Data.Status)

	// 自己的岗位列表包含已关闭的
	req, err := http.NewRequest(http.MethodPost, "/jobs/mine", iox.NewJSONReader(web.Page{Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	mine := test.NewJSONResponseRecorder[web.JobList]()
	s.server.ServeHTTP(mine, req)
	require.Equal(t, http.StatusOK, mine.Code)
	assert.Equal(t, int64(3), mine.MustScan().Data.Total)
}

func (s *HandlerTestSuite) save(t *testing.T, j web.Job) test.Result[int64] {
	req, err := http.NewRequest(http.MethodPost, "/jobs/save", iox.NewJSONReader(j))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) detail(t *testing.T, id int64) test.Result[web.Job] {
	req, err := http.NewRequest(http.MethodPost, "/jobs/detail", iox.NewJSONReader(web.IdReq{Id: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Job]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) list(t *testing.T, l web.ListReq) web.JobList {
	req, err := http.NewRequest(http.MethodPost, "/jobs/list", iox.NewJSONReader(l))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.JobList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan().Data
}

func (s *HandlerTestSuite) post(t *testing.T, path string, body any) test.Result[any] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func TestJobHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
