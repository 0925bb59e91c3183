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
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobmatch/internal/ai"
	"github.com/ecodeclub/jobmatch/internal/pkg/objstore"
	"github.com/ecodeclub/jobmatch/internal/pkg/snowflake"
	"github.com/ecodeclub/jobmatch/internal/resume"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/errs"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/repository/dao"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/web"
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

const uid = 2001

// disabledLLM 模拟没有配置大模型
type disabledLLM struct{}

func (d disabledLLM) Invoke(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
	return ai.LLMResponse{}, ai.ErrLLMDisabled
}

type HandlerTestSuite struct {
	suite.Suite
	db     *mongo.Database
	store  *objstore.LocalStore
	server *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitMongoDB()
	idGen, err := snowflake.NewNodeIDGenerator(3)
	require.NoError(s.T(), err)
	s.store, err = objstore.NewLocalStore(s.T().TempDir())
	require.NoError(s.T(), err)
	module := resume.InitModule(s.db, idGen, s.store, &ai.Module{Svc: disabledLLM{}})

	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: uid}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	_, err := s.db.Collection(dao.CollectionResumes).DeleteMany(context.Background(), bson.M{})
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestUploadAndQuery() {
	t := s.T()
	text := "Jane Wanjiku\nGo developer, 3 years of experience with Docker and Redis.\nBSc Computer Science"
	uploaded := s.upload(t, "jane.txt", []byte(text))
	require.Equal(t, 0, uploaded.Code)
	r := uploaded.Data
	assert.True(t, r.Id > 0)
	assert.Equal(t, "parse_failed", r.Status)
	assert.Equal(t, []string{"docker", "go", "redis"}, r.Profile.Skills)
	assert.Equal(t, float64(3), r.Profile.TotalYears)
	assert.Equal(t, "bachelor", r.Profile.HighestEducation)
	assert.Empty(t, r.Text)

	second := s.upload(t, "jane-v2.txt", []byte(text+"\nKubernetes"))
	require.Equal(t, 0, second.Code)

	latest := s.get(t, "/resumes/latest")
	require.Equal(t, 0, latest.Code)
	assert.Equal(t, second.Data.Id, latest.Data.Id)

	detail := s.detail(t, r.Id)
	require.Equal(t, 0, detail.Code)
	assert.Equal(t, text, detail.Data.Text)
	assert.Equal(t, r.Profile, detail.Data.Profile)

	req, err := http.NewRequest(http.MethodGet, "/resumes/list", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[[]web.Resume]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	list := recorder.MustScan().Data
	require.Len(t, list, 2)
	assert.Equal(t, second.Data.Id, list[0].Id)
	assert.Empty(t, list[0].Text)

	var doc dao.Resume
	err = s.db.Collection(dao.CollectionResumes).FindOne(context.Background(), bson.M{"_id": r.Id}).Decode(&doc)
	require.NoError(t, err)
	data, err := s.store.Get(context.Background(), doc.ObjectKey)
	require.NoError(t, err)
	assert.Equal(t, text, string(data))
}

func (s *HandlerTestSuite) TestUploadInvalid() {
	t := s.T()
	assert.Equal(t, errs.UnsupportedFile.Code, s.upload(t, "cv.png", []byte("png")).Code)
	assert.Equal(t, errs.UnreadableFile.Code, s.upload(t, "cv.txt", []byte("   ")).Code)

	req, err := http.NewRequest(http.MethodPost, "/resumes/upload", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Resume]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, errs.MissingFile.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestDetailOthers() {
	t := s.T()
	_, err := s.db.Collection(dao.CollectionResumes).InsertOne(context.Background(), dao.Resume{
		Id:  99,
		Uid: uid + 1,
	})
	require.NoError(t, err)
	assert.Equal(t, errs.ResumeNotFound.Code, s.detail(t, 99).Code)
	assert.Equal(t, errs.ResumeNotFound.Code, s.get(t, "/resumes/latest").Code)
}

func (s *HandlerTestSuite) upload(t *testing.T, name string, data []byte) test.Result[web.Resume] {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/resumes/upload", &body)
	require.NoError(t, err)
	req.Header.Set("content-type", w.FormDataContentType())
	recorder := test.NewJSONResponseRecorder[web.Resume]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) get(t *testing.T, path string) test.Result[web.Resume] {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Resume]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) detail(t *testing.T, id int64) test.Result[web.Resume] {
	req, err := http.NewRequest(http.MethodPost, "/resumes/detail", iox.NewJSONReader(web.IdReq{Id: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Resume]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func TestResumeHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
