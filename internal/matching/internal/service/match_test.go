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
	"time"

	"github.com/ecodeclub/jobmatch/internal/ai"
	"github.com/ecodeclub/jobmatch/internal/job"
	jobmocks "github.com/ecodeclub/jobmatch/internal/job/mocks"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/repository/cache"
	cachemocks "github.com/ecodeclub/jobmatch/internal/matching/internal/repository/cache/mocks"
	svcmocks "github.com/ecodeclub/jobmatch/internal/matching/internal/service/mocks"
	"github.com/ecodeclub/jobmatch/internal/resume"
	resumemocks "github.com/ecodeclub/jobmatch/internal/resume/mocks"
	"github.com/ecodeclub/jobmatch/internal/user"
	usermocks "github.com/ecodeclub/jobmatch/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errCacheMiss = errors.New("缓存未命中")

type fakeEmbedder struct {
	vecs [][]float64
	err  error
}

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	return f.vecs, f.err
}

var (
	testResume = resume.Resume{
		Id:   10,
		Uid:  1,
		Text: "Go developer",
		Profile: resume.Profile{
			Skills:           []string{"go"},
			TotalYears:       3,
			HighestEducation: "bachelor",
			Location:         "Nairobi",
		},
	}
	goJob = job.Job{
		Id:             100,
		Title:          "Go Developer",
		RequiredSkills: []string{"go"},
		Location:       "Nairobi",
		Status:         job.StatusOpen,
		Utime:          123,
	}
	javaJob = job.Job{
		Id:             200,
		Title:          "Java Developer",
		RequiredSkills: []string{"java"},
		MinYears:       5,
		Location:       "Mombasa",
		Status:         job.StatusOpen,
		Utime:          456,
	}
)

type deps struct {
	resumeSvc *resumemocks.MockService
	jobSvc    *jobmocks.MockService
	userSvc   *usermocks.MockUserService
	analyzer  *svcmocks.MockAnalyzer
	cache     *cachemocks.MockResultCache
}

func newTestService(ctrl *gomock.Controller, embedder ai.EmbeddingService) (Service, deps) {
	d := deps{
		resumeSvc: resumemocks.NewMockService(ctrl),
		jobSvc:    jobmocks.NewMockService(ctrl),
		userSvc:   usermocks.NewMockUserService(ctrl),
		analyzer:  svcmocks.NewMockAnalyzer(ctrl),
		cache:     cachemocks.NewMockResultCache(ctrl),
	}
	svc := NewService(d.resumeSvc, d.jobSvc, d.userSvc, embedder, d.analyzer, d.cache, DefaultWeights)
	return svc, d
}

func TestService_Rank(t *testing.T) {
	testCases := []struct {
		name     string
		embedder *fakeEmbedder
		before   func(d deps)

		wantJobs     []int64
		wantStrategy domain.Strategy
	}{
		{
			name: "向量和规则特征",
			embedder: &fakeEmbedder{vecs: [][]float64{
				{1, 0}, {0, 1}, {1, 0},
			}},
			before: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(domain.Result{}, errCacheMiss).Times(2)
				d.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
			// 输入顺序是 java、go，相似度和特征都是 go 更高
			wantJobs:     []int64{100, 200},
			wantStrategy: domain.StrategySimilarityFeatures,
		},
		{
			name:     "向量模型失败不缓存",
			embedder: &fakeEmbedder{err: errors.New("mock error")},
			before: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(domain.Result{}, errCacheMiss).Times(2)
			},
			wantJobs:     []int64{100, 200},
			wantStrategy: domain.StrategyFeaturesOnly,
		},
		{
			name:     "命中缓存",
			embedder: &fakeEmbedder{err: errors.New("不应该被调用")},
			before: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), cache.Key{ResumeId: 10, JobId: 200, JobUtime: 456}).
					Return(domain.Result{JobId: 200, Score: 0.3, Strategy: domain.StrategySimilarityFeatures}, nil)
				d.cache.EXPECT().Get(gomock.Any(), cache.Key{ResumeId: 10, JobId: 100, JobUtime: 123}).
					Return(domain.Result{JobId: 100, Score: 0.9, Strategy: domain.StrategySimilarityFeatures}, nil)
			},
			wantJobs:     []int64{100, 200},
			wantStrategy: domain.StrategySimilarityFeatures,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, d := newTestService(ctrl, tc.embedder)
			tc.before(d)
			res, err := svc.Rank(context.Background(), 1, testResume, []job.Job{javaJob, goJob}, false)
			require.NoError(t, err)
			require.Len(t, res, len(tc.wantJobs))
			for i, id := range tc.wantJobs {
				assert.Equal(t, id, res[i].JobId)
				assert.Equal(t, tc.wantStrategy, res[i].Strategy)
			}
			assert.True(t, res[0].Score > res[1].Score)
		})
	}
}

func TestService_Match(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, d := newTestService(ctrl, &fakeEmbedder{vecs: [][]float64{{1, 0}, {1, 0}}})
	key := cache.Key{ResumeId: 10, JobId: 100, JobUtime: 123, WithLLM: true}
	d.cache.EXPECT().Get(gomock.Any(), key).Return(domain.Result{}, errCacheMiss)
	d.analyzer.EXPECT().Analyze(gomock.Any(), int64(1), testResume.MatchText(), goJob.Text()).
		Return(domain.Analysis{Score: 0.5, Summary: "fit"}, nil)
	d.cache.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(nil)

	res, err := svc.Match(context.Background(), 1, testResume, goJob, true)
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyBlended, res.Strategy)
	assert.True(t, res.HasLLM)
	assert.Equal(t, "fit", res.Summary)
	assert.InDelta(t, 1, res.Similarity, 1e-9)
	// 技能 1，经验 1，学历 1，地点 1
	assert.InDelta(t, 1, res.FeatureScore, 1e-9)
	assert.InDelta(t, 0.4+0.4+0.2*0.5, res.Score, 1e-9)
	assert.Equal(t, []string{"go"}, res.MatchedSkills)
}

func TestService_ScoreLatest(t *testing.T) {
	testCases := []struct {
		name    string
		before  func(d deps)
		wantLLM bool
		wantErr error
	}{
		{
			name: "会员有大模型分析",
			before: func(d deps) {
				d.resumeSvc.EXPECT().Latest(gomock.Any(), int64(1)).Return(testResume, nil)
				d.jobSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(goJob, nil)
				d.userSvc.EXPECT().Profile(gomock.Any(), int64(1)).
					Return(user.User{Id: 1, PremiumUntil: time.Now().Add(time.Hour).UnixMilli()}, nil)
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(domain.Result{}, errCacheMiss)
				d.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Analysis{Score: 0.9}, nil)
			},
			wantLLM: true,
		},
		{
			name: "普通用户没有大模型分析",
			before: func(d deps) {
				d.resumeSvc.EXPECT().Latest(gomock.Any(), int64(1)).Return(testResume, nil)
				d.jobSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(goJob, nil)
				d.userSvc.EXPECT().Profile(gomock.Any(), int64(1)).Return(user.User{Id: 1}, nil)
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(domain.Result{}, errCacheMiss)
			},
		},
		{
			name: "没有简历",
			before: func(d deps) {
				d.resumeSvc.EXPECT().Latest(gomock.Any(), int64(1)).Return(resume.Resume{}, resume.ErrResumeNotFound)
				d.jobSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(goJob, nil).AnyTimes()
			},
			wantErr: ErrNoResume,
		},
		{
			name: "岗位不存在",
			before: func(d deps) {
				d.resumeSvc.EXPECT().Latest(gomock.Any(), int64(1)).Return(testResume, nil).AnyTimes()
				d.jobSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(job.Job{}, job.ErrJobNotFound)
			},
			wantErr: ErrJobNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			// 向量模型未配置，结果不缓存
			svc, d := newTestService(ctrl, &fakeEmbedder{err: ai.ErrEmbeddingDisabled})
			tc.before(d)
			res, err := svc.ScoreLatest(context.Background(), 1, 100)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLLM, res.HasLLM)
			assert.Equal(t, domain.StrategyFeaturesOnly, res.Strategy)
		})
	}
}

func TestService_Recommend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, d := newTestService(ctrl, &fakeEmbedder{err: ai.ErrEmbeddingDisabled})
	d.resumeSvc.EXPECT().Latest(gomock.Any(), int64(1)).Return(testResume, nil)
	d.jobSvc.EXPECT().List(gomock.Any(), 0, defaultRecommendLen, job.Filter{}).
		Return([]job.Job{javaJob, goJob}, int64(2), nil)
	d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(domain.Result{}, errCacheMiss).Times(2)

	res, err := svc.Recommend(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(100), res[0].JobId)
	assert.False(t, res[0].HasLLM)
}
