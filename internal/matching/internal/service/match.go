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
	"sort"
	"time"

	"github.com/ecodeclub/jobmatch/internal/ai"
	"github.com/ecodeclub/jobmatch/internal/job"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/repository/cache"
	"github.com/ecodeclub/jobmatch/internal/pkg/textx"
	"github.com/ecodeclub/jobmatch/internal/resume"
	"github.com/ecodeclub/jobmatch/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	maxEmbedRunes = 8000
	// 同时进行的大模型分析数量
	maxConcurrency      = 4
	defaultRecommendLen = 20
	maxRecommendLen     = 100
)

var (
	ErrNoResume    = errors.New("用户还没有上传简历")
	ErrJobNotFound = job.ErrJobNotFound
)

//go:generate mockgen -source=./match.go -destination=../../mocks/match.mock.go -package=matchingmocks Service
type Service interface {
	// Match 单个岗位打分，withLLM 为 true 时加入大模型分析
	Match(ctx context.Context, uid int64, r resume.Resume, j job.Job, withLLM bool) (domain.Result, error)
	// Rank 结果按照分数从高到低排序
	Rank(ctx context.Context, uid int64, r resume.Resume, jobs []job.Job, withLLM bool) ([]domain.Result, error)
	// ScoreLatest 用用户最新的简历给岗位打分，会员才有大模型分析
	ScoreLatest(ctx context.Context, uid, jobId int64) (domain.Result, error)
	// Recommend 给前 limit 个开放岗位打分排序
	Recommend(ctx context.Context, uid int64, limit int) ([]domain.Result, error)
}

type service struct {
	resumeSvc resume.Service
	jobSvc    job.Service
	userSvc   user.Service
	embedder  ai.EmbeddingService
	analyzer  Analyzer
	cache     cache.ResultCache
	weights   domain.Weights
	logger    *elog.Component
}

func NewService(resumeSvc resume.Service,
	jobSvc job.Service,
	userSvc user.Service,
	embedder ai.EmbeddingService,
	analyzer Analyzer,
	c cache.ResultCache,
	weights domain.Weights) Service {
	return &service{
		resumeSvc: resumeSvc,
		jobSvc:    jobSvc,
		userSvc:   userSvc,
		embedder:  embedder,
		analyzer:  analyzer,
		cache:     c,
		weights:   weights,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) Match(ctx context.Context, uid int64, r resume.Resume, j job.Job, withLLM bool) (domain.Result, error) {
	res, err := s.Rank(ctx, uid, r, []job.Job{j}, withLLM)
	if err != nil {
		return domain.Result{}, err
	}
	return res[0], nil
}

func (s *service) Rank(ctx context.Context, uid int64, r resume.Resume, jobs []job.Job, withLLM bool) ([]domain.Result, error) {
	c := NewCandidate(r)
	results := make([]domain.Result, len(jobs))
	targets := make([]domain.Target, 0, len(jobs))
	// pending 里面是没有命中缓存的下标
	pending := make([]int, 0, len(jobs))
	for i, j := range jobs {
		t := NewTarget(j)
		res, err := s.cache.Get(ctx, s.key(c, t, withLLM))
		if err == nil {
			results[i] = res
			continue
		}
		pending = append(pending, i)
		targets = append(targets, t)
	}

	if len(pending) > 0 {
		sims := make([]*float64, len(targets))
		analyses := make([]*domain.Analysis, len(targets))
		var eg errgroup.Group
		eg.SetLimit(maxConcurrency)
		// 向量模型和大模型出错都只是降级，不影响打分
		eg.Go(func() error {
			s.similarities(ctx, c, targets, sims)
			return nil
		})
		if withLLM {
			for k := range targets {
				eg.Go(func() error {
					analyses[k] = s.analyze(ctx, uid, c, targets[k])
					return nil
				})
			}
		}
		_ = eg.Wait()
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for k, i := range pending {
			res := Evaluate(c, targets[k], sims[k], analyses[k], s.weights)
			results[i] = res
			if sims[k] == nil || (withLLM && analyses[k] == nil) {
				// 降级的结果不缓存
				continue
			}
			if err := s.cache.Set(ctx, s.key(c, targets[k], withLLM), res); err != nil {
				s.logger.Error("缓存匹配结果失败",
					elog.FieldErr(err),
					elog.Int64("resumeId", c.ResumeId),
					elog.Int64("jobId", targets[k].JobId))
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

// similarities 简历和所有岗位一次性向量化，失败时 sims 保持为 nil
func (s *service) similarities(ctx context.Context, c domain.Candidate, targets []domain.Target, sims []*float64) {
	texts := EmbedTexts(c, targets...)
	start := time.Now()
	vecs, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		if errors.Is(err, ai.ErrEmbeddingDisabled) {
			s.logger.Debug("未配置向量模型，只使用规则特征")
		} else {
			s.logger.Error("计算向量失败，只使用规则特征",
				elog.FieldErr(err),
				elog.Int64("resumeId", c.ResumeId))
		}
		return
	}
	if len(vecs) != len(texts) {
		s.logger.Error("向量数量不对，只使用规则特征", elog.Int("want", len(texts)), elog.Int("got", len(vecs)))
		return
	}
	s.logger.Debug("计算向量",
		elog.Int("count", len(texts)),
		elog.FieldCost(time.Since(start)))
	for k := range targets {
		sim := Cosine(vecs[0], vecs[k+1])
		sims[k] = &sim
	}
}

func (s *service) analyze(ctx context.Context, uid int64, c domain.Candidate, t domain.Target) *domain.Analysis {
	a, err := s.analyzer.Analyze(ctx, uid, c.Text, t.Text)
	if err != nil {
		s.logger.Error("大模型匹配分析失败",
			elog.FieldErr(err),
			elog.Int64("resumeId", c.ResumeId),
			elog.Int64("jobId", t.JobId))
		return nil
	}
	return &a
}

func (s *service) ScoreLatest(ctx context.Context, uid, jobId int64) (domain.Result, error) {
	var (
		eg errgroup.Group
		r  resume.Resume
		j  job.Job
	)
	eg.Go(func() error {
		var err error
		r, err = s.latestResume(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		j, err = s.jobSvc.Detail(ctx, jobId)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Result{}, err
	}
	return s.Match(ctx, uid, r, j, s.isPremium(ctx, uid))
}

func (s *service) Recommend(ctx context.Context, uid int64, limit int) ([]domain.Result, error) {
	if limit <= 0 {
		limit = defaultRecommendLen
	}
	limit = min(limit, maxRecommendLen)
	r, err := s.latestResume(ctx, uid)
	if err != nil {
		return nil, err
	}
	jobs, _, err := s.jobSvc.List(ctx, 0, limit, job.Filter{})
	if err != nil {
		return nil, err
	}
	return s.Rank(ctx, uid, r, jobs, false)
}

func (s *service) latestResume(ctx context.Context, uid int64) (resume.Resume, error) {
	r, err := s.resumeSvc.Latest(ctx, uid)
	if errors.Is(err, resume.ErrResumeNotFound) {
		return resume.Resume{}, ErrNoResume
	}
	return r, err
}

// isPremium 以数据库为准，JWT 里面的标记可能已经过期
func (s *service) isPremium(ctx context.Context, uid int64) bool {
	u, err := s.userSvc.Profile(ctx, uid)
	if err != nil {
		s.logger.Error("查询用户会员状态失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
		return false
	}
	return u.IsPremium(time.Now())
}

func (s *service) key(c domain.Candidate, t domain.Target, withLLM bool) cache.Key {
	return cache.Key{
		ResumeId: c.ResumeId,
		JobId:    t.JobId,
		JobUtime: t.Utime,
		WithLLM:  withLLM,
	}
}

// EmbedTexts 送去向量化的文本，第一个是简历，超长的部分截掉
func EmbedTexts(c domain.Candidate, targets ...domain.Target) []string {
	texts := make([]string, 0, len(targets)+1)
	texts = append(texts, textx.TruncateRunes(c.Text, maxEmbedRunes, ""))
	for _, t := range targets {
		texts = append(texts, textx.TruncateRunes(t.Text, maxEmbedRunes, ""))
	}
	return texts
}

func NewCandidate(r resume.Resume) domain.Candidate {
	p := r.Profile
	return domain.Candidate{
		ResumeId:         r.Id,
		Text:             r.MatchText(),
		Skills:           p.Skills,
		TotalYears:       p.TotalYears,
		HighestEducation: p.HighestEducation,
		Location:         p.Location,
	}
}

func NewTarget(j job.Job) domain.Target {
	return domain.Target{
		JobId:           j.Id,
		Utime:           j.Utime,
		Title:           j.Title,
		Company:         j.Company,
		Text:            j.Text(),
		RequiredSkills:  j.RequiredSkills,
		PreferredSkills: j.PreferredSkills,
		MinYears:        j.MinYears,
		MaxYears:        j.MaxYears,
		Education:       j.Education.String(),
		Location:        j.Location,
		Remote:          j.Remote,
	}
}
