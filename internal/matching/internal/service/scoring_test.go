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
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ecodeclub/jobmatch/internal/matching/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSkillScore(t *testing.T) {
	testCases := []struct {
		name      string
		c         domain.Candidate
		required  []string
		preferred []string

		wantScore   float64
		wantMatched []string
		wantMissing []string
	}{
		{
			name:        "岗位没有技能要求",
			c:           domain.Candidate{Skills: []string{"go"}},
			wantScore:   0.5,
			wantMatched: []string{},
			wantMissing: []string{},
		},
		{
			name:        "必须技能全部满足",
			c:           domain.Candidate{Skills: []string{"Golang", "Redis"}},
			required:    []string{"go", "redis"},
			wantScore:   1,
			wantMatched: []string{"go", "redis"},
			wantMissing: []string{},
		},
		{
			name:        "从简历原文中匹配别名",
			c:           domain.Candidate{Text: "Deployed services on k8s"},
			required:    []string{"Kubernetes", "terraform"},
			wantScore:   0.5,
			wantMatched: []string{"kubernetes"},
			wantMissing: []string{"terraform"},
		},
		{
			name:        "必须和加分按7比3",
			c:           domain.Candidate{Skills: []string{"go", "docker"}},
			required:    []string{"go", "mongodb"},
			preferred:   []string{"docker"},
			wantScore:   0.7*0.5 + 0.3*1,
			wantMatched: []string{"go", "docker"},
			wantMissing: []string{"mongodb"},
		},
		{
			name:        "只有加分技能",
			c:           domain.Candidate{},
			preferred:   []string{"figma"},
			wantScore:   0,
			wantMatched: []string{},
			wantMissing: []string{"figma"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, matched, missing := SkillScore(tc.c, tc.required, tc.preferred)
			assert.InDelta(t, tc.wantScore, score, 1e-9)
			assert.Equal(t, tc.wantMatched, matched)
			assert.Equal(t, tc.wantMissing, missing)
		})
	}
}

func TestExperienceScore(t *testing.T) {
	testCases := []struct {
		name     string
		years    float64
		min, max int
		want     float64
	}{
		{name: "没有要求", years: 0, want: 1},
		{name: "在区间内", years: 3, min: 2, max: 5, want: 1},
		{name: "少一年", years: 1, min: 2, max: 5, want: 0.8},
		{name: "少很多", years: 1, min: 10, want: 0},
		{name: "超出上限", years: 8, min: 2, max: 5, want: 0.8},
		{name: "没有上限", years: 20, min: 2, want: 1},
		{name: "年限未知", years: 0, min: 3, want: 0.5},
		{name: "实习岗没有下限", years: 0, max: 1, want: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ExperienceScore(tc.years, tc.min, tc.max), 1e-9)
		})
	}
}

func TestEducationScore(t *testing.T) {
	testCases := []struct {
		name string
		have string
		want string
		res  float64
	}{
		{name: "没有要求", have: "", want: "", res: 1},
		{name: "要求为none", have: "diploma", want: "none", res: 1},
		{name: "达到要求", have: "bachelor", want: "bachelor", res: 1},
		{name: "超过要求", have: "phd", want: "master", res: 1},
		{name: "差一级", have: "bachelor", want: "master", res: 0.6},
		{name: "差两级", have: "diploma", want: "master", res: 0.3},
		{name: "简历学历未知", have: "", want: "bachelor", res: 0.5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.res, EducationScore(tc.have, tc.want))
		})
	}
}

func TestLocationScore(t *testing.T) {
	assert.Equal(t, float64(1), LocationScore("", "Nairobi", true))
	assert.Equal(t, float64(1), LocationScore("Nairobi, Kenya", "nairobi", false))
	assert.Equal(t, float64(1), LocationScore("Mombasa", "", false))
	assert.Equal(t, 0.5, LocationScore("Mombasa", "Nairobi", false))
	assert.Equal(t, 0.5, LocationScore("", "Nairobi", false))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1, Cosine([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-9)
	assert.InDelta(t, 0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	// 负相关截断成 0
	assert.Equal(t, float64(0), Cosine([]float64{1, 0}, []float64{-1, 0}))
	assert.Equal(t, float64(0), Cosine([]float64{1}, []float64{1, 2}))
	assert.Equal(t, float64(0), Cosine([]float64{0, 0}, []float64{1, 2}))
}

func TestBlend(t *testing.T) {
	sim := 0.8
	analysis := &domain.Analysis{Score: 0.9}
	testCases := []struct {
		name         string
		sim          *float64
		analysis     *domain.Analysis
		weights      domain.Weights
		wantScore    float64
		wantStrategy domain.Strategy
	}{
		{
			name:         "三者融合",
			sim:          &sim,
			analysis:     analysis,
			weights:      DefaultWeights,
			wantScore:    0.4*0.8 + 0.4*0.6 + 0.2*0.9,
			wantStrategy: domain.StrategyBlended,
		},
		{
			name:         "没有大模型时重新归一",
			sim:          &sim,
			weights:      DefaultWeights,
			wantScore:    0.5*0.8 + 0.5*0.6,
			wantStrategy: domain.StrategySimilarityFeatures,
		},
		{
			name:         "没有向量只用规则特征",
			analysis:     analysis,
			weights:      DefaultWeights,
			wantScore:    0.6,
			wantStrategy: domain.StrategyFeaturesOnly,
		},
		{
			name:         "自定义权重",
			sim:          &sim,
			weights:      domain.Weights{Similarity: 1, Features: 3},
			wantScore:    0.25*0.8 + 0.75*0.6,
			wantStrategy: domain.StrategySimilarityFeatures,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, strategy := Blend(tc.weights, tc.sim, 0.6, tc.analysis)
			assert.InDelta(t, tc.wantScore, score, 1e-9)
			assert.Equal(t, tc.wantStrategy, strategy)
		})
	}
}

func TestEvaluate(t *testing.T) {
	c := domain.Candidate{
		ResumeId:         1,
		Text:             "Go developer in Nairobi",
		Skills:           []string{"go", "mongodb"},
		TotalYears:       3,
		HighestEducation: "bachelor",
		Location:         "Nairobi",
	}
	target := domain.Target{
		JobId:          2,
		Title:          "Go Developer",
		RequiredSkills: []string{"go", "redis"},
		MinYears:       2,
		MaxYears:       5,
		Education:      "bachelor",
		Location:       "Nairobi",
	}
	sim := 0.7
	res := Evaluate(c, target, &sim, &domain.Analysis{
		Score:         0.8,
		MatchedSkills: []string{"python"},
		Summary:       "good fit",
	}, DefaultWeights)
	want := domain.Features{Skills: 0.5, Experience: 1, Education: 1, Location: 1}
	assert.Equal(t, want, res.Features)
	// 0.5*0.5 + 0.25 + 0.15 + 0.1
	assert.InDelta(t, 0.75, res.FeatureScore, 1e-9)
	assert.InDelta(t, 0.4*0.7+0.4*0.75+0.2*0.8, res.Score, 1e-9)
	assert.Equal(t, domain.StrategyBlended, res.Strategy)
	// 岗位列出了技能，以规则结果为准
	assert.Equal(t, []string{"go"}, res.MatchedSkills)
	assert.Equal(t, []string{"redis"}, res.MissingSkills)
	assert.True(t, res.HasLLM)
	assert.Equal(t, "good fit", res.Summary)
	assert.Equal(t, "Go Developer", res.JobTitle)
}

func TestEmbedTexts(t *testing.T) {
	long := strings.Repeat("数据", maxEmbedRunes)
	texts := EmbedTexts(domain.Candidate{Text: long},
		domain.Target{Text: "Go engineer"}, domain.Target{Text: long})
	assert.Len(t, texts, 3)
	assert.Equal(t, maxEmbedRunes, utf8.RuneCountInString(texts[0]))
	assert.Equal(t, "Go engineer", texts[1])
	assert.Equal(t, maxEmbedRunes, utf8.RuneCountInString(texts[2]))
	assert.True(t, strings.HasPrefix(long, texts[2]))
}
