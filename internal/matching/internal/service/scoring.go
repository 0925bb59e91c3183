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
	"math"
	"strings"

	"github.com/ecodeclub/jobmatch/internal/matching/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/pkg/skills"
)

const (
	neutral = 0.5

	requiredSkillWeight  = 0.7
	preferredSkillWeight = 0.3
	// 每少一年扣的分
	yearPenalty = 0.2
	// 经验超出上限时不算完全匹配
	overQualified = 0.8

	skillsWeight     = 0.5
	experienceWeight = 0.25
	educationWeight  = 0.15
	locationWeight   = 0.1
)

var DefaultWeights = domain.Weights{
	Similarity: 0.4,
	Features:   0.4,
	LLM:        0.2,
}

// Evaluate 计算规则特征并和相似度、大模型分数融合。
// sim 为 nil 表示向量模型不可用，analysis 为 nil 表示没有大模型分析
func Evaluate(c domain.Candidate, t domain.Target, sim *float64, analysis *domain.Analysis, w domain.Weights) domain.Result {
	features, matched, missing := ExtractFeatures(c, t)
	res := domain.Result{
		ResumeId:      c.ResumeId,
		JobId:         t.JobId,
		JobTitle:      t.Title,
		Company:       t.Company,
		Features:      features,
		FeatureScore:  FeatureScore(features),
		MatchedSkills: matched,
		MissingSkills: missing,
	}
	if analysis != nil {
		res.HasLLM = true
		res.LLMScore = clamp(analysis.Score)
		res.Summary = analysis.Summary
		res.Recommendation = analysis.Recommendation
		// 岗位没有列出技能的时候才采用大模型给的技能
		if len(t.RequiredSkills)+len(t.PreferredSkills) == 0 {
			res.MatchedSkills = skills.NormalizeAll(analysis.MatchedSkills)
			res.MissingSkills = skills.NormalizeAll(analysis.MissingSkills)
		}
	}
	if sim != nil {
		res.Similarity = clamp(*sim)
	}
	res.Score, res.Strategy = Blend(w, sim, res.FeatureScore, analysis)
	return res
}

// Blend 按权重融合，缺失的部分权重按比例分给其它部分
func Blend(w domain.Weights, sim *float64, featureScore float64, analysis *domain.Analysis) (float64, domain.Strategy) {
	if sim == nil {
		return clamp(featureScore), domain.StrategyFeaturesOnly
	}
	total := w.Similarity*clamp(*sim) + w.Features*clamp(featureScore)
	weights := w.Similarity + w.Features
	strategy := domain.StrategySimilarityFeatures
	if analysis != nil {
		total += w.LLM * clamp(analysis.Score)
		weights += w.LLM
		strategy = domain.StrategyBlended
	}
	if weights <= 0 {
		return clamp(featureScore), domain.StrategyFeaturesOnly
	}
	return clamp(total / weights), strategy
}

func FeatureScore(f domain.Features) float64 {
	return clamp(skillsWeight*f.Skills +
		experienceWeight*f.Experience +
		educationWeight*f.Education +
		locationWeight*f.Location)
}

// ExtractFeatures 返回规则特征，以及岗位技能中匹配上的和缺失的
func ExtractFeatures(c domain.Candidate, t domain.Target) (domain.Features, []string, []string) {
	skillScore, matched, missing := SkillScore(c, t.RequiredSkills, t.PreferredSkills)
	return domain.Features{
		Skills:     skillScore,
		Experience: ExperienceScore(c.TotalYears, t.MinYears, t.MaxYears),
		Education:  EducationScore(c.HighestEducation, t.Education),
		Location:   LocationScore(c.Location, t.Location, t.Remote),
	}, matched, missing
}

// SkillScore 必须技能占 70%，加分技能占 30%，只有一类时全部权重给这一类
func SkillScore(c domain.Candidate, required, preferred []string) (float64, []string, []string) {
	required = skills.NormalizeAll(required)
	preferred = skills.NormalizeAll(preferred)
	if len(required) == 0 && len(preferred) == 0 {
		return neutral, []string{}, []string{}
	}
	owned := make(map[string]struct{}, len(c.Skills))
	for _, sk := range skills.NormalizeAll(c.Skills) {
		owned[sk] = struct{}{}
	}
	matched := make([]string, 0, len(required)+len(preferred))
	missing := make([]string, 0, len(required)+len(preferred))
	ratio := func(list []string) float64 {
		hit := 0
		for _, sk := range list {
			_, ok := owned[sk]
			if ok || skills.Mentions(c.Text, sk) {
				hit++
				matched = append(matched, sk)
			} else {
				missing = append(missing, sk)
			}
		}
		return float64(hit) / float64(len(list))
	}
	switch {
	case len(preferred) == 0:
		return ratio(required), matched, missing
	case len(required) == 0:
		return ratio(preferred), matched, missing
	default:
		r := ratio(required)
		p := ratio(preferred)
		return requiredSkillWeight*r + preferredSkillWeight*p, matched, missing
	}
}

// ExperienceScore min 和 max 都为 0 表示没有要求，max 为 0 表示没有上限
func ExperienceScore(years float64, minYears, maxYears int) float64 {
	if minYears <= 0 && maxYears <= 0 {
		return 1
	}
	if years <= 0 && minYears > 0 {
		// 简历里面看不出工作年限
		return neutral
	}
	if years < float64(minYears) {
		return math.Max(0, 1-yearPenalty*(float64(minYears)-years))
	}
	if maxYears > 0 && years > float64(maxYears) {
		return overQualified
	}
	return 1
}

var educationRanks = map[string]int{
	"none":     0,
	"diploma":  1,
	"bachelor": 2,
	"master":   3,
	"phd":      4,
}

// EducationScore 达到要求 1.0，差一级 0.6，差更多 0.3
func EducationScore(have, want string) float64 {
	wantRank, ok := educationRanks[want]
	if !ok || wantRank == 0 {
		return 1
	}
	haveRank, ok := educationRanks[have]
	if !ok {
		return neutral
	}
	switch diff := haveRank - wantRank; {
	case diff >= 0:
		return 1
	case diff == -1:
		return 0.6
	default:
		return 0.3
	}
}

func LocationScore(have, want string, remote bool) float64 {
	if remote {
		return 1
	}
	want = strings.ToLower(strings.TrimSpace(want))
	have = strings.ToLower(strings.TrimSpace(have))
	if want == "" {
		return 1
	}
	if have != "" && (strings.Contains(have, want) || strings.Contains(want, have)) {
		return 1
	}
	return neutral
}

// Cosine 余弦相似度，负数当成 0
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return clamp(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
