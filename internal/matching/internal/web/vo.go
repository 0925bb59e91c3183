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

package web

import (
	"math"

	"github.com/ecodeclub/jobmatch/internal/matching/internal/domain"
)

type ScoreReq struct {
	JobId int64 `json:"jobId"`
}

type RecommendReq struct {
	Limit int `json:"limit"`
}

// Result 分数都是 0-100，保留一位小数
type Result struct {
	JobId          int64    `json:"jobId"`
	JobTitle       string   `json:"jobTitle"`
	Company        string   `json:"company"`
	ResumeId       int64    `json:"resumeId"`
	Score          float64  `json:"score"`
	Similarity     float64  `json:"similarity"`
	Features       Features `json:"features"`
	FeatureScore   float64  `json:"featureScore"`
	LLMScore       float64  `json:"llmScore,omitempty"`
	MatchedSkills  []string `json:"matchedSkills"`
	MissingSkills  []string `json:"missingSkills"`
	Summary        string   `json:"summary,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
	Strategy       string   `json:"strategy"`
}

type Features struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Location   float64 `json:"location"`
}

func newResult(r domain.Result) Result {
	return Result{
		JobId:        r.JobId,
		JobTitle:     r.JobTitle,
		Company:      r.Company,
		ResumeId:     r.ResumeId,
		Score:        percent(r.Score),
		Similarity:   percent(r.Similarity),
		FeatureScore: percent(r.FeatureScore),
		LLMScore:     percent(r.LLMScore),
		Features: Features{
			Skills:     percent(r.Features.Skills),
			Experience: percent(r.Features.Experience),
			Education:  percent(r.Features.Education),
			Location:   percent(r.Features.Location),
		},
		MatchedSkills:  r.MatchedSkills,
		MissingSkills:  r.MissingSkills,
		Summary:        r.Summary,
		Recommendation: r.Recommendation,
		Strategy:       r.Strategy.String(),
	}
}

func percent(v float64) float64 {
	return math.Round(v*1000) / 10
}
