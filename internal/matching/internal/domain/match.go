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

package domain

type Strategy string

const (
	// StrategyBlended 向量相似度、规则特征和大模型三者加权
	StrategyBlended Strategy = "blended"
	// StrategySimilarityFeatures 没有大模型分析
	StrategySimilarityFeatures Strategy = "similarity_features"
	// StrategyFeaturesOnly 向量模型不可用
	StrategyFeaturesOnly Strategy = "features_only"
)

func (s Strategy) String() string {
	return string(s)
}

// Candidate 参与匹配的简历
type Candidate struct {
	ResumeId         int64
	Text             string
	Skills           []string
	TotalYears       float64
	HighestEducation string
	Location         string
}

// Target 参与匹配的岗位
type Target struct {
	JobId           int64
	Utime           int64
	Title           string
	Company         string
	Text            string
	RequiredSkills  []string
	PreferredSkills []string
	MinYears        int
	MaxYears        int
	Education       string
	Location        string
	Remote          bool
}

// Features 规则特征，取值都在 [0, 1]
type Features struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Location   float64 `json:"location"`
}

type Weights struct {
	Similarity float64 `yaml:"similarity"`
	Features   float64 `yaml:"features"`
	LLM        float64 `yaml:"llm"`
}

// Analysis 大模型给出的分析，Score 已经换算到 [0, 1]
type Analysis struct {
	Score          float64
	MatchedSkills  []string
	MissingSkills  []string
	Summary        string
	Recommendation string
}

// Result 所有分数都在 [0, 1]
type Result struct {
	ResumeId     int64
	JobId        int64
	JobTitle     string
	Company      string
	Score        float64
	Similarity   float64
	Features     Features
	FeatureScore float64
	// LLMScore 没有大模型分析时为 0
	LLMScore       float64
	HasLLM         bool
	MatchedSkills  []string
	MissingSkills  []string
	Summary        string
	Recommendation string
	Strategy       Strategy
}
