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
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/ecodeclub/jobmatch/internal/ai"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/pkg/textx"
)

const (
	analyzeBiz      = "match_analysis"
	maxAnalyzeRunes = 6000
)

//go:embed prompts/analyze_match.tmpl
var analyzePrompt string

var analyzeTmpl = template.Must(template.New("analyze_match").Parse(analyzePrompt))

//go:generate mockgen -source=./analyzer.go -package=svcmocks -destination=mocks/analyzer.mock.go Analyzer
type Analyzer interface {
	Analyze(ctx context.Context, uid int64, resumeText, jobText string) (domain.Analysis, error)
}

type LLMAnalyzer struct {
	llm ai.LLMService
}

func NewLLMAnalyzer(llm ai.LLMService) Analyzer {
	return &LLMAnalyzer{llm: llm}
}

func (a *LLMAnalyzer) Analyze(ctx context.Context, uid int64, resumeText, jobText string) (domain.Analysis, error) {
	var buf bytes.Buffer
	err := analyzeTmpl.Execute(&buf, map[string]string{
		"Job":    textx.TruncateRunes(jobText, maxAnalyzeRunes, ""),
		"Resume": textx.TruncateRunes(resumeText, maxAnalyzeRunes, ""),
	})
	if err != nil {
		return domain.Analysis{}, err
	}
	resp, err := a.llm.Invoke(ctx, ai.LLMRequest{
		Biz:    analyzeBiz,
		Uid:    uid,
		Prompt: buf.String(),
		JSON:   true,
	})
	if err != nil {
		return domain.Analysis{}, err
	}
	return parseAnalysis(resp.Answer)
}

type llmAnalysis struct {
	MatchScore     json.RawMessage `json:"match_score"`
	MatchedSkills  []string        `json:"matched_skills"`
	MissingSkills  []string        `json:"missing_skills"`
	Summary        string          `json:"summary"`
	Recommendation string          `json:"recommendation"`
}

var scoreRegexp = regexp.MustCompile(`\d+(\.\d+)?`)

func parseAnalysis(answer string) (domain.Analysis, error) {
	var la llmAnalysis
	err := json.Unmarshal([]byte(textx.ExtractJSON(answer)), &la)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("解析大模型返回的匹配分析失败: %w", err)
	}
	score, err := parseScore(la.MatchScore)
	if err != nil {
		return domain.Analysis{}, err
	}
	return domain.Analysis{
		Score:          clamp(score / 100),
		MatchedSkills:  la.MatchedSkills,
		MissingSkills:  la.MissingSkills,
		Summary:        strings.TrimSpace(la.Summary),
		Recommendation: strings.TrimSpace(la.Recommendation),
	}, nil
}

// parseScore 兼容 85、"85"、"85%" 这几种写法
func parseScore(raw json.RawMessage) (float64, error) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	m := scoreRegexp.FindString(s)
	if m == "" {
		return 0, fmt.Errorf("大模型没有返回匹配分数: %q", s)
	}
	return strconv.ParseFloat(m, 64)
}
