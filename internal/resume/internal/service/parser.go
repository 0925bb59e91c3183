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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobmatch/internal/ai"
	"github.com/ecodeclub/jobmatch/internal/pkg/skills"
	"github.com/ecodeclub/jobmatch/internal/pkg/textx"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/domain"
)

const (
	parseBiz = "resume_parse"
	// 送给大模型的简历最多这么多字符
	maxPromptRunes = 12000
	maxYears       = 50
)

//go:embed prompts/parse_resume.tmpl
var parsePrompt string

var parseTmpl = template.Must(template.New("parse_resume").Parse(parsePrompt))

//go:generate mockgen -source=./parser.go -package=svcmocks -destination=mocks/parser.mock.go Parser
type Parser interface {
	Parse(ctx context.Context, uid int64, text string) (domain.Profile, error)
}

type LLMParser struct {
	llm ai.LLMService
}

func NewLLMParser(llm ai.LLMService) Parser {
	return &LLMParser{llm: llm}
}

func (p *LLMParser) Parse(ctx context.Context, uid int64, text string) (domain.Profile, error) {
	var buf bytes.Buffer
	err := parseTmpl.Execute(&buf, map[string]string{
		"Text": textx.TruncateRunes(text, maxPromptRunes, ""),
	})
	if err != nil {
		return domain.Profile{}, err
	}
	resp, err := p.llm.Invoke(ctx, ai.LLMRequest{
		Biz:    parseBiz,
		Uid:    uid,
		Prompt: buf.String(),
		JSON:   true,
	})
	if err != nil {
		return domain.Profile{}, err
	}
	var lp llmProfile
	err = json.Unmarshal([]byte(textx.ExtractJSON(resp.Answer)), &lp)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("解析大模型返回的简历失败: %w", err)
	}
	profile := lp.toDomain()
	// 大模型漏掉的技能用关键字补上
	if len(profile.Skills) == 0 {
		profile.Skills = skills.Extract(text)
	}
	return profile, nil
}

type llmProfile struct {
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            flexString      `json:"phone"`
	Location         string          `json:"location"`
	Summary          string          `json:"summary"`
	Skills           flexStrings     `json:"skills"`
	TotalYears       flexNumber      `json:"total_years"`
	HighestEducation string          `json:"highest_education"`
	Educations       []llmEducation  `json:"educations"`
	Experiences      []llmExperience `json:"experiences"`
}

type llmEducation struct {
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	Institution string     `json:"institution"`
	Year        flexNumber `json:"year"`
}

type llmExperience struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Years       flexNumber `json:"years"`
	Description string     `json:"description"`
}

func (lp llmProfile) toDomain() domain.Profile {
	p := domain.Profile{
		Name:             strings.TrimSpace(lp.Name),
		Email:            strings.ToLower(strings.TrimSpace(lp.Email)),
		Phone:            strings.TrimSpace(string(lp.Phone)),
		Location:         strings.TrimSpace(lp.Location),
		Summary:          strings.TrimSpace(lp.Summary),
		Skills:           skills.NormalizeAll(lp.Skills),
		TotalYears:       clampYears(float64(lp.TotalYears)),
		HighestEducation: domain.NormalizeEducation(lp.HighestEducation),
		Educations: slice.Map(lp.Educations, func(idx int, src llmEducation) domain.Education {
			return domain.Education{
				Degree:      src.Degree,
				Field:       src.Field,
				Institution: src.Institution,
				Year:        int(src.Year),
			}
		}),
		Experiences: slice.Map(lp.Experiences, func(idx int, src llmExperience) domain.Experience {
			return domain.Experience{
				Title:       src.Title,
				Company:     src.Company,
				Years:       clampYears(float64(src.Years)),
				Description: src.Description,
			}
		}),
	}
	if p.TotalYears == 0 {
		var sum float64
		for _, e := range p.Experiences {
			sum += e.Years
		}
		p.TotalYears = clampYears(sum)
	}
	if p.HighestEducation == "" {
		p.HighestEducation = highestEducation(p.Educations)
	}
	return p
}

func highestEducation(edus []domain.Education) string {
	res, best := "", -1
	for _, e := range edus {
		lvl := domain.NormalizeEducation(e.Degree)
		if rank := educationRank(lvl); rank > best {
			res, best = lvl, rank
		}
	}
	return res
}

func educationRank(lvl string) int {
	switch lvl {
	case domain.EducationNone:
		return 0
	case domain.EducationDiploma:
		return 1
	case domain.EducationBachelor:
		return 2
	case domain.EducationMaster:
		return 3
	case domain.EducationPhD:
		return 4
	default:
		return -1
	}
}

func clampYears(y float64) float64 {
	if y < 0 {
		return 0
	}
	if y > maxYears {
		return maxYears
	}
	return y
}

var numberRegexp = regexp.MustCompile(`\d+(\.\d+)?`)

// flexNumber 大模型有时候会把数字写成 "5"、"5+ years" 或者 null
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		m := numberRegexp.FindString(s)
		if m == "" {
			*f = 0
			return nil
		}
		v, _ = strconv.ParseFloat(m, 64)
	}
	*f = flexNumber(v)
	return nil
}

// flexString 电话号码经常被返回成数字
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*f = flexString(str)
		return nil
	}
	*f = flexString(s)
	return nil
}

// flexStrings 兼容数组和逗号分隔的字符串
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = nil
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := json.Unmarshal(b, &arr); err != nil {
			return err
		}
		*f = arr
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parts := strings.Split(str, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	*f = res
	return nil
}

var (
	emailRegexp = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRegexp = regexp.MustCompile(`\+?\d[\d\s\-()]{7,}\d`)
	// "5 years"、"3+ yrs"、"2.5 years of experience"
	yearsRegexp = regexp.MustCompile(`(?i)\b(\d{1,2}(?:\.\d)?)\s*\+?\s*(?:years?|yrs?)\b`)
	// "2018 - 2021"、"2019 to present"
	rangeRegexp = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:-|–|—|to)\s*((?:19|20)\d{2}|present|current|now|date)\b`)
)

// ParseKeywords 不依赖大模型的兜底解析：关键字抽技能，正则估算工作年限
func ParseKeywords(text string) domain.Profile {
	return ParseKeywordsAt(text, time.Now())
}

func ParseKeywordsAt(text string, now time.Time) domain.Profile {
	p := domain.Profile{
		Name:             guessName(text),
		Email:            strings.ToLower(emailRegexp.FindString(text)),
		Phone:            strings.TrimSpace(phoneRegexp.FindString(text)),
		Summary:          textx.TruncateRunes(textx.NormalizeSpace(text), 300, "..."),
		Skills:           skills.Extract(text),
		TotalYears:       estimateYears(text, now),
		HighestEducation: scanEducation(text),
	}
	return p
}

// estimateYears 取 "N years" 写法和年份区间累加两者中较大的
func estimateYears(text string, now time.Time) float64 {
	var explicit float64
	for _, m := range yearsRegexp.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil && v > explicit {
			explicit = v
		}
	}
	var ranged float64
	for _, m := range rangeRegexp.FindAllStringSubmatch(text, -1) {
		start, _ := strconv.Atoi(m[1])
		end, err := strconv.Atoi(m[2])
		if err != nil {
			end = now.Year()
		}
		if end > start {
			ranged += float64(end - start)
		}
	}
	if ranged > explicit {
		return clampYears(ranged)
	}
	return clampYears(explicit)
}

func scanEducation(text string) string {
	res, best := "", -1
	for _, line := range strings.Split(text, "\n") {
		lvl := domain.NormalizeEducation(line)
		if rank := educationRank(lvl); rank > best {
			res, best = lvl, rank
		}
	}
	return res
}

// guessName 简历第一行通常是姓名
func guessName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		if len(words) > 4 || strings.ContainsAny(line, "@0123456789:|") {
			return ""
		}
		return line
	}
	return ""
}
