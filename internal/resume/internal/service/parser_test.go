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
	aimocks "github.com/ecodeclub/jobmatch/internal/ai/mocks"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const resumeText = `Jane Wanjiku
jane@example.com | +254 712 345 678
Nairobi
Backend developer with 4 years of experience in Golang and MongoDB.
Acme Ltd 2018 - 2021
Beta Inc 2021 - present
BSc Computer Science, University of Nairobi`

func TestLLMParser_Parse(t *testing.T) {
	testCases := []struct {
		name   string
		answer string
		err    error

		want    domain.Profile
		wantErr bool
	}{
		{
			name: "宽松解析",
			answer: "```json\n" + `{"name":"Jane Wanjiku","email":"JANE@EXAMPLE.COM","phone":254712345678,
"skills":"Golang, MongoDB","total_years":"5+ years","highest_education":"Bachelor of Science",
"educations":[{"degree":"BSc","field":"Computer Science","institution":"UoN","year":"2017"}],
"experiences":[{"title":"Engineer","company":"Acme","years":3,"description":"APIs"}]}` + "\n```",
			want: domain.Profile{
				Name:             "Jane Wanjiku",
				Email:            "jane@example.com",
				Phone:            "254712345678",
				Skills:           []string{"go", "mongodb"},
				TotalYears:       5,
				HighestEducation: domain.EducationBachelor,
				Educations: []domain.Education{
					{Degree: "BSc", Field: "Computer Science", Institution: "UoN", Year: 2017},
				},
				Experiences: []domain.Experience{
					{Title: "Engineer", Company: "Acme", Years: 3, Description: "APIs"},
				},
			},
		},
		{
			name: "缺失字段由经历和关键字补齐",
			answer: `{"name":"Jane","skills":[],"total_years":null,
"educations":[{"degree":"Diploma"},{"degree":"MSc"}],
"experiences":[{"title":"Engineer","years":2},{"title":"Lead","years":"1.5"}]}`,
			want: domain.Profile{
				Name:             "Jane",
				Skills:           []string{"go", "mongodb"},
				TotalYears:       3.5,
				HighestEducation: domain.EducationMaster,
				Educations: []domain.Education{
					{Degree: "Diploma"}, {Degree: "MSc"},
				},
				Experiences: []domain.Experience{
					{Title: "Engineer", Years: 2}, {Title: "Lead", Years: 1.5},
				},
			},
		},
		{
			name:    "返回的不是JSON",
			answer:  "sorry, I can not help",
			wantErr: true,
		},
		{
			name:    "大模型调用失败",
			err:     errors.New("mock error"),
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			llm := aimocks.NewMockService(ctrl)
			llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
					assert.Equal(t, parseBiz, req.Biz)
					assert.Equal(t, int64(1), req.Uid)
					assert.True(t, req.JSON)
					assert.Contains(t, req.Prompt, "Jane Wanjiku")
					return ai.LLMResponse{Answer: tc.answer}, tc.err
				})
			p, err := NewLLMParser(llm).Parse(context.Background(), 1, resumeText)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p)
		})
	}
}

func TestParseKeywordsAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	p := ParseKeywordsAt(resumeText, now)
	assert.Equal(t, "Jane Wanjiku", p.Name)
	assert.Equal(t, "jane@example.com", p.Email)
	assert.Equal(t, "+254 712 345 678", p.Phone)
	assert.Equal(t, []string{"go", "mongodb"}, p.Skills)
	// 2018-2021 加上 2021-2024，比明确写的 4 年多
	assert.Equal(t, float64(6), p.TotalYears)
	assert.Equal(t, domain.EducationBachelor, p.HighestEducation)
	assert.NotEmpty(t, p.Summary)
}

func TestEstimateYears(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name string
		text string
		want float64
	}{
		{name: "明确写了年限", text: "5+ years of experience", want: 5},
		{name: "取最大的年限", text: "2 yrs in Go, 3.5 years in Java", want: 3.5},
		{name: "年份区间", text: "2015 to 2019\n2020 – 2022", want: 6},
		{name: "四位年份不算年限", text: "graduated 2019 years ago", want: 0},
		{name: "没有信息", text: "fresh graduate", want: 0},
		{name: "超过上限", text: "60 years", want: maxYears},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, estimateYears(tc.text, now))
		})
	}
}
