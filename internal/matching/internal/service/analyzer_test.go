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

	"github.com/ecodeclub/jobmatch/internal/ai"
	aimocks "github.com/ecodeclub/jobmatch/internal/ai/mocks"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLLMAnalyzer_Analyze(t *testing.T) {
	testCases := []struct {
		name    string
		answer  string
		err     error
		want    domain.Analysis
		wantErr bool
	}{
		{
			name: "正常返回",
			answer: "```json\n" + `{"match_score": 85, "matched_skills": ["go"], "missing_skills": ["redis"],
"summary": " Strong backend fit. ", "recommendation": "Learn Redis"}` + "\n```",
			want: domain.Analysis{
				Score:          0.85,
				MatchedSkills:  []string{"go"},
				MissingSkills:  []string{"redis"},
				Summary:        "Strong backend fit.",
				Recommendation: "Learn Redis",
			},
		},
		{
			name:   "分数是百分比字符串",
			answer: `{"match_score": "72%"}`,
			want:   domain.Analysis{Score: 0.72},
		},
		{
			name:   "分数超过100",
			answer: `{"match_score": 120}`,
			want:   domain.Analysis{Score: 1},
		},
		{
			name:    "没有分数",
			answer:  `{"summary": "ok"}`,
			wantErr: true,
		},
		{
			name:    "不是JSON",
			answer:  "I think the candidate is great",
			wantErr: true,
		},
		{
			name:    "调用失败",
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
					assert.Equal(t, analyzeBiz, req.Biz)
					assert.Contains(t, req.Prompt, "resume text")
					assert.Contains(t, req.Prompt, "job text")
					return ai.LLMResponse{Answer: tc.answer}, tc.err
				})
			a, err := NewLLMAnalyzer(llm).Analyze(context.Background(), 1, "resume text", "job text")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, a)
		})
	}
}
