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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJob_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		job     Job
		wantErr error
	}{
		{
			name: "合法",
			job:  Job{Title: "Go Developer", Type: TypeFullTime, MinYears: 1, MaxYears: 3, Education: EducationBachelor},
		},
		{
			name: "不限年限",
			job:  Job{Title: "Go Developer", Type: TypeInternship, MinYears: 0, MaxYears: 0},
		},
		{
			name:    "标题为空",
			job:     Job{Title: "  ", Type: TypeFullTime},
			wantErr: ErrInvalidJob,
		},
		{
			name:    "类型不对",
			job:     Job{Title: "Go", Type: "freelance"},
			wantErr: ErrInvalidJob,
		},
		{
			name:    "学历不对",
			job:     Job{Title: "Go", Type: TypeContract, Education: "kindergarten"},
			wantErr: ErrInvalidJob,
		},
		{
			name:    "年限反了",
			job:     Job{Title: "Go", Type: TypePartTime, MinYears: 5, MaxYears: 2},
			wantErr: ErrInvalidJob,
		},
		{
			name:    "薪资反了",
			job:     Job{Title: "Go", Type: TypePartTime, SalaryMin: 500, SalaryMax: 100},
			wantErr: ErrInvalidJob,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.job.Validate(), tc.wantErr)
		})
	}
}

func TestJob_Text(t *testing.T) {
	j := Job{
		Title:          "Go Developer",
		Company:        "Acme",
		RequiredSkills: []string{"go", "redis"},
		Description:    "Build APIs",
	}
	assert.Equal(t, "Go Developer\nAcme\nRequired: go, redis\nBuild APIs", j.Text())
}
