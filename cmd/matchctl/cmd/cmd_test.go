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

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeText = `Jane Wanjiru
Nairobi, Kenya
Bachelor of Science in Computer Science, University of Nairobi
Experience: 5 years of experience building backend services
Skills: Go, Docker, Kubernetes, PostgreSQL, Redis`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestExtract(t *testing.T) {
	p := writeFile(t, "resume.txt", resumeText)
	out, err := run(t, "extract", "--file", p)
	require.NoError(t, err)
	var res extractOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, p, res.File)
	assert.Contains(t, res.Text, "Jane Wanjiru")
	assert.NotEmpty(t, res.Skills)
}

func TestExtractErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "缺少文件参数", args: []string{"extract"}},
		{name: "不支持的格式", args: []string{"extract", "--file", "resume.png"}},
		{name: "文件不存在", args: []string{"extract", "--file", filepath.Join(t.TempDir(), "none.txt")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestScore(t *testing.T) {
	resumePath := writeFile(t, "resume.txt", resumeText)
	jobPath := writeFile(t, "job.json", `{
  "title": "Backend Engineer",
  "company": "Acme",
  "location": "Nairobi",
  "remote": true,
  "description": "Build APIs in Go",
  "requiredSkills": ["Go", "Docker"],
  "preferredSkills": ["Kubernetes"],
  "minYears": 3,
  "education": "bachelor"
}`)
	out, err := run(t, "score", "--resume", resumePath, "--job", jobPath)
	require.NoError(t, err)
	var res scoreOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "features_only", res.Strategy)
	assert.Nil(t, res.Similarity)
	assert.Greater(t, res.Score, 0.0)
	assert.LessOrEqual(t, res.Score, 1.0)
	assert.Equal(t, 1.0, res.Features.Location)
}

func TestScoreErrors(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	resumePath := writeFile(t, "resume.txt", resumeText)
	testCases := []struct {
		name string
		job  string
		args func(jobPath string) []string
	}{
		{
			name: "岗位文件不是JSON",
			job:  "not json",
			args: func(jobPath string) []string {
				return []string{"score", "--resume", resumePath, "--job", jobPath}
			},
		},
		{
			name: "岗位缺少标题",
			job:  `{"company":"Acme"}`,
			args: func(jobPath string) []string {
				return []string{"score", "--resume", resumePath, "--job", jobPath}
			},
		},
		{
			name: "embed缺少key",
			job:  `{"title":"Go Developer"}`,
			args: func(jobPath string) []string {
				return []string{"score", "--resume", resumePath, "--job", jobPath, "--embed"}
			},
		},
		{
			name: "缺少岗位参数",
			job:  `{}`,
			args: func(jobPath string) []string {
				return []string{"score", "--resume", resumePath}
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			jobPath := writeFile(t, "job.json", tc.job)
			_, err := run(t, tc.args(jobPath)...)
			assert.Error(t, err)
		})
	}
}
