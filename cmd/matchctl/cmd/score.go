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
	"encoding/json"
	"fmt"
	"os"

	"github.com/ecodeclub/jobmatch/internal/ai"
	"github.com/ecodeclub/jobmatch/internal/job"
	"github.com/ecodeclub/jobmatch/internal/matching"
	"github.com/ecodeclub/jobmatch/internal/resume"
	"github.com/spf13/cobra"
)

// jobFile --job 指定的岗位描述
type jobFile struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Remote          bool     `json:"remote"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"requiredSkills"`
	PreferredSkills []string `json:"preferredSkills"`
	MinYears        int      `json:"minYears"`
	MaxYears        int      `json:"maxYears"`
	Education       string   `json:"education"`
}

func (j jobFile) toJob() job.Job {
	typ := job.Type(j.Type)
	if typ == "" {
		typ = job.TypeFullTime
	}
	return job.Job{
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		Remote:          j.Remote,
		Type:            typ,
		Description:     j.Description,
		RequiredSkills:  j.RequiredSkills,
		PreferredSkills: j.PreferredSkills,
		MinYears:        j.MinYears,
		MaxYears:        j.MaxYears,
		Education:       job.Education(j.Education),
		Status:          job.StatusOpen,
	}
}

type scoreOutput struct {
	Score         float64           `json:"score"`
	Similarity    *float64          `json:"similarity,omitempty"`
	FeatureScore  float64           `json:"featureScore"`
	Features      matching.Features `json:"features"`
	MatchedSkills []string          `json:"matchedSkills"`
	MissingSkills []string          `json:"missingSkills"`
	Strategy      string            `json:"strategy"`
}

type scoreOptions struct {
	resume  string
	job     string
	embed   bool
	baseURL string
	model   string
}

func newScoreCmd() *cobra.Command {
	var opts scoreOptions
	c := &cobra.Command{
		Use:   "score",
		Short: "计算简历和岗位的匹配度",
		Long: `使用规则特征（技能、经验、学历、地点）给简历打分。
加上 --embed 之后会通过兼容 OpenAI 的向量接口计算语义相似度，API key 从 OPENAI_API_KEY 读取。`,
		Example: `  matchctl score --resume resume.pdf --job job.json
  matchctl score --resume resume.docx --job job.json --embed`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, opts)
		},
	}
	c.Flags().StringVar(&opts.resume, "resume", "", "简历文件，支持 pdf、docx、txt")
	c.Flags().StringVar(&opts.job, "job", "", "岗位 JSON 文件")
	c.Flags().BoolVar(&opts.embed, "embed", false, "是否计算语义相似度")
	c.Flags().StringVar(&opts.baseURL, "base-url", os.Getenv("OPENAI_BASE_URL"), "兼容 OpenAI 的接口地址")
	c.Flags().StringVar(&opts.model, "model", "text-embedding-3-small", "向量模型")
	for _, name := range []string{"resume", "job"} {
		if err := c.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("标记必填参数失败: %v", err))
		}
	}
	return c
}

func runScore(cmd *cobra.Command, opts scoreOptions) error {
	text, err := readDocument(opts.resume)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(opts.job)
	if err != nil {
		return fmt.Errorf("读取岗位文件失败: %w", err)
	}
	var jf jobFile
	if err = json.Unmarshal(data, &jf); err != nil {
		return fmt.Errorf("解析岗位文件失败: %w", err)
	}
	j := jf.toJob()
	if err = j.Validate(); err != nil {
		return err
	}
	candidate := matching.NewCandidate(resume.Resume{
		Text:    text,
		Profile: resume.ParseKeywords(text),
	})
	target := matching.NewTarget(j)

	var sim *float64
	if opts.embed {
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return fmt.Errorf("使用 --embed 需要设置 OPENAI_API_KEY")
		}
		svc := ai.NewOpenAIEmbedding(opts.baseURL, key, opts.model)
		vecs, er := svc.Embed(cmd.Context(), matching.EmbedTexts(candidate, target))
		if er != nil {
			return fmt.Errorf("计算向量失败: %w", er)
		}
		s := matching.Cosine(vecs[0], vecs[1])
		sim = &s
	}
	res := matching.Evaluate(candidate, target, sim, nil, matching.DefaultWeights)
	return printJSON(cmd.OutOrStdout(), scoreOutput{
		Score:         res.Score,
		Similarity:    sim,
		FeatureScore:  res.FeatureScore,
		Features:      res.Features,
		MatchedSkills: res.MatchedSkills,
		MissingSkills: res.MissingSkills,
		Strategy:      string(res.Strategy),
	})
}
