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
	"fmt"

	"github.com/ecodeclub/jobmatch/internal/resume"
	"github.com/spf13/cobra"
)

type extractOutput struct {
	File             string   `json:"file"`
	Text             string   `json:"text"`
	Skills           []string `json:"skills"`
	TotalYears       float64  `json:"totalYears"`
	HighestEducation string   `json:"highestEducation"`
}

func newExtractCmd() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:     "extract",
		Short:   "抽取简历文本和关键词技能",
		Example: `  matchctl extract --file resume.pdf`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readDocument(file)
			if err != nil {
				return err
			}
			p := resume.ParseKeywords(text)
			return printJSON(cmd.OutOrStdout(), extractOutput{
				File:             file,
				Text:             text,
				Skills:           p.Skills,
				TotalYears:       p.TotalYears,
				HighestEducation: p.HighestEducation,
			})
		},
	}
	c.Flags().StringVar(&file, "file", "", "简历文件，支持 pdf、docx、txt")
	if err := c.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("标记必填参数失败: %v", err))
	}
	return c
}
