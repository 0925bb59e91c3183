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

// Package cmd 离线的简历解析和匹配打分工具
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ecodeclub/jobmatch/internal/pkg/doctext"
	"github.com/spf13/cobra"
)

const app = "matchctl"

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           app,
		Short:         "matchctl 在本地解析简历并计算和岗位的匹配度",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newExtractCmd(), newScoreCmd())
	return root
}

// readDocument 读取文件并按照扩展名抽取文本
func readDocument(path string) (string, error) {
	ext, err := doctext.Ext(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("读取文件 %s 失败: %w", path, err)
	}
	return doctext.Extract(ext, data)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
