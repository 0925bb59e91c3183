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

// Package textx 处理送给大模型的文本以及大模型返回的文本
package textx

import (
	"strings"
	"unicode/utf8"
)

// ExtractJSON 从大模型的回复中取出 JSON 对象。
// 会去掉 ```json 代码块，并且只保留第一个 '{' 到最后一个 '}' 之间的内容
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return s
	}
	return s[start : end+1]
}

// TruncateRunes 按字符截断，避免把多字节字符截成两半
func TruncateRunes(s string, limit int, suffix string) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + suffix
}

// SanitizeUTF8 替换非法的 UTF-8 序列，PDF 抽取出来的文本经常带这种东西
func SanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "�")
}

// NormalizeSpace 把连续空白压缩成一个空格
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
