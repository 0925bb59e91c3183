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

// Package doctext 从 pdf、docx 和纯文本文件中抽取文本
package doctext

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/ecodeclub/jobmatch/internal/pkg/textx"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"
	ExtTXT  = ".txt"
)

var ErrUnsupportedType = errors.New("不支持的文件类型")

// Ext 返回小写的扩展名，不支持的类型返回 ErrUnsupportedType
func Ext(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ExtPDF, ExtDOCX, ExtTXT:
		return ext, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
}

func ContentType(ext string) string {
	switch ext {
	case ExtPDF:
		return "application/pdf"
	case ExtDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extract 按照扩展名抽取文本，非法的 UTF-8 序列会被替换掉
func Extract(ext string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch ext {
	case ExtPDF:
		text, err = extractPDF(data)
	case ExtDOCX:
		text, err = extractDOCX(data)
	case ExtTXT:
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(textx.SanitizeUTF8(text)), nil
}

func extractPDF(data []byte) (text string, err error) {
	// pdf 库遇到损坏的文件会 panic
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("读取 pdf 失败: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("读取 pdf 失败: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pt, er := page.GetPlainText(nil)
		if er != nil {
			return "", fmt.Errorf("读取 pdf 第 %d 页失败: %w", i, er)
		}
		sb.WriteString(pt)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("读取 docx 失败: %w", err)
	}
	defer doc.Close()
	return stripXML(doc.Editable().GetContent()), nil
}

// stripXML GetContent 返回的是 document.xml 原文，这里去掉标签并且把段落换成换行
func stripXML(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return html.UnescapeString(sb.String())
}
