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

import "strings"

type Status string

const (
	StatusUploaded Status = "uploaded"
	StatusParsed   Status = "parsed"
	// StatusParseFailed 大模型解析失败，Profile 来自关键字抽取
	StatusParseFailed Status = "parse_failed"
)

func (s Status) String() string {
	return string(s)
}

type Resume struct {
	Id          int64
	Uid         int64
	FileName    string
	ContentType string
	ObjectKey   string
	Size        int64
	Text        string
	Profile     Profile
	Status      Status
	Ctime       int64
	Utime       int64
}

// MatchText 参与相似度计算的文本，优先使用结构化之后的内容
func (r Resume) MatchText() string {
	p := r.Profile
	if p.Summary == "" && len(p.Experiences) == 0 {
		return r.Text
	}
	var sb strings.Builder
	if p.Summary != "" {
		sb.WriteString(p.Summary)
		sb.WriteString("\n")
	}
	if len(p.Skills) > 0 {
		sb.WriteString("Skills: ")
		sb.WriteString(strings.Join(p.Skills, ", "))
		sb.WriteString("\n")
	}
	for _, e := range p.Experiences {
		sb.WriteString(e.Title)
		if e.Company != "" {
			sb.WriteString(" at ")
			sb.WriteString(e.Company)
		}
		sb.WriteString("\n")
		if e.Description != "" {
			sb.WriteString(e.Description)
			sb.WriteString("\n")
		}
	}
	for _, e := range p.Educations {
		sb.WriteString(strings.TrimSpace(e.Degree + " " + e.Field))
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

type Profile struct {
	Name    string
	Email   string
	Phone   string
	Summary string
	Skills  []string
	// TotalYears 工作年限，0 表示未知
	TotalYears float64
	// HighestEducation none、diploma、bachelor、master、phd 之一，空字符串表示未知
	HighestEducation string
	Location         string
	Educations       []Education
	Experiences      []Experience
}

type Education struct {
	Degree      string
	Field       string
	Institution string
	Year        int
}

type Experience struct {
	Title       string
	Company     string
	Years       float64
	Description string
}

// File 上传的原始文件
type File struct {
	Name string
	Data []byte
}

// 学历从低到高
const (
	EducationNone     = "none"
	EducationDiploma  = "diploma"
	EducationBachelor = "bachelor"
	EducationMaster   = "master"
	EducationPhD      = "phd"
)

// NormalizeEducation 把 "BSc Computer Science"、"Masters" 之类的写法归一成学历等级，识别不了返回空字符串
func NormalizeEducation(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return ""
	case strings.Contains(s, "phd") || strings.Contains(s, "ph.d") || strings.Contains(s, "doctor"):
		return EducationPhD
	case strings.Contains(s, "master") || strings.Contains(s, "msc") || strings.Contains(s, "m.sc") ||
		strings.Contains(s, "mba") || strings.Contains(s, "m.a."):
		return EducationMaster
	case strings.Contains(s, "bachelor") || strings.Contains(s, "bsc") || strings.Contains(s, "b.sc") ||
		strings.Contains(s, "b.a.") || strings.Contains(s, "b.tech") || strings.Contains(s, "beng") ||
		strings.Contains(s, "degree") || strings.Contains(s, "undergraduate"):
		return EducationBachelor
	case strings.Contains(s, "diploma") || strings.Contains(s, "certificate") || strings.Contains(s, "associate"):
		return EducationDiploma
	case s == EducationNone || strings.Contains(s, "high school") || strings.Contains(s, "secondary"):
		return EducationNone
	default:
		return ""
	}
}
