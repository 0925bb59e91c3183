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
	"errors"
	"fmt"
	"strings"
)

type Type string

const (
	TypeFullTime   Type = "full_time"
	TypeInternship Type = "internship"
	TypeContract   Type = "contract"
	TypePartTime   Type = "part_time"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeFullTime, TypeInternship, TypeContract, TypePartTime:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// Education 学历要求，空字符串表示没有要求
type Education string

const (
	EducationNone     Education = "none"
	EducationDiploma  Education = "diploma"
	EducationBachelor Education = "bachelor"
	EducationMaster   Education = "master"
	EducationPhD      Education = "phd"
)

func (e Education) String() string {
	return string(e)
}

func (e Education) IsValid() bool {
	switch e {
	case "", EducationNone, EducationDiploma, EducationBachelor, EducationMaster, EducationPhD:
		return true
	default:
		return false
	}
}

var ErrInvalidJob = errors.New("岗位信息不合法")

type Job struct {
	Id          int64
	RecruiterId int64
	Title       string
	Company     string
	Location    string
	Remote      bool
	Type        Type
	Description string
	// 必须掌握的技能
	RequiredSkills []string
	// 加分项
	PreferredSkills []string
	MinYears        int
	// 0 表示不限
	MaxYears  int
	Education Education
	SalaryMin int64
	SalaryMax int64
	Status    Status
	Ctime     int64
	Utime     int64
}

func (j Job) IsOpen() bool {
	return j.Status == StatusOpen
}

func (j Job) Validate() error {
	switch {
	case strings.TrimSpace(j.Title) == "":
		return fmt.Errorf("%w: 标题为空", ErrInvalidJob)
	case !j.Type.IsValid():
		return fmt.Errorf("%w: 类型 %s", ErrInvalidJob, j.Type)
	case !j.Education.IsValid():
		return fmt.Errorf("%w: 学历 %s", ErrInvalidJob, j.Education)
	case j.MinYears < 0 || (j.MaxYears > 0 && j.MaxYears < j.MinYears):
		return fmt.Errorf("%w: 工作年限 %d-%d", ErrInvalidJob, j.MinYears, j.MaxYears)
	case j.SalaryMin < 0 || (j.SalaryMax > 0 && j.SalaryMax < j.SalaryMin):
		return fmt.Errorf("%w: 薪资 %d-%d", ErrInvalidJob, j.SalaryMin, j.SalaryMax)
	}
	return nil
}

// Text 参与相似度计算的文本
func (j Job) Text() string {
	var sb strings.Builder
	sb.WriteString(j.Title)
	sb.WriteString("\n")
	if j.Company != "" {
		sb.WriteString(j.Company)
		sb.WriteString("\n")
	}
	if len(j.RequiredSkills) > 0 {
		sb.WriteString("Required: ")
		sb.WriteString(strings.Join(j.RequiredSkills, ", "))
		sb.WriteString("\n")
	}
	if len(j.PreferredSkills) > 0 {
		sb.WriteString("Preferred: ")
		sb.WriteString(strings.Join(j.PreferredSkills, ", "))
		sb.WriteString("\n")
	}
	sb.WriteString(j.Description)
	return sb.String()
}

type Filter struct {
	Keyword  string
	Type     Type
	Location string
	// true 时只看远程岗位
	Remote bool
}
