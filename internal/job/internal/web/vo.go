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

package web

import "github.com/ecodeclub/jobmatch/internal/job/internal/domain"

type IdReq struct {
	Id int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListReq struct {
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
	Keyword  string `json:"keyword"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Remote   bool   `json:"remote"`
}

type Job struct {
	Id              int64    `json:"id"`
	RecruiterId     int64    `json:"recruiterId"`
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
	SalaryMin       int64    `json:"salaryMin"`
	SalaryMax       int64    `json:"salaryMax"`
	Status          string   `json:"status"`
	Ctime           int64    `json:"ctime"`
	Utime           int64    `json:"utime"`
}

func newJob(j domain.Job) Job {
	return Job{
		Id:              j.Id,
		RecruiterId:     j.RecruiterId,
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		Remote:          j.Remote,
		Type:            j.Type.String(),
		Description:     j.Description,
		RequiredSkills:  j.RequiredSkills,
		PreferredSkills: j.PreferredSkills,
		MinYears:        j.MinYears,
		MaxYears:        j.MaxYears,
		Education:       j.Education.String(),
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		Status:          j.Status.String(),
		Ctime:           j.Ctime,
		Utime:           j.Utime,
	}
}

func (j Job) toDomain() domain.Job {
	return domain.Job{
		Id:              j.Id,
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		Remote:          j.Remote,
		Type:            domain.Type(j.Type),
		Description:     j.Description,
		RequiredSkills:  j.RequiredSkills,
		PreferredSkills: j.PreferredSkills,
		MinYears:        j.MinYears,
		MaxYears:        j.MaxYears,
		Education:       domain.Education(j.Education),
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
	}
}

type JobList struct {
	List  []Job `json:"list"`
	Total int64 `json:"total"`
}
