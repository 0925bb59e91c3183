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

import (
	"math"

	"github.com/ecodeclub/jobmatch/internal/application/internal/domain"
)

type ApplyReq struct {
	JobId       int64  `json:"jobId"`
	CoverLetter string `json:"coverLetter"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type JobApplicationsReq struct {
	JobId  int64 `json:"jobId"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type UpdateStatusReq struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
	Note   string `json:"note"`
}

type Application struct {
	Id          int64   `json:"id"`
	JobId       int64   `json:"jobId"`
	JobTitle    string  `json:"jobTitle"`
	Company     string  `json:"company"`
	RecruiterId int64   `json:"recruiterId"`
	ApplicantId int64   `json:"applicantId"`
	ResumeId    int64   `json:"resumeId"`
	CoverLetter string  `json:"coverLetter"`
	Status      string  `json:"status"`
	MatchScore  float64 `json:"matchScore"`
	Match       Match   `json:"match"`
	Note        string  `json:"note"`
	Ctime       int64   `json:"ctime"`
	Utime       int64   `json:"utime"`
}

// Match 分数都是 0-100
type Match struct {
	Similarity    float64  `json:"similarity"`
	FeatureScore  float64  `json:"featureScore"`
	LLMScore      float64  `json:"llmScore"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	Strategy      string   `json:"strategy"`
}

type ApplicationList struct {
	Total int64         `json:"total"`
	List  []Application `json:"list"`
}

func newApplication(a domain.Application) Application {
	return Application{
		Id:          a.Id,
		JobId:       a.JobId,
		JobTitle:    a.JobTitle,
		Company:     a.Company,
		RecruiterId: a.RecruiterId,
		ApplicantId: a.ApplicantId,
		ResumeId:    a.ResumeId,
		CoverLetter: a.CoverLetter,
		Status:      a.Status.String(),
		MatchScore:  percent(a.MatchScore),
		Match: Match{
			Similarity:    percent(a.Match.Similarity),
			FeatureScore:  percent(a.Match.FeatureScore),
			LLMScore:      percent(a.Match.LLMScore),
			MatchedSkills: a.Match.MatchedSkills,
			MissingSkills: a.Match.MissingSkills,
			Strategy:      a.Match.Strategy,
		},
		Note:  a.Note,
		Ctime: a.Ctime,
		Utime: a.Utime,
	}
}

func percent(v float64) float64 {
	return math.Round(v*1000) / 10
}
