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

type Status string

const (
	StatusApplied     Status = "applied"
	StatusInReview    Status = "in_review"
	StatusShortlisted Status = "shortlisted"
	StatusInterview   Status = "interview"
	StatusOffered     Status = "offered"
	StatusHired       Status = "hired"
	StatusRejected    Status = "rejected"
	StatusWithdrawn   Status = "withdrawn"
)

// pipeline 招聘流程中的先后顺序
var pipeline = map[Status]int{
	StatusApplied:     0,
	StatusInReview:    1,
	StatusShortlisted: 2,
	StatusInterview:   3,
	StatusOffered:     4,
	StatusHired:       5,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := pipeline[s]
	return ok || s == StatusRejected || s == StatusWithdrawn
}

func (s Status) IsTerminal() bool {
	return s == StatusHired || s == StatusRejected || s == StatusWithdrawn
}

// CanTransitionTo 只能沿着流程往后走，可以跳过中间环节。
// 任何未结束的状态都可以拒绝或者撤回
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusRejected || next == StatusWithdrawn {
		return true
	}
	cur, ok1 := pipeline[s]
	nxt, ok2 := pipeline[next]
	return ok1 && ok2 && nxt > cur
}

type Application struct {
	Id          int64
	JobId       int64
	JobTitle    string
	Company     string
	RecruiterId int64
	ApplicantId int64
	ResumeId    int64
	CoverLetter string
	Status      Status
	// MatchScore [0, 1]，打分失败时为 0
	MatchScore float64
	Match      MatchSnapshot
	// Note 招聘方最近一次更新状态时的备注
	Note  string
	Ctime int64
	Utime int64
}

// MatchSnapshot 投递时的匹配结果，之后岗位或者简历变化都不会更新
type MatchSnapshot struct {
	Similarity    float64
	FeatureScore  float64
	LLMScore      float64
	MatchedSkills []string
	MissingSkills []string
	Strategy      string
}

// CanView 投递人和岗位发布者可以查看
func (a Application) CanView(uid int64) bool {
	return uid == a.ApplicantId || uid == a.RecruiterId
}
