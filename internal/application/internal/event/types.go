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

package event

import "strconv"

const ApplicationEventName = "application_events"

const (
	TypeCreated       = "created"
	TypeStatusChanged = "status_changed"
)

type ApplicationEvent struct {
	Type          string  `json:"type"`
	ApplicationId int64   `json:"applicationId"`
	JobId         int64   `json:"jobId"`
	JobTitle      string  `json:"jobTitle"`
	Company       string  `json:"company"`
	ApplicantId   int64   `json:"applicantId"`
	RecruiterId   int64   `json:"recruiterId"`
	OldStatus     string  `json:"oldStatus,omitempty"`
	Status        string  `json:"status"`
	Note          string  `json:"note,omitempty"`
	MatchScore    float64 `json:"matchScore"`
}

func (e ApplicationEvent) EventKey() string {
	return strconv.FormatInt(e.ApplicationId, 10)
}
