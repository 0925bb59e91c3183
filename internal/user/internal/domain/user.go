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

import "time"

type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
	RoleIntern    Role = "intern"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// CanSelfRegister 管理员只能通过配置指定
func (r Role) CanSelfRegister() bool {
	switch r {
	case RoleJobSeeker, RoleRecruiter, RoleIntern:
		return true
	default:
		return false
	}
}

// IsCandidate 求职者和实习生都可以投递
func (r Role) IsCandidate() bool {
	return r == RoleJobSeeker || r == RoleIntern
}

type User struct {
	Id    int64
	Email string
	// 加密后的密码
	Password     string
	Name         string
	Phone        string
	Role         Role
	Avatar       string
	PremiumUntil int64
	Ctime        int64
	Utime        int64
}

func (u User) IsPremium(now time.Time) bool {
	return u.PremiumUntil > now.UnixMilli()
}
