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

package errs

var (
	SystemError          = ErrorCode{Code: 505001, Msg: "系统错误"}
	RoleNotAllowed       = ErrorCode{Code: 505002, Msg: "只有求职者和实习生可以投递"}
	JobNotFound          = ErrorCode{Code: 505003, Msg: "岗位不存在"}
	JobClosed            = ErrorCode{Code: 505004, Msg: "岗位已关闭"}
	NoResume             = ErrorCode{Code: 505005, Msg: "请先上传简历"}
	DuplicateApplication = ErrorCode{Code: 505006, Msg: "已经投递过该岗位"}
	ApplicationNotFound  = ErrorCode{Code: 505007, Msg: "投递记录不存在"}
	PermissionDenied     = ErrorCode{Code: 505008, Msg: "无权操作该投递记录"}
	InvalidTransition    = ErrorCode{Code: 505009, Msg: "不允许变更为该状态"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
