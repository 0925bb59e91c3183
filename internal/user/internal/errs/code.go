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
	SystemError           = ErrorCode{Code: 501001, Msg: "系统错误"}
	InvalidInput          = ErrorCode{Code: 501002, Msg: "输入错误"}
	EmailDuplicate        = ErrorCode{Code: 501003, Msg: "邮箱已被注册"}
	InvalidUserOrPassword = ErrorCode{Code: 501004, Msg: "邮箱或密码不对"}
	PasswordFormatError   = ErrorCode{Code: 501005, Msg: "密码必须包含字母、数字，并且长度不少于 8 位"}
	EmailFormatError      = ErrorCode{Code: 501006, Msg: "邮箱格式不对"}
	PasswordNotMatch      = ErrorCode{Code: 501007, Msg: "两次输入的密码不一致"}
	RoleNotAllowed        = ErrorCode{Code: 501008, Msg: "不支持注册该角色"}
	UserNotFound          = ErrorCode{Code: 501009, Msg: "用户不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
