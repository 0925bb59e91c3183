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
	SystemError    = ErrorCode{Code: 506001, Msg: "系统错误"}
	InvalidPromo   = ErrorCode{Code: 506002, Msg: "优惠码参数非法"}
	PromoNotFound  = ErrorCode{Code: 506003, Msg: "优惠码不存在"}
	PromoExpired   = ErrorCode{Code: 506004, Msg: "优惠码已过期"}
	PromoExhausted = ErrorCode{Code: 506005, Msg: "优惠码已用完"}
	PromoInactive  = ErrorCode{Code: 506006, Msg: "优惠码已停用"}
	DuplicateCode  = ErrorCode{Code: 506007, Msg: "优惠码已存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
