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

type LLMRequest struct {
	// 业务标记，例如 resume_parse
	Biz    string
	Uid    int64
	Prompt string
	// 要求模型只输出 JSON
	JSON bool
}

type LLMResponse struct {
	Answer string
	Tokens int64
	Model  string
}
