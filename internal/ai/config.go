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

package ai

type Config struct {
	Gemini GeminiConfig `yaml:"gemini"`
	Zhipu  ZhipuConfig  `yaml:"zhipu"`
	OpenAI OpenAIConfig `yaml:"openai"`
}

type GeminiConfig struct {
	APIKey string `yaml:"apiKey"`
	Model  string `yaml:"model"`
}

type ZhipuConfig struct {
	APIKey string `yaml:"apiKey"`
	Model  string `yaml:"model"`
}

// OpenAIConfig 兼容 OpenAI 协议的平台，baseURL 为空时使用官方地址
type OpenAIConfig struct {
	BaseURL        string `yaml:"baseURL"`
	APIKey         string `yaml:"apiKey"`
	ChatModel      string `yaml:"chatModel"`
	EmbeddingModel string `yaml:"embeddingModel"`
}
