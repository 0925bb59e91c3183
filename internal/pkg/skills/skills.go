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

// Package skills 技能名称的归一化和简历文本中的关键字抽取
package skills

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// aliasPairs 别名和标准名称，全部小写
var aliasPairs = [][2]string{
	{"golang", "go"},
	{"js", "javascript"},
	{"node", "node.js"},
	{"nodejs", "node.js"},
	{"ts", "typescript"},
	{"k8s", "kubernetes"},
	{"postgres", "postgresql"},
	{"psql", "postgresql"},
	{"mongo", "mongodb"},
	{"reactjs", "react"},
	{"react.js", "react"},
	{"vuejs", "vue"},
	{"vue.js", "vue"},
	{"ml", "machine learning"},
	{"dl", "deep learning"},
	{"amazon web services", "aws"},
	{"gcp", "google cloud"},
	{"cicd", "ci/cd"},
	{"csharp", "c#"},
	{"cpp", "c++"},
	{"restful", "rest api"},
	{"microsoft excel", "excel"},
	{"powerbi", "power bi"},
	{"mpesa", "m-pesa"},
}

var aliases = func() map[string]string {
	res := make(map[string]string, len(aliasPairs))
	for _, p := range aliasPairs {
		res[p[0]] = p[1]
	}
	return res
}()

// dictionary 没有大模型时用来从简历里面找技能
var dictionary = []string{
	"go", "java", "python", "javascript", "typescript", "c++", "c#", "php", "ruby", "rust", "kotlin", "swift", "scala",
	"node.js", "react", "vue", "angular", "django", "flask", "spring", "gin", "laravel", "next.js",
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "kafka", "rabbitmq",
	"docker", "kubernetes", "aws", "azure", "google cloud", "terraform", "linux", "git", "ci/cd",
	"rest api", "graphql", "grpc", "microservices",
	"machine learning", "deep learning", "data analysis", "pandas", "numpy", "tensorflow", "pytorch", "nlp",
	"excel", "power bi", "tableau", "figma", "photoshop",
	"project management", "agile", "scrum", "communication", "leadership", "accounting", "sales", "marketing",
	"customer service", "m-pesa",
}

var (
	patternsOnce sync.Once
	patterns     map[string]*regexp.Regexp
	// extra 词典之外的技能，第一次用到的时候再编译
	extra sync.Map
	// letters R、C 这种单个字母的技能，只认大写
	letters sync.Map
)

// caseSensitive 同时也是常见英文单词的技能，只认技术写法的大小写。
// 例如 "ready to go the extra mile" 里的 go 不算 Go
var caseSensitive = map[string]*regexp.Regexp{
	"go":    regexp.MustCompile(`(^|[^A-Za-z0-9])(Go|GO)($|[^A-Za-z0-9+#-])`),
	"gin":   regexp.MustCompile(`(^|[^A-Za-z0-9])Gin($|[^A-Za-z0-9])`),
	"node":  regexp.MustCompile(`(^|[^A-Za-z0-9])Node($|[^A-Za-z0-9])`),
	"rust":  regexp.MustCompile(`(^|[^A-Za-z0-9])Rust($|[^A-Za-z0-9])`),
	"swift": regexp.MustCompile(`(^|[^A-Za-z0-9])Swift($|[^A-Za-z0-9])`),
	"ts":    regexp.MustCompile(`(^|[^A-Za-z0-9])TS($|[^A-Za-z0-9])`),
	"dl":    regexp.MustCompile(`(^|[^A-Za-z0-9])DL($|[^A-Za-z0-9])`),
}

// Normalize 转小写，去掉首尾空白，并把别名转成标准名称
func Normalize(skill string) string {
	s := strings.ToLower(strings.Join(strings.Fields(skill), " "))
	if std, ok := aliases[s]; ok {
		return std
	}
	return s
}

// NormalizeAll 归一化并去重，保持原有顺序
func NormalizeAll(skills []string) []string {
	res := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, sk := range skills {
		n := Normalize(sk)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		res = append(res, n)
	}
	return res
}

// Extract 在文本中查找词典里的技能，结果按字母序排列
func Extract(text string) []string {
	lower := strings.ToLower(text)
	found := make(map[string]struct{})
	for _, sk := range dictionary {
		if mentions(text, lower, sk) {
			found[sk] = struct{}{}
		}
	}
	for alias, std := range aliases {
		if _, ok := found[std]; ok {
			continue
		}
		if mentions(text, lower, alias) {
			found[std] = struct{}{}
		}
	}
	res := make([]string, 0, len(found))
	for sk := range found {
		res = append(res, sk)
	}
	sort.Strings(res)
	return res
}

// Mentions 文本中是否提到了技能，别名也算
func Mentions(text, skill string) bool {
	lower := strings.ToLower(text)
	std := Normalize(skill)
	if mentions(text, lower, std) {
		return true
	}
	for alias, s := range aliases {
		if s == std && mentions(text, lower, alias) {
			return true
		}
	}
	return false
}

// mentions 要求技能两侧不是字母或数字，避免 go 匹配到 google
func mentions(text, lower, skill string) bool {
	if skill == "" {
		return false
	}
	if p, ok := caseSensitive[skill]; ok {
		return p.MatchString(text)
	}
	if len(skill) == 1 {
		return letter(skill).MatchString(text)
	}
	return pattern(skill).MatchString(lower)
}

func letter(skill string) *regexp.Regexp {
	if p, ok := letters.Load(skill); ok {
		return p.(*regexp.Regexp)
	}
	p, _ := letters.LoadOrStore(skill, regexp.MustCompile(
		`(^|[^A-Za-z0-9])`+regexp.QuoteMeta(strings.ToUpper(skill))+`($|[^A-Za-z0-9+#&])`))
	return p.(*regexp.Regexp)
}

func pattern(skill string) *regexp.Regexp {
	patternsOnce.Do(func() {
		patterns = make(map[string]*regexp.Regexp, len(dictionary)+len(aliases))
		for _, sk := range dictionary {
			patterns[sk] = compile(sk)
		}
		for alias, std := range aliases {
			patterns[alias] = compile(alias)
			if _, ok := patterns[std]; !ok {
				patterns[std] = compile(std)
			}
		}
	})
	if p, ok := patterns[skill]; ok {
		return p
	}
	if p, ok := extra.Load(skill); ok {
		return p.(*regexp.Regexp)
	}
	p, _ := extra.LoadOrStore(skill, compile(skill))
	return p.(*regexp.Regexp)
}

func compile(skill string) *regexp.Regexp {
	return regexp.MustCompile(`(^|[^a-z0-9])` + regexp.QuoteMeta(skill) + `($|[^a-z0-9+#])`)
}
