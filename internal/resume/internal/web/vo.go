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

type IdReq struct {
	Id int64 `json:"id"`
}

type Resume struct {
	Id       int64   `json:"id"`
	FileName string  `json:"fileName"`
	Size     int64   `json:"size"`
	Status   string  `json:"status"`
	Text     string  `json:"text,omitempty"`
	Profile  Profile `json:"profile"`
	Ctime    int64   `json:"ctime"`
}

type Profile struct {
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Location         string       `json:"location"`
	Summary          string       `json:"summary"`
	Skills           []string     `json:"skills"`
	TotalYears       float64      `json:"totalYears"`
	HighestEducation string       `json:"highestEducation"`
	Educations       []Education  `json:"educations"`
	Experiences      []Experience `json:"experiences"`
}

type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

type Experience struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Years       float64 `json:"years"`
	Description string  `json:"description"`
}
