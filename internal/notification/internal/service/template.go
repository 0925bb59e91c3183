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

package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	tplWelcome              = "welcome.html"
	tplApplicationApplicant = "application_applicant.html"
	tplApplicationRecruiter = "application_recruiter.html"
	tplApplicationStatus    = "application_status.html"
	tplPaymentReceipt       = "payment_receipt.html"
)

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("渲染模板 %s 失败: %w", name, err)
	}
	return buf.Bytes(), nil
}
