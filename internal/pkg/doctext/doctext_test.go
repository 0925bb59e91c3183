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

package doctext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExt(t *testing.T) {
	testCases := []struct {
		name     string
		filename string
		want     string
		wantErr  error
	}{
		{name: "pdf", filename: "cv.PDF", want: ExtPDF},
		{name: "docx", filename: "my.resume.docx", want: ExtDOCX},
		{name: "txt", filename: "cv.txt", want: ExtTXT},
		{name: "doc 不支持", filename: "cv.doc", wantErr: ErrUnsupportedType},
		{name: "没有扩展名", filename: "cv", wantErr: ErrUnsupportedType},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ext, err := Ext(tc.filename)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, ext)
		})
	}
}

func TestExtractTXT(t *testing.T) {
	text, err := Extract(ExtTXT, []byte("  Jane Doe\nGo developer\xff  "))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo developer�", text)
}

func TestExtractInvalid(t *testing.T) {
	_, err := Extract(ExtPDF, []byte("not a pdf"))
	assert.Error(t, err)
	_, err = Extract(ExtDOCX, []byte("not a docx"))
	assert.Error(t, err)
	_, err = Extract(".exe", []byte("MZ"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestStripXML(t *testing.T) {
	content := `<w:document><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Go &amp; Redis</w:t></w:r></w:p></w:body></w:document>`
	assert.Equal(t, "Jane Doe\nGo & Redis\n", stripXML(content))
}
