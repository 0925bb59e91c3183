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
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecodeclub/jobmatch/internal/ai"
	"github.com/ecodeclub/jobmatch/internal/pkg/objstore"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/repository"
	repomocks "github.com/ecodeclub/jobmatch/internal/resume/internal/repository/mocks"
	svcmocks "github.com/ecodeclub/jobmatch/internal/resume/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Upload(t *testing.T) {
	testCases := []struct {
		name   string
		mock   func(ctrl *gomock.Controller) (repository.ResumeRepository, Parser)
		file   domain.File
		before func(t *testing.T, root string)

		wantStatus domain.Status
		wantSkills []string
		wantErr    error
		wantFiles  int
	}{
		{
			name: "上传成功",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Parser) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.Resume) (int64, error) {
						assert.Equal(t, int64(7), r.Uid)
						assert.True(t, strings.HasPrefix(r.ObjectKey, "resumes/7/"))
						assert.True(t, strings.HasSuffix(r.ObjectKey, ".txt"))
						assert.Equal(t, "text/plain; charset=utf-8", r.ContentType)
						return 1, nil
					})
				parser := svcmocks.NewMockParser(ctrl)
				parser.EXPECT().Parse(gomock.Any(), int64(7), resumeText).
					Return(domain.Profile{Name: "Jane", Skills: []string{"go"}}, nil)
				return repo, parser
			},
			file:       domain.File{Name: "cv.TXT", Data: []byte(resumeText)},
			wantStatus: domain.StatusParsed,
			wantSkills: []string{"go"},
			wantFiles:  1,
		},
		{
			name: "大模型失败使用关键字解析",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Parser) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(2), nil)
				parser := svcmocks.NewMockParser(ctrl)
				parser.EXPECT().Parse(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Profile{}, errors.New("mock error"))
				return repo, parser
			},
			file:       domain.File{Name: "cv.txt", Data: []byte(resumeText)},
			wantStatus: domain.StatusParseFailed,
			wantSkills: []string{"go", "mongodb"},
			wantFiles:  1,
		},
		{
			name: "未配置大模型",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Parser) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(3), nil)
				parser := svcmocks.NewMockParser(ctrl)
				parser.EXPECT().Parse(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Profile{}, ai.ErrLLMDisabled)
				return repo, parser
			},
			file:       domain.File{Name: "cv.txt", Data: []byte(resumeText)},
			wantStatus: domain.StatusParseFailed,
			wantSkills: []string{"go", "mongodb"},
			wantFiles:  1,
		},
		{
			name: "不支持的文件类型",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Parser) {
				return repomocks.NewMockResumeRepository(ctrl), svcmocks.NewMockParser(ctrl)
			},
			file:    domain.File{Name: "cv.exe", Data: []byte("MZ")},
			wantErr: ErrUnsupportedFile,
		},
		{
			name: "文件过大",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Parser) {
				return repomocks.NewMockResumeRepository(ctrl), svcmocks.NewMockParser(ctrl)
			},
			file:    domain.File{Name: "cv.txt", Data: make([]byte, MaxFileSize+1)},
			wantErr: ErrFileTooLarge,
		},
		{
			name: "空文件",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Parser) {
				return repomocks.NewMockResumeRepository(ctrl), svcmocks.NewMockParser(ctrl)
			},
			file:    domain.File{Name: "cv.txt", Data: []byte(" \n\t ")},
			wantErr: ErrUnreadableFile,
		},
		{
			name: "损坏的docx",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Parser) {
				return repomocks.NewMockResumeRepository(ctrl), svcmocks.NewMockParser(ctrl)
			},
			file:    domain.File{Name: "cv.docx", Data: []byte("not a zip")},
			wantErr: ErrUnreadableFile,
		},
		{
			name: "保存失败删除文件",
			mock: func(ctrl *gomock.Controller) (repository.ResumeRepository, Parser) {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock db error"))
				parser := svcmocks.NewMockParser(ctrl)
				parser.EXPECT().Parse(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Profile{}, nil)
				return repo, parser
			},
			file:      domain.File{Name: "cv.txt", Data: []byte(resumeText)},
			wantErr:   errors.New("mock db error"),
			wantFiles: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			root := t.TempDir()
			store, err := objstore.NewLocalStore(root)
			require.NoError(t, err)
			repo, parser := tc.mock(ctrl)
			svc := NewService(repo, store, parser)

			r, err := svc.Upload(context.Background(), 7, tc.file)
			assert.Equal(t, tc.wantFiles, countFiles(t, root))
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, ErrUnsupportedFile) || errors.Is(tc.wantErr, ErrFileTooLarge) ||
					errors.Is(tc.wantErr, ErrUnreadableFile) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.Equal(t, tc.wantErr.Error(), err.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.True(t, r.Id > 0)
			assert.Equal(t, tc.wantStatus, r.Status)
			assert.Equal(t, tc.wantSkills, r.Profile.Skills)
			assert.Equal(t, resumeText, r.Text)
			assert.Equal(t, int64(len(resumeText)), r.Size)

			data, err := store.Get(context.Background(), r.ObjectKey)
			require.NoError(t, err)
			assert.Equal(t, tc.file.Data, data)
		})
	}
}

func TestService_Detail(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.ResumeRepository
		uid     int64
		wantErr error
	}{
		{
			name: "本人查看",
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Resume{Id: 1, Uid: 7}, nil)
				return repo
			},
			uid: 7,
		},
		{
			name: "查看别人的简历",
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Resume{Id: 1, Uid: 8}, nil)
				return repo
			},
			uid:     7,
			wantErr: ErrResumeNotFound,
		},
		{
			name: "简历不存在",
			mock: func(ctrl *gomock.Controller) repository.ResumeRepository {
				repo := repomocks.NewMockResumeRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Resume{}, repository.ErrResumeNotFound)
				return repo
			},
			uid:     7,
			wantErr: ErrResumeNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), nil, nil)
			r, err := svc.Detail(context.Background(), tc.uid, 1)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, int64(1), r.Id)
			}
		})
	}
}

func countFiles(t *testing.T, root string) int {
	cnt := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			cnt++
		}
		return nil
	})
	require.NoError(t, err)
	return cnt
}
