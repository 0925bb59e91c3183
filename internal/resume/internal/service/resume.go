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
	"fmt"
	"strings"

	"github.com/ecodeclub/jobmatch/internal/ai"
	"github.com/ecodeclub/jobmatch/internal/pkg/doctext"
	"github.com/ecodeclub/jobmatch/internal/pkg/objstore"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/resume/internal/repository"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
)

// MaxFileSize 简历文件最大 5MiB
const MaxFileSize = 5 << 20

var (
	ErrUnsupportedFile = doctext.ErrUnsupportedType
	ErrFileTooLarge    = errors.New("简历文件过大")
	ErrUnreadableFile  = errors.New("无法从简历文件中读取文本")
	ErrResumeNotFound  = repository.ErrResumeNotFound
)

//go:generate mockgen -source=./resume.go -destination=../../mocks/resume.mock.go -package=resumemocks Service
type Service interface {
	Upload(ctx context.Context, uid int64, f domain.File) (domain.Resume, error)
	// Latest 用户最近一次上传的简历
	Latest(ctx context.Context, uid int64) (domain.Resume, error)
	// Detail 只能看自己的简历
	Detail(ctx context.Context, uid, id int64) (domain.Resume, error)
	List(ctx context.Context, uid int64) ([]domain.Resume, error)
	// Get 不校验归属，给其它模块用
	Get(ctx context.Context, id int64) (domain.Resume, error)
}

type service struct {
	repo   repository.ResumeRepository
	store  objstore.Store
	parser Parser
	logger *elog.Component
}

func NewService(repo repository.ResumeRepository, store objstore.Store, parser Parser) Service {
	return &service{
		repo:   repo,
		store:  store,
		parser: parser,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Upload(ctx context.Context, uid int64, f domain.File) (domain.Resume, error) {
	ext, err := doctext.Ext(f.Name)
	if err != nil {
		return domain.Resume{}, err
	}
	if len(f.Data) > MaxFileSize {
		return domain.Resume{}, fmt.Errorf("%w: size=%d", ErrFileTooLarge, len(f.Data))
	}
	text, err := doctext.Extract(ext, f.Data)
	if err != nil {
		return domain.Resume{}, fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Resume{}, ErrUnreadableFile
	}

	r := domain.Resume{
		Uid:         uid,
		FileName:    f.Name,
		ContentType: doctext.ContentType(ext),
		ObjectKey:   fmt.Sprintf("resumes/%d/%s%s", uid, uuid.NewString(), ext),
		Size:        int64(len(f.Data)),
		Text:        text,
	}
	err = s.store.Put(ctx, r.ObjectKey, r.ContentType, f.Data)
	if err != nil {
		return domain.Resume{}, fmt.Errorf("保存简历文件失败: %w", err)
	}

	r.Profile, r.Status = s.parse(ctx, uid, text)
	r.Id, err = s.repo.Create(ctx, r)
	if err != nil {
		if er := s.store.Delete(ctx, r.ObjectKey); er != nil {
			s.logger.Error("删除简历文件失败",
				elog.FieldErr(er),
				elog.String("key", r.ObjectKey))
		}
		return domain.Resume{}, err
	}
	return r, nil
}

// parse 大模型解析失败时退化成关键字解析
func (s *service) parse(ctx context.Context, uid int64, text string) (domain.Profile, domain.Status) {
	profile, err := s.parser.Parse(ctx, uid, text)
	if err == nil {
		return profile, domain.StatusParsed
	}
	if errors.Is(err, ai.ErrLLMDisabled) {
		s.logger.Warn("未配置大模型，使用关键字解析简历", elog.Int64("uid", uid))
	} else {
		s.logger.Error("大模型解析简历失败，使用关键字解析",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
	}
	return ParseKeywords(text), domain.StatusParseFailed
}

func (s *service) Latest(ctx context.Context, uid int64) (domain.Resume, error) {
	return s.repo.FindLatest(ctx, uid)
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Resume, error) {
	r, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Resume{}, err
	}
	if r.Uid != uid {
		// 不暴露别人的简历是否存在
		return domain.Resume{}, ErrResumeNotFound
	}
	return r, nil
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Resume, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *service) Get(ctx context.Context, id int64) (domain.Resume, error) {
	return s.repo.FindById(ctx, id)
}
