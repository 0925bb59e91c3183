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

package ioc

import (
	"context"

	"github.com/ecodeclub/jobmatch/internal/pkg/objstore"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// InitObjectStore 没有配置 bucket 的时候存到本地目录
func InitObjectStore() objstore.Store {
	type Config struct {
		S3       objstore.S3Config `yaml:"s3"`
		LocalDir string            `yaml:"localDir"`
	}
	cfg := Config{LocalDir: "./data/objects"}
	err := econf.UnmarshalKey("objstore", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.S3.Bucket != "" {
		store, er := objstore.NewS3Store(context.Background(), cfg.S3)
		if er != nil {
			panic(er)
		}
		return store
	}
	elog.DefaultLogger.Warn("没有配置 S3，简历文件保存在本地目录", elog.String("dir", cfg.LocalDir))
	store, err := objstore.NewLocalStore(cfg.LocalDir)
	if err != nil {
		panic(err)
	}
	return store
}
