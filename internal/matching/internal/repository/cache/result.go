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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobmatch/internal/matching/internal/domain"
)

// Key 岗位更新之后 Utime 变化，旧的结果自然失效
type Key struct {
	ResumeId int64
	JobId    int64
	JobUtime int64
	WithLLM  bool
}

//go:generate mockgen -source=./result.go -package=cachemocks -destination=mocks/result.mock.go ResultCache
type ResultCache interface {
	Get(ctx context.Context, key Key) (domain.Result, error)
	Set(ctx context.Context, key Key, res domain.Result) error
}

type ResultECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewResultECache(c ecache.Cache) ResultCache {
	return &ResultECache{
		cache: &ecache.NamespaceCache{
			Namespace: "match:",
			C:         c,
		},
		expiration: time.Minute * 30,
	}
}

func (cache *ResultECache) Get(ctx context.Context, key Key) (domain.Result, error) {
	var res domain.Result
	err := cache.cache.Get(ctx, cache.key(key)).JSONScan(&res)
	return res, err
}

func (cache *ResultECache) Set(ctx context.Context, key Key, res domain.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.key(key), data, cache.expiration)
}

func (cache *ResultECache) key(k Key) string {
	return fmt.Sprintf("result:%d:%d:%d:%t", k.ResumeId, k.JobId, k.JobUtime, k.WithLLM)
}
