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

package mongox

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxLimit 单次查询最多返回的条数
const MaxLimit = 100

// Page offset / limit 转成 FindOptions，limit 非法时使用默认值
func Page(offset, limit int, sort bson.D) *options.FindOptions {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > MaxLimit {
		limit = MaxLimit
	}
	opts := options.Find().SetSkip(int64(offset)).SetLimit(int64(limit))
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	return opts
}

func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// CreateIndexes 启动时创建索引，已存在的同名索引不会重复创建
func CreateIndexes(ctx context.Context, col *mongo.Collection, models ...mongo.IndexModel) error {
	if len(models) == 0 {
		return nil
	}
	_, err := col.Indexes().CreateMany(ctx, models)
	if err != nil {
		return fmt.Errorf("创建集合 %s 的索引失败: %w", col.Name(), err)
	}
	return nil
}

// FindAll 执行查询并解码全部结果
func FindAll[T any](ctx context.Context, col *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	res := make([]T, 0, 16)
	err = cursor.All(ctx, &res)
	return res, err
}
