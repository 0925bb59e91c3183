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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/jobmatch/internal/pkg/mongox"
	"github.com/ecodeclub/jobmatch/internal/pkg/snowflake"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionPromoCodes = "promo_codes"

var (
	ErrRecordNotFound = mongo.ErrNoDocuments
	ErrDuplicateCode  = errors.New("优惠码重复")
	// ErrNotRedeemable 优惠码存在，但是已经不满足使用条件
	ErrNotRedeemable = errors.New("优惠码不可用")
)

type PromoCodeDAO interface {
	Insert(ctx context.Context, p PromoCode) (int64, error)
	FindByCode(ctx context.Context, code string) (PromoCode, error)
	List(ctx context.Context, offset, limit int) ([]PromoCode, error)
	Count(ctx context.Context) (int64, error)
	Deactivate(ctx context.Context, id int64) error
	// IncrUsed 满足使用条件时原子地把 used_count 加一
	IncrUsed(ctx context.Context, code string, now int64) error
}

type MongoPromoCodeDAO struct {
	col   *mongo.Collection
	idGen snowflake.IDGenerator
}

func NewMongoPromoCodeDAO(db *mongo.Database, idGen snowflake.IDGenerator) PromoCodeDAO {
	return &MongoPromoCodeDAO{
		col:   db.Collection(CollectionPromoCodes),
		idGen: idGen,
	}
}

func (dao *MongoPromoCodeDAO) Insert(ctx context.Context, p PromoCode) (int64, error) {
	now := time.Now().UnixMilli()
	p.Id = dao.idGen.NextID()
	p.Ctime = now
	p.Utime = now
	_, err := dao.col.InsertOne(ctx, p)
	if mongox.IsDuplicateKey(err) {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateCode, p.Code)
	}
	return p.Id, err
}

func (dao *MongoPromoCodeDAO) FindByCode(ctx context.Context, code string) (PromoCode, error) {
	var p PromoCode
	err := dao.col.FindOne(ctx, bson.M{"code": code}).Decode(&p)
	return p, err
}

func (dao *MongoPromoCodeDAO) List(ctx context.Context, offset, limit int) ([]PromoCode, error) {
	return mongox.FindAll[PromoCode](ctx, dao.col, bson.M{},
		mongox.Page(offset, limit, bson.D{{Key: "ctime", Value: -1}, {Key: "_id", Value: -1}}))
}

func (dao *MongoPromoCodeDAO) Count(ctx context.Context) (int64, error) {
	return dao.col.CountDocuments(ctx, bson.M{})
}

func (dao *MongoPromoCodeDAO) Deactivate(ctx context.Context, id int64) error {
	res, err := dao.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"active": false,
		"utime":  time.Now().UnixMilli(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (dao *MongoPromoCodeDAO) IncrUsed(ctx context.Context, code string, now int64) error {
	filter := bson.M{
		"code":   code,
		"active": true,
		"$and": bson.A{
			bson.M{"$or": bson.A{
				bson.M{"expires_at": 0},
				bson.M{"expires_at": bson.M{"$gt": now}},
			}},
			bson.M{"$or": bson.A{
				bson.M{"max_uses": 0},
				bson.M{"$expr": bson.M{"$lt": bson.A{"$used_count", "$max_uses"}}},
			}},
		},
	}
	res, err := dao.col.UpdateOne(ctx, filter, bson.M{
		"$inc": bson.M{"used_count": 1},
		"$set": bson.M{"utime": now},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotRedeemable
	}
	return nil
}

type PromoCode struct {
	Id            int64  `bson:"_id"`
	Code          string `bson:"code"`
	Description   string `bson:"description"`
	DiscountType  string `bson:"discount_type"`
	DiscountValue int64  `bson:"discount_value"`
	MaxUses       int64  `bson:"max_uses"`
	UsedCount     int64  `bson:"used_count"`
	ExpiresAt     int64  `bson:"expires_at"`
	Active        bool   `bson:"active"`
	Ctime         int64  `bson:"ctime"`
	Utime         int64  `bson:"utime"`
}
