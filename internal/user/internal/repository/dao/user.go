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
	"time"

	"github.com/ecodeclub/jobmatch/internal/pkg/mongox"
	"github.com/ecodeclub/jobmatch/internal/pkg/snowflake"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionUsers = "users"

var (
	ErrDuplicateEmail = errors.New("邮箱冲突")
	ErrRecordNotFound = mongo.ErrNoDocuments
)

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindById(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	// ExtendPremium 把 premium_until 设置为 max(now, premium_until) + duration。
	// 同一个 sn 只会生效一次，重复调用返回 false
	ExtendPremium(ctx context.Context, id int64, sn string, duration int64, now int64) (bool, error)
}

type MongoUserDAO struct {
	col   *mongo.Collection
	idGen snowflake.IDGenerator
}

func NewMongoUserDAO(db *mongo.Database, idGen snowflake.IDGenerator) UserDAO {
	return &MongoUserDAO{
		col:   db.Collection(CollectionUsers),
		idGen: idGen,
	}
}

func (dao *MongoUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Id = dao.idGen.NextID()
	u.Ctime = now
	u.Utime = now
	_, err := dao.col.InsertOne(ctx, u)
	if mongox.IsDuplicateKey(err) {
		return 0, ErrDuplicateEmail
	}
	return u.Id, err
}

func (dao *MongoUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	set := bson.M{"utime": time.Now().UnixMilli()}
	if u.Name != "" {
		set["name"] = u.Name
	}
	if u.Phone != "" {
		set["phone"] = u.Phone
	}
	if u.Avatar != "" {
		set["avatar"] = u.Avatar
	}
	res, err := dao.col.UpdateByID(ctx, u.Id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (dao *MongoUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := dao.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	return u, err
}

func (dao *MongoUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := dao.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	return u, err
}

func (dao *MongoUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	if len(ids) == 0 {
		return []User{}, nil
	}
	return mongox.FindAll[User](ctx, dao.col, bson.M{"_id": bson.M{"$in": ids}})
}

func (dao *MongoUserDAO) ExtendPremium(ctx context.Context, id int64, sn string, duration int64, now int64) (bool, error) {
	filter := bson.M{"_id": id, "premium_sns": bson.M{"$ne": sn}}
	// 用 pipeline 在一次更新里面完成读取和计算，并发的两笔支付不会互相覆盖
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "premium_until", Value: bson.D{{Key: "$add", Value: bson.A{
				bson.D{{Key: "$max", Value: bson.A{now, bson.D{{Key: "$ifNull", Value: bson.A{"$premium_until", 0}}}}}},
				duration,
			}}}},
			{Key: "premium_sns", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$premium_sns", bson.A{}}}},
				bson.A{sn},
			}}}},
			{Key: "utime", Value: now},
		}}},
	}
	res, err := dao.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	if res.MatchedCount > 0 {
		return true, nil
	}
	// 没有匹配上：要么用户不存在，要么这个 sn 已经处理过
	cnt, err := dao.col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	if cnt == 0 {
		return false, ErrRecordNotFound
	}
	return false, nil
}

type User struct {
	Id           int64  `bson:"_id"`
	Email        string `bson:"email"`
	Password     string `bson:"password"`
	Name         string `bson:"name"`
	Phone        string `bson:"phone,omitempty"`
	Role         string `bson:"role"`
	Avatar       string `bson:"avatar,omitempty"`
	PremiumUntil int64  `bson:"premium_until"`
	// PremiumSNs 已经开通过会员的支付流水号
	PremiumSNs []string `bson:"premium_sns,omitempty"`
	Ctime      int64    `bson:"ctime"`
	Utime      int64    `bson:"utime"`
}
