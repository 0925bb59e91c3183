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
	"time"

	"github.com/ecodeclub/jobmatch/internal/pkg/mongox"
	"github.com/ecodeclub/jobmatch/internal/pkg/snowflake"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionResumes = "resumes"

var ErrRecordNotFound = mongo.ErrNoDocuments

type ResumeDAO interface {
	Insert(ctx context.Context, r Resume) (int64, error)
	FindById(ctx context.Context, id int64) (Resume, error)
	FindLatest(ctx context.Context, uid int64) (Resume, error)
	// FindByUid 不返回简历原文
	FindByUid(ctx context.Context, uid int64) ([]Resume, error)
}

type MongoResumeDAO struct {
	col   *mongo.Collection
	idGen snowflake.IDGenerator
}

func NewMongoResumeDAO(db *mongo.Database, idGen snowflake.IDGenerator) ResumeDAO {
	return &MongoResumeDAO{
		col:   db.Collection(CollectionResumes),
		idGen: idGen,
	}
}

func (dao *MongoResumeDAO) Insert(ctx context.Context, r Resume) (int64, error) {
	now := time.Now().UnixMilli()
	r.Id = dao.idGen.NextID()
	r.Ctime = now
	r.Utime = now
	_, err := dao.col.InsertOne(ctx, r)
	return r.Id, err
}

func (dao *MongoResumeDAO) FindById(ctx context.Context, id int64) (Resume, error) {
	var r Resume
	err := dao.col.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	return r, err
}

func (dao *MongoResumeDAO) FindLatest(ctx context.Context, uid int64) (Resume, error) {
	var r Resume
	err := dao.col.FindOne(ctx, bson.M{"uid": uid},
		options.FindOne().SetSort(bson.D{{Key: "ctime", Value: -1}, {Key: "_id", Value: -1}})).Decode(&r)
	return r, err
}

func (dao *MongoResumeDAO) FindByUid(ctx context.Context, uid int64) ([]Resume, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "ctime", Value: -1}, {Key: "_id", Value: -1}}).
		SetProjection(bson.M{"text": 0})
	return mongox.FindAll[Resume](ctx, dao.col, bson.M{"uid": uid}, opts)
}

type Resume struct {
	Id          int64   `bson:"_id"`
	Uid         int64   `bson:"uid"`
	FileName    string  `bson:"file_name"`
	ContentType string  `bson:"content_type"`
	ObjectKey   string  `bson:"object_key"`
	Size        int64   `bson:"size"`
	Text        string  `bson:"text"`
	Profile     Profile `bson:"profile"`
	Status      string  `bson:"status"`
	Ctime       int64   `bson:"ctime"`
	Utime       int64   `bson:"utime"`
}

type Profile struct {
	Name             string       `bson:"name"`
	Email            string       `bson:"email"`
	Phone            string       `bson:"phone"`
	Summary          string       `bson:"summary"`
	Skills           []string     `bson:"skills"`
	TotalYears       float64      `bson:"total_years"`
	HighestEducation string       `bson:"highest_education"`
	Location         string       `bson:"location"`
	Educations       []Education  `bson:"educations"`
	Experiences      []Experience `bson:"experiences"`
}

type Education struct {
	Degree      string `bson:"degree"`
	Field       string `bson:"field"`
	Institution string `bson:"institution"`
	Year        int    `bson:"year"`
}

type Experience struct {
	Title       string  `bson:"title"`
	Company     string  `bson:"company"`
	Years       float64 `bson:"years"`
	Description string  `bson:"description"`
}
