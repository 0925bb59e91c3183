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
	"regexp"
	"time"

	"github.com/ecodeclub/jobmatch/internal/pkg/mongox"
	"github.com/ecodeclub/jobmatch/internal/pkg/snowflake"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionJobs = "jobs"

var ErrRecordNotFound = mongo.ErrNoDocuments

type JobDAO interface {
	Insert(ctx context.Context, j Job) (int64, error)
	// Update 全量更新可编辑字段，recruiter_id 不会被修改
	Update(ctx context.Context, j Job) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	FindById(ctx context.Context, id int64) (Job, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]Job, error)
	Count(ctx context.Context, f Filter) (int64, error)
}

type MongoJobDAO struct {
	col   *mongo.Collection
	idGen snowflake.IDGenerator
}

func NewMongoJobDAO(db *mongo.Database, idGen snowflake.IDGenerator) JobDAO {
	return &MongoJobDAO{
		col:   db.Collection(CollectionJobs),
		idGen: idGen,
	}
}

func (dao *MongoJobDAO) Insert(ctx context.Context, j Job) (int64, error) {
	now := time.Now().UnixMilli()
	j.Id = dao.idGen.NextID()
	j.Ctime = now
	j.Utime = now
	_, err := dao.col.InsertOne(ctx, j)
	return j.Id, err
}

func (dao *MongoJobDAO) Update(ctx context.Context, j Job) error {
	res, err := dao.col.UpdateByID(ctx, j.Id, bson.M{"$set": bson.M{
		"title":            j.Title,
		"company":          j.Company,
		"location":         j.Location,
		"remote":           j.Remote,
		"type":             j.Type,
		"description":      j.Description,
		"required_skills":  j.RequiredSkills,
		"preferred_skills": j.PreferredSkills,
		"min_years":        j.MinYears,
		"max_years":        j.MaxYears,
		"education":        j.Education,
		"salary_min":       j.SalaryMin,
		"salary_max":       j.SalaryMax,
		"utime":            time.Now().UnixMilli(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (dao *MongoJobDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := dao.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status": status,
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

func (dao *MongoJobDAO) FindById(ctx context.Context, id int64) (Job, error) {
	var j Job
	err := dao.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	return j, err
}

func (dao *MongoJobDAO) List(ctx context.Context, f Filter, offset, limit int) ([]Job, error) {
	return mongox.FindAll[Job](ctx, dao.col, f.toBSON(),
		mongox.Page(offset, limit, bson.D{{Key: "ctime", Value: -1}, {Key: "_id", Value: -1}}))
}

func (dao *MongoJobDAO) Count(ctx context.Context, f Filter) (int64, error) {
	return dao.col.CountDocuments(ctx, f.toBSON())
}

// Filter 为零值的字段不参与过滤
type Filter struct {
	RecruiterId int64
	Status      string
	Keyword     string
	Type        string
	Location    string
	Remote      bool
}

func (f Filter) toBSON() bson.M {
	res := bson.M{}
	if f.RecruiterId > 0 {
		res["recruiter_id"] = f.RecruiterId
	}
	if f.Status != "" {
		res["status"] = f.Status
	}
	if f.Type != "" {
		res["type"] = f.Type
	}
	if f.Remote {
		res["remote"] = true
	}
	if f.Location != "" {
		res["location"] = bson.M{"$regex": regexp.QuoteMeta(f.Location), "$options": "i"}
	}
	if f.Keyword != "" {
		kw := bson.M{"$regex": regexp.QuoteMeta(f.Keyword), "$options": "i"}
		res["$or"] = bson.A{
			bson.M{"title": kw},
			bson.M{"company": kw},
			bson.M{"description": kw},
		}
	}
	return res
}

type Job struct {
	Id              int64    `bson:"_id"`
	RecruiterId     int64    `bson:"recruiter_id"`
	Title           string   `bson:"title"`
	Company         string   `bson:"company"`
	Location        string   `bson:"location"`
	Remote          bool     `bson:"remote"`
	Type            string   `bson:"type"`
	Description     string   `bson:"description"`
	RequiredSkills  []string `bson:"required_skills"`
	PreferredSkills []string `bson:"preferred_skills"`
	MinYears        int      `bson:"min_years"`
	MaxYears        int      `bson:"max_years"`
	Education       string   `bson:"education"`
	SalaryMin       int64    `bson:"salary_min"`
	SalaryMax       int64    `bson:"salary_max"`
	Status          string   `bson:"status"`
	Ctime           int64    `bson:"ctime"`
	Utime           int64    `bson:"utime"`
}
