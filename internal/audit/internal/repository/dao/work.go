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
	"fmt"

	"github.com/ego-component/egorm"
)

// Work 作品库里面的作品，按照 owner_id 分表，这里只读
type Work struct {
	WorkId   string `gorm:"column:work_id"`
	OwnerId  int64  `gorm:"column:owner_id"`
	WorkType string `gorm:"column:work_type"`
	Title    string `gorm:"column:title"`
	Cover    string `gorm:"column:cover"`
	Status   uint8  `gorm:"column:status"`
	Version  int64  `gorm:"column:version"`
	Ctime    int64  `gorm:"column:ctime"`
	Utime    int64  `gorm:"column:utime"`
}

// WorkStatistic 作品累计访问数据，同一个作品可能有多行
type WorkStatistic struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	WorkId   string `gorm:"type:varchar(64);index:idx_work_statistic_work_id"`
	Pv       int64
	Uv       int64
	ShareCnt int64
	Ctime    int64
}

type WorkDAO interface {
	FindByID(ctx context.Context, ownerId int64, workId string) (Work, error)
	// SumStatistic 把同一个作品的多行累计数据加起来
	SumStatistic(ctx context.Context, workId string) (WorkStatistic, error)
}

type workShardingDAO struct {
	workDB *egorm.Component
	statDB *egorm.Component
	shards int64
}

// NewWorkShardingDAO workDB 里面的作品表按照 owner_id % shards 分表，
// 表名为 works_0 ... works_{shards-1}
func NewWorkShardingDAO(workDB, statDB *egorm.Component, shards int64) WorkDAO {
	if shards <= 0 {
		shards = 16
	}
	return &workShardingDAO{
		workDB: workDB,
		statDB: statDB,
		shards: shards,
	}
}

func (d *workShardingDAO) FindByID(ctx context.Context, ownerId int64, workId string) (Work, error) {
	var work Work
	err := d.workDB.WithContext(ctx).
		Table(d.tableName(ownerId)).
		Where("work_id = ?", workId).
		First(&work).Error
	return work, err
}

func (d *workShardingDAO) SumStatistic(ctx context.Context, workId string) (WorkStatistic, error) {
	var res WorkStatistic
	err := d.statDB.WithContext(ctx).Model(&WorkStatistic{}).
		Select("COALESCE(SUM(pv), 0) AS pv, COALESCE(SUM(uv), 0) AS uv, COALESCE(SUM(share_cnt), 0) AS share_cnt").
		Where("work_id = ?", workId).
		Scan(&res).Error
	res.WorkId = workId
	return res, err
}

func (d *workShardingDAO) tableName(ownerId int64) string {
	idx := ownerId % d.shards
	if idx < 0 {
		idx = -idx
	}
	return fmt.Sprintf("works_%d", idx)
}
