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

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type WorkInfoDAO interface {
	Upsert(ctx context.Context, info WorkInfo) error
}

type workInfoGORMDAO struct {
	db *egorm.Component
}

func NewWorkInfoGORMDAO(db *egorm.Component) WorkInfoDAO {
	return &workInfoGORMDAO{db: db}
}

func (d *workInfoGORMDAO) Upsert(ctx context.Context, info WorkInfo) error {
	now := time.Now().UnixMilli()
	info.Ctime = now
	info.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "work_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"owner_id",
			"work_type",
			"title",
			"cover",
			"status",
			"work_ctime",
			"work_utime",
			"metadata",
			"features",
			"utime",
		}),
	}).Create(&info).Error
}
