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

	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/ego-component/egorm"
)

type TaskDAO interface {
	Create(ctx context.Context, task ReviewTask) (int64, error)
	// FindLatestBySnapshot 同一个快照时间下最新的一个任务
	FindLatestBySnapshot(ctx context.Context, workId string, snapshotTime int64) (ReviewTask, error)
	// FindPending 按照 (snapshot_time, id) 升序翻页，只返回 snapshot_time < before 的任务
	FindPending(ctx context.Context, workType string, before int64, cursor domain.TaskCursor, limit int) ([]ReviewTask, error)
	Complete(ctx context.Context, id int64) error
}

type taskGORMDAO struct {
	db *egorm.Component
}

func NewTaskGORMDAO(db *egorm.Component) TaskDAO {
	return &taskGORMDAO{db: db}
}

func (d *taskGORMDAO) Create(ctx context.Context, task ReviewTask) (int64, error) {
	now := time.Now().UnixMilli()
	task.Ctime = now
	task.Utime = now
	err := d.db.WithContext(ctx).Create(&task).Error
	return task.Id, err
}

func (d *taskGORMDAO) FindLatestBySnapshot(ctx context.Context, workId string, snapshotTime int64) (ReviewTask, error) {
	var task ReviewTask
	err := d.db.WithContext(ctx).
		Where("work_id = ? AND snapshot_time = ?", workId, snapshotTime).
		Order("id DESC").
		First(&task).Error
	return task, err
}

func (d *taskGORMDAO) FindPending(ctx context.Context, workType string, before int64, cursor domain.TaskCursor, limit int) ([]ReviewTask, error) {
	var tasks []ReviewTask
	err := d.db.WithContext(ctx).
		Where("status = ? AND work_type = ? AND snapshot_time < ?",
			domain.TaskStatusPending.ToUint8(), workType, before).
		Where("(snapshot_time > ? OR (snapshot_time = ? AND id > ?))",
			cursor.SnapshotTime, cursor.SnapshotTime, cursor.ID).
		Order("snapshot_time ASC, id ASC").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

func (d *taskGORMDAO) Complete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&ReviewTask{}).
		Where("id = ? AND status = ?", id, domain.TaskStatusPending.ToUint8()).
		Updates(map[string]any{
			"status": domain.TaskStatusCompleted.ToUint8(),
			"utime":  time.Now().UnixMilli(),
		}).Error
}
