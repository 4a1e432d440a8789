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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type TaskRepository interface {
	Create(ctx context.Context, task domain.ReviewTask) (int64, error)
	// FindLatestBySnapshot 找不到的时候返回 ErrRecordNotFound
	FindLatestBySnapshot(ctx context.Context, workId string, snapshotTime int64) (domain.ReviewTask, error)
	FindPending(ctx context.Context, workType string, before int64, cursor domain.TaskCursor, limit int) ([]domain.ReviewTask, error)
	Complete(ctx context.Context, id int64) error
}

type taskRepository struct {
	dao dao.TaskDAO
}

func NewTaskRepository(d dao.TaskDAO) TaskRepository {
	return &taskRepository{dao: d}
}

func (r *taskRepository) Create(ctx context.Context, task domain.ReviewTask) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(task))
}

func (r *taskRepository) FindLatestBySnapshot(ctx context.Context, workId string, snapshotTime int64) (domain.ReviewTask, error) {
	task, err := r.dao.FindLatestBySnapshot(ctx, workId, snapshotTime)
	if err != nil {
		return domain.ReviewTask{}, err
	}
	return r.toDomain(task), nil
}

func (r *taskRepository) FindPending(ctx context.Context, workType string, before int64, cursor domain.TaskCursor, limit int) ([]domain.ReviewTask, error) {
	tasks, err := r.dao.FindPending(ctx, workType, before, cursor, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(tasks, func(idx int, src dao.ReviewTask) domain.ReviewTask {
		return r.toDomain(src)
	}), nil
}

func (r *taskRepository) Complete(ctx context.Context, id int64) error {
	return r.dao.Complete(ctx, id)
}

func (r *taskRepository) toEntity(t domain.ReviewTask) dao.ReviewTask {
	return dao.ReviewTask{
		Id:           t.ID,
		WorkId:       t.WorkID,
		OwnerId:      t.OwnerID,
		WorkType:     t.WorkType,
		Pv:           t.Pv,
		Uv:           t.Uv,
		ShareCnt:     t.ShareCnt,
		HistoryPv:    t.HistoryPv,
		HistoryUv:    t.HistoryUv,
		SnapshotTime: t.SnapshotTime,
		Status:       t.Status.ToUint8(),
	}
}

func (r *taskRepository) toDomain(t dao.ReviewTask) domain.ReviewTask {
	return domain.ReviewTask{
		ID:           t.Id,
		WorkID:       t.WorkId,
		OwnerID:      t.OwnerId,
		WorkType:     t.WorkType,
		Pv:           t.Pv,
		Uv:           t.Uv,
		ShareCnt:     t.ShareCnt,
		HistoryPv:    t.HistoryPv,
		HistoryUv:    t.HistoryUv,
		SnapshotTime: t.SnapshotTime,
		Status:       domain.TaskStatus(t.Status),
		Ctime:        t.Ctime,
		Utime:        t.Utime,
	}
}
