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
	"errors"

	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/dao"
)

var ErrWorkNotFound = errors.New("作品不存在")

// WorkRepository 作品的元数据、累计访问数据和内容，全部来自外部存储
//
//go:generate mockgen -source=./work.go -package=repomocks -destination=./mocks/work.mock.go WorkRepository
type WorkRepository interface {
	// FindWork 作品不存在的时候返回 ErrWorkNotFound
	FindWork(ctx context.Context, ownerId int64, workId string) (domain.Work, error)
	Statistic(ctx context.Context, workId string) (domain.WorkStatistic, error)
	Body(ctx context.Context, work domain.Work) ([]byte, error)
}

type workRepository struct {
	workDAO dao.WorkDAO
	bodyDAO dao.WorkBodyDAO
}

func NewWorkRepository(workDAO dao.WorkDAO, bodyDAO dao.WorkBodyDAO) WorkRepository {
	return &workRepository{
		workDAO: workDAO,
		bodyDAO: bodyDAO,
	}
}

func (r *workRepository) FindWork(ctx context.Context, ownerId int64, workId string) (domain.Work, error) {
	work, err := r.workDAO.FindByID(ctx, ownerId, workId)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Work{}, ErrWorkNotFound
	}
	if err != nil {
		return domain.Work{}, err
	}
	return domain.Work{
		WorkID:   work.WorkId,
		OwnerID:  work.OwnerId,
		WorkType: work.WorkType,
		Title:    work.Title,
		Cover:    work.Cover,
		Status:   work.Status,
		Version:  work.Version,
		Ctime:    work.Ctime,
		Utime:    work.Utime,
	}, nil
}

func (r *workRepository) Statistic(ctx context.Context, workId string) (domain.WorkStatistic, error) {
	stat, err := r.workDAO.SumStatistic(ctx, workId)
	if err != nil {
		return domain.WorkStatistic{}, err
	}
	return domain.WorkStatistic{
		Pv:       stat.Pv,
		Uv:       stat.Uv,
		ShareCnt: stat.ShareCnt,
	}, nil
}

func (r *workRepository) Body(ctx context.Context, work domain.Work) ([]byte, error) {
	return r.bodyDAO.Get(ctx, work.OwnerID, work.WorkID, work.Version)
}
