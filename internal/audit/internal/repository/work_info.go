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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/dao"
)

type WorkInfoRepository interface {
	Save(ctx context.Context, info domain.WorkInfo) error
}

type workInfoRepository struct {
	dao dao.WorkInfoDAO
}

func NewWorkInfoRepository(d dao.WorkInfoDAO) WorkInfoRepository {
	return &workInfoRepository{dao: d}
}

func (r *workInfoRepository) Save(ctx context.Context, info domain.WorkInfo) error {
	return r.dao.Upsert(ctx, dao.WorkInfo{
		WorkId:    info.WorkID,
		OwnerId:   info.OwnerID,
		WorkType:  info.WorkType,
		Title:     info.Title,
		Cover:     info.Cover,
		Status:    info.Status,
		WorkCtime: info.WorkCtime,
		WorkUtime: info.WorkUtime,
		Metadata:  info.Metadata,
		Features: sqlx.JsonColumn[domain.Features]{
			Val:   info.Features,
			Valid: true,
		},
	})
}
