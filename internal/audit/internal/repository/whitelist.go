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

	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/dao"
)

type WhitelistRepository interface {
	// Check 先看作者再看作品，都不在白名单里面的时候返回 PassTypeUnknown
	Check(ctx context.Context, ownerId int64, workId string) (domain.PassType, error)
	AddUser(ctx context.Context, ownerId int64) error
	AddWork(ctx context.Context, workId string) error
}

type whitelistRepository struct {
	dao dao.WhitelistDAO
}

func NewWhitelistRepository(d dao.WhitelistDAO) WhitelistRepository {
	return &whitelistRepository{dao: d}
}

func (r *whitelistRepository) Check(ctx context.Context, ownerId int64, workId string) (domain.PassType, error) {
	ok, err := r.dao.ExistsUser(ctx, ownerId)
	if err != nil {
		return domain.PassTypeUnknown, err
	}
	if ok {
		return domain.PassTypeWhiteUser, nil
	}
	ok, err = r.dao.ExistsWork(ctx, workId)
	if err != nil {
		return domain.PassTypeUnknown, err
	}
	if ok {
		return domain.PassTypeWhiteWork, nil
	}
	return domain.PassTypeUnknown, nil
}

func (r *whitelistRepository) AddUser(ctx context.Context, ownerId int64) error {
	return r.dao.AddUser(ctx, ownerId)
}

func (r *whitelistRepository) AddWork(ctx context.Context, workId string) error {
	return r.dao.AddWork(ctx, workId)
}
