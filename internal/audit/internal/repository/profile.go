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
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/cache"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./profile.go -package=repomocks -destination=./mocks/profile.mock.go ProfileRepository
type ProfileRepository interface {
	Profile(ctx context.Context, uid int64) (domain.UserProfile, error)
}

type profileRepository struct {
	dao    dao.UserDAO
	cache  cache.ProfileCache
	logger *elog.Component
}

func NewProfileRepository(d dao.UserDAO, c cache.ProfileCache) ProfileRepository {
	return &profileRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *profileRepository) Profile(ctx context.Context, uid int64) (domain.UserProfile, error) {
	profile, err := r.cache.Get(ctx, uid)
	if err == nil {
		return profile, nil
	}
	u, err := r.dao.FindByID(ctx, uid)
	if err != nil {
		return domain.UserProfile{}, err
	}
	profile = domain.UserProfile{
		ID:           u.Id,
		Nickname:     u.Nickname,
		RegisterTime: u.Ctime,
	}
	if er := r.cache.Set(ctx, profile); er != nil {
		r.logger.Error("回写用户信息缓存失败", elog.FieldErr(er), elog.Int64("uid", uid))
	}
	return profile, nil
}
