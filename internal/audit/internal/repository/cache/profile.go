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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/pkg/errors"
)

const profileExpiration = 30 * time.Minute

var ErrProfileNotFound = errors.New("用户信息不在缓存里")

//go:generate mockgen -source=./profile.go -package=cachemocks -destination=./mocks/profile.mock.go ProfileCache
type ProfileCache interface {
	Get(ctx context.Context, uid int64) (domain.UserProfile, error)
	Set(ctx context.Context, profile domain.UserProfile) error
}

type profileECache struct {
	ec ecache.Cache
}

func NewProfileECache(ec ecache.Cache) ProfileCache {
	return &profileECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "audit:profile:",
		},
	}
}

func (c *profileECache) Get(ctx context.Context, uid int64) (domain.UserProfile, error) {
	val := c.ec.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		return domain.UserProfile{}, ErrProfileNotFound
	}
	if val.Err != nil {
		return domain.UserProfile{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var profile domain.UserProfile
	err := val.JSONScan(&profile)
	if err != nil {
		return domain.UserProfile{}, errors.Wrap(err, "反序列化用户信息失败")
	}
	return profile, nil
}

func (c *profileECache) Set(ctx context.Context, profile domain.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return errors.Wrap(err, "序列化用户信息失败")
	}
	return c.ec.Set(ctx, c.key(profile.ID), string(data), profileExpiration)
}

func (c *profileECache) key(uid int64) string {
	return fmt.Sprintf("%d", uid)
}
