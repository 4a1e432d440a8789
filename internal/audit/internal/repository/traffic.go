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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/dao"
)

//go:generate mockgen -source=./traffic.go -package=repomocks -destination=./mocks/traffic.mock.go TrafficRepository
type TrafficRepository interface {
	// DailyTraffic day 所在那一天 [00:00, 24:00) 的访问数据
	DailyTraffic(ctx context.Context, day time.Time, categories []string) ([]domain.Traffic, error)
}

type trafficRepository struct {
	dao dao.TrafficDAO
}

func NewTrafficRepository(d dao.TrafficDAO) TrafficRepository {
	return &trafficRepository{dao: d}
}

func (r *trafficRepository) DailyTraffic(ctx context.Context, day time.Time, categories []string) ([]domain.Traffic, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	traffic, err := r.dao.Aggregate(ctx, start.UnixMilli(), end.UnixMilli(), categories)
	if err != nil {
		return nil, err
	}
	return slice.Map(traffic, func(idx int, src dao.Traffic) domain.Traffic {
		return domain.Traffic{
			WorkID: src.ObjectId,
			Pv:     src.Pv,
			Uv:     src.Uv,
		}
	}), nil
}
