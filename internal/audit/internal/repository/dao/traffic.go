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

	"github.com/olivere/elastic/v7"
)

const (
	TrafficEventIndexName = "work_event_index"

	trafficAggName  = "works"
	trafficUvAgg    = "uv"
	trafficObjectID = "object_id"
)

// Traffic 某个作品在一段时间内的访问量
type Traffic struct {
	ObjectId string
	Pv       int64
	Uv       int64
}

type TrafficDAO interface {
	// Aggregate 统计 [start, end) 之间 categories 类型事件的 pv/uv，按照 object_id 分组
	Aggregate(ctx context.Context, start, end int64, categories []string) ([]Traffic, error)
}

type trafficElasticDAO struct {
	client   *elastic.Client
	index    string
	pageSize int
}

func NewTrafficElasticDAO(client *elastic.Client, index string, pageSize int) TrafficDAO {
	if index == "" {
		index = TrafficEventIndexName
	}
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &trafficElasticDAO{
		client:   client,
		index:    index,
		pageSize: pageSize,
	}
}

func (t *trafficElasticDAO) Aggregate(ctx context.Context, start, end int64, categories []string) ([]Traffic, error) {
	query := elastic.NewBoolQuery().Filter(
		elastic.NewRangeQuery("event_time").Gte(start).Lt(end),
	)
	if len(categories) > 0 {
		vals := make([]any, 0, len(categories))
		for _, c := range categories {
			vals = append(vals, c)
		}
		query = query.Filter(elastic.NewTermsQuery("category", vals...))
	}

	var (
		res   []Traffic
		after map[string]any
	)
	// composite 聚合按照 after_key 翻页，直到没有更多的分组
	for {
		agg := elastic.NewCompositeAggregation().
			Sources(elastic.NewCompositeAggregationTermsValuesSource(trafficObjectID).Field(trafficObjectID)).
			Size(t.pageSize).
			SubAggregation(trafficUvAgg, elastic.NewCardinalityAggregation().Field("visitor_id"))
		if after != nil {
			agg = agg.AggregateAfter(after)
		}
		resp, err := t.client.Search(t.index).
			Query(query).
			Size(0).
			Aggregation(trafficAggName, agg).
			Do(ctx)
		if err != nil {
			return nil, err
		}
		items, ok := resp.Aggregations.Composite(trafficAggName)
		if !ok {
			return nil, fmt.Errorf("缺少聚合结果 %s", trafficAggName)
		}
		for _, bucket := range items.Buckets {
			id, ok := bucket.Key[trafficObjectID].(string)
			if !ok {
				continue
			}
			traffic := Traffic{
				ObjectId: id,
				Pv:       bucket.DocCount,
			}
			if uv, ok := bucket.Cardinality(trafficUvAgg); ok && uv.Value != nil {
				traffic.Uv = int64(*uv.Value)
			}
			res = append(res, traffic)
		}
		if len(items.Buckets) < t.pageSize || len(items.AfterKey) == 0 {
			return res, nil
		}
		after = items.AfterKey
	}
}
