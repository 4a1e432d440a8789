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

package config

import "time"

const (
	DefaultUvFloor       int64 = 5
	DefaultPvDelta       int64 = 100
	DefaultOwnerIDOffset       = 10
	DefaultShardCount    int64 = 16
	DefaultBatchSize           = 20
	DefaultGraceWindow         = 15 * time.Minute
)

// AuditConfig 对应配置文件里面的 audit
type AuditConfig struct {
	// WorkType 只处理这一类作品
	WorkType string `yaml:"workType"`
	// Categories 统计访问量时用到的事件类型
	Categories []string `yaml:"categories"`
	// UvFloor 当天 uv 小于这个值的作品不生成任务
	UvFloor int64 `yaml:"uvFloor"`
	// PvDelta 同一个快照 pv 变化小于这个值的时候不重复生成任务
	PvDelta int64 `yaml:"pvDelta"`
	// OwnerIDOffset 作品 ID 从这个位置开始是作者 ID
	OwnerIDOffset int   `yaml:"ownerIdOffset"`
	ShardCount    int64 `yaml:"shardCount"`
	BatchSize     int   `yaml:"batchSize"`
	// GraceWindow 作品更新之后要等一段时间再审核，避免作者还在编辑
	GraceWindow time.Duration `yaml:"graceWindow"`
	// BodyPrefix 作品内容在对象存储里面的前缀
	BodyPrefix string `yaml:"bodyPrefix"`
}

// WithDefaults 没有配置的字段用默认值
func (c AuditConfig) WithDefaults() AuditConfig {
	if c.WorkType == "" {
		c.WorkType = "h5"
	}
	if len(c.Categories) == 0 {
		c.Categories = []string{"visit", "share"}
	}
	if c.UvFloor <= 0 {
		c.UvFloor = DefaultUvFloor
	}
	if c.PvDelta <= 0 {
		c.PvDelta = DefaultPvDelta
	}
	if c.OwnerIDOffset <= 0 {
		c.OwnerIDOffset = DefaultOwnerIDOffset
	}
	if c.ShardCount <= 0 {
		c.ShardCount = DefaultShardCount
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.GraceWindow <= 0 {
		c.GraceWindow = DefaultGraceWindow
	}
	if c.BodyPrefix == "" {
		c.BodyPrefix = "works"
	}
	return c
}
