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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"gorm.io/datatypes"
)

// ReviewTask 机审任务，只会修改状态，不会删除
type ReviewTask struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	WorkId    string `gorm:"type:varchar(64);index:idx_task_work_snapshot,priority:1"`
	OwnerId   int64
	WorkType  string `gorm:"type:varchar(32);index:idx_task_status_type_snapshot,priority:2"`
	Pv        int64
	Uv        int64
	ShareCnt  int64
	HistoryPv int64
	HistoryUv int64
	// SnapshotTime 作品的更新时间
	SnapshotTime int64 `gorm:"index:idx_task_work_snapshot,priority:2;index:idx_task_status_type_snapshot,priority:3"`
	Status       uint8 `gorm:"type:tinyint(3);index:idx_task_status_type_snapshot,priority:1;comment:0-未知 1-待处理 2-已完成"`
	Ctime        int64
	Utime        int64
}

// WorkInfo 作品最新的元数据和特征
type WorkInfo struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	WorkId    string `gorm:"type:varchar(64);uniqueIndex:uniq_work_info_work_id"`
	OwnerId   int64  `gorm:"index:idx_work_info_owner_id"`
	WorkType  string `gorm:"type:varchar(32)"`
	Title     string `gorm:"type:varchar(512)"`
	Cover     string `gorm:"type:varchar(1024)"`
	Status    uint8  `gorm:"type:tinyint(3)"`
	WorkCtime int64
	WorkUtime int64
	Metadata  datatypes.JSONMap
	Features  sqlx.JsonColumn[domain.Features] `gorm:"type:mediumtext"`
	Ctime     int64
	Utime     int64
}

// WorkAuditList 审核流水，一个快照只有一条
type WorkAuditList struct {
	Id            int64  `gorm:"primaryKey,autoIncrement"`
	WorkId        string `gorm:"type:varchar(64);uniqueIndex:uniq_audit_work_snapshot,priority:1"`
	OwnerId       int64  `gorm:"index:idx_audit_owner_id"`
	WorkType      string `gorm:"type:varchar(32)"`
	SnapshotTime  int64  `gorm:"uniqueIndex:uniq_audit_work_snapshot,priority:2"`
	MachineResult uint8  `gorm:"type:tinyint(3);comment:0-未知 1-待审核 2-通过 3-不通过"`
	PassType      uint8  `gorm:"type:tinyint(3);comment:0-未知 1-机审 2-白名单用户 3-白名单作品 4-人工"`
	RiskLevel     uint8  `gorm:"type:tinyint(3);comment:0-未知 1-低 2-可疑 3-高"`
	Reason        string `gorm:"type:varchar(1024)"`
	ReviewTime    int64
	Ctime         int64
}

// WorkAuditResult 每个作品一条的审核汇总
type WorkAuditResult struct {
	Id             int64  `gorm:"primaryKey,autoIncrement"`
	WorkId         string `gorm:"type:varchar(64);uniqueIndex:uniq_audit_result_work_id"`
	OwnerId        int64
	WorkType       string `gorm:"type:varchar(32)"`
	Pv             int64
	Uv             int64
	ShareCnt       int64
	HistoryPv      int64
	HistoryUv      int64
	Meta           datatypes.JSONMap
	LastReviewTime int64
	ReviewCount    int64
	// LastAuditId 指向 WorkAuditList，只用于查询
	LastAuditId int64
	Ctime       int64
	Utime       int64
}

type WhitelistUser struct {
	Id      int64 `gorm:"primaryKey,autoIncrement"`
	OwnerId int64 `gorm:"uniqueIndex:uniq_whitelist_owner_id"`
	Ctime   int64
	Utime   int64
}

type WhitelistWork struct {
	Id     int64  `gorm:"primaryKey,autoIncrement"`
	WorkId string `gorm:"type:varchar(64);uniqueIndex:uniq_whitelist_work_id"`
	Ctime  int64
	Utime  int64
}

type SensitiveWord struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Word  string `gorm:"type:varchar(128);uniqueIndex:uniq_sensitive_word"`
	Level uint8  `gorm:"type:tinyint(3);comment:1-低 2-可疑 3-高"`
	Ctime int64
	Utime int64
}
