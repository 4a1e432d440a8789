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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuditDAO interface {
	FindRecord(ctx context.Context, workId string, snapshotTime int64) (WorkAuditList, error)
	// CreateRecord 同一个 (work_id, snapshot_time) 只会插入一次，
	// 已经存在的时候 created 为 false
	CreateRecord(ctx context.Context, record WorkAuditList) (id int64, created bool, err error)

	// IncrResult 写入汇总，res.LastAuditId 是新的审核记录的时候 review_count 加一
	IncrResult(ctx context.Context, res WorkAuditResult) error
	// RefreshResult 刷新访问数据和快照，res.Meta 为空的时候不覆盖快照。
	// 同一条审核记录不会重复计数，汇总不存在的时候带了 LastAuditId 就算一次审核。
	RefreshResult(ctx context.Context, res WorkAuditResult) error
}

type auditGORMDAO struct {
	db *egorm.Component
}

func NewAuditGORMDAO(db *egorm.Component) AuditDAO {
	return &auditGORMDAO{db: db}
}

func (d *auditGORMDAO) FindRecord(ctx context.Context, workId string, snapshotTime int64) (WorkAuditList, error) {
	var record WorkAuditList
	err := d.db.WithContext(ctx).
		Where("work_id = ? AND snapshot_time = ?", workId, snapshotTime).
		First(&record).Error
	return record, err
}

func (d *auditGORMDAO) CreateRecord(ctx context.Context, record WorkAuditList) (int64, bool, error) {
	record.Ctime = time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "work_id"},
			{Name: "snapshot_time"},
		},
		DoNothing: true,
	}).Create(&record)
	if res.Error != nil {
		return 0, false, res.Error
	}
	return record.Id, res.RowsAffected > 0, nil
}

func (d *auditGORMDAO) IncrResult(ctx context.Context, res WorkAuditResult) error {
	now := time.Now().UnixMilli()
	res.Ctime = now
	res.Utime = now
	res.ReviewCount = 1
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "work_id"}},
		DoUpdates: append(clause.Assignments(map[string]any{
			"owner_id":   res.OwnerId,
			"work_type":  res.WorkType,
			"pv":         res.Pv,
			"uv":         res.Uv,
			"share_cnt":  res.ShareCnt,
			"history_pv": res.HistoryPv,
			"history_uv": res.HistoryUv,
			"meta":       res.Meta,
			"utime":      now,
		}), reviewAssignments(res)...),
	}).Create(&res).Error
}

func (d *auditGORMDAO) RefreshResult(ctx context.Context, res WorkAuditResult) error {
	now := time.Now().UnixMilli()
	res.Ctime = now
	res.Utime = now
	if res.LastAuditId > 0 {
		res.ReviewCount = 1
	}
	updates := map[string]any{
		"pv":         res.Pv,
		"uv":         res.Uv,
		"share_cnt":  res.ShareCnt,
		"history_pv": res.HistoryPv,
		"history_uv": res.HistoryUv,
		"utime":      now,
	}
	// 没有带上快照的时候保留原来的
	if len(res.Meta) > 0 {
		updates["meta"] = res.Meta
	}
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "work_id"}},
		DoUpdates: append(clause.Assignments(updates), reviewAssignments(res)...),
	}).Create(&res).Error
}

// reviewAssignments 只有更新的审核记录才会计数并且改关联，
// 同一条记录写多少次 review_count 都只加一。
// last_audit_id 必须放在最后，MySQL 按顺序赋值，后面的表达式会读到新值。
func reviewAssignments(res WorkAuditResult) []clause.Assignment {
	const newer = "CASE WHEN last_audit_id < ? THEN "
	return []clause.Assignment{
		{
			Column: clause.Column{Name: "review_count"},
			Value:  gorm.Expr(newer+"review_count + 1 ELSE review_count END", res.LastAuditId),
		},
		{
			Column: clause.Column{Name: "last_review_time"},
			Value:  gorm.Expr(newer+"? ELSE last_review_time END", res.LastAuditId, res.LastReviewTime),
		},
		{
			Column: clause.Column{Name: "last_audit_id"},
			Value:  gorm.Expr(newer+"? ELSE last_audit_id END", res.LastAuditId, res.LastAuditId),
		},
	}
}
