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

package domain

// ReviewTask 一次流量快照，等待机审
type ReviewTask struct {
	ID       int64
	WorkID   string
	OwnerID  int64
	WorkType string

	// 当天的访问数据
	Pv       int64
	Uv       int64
	ShareCnt int64
	// 作品累计的访问数据
	HistoryPv int64
	HistoryUv int64

	// SnapshotTime 生成任务时作品的更新时间
	SnapshotTime int64
	Status       TaskStatus
	Ctime        int64
	Utime        int64
}

type TaskStatus uint8

func (s TaskStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	// TaskStatusUnknown 未知
	TaskStatusUnknown TaskStatus = 0
	// TaskStatusPending 待处理
	TaskStatusPending TaskStatus = 1
	// TaskStatusCompleted 已完成
	TaskStatusCompleted TaskStatus = 2
)

// TaskCursor 按 (SnapshotTime, ID) 翻页
type TaskCursor struct {
	SnapshotTime int64
	ID           int64
}

func (t ReviewTask) Cursor() TaskCursor {
	return TaskCursor{SnapshotTime: t.SnapshotTime, ID: t.ID}
}
