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

// Work 作品库里面的元数据，只读
type Work struct {
	WorkID   string
	OwnerID  int64
	WorkType string
	Title    string
	Cover    string
	Status   uint8
	// Version 作品内容在对象存储里面的版本
	Version int64
	Ctime   int64
	Utime   int64
}

// Meta 展示用的字段快照
func (w Work) Meta() map[string]any {
	return map[string]any{
		"title":   w.Title,
		"cover":   w.Cover,
		"status":  w.Status,
		"version": w.Version,
		"ctime":   w.Ctime,
		"utime":   w.Utime,
	}
}

// WorkStatistic 作品的累计访问数据
type WorkStatistic struct {
	Pv       int64
	Uv       int64
	ShareCnt int64
}

// Traffic 某一天里面，某个作品的访问量
type Traffic struct {
	WorkID string
	Pv     int64
	Uv     int64
}

// UserProfile 作者信息
type UserProfile struct {
	ID           int64
	Nickname     string
	RegisterTime int64
}

// WorkInfo 最新的作品元数据以及特征
type WorkInfo struct {
	WorkID    string
	OwnerID   int64
	WorkType  string
	Title     string
	Cover     string
	Status    uint8
	WorkCtime int64
	WorkUtime int64
	Metadata  map[string]any
	Features  Features
}
