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

// Features 从作品内容里面提取出来的结构化特征
type Features struct {
	PageCount int `json:"pageCount"`

	TextCount int `json:"textCount"`
	// TextLength 所有文本片段的长度之和，重复的文本也会重复计算
	TextLength int      `json:"textLength"`
	Texts      []string `json:"texts,omitempty"`

	ImageCount int      `json:"imageCount"`
	Images     []string `json:"images,omitempty"`
	// UploadedImages 作者自己上传的图片，其余的是模板自带的
	UploadedImageCount int      `json:"uploadedImageCount"`
	UploadedImages     []string `json:"uploadedImages,omitempty"`

	LinkCount int      `json:"linkCount"`
	Links     []string `json:"links,omitempty"`

	UserInfo *UserInfo `json:"userInfo,omitempty"`
	// Err 获取或者解析作品内容失败的原因，不为空的时候其余字段都没有意义
	Err string `json:"err,omitempty"`
}

type UserInfo struct {
	Nickname     string `json:"nickname"`
	RegisterTime int64  `json:"registerTime"`
}

// Available 特征是否可以用于机审
func (f Features) Available() bool {
	return f.Err == ""
}
