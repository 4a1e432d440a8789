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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "空白和标点",
			input: " 免费 领取！ ",
			want:  "免费领取",
		},
		{
			name:  "大小写",
			input: "Hello, World 2024",
			want:  "helloworld2024",
		},
		{
			name:  "emoji 和全角符号",
			input: "🔥限时✨抢购（100元）",
			want:  "限时抢购100元",
		},
		{
			name:  "空字符串",
			input: "",
			want:  "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestLexicon_Find(t *testing.T) {
	lex := NewLexicon([]SensitiveWord{
		{ID: 1, Word: "  ", Level: RiskLevelHigh},
		{ID: 2, Word: "刷 单", Level: RiskLevelHigh},
		{ID: 3, Word: "兼职", Level: RiskLevelSuspicious},
		{ID: 4, Word: "WeChat", Level: RiskLevelLow},
	})
	assert.Equal(t, 3, lex.Len())

	testCases := []struct {
		name    string
		text    string
		wantID  int64
		wantHit bool
	}{
		{
			name:    "按照存储顺序返回第一个",
			text:    Normalize("兼职刷单日结"),
			wantID:  2,
			wantHit: true,
		},
		{
			name:    "大小写不敏感",
			text:    Normalize("加我 wechat"),
			wantID:  4,
			wantHit: true,
		},
		{
			name: "未命中",
			text: Normalize("春季招聘"),
		},
		{
			name: "空文本",
			text: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, ok := lex.Find(tc.text)
			assert.Equal(t, tc.wantHit, ok)
			assert.Equal(t, tc.wantID, w.ID)
		})
	}
}

func TestLexicon_Empty(t *testing.T) {
	assert.True(t, NewLexicon(nil).Empty())
	assert.True(t, Lexicon{}.Empty())
}
