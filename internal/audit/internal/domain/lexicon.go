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
	"strings"
	"unicode"
)

type SensitiveWord struct {
	ID    int64
	Word  string
	Level RiskLevel
}

// Lexicon 敏感词表。
// 每次任务运行的时候加载一次，之后只读，可以被并发使用。
type Lexicon struct {
	words      []SensitiveWord
	normalized []string
}

// NewLexicon words 的顺序就是匹配的顺序。归一化之后为空的词会被丢弃。
func NewLexicon(words []SensitiveWord) Lexicon {
	res := Lexicon{
		words:      make([]SensitiveWord, 0, len(words)),
		normalized: make([]string, 0, len(words)),
	}
	for _, w := range words {
		n := Normalize(w.Word)
		if n == "" {
			continue
		}
		res.words = append(res.words, w)
		res.normalized = append(res.normalized, n)
	}
	return res
}

func (l Lexicon) Len() int {
	return len(l.words)
}

func (l Lexicon) Empty() bool {
	return len(l.words) == 0
}

// Find 返回第一个出现在 normalized 中的敏感词，normalized 必须已经调用过 Normalize
func (l Lexicon) Find(normalized string) (SensitiveWord, bool) {
	if normalized == "" {
		return SensitiveWord{}, false
	}
	for i, n := range l.normalized {
		if strings.Contains(normalized, n) {
			return l.words[i], true
		}
	}
	return SensitiveWord{}, false
}

// Normalize 只保留汉字、拉丁字母和数字，并且转成小写
func Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Han, r):
			sb.WriteRune(r)
		case unicode.Is(unicode.Latin, r):
			sb.WriteRune(unicode.ToLower(r))
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
