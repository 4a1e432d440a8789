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

package risk

import (
	"fmt"
	"strings"

	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
)

const (
	ReasonLexiconUnavailable = "敏感词库不可用，默认通过"
	ReasonNoFeature          = "缺少作品特征数据"
	ReasonSparseContent      = "内容稀疏：上传图片少且几乎没有文字"
	ReasonExternalLink       = "包含外部链接"
	ReasonNotSubstantive     = "内容不够充实"
	ReasonPassed             = "机审通过"
)

// rule 返回 true 表示命中，后面的规则不再执行
type rule func(title string, f *domain.Features, lex domain.Lexicon) (domain.Verdict, bool)

// rules 的顺序就是判定的顺序，第一条命中的规则决定结论
var rules = []rule{
	titleRule,
	featureRequiredRule,
	sparseContentRule,
	externalLinkRule,
	substanceRule,
	contentRule,
}

// Score 对作品做机审。f 为 nil 表示没有拿到作品特征。
func Score(title string, f *domain.Features, lex domain.Lexicon) domain.Verdict {
	if lex.Empty() {
		return domain.Verdict{
			Passed: true,
			Level:  domain.RiskLevelLow,
			Reason: ReasonLexiconUnavailable,
		}
	}
	for _, r := range rules {
		if v, ok := r(title, f, lex); ok {
			return v
		}
	}
	return domain.Verdict{
		Passed: true,
		Level:  domain.RiskLevelLow,
		Reason: ReasonPassed,
	}
}

func titleRule(title string, _ *domain.Features, lex domain.Lexicon) (domain.Verdict, bool) {
	w, ok := lex.Find(domain.Normalize(title))
	if !ok {
		return domain.Verdict{}, false
	}
	return failed(w.Level, fmt.Sprintf("标题包含敏感词：%s", w.Word)), true
}

func featureRequiredRule(_ string, f *domain.Features, _ domain.Lexicon) (domain.Verdict, bool) {
	if f != nil {
		return domain.Verdict{}, false
	}
	return failed(domain.RiskLevelSuspicious, ReasonNoFeature), true
}

func sparseContentRule(_ string, f *domain.Features, _ domain.Lexicon) (domain.Verdict, bool) {
	if f.UploadedImageCount <= 5 && f.TextLength <= 10 {
		return failed(domain.RiskLevelSuspicious, ReasonSparseContent), true
	}
	return domain.Verdict{}, false
}

func externalLinkRule(_ string, f *domain.Features, _ domain.Lexicon) (domain.Verdict, bool) {
	if f.LinkCount > 0 {
		return failed(domain.RiskLevelSuspicious, ReasonExternalLink), true
	}
	return domain.Verdict{}, false
}

func substanceRule(_ string, f *domain.Features, _ domain.Lexicon) (domain.Verdict, bool) {
	if f.UploadedImageCount < 2 && f.TextLength < 30 {
		return failed(domain.RiskLevelSuspicious, ReasonNotSubstantive), true
	}
	return domain.Verdict{}, false
}

func contentRule(_ string, f *domain.Features, lex domain.Lexicon) (domain.Verdict, bool) {
	w, ok := lex.Find(domain.Normalize(strings.Join(f.Texts, "")))
	if !ok {
		return domain.Verdict{}, false
	}
	return failed(w.Level, fmt.Sprintf("内容包含敏感词：%s", w.Word)), true
}

func failed(level domain.RiskLevel, reason string) domain.Verdict {
	return domain.Verdict{
		Passed: false,
		Level:  level,
		Reason: reason,
	}
}
