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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
	"github.com/ecodeclub/workaudit/internal/audit/internal/repository/dao"
)

type LexiconRepository interface {
	// Load 读取全部敏感词，每次处理任务之前调用一次
	Load(ctx context.Context) (domain.Lexicon, error)
	Save(ctx context.Context, word domain.SensitiveWord) (int64, error)
}

type lexiconRepository struct {
	dao dao.SensitiveWordDAO
}

func NewLexiconRepository(d dao.SensitiveWordDAO) LexiconRepository {
	return &lexiconRepository{dao: d}
}

func (r *lexiconRepository) Load(ctx context.Context) (domain.Lexicon, error) {
	words, err := r.dao.List(ctx)
	if err != nil {
		return domain.Lexicon{}, err
	}
	return domain.NewLexicon(slice.Map(words, func(idx int, src dao.SensitiveWord) domain.SensitiveWord {
		return domain.SensitiveWord{
			ID:    src.Id,
			Word:  src.Word,
			Level: domain.RiskLevel(src.Level),
		}
	})), nil
}

func (r *lexiconRepository) Save(ctx context.Context, word domain.SensitiveWord) (int64, error) {
	return r.dao.Save(ctx, dao.SensitiveWord{
		Word:  word.Word,
		Level: word.Level.ToUint8(),
	})
}
