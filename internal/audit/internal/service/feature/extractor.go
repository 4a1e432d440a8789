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

package feature

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ecodeclub/workaudit/internal/audit/internal/domain"
)

// Parse 解析作品内容 JSON 并提取特征
func Parse(body []byte, ownerID int64) (domain.Features, error) {
	var tree any
	if err := json.Unmarshal(body, &tree); err != nil {
		return domain.Features{}, fmt.Errorf("解析作品内容失败: %w", err)
	}
	return Extract(tree, ownerID), nil
}

// Extract 遍历整棵内容树，统计文本、图片、链接和页数。
// tree 是 json.Unmarshal 到 any 之后的结果，任意形状的输入都不会报错。
func Extract(tree any, ownerID int64) domain.Features {
	c := &collector{
		ownerSegment: fmt.Sprintf("/user/%d/", ownerID),
	}
	c.walk(tree)
	return c.features()
}

type collector struct {
	ownerSegment string

	pageCount  int
	foundPages bool

	texts      []string
	textLength int

	images   orderedSet
	uploaded orderedSet
	links    orderedSet
}

func (c *collector) walk(val any) {
	switch v := val.(type) {
	case map[string]any:
		c.visit(v)
		// 固定遍历顺序，保证多次提取的结果完全一致
		for _, key := range slices.Sorted(maps.Keys(v)) {
			c.walk(v[key])
		}
	case []any:
		for _, child := range v {
			c.walk(child)
		}
	}
}

func (c *collector) visit(node map[string]any) {
	if pages, ok := node["pages"]; ok {
		switch p := pages.(type) {
		case []any:
			c.recordPages(len(p))
		case map[string]any:
			c.recordPages(len(p))
		}
	}
	if bg, ok := node["backgroundImage"].(string); ok {
		c.addImage(bg)
	}
	for _, s := range schemas {
		for _, f := range s.fragments(node) {
			switch f.kind {
			case kindText:
				c.addText(f.value)
			case kindImage:
				c.addImage(f.value)
			case kindLink:
				c.addLink(f.value)
			}
		}
	}
}

func (c *collector) recordPages(n int) {
	c.foundPages = true
	c.pageCount = max(c.pageCount, n)
}

func (c *collector) addText(text string) {
	text = strings.TrimSpace(visibleText(text))
	if text == "" {
		return
	}
	c.texts = append(c.texts, text)
	c.textLength += utf8.RuneCountInString(text)
}

func (c *collector) addImage(src string) {
	src = strings.TrimSpace(src)
	if src == "" {
		return
	}
	c.images.add(src)
	if c.uploadedByOwner(src) {
		c.uploaded.add(src)
	}
}

func (c *collector) addLink(href string) {
	href = strings.TrimSpace(href)
	if href == "" {
		return
	}
	c.links.add(href)
}

func (c *collector) uploadedByOwner(src string) bool {
	path := src
	if u, err := url.Parse(src); err == nil && u.Path != "" {
		path = u.Path
	}
	return strings.Contains(path, c.ownerSegment)
}

func (c *collector) features() domain.Features {
	pages := c.pageCount
	// 没有 pages 字段的作品也至少有一页
	if !c.foundPages || pages < 1 {
		pages = 1
	}
	return domain.Features{
		PageCount:          pages,
		TextCount:          len(c.texts),
		TextLength:         c.textLength,
		Texts:              c.texts,
		ImageCount:         len(c.images.items),
		Images:             c.images.items,
		UploadedImageCount: len(c.uploaded.items),
		UploadedImages:     c.uploaded.items,
		LinkCount:          len(c.links.items),
		Links:              c.links.items,
	}
}

// visibleText 富文本片段只保留用户能看到的文字
func visibleText(text string) string {
	if !strings.Contains(text, "<") || !strings.Contains(text, ">") {
		return text
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}
	return doc.Text()
}

// orderedSet 去重，但是保留第一次出现的顺序
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func (s *orderedSet) add(val string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[val]; ok {
		return
	}
	s.seen[val] = struct{}{}
	s.items = append(s.items, val)
}
