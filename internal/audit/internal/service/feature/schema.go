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

type fragmentKind uint8

const (
	kindText fragmentKind = iota + 1
	kindImage
	kindLink
)

// fragment 从某个节点上识别出来的一段内容
type fragment struct {
	kind  fragmentKind
	value string
}

// schema 作品内容的一种格式。
// 目前只有两种格式，每个节点都会被所有格式各自检查一遍。
// 两种格式使用的字段名没有交集，所以同一段内容不会被重复计算。
type schema interface {
	fragments(node map[string]any) []fragment
}

var schemas = [...]schema{
	legacySchema{},
	elementSchema{},
}

// legacySchema 老版本编辑器的格式，内容直接挂在节点上：
//
//	{"text": "..."} {"imgUrl": "..."} {"linkUrl": "..."}
type legacySchema struct{}

var legacyFields = [...]struct {
	field string
	kind  fragmentKind
}{
	{field: "text", kind: kindText},
	{field: "imgUrl", kind: kindImage},
	{field: "linkUrl", kind: kindLink},
}

func (legacySchema) fragments(node map[string]any) []fragment {
	var res []fragment
	for _, f := range legacyFields {
		if val, ok := node[f.field].(string); ok {
			res = append(res, fragment{kind: f.kind, value: val})
		}
	}
	return res
}

// elementSchema 新版本编辑器的格式：
//
//	{"element": "text",  "attrs": {"content": "..."}}
//	{"element": "image", "attrs": {"src": "..."}}
//	{"element": "link",  "attrs": {"href": "..."}}
type elementSchema struct{}

var elementAttrs = map[string]struct {
	attr string
	kind fragmentKind
}{
	"text":  {attr: "content", kind: kindText},
	"image": {attr: "src", kind: kindImage},
	"link":  {attr: "href", kind: kindLink},
}

func (elementSchema) fragments(node map[string]any) []fragment {
	element, ok := node["element"].(string)
	if !ok {
		return nil
	}
	spec, ok := elementAttrs[element]
	if !ok {
		return nil
	}
	attrs, ok := node["attrs"].(map[string]any)
	if !ok {
		return nil
	}
	val, ok := attrs[spec.attr].(string)
	if !ok {
		return nil
	}
	return []fragment{{kind: spec.kind, value: val}}
}
