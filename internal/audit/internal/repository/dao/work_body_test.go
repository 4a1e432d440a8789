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
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tencentyun/cos-go-sdk-v5"
)

func TestWorkBodyCOSDAO_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		switch r.URL.Path {
		case "/works/42/2024061800042/3.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"pages":[{"text":"你好"}]}`))
		default:
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
		}
	}))
	defer server.Close()

	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	client := cos.NewClient(&cos.BaseURL{BucketURL: u}, server.Client())
	d := NewWorkBodyCOSDAO(client, "")

	testCases := []struct {
		name    string
		ownerId int64
		workId  string
		version int64
		want    string
		wantErr bool
	}{
		{
			name:    "获取成功",
			ownerId: 42,
			workId:  "2024061800042",
			version: 3,
			want:    `{"pages":[{"text":"你好"}]}`,
		},
		{
			name:    "版本不存在",
			ownerId: 42,
			workId:  "2024061800042",
			version: 4,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body, err := d.Get(context.Background(), tc.ownerId, tc.workId, tc.version)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(body))
		})
	}
}
