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
package ioc

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/tencentyun/cos-go-sdk-v5"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

func InitCOS() *cos.Client {
	type Config struct {
		SecretID  string `yaml:"secretID"`
		SecretKey string `yaml:"secretKey"`
		AppID     string `yaml:"appID"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		// UseSTS 为 true 的时候只用临时密钥读取作品内容
		UseSTS bool   `yaml:"useSTS"`
		Prefix string `yaml:"prefix"`
	}
	var cfg Config
	err := econf.UnmarshalKey("cos", &cfg)
	if err != nil {
		panic(fmt.Errorf("读取 COS 配置失败 %w", err))
	}
	// 存储桶的命名格式为 BucketName-APPID
	u, err := url.Parse(fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", cfg.Bucket, cfg.AppID, cfg.Region))
	if err != nil {
		panic(err)
	}
	var transport http.RoundTripper = &cos.AuthorizationTransport{
		SecretID:  cfg.SecretID,
		SecretKey: cfg.SecretKey,
	}
	if cfg.UseSTS {
		resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s/*",
			cfg.Region, cfg.AppID, cfg.Bucket, cfg.AppID, cfg.Prefix)
		transport = &cos.CredentialTransport{
			Credential: newSTSCredential(cfg.SecretID, cfg.SecretKey, cfg.Region, resource),
		}
	}
	return cos.NewClient(&cos.BaseURL{BucketURL: u}, &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	})
}

// stsCredential 临时密钥快过期的时候重新申请
type stsCredential struct {
	client *sts.Client
	opt    *sts.CredentialOptions

	mu           sync.Mutex
	secretID     string
	secretKey    string
	sessionToken string
	expireAt     time.Time
}

const (
	stsDuration = time.Hour
	// 提前刷新，避免请求过程中过期
	stsRefreshAhead = 5 * time.Minute
)

func newSTSCredential(secretID, secretKey, region, resource string) *stsCredential {
	return &stsCredential{
		client: sts.NewClient(secretID, secretKey, http.DefaultClient),
		opt: &sts.CredentialOptions{
			DurationSeconds: int64(stsDuration.Seconds()),
			Region:          region,
			Policy: &sts.CredentialPolicy{
				Statement: []sts.CredentialPolicyStatement{
					{
						Action: []string{
							"name/cos:GetObject",
							"name/cos:HeadObject",
						},
						Effect:   "allow",
						Resource: []string{resource},
					},
				},
			},
		},
	}
}

func (s *stsCredential) GetSecretId() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh()
	return s.secretID
}

func (s *stsCredential) GetSecretKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh()
	return s.secretKey
}

func (s *stsCredential) GetToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh()
	return s.sessionToken
}

// refresh 调用方持有锁，失败的时候继续用旧的密钥
func (s *stsCredential) refresh() {
	now := time.Now()
	if now.Add(stsRefreshAhead).Before(s.expireAt) {
		return
	}
	res, err := s.client.GetCredential(s.opt)
	if err != nil {
		elog.DefaultLogger.Error("申请 COS 临时密钥失败", elog.FieldErr(err))
		return
	}
	s.secretID = res.Credentials.TmpSecretID
	s.secretKey = res.Credentials.TmpSecretKey
	s.sessionToken = res.Credentials.SessionToken
	s.expireAt = now.Add(stsDuration)
}
