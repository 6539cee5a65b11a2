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
	"github.com/ecodeclub/marketplace/internal/sms/client"
	"github.com/gotomicro/ego/core/econf"
)

// InitSMSClient 没有配置阿里云时验证码只打印到日志
func InitSMSClient() client.Client {
	type Config struct {
		Provider  string `yaml:"provider"`
		SecretID  string `yaml:"secretId"`
		SecretKey string `yaml:"secretKey"`
		SignName  string `yaml:"signName"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sms", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Provider != "aliyun" {
		return client.NewConsoleClient()
	}
	aliClient, err := client.NewAliyunSMS(cfg.SecretID, cfg.SecretKey, cfg.SignName)
	if err != nil {
		panic(err)
	}
	return aliClient
}
