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

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	"github.com/alibabacloud-go/tea/tea"
)

var _ Client = (*AliyunSMS)(nil)

type AliyunSMS struct {
	client   *dysmsapi.Client
	signName string
}

func NewAliyunSMS(accessKeyID, accessKeySecret, signName string) (*AliyunSMS, error) {
	client, err := dysmsapi.NewClient(&openapi.Config{
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
		Endpoint:        tea.String("dysmsapi.aliyuncs.com"),
	})
	if err != nil {
		return nil, err
	}
	return &AliyunSMS{client: client, signName: signName}, nil
}

func (a *AliyunSMS) Send(_ context.Context, req SendReq) (SendResp, error) {
	if len(req.PhoneNumbers) == 0 {
		return SendResp{}, fmt.Errorf("%w: 手机号码不能为空", ErrInvalidParameter)
	}
	params, err := json.Marshal(req.TemplateParam)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	resp, err := a.client.SendSms(&dysmsapi.SendSmsRequest{
		PhoneNumbers:  tea.String(strings.Join(req.PhoneNumbers, ",")),
		SignName:      tea.String(a.signName),
		TemplateCode:  tea.String(req.TemplateID),
		TemplateParam: tea.String(string(params)),
	})
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	body := resp.Body
	if body == nil {
		return SendResp{}, fmt.Errorf("%w: 响应为空", ErrSendFailed)
	}
	if tea.StringValue(body.Code) != OK {
		return SendResp{}, fmt.Errorf("%w: 响应异常 %s", ErrSendFailed, tea.StringValue(body.Message))
	}
	// 阿里云只返回整体状态, 每个号码共用同一个结果
	res := SendResp{
		RequestID:    tea.StringValue(body.RequestId),
		PhoneNumbers: make(map[string]SendRespStatus, len(req.PhoneNumbers)),
	}
	for _, phone := range req.PhoneNumbers {
		res.PhoneNumbers[phone] = SendRespStatus{
			Code:    tea.StringValue(body.Code),
			Message: tea.StringValue(body.Message),
		}
	}
	return res, nil
}
