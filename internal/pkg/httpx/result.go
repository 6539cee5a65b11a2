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

package httpx

import "net/http"

// Result 统一的响应结构
type Result struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	// 不输出, 0 表示 200
	Status int `json:"-"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func OK(data any) Result {
	return Result{Success: true, Message: "OK", Data: data}
}

func Created(msg string, data any) Result {
	return Result{Success: true, Message: msg, Data: data, Status: http.StatusCreated}
}

func Msg(msg string) Result {
	return Result{Success: true, Message: msg}
}

func (r Result) status() int {
	if r.Status == 0 {
		return http.StatusOK
	}
	return r.Status
}
