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

import (
	"fmt"
	"net/http"
)

// Error 业务错误, 同时携带 HTTP 状态码与业务错误码
// errors.Is 只比较业务错误码, 所以 WithMsg 派生出来的错误仍然能和原始错误匹配
type Error struct {
	Status int
	Code   int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func (e *Error) WithMsg(msg string) *Error {
	return &Error{Status: e.Status, Code: e.Code, Msg: msg}
}

func (e *Error) WithMsgf(format string, args ...any) *Error {
	return e.WithMsg(fmt.Sprintf(format, args...))
}

func NewError(status, code int, msg string) *Error {
	return &Error{Status: status, Code: code, Msg: msg}
}

func BadRequest(code int, msg string) *Error {
	return NewError(http.StatusBadRequest, code, msg)
}

func NotFound(code int, msg string) *Error {
	return NewError(http.StatusNotFound, code, msg)
}

func Conflict(code int, msg string) *Error {
	return NewError(http.StatusConflict, code, msg)
}

var (
	ErrUnauthorized = NewError(http.StatusUnauthorized, 401001, "Unauthorized")
	ErrForbidden    = NewError(http.StatusForbidden, 403001, "Forbidden")
	ErrInvalidParam = BadRequest(400001, "Validation failed")
	ErrInternal     = NewError(http.StatusInternalServerError, 500001, "Internal server error")
)
