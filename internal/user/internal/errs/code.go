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

package errs

import "github.com/ecodeclub/marketplace/internal/pkg/httpx"

var (
	ErrUserNotFound     = httpx.NotFound(501001, "User not found")
	ErrOTPSendTooMany   = httpx.BadRequest(501002, "OTP requested too frequently, please retry later")
	ErrOTPInvalid       = httpx.BadRequest(501003, "Invalid or expired OTP")
	ErrOTPTooManyErrors = httpx.BadRequest(501004, "Too many incorrect attempts, please request a new OTP")
	ErrRoleNotAllowed   = httpx.BadRequest(501005, "Role cannot be self-assigned")
	ErrUserBlocked      = httpx.NewError(403, 501006, "User is blocked")
)
