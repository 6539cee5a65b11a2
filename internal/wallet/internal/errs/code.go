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
	ErrWalletNotFound              = httpx.NotFound(507001, "Wallet not found")
	ErrInsufficientBalance         = httpx.BadRequest(507002, "Insufficient withdrawable balance")
	ErrInvalidWithdrawalTransition = httpx.BadRequest(507003, "Invalid withdrawal status transition")
	ErrWithdrawalNotFound          = httpx.NotFound(507004, "Withdrawal request not found")
	ErrInvalidAmount               = httpx.BadRequest(507005, "Invalid amount")
	ErrConcurrentUpdate            = httpx.Conflict(507006, "Wallet was updated concurrently, please retry")
)
