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
	ErrOrderNotFound           = httpx.NotFound(505001, "Order not found")
	ErrAddressNotFound         = httpx.NotFound(505002, "Address not found")
	ErrCartEmpty               = httpx.BadRequest(505003, "Cart is empty")
	ErrProductUnavailable      = httpx.BadRequest(505004, "Product no longer available")
	ErrInsufficientStock       = httpx.BadRequest(505005, "Insufficient stock")
	ErrInvalidStatusTransition = httpx.BadRequest(505006, "Invalid order status transition")
	ErrDuplicateRequest        = httpx.Conflict(505007, "Duplicate request")
	ErrPaidOrderNotCancellable = httpx.BadRequest(505008, "Paid orders cannot be cancelled")
	ErrPaymentAlreadyCompleted = httpx.Conflict(505009, "Payment already completed")
	ErrOrderNotPayable         = httpx.BadRequest(505010, "Order is not payable")
)
