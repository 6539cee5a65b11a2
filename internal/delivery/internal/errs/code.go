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
	ErrDeliveryNotFound        = httpx.NotFound(508001, "Delivery not found")
	ErrAlreadyAssigned         = httpx.Conflict(508002, "Delivery partner already assigned")
	ErrInvalidStatusTransition = httpx.BadRequest(508003, "Invalid delivery status transition")
	ErrInvalidPartner          = httpx.BadRequest(508004, "User is not an active delivery partner")
	ErrOrderNotAssignable      = httpx.BadRequest(508005, "Order cannot be assigned for delivery")
)
