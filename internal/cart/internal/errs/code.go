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
	ErrItemNotFound       = httpx.NotFound(504001, "Cart item not found")
	ErrProductUnavailable = httpx.BadRequest(504002, "Product no longer available")
	ErrInsufficientStock  = httpx.BadRequest(504003, "Insufficient stock")
	ErrTooManyItems       = httpx.BadRequest(504004, "Cart is full")
)
