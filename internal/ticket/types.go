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

package ticket

import (
	"github.com/ecodeclub/marketplace/internal/ticket/internal/domain"
	"github.com/ecodeclub/marketplace/internal/ticket/internal/service"
	"github.com/ecodeclub/marketplace/internal/ticket/internal/web"
)

type (
	Handler = web.Handler
	Service = service.Service
	Ticket  = domain.Ticket
	Status  = domain.Status
)

type Module struct {
	Hdl *Handler
	Svc Service
}
