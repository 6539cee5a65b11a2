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

package delivery

import (
	"github.com/ecodeclub/marketplace/internal/delivery/internal/domain"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/errs"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/event"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/service"
	"github.com/ecodeclub/marketplace/internal/delivery/internal/web"
)

type (
	Handler       = web.Handler
	Service       = service.Service
	Delivery      = domain.Delivery
	Status        = domain.Status
	Tracking      = domain.Tracking
	DeliveryEvent = event.DeliveryEvent
)

const (
	StatusAssigned  = domain.StatusAssigned
	StatusPickedUp  = domain.StatusPickedUp
	StatusInTransit = domain.StatusInTransit
	StatusDelivered = domain.StatusDelivered
	StatusFailed    = domain.StatusFailed

	DeliveryEventName = event.DeliveryEventName
)

var ErrAlreadyAssigned = errs.ErrAlreadyAssigned

type Module struct {
	Hdl *Handler
	Svc Service
}
