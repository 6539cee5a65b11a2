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

package wallet

import (
	"github.com/ecodeclub/marketplace/internal/wallet/internal/event"
	"github.com/ecodeclub/marketplace/internal/wallet/internal/service"
	"github.com/ecodeclub/mq-api"
)

func initDeliveredConsumer(svc service.Service, q mq.MQ) (*event.DeliveredConsumer, error) {
	return event.NewDeliveredConsumer(svc, q)
}
