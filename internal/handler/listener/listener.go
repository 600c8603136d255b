// Copyright 2025 The Vitrine Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package listener

import (
	"context"
	"net"

	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/errorchain"
)

// New creates a listener for the given network and address. TLS is terminated in front of
// the service, so plain listeners are created only.
func New(ctx context.Context, network, address string) (net.Listener, error) {
	var lc net.ListenConfig

	listener, err := lc.Listen(ctx, network, address)
	if err != nil {
		return nil, errorchain.NewWithMessage(vitrine.ErrInternal, "failed creating listener").CausedBy(err)
	}

	return listener, nil
}
