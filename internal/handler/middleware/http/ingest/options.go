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

package ingest

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type opts struct {
	readTimeout time.Duration
	registerer  prometheus.Registerer
}

type Option func(*opts)

// WithReadTimeout sets the read deadline on the underlying connection while the body is read.
// It has to exceed the read timeout of the ingestor. Otherwise an expiring deadline cancels the
// request before the ingestor reports the timeout.
func WithReadTimeout(timeout time.Duration) Option {
	return func(o *opts) {
		if timeout > 0 {
			o.readTimeout = timeout
		}
	}
}

func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *opts) {
		if reg != nil {
			o.registerer = reg
		}
	}
}
