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

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

type OperationFilter func(req *http.Request) bool

type opts struct {
	service       string
	registerer    prometheus.Registerer
	shouldProcess OperationFilter
}

type Option func(*opts)

func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *opts) {
		if reg != nil {
			o.registerer = reg
		}
	}
}

func WithServiceName(name string) Option {
	return func(o *opts) {
		if len(name) != 0 {
			o.service = name
		}
	}
}

// WithOperationFilter excludes requests, the filter returns false for, from being measured.
func WithOperationFilter(filter OperationFilter) Option {
	return func(o *opts) {
		if filter != nil {
			o.shouldProcess = filter
		}
	}
}

func newOptions(options ...Option) *opts {
	conf := opts{
		registerer:    prometheus.DefaultRegisterer,
		shouldProcess: func(_ *http.Request) bool { return true },
	}

	for _, opt := range options {
		opt(&conf)
	}

	return &conf
}
