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
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeTooLarge = "too_large"
	outcomeTimeout  = "timeout"
	outcomeAborted  = "aborted"
)

type metrics struct {
	ingestions *prometheus.CounterVec
	sizes      prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}

	m := &metrics{
		ingestions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "vitrine",
				Name:      "request_body_ingestions_total",
				Help:      "Number of ingested request bodies partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		sizes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "vitrine",
				Name:      "request_body_size_bytes",
				Help:      "Size of successfully ingested request bodies.",
				Buckets:   prometheus.ExponentialBuckets(64, 4, 8), //nolint:mnd
			},
		),
	}

	reg.MustRegister(m.ingestions, m.sizes)

	return m
}

func (m *metrics) observeOutcome(outcome string) {
	if m != nil {
		m.ingestions.WithLabelValues(outcome).Inc()
	}
}

func (m *metrics) observeSize(size int64) {
	if m != nil {
		m.sizes.Observe(float64(size))
	}
}
