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

package management

import (
	"net/http"

	"github.com/go-http-utils/etag"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/methodfilter"
	"github.com/vitrine-io/vitrine/internal/x/loggeradapter"
)

const (
	EndpointHealth  = "/.well-known/health"
	EndpointMetrics = "/metrics"
)

func newManagementHandler(
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
	metricsEnabled bool,
	log zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.Handle(EndpointHealth, alice.New(methodfilter.New(http.MethodGet)).Then(etag.Handler(health(), false)))

	if metricsEnabled {
		log.Debug().Msg("Exposing metrics endpoint")

		mux.Handle(EndpointMetrics, alice.New(methodfilter.New(http.MethodGet)).Then(
			promhttp.InstrumentMetricHandler(
				reg,
				promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
					Registry: reg,
					ErrorLog: loggeradapter.NewStdLogger(log),
				}),
			),
		))
	}

	return mux
}
