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
	"fmt"
	"net/http"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/vitrine-io/vitrine/internal/config"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/accesslog"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/errorhandler"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/logger"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/metrics"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/passthrough"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/recovery"
	"github.com/vitrine-io/vitrine/internal/x"
	"github.com/vitrine-io/vitrine/internal/x/httpx"
	"github.com/vitrine-io/vitrine/internal/x/loggeradapter"
)

const serviceName = "management"

func newService(
	conf *config.Configuration,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
	log zerolog.Logger,
) *http.Server {
	cfg := conf.Management
	eh := errorhandler.New()
	opFilter := func(req *http.Request) bool { return req.URL.Path != EndpointHealth }

	hc := alice.New(
		func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(
				next,
				"",
				otelhttp.WithTracerProvider(otel.GetTracerProvider()),
				otelhttp.WithServerName(serviceName),
				otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
					return fmt.Sprintf("EntryPoint %s %s%s", httpx.Scheme(req), req.Host, req.URL.Path)
				}),
				otelhttp.WithFilter(opFilter),
			)
		},
		x.IfThenElseExec(conf.Metrics.Enabled,
			func() func(http.Handler) http.Handler {
				return metrics.New(
					metrics.WithServiceName(serviceName),
					metrics.WithRegisterer(reg),
					metrics.WithOperationFilter(opFilter),
				)
			},
			func() func(http.Handler) http.Handler { return passthrough.New },
		),
		accesslog.New(log),
		logger.New(log),
		recovery.New(eh),
	).Then(newManagementHandler(reg, gatherer, conf.Metrics.Enabled, log))

	return &http.Server{
		Handler:      hc,
		Addr:         cfg.Address(),
		ReadTimeout:  cfg.Timeout.Read,
		WriteTimeout: cfg.Timeout.Write,
		IdleTimeout:  cfg.Timeout.Idle,
		ErrorLog:     loggeradapter.NewStdLogger(log),
	}
}
