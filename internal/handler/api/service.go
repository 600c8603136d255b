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

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ccoveille/go-safecast"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/vitrine-io/vitrine/internal/body"
	"github.com/vitrine-io/vitrine/internal/config"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/accesslog"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/dump"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/errorhandler"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/headerpolicy"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/ingest"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/logger"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/metrics"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/passthrough"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/recovery"
	"github.com/vitrine-io/vitrine/internal/handler/products"
	"github.com/vitrine-io/vitrine/internal/handler/router"
	"github.com/vitrine-io/vitrine/internal/x"
	"github.com/vitrine-io/vitrine/internal/x/httpx"
	"github.com/vitrine-io/vitrine/internal/x/loggeradapter"
)

const (
	serviceName        = "api"
	readDeadlineMargin = 500 * time.Millisecond
)

func newService(conf *config.Configuration, reg prometheus.Registerer, log zerolog.Logger) *http.Server {
	cfg := conf.Serve
	eh := errorhandler.New(
		errorhandler.WithVerboseErrors(cfg.Respond.Verbose),
		errorhandler.WithArgumentErrorCode(cfg.Respond.With.ArgumentError.Code),
		errorhandler.WithBodyTooLargeErrorCode(cfg.Respond.With.BodyTooLarge.Code),
		errorhandler.WithStreamTimeoutErrorCode(cfg.Respond.With.StreamTimeout.Code),
		errorhandler.WithInternalServerErrorCode(cfg.Respond.With.InternalError.Code),
	)
	ingestor := body.NewIngestor(
		body.WithMaxSize(cfg.Body.MaxSize),
		body.WithChunkSize(cfg.Body.ChunkSize),
		body.WithReadTimeout(cfg.Body.ReadTimeout),
	)

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
			)
		},
		x.IfThenElseExec(conf.Metrics.Enabled,
			func() func(http.Handler) http.Handler {
				return metrics.New(
					metrics.WithServiceName(serviceName),
					metrics.WithRegisterer(reg),
				)
			},
			func() func(http.Handler) http.Handler { return passthrough.New },
		),
		accesslog.New(log),
		logger.New(log),
		dump.New(),
		recovery.New(eh),
		x.IfThenElseExec(cfg.CORS != nil,
			func() func(http.Handler) http.Handler {
				return cors.New(
					cors.Options{
						AllowedOrigins:   cfg.CORS.AllowedOrigins,
						AllowedMethods:   cfg.CORS.AllowedMethods,
						AllowedHeaders:   cfg.CORS.AllowedHeaders,
						AllowCredentials: cfg.CORS.AllowCredentials,
						ExposedHeaders:   cfg.CORS.ExposedHeaders,
						MaxAge:           int(cfg.CORS.MaxAge.Seconds()),
					},
				).Handler
			},
			func() func(http.Handler) http.Handler { return passthrough.New },
		),
		ingest.New(ingestor, eh,
			ingest.WithReadTimeout(cfg.Body.ReadTimeout+readDeadlineMargin),
			ingest.WithRegisterer(x.IfThenElse(conf.Metrics.Enabled, reg, nil)),
		),
		headerpolicy.New(),
	).Then(router.NewHandler(router.NewTable(router.NotFound(), products.Routes(cfg.Body.Policy)...), eh))

	return &http.Server{
		Handler:        hc,
		Addr:           cfg.Address(),
		ReadTimeout:    cfg.Timeout.Read,
		WriteTimeout:   cfg.Timeout.Write,
		IdleTimeout:    cfg.Timeout.Idle,
		MaxHeaderBytes: safecast.MustConvert[int](uint64(cfg.BufferLimit.Read)),
		ErrorLog:       loggeradapter.NewStdLogger(log),
	}
}
