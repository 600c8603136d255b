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

package exporters

import (
	"context"
	"errors"
	"os"
	"strings"

	instana "github.com/instana/go-otel-exporter"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/vitrine-io/vitrine/internal/x/errorchain"
)

var (
	ErrUnsupportedExporterType = errors.New("unsupported traces exporter type")
	ErrUnsupportedOTLPProtocol = errors.New("unsupported OTLP protocol")
	ErrExporterCreation        = errors.New("failed creating traces exporter")
)

const (
	tracesExporterEnvKey     = "OTEL_TRACES_EXPORTER"
	tracesProtocolEnvKey     = "OTEL_EXPORTER_OTLP_TRACES_PROTOCOL"
	protocolEnvKey           = "OTEL_EXPORTER_OTLP_PROTOCOL"
	defaultExporterType      = "otlp"
	defaultExporterProtocol  = "http/protobuf"
	disabledExporterTypeName = "none"
)

type factory func(ctx context.Context) (trace.SpanExporter, error)

func factories() map[string]factory {
	return map[string]factory{
		"otlp": func(ctx context.Context) (trace.SpanExporter, error) {
			protocol, ok := os.LookupEnv(tracesProtocolEnvKey)
			if !ok {
				protocol = envOr(protocolEnvKey, defaultExporterProtocol)
			}

			switch protocol {
			case "grpc":
				return otlptracegrpc.New(ctx)
			case "http/protobuf":
				return otlptracehttp.New(ctx)
			default:
				return nil, errorchain.NewWithMessage(ErrUnsupportedOTLPProtocol, protocol)
			}
		},
		"zipkin": func(_ context.Context) (trace.SpanExporter, error) {
			return zipkin.New("")
		},
		"instana": func(_ context.Context) (exp trace.SpanExporter, err error) { //nolint:nonamedreturns
			// the instana exporter panics if its environment is not configured
			defer func() {
				if r := recover(); r != nil {
					err = errorchain.NewWithMessagef(ErrExporterCreation, "instana: %v", r)
				}
			}()

			return instana.New(), nil
		},
	}
}

// New creates the span exporters named in the OTEL_TRACES_EXPORTER environment variable.
// An OTLP exporter is created if the variable is not set.
func New(ctx context.Context) ([]trace.SpanExporter, error) {
	names := strings.Split(envOr(tracesExporterEnvKey, defaultExporterType), ",")
	available := factories()
	exporters := make([]trace.SpanExporter, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == disabledExporterTypeName {
			return []trace.SpanExporter{noopExporter{}}, nil
		}

		create, ok := available[name]
		if !ok {
			return nil, errorchain.NewWithMessage(ErrUnsupportedExporterType, name)
		}

		exporter, err := create(ctx)
		if err != nil {
			return nil, errorchain.NewWithMessage(ErrExporterCreation, name).CausedBy(err)
		}

		exporters = append(exporters, exporter)
	}

	return exporters, nil
}

func envOr(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && len(val) != 0 {
		return val
	}

	return defaultValue
}
