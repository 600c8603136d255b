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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/trace"
)

func TestNew(t *testing.T) {
	for uc, tc := range map[string]struct {
		env    map[string]string
		assert func(t *testing.T, err error, exporters []trace.SpanExporter)
	}{
		"defaults to otlp over http": {
			assert: func(t *testing.T, err error, exporters []trace.SpanExporter) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, exporters, 1)
				assert.IsType(t, &otlptrace.Exporter{}, exporters[0])
			},
		},
		"otlp over grpc": {
			env: map[string]string{"OTEL_EXPORTER_OTLP_PROTOCOL": "grpc"},
			assert: func(t *testing.T, err error, exporters []trace.SpanExporter) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, exporters, 1)
				assert.IsType(t, &otlptrace.Exporter{}, exporters[0])
			},
		},
		"otlp with unsupported protocol": {
			env: map[string]string{"OTEL_EXPORTER_OTLP_TRACES_PROTOCOL": "foo"},
			assert: func(t *testing.T, err error, _ []trace.SpanExporter) {
				t.Helper()

				require.ErrorIs(t, err, ErrExporterCreation)
				require.ErrorIs(t, err, ErrUnsupportedOTLPProtocol)
				assert.Contains(t, err.Error(), "foo")
			},
		},
		"zipkin and otlp": {
			env: map[string]string{"OTEL_TRACES_EXPORTER": "zipkin, otlp"},
			assert: func(t *testing.T, err error, exporters []trace.SpanExporter) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, exporters, 2)
				assert.IsType(t, &zipkin.Exporter{}, exporters[0])
				assert.IsType(t, &otlptrace.Exporter{}, exporters[1])
			},
		},
		"none wins": {
			env: map[string]string{"OTEL_TRACES_EXPORTER": "otlp,none"},
			assert: func(t *testing.T, err error, exporters []trace.SpanExporter) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, exporters, 1)
				assert.IsType(t, noopExporter{}, exporters[0])
			},
		},
		"unsupported exporter": {
			env: map[string]string{"OTEL_TRACES_EXPORTER": "foo"},
			assert: func(t *testing.T, err error, _ []trace.SpanExporter) {
				t.Helper()

				require.ErrorIs(t, err, ErrUnsupportedExporterType)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			// WHEN
			exporters, err := New(t.Context())

			// THEN
			tc.assert(t, err, exporters)
		})
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("TEST_ENV_OR_SET", "barfoo")
	t.Setenv("TEST_ENV_OR_EMPTY", "")

	assert.Equal(t, "barfoo", envOr("TEST_ENV_OR_SET", "foobar"))
	assert.Equal(t, "foobar", envOr("TEST_ENV_OR_EMPTY", "foobar"))
	assert.Equal(t, "foobar", envOr("TEST_ENV_OR_MISSING", "foobar"))
}
