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

package tracing

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/fx"

	"github.com/vitrine-io/vitrine/internal/config"
	"github.com/vitrine-io/vitrine/internal/x/opentelemetry/exporters"
	"github.com/vitrine-io/vitrine/internal/x/testsupport"
)

type mockLifecycle struct{ mock.Mock }

func (m *mockLifecycle) Append(hook fx.Hook) { m.Called(hook) }

func TestInitializeOTEL(t *testing.T) {
	for uc, tc := range map[string]struct {
		conf       config.TracingConfig
		setupMocks func(t *testing.T, lcMock *mockLifecycle)
		assert     func(t *testing.T, err error, propagator propagation.TextMapPropagator, logged string)
	}{
		"disabled tracing": {
			conf:       config.TracingConfig{Enabled: false},
			setupMocks: func(t *testing.T, _ *mockLifecycle) { t.Helper() },
			assert: func(t *testing.T, err error, _ propagation.TextMapPropagator, logged string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, logged, "tracing disabled")
			},
		},
		"failing exporter creation": {
			conf: config.TracingConfig{Enabled: true, SpanProcessorType: config.SpanProcessorBatch},
			setupMocks: func(t *testing.T, _ *mockLifecycle) {
				t.Helper()

				t.Setenv("OTEL_TRACES_EXPORTER", "otlp")
				t.Setenv("OTEL_EXPORTER_OTLP_TRACES_PROTOCOL", "foo")
			},
			assert: func(t *testing.T, err error, _ propagation.TextMapPropagator, _ string) {
				t.Helper()

				require.ErrorIs(t, err, exporters.ErrExporterCreation)
			},
		},
		"successful initialization": {
			conf: config.TracingConfig{Enabled: true, SpanProcessorType: config.SpanProcessorSimple},
			setupMocks: func(t *testing.T, lcMock *mockLifecycle) {
				t.Helper()

				t.Setenv("OTEL_TRACES_EXPORTER", "none")

				lcMock.On("Append",
					mock.MatchedBy(func(hook fx.Hook) bool {
						return hook.OnStop(t.Context()) == nil
					}),
				)
			},
			assert: func(t *testing.T, err error, propagator propagation.TextMapPropagator, logged string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, logged, "tracing initialized")
				assert.Contains(t, logged, "Tearing down OpenTelemetry tracer provider")

				// W3C trace context and baggage are used without OTEL_PROPAGATORS being set
				require.Len(t, propagator, 2)
				assert.Contains(t, propagator, propagation.TraceContext{})
				assert.Contains(t, propagator, propagation.Baggage{})
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			lcMock := &mockLifecycle{}
			tb := &testsupport.TestingLog{TB: t}
			logger := zerolog.New(zerolog.TestWriter{T: tb})

			tc.setupMocks(t, lcMock)

			// WHEN
			err := initializeOTEL(lcMock, &config.Configuration{Tracing: tc.conf}, logger)

			// THEN
			tc.assert(t, err, otel.GetTextMapPropagator(), tb.CollectedLog())
			lcMock.AssertExpectations(t)
		})
	}
}

func TestCreateResource(t *testing.T) {
	t.Parallel()

	// WHEN
	res, err := createResource()

	// THEN
	require.NoError(t, err)

	attrs := res.Set()
	name, ok := attrs.Value("service.name")
	require.True(t, ok)
	assert.Equal(t, "vitrine", name.AsString())

	_, ok = attrs.Value("service.version")
	assert.True(t, ok)
}
