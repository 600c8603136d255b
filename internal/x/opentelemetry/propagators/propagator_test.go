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

package propagators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	datadog "github.com/tonglil/opentelemetry-go-datadog-propagator"
	"go.opentelemetry.io/otel/propagation"
)

func TestNew(t *testing.T) {
	for uc, tc := range map[string]struct {
		env    string
		assert func(t *testing.T, propagator propagation.TextMapPropagator)
	}{
		"defaults": {
			assert: func(t *testing.T, propagator propagation.TextMapPropagator) {
				t.Helper()

				assert.ElementsMatch(t, []string{"traceparent", "tracestate", "baggage"}, propagator.Fields())
			},
		},
		"datadog": {
			env: "datadog",
			assert: func(t *testing.T, propagator propagation.TextMapPropagator) {
				t.Helper()

				assert.IsType(t, datadog.Propagator{}, propagator)
			},
		},
		"datadog and tracecontext": {
			env: "tracecontext,datadog",
			assert: func(t *testing.T, propagator propagation.TextMapPropagator) {
				t.Helper()

				assert.Len(t, propagator, 2)
				assert.Contains(t, propagator, datadog.Propagator{})
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			if len(tc.env) != 0 {
				t.Setenv("OTEL_PROPAGATORS", tc.env)
			}

			// WHEN
			propagator := New()

			// THEN
			tc.assert(t, propagator)
		})
	}
}
