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
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelValue(metric *dto.Metric, name string) string {
	for _, label := range metric.GetLabel() {
		if label.GetName() == name {
			return label.GetValue()
		}
	}

	return ""
}

func TestHandlerExecution(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		path   string
		method string
		assert func(t *testing.T, families map[string]*dto.MetricFamily)
	}{
		"filtered request": {
			path:   "/filtered",
			method: http.MethodGet,
			assert: func(t *testing.T, families map[string]*dto.MetricFamily) {
				t.Helper()

				assert.NotContains(t, families, "http_requests_total")
				assert.NotContains(t, families, "http_request_duration_seconds")
			},
		},
		"successful request": {
			path:   "/products",
			method: http.MethodGet,
			assert: func(t *testing.T, families map[string]*dto.MetricFamily) {
				t.Helper()

				require.Contains(t, families, "http_requests_total")
				requests := families["http_requests_total"].GetMetric()
				require.Len(t, requests, 1)
				assert.InDelta(t, 1.0, requests[0].GetCounter().GetValue(), 0.001)
				assert.Equal(t, "api", labelValue(requests[0], "service"))
				assert.Equal(t, http.MethodGet, labelValue(requests[0], "method"))
				assert.Equal(t, "200", labelValue(requests[0], "code"))

				require.Contains(t, families, "http_request_duration_seconds")
				durations := families["http_request_duration_seconds"].GetMetric()
				require.Len(t, durations, 1)
				assert.Equal(t, uint64(1), durations[0].GetHistogram().GetSampleCount())

				require.Contains(t, families, "http_requests_in_flight")
				assert.InDelta(t, 0.0, families["http_requests_in_flight"].GetMetric()[0].GetGauge().GetValue(), 0.001)
			},
		},
		"request with unknown method to unknown path": {
			path:   "/unknown",
			method: "FOO",
			assert: func(t *testing.T, families map[string]*dto.MetricFamily) {
				t.Helper()

				require.Contains(t, families, "http_requests_total")
				requests := families["http_requests_total"].GetMetric()
				require.Len(t, requests, 1)
				assert.Equal(t, "_OTHER", labelValue(requests[0], "method"))
				assert.Equal(t, "404", labelValue(requests[0], "code"))
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			reg := prometheus.NewRegistry()

			handler := alice.New(
				New(
					WithRegisterer(reg),
					WithServiceName("api"),
					WithOperationFilter(func(req *http.Request) bool { return req.URL.Path != "/filtered" }),
				),
			).ThenFunc(func(rw http.ResponseWriter, req *http.Request) {
				switch req.URL.Path {
				case "/products", "/filtered":
					rw.WriteHeader(http.StatusOK)
				default:
					rw.WriteHeader(http.StatusNotFound)
				}
			})

			// WHEN
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tc.method, tc.path, nil))

			// THEN
			gathered, err := reg.Gather()
			require.NoError(t, err)

			families := make(map[string]*dto.MetricFamily, len(gathered))
			for _, family := range gathered {
				families[family.GetName()] = family
			}

			tc.assert(t, families)
		})
	}
}
