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

package headerpolicy

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerExecution(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		handler     http.HandlerFunc
		contentType string
	}{
		"handler keeps the default": {
			handler:     func(rw http.ResponseWriter, _ *http.Request) { rw.WriteHeader(http.StatusOK) },
			contentType: "application/json",
		},
		"handler overrides the default": {
			handler: func(rw http.ResponseWriter, _ *http.Request) {
				rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
				rw.WriteHeader(http.StatusNotFound)
			},
			contentType: "text/plain; charset=utf-8",
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			rec := httptest.NewRecorder()

			// WHEN
			New()(tc.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

			// THEN
			assert.Equal(t, tc.contentType, rec.Header().Get("Content-Type"))
		})
	}
}
