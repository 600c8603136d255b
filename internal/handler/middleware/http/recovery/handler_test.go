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

package recovery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine-io/vitrine/internal/vitrine"
)

type errorHandlerFunc func(rw http.ResponseWriter, req *http.Request, err error)

func (f errorHandlerFunc) HandleError(rw http.ResponseWriter, req *http.Request, err error) {
	f(rw, req, err)
}

func TestHandlerExecution(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		handler http.HandlerFunc
		assert  func(t *testing.T, rec *httptest.ResponseRecorder, handledErr error)
	}{
		"no panic": {
			handler: func(rw http.ResponseWriter, _ *http.Request) { rw.WriteHeader(http.StatusOK) },
			assert: func(t *testing.T, rec *httptest.ResponseRecorder, handledErr error) {
				t.Helper()

				require.NoError(t, handledErr)
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		"panic with an error": {
			handler: func(http.ResponseWriter, *http.Request) { panic(errors.New("test error")) },
			assert: func(t *testing.T, _ *httptest.ResponseRecorder, handledErr error) {
				t.Helper()

				require.ErrorIs(t, handledErr, vitrine.ErrInternal)
				assert.Contains(t, handledErr.Error(), "test error")
			},
		},
		"panic with something else": {
			handler: func(http.ResponseWriter, *http.Request) { panic("boom") },
			assert: func(t *testing.T, _ *httptest.ResponseRecorder, handledErr error) {
				t.Helper()

				require.ErrorIs(t, handledErr, vitrine.ErrInternal)
				assert.Contains(t, handledErr.Error(), "boom")
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			var handledErr error

			eh := errorHandlerFunc(func(rw http.ResponseWriter, _ *http.Request, err error) {
				handledErr = err

				rw.WriteHeader(http.StatusInternalServerError)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/products", nil)

			// WHEN
			New(eh)(tc.handler).ServeHTTP(rec, req)

			// THEN
			tc.assert(t, rec, handledErr)
		})
	}
}

func TestAbortedHandlerIsPropagated(t *testing.T) {
	t.Parallel()

	// GIVEN
	eh := errorHandlerFunc(func(http.ResponseWriter, *http.Request, error) {
		t.Error("error handler must not be called")
	})

	handler := New(eh)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	// WHEN & THEN
	assert.PanicsWithError(t, http.ErrAbortHandler.Error(), func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/products", nil))
	})
}
