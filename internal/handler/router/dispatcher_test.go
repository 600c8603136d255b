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

package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine-io/vitrine/internal/accesscontext"
	"github.com/vitrine-io/vitrine/internal/body"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/errorhandler"
	"github.com/vitrine-io/vitrine/internal/handler/request"
	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/errorchain"
)

func TestDispatcherServeHTTP(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		method   string
		path     string
		body     *body.ParsedBody
		handler  func(t *testing.T) Handler
		expCode  int
		expBody  string
		expType  string
		expRoute string
		expErr   error
	}{
		"parsed body missing": {
			method: http.MethodGet,
			path:   "/products",
			handler: func(t *testing.T) Handler {
				t.Helper()

				return HandlerFunc(func(_ *request.Context) error {
					t.Fatal("should not have been called")

					return nil
				})
			},
			expCode: http.StatusInternalServerError,
			expErr:  vitrine.ErrInternal,
		},
		"matching route responds": {
			method: http.MethodPost,
			path:   "/products",
			body:   ptr(body.Parse([]byte(`{"name":"sapato"}`))),
			handler: func(t *testing.T) Handler {
				t.Helper()

				return HandlerFunc(func(rc *request.Context) error {
					assert.Equal(t, request.StageRouted, rc.Stage())
					assert.Equal(t, body.KindValue, rc.Body().Kind())

					data, err := rc.Body().MarshalJSON()
					require.NoError(t, err)

					return rc.Respond(http.StatusCreated, data)
				})
			},
			expCode:  http.StatusCreated,
			expBody:  `{"name":"sapato"}`,
			expRoute: "POST /products",
		},
		"no matching route": {
			method: http.MethodGet,
			path:   "/unknown",
			body:   ptr(body.Empty()),
			handler: func(t *testing.T) Handler {
				t.Helper()

				return HandlerFunc(func(_ *request.Context) error {
					t.Fatal("should not have been called")

					return nil
				})
			},
			expCode: http.StatusNotFound,
			expBody: "Rota não encontrada!",
			expType: "text/plain; charset=utf-8",
		},
		"handler does not respond": {
			method: http.MethodPost,
			path:   "/products",
			body:   ptr(body.Empty()),
			handler: func(t *testing.T) Handler {
				t.Helper()

				return HandlerFunc(func(_ *request.Context) error { return nil })
			},
			expCode:  http.StatusInternalServerError,
			expRoute: "POST /products",
			expErr:   vitrine.ErrInternal,
		},
		"handler fails without responding": {
			method: http.MethodPost,
			path:   "/products",
			body:   ptr(body.Empty()),
			handler: func(t *testing.T) Handler {
				t.Helper()

				return HandlerFunc(func(_ *request.Context) error {
					return errorchain.NewWithMessage(vitrine.ErrArgument, "body required")
				})
			},
			expCode:  http.StatusBadRequest,
			expRoute: "POST /products",
			expErr:   vitrine.ErrArgument,
		},
		"handler tries to respond twice": {
			method: http.MethodPost,
			path:   "/products",
			body:   ptr(body.Empty()),
			handler: func(t *testing.T) Handler {
				t.Helper()

				return HandlerFunc(func(rc *request.Context) error {
					require.NoError(t, rc.Respond(http.StatusCreated, []byte("null")))

					return rc.Respond(http.StatusOK, []byte("again"))
				})
			},
			expCode:  http.StatusCreated,
			expBody:  "null",
			expRoute: "POST /products",
			expErr:   vitrine.ErrInternal,
		},
		"handler fails after responding": {
			method: http.MethodPost,
			path:   "/products",
			body:   ptr(body.Empty()),
			handler: func(t *testing.T) Handler {
				t.Helper()

				return HandlerFunc(func(rc *request.Context) error {
					_ = rc.Respond(http.StatusCreated, nil)

					return errors.New("test error")
				})
			},
			expCode:  http.StatusCreated,
			expRoute: "POST /products",
			expErr:   errors.New("test error"),
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			table := NewTable(NotFound(), RouteEntry{
				Method:  http.MethodPost,
				Path:    "/products",
				Handler: tc.handler(t),
			})
			dispatcher := NewHandler(table, errorhandler.New())

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(""))
			ctx := accesscontext.New(req.Context())

			if tc.body != nil {
				ctx = request.WithParsedBody(ctx, *tc.body)
			}

			req = req.WithContext(ctx)
			rw := httptest.NewRecorder()

			// WHEN
			dispatcher.ServeHTTP(rw, req)

			// THEN
			assert.Equal(t, tc.expCode, rw.Code)
			assert.Equal(t, tc.expBody, rw.Body.String())
			assert.Equal(t, tc.expRoute, accesscontext.Route(ctx))

			if len(tc.expType) != 0 {
				assert.Equal(t, tc.expType, rw.Header().Get("Content-Type"))
			}

			if tc.expErr == nil {
				assert.NoError(t, accesscontext.Error(ctx))
			} else if errors.Is(tc.expErr, vitrine.ErrInternal) || errors.Is(tc.expErr, vitrine.ErrArgument) {
				assert.ErrorIs(t, accesscontext.Error(ctx), tc.expErr)
			} else {
				assert.EqualError(t, accesscontext.Error(ctx), tc.expErr.Error())
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
