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

package products

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/vitrine-io/vitrine/internal/accesscontext"
	"github.com/vitrine-io/vitrine/internal/body"
	"github.com/vitrine-io/vitrine/internal/handler/request"
	"github.com/vitrine-io/vitrine/internal/handler/router"
	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/errorchain"
)

const (
	path        = "/products"
	listMessage = "Lista de produtos!"
)

// Routes returns the products API routes in the order they are looked up.
func Routes(policy body.Policy) []router.RouteEntry {
	return []router.RouteEntry{
		{Method: http.MethodGet, Path: path, Handler: router.HandlerFunc(list)},
		{Method: http.MethodPost, Path: path, Handler: &createHandler{policy: policy}},
	}
}

// list responds with a fixed text. The content type set by the header policy is kept.
func list(rc *request.Context) error {
	return rc.Respond(http.StatusOK, []byte(listMessage))
}

type createHandler struct {
	policy body.Policy
}

// Handle echoes the received body.
func (h *createHandler) Handle(rc *request.Context) error {
	pb := rc.Body()

	if h.policy == body.PolicyStrict && pb.Kind() != body.KindValue {
		return h.reject(rc, pb)
	}

	data, err := pb.MarshalJSON()
	if err != nil {
		return errorchain.NewWithMessage(vitrine.ErrInternal, "failed to serialize body").CausedBy(err)
	}

	return rc.Respond(http.StatusCreated, data)
}

func (h *createHandler) reject(rc *request.Context, pb body.ParsedBody) error {
	var err error

	if pb.Kind() == body.KindMalformed {
		err = pb.Cause()
	} else {
		err = errorchain.NewWithMessage(vitrine.ErrArgument, "request body is required")
	}

	accesscontext.SetError(rc.Context(), err)

	payload, mErr := json.Marshal(err)
	if mErr != nil {
		return errorchain.NewWithMessage(vitrine.ErrInternal, "failed to serialize error").CausedBy(mErr)
	}

	rc.ResponseHeader().Set("Content-Type", "application/json")

	return rc.Respond(http.StatusBadRequest, payload)
}
