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
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vitrine-io/vitrine/internal/accesscontext"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/errorhandler"
	"github.com/vitrine-io/vitrine/internal/handler/request"
	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/errorchain"
)

type dispatcher struct {
	table *Table
	eh    errorhandler.ErrorHandler
}

// NewHandler returns the http.Handler dispatching requests to the routes of the given table.
// It expects the parsed body to be present in the request context.
func NewHandler(table *Table, eh errorhandler.ErrorHandler) http.Handler {
	return &dispatcher{table: table, eh: eh}
}

func (d *dispatcher) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	rc := request.New(rw, req)

	pb, ok := request.ParsedBodyFrom(ctx)
	if !ok {
		d.eh.HandleError(rw, req,
			errorchain.NewWithMessage(vitrine.ErrInternal, "request body has not been ingested"))

		return
	}

	if err := rc.AttachBody(pb); err != nil {
		d.eh.HandleError(rw, req, err)

		return
	}

	handler, route, _ := d.table.Lookup(rc.Method(), rc.Path())
	accesscontext.SetRoute(ctx, route)

	if err := rc.Advance(request.StageRouted); err != nil {
		d.eh.HandleError(rw, req, err)

		return
	}

	err := handler.Handle(rc)

	if rc.Responded() {
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("Handler failed after the response has been sent")
			accesscontext.SetError(ctx, err)
		}

		d.finish(rc)

		return
	}

	if err == nil {
		err = errorchain.NewWithMessage(vitrine.ErrInternal, "handler did not respond")
	}

	d.eh.HandleError(rw, req, err)
}

func (d *dispatcher) finish(rc *request.Context) {
	for _, stage := range []request.Stage{request.StageHandlerExecuted, request.StageResponseSent} {
		if err := rc.Advance(stage); err != nil {
			zerolog.Ctx(rc.Context()).Error().Err(err).Msg("Failed to complete request")

			return
		}
	}
}
