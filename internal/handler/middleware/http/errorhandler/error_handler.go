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

package errorhandler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vitrine-io/vitrine/internal/accesscontext"
	"github.com/vitrine-io/vitrine/internal/vitrine"
)

type ErrorHandler interface {
	HandleError(rw http.ResponseWriter, req *http.Request, err error)
}

func New(options ...Option) ErrorHandler {
	conf := defaultOptions()

	for _, opt := range options {
		opt(conf)
	}

	return &errorHandler{opts: conf}
}

type errorHandler struct {
	*opts
}

func (h *errorHandler) HandleError(rw http.ResponseWriter, req *http.Request, err error) {
	ctx := req.Context()

	class := classify(err)
	if errors.Is(class, vitrine.ErrInternal) {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Internal error occurred")
	}

	writeError(rw, req, h.codes[class], err, h.verboseErrors)

	accesscontext.SetError(ctx, err)
}
