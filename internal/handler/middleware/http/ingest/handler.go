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

package ingest

import (
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/vitrine-io/vitrine/internal/accesscontext"
	"github.com/vitrine-io/vitrine/internal/body"
	"github.com/vitrine-io/vitrine/internal/handler/middleware/http/errorhandler"
	"github.com/vitrine-io/vitrine/internal/handler/request"
	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/errorchain"
)

type countingReader struct {
	r io.Reader
	n atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))

	return n, err
}

// New reads the request body with the given ingestor before any downstream handler runs and
// makes the outcome available via request.ParsedBodyFrom. Bodies which can not be read
// completely are answered via the error handler. If the client went away, the handler is
// aborted without a response.
func New(ingestor body.Ingestor, eh errorhandler.ErrorHandler, options ...Option) func(http.Handler) http.Handler {
	conf := opts{}
	for _, opt := range options {
		opt(&conf)
	}

	mtr := newMetrics(conf.registerer)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			ctx := req.Context()
			logger := zerolog.Ctx(ctx)

			if req.ContentLength > ingestor.MaxSize() {
				mtr.observeOutcome(outcomeTooLarge)
				eh.HandleError(rw, req, errorchain.NewWithMessagef(vitrine.ErrBodyTooLarge,
					"announced body size of %d bytes exceeds the limit of %d bytes",
					req.ContentLength, ingestor.MaxSize()))

				return
			}

			rc := http.NewResponseController(rw)
			if conf.readTimeout > 0 {
				if err := rc.SetReadDeadline(time.Now().Add(conf.readTimeout)); err != nil {
					logger.Trace().Err(err).Msg("Read deadline could not be set")
				}
			}

			src := &countingReader{r: http.MaxBytesReader(rw, req.Body, ingestor.MaxSize())}

			var reader io.Reader = src
			if req.Body == nil || req.Body == http.NoBody {
				reader = nil
			}

			parsed, err := ingestor.Ingest(ctx, reader)
			if err != nil {
				// the unread rest of the body must not be drained before the error response is sent
				_ = rc.SetReadDeadline(time.Now())
				rw.Header().Set("Connection", "close")

				handleIngestionError(rw, req, eh, mtr, err)

				return
			}

			if conf.readTimeout > 0 {
				_ = rc.SetReadDeadline(time.Time{})
			}

			mtr.observeOutcome(parsed.Kind().String())
			mtr.observeSize(src.n.Load())

			accesscontext.SetBodyKind(ctx, parsed.Kind().String())

			logger.Trace().
				Str("_body_kind", parsed.Kind().String()).
				Int64("_body_size", src.n.Load()).
				Msg("Request body ingested")

			next.ServeHTTP(rw, req.WithContext(request.WithParsedBody(ctx, parsed)))
		})
	}
}

func handleIngestionError(
	rw http.ResponseWriter, req *http.Request, eh errorhandler.ErrorHandler, mtr *metrics, err error,
) {
	switch {
	case errors.Is(err, vitrine.ErrBodyTooLarge):
		mtr.observeOutcome(outcomeTooLarge)
	case errors.Is(err, vitrine.ErrStreamTimeout):
		mtr.observeOutcome(outcomeTimeout)
	case errors.Is(err, vitrine.ErrConnectionAborted):
		mtr.observeOutcome(outcomeAborted)
		accesscontext.SetError(req.Context(), err)
		zerolog.Ctx(req.Context()).Debug().Err(err).Msg("Request aborted while reading the body")

		panic(http.ErrAbortHandler)
	}

	eh.HandleError(rw, req, err)
}
