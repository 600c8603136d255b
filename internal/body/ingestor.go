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

package body

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"

	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/errorchain"
)

type Ingestor interface {
	// Ingest drains src and parses what has been read. Errors are only returned if the body
	// could not be read completely, that is, if it is too large, the read timed out, or the
	// connection went away. Undecodable content results in a malformed ParsedBody instead.
	Ingest(ctx context.Context, src io.Reader) (ParsedBody, error)

	// MaxSize returns the maximum accepted body size in bytes.
	MaxSize() int64
}

func NewIngestor(options ...Option) Ingestor {
	conf := defaultOptions()

	for _, opt := range options {
		opt(&conf)
	}

	return &ingestor{o: conf}
}

type ingestor struct {
	o opts
}

type drainResult struct {
	data []byte
	err  error
}

func (i *ingestor) MaxSize() int64 { return i.o.maxSize }

func (i *ingestor) Ingest(ctx context.Context, src io.Reader) (ParsedBody, error) {
	if src == nil || src == http.NoBody {
		return Empty(), nil
	}

	ctx, cancel := context.WithTimeout(ctx, i.o.readTimeout)
	defer cancel()

	// the drain runs separately so that a read blocking beyond the timeout can not block the caller
	result := make(chan drainResult, 1)

	go func() {
		data, err := i.drain(ctx, src)
		result <- drainResult{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return ParsedBody{}, contextError(ctx.Err())
	case res := <-result:
		if res.err != nil {
			return ParsedBody{}, res.err
		}

		return Parse(res.data), nil
	}
}

func (i *ingestor) drain(ctx context.Context, src io.Reader) ([]byte, error) {
	var buf bytes.Buffer

	chunk := make([]byte, i.o.chunkSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, contextError(err)
		}

		n, err := src.Read(chunk)
		if n > 0 {
			if int64(buf.Len())+int64(n) > i.o.maxSize {
				return nil, errorchain.NewWithMessagef(vitrine.ErrBodyTooLarge,
					"body exceeds the limit of %d bytes", i.o.maxSize)
			}

			buf.Write(chunk[:n])
		}

		if errors.Is(err, io.EOF) {
			return buf.Bytes(), nil
		}

		if err != nil {
			return nil, readError(err)
		}
	}
}

func contextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errorchain.NewWithMessage(vitrine.ErrStreamTimeout, "reading the body timed out").CausedBy(err)
	}

	return errorchain.NewWithMessage(vitrine.ErrConnectionAborted, "request has been canceled").CausedBy(err)
}

func readError(err error) error {
	var (
		netErr      net.Error
		maxBytesErr *http.MaxBytesError
	)

	switch {
	case errors.Is(err, os.ErrDeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()):
		return errorchain.NewWithMessage(vitrine.ErrStreamTimeout, "reading the body timed out").CausedBy(err)
	case errors.As(err, &maxBytesErr):
		return errorchain.NewWithMessagef(vitrine.ErrBodyTooLarge,
			"body exceeds the limit of %d bytes", maxBytesErr.Limit).CausedBy(err)
	default:
		return errorchain.NewWithMessage(vitrine.ErrConnectionAborted, "reading the body failed").CausedBy(err)
	}
}
