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

package request

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vitrine-io/vitrine/internal/body"
	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/errorchain"
)

// Context is the state of a single request, from the moment it has been received until its
// response has been sent. It is owned by the goroutine serving the request.
type Context struct {
	ctx       context.Context //nolint:containedctx
	method    string
	path      string
	header    http.Header
	rw        http.ResponseWriter
	body      body.ParsedBody
	stage     Stage
	responded bool
}

func New(rw http.ResponseWriter, req *http.Request) *Context {
	return &Context{
		ctx:    req.Context(),
		method: req.Method,
		path:   req.URL.Path,
		header: req.Header,
		rw:     rw,
		stage:  StageReceived,
	}
}

func (c *Context) Context() context.Context { return c.ctx }
func (c *Context) Method() string           { return c.method }
func (c *Context) Path() string             { return c.path }
func (c *Context) Header() http.Header      { return c.header }
func (c *Context) Body() body.ParsedBody    { return c.body }
func (c *Context) Stage() Stage             { return c.stage }
func (c *Context) Responded() bool          { return c.responded }

// ResponseHeader gives access to the headers to be sent. Changes have no effect after Respond.
func (c *Context) ResponseHeader() http.Header { return c.rw.Header() }

// AttachBody sets the parsed body. It is only allowed once, before the request is routed.
func (c *Context) AttachBody(pb body.ParsedBody) error {
	if c.stage != StageReceived {
		return errorchain.NewWithMessagef(vitrine.ErrInternal,
			"body can not be attached in stage %s", c.stage)
	}

	c.body = pb

	return c.Advance(StageBodyIngested)
}

// Advance moves the request to the next stage. Stages can neither be skipped nor repeated.
func (c *Context) Advance(next Stage) error {
	if next != c.stage+1 {
		return errorchain.NewWithMessagef(vitrine.ErrInternal,
			"invalid stage transition from %s to %s", c.stage, next)
	}

	zerolog.Ctx(c.ctx).Trace().
		Str("_from", c.stage.String()).
		Str("_to", next.String()).
		Msg("Request stage changed")

	c.stage = next

	return nil
}

// Respond writes the status code and the payload. A request can be responded only once.
func (c *Context) Respond(code int, payload []byte) error {
	if c.responded {
		return errorchain.NewWithMessage(vitrine.ErrInternal, "response has already been sent")
	}

	c.responded = true

	c.rw.WriteHeader(code)

	if len(payload) == 0 {
		return nil
	}

	if _, err := c.rw.Write(payload); err != nil {
		return errorchain.NewWithMessage(vitrine.ErrInternal, "failed writing response").CausedBy(err)
	}

	return nil
}
