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
	"github.com/vitrine-io/vitrine/internal/handler/request"
)

// Handler serves a single request. It must respond through the given context exactly once.
type Handler interface {
	Handle(rc *request.Context) error
}

type HandlerFunc func(rc *request.Context) error

func (f HandlerFunc) Handle(rc *request.Context) error { return f(rc) }

// RouteEntry is a single routing rule. Method and path are matched exactly.
type RouteEntry struct {
	Method  string
	Path    string
	Handler Handler
}

func (r RouteEntry) String() string { return r.Method + " " + r.Path }
