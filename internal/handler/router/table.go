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
	"slices"
)

// Table is an ordered set of routes. It is built once and is never modified afterward,
// so it can be shared between requests without any synchronization.
type Table struct {
	entries  []RouteEntry
	notFound Handler
}

func NewTable(notFound Handler, entries ...RouteEntry) *Table {
	return &Table{
		entries:  slices.Clone(entries),
		notFound: notFound,
	}
}

// Lookup returns the handler of the first route matching method and path in declaration
// order. The not found handler is returned, if there is no such route.
func (t *Table) Lookup(method, path string) (Handler, string, bool) {
	for _, entry := range t.entries {
		if entry.Method == method && entry.Path == path {
			return entry.Handler, entry.String(), true
		}
	}

	return t.notFound, "", false
}

func (t *Table) Routes() []RouteEntry {
	return slices.Clone(t.entries)
}
