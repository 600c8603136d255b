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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		dest any
		src  any
		exp  any
	}{
		"nil destination": {src: "foo", exp: "foo"},
		"nil source":      {dest: "foo", exp: "foo"},
		"primitive":       {dest: 1, src: 2, exp: 2},
		"different types": {dest: map[string]any{"a": 1}, src: "foo", exp: "foo"},
		"maps": {
			dest: map[string]any{"a": 1, "b": map[string]any{"c": 2, "d": 3}},
			src:  map[string]any{"b": map[string]any{"c": 4}, "e": 5},
			exp:  map[string]any{"a": 1, "b": map[string]any{"c": 4, "d": 3}, "e": 5},
		},
		"slices": {
			dest: []any{map[string]any{"a": 1}, "b"},
			src:  []any{map[string]any{"c": 2}, nil, "d"},
			exp:  []any{map[string]any{"a": 1, "c": 2}, "b", "d"},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			assert.Equal(t, tc.exp, merge(tc.dest, tc.src))
		})
	}
}
