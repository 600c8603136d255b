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
	"reflect"
)

func mergeInto(src, dest map[string]any) error {
	for key, val := range src {
		dest[key] = merge(dest[key], val)
	}

	return nil
}

// merge combines maps by key and slices by index. Any other value of src replaces the one
// of dest, as do values of differing types.
func merge(dest, src any) any {
	if dest == nil {
		return src
	}

	if src == nil {
		return dest
	}

	if reflect.TypeOf(dest) != reflect.TypeOf(src) {
		return src
	}

	switch srcVal := src.(type) {
	case map[string]any:
		destVal := dest.(map[string]any) // nolint: forcetypeassert

		for key, val := range srcVal {
			destVal[key] = merge(destVal[key], val)
		}

		return destVal
	case []any:
		destVal := dest.([]any) // nolint: forcetypeassert
		if len(destVal) < len(srcVal) {
			grown := make([]any, len(srcVal))
			copy(grown, destVal)
			destVal = grown
		}

		for idx, val := range srcVal {
			destVal[idx] = merge(destVal[idx], val)
		}

		return destVal
	default:
		return src
	}
}
