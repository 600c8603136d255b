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
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedPolicy = errors.New("unsupported body policy")

// Policy defines how handlers requiring a body treat empty and malformed ones.
type Policy int

const (
	// PolicyLenient normalizes empty and malformed bodies to null.
	PolicyLenient Policy = iota
	// PolicyStrict rejects empty and malformed bodies.
	PolicyStrict
)

func (p Policy) String() string {
	switch p {
	case PolicyLenient:
		return "lenient"
	case PolicyStrict:
		return "strict"
	default:
		return "unknown"
	}
}

func ParsePolicy(value string) (Policy, error) {
	switch strings.ToLower(value) {
	case "", "lenient":
		return PolicyLenient, nil
	case "strict":
		return PolicyStrict, nil
	default:
		return PolicyLenient, fmt.Errorf("%w: %s", ErrUnsupportedPolicy, value)
	}
}
