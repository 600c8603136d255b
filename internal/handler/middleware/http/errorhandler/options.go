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
	"github.com/vitrine-io/vitrine/internal/vitrine"
)

type opts struct {
	verboseErrors bool
	codes         map[error]int
}

type Option func(*opts)

func withCode(class error, code int) Option {
	return func(o *opts) {
		if code != 0 {
			o.codes[class] = code
		}
	}
}

func WithArgumentErrorCode(code int) Option { return withCode(vitrine.ErrArgument, code) }

func WithBodyTooLargeErrorCode(code int) Option { return withCode(vitrine.ErrBodyTooLarge, code) }

func WithStreamTimeoutErrorCode(code int) Option { return withCode(vitrine.ErrStreamTimeout, code) }

func WithInternalServerErrorCode(code int) Option { return withCode(vitrine.ErrInternal, code) }

func WithVerboseErrors(flag bool) Option {
	return func(o *opts) {
		o.verboseErrors = flag
	}
}
