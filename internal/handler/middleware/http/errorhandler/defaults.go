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

	"github.com/vitrine-io/vitrine/internal/vitrine"
)

func defaultOptions() *opts {
	return &opts{
		codes: map[error]int{
			vitrine.ErrArgument:      http.StatusBadRequest,
			vitrine.ErrBodyTooLarge:  http.StatusRequestEntityTooLarge,
			vitrine.ErrStreamTimeout: http.StatusRequestTimeout,
			vitrine.ErrInternal:      http.StatusInternalServerError,
		},
	}
}

// classify reduces err to the error class its status code is configured for. A malformed
// body is an argument error. Everything not known is an internal error.
func classify(err error) error {
	switch {
	case errors.Is(err, vitrine.ErrBodyTooLarge):
		return vitrine.ErrBodyTooLarge
	case errors.Is(err, vitrine.ErrStreamTimeout):
		return vitrine.ErrStreamTimeout
	case errors.Is(err, vitrine.ErrArgument), errors.Is(err, vitrine.ErrMalformedBody):
		return vitrine.ErrArgument
	default:
		return vitrine.ErrInternal
	}
}
