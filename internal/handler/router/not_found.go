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
	"net/http"

	"github.com/vitrine-io/vitrine/internal/handler/request"
)

const notFoundMessage = "Rota não encontrada!"

// NotFound is the terminal handler used if no route matches.
func NotFound() Handler {
	return HandlerFunc(func(rc *request.Context) error {
		rc.ResponseHeader().Set("Content-Type", "text/plain; charset=utf-8")

		return rc.Respond(http.StatusNotFound, []byte(notFoundMessage))
	})
}
