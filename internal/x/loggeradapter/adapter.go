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

package loggeradapter

import (
	"log"
	"strings"

	"github.com/rs/zerolog"
)

type writer struct {
	l zerolog.Logger
}

func (w writer) Write(p []byte) (int, error) {
	w.l.Warn().Msg(strings.TrimSpace(string(p)))

	return len(p), nil
}

// NewStdLogger creates a standard library logger, which forwards everything to the given
// logger with warn level. Used for errors reported by http.Server.
func NewStdLogger(logger zerolog.Logger) *log.Logger {
	return log.New(writer{l: logger}, "", 0)
}
