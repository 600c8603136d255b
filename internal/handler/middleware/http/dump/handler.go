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

package dump

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httputil"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/rs/zerolog"
)

// New writes the request head and the complete response to the trace log. The request
// body is not read here.
func New() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			logger := zerolog.Ctx(req.Context())

			if logger.GetLevel() != zerolog.TraceLevel {
				next.ServeHTTP(rw, req)

				return
			}

			if head, err := httputil.DumpRequest(req, false); err == nil {
				logger.Trace().Msgf("Request: %s", string(head))
			} else {
				logger.Trace().Err(err).Msg("Failed dumping request")
			}

			var (
				wroteHeader bool
				buffer      bytes.Buffer
				statusBuf   [3]byte
			)

			writeHead := func(code int) {
				if wroteHeader {
					return
				}

				writeStatusLine(&buffer, req.Proto, code, statusBuf[:])
				rw.Header().Write(&buffer) //nolint:errcheck
				buffer.WriteString("\r\n")

				wroteHeader = true
			}

			next.ServeHTTP(httpsnoop.Wrap(rw, httpsnoop.Hooks{
				WriteHeader: func(writeHeader httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
					return func(code int) {
						writeHead(code)
						writeHeader(code)
					}
				},
				Write: func(write httpsnoop.WriteFunc) httpsnoop.WriteFunc {
					return func(data []byte) (int, error) {
						writeHead(http.StatusOK)
						buffer.Write(data)

						return write(data)
					}
				},
			}), req)

			if wroteHeader {
				logger.Trace().Msgf("Response: %s", string(buffer.Bytes()))
			}
		})
	}
}

func writeStatusLine(bw *bytes.Buffer, proto string, code int, scratch []byte) {
	bw.WriteString(proto + " ")

	if text := http.StatusText(code); text != "" {
		bw.Write(strconv.AppendInt(scratch[:0], int64(code), 10)) //nolint:mnd
		bw.WriteByte(' ')
		bw.WriteString(text)
		bw.WriteString("\r\n")
	} else {
		fmt.Fprintf(bw, "%03d status code %d\r\n", code, code)
	}
}
