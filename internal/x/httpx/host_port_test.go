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

package httpx

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPFromHostPort(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		hostPort string
		expIP    string
	}{
		"ipv4 with port": {hostPort: "192.168.2.1:8080", expIP: "192.168.2.1"},
		"ipv6 with port": {hostPort: "[fe80::1]:8080", expIP: "fe80::1"},
		"without port":   {hostPort: "192.168.2.1", expIP: ""},
		"empty":          {hostPort: "", expIP: ""},
	} {
		t.Run(uc, func(t *testing.T) {
			assert.Equal(t, tc.expIP, IPFromHostPort(tc.hostPort))
		})
	}
}

func TestScheme(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	assert.Equal(t, "http", Scheme(req))

	req.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https", Scheme(req))
}
