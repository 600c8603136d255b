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

package listener

import (
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/testsupport"
)

func TestCreateNewListener(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		network string
		address func(t *testing.T) string
		assert  func(t *testing.T, err error, ln net.Listener, address string)
	}{
		"creation fails for unknown network": {
			network: "foo",
			address: func(t *testing.T) string {
				t.Helper()

				return "127.0.0.1:0"
			},
			assert: func(t *testing.T, err error, _ net.Listener, _ string) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, vitrine.ErrInternal)
				assert.Contains(t, err.Error(), "failed creating listener")
			},
		},
		"creation fails for address in use": {
			network: "tcp",
			address: func(t *testing.T) string {
				t.Helper()

				ln, err := net.Listen("tcp", "127.0.0.1:0")
				require.NoError(t, err)
				t.Cleanup(func() { _ = ln.Close() })

				return ln.Addr().String()
			},
			assert: func(t *testing.T, err error, _ net.Listener, _ string) {
				t.Helper()

				require.ErrorIs(t, err, vitrine.ErrInternal)
			},
		},
		"successfully created": {
			network: "tcp",
			address: func(t *testing.T) string {
				t.Helper()

				port, err := testsupport.GetFreePort()
				require.NoError(t, err)

				return fmt.Sprintf("127.0.0.1:%d", port)
			},
			assert: func(t *testing.T, err error, ln net.Listener, address string) {
				t.Helper()

				require.NoError(t, err)
				require.NotNil(t, ln)
				assert.Equal(t, address, ln.Addr().String())
				require.NoError(t, ln.Close())
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			address := tc.address(t)

			// WHEN
			ln, err := New(t.Context(), tc.network, address)

			// THEN
			tc.assert(t, err, ln, address)
		})
	}
}
