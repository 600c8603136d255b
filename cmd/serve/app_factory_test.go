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

package serve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/vitrine-io/vitrine/cmd/flags"
	"github.com/vitrine-io/vitrine/internal/config"
	"github.com/vitrine-io/vitrine/internal/vitrine"
)

func TestCreateApp(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		config string
		assert func(t *testing.T, err error, conf *config.Configuration)
	}{
		"without config file": {
			assert: func(t *testing.T, err error, conf *config.Configuration) {
				t.Helper()

				require.NoError(t, err)
				require.NotNil(t, conf)
				assert.Equal(t, 3333, conf.Serve.Port)
			},
		},
		"with valid config file": {
			config: "serve:\n  port: 8080\nlog:\n  level: debug\n",
			assert: func(t *testing.T, err error, conf *config.Configuration) {
				t.Helper()

				require.NoError(t, err)
				require.NotNil(t, conf)
				assert.Equal(t, 8080, conf.Serve.Port)
				assert.Equal(t, zerolog.DebugLevel, conf.Log.Level)
			},
		},
		"with invalid config file": {
			config: "serve:\n  port: foo\n",
			assert: func(t *testing.T, err error, _ *config.Configuration) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, vitrine.ErrConfiguration)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			cmd := &cobra.Command{Use: "serve"}
			flags.RegisterGlobalFlags(cmd)

			args := []string{"--" + flags.EnvironmentConfigPrefix, "VITRINEAPPTEST_"}

			if len(tc.config) != 0 {
				path := filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tc.config), 0o600))

				args = append(args, "--"+flags.Config, path)
			}

			require.NoError(t, cmd.ParseFlags(args))

			var conf *config.Configuration

			// WHEN
			app, err := createApp(cmd, fx.Invoke(func(cfg *config.Configuration, _ zerolog.Logger) {
				conf = cfg
			}))

			// THEN
			if err == nil {
				require.NotNil(t, app)
			}

			tc.assert(t, err, conf)
		})
	}
}
