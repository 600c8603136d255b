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

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitrine-io/vitrine/cmd/flags"
)

func TestNewValidateCmd(t *testing.T) {
	t.Parallel()

	// WHEN
	cmd := newValidateCmd()

	// THEN
	assert.Equal(t, "validate", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	configFlag := cmd.PersistentFlags().Lookup(flags.Config)
	assert.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	envPrefixFlag := cmd.PersistentFlags().Lookup(flags.EnvironmentConfigPrefix)
	assert.NotNil(t, envPrefixFlag)
	assert.Equal(t, "VITRINECFG_", envPrefixFlag.DefValue)

	commands := cmd.Commands()
	assert.Len(t, commands, 1)
	assert.Contains(t, commands[0].Use, "config")
}

func TestRootCmdCommands(t *testing.T) {
	t.Parallel()

	// WHEN
	commands := RootCmd.Commands()

	// THEN
	uses := make([]string, 0, len(commands))
	for _, cmd := range commands {
		uses = append(uses, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"health", "serve", "validate"}, uses)
	assert.Equal(t, "vitrine", RootCmd.Use)
	assert.NotEmpty(t, RootCmd.Version)
}
