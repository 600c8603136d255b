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

package config

import (
	"github.com/vitrine-io/vitrine/internal/config/parser"
	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/errorchain"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type StructValidator interface {
	ValidateStruct(s any) error
}

type Configuration struct {
	Log        LoggingConfig    `koanf:"log"`
	Serve      ServeConfig      `koanf:"serve"`
	Management ManagementConfig `koanf:"management"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Tracing    TracingConfig    `koanf:"tracing"`
}

// NewConfiguration loads the configuration from the given file and the environment. Settings
// not present there keep their default values.
func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	validator StructValidator,
) (*Configuration, error) {
	result := defaultConfig()

	err := parser.New(
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(byteSizeDecodeHookFunc),
		parser.WithDecodeHookFunc(bodyPolicyDecodeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithEnvAlias("PORT", parser.EnvAlias{Key: "serve.port"}),
		parser.WithEnvAlias("MAX_BODY_BYTES", parser.EnvAlias{Key: "serve.body.max_size"}),
		parser.WithEnvAlias("READ_TIMEOUT_MS", parser.EnvAlias{Key: "serve.body.read_timeout", Suffix: "ms"}),
		parser.WithConfigValidator(ValidateConfig),
	).Load(&result)
	if err != nil {
		return nil, errorchain.NewWithMessage(vitrine.ErrConfiguration, "failed loading config").CausedBy(err)
	}

	if err = validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(vitrine.ErrConfiguration, "invalid configuration").CausedBy(err)
	}

	return &result, nil
}
