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
	"bytes"
	"os"

	"github.com/drone/envsubst/v2"
	"github.com/knadh/koanf/maps"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/errorchain"
	"github.com/vitrine-io/vitrine/schema"
)

const schemaURL = "config.schema.json"

// ValidateConfig checks the given yaml file against the configuration JSON schema.
func ValidateConfig(configPath string) error {
	contents, err := os.ReadFile(configPath)
	if err != nil {
		return errorchain.NewWithMessage(vitrine.ErrConfiguration, "could not read config file").
			CausedBy(err)
	}

	if len(bytes.TrimSpace(contents)) == 0 {
		return errorchain.NewWithMessage(vitrine.ErrConfiguration, "config file is empty")
	}

	content, err := envsubst.EvalEnv(string(contents))
	if err != nil {
		return errorchain.NewWithMessage(vitrine.ErrConfiguration,
			"substitution of environment variables failed").CausedBy(err)
	}

	var conf map[string]any

	if err = yaml.Unmarshal([]byte(content), &conf); err != nil {
		return errorchain.NewWithMessage(vitrine.ErrConfiguration, "failed to parse config file").
			CausedBy(err)
	}

	compiledSchema, err := compileSchema()
	if err != nil {
		return errorchain.NewWithMessage(vitrine.ErrConfiguration, "failed to compile JSON schema").
			CausedBy(err)
	}

	maps.IntfaceKeysToStrings(conf)

	if err = compiledSchema.Validate(conf); err != nil {
		return errorchain.New(vitrine.ErrConfiguration).CausedBy(err)
	}

	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	configSchema, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema.ConfigSchema))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(schemaURL, configSchema); err != nil {
		return nil, err
	}

	return compiler.Compile(schemaURL)
}
