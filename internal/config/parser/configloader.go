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

package parser

import (
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/errorchain"
)

type ConfigLoader interface {
	Load(config any) error
}

func New(options ...Option) ConfigLoader {
	loader := &configLoader{
		o: opts{
			decodeHooks: []mapstructure.DecodeHookFunc{
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			},
		},
	}

	for _, opt := range options {
		opt(&loader.o)
	}

	return loader
}

type configLoader struct {
	o opts
}

// Load fills config, which must be a pointer to a struct holding the defaults, from the
// configured yaml file, the aliased environment variables and the prefixed environment
// variables. Later sources override earlier ones.
func (c *configLoader) Load(config any) error {
	if len(c.o.configFile) != 0 {
		if _, err := os.Stat(c.o.configFile); err != nil {
			return errorchain.NewWithMessagef(vitrine.ErrConfiguration,
				"config file %s is not accessible", c.o.configFile).CausedBy(err)
		}

		if c.o.validate != nil {
			if err := c.o.validate(c.o.configFile); err != nil {
				return err
			}
		}
	}

	parser, err := koanfFromStruct(config)
	if err != nil {
		return err
	}

	sources := make([]func() (*koanf.Koanf, error), 0, 3) //nolint:mnd
	if len(c.o.configFile) != 0 {
		sources = append(sources, func() (*koanf.Koanf, error) { return koanfFromYaml(c.o.configFile) })
	}

	sources = append(sources,
		func() (*koanf.Koanf, error) { return koanfFromEnvAliases(c.o.envAliases) },
		func() (*koanf.Koanf, error) { return koanfFromEnv(c.o.envPrefix) },
	)

	for _, load := range sources {
		konf, err := load()
		if err != nil {
			return err
		}

		if err = parser.Load(confmap.Provider(konf.Raw(), ""), nil, koanf.WithMergeFunc(mergeInto)); err != nil {
			return errorchain.NewWithMessage(vitrine.ErrConfiguration, "failed to merge configuration").
				CausedBy(err)
		}
	}

	if err = parser.UnmarshalWithConf("", config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(c.o.decodeHooks...),
			Result:           config,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return errorchain.NewWithMessage(vitrine.ErrConfiguration, "failed to decode configuration").
			CausedBy(err)
	}

	return nil
}
