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
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/errorchain"
)

const maxSliceIndex = 1024

// EnvAlias describes the configuration key a plain environment variable is mapped to.
// If set, Suffix is appended to the value, e.g. to add a unit.
type EnvAlias struct {
	Key    string
	Suffix string
}

// toRealType lets the yaml parser guess the type of the given value.
func toRealType(val string) any {
	var parsed map[string]any

	yaml.Unmarshal([]byte("val: "+val), &parsed) // nolint: errcheck

	return parsed["val"]
}

// normalizeKey converts the name of an environment variable into a configuration path. A single
// underscore separates levels, a double underscore stands for a literal underscore.
func normalizeKey(name, prefix string) []string {
	tmp := strings.ToLower(strings.TrimPrefix(name, prefix))
	tmp = strings.ReplaceAll(tmp, "__", "\x00")

	parts := strings.Split(tmp, "_")
	for idx, part := range parts {
		parts[idx] = strings.ReplaceAll(part, "\x00", "_")
	}

	return parts
}

// insert sets val under the given path. Numeric path elements address slice entries.
func insert(node any, path []string, val any) any {
	if len(path) == 0 {
		return val
	}

	if idx, err := strconv.Atoi(path[0]); err == nil && idx >= 0 && idx < maxSliceIndex {
		slice, _ := node.([]any)
		if len(slice) <= idx {
			grown := make([]any, idx+1)
			copy(grown, slice)
			slice = grown
		}

		slice[idx] = insert(slice[idx], path[1:], val)

		return slice
	}

	obj, ok := node.(map[string]any)
	if !ok {
		obj = make(map[string]any)
	}

	obj[path[0]] = insert(obj[path[0]], path[1:], val)

	return obj
}

func koanfFromEnv(prefix string) (*koanf.Koanf, error) {
	provider := env.Provider("", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			if len(strings.TrimPrefix(key, prefix)) == 0 {
				return "", nil
			}

			return key, val
		},
	})

	vars, err := provider.Read()
	if err != nil {
		return nil, errorchain.NewWithMessage(vitrine.ErrConfiguration,
			"failed to read environment variables").CausedBy(err)
	}

	var tree any = map[string]any{}

	for name, val := range vars {
		value, _ := val.(string)
		tree = insert(tree, normalizeKey(name, prefix), toRealType(value))
	}

	return koanfFromMap(tree)
}

func koanfFromEnvAliases(aliases map[string]EnvAlias) (*koanf.Koanf, error) {
	provider := env.Provider(".", env.Opt{
		TransformFunc: func(key, val string) (string, any) {
			alias, ok := aliases[key]
			if !ok || len(val) == 0 {
				return "", nil
			}

			return alias.Key, toRealType(val + alias.Suffix)
		},
	})

	vars, err := provider.Read()
	if err != nil {
		return nil, errorchain.NewWithMessage(vitrine.ErrConfiguration,
			"failed to read environment variables").CausedBy(err)
	}

	return koanfFromMap(vars)
}

func koanfFromMap(values any) (*koanf.Koanf, error) {
	parser := koanf.New(".")

	obj, _ := values.(map[string]any)
	if err := parser.Load(confmap.Provider(obj, ""), nil); err != nil {
		return nil, errorchain.NewWithMessage(vitrine.ErrConfiguration,
			"failed to parse environment variables to config").CausedBy(err)
	}

	return parser, nil
}
