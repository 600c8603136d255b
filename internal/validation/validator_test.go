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

package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type evenValidator struct{}

func (evenValidator) Tag() string { return "even" }

func (evenValidator) Validate(fl validator.FieldLevel) bool { return fl.Field().Int()%2 == 0 }

func (evenValidator) MessageTemplate() string { return "{0} must be even, but is {1}" }

func TestValidatorValidateStruct(t *testing.T) {
	t.Parallel()

	type nested struct {
		Port int `koanf:"port" validate:"gte=1,lte=65535"`
	}

	type testStruct struct {
		Name   string `koanf:"name,string" validate:"required"`
		Count  int    `validate:"even"`
		Nested nested `koanf:"nested"`
	}

	v, err := NewValidator(WithTagValidator(evenValidator{}))
	require.NoError(t, err)

	for uc, tc := range map[string]struct {
		value  testStruct
		expErr string
	}{
		"valid": {
			value: testStruct{Name: "foo", Count: 2, Nested: nested{Port: 3333}},
		},
		"missing required field": {
			value:  testStruct{Count: 2, Nested: nested{Port: 3333}},
			expErr: "'name' is a required field",
		},
		"custom tag violated": {
			value:  testStruct{Name: "foo", Count: 3, Nested: nested{Port: 3333}},
			expErr: "'Count' must be even, but is 3",
		},
		"several violations": {
			value:  testStruct{Count: 2, Nested: nested{Port: 0}},
			expErr: "'name' is a required field, 'port' must be 1 or greater",
		},
	} {
		t.Run(uc, func(t *testing.T) {
			err := v.ValidateStruct(tc.value)

			if len(tc.expErr) == 0 {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tc.expErr, err.Error())
			}
		})
	}
}
