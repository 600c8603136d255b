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
	"github.com/go-playground/validator/v10"

	"github.com/vitrine-io/vitrine/internal/body"
)

// BodyPolicyValidator accepts known body policies only.
type BodyPolicyValidator struct{}

func (BodyPolicyValidator) Tag() string { return "body_policy" }

func (BodyPolicyValidator) Validate(fl validator.FieldLevel) bool {
	policy, ok := fl.Field().Interface().(body.Policy)

	return ok && (policy == body.PolicyLenient || policy == body.PolicyStrict)
}

func (BodyPolicyValidator) MessageTemplate() string {
	return "{0} must be either lenient or strict"
}
