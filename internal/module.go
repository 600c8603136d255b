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

package internal

import (
	"go.uber.org/fx"

	"github.com/vitrine-io/vitrine/internal/handler/api"
	"github.com/vitrine-io/vitrine/internal/handler/management"
	"github.com/vitrine-io/vitrine/internal/prometheus"
	"github.com/vitrine-io/vitrine/internal/tracing"
)

// nolint
var Module = fx.Options(
	tracing.Module,
	prometheus.Module,
	management.Module,
	api.Module,
)
