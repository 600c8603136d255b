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
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"

	"github.com/vitrine-io/vitrine/internal/body"
)

const (
	defaultServePort      = 3333
	defaultManagementPort = 3334

	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 2 * time.Minute

	defaultHeaderBufferLimit = 4 * bytesize.KB
	defaultMaxBodySize       = 1 * bytesize.MB
	defaultBodyChunkSize     = 4 * bytesize.KB
	defaultBodyReadTimeout   = 5 * time.Second
)

func defaultConfig() Configuration {
	return Configuration{
		Log: LoggingConfig{
			Level:  zerolog.ErrorLevel,
			Format: LogTextFormat,
		},
		Serve: ServeConfig{
			Port: defaultServePort,
			Timeout: Timeout{
				Read:  defaultReadTimeout,
				Write: defaultWriteTimeout,
				Idle:  defaultIdleTimeout,
			},
			BufferLimit: BufferLimit{
				Read: defaultHeaderBufferLimit,
			},
			Body: BodyConfig{
				MaxSize:     defaultMaxBodySize,
				ReadTimeout: defaultBodyReadTimeout,
				ChunkSize:   defaultBodyChunkSize,
				Policy:      body.PolicyLenient,
			},
		},
		Management: ManagementConfig{
			Port: defaultManagementPort,
			Timeout: Timeout{
				Read:  defaultReadTimeout,
				Write: defaultWriteTimeout,
				Idle:  defaultIdleTimeout,
			},
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
		Tracing: TracingConfig{
			SpanProcessorType: SpanProcessorBatch,
		},
	}
}
