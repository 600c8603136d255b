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
	"fmt"
	"time"

	"github.com/inhies/go-bytesize"

	"github.com/vitrine-io/vitrine/internal/body"
)

type ServeConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"         validate:"gte=1,lte=65535"`
	Timeout     Timeout       `koanf:"timeout"`
	BufferLimit BufferLimit   `koanf:"buffer_limit"`
	Body        BodyConfig    `koanf:"body"`
	CORS        *CORS         `koanf:"cors,omitempty"`
	Respond     RespondConfig `koanf:"respond"`
}

func (c ServeConfig) Address() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

type Timeout struct {
	Read  time.Duration `koanf:"read,string"  validate:"gte=0"`
	Write time.Duration `koanf:"write,string" validate:"gte=0"`
	Idle  time.Duration `koanf:"idle,string"  validate:"gte=0"`
}

type BufferLimit struct {
	// Read limits the size of the request headers.
	Read bytesize.ByteSize `koanf:"read"`
}

type BodyConfig struct {
	MaxSize     bytesize.ByteSize `koanf:"max_size"            validate:"gt=0"`
	ReadTimeout time.Duration     `koanf:"read_timeout,string" validate:"gt=0"`
	ChunkSize   bytesize.ByteSize `koanf:"chunk_size"          validate:"gt=0"`
	Policy      body.Policy       `koanf:"policy,string"       validate:"body_policy"`
}

type CORS struct {
	AllowedOrigins   []string      `koanf:"allowed_origins"`
	AllowedMethods   []string      `koanf:"allowed_methods"`
	AllowedHeaders   []string      `koanf:"allowed_headers"`
	ExposedHeaders   []string      `koanf:"exposed_headers"`
	AllowCredentials bool          `koanf:"allow_credentials"`
	MaxAge           time.Duration `koanf:"max_age,string"`
}

type ResponseOverride struct {
	Code int `koanf:"code" validate:"omitempty,gte=100,lte=599"`
}

type RespondConfig struct {
	Verbose bool `koanf:"verbose"`
	With    struct {
		ArgumentError ResponseOverride `koanf:"argument_error"`
		BodyTooLarge  ResponseOverride `koanf:"body_too_large"`
		StreamTimeout ResponseOverride `koanf:"stream_timeout"`
		InternalError ResponseOverride `koanf:"internal_error"`
	} `koanf:"with"`
}
