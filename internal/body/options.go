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

package body

import (
	"time"

	"github.com/inhies/go-bytesize"
)

const (
	defaultMaxSize     = bytesize.MB
	defaultChunkSize   = 4 * bytesize.KB
	defaultReadTimeout = 5 * time.Second
)

type opts struct {
	maxSize     int64
	chunkSize   int
	readTimeout time.Duration
}

type Option func(*opts)

func WithMaxSize(size bytesize.ByteSize) Option {
	return func(o *opts) {
		if size > 0 {
			o.maxSize = int64(size)
		}
	}
}

func WithChunkSize(size bytesize.ByteSize) Option {
	return func(o *opts) {
		if size > 0 {
			o.chunkSize = int(size)
		}
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(o *opts) {
		if timeout > 0 {
			o.readTimeout = timeout
		}
	}
}

func defaultOptions() opts {
	return opts{
		maxSize:     int64(defaultMaxSize),
		chunkSize:   int(defaultChunkSize),
		readTimeout: defaultReadTimeout,
	}
}
