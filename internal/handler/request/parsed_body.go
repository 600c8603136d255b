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

package request

import (
	"context"

	"github.com/vitrine-io/vitrine/internal/body"
)

type parsedBodyKey struct{}

func WithParsedBody(ctx context.Context, pb body.ParsedBody) context.Context {
	return context.WithValue(ctx, parsedBodyKey{}, pb)
}

func ParsedBodyFrom(ctx context.Context) (body.ParsedBody, bool) {
	pb, ok := ctx.Value(parsedBodyKey{}).(body.ParsedBody)

	return pb, ok
}
