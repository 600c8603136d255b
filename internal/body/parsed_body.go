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
	"bytes"
	"errors"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/errorchain"
)

var (
	errInvalidUTF8  = errors.New("body is not valid UTF-8")
	errInvalidJSON  = errors.New("body is not a single valid JSON value")
)

type Kind int

const (
	KindEmpty Kind = iota
	KindValue
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindValue:
		return "value"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// ParsedBody is the outcome of parsing a request body. It is either empty, holds a decoded
// JSON value, or is malformed. A malformed body carries the reason, but never a value.
type ParsedBody struct {
	kind  Kind
	value any
	cause error
}

func Empty() ParsedBody { return ParsedBody{kind: KindEmpty} }

func Value(val any) ParsedBody { return ParsedBody{kind: KindValue, value: val} }

func Malformed(cause error) ParsedBody {
	return ParsedBody{
		kind:  KindMalformed,
		cause: errorchain.New(vitrine.ErrMalformedBody).CausedBy(cause),
	}
}

func (b ParsedBody) Kind() Kind { return b.kind }

// Value returns the decoded JSON value. It is nil unless the kind is KindValue.
func (b ParsedBody) Value() any { return b.value }

// Cause returns why the body is malformed. It is nil unless the kind is KindMalformed.
func (b ParsedBody) Cause() error { return b.cause }

// MarshalJSON renders the decoded value. Empty and malformed bodies render as null.
func (b ParsedBody) MarshalJSON() ([]byte, error) {
	if b.kind != KindValue {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(b.value); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Parse decodes raw body bytes. Only a single strict JSON value, optionally surrounded by
// whitespace, is accepted. Numbers are kept as json.Number to not lose precision.
func Parse(data []byte) ParsedBody {
	if len(data) == 0 {
		return Empty()
	}

	if !utf8.Valid(data) {
		return Malformed(errInvalidUTF8)
	}

	if !gjson.ValidBytes(data) {
		return Malformed(syntaxError(data))
	}

	var val any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&val); err != nil {
		return Malformed(err)
	}

	return Value(val)
}

func syntaxError(data []byte) error {
	var val any

	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}

	return errInvalidJSON
}
