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

package errorchain

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

type link struct {
	err  error
	msg  string
	next *link
}

type payload struct { //nolint:musttag
	XMLName xml.Name `json:"-"`
	Code    string   `json:"code"              xml:"code"`
	Message string   `json:"message,omitempty" xml:"message,omitempty"`
}

// ErrorChain links a sentinel error with the errors which caused it. The first element
// determines what errors.Is reports and how the chain is rendered to clients.
type ErrorChain struct { // nolint: errname
	first *link
	last  *link
}

func New(err error) *ErrorChain {
	return (&ErrorChain{}).append(err, "")
}

func NewWithMessage(err error, message string) *ErrorChain {
	return (&ErrorChain{}).append(err, message)
}

func NewWithMessagef(err error, format string, a ...any) *ErrorChain {
	return (&ErrorChain{}).append(err, fmt.Sprintf(format, a...))
}

func (ec *ErrorChain) CausedBy(err error) *ErrorChain {
	return ec.append(err, "")
}

func (ec *ErrorChain) Error() string {
	parts := make([]string, 0, ec.length())

	for l := ec.first; l != nil; l = l.next {
		if len(l.msg) == 0 {
			parts = append(parts, l.err.Error())
		} else {
			parts = append(parts, l.err.Error()+": "+l.msg)
		}
	}

	return strings.Join(parts, ": ")
}

func (ec *ErrorChain) Unwrap() error {
	if ec.first == nil || ec.first.next == nil {
		return nil
	}

	return &ErrorChain{first: ec.first.next, last: ec.last}
}

func (ec *ErrorChain) Is(target error) bool {
	if ec.first == nil {
		return false
	}

	return errors.Is(ec.first.err, target)
}

func (ec *ErrorChain) As(target any) bool {
	if ec.first == nil {
		return false
	}

	return errors.As(ec.first.err, target)
}

// Message returns the message attached to the head of the chain.
func (ec *ErrorChain) Message() string {
	if ec.first == nil {
		return ""
	}

	return ec.first.msg
}

func (ec *ErrorChain) MarshalJSON() ([]byte, error) {
	return json.Marshal(ec.payload())
}

func (ec *ErrorChain) MarshalXML(encoder *xml.Encoder, _ xml.StartElement) error {
	msg := ec.payload()
	msg.XMLName = xml.Name{Local: "error"}

	return encoder.Encode(msg)
}

func (ec *ErrorChain) String() string {
	if len(ec.first.msg) == 0 {
		return ec.first.err.Error()
	}

	return ec.first.err.Error() + ": " + ec.first.msg
}

func (ec *ErrorChain) payload() payload {
	return payload{
		Code:    strcase.ToLowerCamel(ec.first.err.Error()),
		Message: ec.first.msg,
	}
}

func (ec *ErrorChain) length() int {
	count := 0

	for l := ec.first; l != nil; l = l.next {
		count++
	}

	return count
}

func (ec *ErrorChain) append(err error, msg string) *ErrorChain {
	elem := &link{err: err, msg: msg}

	if ec.first == nil {
		ec.first = elem
		ec.last = elem

		return ec
	}

	ec.last.next = elem
	ec.last = elem

	return ec
}
