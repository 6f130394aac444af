// Copyright 2021 Matrix Origin
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

// Package moerr defines the coded error values the vector core can raise.
package moerr

import "fmt"

// Code identifies one of the fixed set of failure kinds the core can raise.
type Code uint16

const (
	Ok Code = 0

	// ErrNullValue: get(i) on a null slot.
	ErrNullValue Code = 20101
	// ErrIndexOutOfBounds: set(i, ...) with i >= capacity on a non-safe setter.
	ErrIndexOutOfBounds Code = 20102
	// ErrInvalidArgument: bad holder, bad decimal precision/scale, negative capacity.
	ErrInvalidArgument Code = 20103
	// ErrOversizedAllocation: requested size exceeds the configured maximum.
	ErrOversizedAllocation Code = 20104
	// ErrOutOfMemory: the allocator refused the request.
	ErrOutOfMemory Code = 20105
	// ErrTypeMismatch: transferTo/copyFrom between different concrete vector types.
	ErrTypeMismatch Code = 20106
)

var codeNames = map[Code]string{
	ErrNullValue:           "NullValue",
	ErrIndexOutOfBounds:    "IndexOutOfBounds",
	ErrInvalidArgument:     "InvalidArgument",
	ErrOversizedAllocation: "OversizedAllocation",
	ErrOutOfMemory:         "OutOfMemory",
	ErrTypeMismatch:        "TypeMismatch",
}

// Error is the single error type the core produces. It carries a Code so
// callers can branch with errors.Is / As against a sentinel built from the
// same code, rather than string-matching messages.
type Error struct {
	Code  Code
	Msg   string
	cause error
}

func (e *Error) Error() string {
	name := codeNames[e.Code]
	if name == "" {
		name = "Unknown"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", name, e.Msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", name, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is supports errors.Is(err, target) for a target *Error by comparing codes.
// To test against a bare Code (moerr.ErrXxx), use the package-level Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newErr(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func NewNullValue(index int) *Error {
	return newErr(ErrNullValue, "value at index %d is null", index)
}

func NewIndexOutOfBounds(index, capacity int) *Error {
	return newErr(ErrIndexOutOfBounds, "index %d out of bounds, capacity %d", index, capacity)
}

func NewInvalidArgument(what string, val any) *Error {
	return newErr(ErrInvalidArgument, "invalid argument %s: %v", what, val)
}

func NewOversizedAllocation(requested, max int64) *Error {
	return newErr(ErrOversizedAllocation, "requested allocation %d exceeds maximum %d", requested, max)
}

func NewOutOfMemory(requested int64) *Error {
	return newErr(ErrOutOfMemory, "allocator refused %d bytes", requested)
}

func NewTypeMismatch(src, dst string) *Error {
	return newErr(ErrTypeMismatch, "cannot transfer from %s to %s", src, dst)
}

// Wrap attaches an underlying cause without changing the code's identity.
func (e *Error) Wrap(cause error) *Error {
	e.cause = cause
	return e
}

// Is reports whether err carries the given code, unwrapping as needed.
func Is(err error, code Code) bool {
	for err != nil {
		if me, ok := err.(*Error); ok {
			if me.Code == code {
				return true
			}
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
