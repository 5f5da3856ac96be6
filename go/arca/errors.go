// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package arca

import (
	"errors"
	"fmt"
)

const (
	// ErrAddressOverflow is raised whenever key arithmetic carries past the
	// most significant byte of a 256-bit key.
	ErrAddressOverflow = ConstError("storage key overflow")

	// ErrDecode is the root of all errors caused by bytes not matching the
	// encoding of the expected type, both for stored values and for call
	// payloads.
	ErrDecode = ConstError("decode error")

	// ErrUnknownSelector signals a call buffer addressing no registered message.
	ErrUnknownSelector = ConstError("unknown selector")

	// ErrWriteInView is raised when a read-only storage view is written to.
	ErrWriteInView = ConstError("write in read-only view")

	// ErrAbsentValue is raised by accessors that treat a missing value as a
	// failure instead of reporting its absence.
	ErrAbsentValue = ConstError("absent value")
)

// ConstError is a error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// DecodeError reports bytes that could not be decoded into the type
// expected at the given location.
type DecodeError struct {
	What string // < describes the decoded entity, e.g. "value at 0x.."
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrDecode, e.What, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// IsFatal reports whether the given error is one of the conditions aborting
// an entire contract invocation. Those are raised as panics by the storage
// primitives and recovered at the dispatch boundary.
func IsFatal(err error) bool {
	for _, fatal := range []error{
		ErrAddressOverflow,
		ErrDecode,
		ErrWriteInView,
		ErrAbsentValue,
	} {
		if errors.Is(err, fatal) {
			return true
		}
	}
	return false
}
