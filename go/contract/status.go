// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package contract

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/Arca/go/arca"
)

// Status is the numeric outcome of a deploy or call entry, as reported to
// hosts lacking a richer error channel.
type Status uint32

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusUnknownSelector
	StatusDecodeError
	StatusAddressOverflow
	StatusWriteInView
	StatusAbsentValue
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusUnknownSelector:
		return "unknown selector"
	case StatusDecodeError:
		return "decode error"
	case StatusAddressOverflow:
		return "address overflow"
	case StatusWriteInView:
		return "write in view"
	case StatusAbsentValue:
		return "absent value"
	}
	return fmt.Sprintf("Status(%d)", uint32(s))
}

// StatusOf maps the error returned by an entry to its status code.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, arca.ErrUnknownSelector):
		return StatusUnknownSelector
	case errors.Is(err, arca.ErrDecode):
		return StatusDecodeError
	case errors.Is(err, arca.ErrAddressOverflow):
		return StatusAddressOverflow
	case errors.Is(err, arca.ErrWriteInView):
		return StatusWriteInView
	case errors.Is(err, arca.ErrAbsentValue):
		return StatusAbsentValue
	}
	return StatusFailure
}
