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
	"testing"

	"github.com/Fantom-foundation/Arca/go/arca"
)

func TestStatusOf_MapsErrorsToStatusCodes(t *testing.T) {
	tests := map[string]struct {
		err  error
		want Status
	}{
		"nil":              {nil, StatusSuccess},
		"other":            {errors.New("other"), StatusFailure},
		"unknown selector": {&UnknownSelectorError{Selector: 1}, StatusUnknownSelector},
		"decode":           {&arca.DecodeError{What: "x", Err: errors.New("y")}, StatusDecodeError},
		"overflow":         {fmt.Errorf("%w: at key", arca.ErrAddressOverflow), StatusAddressOverflow},
		"write in view":    {&arca.WriteInViewError{}, StatusWriteInView},
		"absent value":     {arca.ErrAbsentValue, StatusAbsentValue},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := StatusOf(test.err); test.want != got {
				t.Errorf("unexpected status, wanted %v, got %v", test.want, got)
			}
		})
	}
}

func TestStatus_CodesAreStable(t *testing.T) {
	codes := []Status{
		StatusSuccess,
		StatusFailure,
		StatusUnknownSelector,
		StatusDecodeError,
		StatusAddressOverflow,
		StatusWriteInView,
		StatusAbsentValue,
	}
	for i, code := range codes {
		if uint32(code) != uint32(i) {
			t.Errorf("unexpected code for %v: %d", code, uint32(code))
		}
	}
	if want, got := "Status(42)", Status(42).String(); want != got {
		t.Errorf("unexpected string, wanted %q, got %q", want, got)
	}
}
