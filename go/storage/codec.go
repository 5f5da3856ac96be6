// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package storage

import (
	"fmt"

	"github.com/Fantom-foundation/Arca/go/arca"
	"github.com/ethereum/go-ethereum/rlp"
)

// Encode produces the canonical RLP encoding of the given value. Types not
// supported by RLP, like signed integers or maps, are a programming error
// and cause a panic.
func Encode(v any) []byte {
	data, err := rlp.EncodeToBytes(v)
	if err != nil {
		panic(fmt.Errorf("unsupported type %T: %w", v, err))
	}
	return data
}

// Decode parses the given RLP encoded data into the value pointed to by v.
// The data must contain exactly one value. Errors are of type
// *arca.DecodeError.
func Decode(data []byte, v any) error {
	if err := rlp.DecodeBytes(data, v); err != nil {
		return &arca.DecodeError{What: fmt.Sprintf("%T", v), Err: err}
	}
	return nil
}

// mustDecode decodes a value read from storage. Stored bytes failing to
// decode indicate a corrupted or incompatible layout, which is fatal.
func mustDecode[T any](data []byte) T {
	var res T
	if err := Decode(data, &res); err != nil {
		panic(err)
	}
	return res
}
