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
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Selector identifies a message within a contract. On the wire it is encoded
// as the leading 4 bytes of a call buffer in big-endian order.
type Selector uint32

// SelectorSize is the number of bytes used to encode a Selector.
const SelectorSize = 4

// SelectorFromBytes decodes the selector at the start of the given buffer,
// which must hold at least SelectorSize bytes.
func SelectorFromBytes(data []byte) Selector {
	return Selector(binary.BigEndian.Uint32(data[:SelectorSize]))
}

// SelectorFromName derives a selector from a message name by taking the
// first 4 bytes of the Keccak-256 hash of the name.
func SelectorFromName(name string) Selector {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(name))
	var hash Hash
	hasher.Sum(hash[0:0])
	return SelectorFromBytes(hash[:])
}

// Bytes returns the wire encoding of this selector.
func (s Selector) Bytes() [SelectorSize]byte {
	var res [SelectorSize]byte
	binary.BigEndian.PutUint32(res[:], uint32(s))
	return res
}

func (s Selector) String() string {
	return fmt.Sprintf("0x%08x", uint32(s))
}
