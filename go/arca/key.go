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
	"bytes"
	"fmt"

	"github.com/holiman/uint256"
)

// Key represents the 256-bit (32 bytes) address of a storage slot. Keys are
// interpreted as big-endian unsigned integers whenever arithmetic is applied;
// the byte at index 31 is the least significant one.
type Key [32]byte

// KeySize is the number of bytes in a Key.
const KeySize = len(Key{})

// KeyFromUint64 creates a key holding the given value in its low-order bytes.
func KeyFromUint64(v uint64) Key {
	return uint256.NewInt(v).Bytes32()
}

// AddUint32 returns k + v. A carry past the most significant byte is a
// programming error and triggers a panic with an ErrAddressOverflow.
func (k Key) AddUint32(v uint32) Key {
	return k.add(uint64(v))
}

// AddUint64 returns k + v. A carry past the most significant byte is a
// programming error and triggers a panic with an ErrAddressOverflow.
func (k Key) AddUint64(v uint64) Key {
	return k.add(v)
}

// AddAssignUint32 updates k to k + v, with the overflow policy of AddUint32.
func (k *Key) AddAssignUint32(v uint32) {
	*k = k.add(uint64(v))
}

// AddAssignUint64 updates k to k + v, with the overflow policy of AddUint64.
func (k *Key) AddAssignUint64(v uint64) {
	*k = k.add(v)
}

func (k Key) add(v uint64) Key {
	var x uint256.Int
	x.SetBytes32(k[:])
	sum, overflow := new(uint256.Int).AddOverflow(&x, uint256.NewInt(v))
	if overflow {
		panic(fmt.Errorf("%w: %v + %d", ErrAddressOverflow, k, v))
	}
	return sum.Bytes32()
}

// Bytes returns a copy of the raw bytes of this key.
func (k Key) Bytes() []byte {
	return bytes.Clone(k[:])
}

// MutableBytes provides direct access to the bytes of this key.
func (k *Key) MutableBytes() []byte {
	return k[:]
}

func (k Key) Cmp(o Key) int {
	return bytes.Compare(k[:], o[:])
}

func (k Key) String() string {
	return fmt.Sprintf("0x%x", k[:])
}

func (k Key) MarshalText() ([]byte, error) {
	return bytesToText(k[:])
}

func (k *Key) UnmarshalText(data []byte) error {
	return textToBytes(k[:], data)
}
