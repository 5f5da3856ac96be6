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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Address represents the 160-bit (20 bytes) identity of an account calling
// into a contract.
type Address [20]byte

// Hash represents a 256-bit (32 bytes) digest, e.g. an event topic.
type Hash [32]byte

// AddressFromHex parses a hex-encoded address. The 0x prefix is optional.
// Exactly 20 bytes (40 hex digits) are required.
func AddressFromHex(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return Address{}, fmt.Errorf("invalid address: %q", s)
	}
	return Address(common.HexToAddress(s)), nil
}

func (a Address) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return bytesToText(a[:])
}

func (a *Address) UnmarshalText(data []byte) error {
	return textToBytes(a[:], data)
}

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return bytesToText(h[:])
}

func (h *Hash) UnmarshalText(data []byte) error {
	return textToBytes(h[:], data)
}

func bytesToText(data []byte) ([]byte, error) {
	return []byte(fmt.Sprintf("0x%x", data)), nil
}

func textToBytes(trg []byte, data []byte) error {
	s := string(data)
	if !strings.HasPrefix(s, "0x") {
		return fmt.Errorf("invalid format, does not start with 0x: %v", s)
	}
	data, err := hex.DecodeString(s[2:])
	if err != nil {
		return err
	}
	if want, got := len(trg), len(data); want != got {
		return fmt.Errorf("invalid format, wanted %d bytes, got %d", want, got)
	}
	copy(trg[:], data)
	return nil
}
