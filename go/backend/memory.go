// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package backend

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/Fantom-foundation/Arca/go/arca"
)

// MemoryStorage is an in-memory Storage implementation. It is mainly intended
// for tests and tools, where it also serves to describe expected pre- and
// post-states of contract storage.
type MemoryStorage map[arca.Key][]byte

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() MemoryStorage {
	return MemoryStorage{}
}

func (s MemoryStorage) Load(key arca.Key) ([]byte, bool) {
	data, found := s[key]
	if !found {
		return nil, false
	}
	return bytes.Clone(data), true
}

func (s MemoryStorage) Store(key arca.Key, data []byte) {
	// stored values are never nil, to keep them distinguishable from absent ones
	s[key] = append([]byte{}, data...)
}

func (s MemoryStorage) Clear(key arca.Key) {
	delete(s, key)
}

// Flush is a no-op since all modifications are applied immediately.
func (s MemoryStorage) Flush() error {
	return nil
}

func (s MemoryStorage) Equal(other MemoryStorage) bool {
	return maps.EqualFunc(s, other, bytes.Equal)
}

func (s MemoryStorage) Clone() MemoryStorage {
	if s == nil {
		return nil
	}
	res := make(MemoryStorage, len(s))
	for k, v := range s {
		res[k] = bytes.Clone(v)
	}
	return res
}

// Diff lists the differences between this and the given storage, ordered by key.
func (s MemoryStorage) Diff(other MemoryStorage) []string {
	keys := make([]arca.Key, 0, len(s)+len(other))
	for k := range s {
		keys = append(keys, k)
	}
	for k := range other {
		if _, overlap := s[k]; !overlap {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, arca.Key.Cmp)

	var diffs []string
	for _, k := range keys {
		a, inA := s[k]
		b, inB := other[k]
		switch {
		case !inB:
			diffs = append(diffs, fmt.Sprintf("missing value for key %v: 0x%x", k, a))
		case !inA:
			diffs = append(diffs, fmt.Sprintf("additional value for key %v: 0x%x", k, b))
		case !bytes.Equal(a, b):
			diffs = append(diffs, fmt.Sprintf("different value for key %v: 0x%x != 0x%x", k, a, b))
		}
	}
	return diffs
}
