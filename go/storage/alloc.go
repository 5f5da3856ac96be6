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

import "github.com/Fantom-foundation/Arca/go/arca"

// Allocator hands out disjoint regions of the storage key space. A region
// starting at the returned key spans the requested number of keys.
type Allocator interface {
	Alloc(stride uint64) arca.Key
}

// Strides reserved by the individual cell kinds.
const (
	ValueStride uint64 = 1
	// MapStride covers the map's length counter only; entries are hashed
	// out of the map's namespace and do not occupy the linear key space.
	MapStride uint64 = 1
	// VecStride reserves room for the length counter and 2^32-1 elements.
	VecStride uint64 = 1 << 32
)

// BumpAlloc is the default allocator. It starts at a base key and advances
// a cursor by the requested stride on every allocation. Allocations are a
// pure function of the base key and the sequence of strides, which makes
// layouts reproducible across invocations without persisting them.
type BumpAlloc struct {
	cursor arca.Key
}

func NewBumpAlloc(base arca.Key) *BumpAlloc {
	return &BumpAlloc{cursor: base}
}

// Alloc returns the current cursor and advances it by the given stride. An
// allocation that would advance the cursor past the end of the key space
// panics with an arca.ErrAddressOverflow.
func (a *BumpAlloc) Alloc(stride uint64) arca.Key {
	res := a.cursor
	a.cursor.AddAssignUint64(stride)
	return res
}

// Cursor returns the first key not yet handed out.
func (a *BumpAlloc) Cursor() arca.Key {
	return a.cursor
}
