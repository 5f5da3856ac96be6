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
	"errors"
	"fmt"
	"math"

	"github.com/Fantom-foundation/Arca/go/arca"
)

// Vec is a storage cell holding a growable sequence of values of type T.
// Its base key holds the length, element i is stored at base + 1 + i.
type Vec[T any] struct {
	storage arca.Storage
	base    arca.Key
}

// MaxVecLen is the maximum number of elements a Vec can hold.
const MaxVecLen = math.MaxUint32

// NewVec declares a vector cell in the given space.
func NewVec[T any](space *Space, name string) *Vec[T] {
	return &Vec[T]{
		storage: space.storage,
		base:    space.allocate(name, KindVec, VecStride),
	}
}

func (v *Vec[T]) Key() arca.Key {
	return v.base
}

func (v *Vec[T]) Len() uint32 {
	return loadLen(v.storage, v.base)
}

// Get returns the element at index i, or false if i is out of range.
func (v *Vec[T]) Get(i uint32) (T, bool) {
	if i >= v.Len() {
		var zero T
		return zero, false
	}
	return v.load(i), true
}

// Set replaces the element at index i. It reports false if i is out of
// range, in which case the vector is not modified.
func (v *Vec[T]) Set(i uint32, value T) bool {
	if i >= v.Len() {
		return false
	}
	v.store(i, value)
	return true
}

// Push appends an element. Pushing to a full vector panics with an
// arca.ErrAddressOverflow.
func (v *Vec[T]) Push(value T) {
	n := v.Len()
	if n == MaxVecLen {
		panic(fmt.Errorf("%w: vector at %v is full", arca.ErrAddressOverflow, v.base))
	}
	v.store(n, value)
	storeLen(v.storage, v.base, n+1)
}

// Pop removes and returns the last element, or false if the vector is
// empty.
func (v *Vec[T]) Pop() (T, bool) {
	n := v.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	res := v.load(n - 1)
	v.storage.Clear(v.elementKey(n - 1))
	storeLen(v.storage, v.base, n-1)
	return res, true
}

// Swap exchanges the elements at indexes i and j. It reports false if
// either index is out of range.
func (v *Vec[T]) Swap(i, j uint32) bool {
	n := v.Len()
	if i >= n || j >= n {
		return false
	}
	if i == j {
		return true
	}
	a := v.loadRaw(i)
	b := v.loadRaw(j)
	v.storage.Store(v.elementKey(i), b)
	v.storage.Store(v.elementKey(j), a)
	return true
}

func (v *Vec[T]) elementKey(i uint32) arca.Key {
	return v.base.AddUint64(1 + uint64(i))
}

func (v *Vec[T]) load(i uint32) T {
	return mustDecode[T](v.loadRaw(i))
}

// loadRaw fetches the encoded element at index i, which must be within the
// vector's length. A missing element indicates a corrupted layout.
func (v *Vec[T]) loadRaw(i uint32) []byte {
	data, found := v.storage.Load(v.elementKey(i))
	if !found {
		panic(&arca.DecodeError{
			What: fmt.Sprintf("element %d of vector at %v", i, v.base),
			Err:  errMissingElement,
		})
	}
	return data
}

func (v *Vec[T]) store(i uint32, value T) {
	v.storage.Store(v.elementKey(i), Encode(&value))
}

var errMissingElement = errors.New("missing element")
