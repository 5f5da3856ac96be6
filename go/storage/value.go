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
)

// Value is a storage cell holding a single value of type T at a fixed key.
// A value is either present or absent; reading an absent value is not an
// error.
type Value[T any] struct {
	storage arca.Storage
	key     arca.Key
}

// NewValue declares a value cell in the given space.
func NewValue[T any](space *Space, name string) *Value[T] {
	return &Value[T]{
		storage: space.storage,
		key:     space.allocate(name, KindValue, ValueStride),
	}
}

func (v *Value[T]) Key() arca.Key {
	return v.key
}

// Get returns the stored value, or false if the value is absent.
func (v *Value[T]) Get() (T, bool) {
	data, found := v.storage.Load(v.key)
	if !found {
		var zero T
		return zero, false
	}
	return mustDecode[T](data), true
}

// GetOr returns the stored value, or the given default if it is absent.
func (v *Value[T]) GetOr(def T) T {
	if res, found := v.Get(); found {
		return res
	}
	return def
}

// MustGet returns the stored value and panics with an arca.ErrAbsentValue
// if the value is absent.
func (v *Value[T]) MustGet() T {
	res, found := v.Get()
	if !found {
		panic(fmt.Errorf("%w at %v", arca.ErrAbsentValue, v.key))
	}
	return res
}

func (v *Value[T]) Set(value T) {
	v.storage.Store(v.key, Encode(&value))
}

func (v *Value[T]) Clear() {
	v.storage.Clear(v.key)
}

func (v *Value[T]) Exists() bool {
	_, found := v.storage.Load(v.key)
	return found
}

// Mutate replaces a present value by the result of f. Absent values are
// left untouched. The result reports whether the value was present.
func (v *Value[T]) Mutate(f func(T) T) bool {
	cur, found := v.Get()
	if !found {
		return false
	}
	v.Set(f(cur))
	return true
}
