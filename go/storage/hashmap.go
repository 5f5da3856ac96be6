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
	"github.com/Fantom-foundation/Arca/go/arca"
)

// Map is a storage cell mapping keys of type K to values of type V. The
// cell occupies a single key of the linear key space, holding the number of
// entries. The storage key of an entry is derived by hashing the map's base
// key together with the encoded entry key (see DeriveKey).
type Map[K, V any] struct {
	storage arca.Storage
	base    arca.Key
	keys    *KeyCache
}

// NewMap declares a map cell in the given space.
func NewMap[K, V any](space *Space, name string) *Map[K, V] {
	return &Map[K, V]{
		storage: space.storage,
		base:    space.allocate(name, KindMap, MapStride),
		keys:    space.keys,
	}
}

// Key returns the base key of the map.
func (m *Map[K, V]) Key() arca.Key {
	return m.base
}

// EntryKey returns the storage key holding the entry for the given key.
func (m *Map[K, V]) EntryKey(key K) arca.Key {
	return m.keys.Derive(m.base, Encode(&key))
}

// Get returns the value associated with the given key, or false if there
// is none.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.load(m.EntryKey(key))
}

// GetOr returns the value associated with the given key, or the given
// default if there is none.
func (m *Map[K, V]) GetOr(key K, def V) V {
	if res, found := m.Get(key); found {
		return res
	}
	return def
}

func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.storage.Load(m.EntryKey(key))
	return found
}

// Insert associates the given value with the given key. If the key was
// present before, its previous value is returned.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	entry := m.EntryKey(key)
	old, existed := m.load(entry)
	m.storage.Store(entry, Encode(&value))
	if !existed {
		m.setLen(m.Len() + 1)
	}
	return old, existed
}

// Remove deletes the entry for the given key, returning its value if it
// was present.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	entry := m.EntryKey(key)
	old, existed := m.load(entry)
	if existed {
		m.storage.Clear(entry)
		m.setLen(m.Len() - 1)
	}
	return old, existed
}

// Mutate replaces the value of a present entry by the result of f. The
// result reports whether the entry was present.
func (m *Map[K, V]) Mutate(key K, f func(V) V) bool {
	entry := m.EntryKey(key)
	cur, found := m.load(entry)
	if !found {
		return false
	}
	next := f(cur)
	m.storage.Store(entry, Encode(&next))
	return true
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() uint32 {
	return loadLen(m.storage, m.base)
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

func (m *Map[K, V]) load(entry arca.Key) (V, bool) {
	data, found := m.storage.Load(entry)
	if !found {
		var zero V
		return zero, false
	}
	return mustDecode[V](data), true
}

func (m *Map[K, V]) setLen(n uint32) {
	storeLen(m.storage, m.base, n)
}

// loadLen reads a length counter, where an absent counter means zero.
func loadLen(s arca.Storage, key arca.Key) uint32 {
	data, found := s.Load(key)
	if !found {
		return 0
	}
	return mustDecode[uint32](data)
}

// storeLen updates a length counter. A zero counter is cleared.
func storeLen(s arca.Storage, key arca.Key, n uint32) {
	if n == 0 {
		s.Clear(key)
		return
	}
	s.Store(key, Encode(n))
}
