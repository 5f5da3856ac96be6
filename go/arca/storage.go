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

//go:generate mockgen -source storage.go -destination storage_mock.go -package arca

// Storage is the flat, byte-addressed key/value store a host provides to a
// contract. Implementations must satisfy the following contract: a Load
// after Store(k, b) with no intervening Clear(k) or other Store(k, _) returns
// exactly b; a Load after Clear(k), or before any Store(k, _), reports no
// value.
//
// Storage instances are owned exclusively by a single contract invocation and
// are not required to be thread-safe.
type Storage interface {
	// Load returns the bytes stored at the given key, or false if none are.
	Load(Key) ([]byte, bool)
	// Store replaces the bytes stored at the given key.
	Store(Key, []byte)
	// Clear removes any bytes stored at the given key.
	Clear(Key)
}

// ReadOnly wraps the given storage such that loads are forwarded while any
// attempt to modify the underlying storage panics with an ErrWriteInView.
func ReadOnly(s Storage) Storage {
	if ro, ok := s.(readOnly); ok {
		return ro
	}
	return readOnly{s}
}

type readOnly struct {
	storage Storage
}

func (r readOnly) Load(key Key) ([]byte, bool) {
	return r.storage.Load(key)
}

func (r readOnly) Store(key Key, _ []byte) {
	panic(&WriteInViewError{Key: key})
}

func (r readOnly) Clear(key Key) {
	panic(&WriteInViewError{Key: key})
}

// WriteInViewError is raised when a read-only view of a storage is modified.
type WriteInViewError struct {
	Key Key
}

func (e *WriteInViewError) Error() string {
	return ErrWriteInView.Error() + " at " + e.Key.String()
}

func (e *WriteInViewError) Is(target error) bool {
	return target == ErrWriteInView
}
