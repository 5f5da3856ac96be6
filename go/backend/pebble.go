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
	"errors"
	"fmt"

	"github.com/Fantom-foundation/Arca/go/arca"
	"github.com/cockroachdb/pebble"
)

// PebbleStorage is a persistent Storage backed by a Pebble database. All keys
// of one storage share a common prefix, so that multiple contracts may be
// kept in the same database. Modifications are collected in an indexed batch
// which is written atomically by Flush.
type PebbleStorage struct {
	db     *pebble.DB
	prefix []byte
	batch  *pebble.Batch
	err    error // < first error encountered while recording modifications
}

// OpenPebble opens (or creates) a Pebble database in the given directory.
func OpenPebble(directory string) (*pebble.DB, error) {
	db, err := pebble.Open(directory, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database in %s: %w", directory, err)
	}
	return db, nil
}

// NewPebbleStorage creates a storage view on the given database, using the
// provided prefix for all its keys. The database remains owned by the caller.
func NewPebbleStorage(db *pebble.DB, prefix []byte) *PebbleStorage {
	return &PebbleStorage{
		db:     db,
		prefix: bytes.Clone(prefix),
		batch:  db.NewIndexedBatch(),
	}
}

func (s *PebbleStorage) toDbKey(key arca.Key) []byte {
	res := make([]byte, 0, len(s.prefix)+arca.KeySize)
	res = append(res, s.prefix...)
	return append(res, key[:]...)
}

func (s *PebbleStorage) Load(key arca.Key) ([]byte, bool) {
	data, closer, err := s.batch.Get(s.toDbKey(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false
	}
	if err != nil {
		// The storage contract has no error channel; an I/O failure of
		// the host store is not recoverable by the contract.
		panic(fmt.Errorf("failed to read key %v: %w", key, err))
	}
	defer closer.Close()
	// stored values are never nil, to keep them distinguishable from absent ones
	return append([]byte{}, data...), true
}

func (s *PebbleStorage) Store(key arca.Key, data []byte) {
	if err := s.batch.Set(s.toDbKey(key), data, nil); err != nil && s.err == nil {
		s.err = err
	}
}

func (s *PebbleStorage) Clear(key arca.Key) {
	if err := s.batch.Delete(s.toDbKey(key), nil); err != nil && s.err == nil {
		s.err = err
	}
}

// Flush atomically writes all modifications recorded since the last flush
// to the database. On failure, all those modifications are dropped.
func (s *PebbleStorage) Flush() error {
	if s.err != nil {
		err := s.err
		s.err = nil
		s.reset()
		return fmt.Errorf("failed to record modification: %w", err)
	}
	if s.batch.Empty() {
		return nil
	}
	if err := s.batch.Commit(pebble.Sync); err != nil {
		s.reset()
		return fmt.Errorf("failed to commit modifications: %w", err)
	}
	s.reset()
	return nil
}

// Close drops all modifications not flushed so far.
func (s *PebbleStorage) Close() error {
	return s.batch.Close()
}

func (s *PebbleStorage) reset() {
	s.batch.Close()
	s.batch = s.db.NewIndexedBatch()
}
