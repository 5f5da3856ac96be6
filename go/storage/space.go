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
	"slices"

	"github.com/Fantom-foundation/Arca/go/arca"
)

// Kind identifies the type of cell occupying a field of a storage layout.
type Kind byte

const (
	KindValue Kind = iota
	KindMap
	KindVec
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindMap:
		return "map"
	case KindVec:
		return "vec"
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}

// Field describes a single cell of a storage layout.
type Field struct {
	Name string
	Kind Kind
	Key  arca.Key
}

func (f Field) String() string {
	return fmt.Sprintf("%s %s @ %v", f.Name, f.Kind, f.Key)
}

// Space is the context in which the cells of a contract's state are
// declared. It combines the allocator assigning keys to cells, the storage
// the cells operate on, and a cache for derived map entry keys. Every cell
// created within a space is recorded, making the resulting layout available
// for inspection.
//
// A space is not safe for concurrent use.
type Space struct {
	alloc   Allocator
	storage arca.Storage
	keys    *KeyCache
	fields  []Field
}

// NewSpace creates a space allocating cells with the given allocator on top
// of the given storage. The key cache is optional.
func NewSpace(alloc Allocator, storage arca.Storage, keys *KeyCache) *Space {
	return &Space{
		alloc:   alloc,
		storage: storage,
		keys:    keys,
	}
}

func (s *Space) Storage() arca.Storage {
	return s.storage
}

// Fields lists the cells declared so far, in declaration order.
func (s *Space) Fields() []Field {
	return slices.Clone(s.fields)
}

func (s *Space) allocate(name string, kind Kind, stride uint64) arca.Key {
	key := s.alloc.Alloc(stride)
	s.fields = append(s.fields, Field{Name: name, Kind: kind, Key: key})
	return key
}
