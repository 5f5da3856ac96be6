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

	"github.com/Fantom-foundation/Arca/go/arca"
)

// Overlay buffers modifications on top of a backing storage. Reads observe
// buffered modifications first. Buffered modifications only reach the
// backing storage on Commit, in the order they have been performed; Discard
// drops them without any effect on the backing storage.
//
// An Overlay is used to bound the effects of a single contract invocation:
// either all of its writes become visible, or none does.
type Overlay struct {
	backend arca.Storage
	current map[arca.Key]entry // < latest buffered state per key
	journal []update           // < all buffered modifications in program order
}

type entry struct {
	data    []byte
	present bool
}

type update struct {
	key arca.Key
	entry
}

// NewOverlay creates an empty overlay on top of the given storage.
func NewOverlay(backend arca.Storage) *Overlay {
	return &Overlay{
		backend: backend,
		current: map[arca.Key]entry{},
	}
}

func (o *Overlay) Load(key arca.Key) ([]byte, bool) {
	if e, found := o.current[key]; found {
		if !e.present {
			return nil, false
		}
		return bytes.Clone(e.data), true
	}
	return o.backend.Load(key)
}

func (o *Overlay) Store(key arca.Key, data []byte) {
	o.record(key, entry{data: append([]byte{}, data...), present: true})
}

func (o *Overlay) Clear(key arca.Key) {
	o.record(key, entry{})
}

func (o *Overlay) record(key arca.Key, e entry) {
	o.current[key] = e
	o.journal = append(o.journal, update{key: key, entry: e})
}

// NumPending returns the number of buffered modifications.
func (o *Overlay) NumPending() int {
	return len(o.journal)
}

// Commit applies all buffered modifications to the backing storage and
// resets the overlay.
func (o *Overlay) Commit() {
	for _, u := range o.journal {
		if u.present {
			o.backend.Store(u.key, u.data)
		} else {
			o.backend.Clear(u.key)
		}
	}
	o.Discard()
}

// Discard drops all buffered modifications.
func (o *Overlay) Discard() {
	clear(o.current)
	o.journal = o.journal[:0]
}
