// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package contract

import (
	"slices"

	"github.com/Fantom-foundation/Arca/go/arca"
	"github.com/Fantom-foundation/Arca/go/storage"
	"github.com/ethereum/go-ethereum/crypto"
)

// CallContext summarizes the host supplied facts about an entry.
type CallContext struct {
	Caller      arca.Address
	BlockNumber uint64
	Timestamp   uint64
}

// Event is a record emitted by a handler and reported to the host together
// with the entry's result.
type Event struct {
	Name  string
	Topic arca.Hash // < Keccak-256 of the name
	Data  []byte    // < RLP encoded payload
}

// Env is the execution environment handed to every handler. It is created
// for a single entry and discarded afterwards. State is the contract's
// storage layout, bound to the storage of the current entry.
type Env[S any] struct {
	State   S
	context CallContext
	storage arca.Storage
	events  []Event
}

func (e *Env[S]) Caller() arca.Address {
	return e.context.Caller
}

func (e *Env[S]) Context() CallContext {
	return e.context
}

// Storage provides raw access to the storage backing the state. For view
// messages this is a read-only view.
func (e *Env[S]) Storage() arca.Storage {
	return e.storage
}

// Emit records an event with the given name and payload.
func (e *Env[S]) Emit(name string, payload any) {
	e.events = append(e.events, Event{
		Name:  name,
		Topic: arca.Hash(crypto.Keccak256Hash([]byte(name))),
		Data:  storage.Encode(payload),
	})
}

// Events returns the events emitted so far.
func (e *Env[S]) Events() []Event {
	return slices.Clone(e.events)
}
