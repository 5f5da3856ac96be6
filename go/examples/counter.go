// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"github.com/Fantom-foundation/Arca/go/arca"
	"github.com/Fantom-foundation/Arca/go/contract"
	"github.com/Fantom-foundation/Arca/go/storage"
)

// Counter is a counter remembering the step of every increment, such that
// increments can be undone. Its selectors are derived from the message
// signatures.
type Counter struct {
	Count   *storage.Value[uint64]
	History *storage.Vec[uint64]
}

var (
	CounterIncrement = arca.SelectorFromName("increment(uint64)")
	CounterGet       = arca.SelectorFromName("get()")
	CounterHistory   = arca.SelectorFromName("history(uint32)")
	CounterUndo      = arca.SelectorFromName("undo()")
)

// HistoryEntry is the result of a history lookup.
type HistoryEntry struct {
	Step  uint64
	Found bool
}

func NewCounter() (*contract.Contract[Counter], error) {
	return contract.Declare("counter", func(space *storage.Space) Counter {
		return Counter{
			Count:   storage.NewValue[uint64](space, "count"),
			History: storage.NewVec[uint64](space, "history"),
		}
	}).
		On(contract.Mut(CounterIncrement, "Increment", counterIncrement)).
		On(contract.View(CounterGet, "Get", func(env *contract.Env[Counter], _ contract.NoArgs) uint64 {
			return env.State.Count.GetOr(0)
		})).
		On(contract.View(CounterHistory, "History", func(env *contract.Env[Counter], i uint32) HistoryEntry {
			step, found := env.State.History.Get(i)
			return HistoryEntry{Step: step, Found: found}
		})).
		On(contract.Mut(CounterUndo, "Undo", counterUndo)).
		Instantiate()
}

func counterIncrement(env *contract.Env[Counter], step uint64) uint64 {
	res := env.State.Count.GetOr(0) + step
	env.State.Count.Set(res)
	env.State.History.Push(step)
	return res
}

// counterUndo reverts the most recent increment.
func counterUndo(env *contract.Env[Counter], _ contract.NoArgs) bool {
	step, found := env.State.History.Pop()
	if !found {
		return false
	}
	env.State.Count.Mutate(func(c uint64) uint64 { return c - step })
	return true
}
