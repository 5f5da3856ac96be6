// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package host

import (
	"fmt"

	"github.com/Fantom-foundation/Arca/go/arca"
	"github.com/Fantom-foundation/Arca/go/backend"
	"github.com/Fantom-foundation/Arca/go/contract"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
)

const (
	ErrAlreadyDeployed = arca.ConstError("contract already deployed")
	ErrNotDeployed     = arca.ConstError("contract not deployed")
)

// Phase is the lifecycle state of a contract instance.
type Phase byte

const (
	PhaseUninitialized Phase = iota
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseReady:
		return "ready"
	}
	return fmt.Sprintf("Phase(%d)", byte(p))
}

// lifecycleKey is the storage key recording the phase of an instance. It is
// derived by hashing and thus disjoint from any linear contract layout.
var lifecycleKey = arca.Key(crypto.Keccak256Hash([]byte("arca.lifecycle")))

// Receipt summarizes the outcome of an entry.
type Receipt struct {
	Status contract.Status
	Output []byte
	Events []contract.Event
}

// Instance is a deployed, or deployable, contract bound to a backend. Every
// entry is all-or-nothing: modifications of an entry are buffered and only
// committed to the backend if the entry succeeds.
//
// Instances are not safe for concurrent use.
type Instance struct {
	contract contract.Dispatcher
	backend  backend.Backend
}

func NewInstance(c contract.Dispatcher, b backend.Backend) *Instance {
	return &Instance{
		contract: c,
		backend:  b,
	}
}

func (i *Instance) Contract() contract.Dispatcher {
	return i.contract
}

// Phase reads the lifecycle state recorded in the backend.
func (i *Instance) Phase() Phase {
	data, found := i.backend.Load(lifecycleKey)
	if !found || len(data) != 1 {
		return PhaseUninitialized
	}
	return Phase(data[0])
}

// Deploy runs the contract's deploy entry. An instance can be deployed
// only once. Failures of the contract are reported through the receipt's
// status, while the returned error is reserved for failures of the host.
func (i *Instance) Deploy(ctx contract.CallContext, input []byte) (Receipt, error) {
	if i.Phase() != PhaseUninitialized {
		return Receipt{}, ErrAlreadyDeployed
	}
	return i.run("deploy", ctx, input, func(s arca.Storage) (contract.Result, error) {
		res, err := i.contract.Deploy(ctx, s, input)
		if err == nil {
			s.Store(lifecycleKey, []byte{byte(PhaseReady)})
		}
		return res, err
	})
}

// Call runs the contract's call entry on a deployed instance.
func (i *Instance) Call(ctx contract.CallContext, input []byte) (Receipt, error) {
	if i.Phase() != PhaseReady {
		return Receipt{}, ErrNotDeployed
	}
	return i.run("call", ctx, input, func(s arca.Storage) (contract.Result, error) {
		return i.contract.Call(ctx, s, input)
	})
}

func (i *Instance) run(
	entry string,
	ctx contract.CallContext,
	input []byte,
	execute func(arca.Storage) (contract.Result, error),
) (Receipt, error) {
	overlay := backend.NewOverlay(i.backend)
	res, err := execute(overlay)
	if err != nil {
		overlay.Discard()
		status := contract.StatusOf(err)
		log.Debug("Entry failed", "contract", i.contract.Name(), "entry", entry, "caller", ctx.Caller, "status", status, "err", err)
		return Receipt{Status: status}, nil
	}

	updates := overlay.NumPending()
	overlay.Commit()
	if err := i.backend.Flush(); err != nil {
		return Receipt{}, fmt.Errorf("failed to persist %s of %s: %w", entry, i.contract.Name(), err)
	}
	log.Debug("Entry completed", "contract", i.contract.Name(), "entry", entry, "caller", ctx.Caller, "input", len(input), "updates", updates, "events", len(res.Events))
	return Receipt{
		Status: contract.StatusSuccess,
		Output: res.Output,
		Events: res.Events,
	}, nil
}
