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
	"fmt"
	"slices"
	"strings"

	"github.com/Fantom-foundation/Arca/go/arca"
	"github.com/Fantom-foundation/Arca/go/backend"
	"github.com/Fantom-foundation/Arca/go/contract"
	"github.com/Fantom-foundation/Arca/go/host"
	"github.com/holiman/uint256"
)

// Example is an executable description of a contract together with a
// deploy input and a representative sequence of calls.
type Example struct {
	exampleSpec
}

// exampleSpec specifies a contract and a workload to run on it.
type exampleSpec struct {
	Name     string
	factory  contract.Factory
	deployer arca.Address
	deploy   []byte                                        // input of the deploy entry
	workload func(step int) (contract.CallContext, []byte) // the call performed in the given step
}

func (s exampleSpec) build() Example {
	if err := contract.Register(s.Name, s.factory); err != nil {
		panic(err)
	}
	return Example{exampleSpec: s}
}

type Result struct {
	Calls  int
	Failed int
	Events int
}

// NewInstance instantiates the example's contract on the given backend.
func (e *Example) NewInstance(b backend.Backend) (*host.Instance, error) {
	c, err := e.factory()
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate %s: %w", e.Name, err)
	}
	return host.NewInstance(c, b), nil
}

// Deploy runs the deploy entry of the given instance with the example's
// deploy input.
func (e *Example) Deploy(instance *host.Instance) error {
	receipt, err := instance.Deploy(contract.CallContext{Caller: e.deployer}, e.deploy)
	if err != nil {
		return err
	}
	if receipt.Status != contract.StatusSuccess {
		return fmt.Errorf("deploy of %s failed with status %v", e.Name, receipt.Status)
	}
	return nil
}

// RunOn performs the given number of workload steps on a deployed instance.
func (e *Example) RunOn(instance *host.Instance, steps int) (Result, error) {
	res := Result{}
	for i := 0; i < steps; i++ {
		ctx, input := e.workload(i)
		receipt, err := instance.Call(ctx, input)
		if err != nil {
			return res, err
		}
		res.Calls++
		res.Events += len(receipt.Events)
		if receipt.Status != contract.StatusSuccess {
			res.Failed++
		}
	}
	return res, nil
}

// Get performs a lookup for the example with the given name
// (case-insensitive).
func Get(name string) (Example, bool) {
	for _, e := range all {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Example{}, false
}

// All lists all examples ordered by name.
func All() []Example {
	return slices.Clone(all)
}

var all = []Example{
	counterExample,
	erc20Example,
	flipperExample,
}

var counterExample = exampleSpec{
	Name:    "counter",
	factory: dispatcher(NewCounter),
	workload: func(step int) (contract.CallContext, []byte) {
		ctx := contract.CallContext{BlockNumber: uint64(step)}
		if step%4 == 3 {
			return ctx, contract.EncodeCall(CounterUndo, contract.NoArgs{})
		}
		return ctx, contract.EncodeCall(CounterIncrement, uint64(step%7+1))
	},
}.build()

var erc20Example = exampleSpec{
	Name:     "erc20",
	factory:  dispatcher(NewERC20),
	deployer: holder(0),
	deploy:   contract.EncodeDeploy(*uint256.NewInt(1_000_000_000)),
	workload: func(step int) (contract.CallContext, []byte) {
		// tokens circulate among a fixed set of holders
		from, to := holder(step%16), holder((step+1)%16)
		return contract.CallContext{Caller: from, BlockNumber: uint64(step)},
			contract.EncodeCall(ERC20Transfer, TransferArgs{To: to, Amount: *uint256.NewInt(1)})
	},
}.build()

var flipperExample = exampleSpec{
	Name:    "flipper",
	factory: dispatcher(NewFlipper),
	workload: func(step int) (contract.CallContext, []byte) {
		return contract.CallContext{BlockNumber: uint64(step)}, contract.EncodeCall(FlipperFlip, contract.NoArgs{})
	},
}.build()

func holder(i int) arca.Address {
	return arca.Address{0: 0xaa, 19: byte(i)}
}

func dispatcher[S any](factory func() (*contract.Contract[S], error)) contract.Factory {
	return func() (contract.Dispatcher, error) {
		res, err := factory()
		if err != nil {
			return nil, err
		}
		return res, nil
	}
}
