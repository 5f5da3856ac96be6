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

// Flipper holds a single boolean that can be toggled.
type Flipper struct {
	Value *storage.Value[bool]
}

const (
	FlipperFlip arca.Selector = 970692492
	FlipperGet  arca.Selector = 4266279973
)

func NewFlipper() (*contract.Contract[Flipper], error) {
	return contract.Declare("flipper", func(space *storage.Space) Flipper {
		return Flipper{Value: storage.NewValue[bool](space, "value")}
	}).
		OnDeploy(contract.Deploy(func(env *contract.Env[Flipper], _ contract.NoArgs) {
			env.State.Value.Set(true)
		})).
		On(contract.Mut(FlipperFlip, "Flip", func(env *contract.Env[Flipper], _ contract.NoArgs) contract.NoResult {
			env.State.Value.Set(!env.State.Value.MustGet())
			return contract.NoResult{}
		})).
		On(contract.View(FlipperGet, "Get", func(env *contract.Env[Flipper], _ contract.NoArgs) bool {
			return env.State.Value.MustGet()
		})).
		Instantiate()
}
