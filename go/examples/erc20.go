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
	"github.com/holiman/uint256"
)

// ERC20 is the state of a minimal fungible token: a balance per account and
// the total supply.
type ERC20 struct {
	Balances *storage.Map[arca.Address, uint256.Int]
	Total    *storage.Value[uint256.Int]
}

const (
	ERC20TotalSupply arca.Selector = 0
	ERC20BalanceOf   arca.Selector = 1
	ERC20Transfer    arca.Selector = 2
)

type TransferArgs struct {
	To     arca.Address
	Amount uint256.Int
}

// TransferEvent is emitted for every successful transfer, including the
// initial minting of the supply.
type TransferEvent struct {
	From   arca.Address
	To     arca.Address
	Amount uint256.Int
}

func erc20Layout(space *storage.Space) ERC20 {
	return ERC20{
		Balances: storage.NewMap[arca.Address, uint256.Int](space, "balances"),
		Total:    storage.NewValue[uint256.Int](space, "total"),
	}
}

func NewERC20() (*contract.Contract[ERC20], error) {
	return contract.Declare("erc20", erc20Layout).
		OnDeploy(contract.Deploy(erc20Deploy)).
		On(contract.View(ERC20TotalSupply, "TotalSupply", erc20TotalSupply)).
		On(contract.View(ERC20BalanceOf, "BalanceOf", erc20BalanceOf)).
		On(contract.Mut(ERC20Transfer, "Transfer", erc20Transfer)).
		Instantiate()
}

// erc20Deploy mints the initial supply to the deploying account.
func erc20Deploy(env *contract.Env[ERC20], supply uint256.Int) {
	env.State.Total.Set(supply)
	env.State.Balances.Insert(env.Caller(), supply)
	env.Emit("Transfer", TransferEvent{To: env.Caller(), Amount: supply})
}

func erc20TotalSupply(env *contract.Env[ERC20], _ contract.NoArgs) uint256.Int {
	return env.State.Total.GetOr(uint256.Int{})
}

func erc20BalanceOf(env *contract.Env[ERC20], owner arca.Address) uint256.Int {
	return env.State.Balances.GetOr(owner, uint256.Int{})
}

// erc20Transfer moves tokens from the caller to the given recipient. It
// reports false, without modifying any balance, if the caller's balance is
// insufficient.
func erc20Transfer(env *contract.Env[ERC20], args TransferArgs) bool {
	from := env.Caller()
	balances := env.State.Balances

	fromBalance := balances.GetOr(from, uint256.Int{})
	if fromBalance.Lt(&args.Amount) {
		return false
	}
	balances.Insert(from, *new(uint256.Int).Sub(&fromBalance, &args.Amount))

	toBalance := balances.GetOr(args.To, uint256.Int{})
	balances.Insert(args.To, *new(uint256.Int).Add(&toBalance, &args.Amount))

	env.Emit("Transfer", TransferEvent{From: from, To: args.To, Amount: args.Amount})
	return true
}
