// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/Arca/go/backend"
	"github.com/Fantom-foundation/Arca/go/contract"
	cliUtils "github.com/Fantom-foundation/Arca/go/driver/cli"
	"github.com/Fantom-foundation/Arca/go/host"
	"github.com/urfave/cli/v2"
)

// openInstance binds the named contract to its state in the database
// selected on the command line. The state of each contract is kept under
// its own key prefix.
func openInstance(context *cli.Context, name string) (*host.Instance, func() error, error) {
	c, err := contract.New(name)
	if err != nil {
		return nil, nil, err
	}
	dir, err := cliUtils.DbFlag.Fetch(context)
	if err != nil {
		return nil, nil, err
	}
	db, err := backend.OpenPebble(dir)
	if err != nil {
		return nil, nil, err
	}
	storage := backend.NewPebbleStorage(db, []byte(c.Name()+"/"))
	closeFn := func() error {
		return errors.Join(storage.Close(), db.Close())
	}
	return host.NewInstance(c, storage), closeFn, nil
}

func callContext(context *cli.Context) (contract.CallContext, error) {
	caller, err := cliUtils.CallerFlag.Fetch(context)
	if err != nil {
		return contract.CallContext{}, err
	}
	return contract.CallContext{
		Caller:      caller,
		BlockNumber: cliUtils.BlockFlag.Fetch(context),
		Timestamp:   cliUtils.TimestampFlag.Fetch(context),
	}, nil
}

func printReceipt(receipt host.Receipt, info *contract.MessageInfo) error {
	fmt.Printf("status: %v\n", receipt.Status)
	if receipt.Status != contract.StatusSuccess {
		return nil
	}
	if info != nil {
		result, err := info.ResultToJSON(receipt.Output)
		if err != nil {
			return fmt.Errorf("failed to decode result: %w", err)
		}
		fmt.Printf("result: %s\n", result)
	}
	for _, event := range receipt.Events {
		fmt.Printf("event: %s topic=%v data=0x%x\n", event.Name, event.Topic, event.Data)
	}
	return nil
}

var contextFlags = []cli.Flag{
	cliUtils.DbFlag,
	cliUtils.CallerFlag,
	cliUtils.ArgsFlag,
	cliUtils.BlockFlag,
	cliUtils.TimestampFlag,
}
