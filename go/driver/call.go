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

	cliUtils "github.com/Fantom-foundation/Arca/go/driver/cli"
	"github.com/urfave/cli/v2"
)

var CallCmd = cli.Command{
	Action:    doCall,
	Name:      "call",
	Usage:     "Sends a message to a deployed contract",
	ArgsUsage: "<contract> <message>",
	Flags:     contextFlags,
}

func doCall(context *cli.Context) (err error) {
	if context.Args().Len() != 2 {
		return fmt.Errorf("expected a contract name and a message name")
	}
	instance, closeFn, err := openInstance(context, context.Args().Get(0))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeFn())
	}()

	name := context.Args().Get(1)
	info, found := instance.Contract().Lookup(name)
	if !found {
		return fmt.Errorf("contract %s has no message %s", instance.Contract().Name(), name)
	}
	payload, err := info.ArgsFromJSON(cliUtils.ArgsFlag.Fetch(context))
	if err != nil {
		return err
	}
	selector := info.Selector.Bytes()
	ctx, err := callContext(context)
	if err != nil {
		return err
	}

	receipt, err := instance.Call(ctx, append(selector[:], payload...))
	if err != nil {
		return err
	}
	return printReceipt(receipt, &info)
}
