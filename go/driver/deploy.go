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

var DeployCmd = cli.Command{
	Action:    doDeploy,
	Name:      "deploy",
	Usage:     "Deploys a contract into a database",
	ArgsUsage: "<contract>",
	Flags:     contextFlags,
}

func doDeploy(context *cli.Context) (err error) {
	if context.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one contract name")
	}
	instance, closeFn, err := openInstance(context, context.Args().Get(0))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeFn())
	}()

	var input []byte
	if info, found := instance.Contract().DeployInfo(); found {
		input, err = info.ArgsFromJSON(cliUtils.ArgsFlag.Fetch(context))
		if err != nil {
			return err
		}
	}
	ctx, err := callContext(context)
	if err != nil {
		return err
	}

	receipt, err := instance.Deploy(ctx, input)
	if err != nil {
		return err
	}
	return printReceipt(receipt, nil)
}
