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
	"fmt"

	"github.com/Fantom-foundation/Arca/go/contract"
	_ "github.com/Fantom-foundation/Arca/go/examples"
	"github.com/urfave/cli/v2"
)

var ListCmd = cli.Command{
	Action: doList,
	Name:   "list",
	Usage:  "Lists all registered contracts with their messages and storage layout",
}

func doList(context *cli.Context) error {
	for _, name := range contract.Names() {
		c, err := contract.New(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s:\n", name)
		if info, found := c.DeployInfo(); found {
			fmt.Printf("  deploy(%s)\n", info.ArgsType)
		}
		fmt.Printf("  messages:\n")
		for _, info := range c.Messages() {
			fmt.Printf("    %v\n", info)
		}
		fmt.Printf("  layout:\n")
		for _, field := range c.Layout() {
			fmt.Printf("    %v\n", field)
		}
	}
	return nil
}
