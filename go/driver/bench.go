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
	"strings"
	"time"

	"github.com/Fantom-foundation/Arca/go/backend"
	cliUtils "github.com/Fantom-foundation/Arca/go/driver/cli"
	"github.com/Fantom-foundation/Arca/go/examples"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
)

var BenchCmd = cli.Command{
	Action:    doBench,
	Name:      "bench",
	Usage:     "Runs the workload of an example contract on an in-memory host",
	ArgsUsage: "<example>",
	Flags: []cli.Flag{
		cliUtils.StepsFlag,
	},
}

func doBench(context *cli.Context) error {
	var name string
	if context.Args().Len() >= 1 {
		name = context.Args().Get(0)
	}
	example, found := examples.Get(name)
	if !found {
		names := []string{}
		for _, e := range examples.All() {
			names = append(names, e.Name)
		}
		return fmt.Errorf("invalid example, use one of: %s", strings.Join(names, ", "))
	}

	instance, err := example.NewInstance(backend.NewMemoryStorage())
	if err != nil {
		return err
	}
	if err := example.Deploy(instance); err != nil {
		return err
	}

	steps := cliUtils.StepsFlag.Fetch(context)
	start := time.Now()
	res, err := example.RunOn(instance, steps)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	rate := float64(res.Calls) / duration.Seconds()
	fmt.Printf(
		"Executed %d calls of %s in %v (~%s calls per second), %d failed, %d events\n",
		res.Calls, example.Name, duration.Round(time.Millisecond),
		unitconv.FormatPrefix(rate, unitconv.SI, 0), res.Failed, res.Events,
	)
	return nil
}
