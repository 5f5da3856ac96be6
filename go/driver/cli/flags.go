// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cliUtils

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/Fantom-foundation/Arca/go/arca"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

type dbFlagType struct {
	cli.StringFlag
}

var DbFlag = &dbFlagType{
	cli.StringFlag{
		Name:      "db",
		Usage:     "directory of the database holding the contract state",
		TakesFile: true,
	},
}

func (f *dbFlagType) Fetch(context *cli.Context) (string, error) {
	dir := context.String(f.Name)
	if dir == "" {
		return "", fmt.Errorf("no database directory given, use --%s", f.Name)
	}
	return dir, nil
}

type callerFlagType struct {
	cli.StringFlag
}

var CallerFlag = &callerFlagType{
	cli.StringFlag{
		Name:  "caller",
		Usage: "hex address of the account issuing the call",
		Value: "0x0000000000000000000000000000000000000000",
	},
}

func (f *callerFlagType) Fetch(context *cli.Context) (arca.Address, error) {
	return arca.AddressFromHex(context.String(f.Name))
}

type argsFlagType struct {
	cli.StringFlag
}

var ArgsFlag = &argsFlagType{
	cli.StringFlag{
		Name:    "args",
		Aliases: []string{"a"},
		Usage:   "arguments of the message in JSON",
	},
}

func (f *argsFlagType) Fetch(context *cli.Context) []byte {
	return []byte(context.String(f.Name))
}

type blockFlagType struct {
	cli.Uint64Flag
}

var BlockFlag = &blockFlagType{
	cli.Uint64Flag{
		Name:  "block",
		Usage: "block number reported to the contract",
	},
}

func (f *blockFlagType) Fetch(context *cli.Context) uint64 {
	return context.Uint64(f.Name)
}

type timestampFlagType struct {
	cli.Uint64Flag
}

var TimestampFlag = &timestampFlagType{
	cli.Uint64Flag{
		Name:  "timestamp",
		Usage: "block timestamp reported to the contract",
	},
}

func (f *timestampFlagType) Fetch(context *cli.Context) uint64 {
	return context.Uint64(f.Name)
}

type stepsFlagType struct {
	cli.IntFlag
}

var StepsFlag = &stepsFlagType{
	cli.IntFlag{
		Name:    "steps",
		Aliases: []string{"n"},
		Usage:   "number of calls to perform",
		Value:   100_000,
	},
}

func (f *stepsFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.Name)
}

type verbosityFlagType struct {
	cli.IntFlag
}

var VerbosityFlag = &verbosityFlagType{
	cli.IntFlag{
		Name:  "verbosity",
		Usage: "log level: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	},
}

func (f *verbosityFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.Name)
}

// SetupLogging installs a terminal logger with the level selected by the
// verbosity flag as the default logger.
func SetupLogging(context *cli.Context) {
	level := log.FromLegacyLevel(VerbosityFlag.Fetch(context))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, level, true)))
}

var commonFlags = []cli.Flag{
	cpuProfileFlag,
	VerbosityFlag,
}

var cpuProfileFlag = &cli.StringFlag{
	Name:  "cpuprofile",
	Usage: "store CPU profile in the provided filename",
}

// AddCommonFlags adds profiling and logging flags to the given command.
func AddCommonFlags(command cli.Command) cli.Command {
	command.Flags = append(command.Flags, commonFlags...)

	action := command.Action
	command.Action = func(ctx *cli.Context) (err error) {
		SetupLogging(ctx)

		if cpuprofileFilename := ctx.String(cpuProfileFlag.Name); cpuprofileFilename != "" {
			f, err := os.Create(cpuprofileFilename)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}

		return action(ctx)
	}
	return command
}
