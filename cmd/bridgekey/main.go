// Copyright 2025 The go-bridgeum Authors
// This file is part of go-bridgeum.
//
// go-bridgeum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-bridgeum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-bridgeum. If not, see <http://www.gnu.org/licenses/>.

// bridgekey manages bridgeum operator keys and produces the off-chain receipt
// signatures that authorize mints on the bridge. The sign-receipt command
// reproduces the exact digest construction of the core, so its output is what
// relayers submit alongside a mint request.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/bridgeum/go-bridgeum/params"
)

const defaultKeyfileName = "bridgekey.hex"

var app *cli.App

func init() {
	app = cli.NewApp()
	app.Name = "bridgekey"
	app.Usage = "bridgeum key manager and receipt signer"
	app.Version = params.Version
	app.Commands = []cli.Command{
		commandGenerate,
		commandInspect,
		commandSignReceipt,
		commandVerifyReceipt,
	}
}

// Commonly used command line flags.
var (
	keyfileFlag = cli.StringFlag{
		Name:  "keyfile",
		Usage: "file containing the hex-encoded private key",
		Value: defaultKeyfileName,
	}
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	recipientFlag = cli.StringFlag{
		Name:  "recipient",
		Usage: "hex address of the account to be credited",
	}
	amountFlag = cli.StringFlag{
		Name:  "amount",
		Usage: "decimal amount of wrapped asset",
	}
	nonceFlag = cli.Uint64Flag{
		Name:  "nonce",
		Usage: "unique nonce of the receipt",
	}
)

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
