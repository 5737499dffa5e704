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

package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/bridgeum/go-bridgeum/common"
	"github.com/bridgeum/go-bridgeum/core"
	"github.com/bridgeum/go-bridgeum/crypto"
	"github.com/holiman/uint256"
)

var commandGenerate = cli.Command{
	Name:      "generate",
	Usage:     "generate a new operator key",
	ArgsUsage: "[<keyfile>]",
	Description: `
Generates a fresh secp256k1 private key, stores it hex-encoded in the keyfile
and prints the derived bridgeum address. The command refuses to overwrite an
existing keyfile.`,
	Flags: []cli.Flag{configFileFlag, keyfileFlag},
	Action: func(ctx *cli.Context) error {
		keyfile, err := resolveKeyfile(ctx)
		if err != nil {
			return err
		}
		if ctx.NArg() > 0 {
			keyfile = ctx.Args().First()
		}
		if _, err := os.Stat(keyfile); err == nil {
			return fmt.Errorf("keyfile already exists at %s", keyfile)
		} else if !os.IsNotExist(err) {
			return err
		}
		key, err := crypto.GenerateKey()
		if err != nil {
			return fmt.Errorf("failed to generate key: %v", err)
		}
		if err := crypto.SaveECDSA(keyfile, key); err != nil {
			return fmt.Errorf("failed to save keyfile: %v", err)
		}
		fmt.Println("Address:", crypto.PubkeyToAddress(key.PublicKey).Hex())
		return nil
	},
}

var commandInspect = cli.Command{
	Name:      "inspect",
	Usage:     "print the address and public key of a keyfile",
	ArgsUsage: "[<keyfile>]",
	Flags:     []cli.Flag{configFileFlag, keyfileFlag},
	Action: func(ctx *cli.Context) error {
		keyfile, err := resolveKeyfile(ctx)
		if err != nil {
			return err
		}
		if ctx.NArg() > 0 {
			keyfile = ctx.Args().First()
		}
		key, err := crypto.LoadECDSA(keyfile)
		if err != nil {
			return fmt.Errorf("failed to load keyfile: %v", err)
		}
		fmt.Println("Address:   ", crypto.PubkeyToAddress(key.PublicKey).Hex())
		fmt.Println("Public key:", hex.EncodeToString(crypto.FromECDSAPub(&key.PublicKey)))
		return nil
	},
}

var commandSignReceipt = cli.Command{
	Name:  "sign-receipt",
	Usage: "sign a mint receipt for the bridge",
	Description: `
Computes the digest of the (recipient, amount, nonce) receipt using the
bridgeum signing domain and signs it with the keyfile's private key. The
printed signature is what a relayer submits with the matching mint request.
The signing key must hold the MINTER role on the target bridge for the mint
to be accepted.`,
	Flags: []cli.Flag{configFileFlag, keyfileFlag, recipientFlag, amountFlag, nonceFlag},
	Action: func(ctx *cli.Context) error {
		keyfile, err := resolveKeyfile(ctx)
		if err != nil {
			return err
		}
		receipt, err := receiptFromFlags(ctx)
		if err != nil {
			return err
		}
		key, err := crypto.LoadECDSA(keyfile)
		if err != nil {
			return fmt.Errorf("failed to load keyfile: %v", err)
		}
		hash := receipt.Hash()
		sig, err := crypto.Sign(hash.Bytes(), key)
		if err != nil {
			return fmt.Errorf("failed to sign receipt: %v", err)
		}
		fmt.Println("Digest:   ", hash.Hex())
		fmt.Println("Signature:", hex.EncodeToString(sig))
		fmt.Println("Signer:   ", crypto.PubkeyToAddress(key.PublicKey).Hex())
		return nil
	},
}

var commandVerifyReceipt = cli.Command{
	Name:      "verify-receipt",
	Usage:     "recover the signer of a receipt signature",
	ArgsUsage: "<signature-hex>",
	Flags:     []cli.Flag{recipientFlag, amountFlag, nonceFlag},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return fmt.Errorf("expected the signature as the single argument")
		}
		receipt, err := receiptFromFlags(ctx)
		if err != nil {
			return err
		}
		sig, err := hex.DecodeString(ctx.Args().First())
		if err != nil {
			return fmt.Errorf("invalid signature hex: %v", err)
		}
		hash := receipt.Hash()
		pubkey, err := crypto.SigToPub(hash.Bytes(), sig)
		if err != nil {
			return fmt.Errorf("signature recovery failed: %v", err)
		}
		fmt.Println("Digest:", hash.Hex())
		fmt.Println("Signer:", crypto.PubkeyToAddress(*pubkey).Hex())
		return nil
	},
}

// receiptFromFlags assembles a receipt from the recipient, amount and nonce
// flags, validating each field the same way the bridge core does.
func receiptFromFlags(ctx *cli.Context) (*core.Receipt, error) {
	recipientHex := ctx.String(recipientFlag.Name)
	if !common.IsHexAddress(recipientHex) {
		return nil, fmt.Errorf("invalid recipient address %q", recipientHex)
	}
	amountDec := ctx.String(amountFlag.Name)
	bigAmount, ok := new(big.Int).SetString(amountDec, 10)
	if !ok || bigAmount.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %q", amountDec)
	}
	amount, overflow := uint256.FromBig(bigAmount)
	if overflow {
		return nil, fmt.Errorf("amount %q exceeds 256 bits", amountDec)
	}
	return &core.Receipt{
		Recipient: common.HexToAddress(recipientHex),
		Amount:    amount,
		Nonce:     ctx.Uint64(nonceFlag.Name),
	}, nil
}
