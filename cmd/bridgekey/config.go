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
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// bridgekeyConfig holds the persistent defaults an operator does not want to
// repeat on every invocation.
type bridgekeyConfig struct {
	KeyFile string `toml:",omitempty"`
}

func loadConfig(file string, cfg *bridgekeyConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// resolveKeyfile returns the keyfile path, letting the command line flag
// override the config file value.
func resolveKeyfile(ctx *cli.Context) (string, error) {
	cfg := bridgekeyConfig{KeyFile: defaultKeyfileName}
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return "", err
		}
	}
	if ctx.IsSet(keyfileFlag.Name) || cfg.KeyFile == "" {
		cfg.KeyFile = ctx.String(keyfileFlag.Name)
	}
	return cfg.KeyFile, nil
}
