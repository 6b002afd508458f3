// Copyright 2017-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cdattool inspects, checks and builds the Coherent Device Attribute Table
// (CDAT) of a CXL device.
//
// Synopsis:
//     cdattool show [-f CDAT_FILE] [options]
//     cdattool check -f CDAT_FILE
//     cdattool build -o OUTPUT_FILE [options]
//
// An example:
//     cdattool build -o default.cdat --sequence 1
//     cdattool build -i device.cdat -o device.cdat.xz --compress xz
//     cdattool check -f device.cdat.xz
//     cdattool show -f device.cdat --format=json | jq -r '.entries[] | select(.type == "DSMAS") | .fields.DPALength'
//
// Description:
//     show:  Print the table (the default table if no file is given)
//     check: Parse and verify a table, reporting every problem found
//     build: Write the default table, or re-write an existing one with a
//            fixed length and checksum
//
// Files ending with .xz, .lzma, .lz4, .zst or .zlib are decompressed transparently.
package main

import (
	"log"

	"github.com/jessevdk/go-flags"

	"github.com/linuxboot/cdat/cmds/cdattool/commands"
	"github.com/linuxboot/cdat/cmds/cdattool/commands/build"
	"github.com/linuxboot/cdat/cmds/cdattool/commands/check"
	"github.com/linuxboot/cdat/cmds/cdattool/commands/show"
)

var (
	knownCommands = map[string]commands.Command{
		"show":  &show.Command{},
		"check": &check.Command{},
		"build": &build.Command{},
	}
)

func main() {
	flagsParser := flags.NewParser(nil, flags.Default)
	for commandName, command := range knownCommands {
		_, err := flagsParser.AddCommand(commandName, command.ShortDescription(), command.LongDescription(), command)
		if err != nil {
			panic(err)
		}
	}

	// parse arguments and execute the appropriate command
	if _, err := flagsParser.Parse(); err != nil {
		log.Fatal(err)
	}
}
