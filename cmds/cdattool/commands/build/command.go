// Copyright 2017-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package build

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/linuxboot/cdat/cmds/cdattool/commands"
	"github.com/linuxboot/cdat/pkg/cdat"
	"github.com/linuxboot/cdat/pkg/compression"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	OutputPath string  `short:"o" long:"output" description:"path to write the CDAT to" required:"true"`
	InputPath  string  `short:"i" long:"input" description:"path to a CDAT to re-write with a fixed length and checksum; the default table is written if empty"`
	Sequence   uint32  `long:"sequence" description:"the sequence number to write into the table header"`
	Compress   *string `long:"compress" description:"compress the output [xz, lzma, lz4, zstd, zlib]; by default chosen by the output file extension"`

	stdout io.Writer
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "writes CDAT"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return ""
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) != 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}

	compressor := compression.CompressorFromExtension(cmd.OutputPath)
	if cmd.Compress != nil {
		compressor = compression.CompressorFromName(*cmd.Compress)
		if compressor == nil {
			return commands.ErrArgs{Err: fmt.Errorf("unknown compression '%s'", *cmd.Compress)}
		}
	}

	source, err := cdat.Build(cmd.InputPath)
	if err != nil {
		return fmt.Errorf("unable to build CDAT: %w", err)
	}
	defer source.Close()

	table, err := cdat.Rehash(source, cmd.Sequence)
	if err != nil {
		return fmt.Errorf("unable to rebuild CDAT: %w", err)
	}
	defer table.Close()

	b := table.Bytes()
	if compressor != nil {
		b, err = compressor.Encode(b)
		if err != nil {
			return fmt.Errorf("unable to compress CDAT with %s: %w", compressor.Name(), err)
		}
	}

	if err := os.WriteFile(cmd.OutputPath, b, 0o644); err != nil {
		return fmt.Errorf("unable to write CDAT to '%s': %w", cmd.OutputPath, err)
	}

	fmt.Fprintf(commands.Output(cmd.stdout), "written %s (%d entries, checksum 0x%02X) to '%s'\n",
		humanize.IBytes(uint64(len(b))), len(table.Entries()), table.Header().Checksum, cmd.OutputPath)
	return nil
}
