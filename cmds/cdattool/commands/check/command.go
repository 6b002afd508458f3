// Copyright 2017-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"fmt"
	"io"

	"github.com/linuxboot/cdat/cmds/cdattool/commands"
	"github.com/linuxboot/cdat/pkg/cdat"
	"github.com/linuxboot/cdat/pkg/log"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	CDATPath   string `short:"f" long:"cdat" description:"path to the CDAT file" required:"true"`
	MaxEntries int    `long:"max-entries" description:"maximal amount of entries, the table header included"`

	stdout io.Writer
	logger log.Logger
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "parses and verifies CDAT"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Unlike the other commands, a missing file is an error here: the default table is never checked instead."
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) != 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}
	if cmd.MaxEntries < 0 {
		return commands.ErrArgs{Err: fmt.Errorf("negative amount of entries: %d", cmd.MaxEntries)}
	}

	logger := cmd.logger
	if logger == nil {
		logger = log.DefaultLogger
	}
	opts := []cdat.Option{
		cdat.WithLogger(logger),
		cdat.WithFS(strictFS{}),
	}
	if cmd.MaxEntries > 0 {
		opts = append(opts, cdat.WithMaxEntries(cmd.MaxEntries))
	}

	table, err := cdat.Build(cmd.CDATPath, opts...)
	if err != nil {
		return fmt.Errorf("CDAT '%s' is invalid: %w", cmd.CDATPath, err)
	}
	defer table.Close()

	if err := cdat.Verify(table); err != nil {
		return fmt.Errorf("CDAT '%s' is invalid: %w", cmd.CDATPath, err)
	}

	fmt.Fprintf(commands.Output(cmd.stdout), "%s: OK (%d entries, %d bytes)\n",
		cmd.CDATPath, len(table.Entries()), table.Header().Length)
	return nil
}
