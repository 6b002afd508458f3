// Copyright 2017-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package show

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/linuxboot/cdat/cmds/cdattool/commands"
	"github.com/linuxboot/cdat/pkg/cdat"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	CDATPath       string  `short:"f" long:"cdat" description:"path to the CDAT file; the default table is shown if empty"`
	Format         *string `long:"format" description:"output format [text, json]"`
	IncludeRecords *bool   `long:"include-records" description:"print also the fields of every structure"`

	stdout io.Writer
}

type Format int

const (
	FormatUndefined = Format(iota)
	FormatText
	FormatJSON
)

func ParseFormat(s string) Format {
	switch strings.Trim(strings.ToLower(s), " ") {
	case "text":
		return FormatText
	case "json":
		return FormatJSON
	}
	return FormatUndefined
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "prints CDAT"
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

	includeRecords := false
	if cmd.IncludeRecords != nil {
		includeRecords = *cmd.IncludeRecords
	}

	format := FormatText
	if cmd.Format != nil {
		format = ParseFormat(*cmd.Format)
		if format == FormatUndefined {
			return commands.ErrArgs{Err: fmt.Errorf("unknown format '%s'", *cmd.Format)}
		}
	}

	table, err := cdat.Build(cmd.CDATPath)
	if err != nil {
		return fmt.Errorf("unable to build CDAT: %w", err)
	}
	defer table.Close()

	stdout := commands.Output(cmd.stdout)
	switch format {
	case FormatText:
		fmt.Fprint(stdout, cdat.Summary(table))
		if includeRecords {
			for idx, r := range table.Records() {
				fmt.Fprintf(stdout, "\n#%d %s", idx+1, cdat.RecordString(r))
			}
		}
	case FormatJSON:
		view := cdat.NewJSONView(table)
		if !includeRecords {
			for idx := range view.Entries {
				view.Entries[idx].Record = nil
			}
		}
		b, err := json.Marshal(view)
		if err != nil {
			return fmt.Errorf("unable to marshal CDAT: %w", err)
		}
		fmt.Fprintf(stdout, "%s\n", b)
	}

	return nil
}
