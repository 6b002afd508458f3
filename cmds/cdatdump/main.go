// Copyright 2023-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cdatdump prints every structure of one or more CDAT files.
//
// Synopsis:
//     cdatdump [--hex] [--entry N] [--max-entries N] [CDAT_FILE...]
//
// Without files the default table is dumped.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/linuxboot/cdat/pkg/cdat"
	"github.com/linuxboot/cdat/pkg/log"
)

var (
	hexDump    = flag.BoolP("hex", "x", false, "print also a hex dump of every entry")
	entry      = flag.IntP("entry", "n", -1, "dump only the entry with this index (0 is the table header)")
	maxEntries = flag.Int("max-entries", cdat.DefaultMaxEntries, "maximal amount of entries, the table header included")
)

type config struct {
	hex        bool
	entry      int
	maxEntries int
	logger     log.Logger
}

func main() {
	flag.Parse()

	cfg := config{
		hex:        *hexDump,
		entry:      *entry,
		maxEntries: *maxEntries,
		logger:     log.DefaultLogger,
	}

	names := flag.Args()
	if len(names) == 0 {
		names = []string{""}
	}

	failed := false
	for _, name := range names {
		if err := dump(os.Stdout, name, cfg); err != nil {
			log.Errorf("%v", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func dump(w io.Writer, name string, cfg config) error {
	table, err := cdat.Build(name, cdat.WithMaxEntries(cfg.maxEntries), cdat.WithLogger(cfg.logger))
	if err != nil {
		return err
	}
	defer table.Close()

	if name == "" {
		name = "<default>"
	}
	fmt.Fprintf(w, "%s: %s, source: %s\n", name, table.Header(), table.Source())

	entries := table.Entries()
	if cfg.entry < -1 || cfg.entry >= len(entries) {
		return &cdat.ErrEntryIndex{Index: cfg.entry, Count: len(entries)}
	}
	records := table.Records()
	for idx, r := range entries {
		if cfg.entry >= 0 && idx != cfg.entry {
			continue
		}
		if idx == 0 {
			fmt.Fprintf(w, "\n#0 Header at 0x%X\n", r.Offset)
		} else {
			fmt.Fprintf(w, "\n#%d at 0x%X: %s", idx, r.Offset, cdat.RecordString(records[idx-1]))
		}
		if cfg.hex {
			b, err := table.Entry(idx)
			if err != nil {
				return err
			}
			fmt.Fprint(w, hex.Dump(b))
		}
	}
	return nil
}
