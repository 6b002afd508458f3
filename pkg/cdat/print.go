// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	prettytable "github.com/jedib0t/go-pretty/v6/table"

	"github.com/linuxboot/cdat/pkg/pretty"
)

// Summary renders the table header and the list of entries as text tables.
func Summary(t Table) string {
	header := t.Header()
	var s strings.Builder

	h := prettytable.NewWriter()
	h.SetTitle("CDAT Header (%s)", t.Source())
	h.AppendHeader(prettytable.Row{"Length", "Revision", "Checksum", "Sequence"})
	h.AppendRow(prettytable.Row{
		fmt.Sprintf("%d (%s)", header.Length, humanize.IBytes(uint64(header.Length))),
		header.Revision,
		fmt.Sprintf("0x%02X", header.Checksum),
		header.Sequence,
	})
	s.WriteString(h.Render())
	s.WriteString("\n")

	e := prettytable.NewWriter()
	e.SetTitle("CDAT Entries")
	e.AppendHeader(prettytable.Row{"#", "Type", "Offset", "Length"})
	records := t.Records()
	for idx, entry := range t.Entries() {
		name := "Header"
		if idx > 0 && idx-1 < len(records) {
			name = records[idx-1].Type().String()
		}
		e.AppendRow(prettytable.Row{
			idx,
			name,
			fmt.Sprintf("0x%04X", entry.Offset),
			fmt.Sprintf("%d (%s)", entry.Length, humanize.IBytes(entry.Length)),
		})
	}
	s.WriteString(e.Render())
	s.WriteString("\n")

	for _, w := range t.Warnings() {
		fmt.Fprintf(&s, "WARNING: %v\n", w)
	}
	return s.String()
}

// RecordString renders the fields of a record, one per line.
func RecordString(r Record) string {
	return fmt.Sprintf("%s (%d bytes)\n%s", r.Type(), r.Len(), pretty.String(r))
}

// JSONView is the JSON representation of a table.
type JSONView struct {
	Source   string      `json:"source"`
	Header   TableHeader `json:"header"`
	Entries  []JSONEntry `json:"entries"`
	Warnings []string    `json:"warnings,omitempty"`
}

// JSONEntry is a single structure of JSONView.
type JSONEntry struct {
	Type   RecordType
	Offset uint64
	Length uint64
	// Record is omitted from the output if nil.
	Record Record
}

// MarshalJSON implements json.Marshaler. The record type is stored as
// a discriminator next to the record fields.
func (e JSONEntry) MarshalJSON() ([]byte, error) {
	var fields json.RawMessage
	if e.Record != nil {
		b, err := json.Marshal(e.Record)
		if err != nil {
			return nil, fmt.Errorf("unable to marshal %s: %w", e.Record.Type(), err)
		}
		fields = b
	}
	return json.Marshal(struct {
		Type   RecordType      `json:"type"`
		Offset uint64          `json:"offset"`
		Length uint64          `json:"length"`
		Fields json.RawMessage `json:"fields,omitempty"`
	}{
		Type:   e.Type,
		Offset: e.Offset,
		Length: e.Length,
		Fields: fields,
	})
}

// NewJSONView returns the JSON representation of the table. The table
// header is not listed among the entries.
func NewJSONView(t Table) JSONView {
	view := JSONView{
		Source: t.Source().String(),
		Header: t.Header(),
	}
	entries := t.Entries()
	for idx, r := range t.Records() {
		if idx+1 >= len(entries) {
			break
		}
		view.Entries = append(view.Entries, JSONEntry{
			Type:   r.Type(),
			Offset: entries[idx+1].Offset,
			Length: entries[idx+1].Length,
			Record: r,
		})
	}
	for _, w := range t.Warnings() {
		view.Warnings = append(view.Warnings, w.Error())
	}
	return view
}
