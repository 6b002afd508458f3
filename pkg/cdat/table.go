// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"io"

	"github.com/xaionaro-go/bytesextra"

	pkgbytes "github.com/linuxboot/cdat/pkg/bytes"
)

// Table is a built CDAT: the header plus the structures, each addressable
// as an entry. Entry 0 is always the table header, entries 1..N are the
// structures in their order within the table.
//
// A Table is immutable, so any amount of goroutines may read it
// concurrently. Close must not be called concurrently with other methods.
type Table interface {
	// Source tells which construction path produced the table.
	Source() Source

	// Header returns the table header.
	Header() TableHeader

	// Entries returns the (offset, length) of every entry within Bytes().
	Entries() pkgbytes.Ranges

	// Entry returns the bytes of entry `idx`. The result must not be modified.
	Entry(idx int) ([]byte, error)

	// Records returns the decoded structures (entries 1..N). The records
	// must not be modified.
	Records() []Record

	// Bytes returns the whole table. The result must not be modified.
	Bytes() []byte

	// Warnings returns the non-fatal problems found while building the table.
	Warnings() []error

	// NewReader returns an independent reader over the table bytes.
	NewReader() io.ReadSeeker

	// Close releases the table. Closing twice returns ErrClosed.
	Close() error
}

// tableBase implements the read-only part of Table over a table image and
// its entries.
type tableBase struct {
	image    []byte
	header   TableHeader
	entries  pkgbytes.Ranges
	records  []Record
	warnings []error
}

// Header implements Table.
func (t *tableBase) Header() TableHeader {
	return t.header
}

// Entries implements Table.
func (t *tableBase) Entries() pkgbytes.Ranges {
	return append(pkgbytes.Ranges(nil), t.entries...)
}

// Entry implements Table.
func (t *tableBase) Entry(idx int) ([]byte, error) {
	if t.image == nil {
		return nil, ErrClosed
	}
	if idx < 0 || idx >= len(t.entries) {
		return nil, &ErrEntryIndex{Index: idx, Count: len(t.entries)}
	}
	return t.entries[idx].Slice(t.image), nil
}

// Records implements Table.
func (t *tableBase) Records() []Record {
	return append([]Record(nil), t.records...)
}

// Bytes implements Table.
func (t *tableBase) Bytes() []byte {
	return t.image[:len(t.image):len(t.image)]
}

// Warnings implements Table.
func (t *tableBase) Warnings() []error {
	return append([]error(nil), t.warnings...)
}

// NewReader implements Table.
func (t *tableBase) NewReader() io.ReadSeeker {
	return bytesextra.NewReadWriteSeeker(append([]byte(nil), t.image...))
}

func (t *tableBase) release() error {
	if t.image == nil {
		return ErrClosed
	}
	*t = tableBase{}
	return nil
}

// bufferTable is a table parsed from a file. It owns the one buffer the
// file was read into; every entry borrows a sub-range of it and every
// record was decoded from its entry.
type bufferTable struct {
	tableBase
}

var _ Table = (*bufferTable)(nil)

// Source implements Table.
func (t *bufferTable) Source() Source {
	return SourceFile
}

// Close implements Table.
func (t *bufferTable) Close() error {
	return t.release()
}

// recordTable is a synthesized table. It owns the header and each of the
// records as separate objects; the image is encoded from them once, when
// the table is built.
type recordTable struct {
	tableBase
}

var _ Table = (*recordTable)(nil)

// Source implements Table.
func (t *recordTable) Source() Source {
	return SourceDefault
}

// Close implements Table.
func (t *recordTable) Close() error {
	return t.release()
}
