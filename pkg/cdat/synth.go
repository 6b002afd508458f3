// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"bytes"
	"fmt"
	"math"

	pkgbytes "github.com/linuxboot/cdat/pkg/bytes"
)

// DefaultRecords returns the structures of the default table: one zeroed
// instance of every structure type, SSLBIS carrying two entries.
func DefaultRecords() []Record {
	return []Record{
		&DSMAS{},
		&DSLBIS{},
		&DSMSCIS{},
		&DSIS{},
		&DSEMTS{},
		&SSLBIS{Entries: make([]SSLBE, 2)},
	}
}

// NewDefaultTable synthesizes the default table, used when no CDAT file is
// supplied.
func NewDefaultTable() Table {
	t, err := NewTable(0, DefaultRecords()...)
	if err != nil {
		// the default records always fit
		panic(fmt.Sprintf("unable to build the default CDAT: %v", err))
	}
	return t
}

// NewTable synthesizes a table from the records, in the order given. The
// sub-headers are derived from the records and the header (length and
// checksum included) is computed from scratch.
func NewTable(sequence uint32, records ...Record) (Table, error) {
	return newRecordTable(sequence, DefaultMaxEntries, records)
}

// newRecordTable returns a nil Table on any error.
func newRecordTable(sequence uint32, maxEntries int, records []Record) (Table, error) {
	if len(records)+1 > maxEntries {
		return nil, &ErrCapacityExceeded{Limit: maxEntries}
	}

	var buf bytes.Buffer
	buf.Write(make([]byte, TableHeaderSize))
	entries := make(pkgbytes.Ranges, 0, len(records)+1)
	entries = append(entries, pkgbytes.Range{Offset: 0, Length: uint64(TableHeaderSize)})
	for idx, r := range records {
		if r == nil {
			return nil, fmt.Errorf("record #%d is nil", idx)
		}
		offset := buf.Len()
		n, err := r.WriteTo(&buf)
		if err != nil {
			return nil, fmt.Errorf("unable to write record #%d (%s): %w", idx, r.Type(), err)
		}
		if int(n) != r.Len() {
			return nil, fmt.Errorf("record #%d (%s) wrote %d bytes instead of %d", idx, r.Type(), n, r.Len())
		}
		entries = append(entries, pkgbytes.Range{Offset: uint64(offset), Length: uint64(n)})
	}
	if uint64(buf.Len()) > math.MaxUint32 {
		return nil, &ErrRecordTooLong{Table: true, Length: uint64(buf.Len()), Limit: math.MaxUint32}
	}

	header := TableHeader{
		Length:   uint32(buf.Len()),
		Revision: Revision,
		Sequence: sequence,
	}
	image := buf.Bytes()
	copy(image, header.Bytes())
	// The header is summed with a zero checksum byte, so the complement
	// makes the whole table sum to zero.
	header.Checksum = ChecksumComplement(image)
	image[checksumOffset] = header.Checksum

	return &recordTable{tableBase: tableBase{
		image:   image,
		header:  header,
		entries: entries,
		records: append([]Record(nil), records...),
	}}, nil
}

// Rehash synthesizes a new table from the records of `t` with the given
// sequence number, fixing its length and checksum.
func Rehash(t Table, sequence uint32) (Table, error) {
	if t.Bytes() == nil {
		return nil, ErrClosed
	}
	return NewTable(sequence, t.Records()...)
}
