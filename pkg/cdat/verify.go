// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	pkgbytes "github.com/linuxboot/cdat/pkg/bytes"
)

// Verify re-checks a built table and returns all the findings at once
// (as *multierror.Error), or nil if the table is well formed.
//
// Unlike Parse it also reports what Parse tolerates: a checksum mismatch,
// nonzero reserved header bytes and an unexpected revision.
func Verify(t Table) error {
	image := t.Bytes()
	if image == nil {
		return ErrClosed
	}
	length := uint64(len(image))
	header := t.Header()

	var result *multierror.Error
	if sum := Checksum(image); sum != 0 {
		result = multierror.Append(result, &ErrChecksumMismatch{Sum: sum})
	}
	if uint64(header.Length) != length {
		result = multierror.Append(result, &ErrHeaderLength{Declared: header.Length, Actual: length})
	}
	if header.Revision != Revision {
		result = multierror.Append(result, &ErrUnexpectedRevision{Revision: header.Revision})
	}
	if !pkgbytes.IsZeroFilled(header.Reserved[:]) {
		result = multierror.Append(result, &ErrHeaderReserved{Reserved: header.Reserved})
	}

	entries := t.Entries()
	if len(entries) == 0 || entries[0] != (pkgbytes.Range{Offset: 0, Length: uint64(TableHeaderSize)}) || !entries.Tiles(length) {
		result = multierror.Append(result, &ErrEntriesLayout{Entries: entries, Length: length})
	}

	records := t.Records()
	if len(records)+1 != len(entries) {
		result = multierror.Append(result, fmt.Errorf("the table has %d entries, but %d records", len(entries), len(records)))
		return result.ErrorOrNil()
	}
	for idx, r := range records {
		entry := entries[idx+1]
		if entry.End() > length {
			continue
		}
		if err := verifyEntry(entry.Slice(image), r); err != nil {
			result = multierror.Append(result, fmt.Errorf("entry #%d: %w", idx+1, err))
		}
	}

	return result.ErrorOrNil()
}

// verifyEntry checks that the entry bytes are exactly the encoding of the record.
func verifyEntry(b []byte, r Record) error {
	if uint64(len(b)) < uint64(SubHeaderSize) {
		return &ErrTruncated{What: "structure header", Need: uint64(SubHeaderSize), Have: uint64(len(b))}
	}
	hdr, err := parseSubHeader(b[:SubHeaderSize])
	if err != nil {
		return err
	}
	if _, err := checkSubHeader(hdr); err != nil {
		return err
	}
	if int(hdr.Length) != len(b) {
		return &ErrLengthMismatch{Type: hdr.Type, Length: int(hdr.Length), Size: len(b)}
	}
	if hdr.Type != r.Type() {
		return fmt.Errorf("the entry is %s, but the record is %s", hdr.Type, r.Type())
	}
	encoded, err := Marshal(r)
	if err != nil {
		return err
	}
	if string(encoded) != string(b) {
		return fmt.Errorf("%s does not match its record", hdr.Type)
	}
	return nil
}
