// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"github.com/linuxboot/cdat/pkg/check"
	"github.com/linuxboot/cdat/pkg/log"

	pkgbytes "github.com/linuxboot/cdat/pkg/bytes"
)

// Parser parses and validates CDAT images.
type Parser struct {
	// Name identifies the image in log messages (usually the file name).
	Name string

	// MaxEntries limits the amount of entries, the table header included.
	// Zero means DefaultMaxEntries.
	MaxEntries int

	// Logger receives the warnings. Nil means log.DefaultLogger.
	Logger log.Logger
}

// Parse parses a CDAT image with the default Parser.
func Parse(b []byte) (Table, error) {
	return Parser{}.Parse(b)
}

// Parse walks the structures of the CDAT image `b` and validates each of
// them against its type. None of the length fields is trusted before it is
// checked against the shape of the structure type and the bounds of `b`.
//
// Any structural violation fails the parsing with *ErrStructure. A checksum
// mismatch does not: it is logged and returned by Table.Warnings.
//
// The returned table takes ownership of `b`, so `b` must not be modified
// afterwards.
func (p Parser) Parse(b []byte) (Table, error) {
	maxEntries := p.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	logger := p.Logger
	if logger == nil {
		logger = log.DefaultLogger
	}
	name := p.Name
	if name == "" {
		name = "<buffer>"
	}

	length := uint64(len(b))
	headerSize := uint64(TableHeaderSize)
	if length < headerSize {
		return nil, &ErrStructure{Err: &ErrTruncated{What: "table header", Need: headerSize, Have: length}}
	}
	header, err := parseTableHeader(b[:headerSize])
	if err != nil {
		return nil, &ErrStructure{Err: err}
	}

	entries := pkgbytes.Ranges{{Offset: 0, Length: headerSize}}
	var records []Record
	sum := Checksum(b[:headerSize])
	for offset := headerSize; offset < length; {
		if len(entries) >= maxEntries {
			return nil, &ErrCapacityExceeded{Limit: maxEntries}
		}

		entry, record, err := parseRecord(b, offset)
		if err != nil {
			return nil, &ErrStructure{Entry: len(entries), Offset: offset, Err: err}
		}

		entries = append(entries, entry)
		records = append(records, record)
		sum += Checksum(entry.Slice(b))
		offset = entry.End()
	}

	if uint64(header.Length) != length {
		return nil, &ErrStructure{Err: &ErrHeaderLength{Declared: header.Length, Actual: length}}
	}

	t := &bufferTable{tableBase: tableBase{
		image:   b,
		header:  header,
		entries: entries,
		records: records,
	}}
	if sum != 0 {
		warning := &ErrChecksumMismatch{Sum: sum}
		t.warnings = append(t.warnings, warning)
		logger.Warnf("found checksum mismatch in %s: %v", name, warning)
	}
	return t, nil
}

// parseRecord validates and decodes the structure starting at `offset`.
func parseRecord(b []byte, offset uint64) (pkgbytes.Range, Record, error) {
	length := uint64(len(b))
	if remaining := length - offset; remaining < uint64(SubHeaderSize) {
		return pkgbytes.Range{}, nil, &ErrTruncated{What: "structure header", Need: uint64(SubHeaderSize), Have: remaining}
	}

	hdr, err := parseSubHeader(b[offset : offset+uint64(SubHeaderSize)])
	if err != nil {
		return pkgbytes.Range{}, nil, err
	}
	s, err := checkSubHeader(hdr)
	if err != nil {
		return pkgbytes.Range{}, nil, err
	}

	entry := pkgbytes.Range{Offset: offset, Length: uint64(hdr.Length)}
	if err := check.Range(length, entry); err != nil {
		return pkgbytes.Range{}, nil, &ErrOutOfBounds{Range: entry, Length: length, Err: err}
	}

	record, err := s.decode(entry.Slice(b))
	if err != nil {
		return pkgbytes.Range{}, nil, err
	}
	return entry, record, nil
}
