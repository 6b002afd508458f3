// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"errors"
	"fmt"

	pkgbytes "github.com/linuxboot/cdat/pkg/bytes"
)

var (
	// ErrEmptyFile means the CDAT file contains no bytes at all.
	ErrEmptyFile = errors.New("file is empty")

	// ErrClosed means the table was already released with Close.
	ErrClosed = errors.New("CDAT table is closed")
)

// ErrRead means the CDAT file could be opened, but not read in full.
type ErrRead struct {
	Path string
	Err  error
}

func (err *ErrRead) Error() string {
	return fmt.Sprintf("unable to read CDAT file '%s': %v", err.Path, err.Err)
}

func (err *ErrRead) Unwrap() error {
	return err.Err
}

// ErrStructure means the table is structurally invalid. Err describes the
// exact violation.
type ErrStructure struct {
	// Entry is the index of the entry being parsed (0 is the table header).
	Entry int
	// Offset is the position of the entry within the table.
	Offset uint64
	Err    error
}

func (err *ErrStructure) Error() string {
	return fmt.Sprintf("invalid CDAT entry #%d at offset 0x%X: %v", err.Entry, err.Offset, err.Err)
}

func (err *ErrStructure) Unwrap() error {
	return err.Err
}

// IsStructural returns true if the error (or any error it wraps) reports
// a structurally invalid table.
func IsStructural(err error) bool {
	var structErr *ErrStructure
	return errors.As(err, &structErr)
}

// ErrTruncated means fewer bytes are left than a header requires.
type ErrTruncated struct {
	What string
	Need uint64
	Have uint64
}

func (err *ErrTruncated) Error() string {
	return fmt.Sprintf("too few bytes left for a %s: need %d, have %d", err.What, err.Need, err.Have)
}

// ErrUnknownType means the structure type tag is outside of the closed set.
type ErrUnknownType struct {
	Type RecordType
}

func (err *ErrUnknownType) Error() string {
	return fmt.Sprintf("type %d is reserved", uint8(err.Type))
}

// ErrReservedNotZero means a reserved field has a nonzero value.
type ErrReservedNotZero struct {
	Value uint8
}

func (err *ErrReservedNotZero) Error() string {
	return fmt.Sprintf("reserved field is 0x%02X, expected zero", err.Value)
}

// ErrZeroLength means a structure declares zero length.
type ErrZeroLength struct {
	Type RecordType
}

func (err *ErrZeroLength) Error() string {
	return fmt.Sprintf("length of %s is zero", err.Type)
}

// ErrLengthMismatch means the declared length does not fit the shape of
// the structure type.
type ErrLengthMismatch struct {
	Type   RecordType
	Length int
	// Size is the exact (fixed structures) or the minimal (variable
	// structures) length.
	Size int
	// Unit is the size of one entry of a variable structure; zero otherwise.
	Unit int
}

func (err *ErrLengthMismatch) Error() string {
	if err.Unit == 0 {
		return fmt.Sprintf("length of %s is %d, expected %d", err.Type, err.Length, err.Size)
	}
	return fmt.Sprintf("length of %s is %d, expected %d + N*%d", err.Type, err.Length, err.Size, err.Unit)
}

// ErrOutOfBounds means a structure runs past the end of the table.
type ErrOutOfBounds struct {
	Range  pkgbytes.Range
	Length uint64
	Err    error
}

func (err *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("structure %s does not fit into %d bytes: %v", err.Range, err.Length, err.Err)
}

func (err *ErrOutOfBounds) Unwrap() error {
	return err.Err
}

// ErrHeaderLength means the length declared by the table header differs
// from the real size of the table.
type ErrHeaderLength struct {
	Declared uint32
	Actual   uint64
}

func (err *ErrHeaderLength) Error() string {
	return fmt.Sprintf("table header declares %d bytes, but the table is %d bytes long", err.Declared, err.Actual)
}

// ErrChecksumMismatch means the bytes of the table do not sum to zero.
// It is a warning: the table is still used as it is.
type ErrChecksumMismatch struct {
	Sum uint8
}

func (err *ErrChecksumMismatch) Error() string {
	return fmt.Sprintf("checksum mismatch: the bytes sum to 0x%02X instead of zero", err.Sum)
}

// ErrCapacityExceeded means the table has more entries than allowed.
type ErrCapacityExceeded struct {
	Limit int
}

func (err *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("the table has more than %d entries", err.Limit)
}

// ErrSizeExceeded means the (decoded) CDAT file is larger than the size limit.
type ErrSizeExceeded struct {
	Limit uint64
}

func (err *ErrSizeExceeded) Error() string {
	return fmt.Sprintf("the table is larger than %d bytes", err.Limit)
}

// ErrRecordTooLong means a structure (or the whole table) does not fit its
// length field.
type ErrRecordTooLong struct {
	// Type is the structure type; meaningless if Table is true.
	Type   RecordType
	Table  bool
	Length uint64
	Limit  uint64
}

func (err *ErrRecordTooLong) Error() string {
	if err.Table {
		return fmt.Sprintf("the table is %d bytes long, the limit is %d", err.Length, err.Limit)
	}
	return fmt.Sprintf("%s is %d bytes long, the limit is %d", err.Type, err.Length, err.Limit)
}

// ErrEntryIndex means there is no entry with the requested index.
type ErrEntryIndex struct {
	Index int
	Count int
}

func (err *ErrEntryIndex) Error() string {
	return fmt.Sprintf("entry index %d is out of range [0, %d)", err.Index, err.Count)
}

// ErrUnexpectedRevision means the table header carries a revision this
// package does not produce.
type ErrUnexpectedRevision struct {
	Revision uint8
}

func (err *ErrUnexpectedRevision) Error() string {
	return fmt.Sprintf("unexpected revision %d, expected %d", err.Revision, Revision)
}

// ErrHeaderReserved means the reserved bytes of the table header are not zero.
type ErrHeaderReserved struct {
	Reserved [6]uint8
}

func (err *ErrHeaderReserved) Error() string {
	return fmt.Sprintf("reserved bytes of the table header are not zero: 0x%X", err.Reserved)
}

// ErrEntriesLayout means the entries do not cover the table exactly.
type ErrEntriesLayout struct {
	Entries pkgbytes.Ranges
	Length  uint64
}

func (err *ErrEntriesLayout) Error() string {
	return fmt.Sprintf("entries %s do not tile a table of %d bytes", err.Entries, err.Length)
}
