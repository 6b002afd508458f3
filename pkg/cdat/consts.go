// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"encoding/binary"
	"fmt"
)

// RecordType is the tag of a CDAT structure, stored in the first byte of
// its sub-header.
type RecordType uint8

// The closed set of CDAT structure types. Every other value is reserved.
const (
	RecordTypeDSMAS   = RecordType(0x00)
	RecordTypeDSLBIS  = RecordType(0x01)
	RecordTypeDSMSCIS = RecordType(0x02)
	RecordTypeDSIS    = RecordType(0x03)
	RecordTypeDSEMTS  = RecordType(0x04)
	RecordTypeSSLBIS  = RecordType(0x05)
)

func (_type RecordType) String() string {
	switch _type {
	case RecordTypeDSMAS:
		return "DSMAS"
	case RecordTypeDSLBIS:
		return "DSLBIS"
	case RecordTypeDSMSCIS:
		return "DSMSCIS"
	case RecordTypeDSIS:
		return "DSIS"
	case RecordTypeDSEMTS:
		return "DSEMTS"
	case RecordTypeSSLBIS:
		return "SSLBIS"
	}
	return fmt.Sprintf("reserved(0x%02X)", uint8(_type))
}

// MarshalText implements encoding.TextMarshaler.
func (_type RecordType) MarshalText() ([]byte, error) {
	return []byte(_type.String()), nil
}

// Revision is the CDAT revision written into synthesized tables.
const Revision = 1

// DefaultMaxEntries is the maximal amount of entries (including the table
// header) a table may consist of, unless a different limit is requested.
const DefaultMaxEntries = 1 << 16

// checksumOffset is the position of TableHeader.Checksum in the encoded header.
const checksumOffset = 5

var (
	// TableHeaderSize is the size of the encoded TableHeader.
	TableHeaderSize = binary.Size(TableHeader{})

	// SubHeaderSize is the size of the encoded SubHeader which starts
	// every structure.
	SubHeaderSize = binary.Size(SubHeader{})

	// SSLBISHeaderSize is the size of an SSLBIS structure without entries.
	SSLBISHeaderSize = SubHeaderSize + binary.Size(sslbisHeader{})

	// SSLBESize is the size of a single SSLBIS entry.
	SSLBESize = binary.Size(SSLBE{})
)

// Source tells which construction path produced a table.
type Source int

// Known table sources.
const (
	SourceUndefined = Source(iota)
	SourceFile
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceDefault:
		return "default"
	}
	return "undefined"
}
