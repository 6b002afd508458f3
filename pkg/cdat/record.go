// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Record is a CDAT structure. The set of implementations is closed: *DSMAS,
// *DSLBIS, *DSMSCIS, *DSIS, *DSEMTS and *SSLBIS.
//
// A Record holds the payload only; its SubHeader is derived from Type and
// Len when the record is written.
type Record interface {
	// Type returns the structure type tag.
	Type() RecordType

	// Len returns the size of the encoded structure, sub-header included.
	Len() int

	// WriteTo writes the encoded structure, sub-header included.
	WriteTo(w io.Writer) (int64, error)

	isRecord()
}

// DSMAS is the Device Scoped Memory Affinity Structure: a range of device
// physical addresses.
type DSMAS struct {
	DSMADHandle uint8
	Flags       uint8
	Reserved    uint16
	DPABase     uint64
	DPALength   uint64
}

// DSLBIS is the Device Scoped Latency and Bandwidth Information Structure.
type DSLBIS struct {
	Handle        uint8
	Flags         uint8
	DataType      uint8
	Reserved      uint8
	EntryBaseUnit uint64
	Entry         [3]uint16
	Reserved2     uint16
}

// DSMSCIS is the Device Scoped Memory Side Cache Information Structure.
type DSMSCIS struct {
	DSMASHandle         uint8
	Reserved            [3]uint8
	MemorySideCacheSize uint64
	CacheAttributes     uint32
}

// DSIS is the Device Scoped Initiator Structure.
type DSIS struct {
	Flags    uint8
	Handle   uint8
	Reserved uint16
}

// DSEMTS is the Device Scoped EFI Memory Type Structure.
type DSEMTS struct {
	DSMASHandle       uint8
	EFIMemoryTypeAttr uint8
	Reserved          uint16
	DPAOffset         uint64
	DPALength         uint64
}

// SSLBIS is the Switch Scoped Latency and Bandwidth Information Structure.
// It is the only variable-length structure: a fixed part followed by any
// amount of SSLBE entries.
type SSLBIS struct {
	DataType      uint8
	Reserved      [3]uint8
	EntryBaseUnit uint64
	Entries       []SSLBE
}

// SSLBE is a single latency or bandwidth entry of SSLBIS, describing the
// path between two ports.
type SSLBE struct {
	PortXID          uint16
	PortYID          uint16
	LatencyBandwidth uint16
	Reserved         uint16
}

// sslbisHeader is the fixed part of SSLBIS as it is laid out after the
// sub-header.
type sslbisHeader struct {
	DataType      uint8
	Reserved      [3]uint8
	EntryBaseUnit uint64
}

var (
	_ Record = (*DSMAS)(nil)
	_ Record = (*DSLBIS)(nil)
	_ Record = (*DSMSCIS)(nil)
	_ Record = (*DSIS)(nil)
	_ Record = (*DSEMTS)(nil)
	_ Record = (*SSLBIS)(nil)
)

// Type implements Record.
func (*DSMAS) Type() RecordType { return RecordTypeDSMAS }

// Type implements Record.
func (*DSLBIS) Type() RecordType { return RecordTypeDSLBIS }

// Type implements Record.
func (*DSMSCIS) Type() RecordType { return RecordTypeDSMSCIS }

// Type implements Record.
func (*DSIS) Type() RecordType { return RecordTypeDSIS }

// Type implements Record.
func (*DSEMTS) Type() RecordType { return RecordTypeDSEMTS }

// Type implements Record.
func (*SSLBIS) Type() RecordType { return RecordTypeSSLBIS }

// Len implements Record.
func (r *DSMAS) Len() int { return SubHeaderSize + binary.Size(r) }

// Len implements Record.
func (r *DSLBIS) Len() int { return SubHeaderSize + binary.Size(r) }

// Len implements Record.
func (r *DSMSCIS) Len() int { return SubHeaderSize + binary.Size(r) }

// Len implements Record.
func (r *DSIS) Len() int { return SubHeaderSize + binary.Size(r) }

// Len implements Record.
func (r *DSEMTS) Len() int { return SubHeaderSize + binary.Size(r) }

// Len implements Record.
func (r *SSLBIS) Len() int { return SSLBISHeaderSize + len(r.Entries)*SSLBESize }

// WriteTo implements Record.
func (r *DSMAS) WriteTo(w io.Writer) (int64, error) { return writeRecord(w, r, r) }

// WriteTo implements Record.
func (r *DSLBIS) WriteTo(w io.Writer) (int64, error) { return writeRecord(w, r, r) }

// WriteTo implements Record.
func (r *DSMSCIS) WriteTo(w io.Writer) (int64, error) { return writeRecord(w, r, r) }

// WriteTo implements Record.
func (r *DSIS) WriteTo(w io.Writer) (int64, error) { return writeRecord(w, r, r) }

// WriteTo implements Record.
func (r *DSEMTS) WriteTo(w io.Writer) (int64, error) { return writeRecord(w, r, r) }

// WriteTo implements Record.
func (r *SSLBIS) WriteTo(w io.Writer) (int64, error) {
	hdr := sslbisHeader{
		DataType:      r.DataType,
		Reserved:      r.Reserved,
		EntryBaseUnit: r.EntryBaseUnit,
	}
	if len(r.Entries) == 0 {
		return writeRecord(w, r, hdr)
	}
	return writeRecord(w, r, hdr, r.Entries)
}

func (*DSMAS) isRecord()   {}
func (*DSLBIS) isRecord()  {}
func (*DSMSCIS) isRecord() {}
func (*DSIS) isRecord()    {}
func (*DSEMTS) isRecord()  {}
func (*SSLBIS) isRecord()  {}

// writeRecord writes the sub-header of `r` followed by `payload`.
func writeRecord(w io.Writer, r Record, payload ...interface{}) (int64, error) {
	length := r.Len()
	if length > math.MaxUint16 {
		return 0, &ErrRecordTooLong{Type: r.Type(), Length: uint64(length), Limit: math.MaxUint16}
	}

	var buf bytes.Buffer
	buf.Grow(length)
	hdr := SubHeader{
		Type:   r.Type(),
		Length: uint16(length),
	}
	if err := binary.Write(&buf, binary.LittleEndian, hdr); err != nil {
		return 0, fmt.Errorf("unable to write the sub-header of %s: %w", r.Type(), err)
	}
	for _, data := range payload {
		if err := binary.Write(&buf, binary.LittleEndian, data); err != nil {
			return 0, fmt.Errorf("unable to write %s: %w", r.Type(), err)
		}
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// Marshal returns the binary representation of the record.
func Marshal(r Record) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
