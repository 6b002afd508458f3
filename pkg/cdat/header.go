// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// TableHeader is the CDAT header which precedes all the structures.
type TableHeader struct {
	// Length is the size of the whole table in bytes, this header included.
	Length uint32
	// Revision of the CDAT format.
	Revision uint8
	// Checksum makes all the bytes of the table sum to zero (mod 256).
	Checksum uint8
	Reserved [6]uint8
	// Sequence is incremented every time the table content changes.
	Sequence uint32
}

// SubHeader is the common header of every CDAT structure.
type SubHeader struct {
	Type     RecordType
	Reserved uint8
	// Length is the size of the structure in bytes, this header included.
	Length uint16
}

// Bytes returns the binary representation of the header.
func (hdr TableHeader) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(TableHeaderSize)
	if err := binary.Write(&buf, binary.LittleEndian, hdr); err != nil {
		// fixed-size struct written into memory
		panic(fmt.Sprintf("unable to encode the table header: %v", err))
	}
	return buf.Bytes()
}

func (hdr TableHeader) String() string {
	return fmt.Sprintf("length=%d, revision=%d, checksum=0x%02X, sequence=%d",
		hdr.Length, hdr.Revision, hdr.Checksum, hdr.Sequence)
}

func parseTableHeader(b []byte) (TableHeader, error) {
	var hdr TableHeader
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &hdr); err != nil {
		return TableHeader{}, fmt.Errorf("unable to parse the table header: %w", err)
	}
	return hdr, nil
}

func parseSubHeader(b []byte) (SubHeader, error) {
	var hdr SubHeader
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &hdr); err != nil {
		return SubHeader{}, fmt.Errorf("unable to parse the structure header: %w", err)
	}
	return hdr, nil
}
