// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// shape is the length rule of a structure type together with its decoder.
type shape struct {
	// size is the exact length of a fixed structure, or the length of the
	// fixed part of a variable one.
	size int
	// unit is the size of one trailing entry; zero for fixed structures.
	unit int
	// decode parses a structure (sub-header included) whose length
	// already passed check.
	decode func(b []byte) (Record, error)
}

var shapes = map[RecordType]shape{
	RecordTypeDSMAS:   fixedShape(func() Record { return &DSMAS{} }),
	RecordTypeDSLBIS:  fixedShape(func() Record { return &DSLBIS{} }),
	RecordTypeDSMSCIS: fixedShape(func() Record { return &DSMSCIS{} }),
	RecordTypeDSIS:    fixedShape(func() Record { return &DSIS{} }),
	RecordTypeDSEMTS:  fixedShape(func() Record { return &DSEMTS{} }),
	RecordTypeSSLBIS: {
		size:   SSLBISHeaderSize,
		unit:   SSLBESize,
		decode: decodeSSLBIS,
	},
}

func fixedShape(newRecord func() Record) shape {
	return shape{
		size: SubHeaderSize + binary.Size(newRecord()),
		decode: func(b []byte) (Record, error) {
			r := newRecord()
			if err := binary.Read(bytes.NewReader(b[SubHeaderSize:]), binary.LittleEndian, r); err != nil {
				return nil, fmt.Errorf("unable to decode %s: %w", r.Type(), err)
			}
			return r, nil
		},
	}
}

func decodeSSLBIS(b []byte) (Record, error) {
	r := bytes.NewReader(b[SubHeaderSize:])

	var hdr sslbisHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", RecordTypeSSLBIS, err)
	}
	result := &SSLBIS{
		DataType:      hdr.DataType,
		Reserved:      hdr.Reserved,
		EntryBaseUnit: hdr.EntryBaseUnit,
	}

	count := (len(b) - SSLBISHeaderSize) / SSLBESize
	if count == 0 {
		return result, nil
	}
	result.Entries = make([]SSLBE, count)
	if err := binary.Read(r, binary.LittleEndian, result.Entries); err != nil {
		return nil, fmt.Errorf("unable to decode %d entries of %s: %w", count, RecordTypeSSLBIS, err)
	}
	return result, nil
}

// check verifies the declared length of a structure of type `_type`
// against the shape of the type.
func (s shape) check(_type RecordType, length int) error {
	if s.unit == 0 {
		if length != s.size {
			return &ErrLengthMismatch{Type: _type, Length: length, Size: s.size}
		}
		return nil
	}
	if length < s.size || (length-s.size)%s.unit != 0 {
		return &ErrLengthMismatch{Type: _type, Length: length, Size: s.size, Unit: s.unit}
	}
	return nil
}

// IsKnown returns true if the type belongs to the closed set of CDAT
// structure types.
func (_type RecordType) IsKnown() bool {
	_, ok := shapes[_type]
	return ok
}

// CheckLength verifies that `length` is a valid declared length for a
// structure of type `_type`.
func CheckLength(_type RecordType, length int) error {
	s, ok := shapes[_type]
	if !ok {
		return &ErrUnknownType{Type: _type}
	}
	return s.check(_type, length)
}

// checkSubHeader validates a structure sub-header. The type tag is checked
// first, so a reserved type is reported whatever its length is.
func checkSubHeader(hdr SubHeader) (shape, error) {
	s, ok := shapes[hdr.Type]
	if !ok {
		return shape{}, &ErrUnknownType{Type: hdr.Type}
	}
	if hdr.Reserved != 0 {
		return shape{}, &ErrReservedNotZero{Value: hdr.Reserved}
	}
	if hdr.Length == 0 {
		return shape{}, &ErrZeroLength{Type: hdr.Type}
	}
	if err := s.check(hdr.Type, int(hdr.Length)); err != nil {
		return shape{}, err
	}
	return s, nil
}
