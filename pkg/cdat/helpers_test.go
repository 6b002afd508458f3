// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// newImage returns a table image with the header computed from `body`,
// so the length and the checksum are correct.
func newImage(body ...[]byte) []byte {
	var image []byte
	image = append(image, make([]byte, TableHeaderSize)...)
	for _, b := range body {
		image = append(image, b...)
	}
	hdr := TableHeader{
		Length:   uint32(len(image)),
		Revision: Revision,
	}
	copy(image, hdr.Bytes())
	image[checksumOffset] = ChecksumComplement(image)
	return image
}

// rawStructure returns a structure with the given sub-header followed by
// `payloadSize` zero bytes.
func rawStructure(_type uint8, reserved uint8, length uint16, payloadSize int) []byte {
	b := make([]byte, SubHeaderSize+payloadSize)
	b[0] = _type
	b[1] = reserved
	binary.LittleEndian.PutUint16(b[2:], length)
	return b
}

func defaultImage(t *testing.T) []byte {
	table := NewDefaultTable()
	return append([]byte(nil), table.Bytes()...)
}

func requireStructErr(t *testing.T, err error, entry int, offset uint64, target interface{}) {
	t.Helper()
	require.Error(t, err)
	require.True(t, IsStructural(err), "%v", err)

	var structErr *ErrStructure
	require.ErrorAs(t, err, &structErr)
	require.Equal(t, entry, structErr.Entry)
	require.Equal(t, offset, structErr.Offset)
	require.ErrorAs(t, err, target)
}
