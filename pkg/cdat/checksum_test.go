// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	require.Equal(t, uint8(0), Checksum())
	require.Equal(t, uint8(0), Checksum([]byte{0x80, 0x80}))
	require.Equal(t, uint8(6), Checksum([]byte{1, 2}, nil, []byte{3}))
	require.Equal(t, uint8(0xFA), ChecksumComplement([]byte{1, 2}, []byte{3}))
}

func TestChecksumRoundTrip(t *testing.T) {
	for _, records := range [][]Record{
		nil,
		DefaultRecords(),
		{&DSIS{Flags: 0xFF, Handle: 0xFF}},
		{&DSMAS{DPABase: 0xFFFFFFFF00000000, DPALength: 0x40000000}, &SSLBIS{DataType: 3, Entries: []SSLBE{{PortXID: 0x100, PortYID: 1, LatencyBandwidth: 0xFFFF}}}},
	} {
		table, err := NewTable(0xABCD, records...)
		require.NoError(t, err)
		require.Equal(t, uint8(0), Checksum(table.Bytes()))

		parsed, err := Parse(table.Bytes())
		require.NoError(t, err)
		require.Empty(t, parsed.Warnings())
		require.Equal(t, uint8(0), Checksum(parsed.Bytes()))
	}
}
