// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/cdat/pkg/log"
)

func TestParseDefault(t *testing.T) {
	expected := NewDefaultTable()
	table, err := Parse(defaultImage(t))
	require.NoError(t, err)

	require.Equal(t, SourceFile, table.Source())
	require.Equal(t, expected.Header(), table.Header())
	require.Equal(t, expected.Entries(), table.Entries())
	require.Equal(t, expected.Records(), table.Records())
	require.Equal(t, expected.Bytes(), table.Bytes())
	require.Empty(t, table.Warnings())
}

func TestParseHeaderOnly(t *testing.T) {
	table, err := Parse(newImage())
	require.NoError(t, err)
	require.Len(t, table.Entries(), 1)
	require.Empty(t, table.Records())
}

func TestParseStructuralErrors(t *testing.T) {
	t.Run("short_table_header", func(t *testing.T) {
		_, err := Parse(make([]byte, 10))
		var truncated *ErrTruncated
		requireStructErr(t, err, 0, 0, &truncated)
		require.Equal(t, uint64(10), truncated.Have)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := Parse(nil)
		var truncated *ErrTruncated
		requireStructErr(t, err, 0, 0, &truncated)
	})
	t.Run("short_sub_header", func(t *testing.T) {
		_, err := Parse(newImage([]byte{0, 0}))
		var truncated *ErrTruncated
		requireStructErr(t, err, 1, 16, &truncated)
		require.Equal(t, uint64(4), truncated.Need)
		require.Equal(t, uint64(2), truncated.Have)
	})
	t.Run("unknown_type", func(t *testing.T) {
		_, err := Parse(newImage(rawStructure(0xFF, 0, 24, 20)))
		var unknown *ErrUnknownType
		requireStructErr(t, err, 1, 16, &unknown)
		require.Equal(t, RecordType(0xFF), unknown.Type)
		require.Contains(t, err.Error(), "type 255 is reserved")
	})
	t.Run("unknown_type_with_bogus_length", func(t *testing.T) {
		_, err := Parse(newImage(rawStructure(0x06, 0, 0, 0)))
		var unknown *ErrUnknownType
		requireStructErr(t, err, 1, 16, &unknown)
	})
	t.Run("unknown_type_after_valid_one", func(t *testing.T) {
		dsis, err := Marshal(&DSIS{})
		require.NoError(t, err)
		_, err = Parse(newImage(dsis, rawStructure(0xFF, 0, 8, 4)))
		var unknown *ErrUnknownType
		requireStructErr(t, err, 2, 24, &unknown)
	})
	t.Run("reserved_not_zero", func(t *testing.T) {
		_, err := Parse(newImage(rawStructure(uint8(RecordTypeDSIS), 1, 8, 4)))
		var reserved *ErrReservedNotZero
		requireStructErr(t, err, 1, 16, &reserved)
	})
	t.Run("zero_length", func(t *testing.T) {
		_, err := Parse(newImage(rawStructure(uint8(RecordTypeDSMAS), 0, 0, 20)))
		var zero *ErrZeroLength
		requireStructErr(t, err, 1, 16, &zero)
	})
	t.Run("fixed_length_mismatch", func(t *testing.T) {
		_, err := Parse(newImage(rawStructure(uint8(RecordTypeDSMAS), 0, 20, 16)))
		var mismatch *ErrLengthMismatch
		requireStructErr(t, err, 1, 16, &mismatch)
		require.Equal(t, 24, mismatch.Size)
	})
	t.Run("truncated_record", func(t *testing.T) {
		_, err := Parse(newImage(rawStructure(uint8(RecordTypeDSMAS), 0, 24, 6)))
		var outOfBounds *ErrOutOfBounds
		requireStructErr(t, err, 1, 16, &outOfBounds)
	})
	t.Run("header_length_mismatch", func(t *testing.T) {
		image := defaultImage(t)
		binary.LittleEndian.PutUint32(image, 200)
		_, err := Parse(image)
		var headerLength *ErrHeaderLength
		require.ErrorAs(t, err, &headerLength)
		require.True(t, IsStructural(err))
		require.Equal(t, uint32(200), headerLength.Declared)
		require.Equal(t, uint64(148), headerLength.Actual)
	})
}

func TestParseSSLBISShape(t *testing.T) {
	for _, tc := range []struct {
		name    string
		length  uint16
		success bool
	}{
		{name: "no_entries", length: 16, success: true},
		{name: "one_entry", length: 24, success: true},
		{name: "three_entries", length: 40, success: true},
		{name: "partial_entry", length: 28},
		{name: "shorter_than_fixed_part", length: 12},
	} {
		t.Run(tc.name, func(t *testing.T) {
			structure := rawStructure(uint8(RecordTypeSSLBIS), 0, tc.length, int(tc.length)-SubHeaderSize)
			table, err := Parse(newImage(structure))
			if !tc.success {
				var mismatch *ErrLengthMismatch
				requireStructErr(t, err, 1, 16, &mismatch)
				require.Equal(t, SSLBISHeaderSize, mismatch.Size)
				require.Equal(t, SSLBESize, mismatch.Unit)
				return
			}
			require.NoError(t, err)
			records := table.Records()
			require.Len(t, records, 1)
			sslbis := records[0].(*SSLBIS)
			require.Len(t, sslbis.Entries, (int(tc.length)-SSLBISHeaderSize)/SSLBESize)
		})
	}
}

func TestParseChecksumMismatch(t *testing.T) {
	image := defaultImage(t)
	image[checksumOffset] = 0
	recorder := &log.Recorder{}

	table, err := Parser{Name: "cxl.cdat", Logger: recorder}.Parse(image)
	require.NoError(t, err)

	var mismatch *ErrChecksumMismatch
	require.Len(t, table.Warnings(), 1)
	require.ErrorAs(t, table.Warnings()[0], &mismatch)
	require.Equal(t, uint8(0x28), mismatch.Sum)

	require.Equal(t, NewDefaultTable().Entries(), table.Entries())
	require.Equal(t, uint8(0), table.Header().Checksum)

	require.Len(t, recorder.Warnings(), 1)
	require.Contains(t, recorder.Warnings()[0], "cxl.cdat")
}

func TestParseCapacity(t *testing.T) {
	_, err := Parser{MaxEntries: 6}.Parse(defaultImage(t))
	var capErr *ErrCapacityExceeded
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, 6, capErr.Limit)
	require.False(t, IsStructural(err))

	table, err := Parser{MaxEntries: 7}.Parse(defaultImage(t))
	require.NoError(t, err)
	require.Len(t, table.Entries(), 7)
}

func TestParseRecordFields(t *testing.T) {
	records := []Record{
		&DSMAS{DSMADHandle: 1, Flags: 0x04, DPABase: 0x1000_0000, DPALength: 0x4000_0000},
		&DSLBIS{Handle: 1, DataType: 2, EntryBaseUnit: 1000, Entry: [3]uint16{5, 6, 7}},
		&DSMSCIS{DSMASHandle: 1, MemorySideCacheSize: 1 << 20, CacheAttributes: 0x123},
		&DSEMTS{DSMASHandle: 1, EFIMemoryTypeAttr: 2, DPAOffset: 0x10, DPALength: 0x20},
		&SSLBIS{DataType: 1, EntryBaseUnit: 10, Entries: []SSLBE{{PortXID: 1, PortYID: 2, LatencyBandwidth: 3}}},
	}
	synthesized, err := NewTable(9, records...)
	require.NoError(t, err)

	parsed, err := Parse(append([]byte(nil), synthesized.Bytes()...))
	require.NoError(t, err)
	require.Equal(t, records, parsed.Records())
	require.Equal(t, uint32(9), parsed.Header().Sequence)
}
