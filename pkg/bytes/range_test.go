// Copyright 2019-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangesSortAndMerge(t *testing.T) {
	t.Run("nothing_to_merge", func(t *testing.T) {
		entries := Ranges{{Offset: 2, Length: 1}, {Offset: 0, Length: 1}}
		entries.SortAndMerge()
		require.Equal(t, Ranges{{Offset: 0, Length: 1}, {Offset: 2, Length: 1}}, entries)
	})
	t.Run("merge_overlapping", func(t *testing.T) {
		entries := Ranges{{Offset: 2, Length: 3}, {Offset: 0, Length: 3}}
		entries.SortAndMerge()
		require.Equal(t, Ranges{{Offset: 0, Length: 5}}, entries)
	})
	t.Run("merge_no_distance", func(t *testing.T) {
		entries := Ranges{{Offset: 2, Length: 2}, {Offset: 0, Length: 2}}
		entries.SortAndMerge()
		require.Equal(t, Ranges{{Offset: 0, Length: 4}}, entries)
	})
	t.Run("merge_next_range_inside_previous", func(t *testing.T) {
		entries := Ranges{{Offset: 16, Length: 8}, {Offset: 0, Length: 40}, {Offset: 40, Length: 4}}
		entries.SortAndMerge()
		require.Equal(t, Ranges{{Offset: 0, Length: 44}}, entries)
	})
}

func TestRangeIntersect(t *testing.T) {
	r := Range{Offset: 16, Length: 24}
	require.True(t, r.Intersect(Range{Offset: 39, Length: 1}))
	require.False(t, r.Intersect(Range{Offset: 40, Length: 8}))
	require.False(t, r.Intersect(Range{Offset: 8, Length: 8}))
	require.False(t, r.Intersect(Range{Offset: 20, Length: 0}))
}

func TestRangesTiles(t *testing.T) {
	table := Ranges{{Offset: 0, Length: 16}, {Offset: 16, Length: 24}, {Offset: 40, Length: 8}}
	require.True(t, table.Tiles(48))
	require.False(t, table.Tiles(49))
	require.False(t, Ranges{{Offset: 0, Length: 16}, {Offset: 20, Length: 28}}.Tiles(48), "gap")
	require.False(t, Ranges{{Offset: 0, Length: 24}, {Offset: 16, Length: 8}, {Offset: 44, Length: 4}}.Tiles(36), "overlap")
	require.True(t, Ranges(nil).Tiles(0))
}

func TestRangesCompile(t *testing.T) {
	b := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	require.Equal(t, []byte{1, 2, 5}, Ranges{{Offset: 1, Length: 2}, {Offset: 5, Length: 1}}.Compile(b))
	require.Equal(t, uint64(3), Ranges{{Offset: 1, Length: 2}, {Offset: 5, Length: 1}}.Total())
}

func TestRangeSliceCapacity(t *testing.T) {
	b := []byte{0, 1, 2, 3, 4, 5}
	s := Range{Offset: 1, Length: 2}.Slice(b)
	require.Equal(t, []byte{1, 2}, s)
	require.Equal(t, 2, cap(s))
	_ = append(s, 0xff)
	require.Equal(t, byte(3), b[3])
}
