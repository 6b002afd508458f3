// Copyright 2019-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bytes contains helpers to describe and manipulate byte ranges of
// a binary image.
package bytes

import (
	"fmt"
	"sort"
	"strings"
)

// Range is a region of a binary image: Length bytes starting at Offset.
type Range struct {
	Offset uint64
	Length uint64
}

func (r Range) String() string {
	return fmt.Sprintf(`{"Offset":"0x%x", "Length":"0x%x"}`, r.Offset, r.Length)
}

// End returns the offset right after the last byte of the range.
func (r Range) End() uint64 {
	return r.Offset + r.Length
}

// Intersect returns True if ranges "r" and "cmp" has at least
// one byte with the same offset.
func (r Range) Intersect(cmp Range) bool {
	if r.Length == 0 || cmp.Length == 0 {
		return false
	}
	if r.End() <= cmp.Offset {
		return false
	}
	if r.Offset >= cmp.End() {
		return false
	}
	return true
}

// Slice returns the bytes of `b` covered by the range. The capacity of the
// result is limited to the range, so appending to it never touches the
// bytes which follow the range in `b`.
//
// The caller is expected to have validated the range against len(b).
func (r Range) Slice(b []byte) []byte {
	return b[r.Offset:r.End():r.End()]
}

// Ranges is a helper to manipulate multiple `Range`-s at once
type Ranges []Range

func (s Ranges) String() string {
	r := make([]string, 0, len(s))
	for _, oneRange := range s {
		r = append(r, oneRange.String())
	}
	return `[` + strings.Join(r, `, `) + `]`
}

// Total returns the sum of lengths of all the ranges.
func (s Ranges) Total() uint64 {
	var total uint64
	for _, r := range s {
		total += r.Length
	}
	return total
}

// Sort sorts the slice by field Offset
func (s Ranges) Sort() {
	sort.Slice(s, func(i, j int) bool {
		return s[i].Offset < s[j].Offset
	})
}

// MergeRanges just merges ranges which has distance less or equal to
// mergeDistance.
//
// Warning: should be called only on sorted ranges!
func MergeRanges(in Ranges, mergeDistance uint64) Ranges {
	if len(in) < 2 {
		return in
	}

	var result Ranges
	entry := in[0]
	for _, nextEntry := range in[1:] {
		if entry.End()+mergeDistance >= nextEntry.Offset {
			if nextEntry.End() > entry.End() {
				entry.Length = nextEntry.End() - entry.Offset
			}
			continue
		}

		result = append(result, entry)
		entry = nextEntry
	}
	result = append(result, entry)

	return result
}

// SortAndMerge sorts the slice (by field Offset) and the merges ranges
// which could be merged.
func (s *Ranges) SortAndMerge() {
	if len(*s) < 2 {
		return
	}
	s.Sort()

	*s = MergeRanges(*s, 0)
}

// Tiles returns true if the ranges cover [0, length) exactly once: no gaps,
// no overlaps and nothing outside.
func (s Ranges) Tiles(length uint64) bool {
	if s.Total() != length {
		return false
	}
	if length == 0 {
		return true
	}
	merged := append(Ranges(nil), s...)
	merged.SortAndMerge()
	return len(merged) == 1 && merged[0].Offset == 0 && merged[0].Length == length
}

// Compile returns the bytes from `b` which are referenced by `Range`-s `s`.
func (s Ranges) Compile(b []byte) []byte {
	var result []byte
	for _, r := range s {
		result = append(result, b[r.Offset:r.End()]...)
	}
	return result
}
