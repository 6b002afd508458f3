// Copyright 2017-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package check validates byte ranges against the length of the buffer they
// are supposed to address.
package check

import (
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/linuxboot/cdat/pkg/bytes"
)

func bounds(length, startIdx, endIdx uint64) error {
	var result *multierror.Error
	if startIdx > length {
		result = multierror.Append(result, &ErrStartGreaterThanLength{Length: length, StartIdx: startIdx})
	}
	if endIdx < startIdx {
		result = multierror.Append(result, &ErrEndLessThanStart{StartIdx: startIdx, EndIdx: endIdx})
	}
	if endIdx > length {
		result = multierror.Append(result, &ErrEndGreaterThanLength{Length: length, EndIdx: endIdx})
	}

	return result.ErrorOrNil()
}

// BytesRange checks if starting index `startIdx`, ending index `endIdx` and
// `length` passes sanity checks:
// * startIdx <= length
// * startIdx <= endIdx
// * endIdx <= length
//
// All violated conditions are reported at once.
func BytesRange(length, startIdx, endIdx uint64) error {
	return bounds(length, startIdx, endIdx)
}

// Range does the same as BytesRange, but for a bytes.Range. A range whose
// end does not fit into uint64 is reported as ErrOverflow.
func Range(length uint64, r bytes.Range) error {
	if r.Length > math.MaxUint64-r.Offset {
		return &ErrOverflow{Range: r}
	}
	return bounds(length, r.Offset, r.End())
}
