// Copyright 2017-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"fmt"

	"github.com/linuxboot/cdat/pkg/bytes"
)

// ErrStartGreaterThanLength means `startIdx` points outside of the buffer.
type ErrStartGreaterThanLength struct {
	Length   uint64
	StartIdx uint64
}

func (err *ErrStartGreaterThanLength) Error() string {
	return fmt.Sprintf("start index is outside of the bounds: %d > %d",
		err.StartIdx, err.Length)
}

// ErrEndLessThanStart means `endIdx` value is less than `startIdx` value
type ErrEndLessThanStart struct {
	StartIdx uint64
	EndIdx   uint64
}

func (err *ErrEndLessThanStart) Error() string {
	return fmt.Sprintf("end index is less than start index: %d < %d",
		err.EndIdx, err.StartIdx)
}

// ErrEndGreaterThanLength means `endIdx` is greater than the length.
type ErrEndGreaterThanLength struct {
	Length uint64
	EndIdx uint64
}

func (err *ErrEndGreaterThanLength) Error() string {
	return fmt.Sprintf("end index is outside of the bounds: %d > %d",
		err.EndIdx, err.Length)
}

// ErrOverflow means the end of the range cannot be represented.
type ErrOverflow struct {
	Range bytes.Range
}

func (err *ErrOverflow) Error() string {
	return fmt.Sprintf("range %s overflows", err.Range)
}
