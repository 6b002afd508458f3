// Copyright 2019-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytes

// IsZeroFilled returns true if b consists of zeros only. An empty slice is
// considered zero filled.
func IsZeroFilled(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
