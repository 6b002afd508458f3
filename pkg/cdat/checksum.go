// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

// Checksum does an 8 bit checksum of the slices passed in: the sum of all
// their bytes modulo 256. A well formed table has a zero checksum.
func Checksum(bufs ...[]byte) uint8 {
	var sum uint8
	for _, buf := range bufs {
		for _, val := range buf {
			sum += val
		}
	}
	return sum
}

// ChecksumComplement returns the byte which, added to the bytes passed in,
// makes their checksum zero.
func ChecksumComplement(bufs ...[]byte) uint8 {
	return -Checksum(bufs...)
}
