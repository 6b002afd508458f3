// Copyright 2018-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compression

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// LZMA implements Compressor for the legacy .lzma format (a bare LZMA
// stream with a 13 byte header).
type LZMA struct{}

// Name returns the type of compression employed.
func (c *LZMA) Name() string {
	return "LZMA"
}

// NewReader returns a reader of LZMA data.
func (c *LZMA) NewReader(encoded io.Reader) (io.ReadCloser, error) {
	r, err := lzma.NewReader(encoded)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(r), nil
}

// Decode decodes a byte slice of LZMA data.
func (c *LZMA) Decode(encodedData []byte) ([]byte, error) {
	return readAll(c, encodedData)
}

// Encode encodes a byte slice with LZMA.
func (c *LZMA) Encode(decodedData []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(decodedData); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
