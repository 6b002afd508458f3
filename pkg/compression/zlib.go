// Copyright 2023-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compression

import (
	"bytes"
	"compress/zlib"
	"io"
)

const zlibCompressionLevel = 9

// ZLIB implements Compressor and uses the zlib package from the standard
// library
type ZLIB struct{}

// Name returns the type of compression employed.
func (c *ZLIB) Name() string {
	return "ZLIB"
}

// NewReader returns a reader of ZLIB data.
func (c *ZLIB) NewReader(encoded io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(encoded)
}

// Decode decodes a byte slice of ZLIB data.
func (c *ZLIB) Decode(encodedData []byte) ([]byte, error) {
	return readAll(c, encodedData)
}

// Encode encodes a byte slice with ZLIB.
func (c *ZLIB) Encode(decodedData []byte) ([]byte, error) {
	var encodedData bytes.Buffer

	w, err := zlib.NewWriterLevel(&encodedData, zlibCompressionLevel)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(decodedData); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return encodedData.Bytes(), nil
}
