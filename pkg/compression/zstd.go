// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compression

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Zstd implements Compressor for Zstandard frames.
type Zstd struct{}

// Name returns the type of compression employed.
func (c *Zstd) Name() string {
	return "ZSTD"
}

// NewReader returns a reader of Zstandard data.
func (c *Zstd) NewReader(encoded io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(encoded, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return zstdReader{Decoder: d}, nil
}

// zstdReader adapts the Close of zstd.Decoder to io.Closer.
type zstdReader struct {
	*zstd.Decoder
}

func (r zstdReader) Close() error {
	r.Decoder.Close()
	return nil
}

// Decode decodes a byte slice of Zstandard data.
func (c *Zstd) Decode(encodedData []byte) ([]byte, error) {
	return readAll(c, encodedData)
}

// Encode encodes a byte slice with Zstandard.
func (c *Zstd) Encode(decodedData []byte) ([]byte, error) {
	e, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	encodedData := e.EncodeAll(decodedData, nil)
	if err := e.Close(); err != nil {
		return nil, err
	}
	return encodedData, nil
}
