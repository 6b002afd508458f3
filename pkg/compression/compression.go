// Copyright 2018-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compression implements reading and writing of compressed CDAT
// blobs. Tables are tiny, so every codec works on whole byte slices.
package compression

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Compressor defines a single compression scheme (such as XZ).
type Compressor interface {
	// Name is typically the name of a class.
	Name() string

	// Decode and Encode obey "x == Decode(Encode(x))".
	Decode(encodedData []byte) ([]byte, error)
	Encode(decodedData []byte) ([]byte, error)

	// NewReader returns a reader of the decoded stream. Unlike Decode it
	// inflates only as much as is read, so the caller may bound the output.
	NewReader(encoded io.Reader) (io.ReadCloser, error)
}

// readAll decodes the whole stream of `c`.
func readAll(c Compressor, encodedData []byte) ([]byte, error) {
	r, err := c.NewReader(bytes.NewReader(encodedData))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Extensions maps a file name extension to the compressor for it.
var Extensions = map[string]func() Compressor{
	".xz":   func() Compressor { return &XZ{} },
	".lzma": func() Compressor { return &LZMA{} },
	".lz4":  func() Compressor { return &LZ4{} },
	".zst":  func() Compressor { return &Zstd{} },
	".zlib": func() Compressor { return &ZLIB{} },
}

// CompressorFromExtension returns a Compressor for the extension of the file
// name, or nil if the file is not expected to be compressed.
func CompressorFromExtension(name string) Compressor {
	factory, ok := Extensions[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return nil
	}
	return factory()
}

// CompressorFromName returns a Compressor by its Name (case-insensitive), or
// nil if there is no such compressor.
func CompressorFromName(name string) Compressor {
	for _, factory := range Extensions {
		c := factory()
		if strings.EqualFold(c.Name(), name) {
			return c
		}
	}
	return nil
}
