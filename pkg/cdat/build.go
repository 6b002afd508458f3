// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/linuxboot/cdat/pkg/compression"
	"github.com/linuxboot/cdat/pkg/log"
)

// Option configures Build.
type Option func(cfg *buildConfig)

type buildConfig struct {
	fsys       fs.FS
	logger     log.Logger
	maxEntries int
	maxSize    uint64
}

// WithFS makes Build read the CDAT file from `fsys` instead of the
// operating system filesystem.
func WithFS(fsys fs.FS) Option {
	return func(cfg *buildConfig) {
		cfg.fsys = fsys
	}
}

// WithLogger makes Build report warnings to `logger`.
func WithLogger(logger log.Logger) Option {
	return func(cfg *buildConfig) {
		cfg.logger = logger
	}
}

// WithMaxEntries limits the amount of entries of the table (the table header
// included). Zero means DefaultMaxEntries.
func WithMaxEntries(maxEntries int) Option {
	return func(cfg *buildConfig) {
		cfg.maxEntries = maxEntries
	}
}

// WithMaxSize limits the size of the table image, after decompression.
// Zero means the size of the largest table MaxEntries entries could form
// (see MaxTableSize).
func WithMaxSize(maxSize uint64) Option {
	return func(cfg *buildConfig) {
		cfg.maxSize = maxSize
	}
}

// MaxTableSize returns the size of the largest table consisting of at most
// `maxEntries` entries: the header plus structures of the maximal length,
// capped by the 32 bit length field of the header.
func MaxTableSize(maxEntries int) uint64 {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	size := uint64(TableHeaderSize) + uint64(maxEntries-1)*math.MaxUint16
	if size > math.MaxUint32 {
		return math.MaxUint32
	}
	return size
}

// osFS opens files by their operating system path, relative or absolute.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// readLimited reads `r` in full, failing with *ErrSizeExceeded as soon as
// more than `limit` bytes were read.
func readLimited(r io.Reader, limit uint64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(b)) > limit {
		return nil, &ErrSizeExceeded{Limit: limit}
	}
	return b, nil
}

// Build builds the CDAT of a device.
//
// If `name` is empty or the file cannot be opened, the default table is
// synthesized. Otherwise the file is read in full, decompressed if its
// extension names a known compression (see compression.Extensions), and
// parsed. A file which was opened but could not be read, is empty or is
// larger than the size limit (see WithMaxSize), fails with *ErrRead; a
// structurally invalid one fails with *ErrStructure.
func Build(name string, opts ...Option) (Table, error) {
	cfg := buildConfig{
		fsys:       osFS{},
		logger:     log.DefaultLogger,
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxEntries <= 0 {
		cfg.maxEntries = DefaultMaxEntries
	}
	if cfg.maxSize == 0 {
		cfg.maxSize = MaxTableSize(cfg.maxEntries)
	}

	if name == "" {
		return newRecordTable(0, cfg.maxEntries, DefaultRecords())
	}

	f, err := cfg.fsys.Open(name)
	if err != nil {
		cfg.logger.Warnf("unable to open CDAT file '%s', using the default table: %v", name, err)
		return newRecordTable(0, cfg.maxEntries, DefaultRecords())
	}
	c := compression.CompressorFromExtension(name)
	var b []byte
	if c == nil {
		b, err = readLimited(f, cfg.maxSize)
	} else {
		b, err = readCompressed(f, c, cfg.maxSize)
	}
	f.Close()
	if err != nil {
		return nil, &ErrRead{Path: name, Err: err}
	}
	if len(b) == 0 {
		return nil, &ErrRead{Path: name, Err: ErrEmptyFile}
	}

	return Parser{
		Name:       name,
		MaxEntries: cfg.maxEntries,
		Logger:     cfg.logger,
	}.Parse(b)
}

// readCompressed decodes `f` with `c`, limiting the decoded size to `limit`.
// The encoded size is limited too, leaving room for the framing overhead.
func readCompressed(f io.Reader, c compression.Compressor, limit uint64) ([]byte, error) {
	encoded, err := readLimited(f, limit+limit/2+1024)
	if err != nil {
		return nil, err
	}
	if len(encoded) == 0 {
		return nil, nil
	}
	r, err := c.NewReader(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s data: %w", c.Name(), err)
	}
	defer r.Close()
	b, err := readLimited(r, limit)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s data: %w", c.Name(), err)
	}
	return b, nil
}
