// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdat

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/cdat/pkg/compression"
	"github.com/linuxboot/cdat/pkg/log"
)

func TestBuildDefault(t *testing.T) {
	recorder := &log.Recorder{}
	table, err := Build("", WithLogger(recorder))
	require.NoError(t, err)
	require.Equal(t, SourceDefault, table.Source())
	require.Len(t, table.Entries(), 7)
	require.Empty(t, recorder.Warnings())
}

func TestBuildMissingFile(t *testing.T) {
	recorder := &log.Recorder{}
	table, err := Build("missing.cdat", WithFS(fstest.MapFS{}), WithLogger(recorder))
	require.NoError(t, err)
	require.Equal(t, SourceDefault, table.Source())
	require.Equal(t, NewDefaultTable().Bytes(), table.Bytes())
	require.Len(t, recorder.Warnings(), 1)
	require.Contains(t, recorder.Warnings()[0], "missing.cdat")
}

func TestBuildFromFS(t *testing.T) {
	image := defaultImage(t)
	fsys := fstest.MapFS{
		"cxl.cdat":   {Data: image},
		"empty.cdat": {Data: []byte{}},
		"dir/a.cdat": {Data: image},
		"bad.cdat":   {Data: newImage(rawStructure(0xFF, 0, 8, 4))},
	}

	t.Run("file", func(t *testing.T) {
		table, err := Build("cxl.cdat", WithFS(fsys))
		require.NoError(t, err)
		require.Equal(t, SourceFile, table.Source())
		require.Equal(t, image, table.Bytes())
	})
	t.Run("empty_file", func(t *testing.T) {
		_, err := Build("empty.cdat", WithFS(fsys))
		var readErr *ErrRead
		require.ErrorAs(t, err, &readErr)
		require.ErrorIs(t, err, ErrEmptyFile)
		require.Equal(t, "empty.cdat", readErr.Path)
	})
	t.Run("unreadable", func(t *testing.T) {
		_, err := Build("dir", WithFS(fsys))
		var readErr *ErrRead
		require.ErrorAs(t, err, &readErr)
	})
	t.Run("structural", func(t *testing.T) {
		_, err := Build("bad.cdat", WithFS(fsys))
		var unknown *ErrUnknownType
		require.ErrorAs(t, err, &unknown)
		require.True(t, IsStructural(err))
	})
	t.Run("max_entries", func(t *testing.T) {
		table, err := Build("cxl.cdat", WithFS(fsys), WithMaxEntries(3))
		var capErr *ErrCapacityExceeded
		require.ErrorAs(t, err, &capErr)
		require.Nil(t, table)

		table, err = Build("", WithMaxEntries(3))
		require.ErrorAs(t, err, &capErr)
		require.Nil(t, table)

		table, err = Build("missing.cdat", WithFS(fsys), WithMaxEntries(3), WithLogger(&log.Recorder{}))
		require.ErrorAs(t, err, &capErr)
		require.Nil(t, table)
	})
}

func TestBuildCompressed(t *testing.T) {
	image := defaultImage(t)
	fsys := fstest.MapFS{}
	for ext, factory := range compression.Extensions {
		encoded, err := factory().Encode(image)
		require.NoError(t, err)
		fsys["cxl.cdat"+ext] = &fstest.MapFile{Data: encoded}
	}
	fsys["garbage.cdat.xz"] = &fstest.MapFile{Data: []byte("definitely not xz")}

	for ext := range compression.Extensions {
		t.Run(ext, func(t *testing.T) {
			table, err := Build("cxl.cdat"+ext, WithFS(fsys))
			require.NoError(t, err)
			require.Equal(t, image, table.Bytes())
		})
	}
	t.Run("garbage", func(t *testing.T) {
		_, err := Build("garbage.cdat.xz", WithFS(fsys))
		var readErr *ErrRead
		require.ErrorAs(t, err, &readErr)
	})
}

func TestBuildFromOS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cxl.cdat")
	require.NoError(t, os.WriteFile(path, defaultImage(t), 0o600))

	table, err := Build(path)
	require.NoError(t, err)
	require.Equal(t, SourceFile, table.Source())
	require.NoError(t, Verify(table))
}

func TestMaxTableSize(t *testing.T) {
	require.Equal(t, uint64(16), MaxTableSize(1))
	require.Equal(t, uint64(16+7*math.MaxUint16), MaxTableSize(8))
	require.Equal(t, uint64(16+(DefaultMaxEntries-1)*math.MaxUint16), MaxTableSize(0))
	require.Equal(t, uint64(math.MaxUint32), MaxTableSize(1<<20))
}

func TestBuildSizeLimit(t *testing.T) {
	image := defaultImage(t)
	zeros := make([]byte, 4<<20)
	bomb, err := (&compression.Zstd{}).Encode(zeros)
	require.NoError(t, err)
	require.Less(t, len(bomb), 1<<16)
	xzBomb, err := (&compression.XZ{}).Encode(zeros)
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"cxl.cdat":        {Data: image},
		"zeros.cdat.zst":  {Data: bomb},
		"zeros.cdat.xz":   {Data: xzBomb},
		"truncated.cdat.zst": {Data: bomb[:len(bomb)/2]},
		"zeros.cdat":      {Data: bytes.Repeat([]byte{0}, 1<<20)},
	}

	for _, name := range []string{"zeros.cdat.zst", "zeros.cdat.xz", "zeros.cdat"} {
		t.Run(name, func(t *testing.T) {
			table, err := Build(name, WithFS(fsys), WithMaxEntries(8))
			require.Nil(t, table)
			var readErr *ErrRead
			require.ErrorAs(t, err, &readErr)
			var sizeErr *ErrSizeExceeded
			require.ErrorAs(t, err, &sizeErr)
			require.Equal(t, MaxTableSize(8), sizeErr.Limit)
		})
	}
	t.Run("truncated_stream", func(t *testing.T) {
		table, err := Build("truncated.cdat.zst", WithFS(fsys), WithMaxEntries(8))
		require.Nil(t, table)
		var readErr *ErrRead
		require.ErrorAs(t, err, &readErr)
	})
	t.Run("explicit_limit", func(t *testing.T) {
		table, err := Build("cxl.cdat", WithFS(fsys), WithMaxSize(147))
		require.Nil(t, table)
		var sizeErr *ErrSizeExceeded
		require.ErrorAs(t, err, &sizeErr)
		require.Equal(t, uint64(147), sizeErr.Limit)

		table, err = Build("cxl.cdat", WithFS(fsys), WithMaxSize(148))
		require.NoError(t, err)
		require.Len(t, table.Bytes(), 148)
	})
}
