// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"io/fs"
	"os"
)

// strictFS opens files from the operating system filesystem, turning an
// open failure into a file which fails to read. This way Build reports
// the failure instead of falling back to the default table.
type strictFS struct{}

func (strictFS) Open(name string) (fs.File, error) {
	f, err := os.Open(name)
	if err != nil {
		return brokenFile{err: err}, nil
	}
	return f, nil
}

type brokenFile struct {
	err error
}

func (f brokenFile) Stat() (fs.FileInfo, error) { return nil, f.err }
func (f brokenFile) Read([]byte) (int, error)   { return 0, f.err }
func (f brokenFile) Close() error               { return nil }
