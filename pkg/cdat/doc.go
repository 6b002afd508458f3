// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cdat builds and validates the Coherent Device Attribute Table of
// a CXL device: a 16 byte header followed by a sequence of typed
// structures, each starting with a 4 byte sub-header.
//
// A table is either parsed from an image supplied by the user (see Parse
// and Build) or synthesized from records (see NewTable and
// NewDefaultTable). Both kinds are served through the Table interface.
package cdat
