// Copyright 2021-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log is the logging facade used by the CDAT tooling.
package log

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Logger describes a logger to be used while building and checking CDAT tables.
type Logger interface {
	// Warnf logs a warning message.
	Warnf(format string, args ...interface{})

	// Errorf logs an error message.
	Errorf(format string, args ...interface{})

	// Fatalf logs a fatal message and immediately exits the application
	// with os.Exit.
	Fatalf(format string, args ...interface{})
}

// DefaultLogger is the logger used when no other logger was injected.
var DefaultLogger Logger

func init() {
	DefaultLogger = logWrapper{Logger: log.New(os.Stderr, "", log.LstdFlags)}
}

type logWrapper struct {
	Logger *log.Logger
}

// Warnf implements Logger.
func (logger logWrapper) Warnf(format string, args ...interface{}) {
	logger.Logger.Printf("[cdat][WARN] "+format, args...)
}

// Errorf implements Logger.
func (logger logWrapper) Errorf(format string, args ...interface{}) {
	logger.Logger.Printf("[cdat][ERROR] "+format, args...)
}

// Fatalf implements Logger.
func (logger logWrapper) Fatalf(format string, args ...interface{}) {
	logger.Logger.Fatalf("[cdat][FATAL] "+format, args...)
}

// Recorder is a Logger which keeps the formatted messages in memory instead
// of printing them. Fatalf panics, since there is nothing to exit.
type Recorder struct {
	locker   sync.Mutex
	warnings []string
	errors   []string
}

// Warnf implements Logger.
func (r *Recorder) Warnf(format string, args ...interface{}) {
	r.locker.Lock()
	defer r.locker.Unlock()
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// Errorf implements Logger.
func (r *Recorder) Errorf(format string, args ...interface{}) {
	r.locker.Lock()
	defer r.locker.Unlock()
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

// Fatalf implements Logger.
func (r *Recorder) Fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// Warnings returns a copy of the recorded warning messages.
func (r *Recorder) Warnings() []string {
	r.locker.Lock()
	defer r.locker.Unlock()
	return append([]string(nil), r.warnings...)
}

// Errors returns a copy of the recorded error messages.
func (r *Recorder) Errors() []string {
	r.locker.Lock()
	defer r.locker.Unlock()
	return append([]string(nil), r.errors...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	DefaultLogger.Warnf(format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	DefaultLogger.Errorf(format, args...)
}

// Fatalf logs a fatal message and immediately exits the application
// with os.Exit (which is expected to be called by the DefaultLogger.Fatalf).
func Fatalf(format string, args ...interface{}) {
	DefaultLogger.Fatalf(format, args...)
}
