/*
 * logging.go, part of govrc.
 *
 * Copyright 2026 The govrc Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package logging holds the logger shared by all the govrc packages.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu     sync.RWMutex
	logger = New(os.Stderr, log.WarnLevel)
)

// New creates a logger with the govrc prefix that writes to w and
// filters messages below level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "govrc",
		Level:  level,
	})
}

// Logger returns the current logger.
func Logger() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Set replaces the current logger. A nil l is ignored.
func Set(l *log.Logger) {
	if l == nil {
		return
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}
