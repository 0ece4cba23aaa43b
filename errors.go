/*
 * errors.go, part of govrc.
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

package vrc

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vrctst/govrc/internal/logging"
)

// CError is the basic error type of the package. It carries a message
// and a decoration slice with the names of the functions it went through.
type CError struct {
	msg  string
	deco []string
}

// Error returns the error message, followed by the decoration, if any.
func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return err.msg + " (" + strings.Join(err.deco, " < ") + ")"
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// errDecorate decorates err with the caller's name if err
// implements Error, and returns it.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilGeometry    = PanicMsg("govrc: nil Geometry")
	ErrAtomOutOfRange = PanicMsg("govrc: atom index out of range")
)

// SetLogger sets the logger used by all govrc packages. By default,
// warnings and errors go to the standard error.
func SetLogger(l *log.Logger) {
	logging.Set(l)
}

func isTrue(b []bool) bool {
	return len(b) > 0 && b[0]
}
