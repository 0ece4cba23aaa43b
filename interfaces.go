/*
 * interfaces.go, part of govrc.
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

import v3 "github.com/vrctst/govrc/v3"

// Traj is an interface for any trajectory object.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//reads the next frame into output, or discards it if output is nil.
	Next(output *v3.Matrix) error

	//Returns the number of atoms per frame
	Len() int
}

// Symboler is the basic interface for something with atoms, such as
// a Geometry.
type Symboler interface {

	//Symbol returns the element symbol of the ith atom.
	//Should panic if out of range.
	Symbol(i int) string

	Len() int
}

// SymbolChargeSpinner is a Symboler that also gives a
// total charge and spin.
type SymbolChargeSpinner interface {
	Symboler

	//Charge gets the total charge
	Charge() int

	//Spin returns the number of unpaired electrons
	Spin() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the given string to the decoration slice and returns the slice. If passed an empty string, it should just return the current value.
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so  they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
