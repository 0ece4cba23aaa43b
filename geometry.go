/*
 * geometry.go, part of govrc.
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
	"fmt"

	v3 "github.com/vrctst/govrc/v3"
)

// Geometry is a molecular geometry: an element symbol for each atom, the
// cartesian coordinates of the atoms (one per row of Coords, in the same order as
// Symbols), the total charge and the total spin, given as the number of unpaired
// electrons.
//
// Functions in this package never keep references to a Geometry, and never alter one
// unless explicitly asked to.
type Geometry struct {
	Symbols []string
	Coords  *v3.Matrix
	charge  int
	spin    int
}

// NewGeometry returns a Geometry with the given symbols, coordinates, charge and spin.
// Neither slice nor matrix are copied. It returns an error if the number of symbols
// doesn't match the number of coordinates.
func NewGeometry(symbols []string, coords *v3.Matrix, charge, spin int) (*Geometry, error) {
	G := &Geometry{Symbols: symbols, Coords: coords, charge: charge, spin: spin}
	if err := G.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewGeometry")
	}
	return G, nil
}

// Corrupted returns an error if the geometry is nil, has no coordinates, or
// doesn't have exactly one coordinate row per symbol. Returns nil otherwise.
func (G *Geometry) Corrupted() error {
	if G == nil {
		return &CError{string(ErrNilGeometry), []string{"Corrupted"}}
	}
	if G.Coords == nil {
		return &CError{"Geometry without coordinates", []string{"Corrupted"}}
	}
	r, c := G.Coords.Dims()
	if c != 3 {
		return &CError{fmt.Sprintf("Coordinates must have 3 columns, not %d", c), []string{"Corrupted"}}
	}
	if len(G.Symbols) != r {
		return &CError{fmt.Sprintf("Inconsistent symbols(%d)/coordinates(%d)", len(G.Symbols), r), []string{"Corrupted"}}
	}
	return nil
}

// Copy returns a deep copy of the geometry.
func (G *Geometry) Copy() *Geometry {
	if G == nil {
		panic(ErrNilGeometry)
	}
	ret := new(Geometry)
	ret.Symbols = make([]string, len(G.Symbols))
	copy(ret.Symbols, G.Symbols)
	if G.Coords != nil {
		ret.Coords = G.Coords.Clone()
	}
	ret.charge = G.charge
	ret.spin = G.spin
	return ret
}

// SomeAtoms returns a new geometry with the atoms of G whose indexes are in
// indexes, in that order, for instance one fragment of a system. The charge and spin
// of the new geometry are zero, as they can't be obtained from those of G.
func (G *Geometry) SomeAtoms(indexes []int) (*Geometry, error) {
	if err := G.Corrupted(); err != nil {
		return nil, errDecorate(err, "SomeAtoms")
	}
	if len(indexes) == 0 {
		return nil, &CError{"No atoms selected", []string{"SomeAtoms"}}
	}
	ret := new(Geometry)
	ret.Symbols = make([]string, len(indexes))
	for i, v := range indexes {
		if v < 0 || v >= G.Len() {
			return nil, &CError{fmt.Sprintf("%s: %d", ErrAtomOutOfRange, v), []string{"SomeAtoms"}}
		}
		ret.Symbols[i] = G.Symbols[v]
	}
	ret.Coords = v3.Zeros(len(indexes))
	ret.Coords.SomeVecs(G.Coords, indexes)
	return ret, nil
}

// Len returns the number of atoms in the geometry.
func (G *Geometry) Len() int {
	return len(G.Symbols)
}

// Symbol returns the symbol of the ith atom. Panics if
// out of range.
func (G *Geometry) Symbol(i int) string {
	if i < 0 || i >= G.Len() {
		panic(ErrAtomOutOfRange)
	}
	return G.Symbols[i]
}

// Charge gets the total charge of the geometry
func (G *Geometry) Charge() int {
	return G.charge
}

// Spin gets the number of unpaired electrons in the geometry
func (G *Geometry) Spin() int {
	return G.spin
}

// SetCharge sets the total charge of the geometry to i
func (G *Geometry) SetCharge(i int) {
	G.charge = i
}

// SetSpin sets the number of unpaired electrons in the geometry to i
func (G *Geometry) SetSpin(i int) {
	G.spin = i
}
