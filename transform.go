/*
 * transform.go, part of govrc.
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

// Translate adds vec to the coordinates of G. vec can be a single vector,
// which is added to every atom, or a matrix with one vector per atom.
// If inPlace is given and true, G itself is modified and returned. Otherwise
// G is not touched and a translated copy is returned. Symbols, charge and spin
// are never changed.
func Translate(G *Geometry, vec *v3.Matrix, inPlace ...bool) (*Geometry, error) {
	if err := G.Corrupted(); err != nil {
		return nil, errDecorate(err, "Translate")
	}
	if vec == nil {
		return nil, &CError{"nil translation", []string{"Translate"}}
	}
	vr, vc := vec.Dims()
	n := G.Len()
	if vc != 3 || (vr != 1 && vr != n) {
		return nil, &CError{fmt.Sprintf("Translation of shape %dx%d can't be applied to %d atoms", vr, vc, n), []string{"Translate"}}
	}
	ret := G
	if !isTrue(inPlace) {
		ret = G.Copy()
	}
	if vr == 1 {
		ret.Coords.AddVec(ret.Coords, vec)
	} else {
		ret.Coords.Add(ret.Coords, vec)
	}
	return ret, nil
}

// Rotate applies the 3x3 rotation matrix R to each atom of G, so each
// position v becomes R·v. If inPlace is given and true, G itself is modified
// and returned. Otherwise G is not touched and a rotated copy is returned.
// R is not checked for orthogonality.
func Rotate(G *Geometry, R *v3.Matrix, inPlace ...bool) (*Geometry, error) {
	if err := G.Corrupted(); err != nil {
		return nil, errDecorate(err, "Rotate")
	}
	if R == nil {
		return nil, &CError{"nil rotation", []string{"Rotate"}}
	}
	if rr, rc := R.Dims(); rr != 3 || rc != 3 {
		return nil, &CError{fmt.Sprintf("Rotation matrix must be 3x3, not %dx%d", rr, rc), []string{"Rotate"}}
	}
	ret := G
	if !isTrue(inPlace) {
		ret = G.Copy()
	}
	//With one point per row, R·v for every point is coords×Rt.
	rotated := v3.Zeros(ret.Len())
	rotated.Mul(ret.Coords, R.T())
	ret.Coords.Copy(rotated)
	return ret, nil
}

// Concat returns a new geometry with the atoms of all the given geometries,
// in order. The charge and spin of the new geometry are the sums of those of
// the given ones. None of the given geometries is modified.
func Concat(geos ...*Geometry) (*Geometry, error) {
	if len(geos) == 0 {
		return nil, &CError{"No geometries to concatenate", []string{"Concat"}}
	}
	total := 0
	for i, G := range geos {
		if err := G.Corrupted(); err != nil {
			return nil, errDecorate(err, fmt.Sprintf("Concat: geometry %d", i))
		}
		total += G.Len()
	}
	ret := new(Geometry)
	ret.Symbols = make([]string, 0, total)
	coords := make([]*v3.Matrix, 0, len(geos))
	for _, G := range geos {
		ret.Symbols = append(ret.Symbols, G.Symbols...)
		coords = append(coords, G.Coords)
		ret.charge += G.charge
		ret.spin += G.spin
	}
	ret.Coords = v3.Zeros(total)
	ret.Coords.Stack(coords...)
	return ret, nil
}
