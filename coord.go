/*
 * coord.go, part of govrc.
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
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/vrctst/govrc/internal/logging"
	v3 "github.com/vrctst/govrc/v3"
)

// ClosestUnitPerpendicular returns the unit vector that is closest to being
// perpendicular to all the points (rows) in coords, i.e. the normal of the
// plane through the origin that best fits them, in the total least squares sense.
// It is the right singular vector of coords with the smallest singular value.
// The decomposition is thin: for fewer than 3 points only as many right singular
// vectors as points are considered, so the result lies in the span of the points.
// For a single point it is the direction of that point.
//
// By default, the returned vector points towards the bulk of the points: the sum
// of its dot products with all the points is not negative. If away is given and true,
// it points the other way.
//
// Degenerate sets of points (all identical, collinear, at the origin) don't cause
// errors. The returned vector still has norm 1, but its orientation is not
// uniquely defined.
func ClosestUnitPerpendicular(coords *v3.Matrix, away ...bool) (*v3.Matrix, error) {
	if coords == nil {
		return nil, &CError{"nil coordinates", []string{"ClosestUnitPerpendicular"}}
	}
	r, c := coords.Dims()
	if c != 3 || r == 0 {
		return nil, &CError{fmt.Sprintf("Coordinates of shape %dx%d", r, c), []string{"ClosestUnitPerpendicular"}}
	}
	var svd mat.SVD
	//With fewer than 3 points, V has only as many columns as points.
	if ok := svd.Factorize(coords.Dense, mat.SVDThin); !ok {
		return nil, &CError{"SVD factorization failed", []string{"ClosestUnitPerpendicular"}}
	}
	var V mat.Dense
	svd.VTo(&V)
	_, k := V.Dims()
	perp := v3.Zeros(1)
	for j := 0; j < 3; j++ {
		perp.Set(0, j, V.At(j, k-1))
	}
	if vals := svd.Values(nil); ambiguousMinorAxis(vals) {
		logging.Logger().Debug("ambiguous closest perpendicular, orientation is arbitrary", "singular_values", vals)
	}
	isAway := coords.Sum().Dot(perp) < 0
	if isAway != isTrue(away) {
		perp.Scale(-1, perp)
	}
	return perp, nil
}

// ambiguousMinorAxis returns true if the 2 smallest singular values
// among vals, sorted in decreasing order, can't be told apart.
func ambiguousMinorAxis(vals []float64) bool {
	k := len(vals)
	if k < 2 {
		return false
	}
	scale := math.Max(1, vals[0])
	return math.Abs(vals[k-2]-vals[k-1]) <= 1e-10*scale
}
