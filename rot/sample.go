/*
 * sample.go, part of govrc.
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

package rot

import v3 "github.com/vrctst/govrc/v3"

// UniformRandomRotation returns a random rotation matrix, uniformly distributed
// over all rotations (i.e. Haar-distributed).
func UniformRandomRotation(rng Source) *v3.Matrix {
	return UniformRandomUnitQuaternion(rng).Matrix()
}

// UniformRandomRotations returns n rotations obtained with UniformRandomRotation.
// If n is not positive, the slice is empty.
func UniformRandomRotations(rng Source, n int) []*v3.Matrix {
	n = max(n, 0)
	ret := make([]*v3.Matrix, 0, n)
	for i := 0; i < n; i++ {
		ret = append(ret, UniformRandomRotation(rng))
	}
	return ret
}
