/*
 * axis.go, part of govrc.
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

import (
	"fmt"
	"math"

	v3 "github.com/vrctst/govrc/v3"
)

// Deg2Rad converts degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

// AxisAngleQuaternion returns the unit quaternion for a rotation of angle radians
// around axis, a 1x3 vector that does not need to be normalized.
func AxisAngleQuaternion(axis *v3.Matrix, angle float64) (Quaternion, error) {
	if axis == nil {
		return Quaternion{}, fmt.Errorf("rot: nil rotation axis")
	}
	if r, c := axis.Dims(); r != 1 || c != 3 {
		return Quaternion{}, fmt.Errorf("rot: rotation axis must be 1x3, not %dx%d", r, c)
	}
	norm := axis.Norm(2)
	if norm == 0 {
		return Quaternion{}, fmt.Errorf("rot: zero rotation axis")
	}
	s, c := math.Sincos(angle / 2)
	s /= norm
	return Quaternion{s * axis.At(0, 0), s * axis.At(0, 1), s * axis.At(0, 2), c}, nil
}

// AxisAngle returns the rotation matrix that rotates vectors by angle radians
// (counterclockwise, looking down the axis) around axis.
func AxisAngle(axis *v3.Matrix, angle float64) (*v3.Matrix, error) {
	q, err := AxisAngleQuaternion(axis, angle)
	if err != nil {
		return nil, err
	}
	return q.Matrix(), nil
}

// RotatorAroundZ returns the matrix that rotates vectors by gamma radians around the z axis.
func RotatorAroundZ(gamma float64) *v3.Matrix {
	s, c := math.Sincos(gamma)
	R := v3.Zeros(3)
	R.Set(0, 0, c)
	R.Set(0, 1, -s)
	R.Set(1, 0, s)
	R.Set(1, 1, c)
	R.Set(2, 2, 1)
	return R
}
