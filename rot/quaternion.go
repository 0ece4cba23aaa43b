/*
 * quaternion.go, part of govrc.
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

/*
Package rot draws uniformly distributed random rotations, and provides some tools to check
that a set of rotations is, in fact, uniformly distributed.

Random numbers always come from a Source given by the caller. Options.Rand builds one, seeded
or not, so sampling can be made reproducible.
*/
package rot

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	v3 "github.com/vrctst/govrc/v3"
)

// Source gives uniformly distributed numbers in [0,1). *rand.Rand, from both
// math/rand and math/rand/v2, implements it.
type Source interface {
	Float64() float64
}

// Quaternion is a quaternion (q0, q1, q2, q3) in scalar-last order: q3 is the
// real part and (q0, q1, q2) the vector part.
type Quaternion [4]float64

// UniformRandomUnitQuaternion returns a random unit quaternion, uniformly distributed
// over the unit 3-sphere, using the method of Shoemake. It takes exactly 3 numbers from rng.
// The quaternion is not normalized afterwards, its norm is 1 by construction.
func UniformRandomUnitQuaternion(rng Source) Quaternion {
	u1 := rng.Float64()
	u2 := rng.Float64()
	u3 := rng.Float64()
	a := math.Sqrt(1 - u1)
	b := math.Sqrt(u1)
	s2, c2 := math.Sincos(2 * math.Pi * u2)
	s3, c3 := math.Sincos(2 * math.Pi * u3)
	return Quaternion{a * s2, a * c2, b * s3, b * c3}
}

// FromNumber returns the Quaternion corresponding to the gonum quaternion n.
func FromNumber(n quat.Number) Quaternion {
	return Quaternion{n.Imag, n.Jmag, n.Kmag, n.Real}
}

// Number returns q as a gonum quaternion.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q[3], Imag: q[0], Jmag: q[1], Kmag: q[2]}
}

// Norm returns the norm of q.
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.Number())
}

// Matrix returns the rotation matrix for q, which is assumed to be a
// unit quaternion.
func (q Quaternion) Matrix() *v3.Matrix {
	x, y, z, w := q[0], q[1], q[2], q[3]
	R := v3.Zeros(3)
	R.SetRow(0, []float64{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)})
	R.SetRow(1, []float64{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)})
	R.SetRow(2, []float64{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)})
	return R
}

// Rotate returns a new matrix with each vector of A rotated by q, computed as
// q·v·q* with quaternion products. q must be a unit quaternion.
func Rotate(q Quaternion, A *v3.Matrix) *v3.Matrix {
	n := q.Number()
	conj := quat.Conj(n)
	ret := v3.Zeros(A.NVecs())
	for i := 0; i < A.NVecs(); i++ {
		p := quat.Number{Imag: A.At(i, 0), Jmag: A.At(i, 1), Kmag: A.At(i, 2)}
		pp := quat.Mul(quat.Mul(n, p), conj)
		ret.SetRow(i, []float64{pp.Imag, pp.Jmag, pp.Kmag})
	}
	return ret
}
