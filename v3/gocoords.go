/*
 * gocoords.go, part of govrc.
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

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//METHODS

// AddVec adds the vector vec to each vector of A, putting the result
// in the receiver. A and F can be the same matrix.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	var v, row [3]float64
	mat.Row(v[:], 0, vec)
	for i := 0; i < ar; i++ {
		mat.Row(row[:], i, A)
		floats.Add(row[:], v[:])
		F.SetRow(i, row[:])
	}
}

// SubVec subtracts the vector vec from each vector of the matrix A, putting
// the result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	var v, row [3]float64
	mat.Row(v[:], 0, vec)
	for i := 0; i < ar; i++ {
		mat.Row(row[:], i, A)
		floats.Sub(row[:], v[:])
		F.SetRow(i, row[:])
	}
}

// Dot returns the sum of the element-wise products of F and B, which
// for two vectors is the dot product.
func (F *Matrix) Dot(B *Matrix) float64 {
	fr, fc := F.Dims()
	br, bc := B.Dims()
	if fr != br || fc != bc {
		panic(ErrShape)
	}
	var a, b [3]float64
	var ret float64
	for i := 0; i < fr; i++ {
		mat.Row(a[:], i, F)
		mat.Row(b[:], i, B)
		ret += floats.Dot(a[:], b[:])
	}
	return ret
}

// Cross puts the cross product of the first vecs of a and b in the first vec of F. Panics if error.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrNoCrossProduct)
	}
	x := a.At(0, 1)*b.At(0, 2) - a.At(0, 2)*b.At(0, 1)
	y := a.At(0, 2)*b.At(0, 0) - a.At(0, 0)*b.At(0, 2)
	z := a.At(0, 0)*b.At(0, 1) - a.At(0, 1)*b.At(0, 0)
	F.Set(0, 0, x)
	F.Set(0, 1, y)
	F.Set(0, 2, z)
}

// Unit puts in the receiver the vector A scaled to norm 1.
// A zero vector is copied unchanged.
func (F *Matrix) Unit(A *Matrix) {
	if A.Dense != F.Dense {
		F.Copy(A)
	}
	norm := F.Norm(2)
	if norm <= appzero {
		return
	}
	F.Scale(1.0/norm, F)
}

// Sum returns the sum of all the vectors in F, as a new vector.
func (F *Matrix) Sum() *Matrix {
	ret := Zeros(1)
	var row, acc [3]float64
	for i := 0; i < F.NVecs(); i++ {
		mat.Row(row[:], i, F)
		floats.Add(acc[:], row[:])
	}
	ret.SetRow(0, acc[:])
	return ret
}

// SomeVecs puts in the receiver the vectors of A whose indexes are
// in clist, in the same order as clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ac != fc || fr != len(clist) {
		panic(ErrShape)
	}
	var row [3]float64
	for key, val := range clist {
		if val < 0 || val >= ar {
			panic(ErrShape)
		}
		mat.Row(row[:], val, A)
		F.SetRow(key, row[:])
	}
}

// EqualApprox returns true if F and B have the same dimensions and
// all their elements differ by at most epsilon.
func (F *Matrix) EqualApprox(B *Matrix, epsilon float64) bool {
	fr, fc := F.Dims()
	br, bc := B.Dims()
	if fr != br || fc != bc {
		return false
	}
	for i := 0; i < fr; i++ {
		for j := 0; j < fc; j++ {
			if math.Abs(F.At(i, j)-B.At(i, j)) > epsilon {
				return false
			}
		}
	}
	return true
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F)
		if i == 0 {
			v[i+1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
			continue
		} else if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
			continue
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}
