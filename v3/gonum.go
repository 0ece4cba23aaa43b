/*
 * gonum.go, part of govrc.
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

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space, stored as the rows of
// a gonum Dense. Within the package a "vector" is a row vector,
// i.e. the cartesian coordinates of one point.
type Matrix struct {
	*mat.Dense
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// data is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return nil, Error{"Input slice is empty", []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Len is the same as NVecs.
func (F *Matrix) Len() int {
	return F.NVecs()
}

// VecView returns a view of the ith vector of the matrix.
// Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// View returns a view of the vecs vectors of F starting from the ith one.
func (F *Matrix) View(i, vecs int) *Matrix {
	r := F.Dense.Slice(i, i+vecs, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// Copy puts a copy of A in the receiver, which must have
// the same dimensions.
func (F *Matrix) Copy(A mat.Matrix) {
	if A, ok := A.(*Matrix); ok {
		F.Dense.Copy(A.Dense)
		return
	}
	F.Dense.Copy(A)
}

// Clone returns a copy of F that shares no data with it.
func (F *Matrix) Clone() *Matrix {
	r := Zeros(F.NVecs())
	r.Dense.Copy(F.Dense)
	return r
}

// Mul wraps mat.Dense.Mul to take care of the case when one of the
// arguments is also the receiver. Since the receiver is a Matrix,
// gonum would compare A (a *Matrix) with F.Dense and it would not know
// that they share the data, hence the need for this function.
func (F *Matrix) Mul(A, B mat.Matrix) {
	F.Dense.Mul(unwrap(A), unwrap(B))
}

// Add wraps mat.Dense.Add for Matrix arguments.
func (F *Matrix) Add(A, B mat.Matrix) {
	F.Dense.Add(unwrap(A), unwrap(B))
}

// Sub wraps mat.Dense.Sub for Matrix arguments.
func (F *Matrix) Sub(A, B mat.Matrix) {
	F.Dense.Sub(unwrap(A), unwrap(B))
}

// Scale wraps mat.Dense.Scale for Matrix arguments.
func (F *Matrix) Scale(f float64, A mat.Matrix) {
	F.Dense.Scale(f, unwrap(A))
}

func unwrap(A mat.Matrix) mat.Matrix {
	if M, ok := A.(*Matrix); ok {
		return M.Dense
	}
	return A
}

// Stack puts all the vectors of the given matrices in the receiver,
// one matrix after the other. F must have exactly as many vectors as
// all the matrices together.
func (F *Matrix) Stack(A ...*Matrix) {
	total := 0
	for _, v := range A {
		total += v.NVecs()
	}
	if F.NVecs() != total {
		panic(ErrShape)
	}
	start := 0
	for _, v := range A {
		n := v.NVecs()
		F.View(start, n).Dense.Copy(v.Dense)
		start += n
	}
}

// Det returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func Det(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) -
		A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) +
		A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2))
}

//Errors

// Error is the error type of the package. It mirrors the root package's
// Error, and is defined again here to avoid a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix   = PanicMsg("govrc/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct = PanicMsg("govrc/v3: Invalid matrix for cross product")
	ErrDeterminant    = PanicMsg("govrc/v3: Determinants are only available for 3x3 matrices")
	ErrShape          = PanicMsg("govrc/v3: Dimension mismatch")
)
