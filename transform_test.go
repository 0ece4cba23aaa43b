/*
 * transform_test.go, part of govrc.
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
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/vrctst/govrc/rot"
	v3 "github.com/vrctst/govrc/v3"
)

func newMatrix(Te *testing.T, data ...float64) *v3.Matrix {
	Te.Helper()
	M, err := v3.NewMatrix(data)
	if err != nil {
		Te.Fatal(err)
	}
	return M
}

func water(Te *testing.T) *Geometry {
	Te.Helper()
	G, err := NewGeometry([]string{"O", "H", "H"},
		newMatrix(Te, 0, 0, 0.1173, 0, 0.7572, -0.4692, 0, -0.7572, -0.4692), 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	return G
}

func TestConcat(Te *testing.T) {
	A, err := NewGeometry([]string{"H", "H"}, newMatrix(Te, 0, 0, 0, 1, 0, 0), 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	B, err := NewGeometry([]string{"O"}, newMatrix(Te, 0, 0, 1), 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	C, err := Concat(A, B)
	if err != nil {
		Te.Fatal(err)
	}
	symbols := []string{"H", "H", "O"}
	if C.Len() != 3 {
		Te.Fatalf("expected 3 atoms, got %d", C.Len())
	}
	for i, s := range symbols {
		if C.Symbol(i) != s {
			Te.Errorf("atom %d is %s, expected %s", i, C.Symbol(i), s)
		}
	}
	expected := newMatrix(Te, 0, 0, 0, 1, 0, 0, 0, 0, 1)
	if !C.Coords.EqualApprox(expected, 0) {
		Te.Errorf("concatenated coordinates %v, expected %v", C.Coords, expected)
	}
	if C.Charge() != 0 || C.Spin() != 2 {
		Te.Errorf("charge %d spin %d, expected 0 and 2", C.Charge(), C.Spin())
	}
	//the inputs are untouched and don't share data with the result.
	C.Coords.Set(0, 0, 50)
	C.Symbols[0] = "He"
	if A.Coords.At(0, 0) != 0 || A.Symbols[0] != "H" {
		Te.Error("Concat result shares data with its inputs")
	}
}

func TestConcatErrors(Te *testing.T) {
	if _, err := Concat(); err == nil {
		Te.Error("concatenating nothing should fail")
	}
	bad := &Geometry{Symbols: []string{"H", "H"}, Coords: newMatrix(Te, 0, 0, 0)}
	_, err := Concat(water(Te), bad)
	if err == nil {
		Te.Fatal("concatenating a corrupted geometry should fail")
	}
	if e, ok := err.(Error); !ok || len(e.Decorate("")) < 2 {
		Te.Errorf("expected a decorated Error, got %v", err)
	}
}

func TestTranslateRoundTrip(Te *testing.T) {
	G := water(Te)
	G.SetCharge(-1)
	G.SetSpin(1)
	orig := G.Coords.Clone()
	v := newMatrix(Te, 1.5, -2, 3.25)
	T, err := Translate(G, v)
	if err != nil {
		Te.Fatal(err)
	}
	if !G.Coords.EqualApprox(orig, 0) {
		Te.Error("Translate without inPlace changed the input")
	}
	if math.Abs(T.Coords.At(1, 1)-(0.7572-2)) > 1e-12 {
		Te.Errorf("wrong translated coordinate %v", T.Coords.At(1, 1))
	}
	minusv := v.Clone()
	minusv.Scale(-1, minusv)
	back, err := Translate(T, minusv)
	if err != nil {
		Te.Fatal(err)
	}
	if !back.Coords.EqualApprox(orig, 1e-12) {
		Te.Errorf("round trip gave %v, expected %v", back.Coords, orig)
	}
	if back.Charge() != -1 || back.Spin() != 1 || back.Symbols[0] != "O" {
		Te.Error("Translate changed symbols, charge or spin")
	}
}

func TestTranslatePerAtom(Te *testing.T) {
	G := water(Te)
	v := newMatrix(Te, 1, 0, 0, 0, 1, 0, 0, 0, 1)
	T, err := Translate(G, v)
	if err != nil {
		Te.Fatal(err)
	}
	expected := G.Coords.Clone()
	expected.Add(expected, v)
	if !T.Coords.EqualApprox(expected, 1e-12) {
		Te.Errorf("per-atom translation gave %v, expected %v", T.Coords, expected)
	}
	if _, err := Translate(G, newMatrix(Te, 1, 1, 1, 2, 2, 2)); err == nil {
		Te.Error("a 2x3 translation can't be applied to 3 atoms")
	}
}

func TestInPlace(Te *testing.T) {
	G := water(Te)
	orig := G.Coords.Clone()
	v := newMatrix(Te, 0, 0, 1)
	T, err := Translate(G, v, false)
	if err != nil {
		Te.Fatal(err)
	}
	if T == G || !G.Coords.EqualApprox(orig, 0) {
		Te.Error("Translate(inPlace=false) must return a new geometry and leave the input alone")
	}
	T, err = Translate(G, v, true)
	if err != nil {
		Te.Fatal(err)
	}
	if T != G {
		Te.Error("Translate(inPlace=true) must return the same geometry")
	}
	if math.Abs(G.Coords.At(0, 2)-(0.1173+1)) > 1e-12 {
		Te.Errorf("Translate(inPlace=true) didn't change the geometry: %v", G.Coords)
	}
	R := rot.RotatorAroundZ(math.Pi / 2)
	coords := G.Coords
	Rt, err := Rotate(G, R, true)
	if err != nil {
		Te.Fatal(err)
	}
	if Rt != G || G.Coords != coords {
		Te.Error("Rotate(inPlace=true) must modify the same geometry and matrix")
	}
	//(0, 0.7572) rotated 90 degrees around z is (-0.7572, 0)
	if math.Abs(G.Coords.At(1, 0)+0.7572) > 1e-12 || math.Abs(G.Coords.At(1, 1)) > 1e-12 {
		Te.Errorf("wrong rotated coordinates %v", G.Coords)
	}
}

func TestRotateComposition(Te *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	G := water(Te)
	for i := 0; i < 20; i++ {
		R1 := rot.UniformRandomRotation(rng)
		R2 := rot.UniformRandomRotation(rng)
		G1, err := Rotate(G, R1)
		if err != nil {
			Te.Fatal(err)
		}
		G12, err := Rotate(G1, R2)
		if err != nil {
			Te.Fatal(err)
		}
		R21 := v3.Zeros(3)
		R21.Mul(R2, R1)
		G21, err := Rotate(G, R21)
		if err != nil {
			Te.Fatal(err)
		}
		if !mat.EqualApprox(G12.Coords, G21.Coords, 1e-10) {
			Te.Errorf("rotate(rotate(G,R1),R2) %v != rotate(G,R2R1) %v", G12.Coords, G21.Coords)
		}
	}
}

func TestRotateErrors(Te *testing.T) {
	G := water(Te)
	if _, err := Rotate(G, newMatrix(Te, 1, 0, 0, 0, 1, 0)); err == nil {
		Te.Error("a 2x3 rotation matrix should be rejected")
	}
	if _, err := Rotate(nil, rot.RotatorAroundZ(1)); err == nil {
		Te.Error("rotating a nil geometry should fail")
	}
}

func TestCopy(Te *testing.T) {
	G := water(Te)
	G.SetSpin(2)
	C := G.Copy()
	C.Coords.Set(0, 0, 10)
	C.Symbols[1] = "D"
	if G.Coords.At(0, 0) != 0 || G.Symbols[1] != "H" {
		Te.Error("Copy shares data with the original")
	}
	if C.Spin() != 2 {
		Te.Error("Copy lost the spin")
	}
	if _, err := NewGeometry([]string{"H"}, newMatrix(Te, 0, 0, 0, 1, 1, 1), 0, 0); err == nil {
		Te.Error("NewGeometry should reject inconsistent symbols and coordinates")
	}
}

func TestSomeAtoms(Te *testing.T) {
	G := water(Te)
	G.SetCharge(-1)
	F, err := G.SomeAtoms([]int{2, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if F.Len() != 2 || F.Symbol(0) != "H" || F.Symbol(1) != "O" {
		Te.Errorf("wrong fragment symbols %v", F.Symbols)
	}
	if F.Coords.At(0, 1) != -0.7572 || F.Coords.At(1, 2) != 0.1173 {
		Te.Errorf("wrong fragment coordinates %v", F.Coords)
	}
	if F.Charge() != 0 {
		Te.Errorf("fragment charge should be zero, got %d", F.Charge())
	}
	F.Coords.Set(0, 0, 5)
	if G.Coords.At(2, 0) != 0 {
		Te.Error("SomeAtoms shares data with the original geometry")
	}
	//The pivot direction of the two hydrogens lies in their plane.
	H, err := G.SomeAtoms([]int{1, 2})
	if err != nil {
		Te.Fatal(err)
	}
	perp, err := ClosestUnitPerpendicular(H.Coords)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(perp.At(0, 2)+1) > 1e-9 {
		Te.Errorf("expected (0,0,-1) for the hydrogens, got %v", perp)
	}
	for _, bad := range [][]int{nil, {0, 3}, {-1}} {
		if _, err := G.SomeAtoms(bad); err == nil {
			Te.Errorf("expected an error for indexes %v", bad)
		}
	}
}
