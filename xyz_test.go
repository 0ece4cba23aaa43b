/*
 * xyz_test.go, part of govrc.
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
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestXYZString(Te *testing.T) {
	G, err := NewGeometry([]string{"H"}, newMatrix(Te, 1.0, 2.0, 3.0), 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	str, err := XYZString(G)
	if err != nil {
		Te.Fatal(err)
	}
	expected := "1\n\nH   1.000000   2.000000   3.000000"
	if str != expected {
		Te.Errorf("got %q, expected %q", str, expected)
	}
	W := water(Te)
	str, err = XYZString(W)
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(str, "\n")
	if len(lines) != 5 || lines[0] != "3" || lines[1] != "" {
		Te.Fatalf("wrong XYZ layout: %q", str)
	}
	if lines[3] != "H   0.000000   0.757200  -0.469200" {
		Te.Errorf("wrong atom line %q", lines[3])
	}
	bad := &Geometry{Symbols: []string{"H"}, Coords: newMatrix(Te, 0, 0, 0, 1, 1, 1)}
	if _, err := XYZString(bad); err == nil {
		Te.Error("XYZString should refuse a corrupted geometry")
	}
	if _, err := XYZStringComment(W, "two\nlines"); err == nil {
		Te.Error("a comment with a line break should be refused")
	}
}

func TestXYZWriteRead(Te *testing.T) {
	G := water(Te)
	G.SetCharge(1)
	G.SetSpin(1)
	var buf bytes.Buffer
	if err := XYZWrite(&buf, G); err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "3\ncharge=1 spin=1\n") {
		Te.Errorf("charge and spin missing from the comment: %q", buf.String())
	}
	R, err := XYZRead(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if R.Len() != 3 || R.Symbol(0) != "O" || R.Charge() != 1 || R.Spin() != 1 {
		Te.Errorf("read back %v %d %d", R.Symbols, R.Charge(), R.Spin())
	}
	if !R.Coords.EqualApprox(G.Coords, 1e-6) {
		Te.Errorf("read back %v, expected %v", R.Coords, G.Coords)
	}
}

// argon is a SymbolChargeSpinner that is not a Geometry.
type argon int

func (a argon) Symbol(i int) string { return "Ar" }
func (a argon) Len() int            { return int(a) }
func (a argon) Charge() int         { return 0 }
func (a argon) Spin() int           { return 0 }

func TestXYZFrameWrite(Te *testing.T) {
	var buf bytes.Buffer
	coords := newMatrix(Te, 0, 0, 0, 3.8, 0, 0)
	if err := XYZFrameWrite(&buf, argon(2), coords); err != nil {
		Te.Fatal(err)
	}
	expected := "2\n\nAr   0.000000   0.000000   0.000000\nAr   3.800000   0.000000   0.000000\n"
	if buf.String() != expected {
		Te.Errorf("got %q, expected %q", buf.String(), expected)
	}
	if err := XYZFrameWrite(&buf, argon(3), coords); err == nil {
		Te.Error("expected an error for 2 coordinates and 3 atoms")
	}
	if err := XYZFrameWrite(&buf, argon(2), nil); err == nil {
		Te.Error("expected an error for nil coordinates")
	}
	if err := XYZFrameWrite(&buf, nil, coords); err == nil {
		Te.Error("expected an error for a nil molecule")
	}
}

func TestXYZFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "water.xyz")
	G := water(Te)
	if err := XYZFileWrite(name, G); err != nil {
		Te.Fatal(err)
	}
	R, err := XYZFileRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if !R.Coords.EqualApprox(G.Coords, 1e-6) || R.Charge() != 0 || R.Spin() != 0 {
		Te.Errorf("file round trip gave %v", R.Coords)
	}
	if _, err := XYZFileRead(filepath.Join(Te.TempDir(), "nothere.xyz")); err == nil {
		Te.Error("reading a missing file should fail")
	}
}

func TestReadXYZFrames(Te *testing.T) {
	//Two frames, the last line without a newline.
	input := "2\nframe 1\nH 0 0 0\nH 0 0 0.74\n\n1\n\nO 1.5 -2 3"
	r := bufio.NewReader(strings.NewReader(input))
	first, err := ReadXYZFrame(r)
	if err != nil {
		Te.Fatal(err)
	}
	if first.Len() != 2 || first.Coords.At(1, 2) != 0.74 {
		Te.Errorf("wrong first frame %v", first.Coords)
	}
	second, err := ReadXYZFrame(r)
	if err != nil {
		Te.Fatal(err)
	}
	if second.Symbol(0) != "O" || second.Coords.At(0, 1) != -2 {
		Te.Errorf("wrong second frame %v", second.Coords)
	}
	if _, err := ReadXYZFrame(r); err != io.EOF {
		Te.Errorf("expected io.EOF after the last frame, got %v", err)
	}
}

func TestXYZReadErrors(Te *testing.T) {
	inputs := map[string]string{
		"empty":         "",
		"bad count":     "two\n\nH 0 0 0\n",
		"short frame":   "3\n\nH 0 0 0\nH 0 0 1\n",
		"bad atom line": "1\n\nH 0 0\n",
		"bad number":    "1\n\nH 0 zero 0\n",
		"bad charge":    "1\ncharge=x\nH 0 0 0\n",
	}
	for name, in := range inputs {
		if _, err := XYZRead(strings.NewReader(in)); err == nil {
			Te.Errorf("%s: expected an error", name)
		}
	}
}
