/*
 * xyz.go, part of govrc.
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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	v3 "github.com/vrctst/govrc/v3"
)

// XYZString returns the XYZ representation of G: the number of atoms, an empty
// comment line, and one line per atom with its symbol and its coordinates, each
// in a 10-character field with 6 decimals. There is no newline after the last atom.
// This is the text 3D viewers take for "xyz" models.
func XYZString(G *Geometry) (string, error) {
	ret, err := XYZStringComment(G, "")
	if err != nil {
		return "", errDecorate(err, "XYZString")
	}
	return ret, nil
}

// XYZStringComment is like XYZString, but puts comment in the second line.
// comment must not contain newlines.
func XYZStringComment(G *Geometry, comment string) (string, error) {
	if err := G.Corrupted(); err != nil {
		return "", errDecorate(err, "XYZStringComment")
	}
	ret, err := xyzText(G, G.Coords, comment)
	if err != nil {
		return "", errDecorate(err, "XYZStringComment")
	}
	return ret, nil
}

// xyzText returns the XYZ text for the atoms of mol placed at coords.
func xyzText(mol Symboler, coords *v3.Matrix, comment string) (string, error) {
	if strings.ContainsAny(comment, "\r\n") {
		return "", &CError{"XYZ comment with a line break", []string{"xyzText"}}
	}
	if coords == nil {
		return "", &CError{"nil coordinates", []string{"xyzText"}}
	}
	n := mol.Len()
	if r, c := coords.Dims(); r != n || c != 3 {
		return "", &CError{fmt.Sprintf("Coordinates of shape %dx%d for %d atoms", r, c, n), []string{"xyzText"}}
	}
	lines := make([]string, n)
	var c [3]float64
	for i := 0; i < n; i++ {
		mat.Row(c[:], i, coords)
		lines[i] = fmt.Sprintf("%s %10.6f %10.6f %10.6f", mol.Symbol(i), c[0], c[1], c[2])
	}
	return fmt.Sprintf("%d\n%s\n", n, comment) + strings.Join(lines, "\n"), nil
}

// XYZFrameWrite writes to w, in XYZ format and with a final newline, the atoms of mol
// placed at coords, which must have one row per atom. Charge and spin are written in
// the comment line, unless both are zero. This allows writing several sets of coordinates
// for the same atoms without building a Geometry for each.
func XYZFrameWrite(w io.Writer, mol SymbolChargeSpinner, coords *v3.Matrix) error {
	if mol == nil {
		return &CError{"nil molecule", []string{"XYZFrameWrite"}}
	}
	comment := ""
	if mol.Charge() != 0 || mol.Spin() != 0 {
		comment = fmt.Sprintf("charge=%d spin=%d", mol.Charge(), mol.Spin())
	}
	str, err := xyzText(mol, coords, comment)
	if err != nil {
		return errDecorate(err, "XYZFrameWrite")
	}
	_, err = io.WriteString(w, str+"\n")
	return err
}

// XYZWrite writes G in XYZ format to w, with a final newline.
// Charge and spin are written in the comment line, unless both are zero.
func XYZWrite(w io.Writer, G *Geometry) error {
	if err := G.Corrupted(); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	return errDecorate(XYZFrameWrite(w, G, G.Coords), "XYZWrite")
}

// XYZFileWrite writes G to an XYZ file with name xyzname, which will
// be created for that. If the file exists it will be overwritten.
func XYZFileWrite(xyzname string, G *Geometry) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return err
	}
	if err := XYZWrite(out, G); err != nil {
		out.Close()
		return errDecorate(err, "XYZFileWrite")
	}
	return out.Close()
}

// XYZRead reads one geometry in XYZ format from r.
func XYZRead(r io.Reader) (*Geometry, error) {
	G, err := ReadXYZFrame(bufio.NewReader(r))
	if err == io.EOF {
		return nil, &CError{"Empty XYZ input", []string{"XYZRead"}}
	}
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return G, nil
}

// XYZFileRead reads an XYZ file and returns the geometry in it.
func XYZFileRead(xyzname string) (*Geometry, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, err
	}
	defer xyzfile.Close()
	G, err := XYZRead(xyzfile)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead: "+xyzname)
	}
	return G, nil
}

// ReadXYZFrame reads the next XYZ frame from xyz. Blank lines before the
// frame are skipped. It returns io.EOF, and nothing else, if the input ends before
// a new frame starts. If the comment line contains "charge=" and "spin=" fields,
// they are used for the charge and spin of the geometry.
func ReadXYZFrame(xyz *bufio.Reader) (*Geometry, error) {
	var line string
	var err error
	for {
		line, err = xyz.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, &CError{fmt.Sprintf("Ill formatted XYZ atom count: %q", strings.TrimSpace(line)), []string{"ReadXYZFrame"}}
	}
	comment, err := xyz.ReadString('\n')
	if err != nil {
		return nil, &CError{"XYZ frame ends before its comment line", []string{"ReadXYZFrame"}}
	}
	G := new(Geometry)
	if err := parseComment(G, comment); err != nil {
		return nil, errDecorate(err, "ReadXYZFrame")
	}
	G.Symbols = make([]string, natoms)
	G.Coords = v3.Zeros(natoms)
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			return nil, &CError{fmt.Sprintf("XYZ frame ends after %d of %d atoms", i, natoms), []string{"ReadXYZFrame"}}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, &CError{fmt.Sprintf("Atom line %d ill formed: %q", i+1, strings.TrimSpace(line)), []string{"ReadXYZFrame"}}
		}
		G.Symbols[i] = fields[0]
		for j := 0; j < 3; j++ {
			c, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, &CError{fmt.Sprintf("Atom line %d: %s", i+1, err.Error()), []string{"ReadXYZFrame"}}
			}
			G.Coords.Set(i, j, c)
		}
	}
	return G, nil
}

func parseComment(G *Geometry, comment string) error {
	for _, f := range strings.Fields(comment) {
		key, val, found := strings.Cut(f, "=")
		if !found || (key != "charge" && key != "spin") {
			continue
		}
		i, err := strconv.Atoi(val)
		if err != nil {
			return &CError{fmt.Sprintf("Invalid %s in XYZ comment: %q", key, val), []string{"parseComment"}}
		}
		if key == "charge" {
			G.charge = i
		} else {
			G.spin = i
		}
	}
	return nil
}
