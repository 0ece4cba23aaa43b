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

/*
Package xyz reads and writes multi-frame XYZ files, i.e. XYZ files with several geometries
one after the other, as used to store sets of sampled orientations.

Files ending in ".zst" are compressed with Zstandard, files ending in ".gz" with gzip.
Any other file is plain text. All the frames of a file must have the same number of atoms.
*/
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	vrc "github.com/vrctst/govrc"
	"github.com/vrctst/govrc/internal/logging"
	v3 "github.com/vrctst/govrc/v3"
)

type compression int

const (
	plain compression = iota
	zst
	gz
)

func compressionFor(name string) compression {
	l := strings.ToLower(name)
	switch {
	case strings.HasSuffix(l, ".zst"):
		return zst
	case strings.HasSuffix(l, ".gz"):
		return gz
	default:
		return plain
	}
}

//Write!

// Writer writes geometries as frames of a multi-frame XYZ file.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	natoms    int
	filename  string
	writeable bool
	frames    int
}

// flushCloser turns a bufio.Writer into a WriteCloser that only flushes on Close.
type flushCloser struct {
	*bufio.Writer
}

func (fc flushCloser) Close() error {
	return fc.Flush()
}

// NewWriter creates the file name, for frames with natoms atoms. If the file exists
// it will be overwritten. The compression level can be given for compressed files; it is
// a zstd level (1-22) or a gzip level (1-9). The default is the best compression.
func NewWriter(name string, natoms int, level ...int) (*Writer, error) {
	if natoms <= 0 {
		return nil, &Error{fmt.Sprintf("Invalid number of atoms %d", natoms), name, []string{"NewWriter"}, true}
	}
	S := new(Writer)
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, &Error{err.Error(), name, []string{"NewWriter"}, true}
	}
	switch compressionFor(name) {
	case zst:
		l := zstd.SpeedBestCompression
		if len(level) > 0 {
			l = zstd.EncoderLevelFromZstd(level[0])
		}
		S.h, err = zstd.NewWriter(S.f, zstd.WithEncoderLevel(l))
	case gz:
		l := gzip.BestCompression
		if len(level) > 0 {
			l = level[0]
		}
		S.h, err = gzip.NewWriterLevel(S.f, l)
	default:
		S.h = flushCloser{bufio.NewWriter(S.f)}
	}
	if err != nil {
		S.f.Close()
		return nil, &Error{"Can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.natoms = natoms
	S.filename = name
	S.writeable = true
	logging.Logger().Debug("opened XYZ trajectory for writing", "file", name, "atoms", natoms)
	return S, nil
}

// Len returns the number of atoms per frame.
func (S *Writer) Len() int {
	return S.natoms
}

// Frames returns the number of frames written so far.
func (S *Writer) Frames() int {
	return S.frames
}

// WNext writes G as the next frame.
func (S *Writer) WNext(G *vrc.Geometry) error {
	if err := G.Corrupted(); err != nil {
		return &Error{err.Error(), S.filename, []string{"WNext"}, true}
	}
	if err := S.WCoords(G, G.Coords); err != nil {
		err.(*Error).Decorate("WNext")
		return err
	}
	return nil
}

// WCoords writes as the next frame the atoms of mol placed at coords. It allows
// writing many sets of coordinates, e.g. several orientations, for the same atoms.
func (S *Writer) WCoords(mol vrc.SymbolChargeSpinner, coords *v3.Matrix) error {
	if !S.writeable {
		return &Error{"Trajectory not writeable", S.filename, []string{"WCoords"}, true}
	}
	if mol == nil || coords == nil {
		return &Error{"nil molecule or coordinates", S.filename, []string{"WCoords"}, true}
	}
	if mol.Len() != S.natoms {
		return &Error{fmt.Sprintf("Frame with %d atoms in a trajectory with %d", mol.Len(), S.natoms), S.filename, []string{"WCoords"}, true}
	}
	if err := vrc.XYZFrameWrite(S.h, mol, coords); err != nil {
		return &Error{err.Error(), S.filename, []string{"WCoords"}, true}
	}
	S.frames++
	return nil
}

// Close flushes and closes the file. The Writer can't be used after this call.
func (S *Writer) Close() error {
	if S == nil || !S.writeable {
		return nil
	}
	S.writeable = false
	err := S.h.Close()
	if err2 := S.f.Close(); err == nil {
		err = err2
	}
	logging.Logger().Debug("closed XYZ trajectory", "file", S.filename, "frames", S.frames)
	if err != nil {
		return &Error{err.Error(), S.filename, []string{"Close"}, true}
	}
	return nil
}

//Read!

// Reader reads a multi-frame XYZ file, frame by frame. It implements vrc.Traj.
type Reader struct {
	f        *os.File
	dec      io.ReadCloser
	h        *bufio.Reader
	natoms   int
	filename string
	readable bool
	pending  *vrc.Geometry
}

// zstdCloser makes a *zstd.Decoder, whose Close returns nothing, an io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// New opens the multi-frame XYZ file name. The first frame is read to
// obtain the number of atoms, so the file must have at least one.
func New(name string) (*Reader, error) {
	R := new(Reader)
	var err error
	R.filename = name
	R.f, err = os.Open(name)
	if err != nil {
		return nil, &Error{err.Error(), name, []string{"New"}, true}
	}
	buffered := bufio.NewReader(R.f)
	switch compressionFor(name) {
	case zst:
		var d *zstd.Decoder
		d, err = zstd.NewReader(buffered)
		if err == nil {
			R.dec = zstdCloser{d}
		}
	case gz:
		R.dec, err = gzip.NewReader(buffered)
	default:
		R.dec = io.NopCloser(buffered)
	}
	if err != nil {
		R.f.Close()
		return nil, &Error{"Can't set up decompression: " + err.Error(), name, []string{"New"}, true}
	}
	R.h = bufio.NewReader(R.dec)
	first, err := vrc.ReadXYZFrame(R.h)
	if err != nil {
		R.dec.Close()
		R.f.Close()
		msg := "No frames in file"
		if err != io.EOF {
			msg = err.Error()
		}
		return nil, &Error{msg, name, []string{"New"}, true}
	}
	R.natoms = first.Len()
	R.pending = first
	R.readable = true
	logging.Logger().Debug("opened XYZ trajectory for reading", "file", name, "atoms", R.natoms)
	return R, nil
}

// Readable returns true if the trajectory can still be read.
func (R *Reader) Readable() bool {
	return R.readable
}

// Len returns the number of atoms per frame.
func (R *Reader) Len() int {
	return R.natoms
}

// NextGeometry returns the next frame. At the end of the file it returns an
// error that implements vrc.LastFrameError.
func (R *Reader) NextGeometry() (*vrc.Geometry, error) {
	if !R.readable {
		return nil, &Error{"Trajectory not readable", R.filename, []string{"NextGeometry"}, true}
	}
	if R.pending != nil {
		G := R.pending
		R.pending = nil
		return G, nil
	}
	G, err := vrc.ReadXYZFrame(R.h)
	if err == io.EOF {
		R.Close()
		return nil, lastFrameError{&Error{"No more frames", R.filename, []string{"NextGeometry"}, false}}
	}
	if err != nil {
		R.readable = false
		return nil, &Error{err.Error(), R.filename, []string{"NextGeometry"}, true}
	}
	if G.Len() != R.natoms {
		R.readable = false
		return nil, &Error{fmt.Sprintf("Frame with %d atoms in a trajectory with %d", G.Len(), R.natoms), R.filename, []string{"NextGeometry"}, true}
	}
	return G, nil
}

// Next reads the next frame and copies its coordinates into output, or
// discards them if output is nil.
func (R *Reader) Next(output *v3.Matrix) error {
	G, err := R.NextGeometry()
	if err != nil {
		if e, ok := err.(vrc.Error); ok {
			e.Decorate("Next")
		}
		return err
	}
	if output == nil {
		return nil
	}
	if r, c := output.Dims(); r != R.natoms || c != 3 {
		return &Error{fmt.Sprintf("Output matrix of shape %dx%d for %d atoms", r, c, R.natoms), R.filename, []string{"Next"}, true}
	}
	output.Copy(G.Coords)
	return nil
}

// Close closes the file. The Reader can't be used after this call.
func (R *Reader) Close() error {
	if R == nil || R.f == nil {
		return nil
	}
	R.readable = false
	R.dec.Close()
	err := R.f.Close()
	R.f = nil
	return err
}

//Errors

// Error is the error type for XYZ trajectories. It implements vrc.TrajError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return fmt.Sprintf("xyz file %s error: %s", err.filename, err.message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// FileName returns the name of the file that caused the error.
func (err *Error) FileName() string { return err.filename }

// Format returns the format of the file that caused the error.
func (err *Error) Format() string { return "xyz" }

// Critical returns whether the error is critical or it can be ignored.
func (err *Error) Critical() bool { return err.critical }

// xyzError aliases Error so that, when embedded, the field name does not
// shadow the promoted Error method.
type xyzError = Error

type lastFrameError struct {
	*xyzError
}

// NormalLastFrameTermination does nothing, it marks the end of the trajectory.
func (err lastFrameError) NormalLastFrameTermination() {}
