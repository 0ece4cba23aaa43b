/*
 * diag.go, part of govrc.
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
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	v3 "github.com/vrctst/govrc/v3"
)

// RotationAngle returns the angle, in radians and in [0, pi], of the
// rotation R around its axis.
func RotationAngle(R *v3.Matrix) float64 {
	c := (R.At(0, 0) + R.At(1, 1) + R.At(2, 2) - 1) / 2
	//Take care of floating point errors
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c)
}

// HaarAngleDensity is the probability density of the rotation angle theta
// for uniformly distributed rotations.
func HaarAngleDensity(theta float64) float64 {
	if theta < 0 || theta > math.Pi {
		return 0
	}
	return (1 - math.Cos(theta)) / math.Pi
}

// HaarAngleCDF is the probability that a uniformly distributed rotation
// has an angle of theta or less.
func HaarAngleCDF(theta float64) float64 {
	if theta <= 0 {
		return 0
	}
	if theta >= math.Pi {
		return 1
	}
	return (theta - math.Sin(theta)) / math.Pi
}

// Angles returns the rotation angles of all the rotations in rots.
func Angles(rots []*v3.Matrix) []float64 {
	ret := make([]float64, len(rots))
	for i, R := range rots {
		ret[i] = RotationAngle(R)
	}
	return ret
}

// MeanRotated returns the average of R·v over all the rotations R in rots.
// For uniformly distributed rotations it tends to zero.
func MeanRotated(rots []*v3.Matrix, v *v3.Matrix) *v3.Matrix {
	comps := [3][]float64{}
	for j := range comps {
		comps[j] = make([]float64, len(rots))
	}
	rotated := v3.Zeros(1)
	for i, R := range rots {
		rotated.Mul(v, R.T())
		for j := range comps {
			comps[j][i] = rotated.At(0, j)
		}
	}
	ret := v3.Zeros(1)
	for j := range comps {
		ret.Set(0, j, stat.Mean(comps[j], nil))
	}
	return ret
}

// AngleDividers returns the bins+1 dividers that split [0, pi] in bins
// bins of equal width. The last one is slightly larger than pi, so pi itself
// falls in the last bin. bins smaller than 1 is taken as 1.
func AngleDividers(bins int) []float64 {
	bins = max(bins, 1)
	d := floats.Span(make([]float64, bins+1), 0, math.Pi)
	d[bins] = math.Nextafter(math.Pi, 4)
	return d
}

// AngleChiSquare returns the chi-square statistic comparing the histogram of the
// rotation angles of rots, with the given number of bins, with the histogram
// expected for uniformly distributed rotations. It has bins-1 degrees of freedom.
// As in AngleDividers, bins smaller than 1 is taken as 1.
func AngleChiSquare(rots []*v3.Matrix, bins int) float64 {
	bins = max(bins, 1)
	angles := Angles(rots)
	sort.Float64s(angles)
	dividers := AngleDividers(bins)
	counts := stat.Histogram(nil, dividers, angles, nil)
	expected := make([]float64, bins)
	n := float64(len(rots))
	for i := range expected {
		expected[i] = n * (HaarAngleCDF(dividers[i+1]) - HaarAngleCDF(dividers[i]))
	}
	return stat.ChiSquare(counts, expected)
}
