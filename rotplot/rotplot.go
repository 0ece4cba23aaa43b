/*
 * rotplot.go, part of govrc.
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

// Package rotplot draws diagnostic plots for sets of sampled rotations.
package rotplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vrctst/govrc/rot"
	v3 "github.com/vrctst/govrc/v3"
)

// Size of the saved plots.
const side = 5 * vg.Inch

func basicAnglePlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Rotation angle (rad)"
	p.Y.Label.Text = "Density"
	p.X.Min = 0
	p.X.Max = math.Pi
	p.Add(plotter.NewGrid())
	return p
}

// AngleHistogram plots a normalized histogram, with the given number of bins, of the rotation
// angles of rots, together with the angle density expected for uniformly distributed
// rotations, (1-cos θ)/π. The plot is saved to filename, and the format is taken
// from its extension (png, svg, pdf, etc).
func AngleHistogram(rots []*v3.Matrix, bins int, title, filename string) error {
	if len(rots) == 0 {
		return fmt.Errorf("rotplot: no rotations to plot")
	}
	if bins <= 0 {
		return fmt.Errorf("rotplot: invalid number of bins %d", bins)
	}
	p := basicAnglePlot(title)
	h, err := plotter.NewHist(plotter.Values(rot.Angles(rots)), bins)
	if err != nil {
		return err
	}
	h.Normalize(1)
	h.FillColor = color.RGBA{R: 120, G: 160, B: 220, A: 255}
	p.Add(h)
	haar := plotter.NewFunction(rot.HaarAngleDensity)
	haar.XMin = 0
	haar.XMax = math.Pi
	haar.Samples = 200
	haar.Color = color.RGBA{R: 200, A: 255}
	haar.Width = vg.Points(2)
	p.Add(haar)
	p.Legend.Add("sampled", h)
	p.Legend.Add("uniform", haar)
	p.Legend.Left = true
	p.Legend.Top = true
	return p.Save(side, side, filename)
}
