/*
 * view.go, part of govrc.
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
Package view builds scenes with molecular geometries and arrows (for instance, the
orientation of a dividing surface) for 3D molecular viewers such as 3Dmol.js.

The package doesn't draw anything. A Builder accumulates the models, arrows and
style, and then replays them on any Viewer, which is where the actual rendering happens.
The scene can also be exported as JSON.
*/
package view

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	vrc "github.com/vrctst/govrc"
	"github.com/vrctst/govrc/internal/logging"
	v3 "github.com/vrctst/govrc/v3"
)

// Viewer is something that can render models, arrows and styles, usually a
// wrapper around a 3D molecular viewer.
type Viewer interface {
	//AddModel adds a model given as text in the given format (e.g. "xyz").
	AddModel(data, format string) error

	//SetStyle sets the style for all the models added so far.
	SetStyle(style Style) error

	//AddArrow adds an arrow.
	AddArrow(spec ArrowSpec) error
}

// Point is a point in space, with the JSON layout 3D viewers expect.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ArrowSpec describes an arrow from Start to End.
type ArrowSpec struct {
	Start Point  `json:"start"`
	End   Point  `json:"end"`
	Color string `json:"color"`
}

// Model is a named model, given as text in a format a viewer can parse.
type Model struct {
	Name   string `json:"name"`
	Data   string `json:"data"`
	Format string `json:"format"`
}

// Style maps representations (e.g. "stick") to their options.
type Style map[string]map[string]any

// DefaultStyle returns sticks plus small spheres.
func DefaultStyle() Style {
	return Style{
		"stick":  {},
		"sphere": {"scale": 0.3},
	}
}

const (
	defaultSize  = 400
	defaultColor = "black"
)

// Builder accumulates a scene. The zero value is not usable, use New.
type Builder struct {
	width  int
	height int
	models []Model
	arrows []ArrowSpec
	style  Style
}

// New returns an empty Builder for a view of the given size, in pixels.
// Non-positive sizes are replaced by 400.
func New(width, height int) *Builder {
	if width <= 0 {
		width = defaultSize
	}
	if height <= 0 {
		height = defaultSize
	}
	return &Builder{width: width, height: height, style: DefaultStyle()}
}

// Size returns the width and height of the view.
func (B *Builder) Size() (int, int) {
	return B.width, B.height
}

// SetStyle replaces the style applied to the models.
func (B *Builder) SetStyle(s Style) {
	B.style = s
}

// Models returns the models added so far.
func (B *Builder) Models() []Model {
	ret := make([]Model, len(B.models))
	copy(ret, B.models)
	return ret
}

// Arrows returns the arrows added so far.
func (B *Builder) Arrows() []ArrowSpec {
	ret := make([]ArrowSpec, len(B.arrows))
	copy(ret, B.arrows)
	return ret
}

// AddGeometry adds G to the scene as an XYZ model. If no name is given, a random
// unique name is used. It returns the name of the model.
func (B *Builder) AddGeometry(G *vrc.Geometry, name ...string) (string, error) {
	xyz, err := vrc.XYZString(G)
	if err != nil {
		return "", fmt.Errorf("view: can't add geometry: %w", err)
	}
	n := uuid.NewString()
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	B.models = append(B.models, Model{Name: n, Data: xyz, Format: "xyz"})
	return n, nil
}

// AddArrow adds an arrow ending at tip and starting at start, or at the origin if
// start is nil. If direction is true, tip is taken as a vector relative to start,
// so the arrow ends at start+tip. The color is black unless given.
func (B *Builder) AddArrow(tip, start *v3.Matrix, direction bool, color ...string) error {
	if err := checkVector(tip, "tip"); err != nil {
		return err
	}
	s := v3.Zeros(1)
	if start != nil {
		if err := checkVector(start, "start"); err != nil {
			return err
		}
		s.Copy(start)
	}
	end := tip.Clone()
	if direction {
		end.Add(end, s)
	}
	c := defaultColor
	if len(color) > 0 && color[0] != "" {
		c = color[0]
	}
	length := v3.Zeros(1)
	length.Sub(end, s)
	if length.Norm(2) == 0 {
		logging.Logger().Warn("zero-length arrow added to view", "at", toPoint(s), "color", c)
	}
	B.arrows = append(B.arrows, ArrowSpec{Start: toPoint(s), End: toPoint(end), Color: c})
	return nil
}

// Render adds all the models, each followed by the style, and then all the arrows, to V.
func (B *Builder) Render(V Viewer) error {
	for _, m := range B.models {
		if err := V.AddModel(m.Data, m.Format); err != nil {
			return fmt.Errorf("view: adding model %s: %w", m.Name, err)
		}
		if err := V.SetStyle(B.style); err != nil {
			return fmt.Errorf("view: setting style: %w", err)
		}
	}
	for i, a := range B.arrows {
		if err := V.AddArrow(a); err != nil {
			return fmt.Errorf("view: adding arrow %d: %w", i, err)
		}
	}
	return nil
}

// MarshalJSON exports the whole scene.
func (B *Builder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Width  int         `json:"width"`
		Height int         `json:"height"`
		Models []Model     `json:"models"`
		Arrows []ArrowSpec `json:"arrows"`
		Style  Style       `json:"style"`
	}{
		Width:  B.width,
		Height: B.height,
		Models: B.Models(),
		Arrows: B.Arrows(),
		Style:  B.style,
	})
}

func checkVector(v *v3.Matrix, name string) error {
	if v == nil {
		return fmt.Errorf("view: nil %s", name)
	}
	if r, c := v.Dims(); r != 1 || c != 3 {
		return fmt.Errorf("view: %s must be a single vector, not %dx%d", name, r, c)
	}
	return nil
}

func toPoint(v *v3.Matrix) Point {
	return Point{X: v.At(0, 0), Y: v.At(0, 1), Z: v.At(0, 2)}
}
