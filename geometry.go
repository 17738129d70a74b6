// seehuhn.de/go/zoomview - zoom and scroll geometry for image viewers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package zoomview

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Size is the extent of a rectangular area.
type Size struct {
	Width, Height float64
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Scale returns the size multiplied by f.
func (s Size) Scale(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Div returns the size divided by f.
func (s Size) Div(f float64) Size {
	return Size{Width: s.Width / f, Height: s.Height / f}
}

// IsZero reports whether both extents are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Valid reports whether both extents are positive and finite.
func (s Size) Valid() bool {
	return isFinite(s.Width) && isFinite(s.Height) && s.Width > 0 && s.Height > 0
}

// Vec returns the size as a vector from the origin to the far corner.
func (s Size) Vec() vec.Vec2 {
	return vec.Vec2{X: s.Width, Y: s.Height}
}

func (s Size) nonNegative() bool {
	return isFinite(s.Width) && isFinite(s.Height) && s.Width >= 0 && s.Height >= 0
}

// Translate moves the point p by the size s.
func Translate(p vec.Vec2, s Size) vec.Vec2 {
	return p.Add(s.Vec())
}

// RectAt returns the rectangle with top-left corner origin and the given size.
//
// Viewport and content coordinates grow downward, so the LLx/LLy fields of
// the result hold the top-left (minimum) corner.
func RectAt(origin vec.Vec2, size Size) rect.Rect {
	return rect.Rect{
		LLx: origin.X,
		LLy: origin.Y,
		URx: origin.X + size.Width,
		URy: origin.Y + size.Height,
	}
}

func rectCenter(r rect.Rect) vec.Vec2 {
	return vec.Vec2{X: (r.LLx + r.URx) / 2, Y: (r.LLy + r.URy) / 2}
}

// ContentToScroll returns the transformation from content space to the
// scroll coordinates of the content frame, when the content is shown at
// the given scale and shifted by inset.
func ContentToScroll(scale float64, inset vec.Vec2) matrix.Matrix {
	return matrix.Scale(scale, scale).Mul(matrix.Translate(inset.X, inset.Y))
}

// ScrollToContent is the inverse of [ContentToScroll].
func ScrollToContent(scale float64, inset vec.Vec2) matrix.Matrix {
	return ContentToScroll(scale, inset).Inv()
}

// CenteringInset returns the shift of the content frame which centres
// content of size scaled inside a viewport of size bounds.  Along axes
// where the content fills the viewport the inset is zero.
func CenteringInset(bounds, scaled Size) vec.Vec2 {
	var inset vec.Vec2
	if scaled.Width < bounds.Width {
		inset.X = (bounds.Width - scaled.Width) / 2
	}
	if scaled.Height < bounds.Height {
		inset.Y = (bounds.Height - scaled.Height) / 2
	}
	return inset
}

// ClampOffset restricts offset to the scrollable range of content of size
// scaled inside a viewport of size bounds.  The range on each axis is
// [0, scaled-bounds]; if the content is smaller than the viewport, the
// lower bound wins and the offset on that axis is 0.
func ClampOffset(offset vec.Vec2, bounds, scaled Size) vec.Vec2 {
	maxOffset := scaled.Vec().Sub(bounds.Vec())
	return vec.Vec2{
		X: clamp(offset.X, 0, maxOffset.X),
		Y: clamp(offset.Y, 0, maxOffset.Y),
	}
}

// clamp restricts x to [lo, hi].  If hi < lo, the result is lo.
func clamp[T constraints.Float](x, lo, hi T) T {
	return max(lo, min(hi, x))
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func vecFinite(v vec.Vec2) bool {
	return isFinite(v.X) && isFinite(v.Y)
}
