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

// Package float formats scales and coordinates for display.
package float

import (
	"regexp"
	"strconv"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Format formats x with at most the given number of digits after the
// decimal point.  Trailing zeros are removed.
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

// Vec formats a point as "(x, y)".
func Vec(v vec.Vec2, precision int) string {
	return "(" + Format(v.X, precision) + ", " + Format(v.Y, precision) + ")"
}

// Rect formats a rectangle by its minimum and maximum corners.
func Rect(r rect.Rect, precision int) string {
	return Vec(vec.Vec2{X: r.LLx, Y: r.LLy}, precision) + "-" +
		Vec(vec.Vec2{X: r.URx, Y: r.URy}, precision)
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
