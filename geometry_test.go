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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestSizeArithmetic(t *testing.T) {
	s := Size{300, 200}
	if got := s.Scale(1.5); got != (Size{450, 300}) {
		t.Errorf("Scale: %v", got)
	}
	if got := s.Div(4); got != (Size{75, 50}) {
		t.Errorf("Div: %v", got)
	}
	if got := Translate(vec.Vec2{X: 1, Y: 2}, s); got != (vec.Vec2{X: 301, Y: 202}) {
		t.Errorf("Translate: %v", got)
	}
	if !(Size{}).IsZero() || s.IsZero() {
		t.Error("IsZero")
	}
	if !s.Valid() || (Size{0, 1}).Valid() {
		t.Error("Valid")
	}
}

func TestRectAt(t *testing.T) {
	got := RectAt(vec.Vec2{X: -5, Y: 10}, Size{20, 30})
	want := rect.Rect{LLx: -5, LLy: 10, URx: 15, URy: 40}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
	if w, h := got.Dx(), got.Dy(); w != 20 || h != 30 {
		t.Errorf("size = %gx%g", w, h)
	}
	if c := rectCenter(got); c != (vec.Vec2{X: 5, Y: 25}) {
		t.Errorf("rectCenter = %v", c)
	}
}

// TestScrollTransformInverse checks that ScrollToContent undoes
// ContentToScroll.
func TestScrollTransformInverse(t *testing.T) {
	scales := []float64{0.001, 0.4995, 1, 2.5, 40}
	insets := []vec.Vec2{{}, {X: 10}, {Y: 7.5}, {X: 0.15, Y: 75.075}}
	points := []vec.Vec2{{}, {X: 1, Y: 1}, {X: 300, Y: 150}, {X: -20, Y: 1e4}}
	for _, s := range scales {
		for _, inset := range insets {
			t.Run(fmt.Sprintf("%g/%v", s, inset), func(t *testing.T) {
				fwd := ContentToScroll(s, inset)
				inv := ScrollToContent(s, inset)
				for _, p := range points {
					qx, qy := fwd.Apply(p.X, p.Y)
					q := vec.Vec2{X: qx, Y: qy}
					want := p.Mul(s).Add(inset)
					if d := cmp.Diff(want, q, cmpopts.EquateApprox(1e-12, 1e-12)); d != "" {
						t.Errorf("forward %v: %s", p, d)
					}
					bx, by := inv.Apply(q.X, q.Y)
					if d := cmp.Diff(p, vec.Vec2{X: bx, Y: by}, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
						t.Errorf("round trip %v: %s", p, d)
					}
				}
			})
		}
	}
}

func TestCenteringInset(t *testing.T) {
	cases := []struct {
		bounds, scaled Size
		want           vec.Vec2
	}{
		{Size{300, 300}, Size{600, 600}, vec.Vec2{}},
		{Size{300, 300}, Size{300, 300}, vec.Vec2{}},
		{Size{300, 300}, Size{100, 600}, vec.Vec2{X: 100}},
		{Size{300, 300}, Size{600, 200}, vec.Vec2{Y: 50}},
		{Size{300, 300}, Size{0, 0}, vec.Vec2{X: 150, Y: 150}},
	}
	for _, test := range cases {
		got := CenteringInset(test.bounds, test.scaled)
		if got != test.want {
			t.Errorf("CenteringInset(%v, %v) = %v, want %v", test.bounds, test.scaled, got, test.want)
		}
	}
}
