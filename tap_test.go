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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestPlanDoubleTapToggle(t *testing.T) {
	viewport := Size{300, 300}
	tap := vec.Vec2{X: 300, Y: 150}
	minScale, maxScale := 0.4995, 1.5

	out, err := PlanDoubleTap(tap, viewport, maxScale, minScale, maxScale)
	if err != nil {
		t.Fatal(err)
	}
	if !out.ZoomOut || out.Scale != minScale {
		t.Errorf("at maximum: got %+v, want zoom out to %g", out, minScale)
	}

	in, err := PlanDoubleTap(tap, viewport, minScale, minScale, maxScale)
	if err != nil {
		t.Fatal(err)
	}
	if in.ZoomOut {
		t.Fatal("at minimum: got zoom out")
	}
	if want := 2 * minScale; in.Scale != want {
		t.Errorf("at minimum: scale %g, want %g", in.Scale, want)
	}

	// Half the maximum is the switching point.
	half, err := PlanDoubleTap(tap, viewport, maxScale/2, minScale, maxScale)
	if err != nil {
		t.Fatal(err)
	}
	if !half.ZoomOut {
		t.Error("at half maximum: got zoom in")
	}
}

func TestPlanDoubleTapLimitedByMax(t *testing.T) {
	plan, err := PlanDoubleTap(vec.Vec2{}, Size{100, 100}, 0.5, 1, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	if plan.ZoomOut || plan.Scale != 1.5 {
		t.Errorf("got %+v, want zoom in to 1.5", plan)
	}
}

func TestPlanDoubleTapRect(t *testing.T) {
	plan, err := PlanDoubleTap(vec.Vec2{X: 100, Y: 50}, Size{300, 300}, 1, 1, 6)
	if err != nil {
		t.Fatal(err)
	}
	want := DoubleTapPlan{
		Scale: 2,
		Rect:  rect.Rect{LLx: 25, LLy: -25, URx: 175, URy: 125},
	}
	if d := cmp.Diff(want, plan); d != "" {
		t.Error(d)
	}
}

func TestPlanDoubleTapInvalid(t *testing.T) {
	_, err := PlanDoubleTap(vec.Vec2{}, Size{100, 100}, 1, 0, 3)
	if !errors.Is(err, ErrInvalidScale) {
		t.Errorf("expected ErrInvalidScale, got %v", err)
	}
}

// TestFocusPlannedRect checks that focusing the rectangle returned by
// PlanDoubleTap yields the planned scale, centred on the tap location.
func TestFocusPlannedRect(t *testing.T) {
	bounds := Size{300, 300}
	content := Size{1200, 900}
	r, err := ComputeScaleBounds(bounds, content, nil)
	if err != nil {
		t.Fatal(err)
	}
	tap := vec.Vec2{X: 600, Y: 450}
	plan, err := PlanDoubleTap(tap, bounds, r.Effective(), r.Effective(), r.Max)
	if err != nil {
		t.Fatal(err)
	}

	scale, offset, err := FocusRect(plan.Rect, bounds, content, r)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(plan.Scale, scale, cmpopts.EquateApprox(1e-12, 0)); d != "" {
		t.Error(d)
	}
	// The tap location is the content centre, so it should end up in the
	// middle of the viewport.
	want := content.Scale(scale).Vec().Sub(bounds.Vec()).Mul(0.5)
	if d := cmp.Diff(want, offset, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}

func TestFocusRectClamps(t *testing.T) {
	bounds := Size{300, 300}
	content := Size{600, 300}
	r := ScaleRange{Min: 0.5, Max: 1.5}

	// A tiny rectangle asks for a huge scale.
	target := rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}
	scale, offset, err := FocusRect(target, bounds, content, r)
	if err != nil {
		t.Fatal(err)
	}
	if scale != 1.5 {
		t.Errorf("scale = %g, want 1.5", scale)
	}
	if d := cmp.Diff(vec.Vec2{}, offset); d != "" {
		t.Error(d)
	}

	var sizeErr *InvalidSizeError
	_, _, err = FocusRect(rect.Rect{LLx: 5, LLy: 5, URx: 5, URy: 10}, bounds, content, r)
	if !errors.As(err, &sizeErr) {
		t.Errorf("expected InvalidSizeError, got %v", err)
	}
}
