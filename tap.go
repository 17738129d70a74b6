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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ZoomInFactor is the magnification, relative to the minimum scale, used
// when zooming in by double tap.
const ZoomInFactor = 2.0

// DoubleTapPlan describes the reaction to a double tap.
type DoubleTapPlan struct {
	// ZoomOut is set if the view should return to the minimum scale.
	ZoomOut bool

	// Scale is the target zoom scale.
	Scale float64

	// Rect is the content space rectangle which, when focused, shows the
	// content at Scale centred on the tap location.
	Rect rect.Rect
}

// PlanDoubleTap decides how to react to a double tap at the content space
// point tap, for a viewport of size viewport at the given current scale.
// minScale and maxScale are the scale limits reported to the host.
//
// If the current scale is at least half the maximum, the plan zooms out to
// minScale.  Otherwise it zooms in to [ZoomInFactor] times minScale, limited
// to maxScale.  The returned rectangle is not clamped to the content.
func PlanDoubleTap(tap vec.Vec2, viewport Size, scale, minScale, maxScale float64) (DoubleTapPlan, error) {
	if !(isFinite(minScale) && minScale > 0) || !(isFinite(maxScale) && maxScale > 0) {
		return DoubleTapPlan{}, fmt.Errorf("scale range [%g, %g]: %w", minScale, maxScale, ErrInvalidScale)
	}

	var plan DoubleTapPlan
	if scale >= maxScale/2 {
		plan.ZoomOut = true
		plan.Scale = minScale
	} else {
		plan.Scale = min(ZoomInFactor*minScale, maxScale)
	}

	size := viewport.Div(plan.Scale)
	origin := tap.Sub(size.Scale(0.5).Vec())
	plan.Rect = RectAt(origin, size)

	if !vecFinite(origin) || !size.nonNegative() {
		return DoubleTapPlan{}, fmt.Errorf("zoom rect %v: %w", plan.Rect, ErrNonFinite)
	}
	return plan, nil
}

// FocusRect computes the zoom scale and content offset which show the
// content space rectangle target as large as possible, centred in the
// viewport.  The scale is clamped to r and the offset to the scrollable
// range, in the same way as by [RecoverResize].
func FocusRect(target rect.Rect, bounds, content Size, r ScaleRange) (float64, vec.Vec2, error) {
	size := Size{Width: target.Dx(), Height: target.Dy()}
	if !size.Valid() {
		return 0, vec.Vec2{}, &InvalidSizeError{What: "focus rectangle", Size: size}
	}
	if !content.Valid() {
		return 0, vec.Vec2{}, &InvalidSizeError{What: "content size", Size: content}
	}

	scale := r.Clamp(min(bounds.Width/size.Width, bounds.Height/size.Height))
	offset := centerOn(rectCenter(target), scale, bounds, content)
	if !isFinite(scale) || !vecFinite(offset) {
		return 0, vec.Vec2{}, fmt.Errorf("focus scale %g offset %v: %w", scale, offset, ErrNonFinite)
	}
	return scale, offset, nil
}
