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
	"log/slog"

	"seehuhn.de/go/geom/vec"
)

// float32Epsilon is the single precision machine epsilon.
const float32Epsilon = 0x1p-23

// ResizeSnapshot records the visual state before a change of the viewport
// size, so that it can be restored afterwards.
type ResizeSnapshot struct {
	// Center is the content space point under the centre of the viewport.
	Center vec.Vec2

	// Scale is the zoom scale to restore.  It is ignored if AtMinimum is
	// set.
	Scale float64

	// AtMinimum indicates that the viewport was at its minimum scale.
	// After the resize, the new minimum scale is used.
	AtMinimum bool
}

// PrepareResize captures the state needed to restore the view after a
// change of the viewport size.  center is the content space point currently
// under the viewport centre, scale is the current zoom scale, and minScale
// is the minimum scale reported to the host.
func PrepareResize(center vec.Vec2, scale, minScale float64) ResizeSnapshot {
	snap := ResizeSnapshot{
		Center: center,
		Scale:  scale,
	}
	if scale <= minScale+float32Epsilon {
		snap.AtMinimum = true
		snap.Scale = 0
	}
	return snap
}

// RecoverResize computes the zoom scale and content offset after the
// viewport has changed to size bounds.
//
// The scale is restored from the snapshot, clamped to the new scale range.
// The offset places the snapshot's content point at the centre of the
// viewport, as far as the scrollable range permits.
func RecoverResize(bounds, content Size, opt *Options, snap ResizeSnapshot) (float64, vec.Vec2, error) {
	scale, offset, _, err := recoverResize(bounds, content, opt, snap)
	return scale, offset, err
}

func recoverResize(bounds, content Size, opt *Options, snap ResizeSnapshot) (float64, vec.Vec2, ScaleRange, error) {
	r, err := ComputeScaleBounds(bounds, content, opt)
	if err != nil {
		return 0, vec.Vec2{}, ScaleRange{}, err
	}

	target := snap.Scale
	if snap.AtMinimum {
		target = r.Effective()
	}
	target = r.Clamp(target)

	offset := centerOn(snap.Center, target, bounds, content)
	if !isFinite(target) || !vecFinite(offset) {
		return 0, vec.Vec2{}, ScaleRange{}, fmt.Errorf("recovered scale %g offset %v: %w", target, offset, ErrNonFinite)
	}

	Logger().Debug("resize recovered",
		slog.String("bounds", bounds.String()),
		slog.Bool("atMinimum", snap.AtMinimum),
		slog.Float64("scale", target),
		slog.Float64("offsetX", offset.X),
		slog.Float64("offsetY", offset.Y))
	return target, offset, r, nil
}

// centerOn returns the clamped content offset which shows the content
// space point p at the centre of the viewport, at the given scale.
func centerOn(p vec.Vec2, scale float64, bounds, content Size) vec.Vec2 {
	scaled := content.Scale(scale)
	inset := CenteringInset(bounds, scaled)
	x, y := ContentToScroll(scale, inset).Apply(p.X, p.Y)
	offset := vec.Vec2{X: x, Y: y}.Sub(bounds.Scale(0.5).Vec())
	return ClampOffset(offset, bounds, scaled)
}
