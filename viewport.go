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
	"log/slog"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Viewport holds the zoom and scroll state of a single content view inside
// a scrollable container.
//
// The host reports events (bounds changes, newly displayed content, taps,
// pinch and pan results) and applies the resulting scale and offset to its
// scrollable surface.  A Viewport must only be used from a single
// goroutine, and a bounds change must not synchronously trigger another
// bounds change.
type Viewport struct {
	opt Options

	bounds     Size
	content    Size
	hasContent bool

	scale  float64
	offset vec.Vec2
	scales ScaleRange

	// snap is the pending resize snapshot, taken for a change to snapFor.
	snap    *ResizeSnapshot
	snapFor Size
}

// NewViewport creates a viewport of the given size.
// If opt is nil, the default options are used.
func NewViewport(bounds Size, opt *Options) *Viewport {
	v := &Viewport{
		bounds: bounds,
		scale:  1,
	}
	if opt != nil {
		v.opt = *opt
	}
	return v
}

// Options returns the options of the viewport.
func (v *Viewport) Options() Options {
	return v.opt
}

// SetOptions replaces the options of the viewport.  If content is
// displayed, it is displayed again with the new options, resetting zoom and
// offset.  On error the previous options are kept.
// If opt is nil, the default options are used.
func (v *Viewport) SetOptions(opt *Options) error {
	var next Options
	if opt != nil {
		next = *opt
	}
	if err := next.check(); err != nil {
		return err
	}
	prev := v.opt
	v.opt = next
	if !v.hasContent {
		return nil
	}
	if err := v.Display(v.content); err != nil {
		v.opt = prev
		return err
	}
	return nil
}

// Bounds returns the current viewport size.
func (v *Viewport) Bounds() Size {
	return v.bounds
}

// ContentSize returns the natural size of the displayed content.
func (v *Viewport) ContentSize() Size {
	return v.content
}

// HasContent reports whether content has been displayed.
func (v *Viewport) HasContent() bool {
	return v.hasContent
}

// Scale returns the current zoom scale.
func (v *Viewport) Scale() float64 {
	return v.scale
}

// Offset returns the current content offset, i.e. the scroll position of
// the top-left corner of the viewport.
func (v *Viewport) Offset() vec.Vec2 {
	return v.offset
}

// ScaleBounds returns the minimum and maximum zoom scale, as reported to the
// host.  The minimum is [ScaleRange.Effective].
func (v *Viewport) ScaleBounds() (float64, float64) {
	return v.scales.Effective(), v.scales.Max
}

// ScaleRange returns the computed scale range.
func (v *Viewport) ScaleRange() ScaleRange {
	return v.scales
}

// ContentFrame returns the rectangle covered by the content, in scroll
// coordinates.  Content smaller than the viewport is centred.
func (v *Viewport) ContentFrame() rect.Rect {
	scaled := v.content.Scale(v.scale)
	return RectAt(CenteringInset(v.bounds, scaled), scaled)
}

// Display shows new content of the given natural size.  Any previous state
// is discarded: the zoom scale is set to the minimum and the offset is
// chosen by the offset policy.
func (v *Viewport) Display(content Size) error {
	r, err := ComputeScaleBounds(v.bounds, content, &v.opt)
	if err != nil {
		return err
	}

	v.content = content
	v.hasContent = true
	v.scales = r
	v.scale = r.Effective()
	v.snap = nil

	fitted := content.Scale(v.scale)
	offset := PlanInitialOffset(v.bounds, fitted, v.opt.FitMode, v.opt.OffsetPolicy)
	v.offset = ClampOffset(offset, v.bounds, fitted)

	Logger().Debug("display",
		slog.String("content", content.String()),
		slog.Float64("scale", v.scale))
	return nil
}

// Refresh displays the current content again, resetting zoom and offset.
func (v *Viewport) Refresh() error {
	if !v.hasContent {
		return ErrNoContent
	}
	return v.Display(v.content)
}

// BoundsWillChange must be called before the viewport changes to size
// newSize.  It records the content point under the viewport centre and the
// current scale.  The snapshot is only valid for a change to newSize.
// Nothing is recorded, and any pending snapshot is dropped, if the size is
// unchanged or invalid, or if no content is displayed.
func (v *Viewport) BoundsWillChange(newSize Size) {
	v.snap = nil
	if newSize == v.bounds || !newSize.Valid() || !v.hasContent {
		return
	}
	snap := PrepareResize(v.visibleCenter(), v.scale, v.scales.Effective())
	v.snap = &snap
	v.snapFor = newSize
	Logger().Debug("resize prepared",
		slog.String("from", v.bounds.String()),
		slog.String("to", newSize.String()),
		slog.Bool("atMinimum", snap.AtMinimum))
}

// BoundsDidChange must be called after the viewport has changed to size
// newSize.  It recomputes the scale range and restores scale and centre
// point from the snapshot taken by [Viewport.BoundsWillChange].
//
// If the size changed while content is displayed and no snapshot for
// newSize is pending, [ErrNoSnapshot] is returned and the state is left
// unchanged.  Any pending snapshot is consumed.
func (v *Viewport) BoundsDidChange(newSize Size) error {
	snap, snapFor := v.snap, v.snapFor
	v.snap = nil
	if newSize == v.bounds || newSize.IsZero() {
		return nil
	}
	if !newSize.Valid() {
		return &InvalidSizeError{What: "bounds size", Size: newSize}
	}
	if !v.hasContent {
		v.bounds = newSize
		return nil
	}
	if snap == nil || snapFor != newSize {
		Logger().Warn("resize without snapshot",
			slog.String("from", v.bounds.String()),
			slog.String("to", newSize.String()))
		return ErrNoSnapshot
	}

	scale, offset, r, err := recoverResize(newSize, v.content, &v.opt, *snap)
	if err != nil {
		return err
	}
	v.bounds = newSize
	v.scales = r
	v.scale = scale
	v.offset = offset
	return nil
}

// DoubleTap reacts to a double tap at the point p, given relative to the
// top-left corner of the viewport.  The new scale and offset are applied
// and the plan is returned so that the host can animate the transition.
func (v *Viewport) DoubleTap(p vec.Vec2) (DoubleTapPlan, error) {
	if !v.hasContent {
		return DoubleTapPlan{}, ErrNoContent
	}
	v.snap = nil

	tap := v.toContent(v.offset.Add(p))
	minScale, maxScale := v.ScaleBounds()
	plan, err := PlanDoubleTap(tap, v.bounds, v.scale, minScale, maxScale)
	if err != nil {
		return DoubleTapPlan{}, err
	}

	if plan.ZoomOut {
		v.zoomAroundCenter(plan.Scale)
		return plan, nil
	}

	scale, offset, err := FocusRect(plan.Rect, v.bounds, v.content, v.scales)
	if err != nil {
		return DoubleTapPlan{}, err
	}
	v.scale = scale
	v.offset = offset
	return plan, nil
}

// ZoomTo sets the zoom scale, clamped to the scale range.  The content point
// under the viewport centre stays in place, as far as the scrollable range
// permits.
func (v *Viewport) ZoomTo(scale float64) error {
	if !v.hasContent {
		return ErrNoContent
	}
	if !isFinite(scale) {
		return ErrNonFinite
	}
	v.snap = nil
	v.zoomAroundCenter(v.scales.Clamp(scale))
	return nil
}

// ScrollTo sets the content offset, clamped to the scrollable range.
func (v *Viewport) ScrollTo(offset vec.Vec2) {
	v.snap = nil
	v.offset = ClampOffset(offset, v.bounds, v.content.Scale(v.scale))
}

func (v *Viewport) zoomAroundCenter(scale float64) {
	center := v.visibleCenter()
	v.scale = scale
	v.offset = centerOn(center, scale, v.bounds, v.content)
}

// visibleCenter returns the content space point under the viewport centre.
func (v *Viewport) visibleCenter() vec.Vec2 {
	return v.toContent(v.offset.Add(v.bounds.Scale(0.5).Vec()))
}

// toContent maps a point in scroll coordinates to content space.
func (v *Viewport) toContent(p vec.Vec2) vec.Vec2 {
	inset := CenteringInset(v.bounds, v.content.Scale(v.scale))
	x, y := ScrollToContent(v.scale, inset).Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}
