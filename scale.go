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
)

// DefaultMaxScaleFromMinScale is the ratio between maximum and minimum
// zoom scale, when no maximum scale is configured.
const DefaultMaxScaleFromMinScale = 3.0

// scrollMinFactor is applied to the minimum scale before it is reported to
// the host.  Content resting at exactly the minimum scale makes some
// toolkits swallow horizontal swipes meant for an enclosing pager.
const scrollMinFactor = 0.999

// Options configures the zoom behaviour of a [Viewport].
// The zero value gives the default behaviour.
type Options struct {
	FitMode      FitMode
	OffsetPolicy OffsetPolicy

	// MaxScaleFromMinScale is the ratio between maximum and minimum scale.
	// Zero means [DefaultMaxScaleFromMinScale].
	MaxScaleFromMinScale float64

	// MinScale and MaxScale, if set, replace the computed minimum and
	// maximum scales.
	MinScale *float64
	MaxScale *float64
}

func (opt *Options) maxFactor() float64 {
	if opt == nil || opt.MaxScaleFromMinScale == 0 {
		return DefaultMaxScaleFromMinScale
	}
	return opt.MaxScaleFromMinScale
}

func (opt *Options) check() error {
	if opt == nil {
		return nil
	}
	if !opt.FitMode.IsValid() {
		return fmt.Errorf("invalid fit mode %d", int(opt.FitMode))
	}
	if !opt.OffsetPolicy.IsValid() {
		return fmt.Errorf("invalid offset policy %d", int(opt.OffsetPolicy))
	}
	if f := opt.MaxScaleFromMinScale; f != 0 && !(isFinite(f) && f > 0) {
		return fmt.Errorf("max scale factor %g: %w", f, ErrInvalidScale)
	}
	if p := opt.MinScale; p != nil && !(isFinite(*p) && *p > 0) {
		return fmt.Errorf("min scale %g: %w", *p, ErrInvalidScale)
	}
	if p := opt.MaxScale; p != nil && !(isFinite(*p) && *p > 0) {
		return fmt.Errorf("max scale %g: %w", *p, ErrInvalidScale)
	}
	return nil
}

// ScaleRange is the range of permitted zoom scales.
type ScaleRange struct {
	Min, Max float64
}

// Effective returns the minimum scale as reported to the host, slightly
// below Min.
func (r ScaleRange) Effective() float64 {
	return r.Min * scrollMinFactor
}

// Clamp restricts scale to the interval [r.Effective(), r.Max].
func (r ScaleRange) Clamp(scale float64) float64 {
	return min(r.Max, max(r.Effective(), scale))
}

// ComputeScaleBounds computes the zoom scale range for content of natural
// size content shown in a viewport of size bounds.
//
// Both sizes must have positive, finite extents.  Otherwise an
// [*InvalidSizeError] is returned.  If a configured minimum scale exceeds
// the maximum scale, the minimum is lowered to the maximum.
func ComputeScaleBounds(bounds, content Size, opt *Options) (ScaleRange, error) {
	if !content.Valid() {
		return ScaleRange{}, &InvalidSizeError{What: "content size", Size: content}
	}
	if !bounds.Valid() {
		return ScaleRange{}, &InvalidSizeError{What: "bounds size", Size: bounds}
	}
	if err := opt.check(); err != nil {
		return ScaleRange{}, err
	}
	var mode FitMode
	if opt != nil {
		mode = opt.FitMode
	}

	xScale := bounds.Width / content.Width
	yScale := bounds.Height / content.Height

	var minScale float64
	switch mode {
	case DefaultFit:
		minScale = min(xScale, yScale, 1)
	case AspectFit:
		minScale = min(xScale, yScale)
	case AspectFill:
		minScale = max(xScale, yScale)
	case WidthFill:
		minScale = xScale
	case HeightFill:
		minScale = yScale
	}

	maxScale := opt.maxFactor() * minScale
	if opt != nil && opt.MaxScale != nil {
		maxScale = *opt.MaxScale
	}
	if opt != nil && opt.MinScale != nil {
		minScale = *opt.MinScale
	}

	// Content smaller than the viewport is not forced to be zoomed.
	if minScale > maxScale {
		minScale = maxScale
	}

	if !isFinite(minScale) || !isFinite(maxScale) || minScale <= 0 {
		return ScaleRange{}, fmt.Errorf("scale range [%g, %g]: %w", minScale, maxScale, ErrNonFinite)
	}

	r := ScaleRange{Min: minScale, Max: maxScale}
	Logger().Debug("scale bounds",
		slog.String("mode", mode.String()),
		slog.String("bounds", bounds.String()),
		slog.String("content", content.String()),
		slog.Float64("min", r.Min),
		slog.Float64("max", r.Max))
	return r, nil
}
