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

import "seehuhn.de/go/geom/vec"

// PlanInitialOffset returns the content offset for newly displayed content.
// fitted is the content size at the initial zoom scale.
//
// With [OffsetCentered], content is centred along the axes on which the fit
// mode lets it overflow: both axes for [AspectFill], the vertical axis for
// [WidthFill] and the horizontal axis for [HeightFill].  [AspectFit] and
// [DefaultFit] content never overflows and starts at the origin.
func PlanInitialOffset(bounds, fitted Size, mode FitMode, policy OffsetPolicy) vec.Vec2 {
	if policy != OffsetCentered {
		return vec.Vec2{}
	}

	var excess vec.Vec2
	if fitted.Width >= bounds.Width {
		excess.X = (fitted.Width - bounds.Width) / 2
	}
	if fitted.Height >= bounds.Height {
		excess.Y = (fitted.Height - bounds.Height) / 2
	}

	switch mode {
	case AspectFill:
		return excess
	case WidthFill:
		return vec.Vec2{Y: excess.Y}
	case HeightFill:
		return vec.Vec2{X: excess.X}
	default:
		return vec.Vec2{}
	}
}
