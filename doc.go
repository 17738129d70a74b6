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

// Package zoomview computes zoom scales and scroll offsets for a single
// content view, typically an image, inside a scrollable and zoomable
// container.
//
// The package does not draw anything and does not recognise gestures.  A
// host toolkit forwards bounds changes, taps and pinch results to a
// [Viewport], and applies the resulting scale and offset to its own
// scrollable surface:
//
//	v := zoomview.NewViewport(zoomview.Size{Width: 375, Height: 667}, &zoomview.Options{
//		FitMode:      zoomview.AspectFill,
//		OffsetPolicy: zoomview.OffsetCentered,
//	})
//	err := v.Display(zoomview.Size{Width: 4032, Height: 3024})
//	if err != nil {
//		log.Fatal(err)
//	}
//	... apply v.Scale() and v.Offset() ...
//
//	// on rotation
//	newSize := zoomview.Size{Width: 667, Height: 375}
//	v.BoundsWillChange(newSize)
//	err = v.BoundsDidChange(newSize)
//
// # Coordinates
//
// Content space is attached to the content at its natural size.  Scroll
// coordinates are those of the content frame inside the scroll container:
// a content point p is shown at p*scale+inset, where the inset centres
// content smaller than the viewport (see [CenteringInset]).  The offset is
// the scroll coordinate of the top-left corner of the viewport.  In all
// spaces the y axis points downward.
//
// # Scale range
//
// [ComputeScaleBounds] derives the minimum scale from the [FitMode] and the
// maximum scale from the minimum.  The minimum reported to the host,
// [ScaleRange.Effective], is 0.1% below the computed value.  This keeps
// resting content off the exact minimum, which on some toolkits stops an
// enclosing pager from receiving horizontal swipes.
//
// The standalone functions [PrepareResize], [RecoverResize],
// [PlanDoubleTap], [FocusRect] and [PlanInitialOffset] implement the
// individual steps, for hosts which keep their own state.
package zoomview
