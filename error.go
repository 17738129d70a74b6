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
	"strconv"
)

var (
	// ErrNoContent is returned by [Viewport] methods which need displayed
	// content, when no content has been displayed yet.
	ErrNoContent = errors.New("no content displayed")

	// ErrNoSnapshot is returned when a bounds change is completed without
	// a matching call to [Viewport.BoundsWillChange].
	ErrNoSnapshot = errors.New("bounds change without resize snapshot")

	// ErrNonFinite indicates that a computation produced an infinite or
	// NaN value.
	ErrNonFinite = errors.New("non-finite result")

	// ErrInvalidScale indicates a scale override or multiplier which is
	// not a positive, finite number.
	ErrInvalidScale = errors.New("invalid scale")
)

// InvalidSizeError is returned when a size argument has a zero, negative or
// non-finite extent.
type InvalidSizeError struct {
	// What describes the offending argument, e.g. "content size".
	What string
	Size Size
}

func (err *InvalidSizeError) Error() string {
	return "invalid " + err.What + " " +
		strconv.FormatFloat(err.Size.Width, 'g', -1, 64) + "x" +
		strconv.FormatFloat(err.Size.Height, 'g', -1, 64)
}
