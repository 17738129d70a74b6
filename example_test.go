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

package zoomview_test

import (
	"fmt"
	"log"

	"seehuhn.de/go/zoomview"
)

func ExampleComputeScaleBounds() {
	bounds := zoomview.Size{Width: 300, Height: 300}
	content := zoomview.Size{Width: 600, Height: 300}

	for _, mode := range []zoomview.FitMode{zoomview.AspectFit, zoomview.AspectFill} {
		r, err := zoomview.ComputeScaleBounds(bounds, content, &zoomview.Options{FitMode: mode})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: min %.4f (reported %.4f), max %.4f\n", mode, r.Min, r.Effective(), r.Max)
	}

	// Output:
	// aspectFit: min 0.5000 (reported 0.4995), max 1.5000
	// aspectFill: min 1.0000 (reported 0.9990), max 3.0000
}

func ExampleViewport_BoundsDidChange() {
	v := zoomview.NewViewport(zoomview.Size{Width: 375, Height: 667}, nil)
	err := v.Display(zoomview.Size{Width: 2000, Height: 1500})
	if err != nil {
		log.Fatal(err)
	}
	err = v.ZoomTo(0.5)
	if err != nil {
		log.Fatal(err)
	}

	rotated := zoomview.Size{Width: 667, Height: 375}
	v.BoundsWillChange(rotated)
	err = v.BoundsDidChange(rotated)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("scale %.2f, offset (%.2f, %.2f)\n", v.Scale(), v.Offset().X, v.Offset().Y)

	// Output:
	// scale 0.50, offset (166.50, 187.50)
}
