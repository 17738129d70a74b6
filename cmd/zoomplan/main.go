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

// Zoomplan shows how an image would be placed in a zoomable viewport.
//
// Usage:
//
//	zoomplan [-config file] [-bounds WxH] [-mode m] [-offset p] image
//
// Only the image header is read.  If no bounds are given, the terminal size
// in character cells is used when standard output is a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/zoomview"
	"seehuhn.de/go/zoomview/config"
	"seehuhn.de/go/zoomview/internal/float"
)

var defaultBounds = zoomview.Size{Width: 375, Height: 667}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "zoomplan:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("zoomplan", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "read viewport settings from this YAML `file`")
	boundsFlag := flags.String("bounds", "", "viewport size as `WxH`")
	modeFlag := flags.String("mode", "", "fit mode (aspectFit, defaultFit, aspectFill, widthFill, heightFill)")
	offsetFlag := flags.String("offset", "", "initial offset policy (origin, centered)")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: zoomplan [options] image")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return flag.ErrHelp
	}

	cfg := &config.Config{}
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			return err
		}
	}
	if l := cfg.Logger(stderr); l != nil {
		zoomview.SetLogger(l)
		defer zoomview.SetLogger(nil)
	}
	if *modeFlag != "" {
		cfg.FitMode = *modeFlag
	}
	if *offsetFlag != "" {
		cfg.OffsetPolicy = *offsetFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	opt, err := cfg.Options()
	if err != nil {
		return err
	}

	bounds, err := chooseBounds(*boundsFlag, cfg)
	if err != nil {
		return err
	}

	content, err := imageSize(flags.Arg(0))
	if err != nil {
		return err
	}

	return plan(stdout, bounds, content, opt)
}

// chooseBounds picks the viewport size: the command line takes precedence
// over the configuration file, which takes precedence over the terminal.
func chooseBounds(arg string, cfg *config.Config) (zoomview.Size, error) {
	if arg != "" {
		return parseSize(arg)
	}
	if size, ok := cfg.Size(); ok {
		return size, nil
	}
	if size, ok := terminalSize(); ok {
		return size, nil
	}
	return defaultBounds, nil
}

func parseSize(s string) (zoomview.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return zoomview.Size{}, fmt.Errorf("invalid size %q, expected WxH", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(ws), 64)
	if err != nil {
		return zoomview.Size{}, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(hs), 64)
	if err != nil {
		return zoomview.Size{}, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	size := zoomview.Size{Width: w, Height: h}
	if !size.Valid() {
		return zoomview.Size{}, &zoomview.InvalidSizeError{What: "bounds size", Size: size}
	}
	return size, nil
}

func terminalSize() (zoomview.Size, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return zoomview.Size{}, false
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return zoomview.Size{}, false
	}
	return zoomview.Size{Width: float64(w), Height: float64(h)}, true
}

func imageSize(name string) (zoomview.Size, error) {
	f, err := os.Open(name)
	if err != nil {
		return zoomview.Size{}, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return zoomview.Size{}, fmt.Errorf("%s: %w", name, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return zoomview.Size{}, fmt.Errorf("%s: empty %s image", name, format)
	}
	return zoomview.Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}, nil
}

// plan displays the content in a new viewport and reports the state after
// display, after rotating the viewport, and after a double tap at the
// viewport centre.
func plan(w io.Writer, bounds, content zoomview.Size, opt *zoomview.Options) error {
	v := zoomview.NewViewport(bounds, opt)
	if err := v.Display(content); err != nil {
		return err
	}

	fmt.Fprintf(w, "content   %s\n", content)
	fmt.Fprintf(w, "mode      %s, offset %s\n", opt.FitMode, opt.OffsetPolicy)
	lo, hi := v.ScaleBounds()
	fmt.Fprintf(w, "scales    %s .. %s\n", float.Format(lo, 4), float.Format(hi, 4))
	report(w, "display", v)

	rotated := zoomview.Size{Width: bounds.Height, Height: bounds.Width}
	if rotated != bounds {
		v.BoundsWillChange(rotated)
		if err := v.BoundsDidChange(rotated); err != nil {
			return err
		}
		report(w, "rotated", v)

		v.BoundsWillChange(bounds)
		if err := v.BoundsDidChange(bounds); err != nil {
			return err
		}
	}

	tap := bounds.Scale(0.5).Vec()
	p, err := v.DoubleTap(tap)
	if err != nil {
		return err
	}
	action := "zoom in"
	if p.ZoomOut {
		action = "zoom out"
	}
	fmt.Fprintf(w, "tap       %s at %s, rect %s\n",
		action, float.Vec(tap, 1), float.Rect(p.Rect, 2))
	report(w, "tapped", v)
	return nil
}

func report(w io.Writer, label string, v *zoomview.Viewport) {
	b := v.Bounds()
	fmt.Fprintf(w, "%-9s bounds %s, scale %s, offset %s, frame %s\n",
		label,
		float.Vec(vec.Vec2{X: b.Width, Y: b.Height}, 2),
		float.Format(v.Scale(), 4),
		float.Vec(v.Offset(), 2),
		float.Rect(v.ContentFrame(), 2))
}
