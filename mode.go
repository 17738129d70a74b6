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
	"strings"
)

// FitMode determines how the minimum zoom scale is derived from the ratio
// of viewport size to content size.
type FitMode int

// These are the supported fit modes.
const (
	// AspectFit shows the whole content.  Content smaller than the
	// viewport is magnified.
	AspectFit FitMode = iota

	// DefaultFit is like AspectFit, but never magnifies content beyond
	// its natural size.
	DefaultFit

	// AspectFill covers the whole viewport.  The content may overflow
	// along one axis.
	AspectFill

	// WidthFill matches the content width to the viewport width.
	WidthFill

	// HeightFill matches the content height to the viewport height.
	HeightFill
)

var fitModeNames = []string{
	AspectFit:  "aspectFit",
	DefaultFit: "defaultFit",
	AspectFill: "aspectFill",
	WidthFill:  "widthFill",
	HeightFill: "heightFill",
}

func (m FitMode) String() string {
	if m >= 0 && int(m) < len(fitModeNames) {
		return fitModeNames[m]
	}
	return fmt.Sprintf("FitMode(%d)", int(m))
}

// IsValid reports whether m is one of the defined fit modes.
func (m FitMode) IsValid() bool {
	return m >= 0 && int(m) < len(fitModeNames)
}

// ParseFitMode converts a fit mode name, as returned by [FitMode.String],
// back into a FitMode.  The comparison ignores case and the characters
// '-' and '_', so that "aspect-fill" is accepted as well.
func ParseFitMode(s string) (FitMode, error) {
	key := normalizeName(s)
	for i, name := range fitModeNames {
		if normalizeName(name) == key {
			return FitMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fit mode %q", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m FitMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid fit mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *FitMode) UnmarshalText(text []byte) error {
	mode, err := ParseFitMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// OffsetPolicy determines the content offset when new content is
// displayed.
type OffsetPolicy int

// These are the supported offset policies.
const (
	// OffsetOrigin starts with the top-left corner of the content in the
	// top-left corner of the viewport.
	OffsetOrigin OffsetPolicy = iota

	// OffsetCentered centres overflowing content along the axes which the
	// fit mode allows to overflow.
	OffsetCentered
)

var offsetPolicyNames = []string{
	OffsetOrigin:   "origin",
	OffsetCentered: "centered",
}

func (p OffsetPolicy) String() string {
	if p.IsValid() {
		return offsetPolicyNames[p]
	}
	return fmt.Sprintf("OffsetPolicy(%d)", int(p))
}

// IsValid reports whether p is one of the defined offset policies.
func (p OffsetPolicy) IsValid() bool {
	return p >= 0 && int(p) < len(offsetPolicyNames)
}

// ParseOffsetPolicy converts an offset policy name into an OffsetPolicy.
// Both "centered" and "center" are accepted for [OffsetCentered].
func ParseOffsetPolicy(s string) (OffsetPolicy, error) {
	switch normalizeName(s) {
	case "origin", "beginning":
		return OffsetOrigin, nil
	case "centered", "center":
		return OffsetCentered, nil
	}
	return 0, fmt.Errorf("unknown offset policy %q", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (p OffsetPolicy) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("invalid offset policy %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (p *OffsetPolicy) UnmarshalText(text []byte) error {
	policy, err := ParseOffsetPolicy(string(text))
	if err != nil {
		return err
	}
	*p = policy
	return nil
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}
