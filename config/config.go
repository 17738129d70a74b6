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

// Package config reads viewport settings from YAML files.
//
// A configuration file looks like this, all keys being optional:
//
//	fit-mode: aspect-fill
//	offset-policy: centered
//	max-scale-from-min-scale: 4
//	min-scale: 0.1
//	max-scale: 8
//	bounds:
//	  width: 375
//	  height: 667
//	logging:
//	  level: debug
//	  format: text
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/zoomview"
)

// Error describes an invalid configuration value.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return "config error: " + e.Message
}

// Bounds is a viewport size.
type Bounds struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Logging selects the log output of the zoomview package.
type Logging struct {
	// Level is one of debug, info, warn or error.  The default is warn.
	Level string `yaml:"level"`

	// Format is text or json.  The default is text.
	Format string `yaml:"format"`
}

// Config holds the settings of a viewport.
type Config struct {
	FitMode              string   `yaml:"fit-mode"`
	OffsetPolicy         string   `yaml:"offset-policy"`
	MaxScaleFromMinScale float64  `yaml:"max-scale-from-min-scale"`
	MinScale             *float64 `yaml:"min-scale"`
	MaxScale             *float64 `yaml:"max-scale"`
	Bounds               *Bounds  `yaml:"bounds"`
	Logging              *Logging `yaml:"logging"`
}

// Load reads a configuration from a YAML file.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a configuration from YAML data.
// Unknown keys are an error.  Empty data gives the default configuration.
func Parse(data []byte) (*Config, error) {
	config := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(config)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that all values are in range.
func (c *Config) Validate() error {
	if c.FitMode != "" {
		if _, err := zoomview.ParseFitMode(c.FitMode); err != nil {
			return &Error{Field: "fit-mode", Message: err.Error()}
		}
	}
	if c.OffsetPolicy != "" {
		if _, err := zoomview.ParseOffsetPolicy(c.OffsetPolicy); err != nil {
			return &Error{Field: "offset-policy", Message: err.Error()}
		}
	}
	if !positiveOrZero(c.MaxScaleFromMinScale) {
		return &Error{Field: "max-scale-from-min-scale", Message: "must be a positive number"}
	}
	if c.MinScale != nil && !positive(*c.MinScale) {
		return &Error{Field: "min-scale", Message: "must be a positive number"}
	}
	if c.MaxScale != nil && !positive(*c.MaxScale) {
		return &Error{Field: "max-scale", Message: "must be a positive number"}
	}
	if b := c.Bounds; b != nil && !(positive(b.Width) && positive(b.Height)) {
		return &Error{Field: "bounds", Message: "width and height must be positive"}
	}
	if l := c.Logging; l != nil {
		if _, err := parseLevel(l.Level); err != nil {
			return &Error{Field: "logging.level", Message: err.Error()}
		}
		switch strings.ToLower(l.Format) {
		case "", "text", "json":
		default:
			return &Error{Field: "logging.format", Message: fmt.Sprintf("unknown format %q", l.Format)}
		}
	}
	return nil
}

// Options converts the configuration into viewport options.
func (c *Config) Options() (*zoomview.Options, error) {
	opt := &zoomview.Options{
		MaxScaleFromMinScale: c.MaxScaleFromMinScale,
		MinScale:             c.MinScale,
		MaxScale:             c.MaxScale,
	}
	if c.FitMode != "" {
		mode, err := zoomview.ParseFitMode(c.FitMode)
		if err != nil {
			return nil, &Error{Field: "fit-mode", Message: err.Error()}
		}
		opt.FitMode = mode
	}
	if c.OffsetPolicy != "" {
		policy, err := zoomview.ParseOffsetPolicy(c.OffsetPolicy)
		if err != nil {
			return nil, &Error{Field: "offset-policy", Message: err.Error()}
		}
		opt.OffsetPolicy = policy
	}
	return opt, nil
}

// Size returns the configured viewport size, and whether one was set.
func (c *Config) Size() (zoomview.Size, bool) {
	if c.Bounds == nil {
		return zoomview.Size{}, false
	}
	return zoomview.Size{Width: c.Bounds.Width, Height: c.Bounds.Height}, true
}

// Logger returns a logger writing to w as configured, or nil if the
// configuration has no logging section.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	if c.Logging == nil {
		return nil
	}
	level, _ := parseLevel(c.Logging.Level)
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Logging.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func positiveOrZero(x float64) bool {
	return x == 0 || positive(x)
}
