/*
Package config holds the options for capturing and exporting signatures.

Options are usually loaded from a YAML document. As JSON is a subset of
YAML, option blocks in JSON notation work as well:

   smoothingWindow: 6
   simplifyTolerance: 0.3
   tension: 0.15
   decimals: 1
   leaveDelay: 100ms

Every option not mentioned in a document keeps its default value.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'sigpath'
func tracer() tracing.Trace {
	return tracing.Select("sigpath")
}

// ErrInvalidOption is returned for option values out of range and for
// unparsable option documents.
var ErrInvalidOption = errors.New("invalid option")

// Options control every stage from sampling input points to exporting SVG.
type Options struct {
	SmoothingWindow   int           `yaml:"smoothingWindow"`   // samples averaged per output point
	SimplifyTolerance float64       `yaml:"simplifyTolerance"` // distance tolerance for simplification
	HighestQuality    bool          `yaml:"highestQuality"`    // skip the radial-distance pre-pass
	Tension           float64       `yaml:"tension"`           // control point offset, fraction of chord length
	Decimals          int           `yaml:"decimals"`          // rounding of output values, -1 = no rounding
	Closed            bool          `yaml:"closed"`            // close every stroke
	Minify            bool          `yaml:"minify"`            // minified path data output
	LeaveDelay        time.Duration `yaml:"leaveDelay"`        // delay before finishing a gesture on leave
	Width             float64       `yaml:"width"`             // drawing surface width
	Height            float64       `yaml:"height"`            // drawing surface height
	StrokeWidth       float64       `yaml:"strokeWidth"`
	Stroke            string        `yaml:"stroke"`
	ClassName         string        `yaml:"className"`
	ClassPath         string        `yaml:"classPath"`
	Scale             float64       `yaml:"scale"` // export scale factor
	Crop              bool          `yaml:"crop"`  // crop exported documents to the strokes
}

// Default returns the default options.
func Default() Options {
	return Options{
		SmoothingWindow:   6,
		SimplifyTolerance: 0.3,
		HighestQuality:    true,
		Tension:           0.15,
		Decimals:          1,
		Minify:            true,
		LeaveDelay:        100 * time.Millisecond,
		Width:             640,
		Height:            360,
		StrokeWidth:       2,
		Stroke:            "currentColor",
		ClassName:         "sigvg",
		ClassPath:         "sigvg-path",
		Scale:             1,
	}
}

// Load reads options from a YAML (or JSON) document, merged over the
// defaults. The result is validated. An empty document yields the
// defaults.
func Load(r io.Reader) (Options, error) {
	opts := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		tracer().Errorf("cannot decode options: %v", err)
		return Default(), fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	if err := opts.Validate(); err != nil {
		return Default(), err
	}
	return opts, nil
}

// Parse is like Load, but reads options from a byte slice.
func Parse(doc []byte) (Options, error) {
	return Load(bytes.NewReader(doc))
}

// LoadFile reads options from a file.
func LoadFile(name string) (Options, error) {
	f, err := os.Open(name)
	if err != nil {
		return Default(), err
	}
	defer f.Close()
	opts, err := Load(f)
	if err != nil {
		return opts, fmt.Errorf("%s: %w", name, err)
	}
	tracer().Infof("options loaded from %s", name)
	return opts, nil
}

// Validate checks the options for values out of range.
func (opts Options) Validate() error {
	switch {
	case opts.SmoothingWindow < 1:
		return invalid("smoothingWindow", opts.SmoothingWindow, "must be at least 1")
	case opts.SimplifyTolerance < 0 || math.IsNaN(opts.SimplifyTolerance):
		return invalid("simplifyTolerance", opts.SimplifyTolerance, "must not be negative")
	case math.IsNaN(opts.Tension) || math.IsInf(opts.Tension, 0):
		return invalid("tension", opts.Tension, "must be finite")
	case opts.Decimals < -1:
		return invalid("decimals", opts.Decimals, "must be -1 or more")
	case opts.LeaveDelay < 0:
		return invalid("leaveDelay", opts.LeaveDelay, "must not be negative")
	case !(opts.Width > 0) || !(opts.Height > 0):
		return invalid("width/height", fmt.Sprintf("%gx%g", opts.Width, opts.Height), "must be positive")
	case opts.StrokeWidth < 0:
		return invalid("strokeWidth", opts.StrokeWidth, "must not be negative")
	case !(opts.Scale > 0):
		return invalid("scale", opts.Scale, "must be positive")
	}
	return nil
}

func invalid(name string, value interface{}, reason string) error {
	return fmt.Errorf("%w: %s = %v %s", ErrInvalidOption, name, value, reason)
}
