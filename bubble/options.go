// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Options configures Plot. Start from DefaultOptions; the zero
// Options is not valid.
type Options struct {
	// XBins and YBins are the number of equal-width bins used for
	// a numeric x or y column.
	XBins int `yaml:"x_bins" validate:"gte=1"`
	YBins int `yaml:"y_bins" validate:"gte=1"`

	// XOrder and YOrder, if non-nil, list the values of the x or y
	// column in display order. Setting one forces categorical
	// treatment of that column, even if it is numeric, and every
	// value of the column must appear in it.
	XOrder []string `yaml:"x_order" validate:"omitempty,unique"`
	YOrder []string `yaml:"y_order" validate:"omitempty,unique"`

	// FontSize is the text size in points.
	FontSize float64 `yaml:"font_size" validate:"gt=0"`

	// Width and Height are the figure size in inches.
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`

	// MaxBubbleSize is the area, in square points, of the largest
	// bubble.
	MaxBubbleSize float64 `yaml:"max_bubble_size" validate:"gt=0"`

	// Joint selects the joint distribution p(x, y) instead of the
	// conditional distribution p(y | x).
	Joint bool `yaml:"joint"`

	// Log takes the natural log of the normalized frequencies
	// before sizing bubbles, and halves MaxBubbleSize to match.
	Log bool `yaml:"log"`

	// Color, if set, names a column with exactly two values.
	// Bubbles are then sized by raw count and colored by the
	// fraction of rows holding the column's second value.
	Color string `yaml:"color"`

	// Digits is the number of decimal places numeric bucket
	// midpoints are rounded to.
	Digits int `yaml:"digits" validate:"gte=0,lte=15"`
}

// DefaultOptions returns the default plot options: 10 bins per
// numeric axis, 16pt text on a 10x5 inch figure, and a conditional
// distribution.
func DefaultOptions() Options {
	return Options{
		XBins:         10,
		YBins:         10,
		FontSize:      16,
		Width:         10,
		Height:        5,
		MaxBubbleSize: 3500,
		Digits:        2,
	}
}

var validate = validator.New()

// Validate checks that o is usable. Its errors match ErrConfig.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return nil
}

// ParseOptions reads YAML options from r. Fields not present in the
// input keep their DefaultOptions values.
func ParseOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) normalization() Normalization {
	if o.Joint {
		return Joint
	}
	return Conditional
}
