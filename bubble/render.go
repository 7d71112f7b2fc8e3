// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"errors"
	"image/color"
	"io"
	"math"
	"reflect"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/floats"
)

// ggFontPx is the pixel size gg renders all text at.
const ggFontPx = 14

// ratioOpacity is the marker opacity used when bubbles are colored by
// a ratio rather than by frequency.
const ratioOpacity = 0.5

// cool is a cyan to magenta gradient.
var cool = palette.RGBGradient{
	Colors: []color.RGBA{
		{0x00, 0xff, 0xff, 0xff},
		{0xff, 0x00, 0xff, 0xff},
	},
}

// A Figure is the drawing context of one bubble plot. Each call to
// Render draws onto the Figure it is given; no state is shared
// between Figures.
type Figure struct {
	// Width and Height are the figure dimensions in inches.
	Width, Height float64

	// FontSize is the text size in points.
	FontSize float64

	// Plot is the rendered plot, or nil before Render.
	Plot *gg.Plot

	// Markers is the table of drawn bubbles, or nil before Render.
	// It has columns "x", "y" (bucket labels), "x coord",
	// "y coord", "size", "color", "area", and "radius", plus
	// "opacity" for ratio-colored plots.
	Markers *table.Table
}

// NewFigure returns an empty Figure sized according to opts.
func NewFigure(opts Options) *Figure {
	return &Figure{Width: opts.Width, Height: opts.Height, FontSize: opts.FontSize}
}

// Pixels returns the pixel dimensions of f. gg draws text at a fixed
// pixel size, so the resolution is chosen to make that text FontSize
// points tall relative to the figure's size in inches.
func (f *Figure) Pixels() (w, h int) {
	dpi := 72 * ggFontPx / f.FontSize
	return int(math.Round(f.Width * dpi)), int(math.Round(f.Height * dpi))
}

// WriteSVG writes the rendered figure to w as SVG.
func (f *Figure) WriteSVG(w io.Writer) error {
	if f.Plot == nil {
		return errors.New("bubble: figure has not been rendered")
	}
	pw, ph := f.Pixels()
	return f.Plot.WriteSVG(w, pw, ph)
}

// A Marker is one bubble of a Scene.
type Marker struct {
	// X and Y are the bucket labels.
	X, Y string

	// XCoord and YCoord are the bubble's plot coordinates.
	XCoord, YCoord float64

	// Size is the bubble's frequency (or count); its area is
	// proportional to it. Color is the value the bubble is colored
	// by.
	Size, Color float64
}

// A Scene is everything Render needs to draw a bubble plot.
type Scene struct {
	Markers []Marker

	X, Y *AxisMap

	XLabel, YLabel, Title string

	// MaxBubbleSize is the area, in square points, of the bubble
	// with the largest Size.
	MaxBubbleSize float64

	// Ratio indicates that Color is a derived ratio. Such bubbles
	// are drawn translucent.
	Ratio bool
}

// Render draws s onto fig and returns fig.
//
// Bubble areas are scaled so the largest Size has area
// s.MaxBubbleSize. Bubbles whose Size is not a positive finite number
// are not drawn.
func Render(fig *Figure, s *Scene) *Figure {
	sizes := make([]float64, 0, len(s.Markers))
	for _, m := range s.Markers {
		if drawable(m.Size) {
			sizes = append(sizes, m.Size)
		}
	}
	factor := math.NaN()
	if len(sizes) > 0 {
		factor = s.MaxBubbleSize / floats.Max(sizes)
	}

	// matplotlib-style areas are in square points. gg sizes are
	// radii relative to the smaller plot dimension.
	minDim := 72 * math.Min(fig.Width, fig.Height)
	n := len(s.Markers)
	xl, yl := make([]string, 0, n), make([]string, 0, n)
	xc, yc := make([]float64, 0, n), make([]float64, 0, n)
	sz, col := make([]float64, 0, n), make([]float64, 0, n)
	ar, rad := make([]float64, 0, n), make([]float64, 0, n)
	for _, m := range s.Markers {
		if !drawable(m.Size) {
			continue
		}
		area := factor * m.Size
		xl, yl = append(xl, m.X), append(yl, m.Y)
		xc, yc = append(xc, m.XCoord), append(yc, m.YCoord)
		sz, col = append(sz, m.Size), append(col, m.Color)
		ar = append(ar, area)
		rad = append(rad, math.Sqrt(area)/2/minDim)
	}
	if len(s.Markers) != len(xl) {
		logger.Debug().Int("omitted", len(s.Markers)-len(xl)).Msg("bubbles with no area")
	}

	b := new(table.Builder).
		Add("x", xl).Add("y", yl).
		Add("x coord", xc).Add("y coord", yc).
		Add("size", sz).Add("color", col).
		Add("area", ar).Add("radius", rad)
	layer := gg.LayerPoints{X: "x coord", Y: "y coord", Color: "color", Size: "radius"}
	if s.Ratio {
		op := make([]float64, len(xl))
		for i := range op {
			op[i] = ratioOpacity
		}
		b.Add("opacity", op)
		layer.Opacity = "opacity"
	}
	fig.Markers = b.Done()

	p := gg.NewPlot(fig.Markers)
	p.SetScale("x", axisScale(s.X))
	p.SetScale("y", axisScale(s.Y))
	colors := gg.NewLinearScaler()
	colors.Ranger(coolRanger{})
	p.SetScale("stroke", colors)
	p.SetScale("size", gg.NewIdentityScale())
	if s.Ratio {
		p.SetScale("opacity", gg.NewIdentityScale())
	}
	p.Add(
		layer,
		gg.AxisLabel("x", s.XLabel),
		gg.AxisLabel("y", s.YLabel),
		gg.Title(s.Title),
	)
	fig.Plot = p
	return fig
}

// drawable reports whether a marker of the given size gets a bubble.
func drawable(size float64) bool {
	return size > 0 && !math.IsInf(size, 0)
}

// axisScale returns an ordinal scale over m's whole domain, labeled
// with m's labels, even where no bubble is drawn. Numeric domains are
// equally spaced midpoints, so ordinal positions stay proportional.
func axisScale(m *AxisMap) gg.Scaler {
	s := gg.NewOrdinalScale()
	s.ExpandDomain(append([]float64(nil), m.Domain...))
	s.SetFormatter(m.tickLabel)
	return s
}

// coolRanger maps [0, 1] onto the cool gradient.
type coolRanger struct{}

var colorType = reflect.TypeOf((*color.Color)(nil)).Elem()

func (coolRanger) RangeType() reflect.Type {
	return colorType
}

func (coolRanger) Map(x float64) interface{} {
	if math.IsNaN(x) {
		x = 0
	}
	return cool.Map(x)
}

func (coolRanger) Unmap(y interface{}) (float64, bool) {
	c, ok := y.(color.RGBA)
	if !ok {
		return 0, false
	}
	return float64(c.R) / 0xff, true
}
