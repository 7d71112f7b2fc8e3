// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/mat"
)

// Plot draws a bubble plot of column y against column x of t.
func Plot(t *table.Table, x, y string, opts Options) (*Figure, error) {
	s, err := Compute(t, x, y, opts)
	if err != nil {
		return nil, err
	}
	return Render(NewFigure(opts), s), nil
}

// Compute runs every stage of Plot except rendering and returns the
// resulting Scene.
func Compute(t *table.Table, x, y string, opts Options) (*Scene, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	xb, err := bucketColumn(t, x, opts.XBins, opts.XOrder)
	if err != nil {
		return nil, err
	}
	yb, err := bucketColumn(t, y, opts.YBins, opts.YOrder)
	if err != nil {
		return nil, err
	}

	s := &Scene{XLabel: x, YLabel: y, MaxBubbleSize: opts.MaxBubbleSize}
	var (
		rows, cols   []string
		size, colors *mat.Dense
	)
	if opts.Color == "" {
		ft, err := CrossTab(xb, yb)
		if err != nil {
			return nil, err
		}
		if ft.Dropped > 0 {
			logger.Info().Int("dropped", ft.Dropped).Msg("rows with missing values not plotted")
		}
		nt := Normalize(ft, opts.normalization(), opts.Log)
		if opts.Log {
			s.MaxBubbleSize /= 2
		}
		rows, cols, size, colors = nt.Rows, nt.Cols, nt.Cells, nt.Cells
		s.Title = fmt.Sprintf("%s vs %s", y, x)
	} else {
		z, err := column(t, opts.Color)
		if err != nil {
			return nil, err
		}
		if opts.Log || opts.Joint {
			logger.Warn().Bool("log", opts.Log).Bool("joint", opts.Joint).Msg("normalization options ignored when coloring by ratio")
		}
		rt, err := RatioColor(xb, yb, z)
		if err != nil {
			return nil, err
		}
		rows, cols, size, colors = rt.Rows, rt.Cols, rt.Total, rt.Ratio
		s.Title = fmt.Sprintf("%s vs %s and %s (in colors)", y, x, opts.Color)
		s.Ratio = true
	}

	if s.X, err = MapAxis(xb, rows, opts.Digits); err != nil {
		return nil, err
	}
	if s.Y, err = MapAxis(yb, cols, opts.Digits); err != nil {
		return nil, err
	}
	for i, row := range rows {
		xc, _ := s.X.Coord(row)
		for j, col := range cols {
			yc, _ := s.Y.Coord(col)
			s.Markers = append(s.Markers, Marker{
				X: row, Y: col,
				XCoord: xc, YCoord: yc,
				Size:  size.At(i, j),
				Color: colors.At(i, j),
			})
		}
	}
	return s, nil
}

// bucketColumn resolves the axis of column name and buckets it.
func bucketColumn(t *table.Table, name string, bins int, order []string) (*Buckets, error) {
	col, err := column(t, name)
	if err != nil {
		return nil, err
	}
	axis := ResolveAxis(col, bins, order)
	b, err := Bucketize(col, axis)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	return b, nil
}
