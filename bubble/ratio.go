// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/mat"
)

// A RatioTable gives, for each (x bucket, y bucket), how many rows
// fall into it and what fraction of them have the coloring column's
// High value.
type RatioTable struct {
	Rows, Cols []string

	// Total holds the number of rows in each bucket. Ratio holds
	// the fraction of those rows equal to High, or NaN if Total is
	// zero.
	Total, Ratio *mat.Dense

	// Low and High are the two values of the coloring column, in
	// order of first appearance.
	Low, High string
}

// RatioColor computes the per-bucket ratio of the two-valued column z.
// z must have exactly two distinct non-missing values; whichever
// appears second in z is the one counted.
//
// Rows missing x, y, or z are ignored. Buckets are zero-filled on the
// same grid as CrossTab would produce for the remaining rows.
func RatioColor(x, y *Buckets, z table.Slice) (*RatioTable, error) {
	if x.Len() != y.Len() {
		return nil, fmt.Errorf("%w: x has %d rows, y has %d", ErrShape, x.Len(), y.Len())
	}
	zs, missing := labels(z)
	if len(zs) != x.Len() {
		return nil, fmt.Errorf("%w: coloring column has %d rows, want %d", ErrShape, len(zs), x.Len())
	}

	var cats []string
	for i, v := range zs {
		if missing[i] || indexOf(cats, v) >= 0 {
			continue
		}
		cats = append(cats, v)
	}
	if len(cats) != 2 {
		return nil, fmt.Errorf("%w: coloring column must have exactly 2 values, has %d", ErrConfig, len(cats))
	}
	high := cats[1]

	total, n := pairCounts(x, y, func(i int) bool { return !missing[i] })
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows with x, y, and color present", ErrShape)
	}
	hits, _ := pairCounts(x, y, func(i int) bool { return !missing[i] && zs[i] == high })

	rows, cols, grids := compact(x, y, total, total, hits)
	rt := &RatioTable{
		Rows:  rows,
		Cols:  cols,
		Total: grids[0],
		Ratio: grids[1],
		Low:   cats[0],
		High:  high,
	}
	rt.Ratio.Apply(func(i, j int, v float64) float64 {
		return v / rt.Total.At(i, j)
	}, rt.Ratio)
	logger.Debug().Str("low", rt.Low).Str("high", rt.High).Int("observations", n).Msg("ratio table")
	return rt, nil
}
