// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// A Normalization selects how Normalize rescales a FreqTable.
type Normalization int

const (
	// Conditional scales each x bucket's row to sum to 1, giving
	// p(y | x).
	Conditional Normalization = iota

	// Joint scales the whole table to sum to 1, giving p(x, y).
	Joint
)

func (n Normalization) String() string {
	switch n {
	case Conditional:
		return "conditional"
	case Joint:
		return "joint"
	}
	return "Normalization(?)"
}

// Normalize returns a rescaled copy of ft. ft itself is not modified.
//
// A row (or, for Joint, a table) that sums to zero becomes NaN. If
// logScale is set, the natural log is then taken of every cell, so
// zero cells become -Inf.
func Normalize(ft *FreqTable, norm Normalization, logScale bool) *FreqTable {
	cells := mat.DenseCopyOf(ft.Cells)
	switch norm {
	case Joint:
		total := mat.Sum(cells)
		cells.Apply(func(_, _ int, v float64) float64 {
			return v / total
		}, cells)
	default:
		nr, _ := cells.Dims()
		sums := make([]float64, nr)
		for i := range sums {
			sums[i] = floats.Sum(cells.RawRowView(i))
		}
		cells.Apply(func(i, _ int, v float64) float64 {
			return v / sums[i]
		}, cells)
	}
	if logScale {
		cells.Apply(func(_, _ int, v float64) float64 {
			return math.Log(v)
		}, cells)
	}
	return &FreqTable{
		Rows:    append([]string(nil), ft.Rows...),
		Cols:    append([]string(nil), ft.Cols...),
		Cells:   cells,
		Dropped: ft.Dropped,
	}
}
