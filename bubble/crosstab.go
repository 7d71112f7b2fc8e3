// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/mat"
)

// A FreqTable is a two-way frequency table. Rows are x buckets and
// columns are y buckets, each listed in display order. Only buckets
// that occur in at least one complete (x, y) pair are present.
type FreqTable struct {
	Rows, Cols []string

	// Cells holds one value per (row, column). For a table built
	// by CrossTab these are counts; Normalize rescales them.
	Cells *mat.Dense

	// Dropped is the number of input rows that had a missing x or
	// y value and were not counted.
	Dropped int
}

// CrossTab counts the rows falling into each (x bucket, y bucket)
// pair. Combinations that never occur have a count of 0.
func CrossTab(x, y *Buckets) (*FreqTable, error) {
	if x.Len() != y.Len() {
		return nil, fmt.Errorf("%w: x has %d rows, y has %d", ErrShape, x.Len(), y.Len())
	}
	counts, n := pairCounts(x, y, nil)
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows with both x and y present", ErrShape)
	}
	rows, cols, cells := compact(x, y, counts, counts)
	ft := &FreqTable{Rows: rows, Cols: cols, Cells: cells[0], Dropped: x.Len() - n}
	logger.Debug().Int("rows", len(rows)).Int("cols", len(cols)).Int("observations", n).Int("dropped", ft.Dropped).Msg("cross-tabulated")
	return ft, nil
}

// pairCounts counts rows over the full grid of x and y levels. If
// include is non-nil, only rows for which it returns true are
// counted. It returns the grid and the number of rows counted.
func pairCounts(x, y *Buckets, include func(row int) bool) (*mat.Dense, int) {
	if len(x.Levels) == 0 || len(y.Levels) == 0 {
		return nil, 0
	}
	grid := mat.NewDense(len(x.Levels), len(y.Levels), nil)
	n := 0
	for i := range x.Index {
		xi, yi := x.Index[i], y.Index[i]
		if xi < 0 || yi < 0 || (include != nil && !include(i)) {
			continue
		}
		grid.Set(xi, yi, grid.At(xi, yi)+1)
		n++
	}
	return grid, n
}

// compact selects the rows and columns of each grid in grids for
// which ref has a non-zero row or column sum. It returns the labels
// of the kept levels and the compacted grids.
func compact(x, y *Buckets, ref *mat.Dense, grids ...*mat.Dense) (rows, cols []string, out []*mat.Dense) {
	nr, nc := ref.Dims()
	var ri, ci []int
	for i := 0; i < nr; i++ {
		if mat.Sum(ref.RowView(i)) != 0 {
			ri = append(ri, i)
			rows = append(rows, x.Levels[i])
		}
	}
	for j := 0; j < nc; j++ {
		if mat.Sum(ref.ColView(j)) != 0 {
			ci = append(ci, j)
			cols = append(cols, y.Levels[j])
		}
	}
	for _, g := range grids {
		c := mat.NewDense(len(ri), len(ci), nil)
		for i, r := range ri {
			for j, k := range ci {
				c.Set(i, j, g.At(r, k))
			}
		}
		out = append(out, c)
	}
	return rows, cols, out
}

// At returns the cell for x bucket row and y bucket col. ok is false
// if either bucket is not in the table.
func (ft *FreqTable) At(row, col string) (v float64, ok bool) {
	i, j := indexOf(ft.Rows, row), indexOf(ft.Cols, col)
	if i < 0 || j < 0 {
		return 0, false
	}
	return ft.Cells.At(i, j), true
}

// Total returns the sum of all cells.
func (ft *FreqTable) Total() float64 {
	return mat.Sum(ft.Cells)
}

// Table returns ft in wide form: a column named xName holding the row
// labels, followed by one float64 column per y bucket.
func (ft *FreqTable) Table(xName string) *table.Table {
	b := new(table.Builder).Add(xName, append([]string(nil), ft.Rows...))
	for j, col := range ft.Cols {
		b.Add(col, mat.Col(nil, j, ft.Cells))
	}
	return b.Done()
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}
