// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/stat"
)

// DescribeCategorical summarizes the most frequent values of each
// column of t, skipping the columns named in exclude.
//
// The result has one row per described column. Its "column" column
// names the column and "top 1" through "top n" hold that column's n
// most frequent values as "value: pct%", most frequent first. Ties
// keep order of first appearance. Columns with fewer than n distinct
// values are padded with "". A negative n is treated as 0.
func DescribeCategorical(t *table.Table, exclude []string, n int) *table.Table {
	if n < 0 {
		n = 0
	}
	var names []string
	tops := make([][]string, n)
	for _, name := range t.Columns() {
		if indexOf(exclude, name) >= 0 {
			continue
		}
		names = append(names, name)
		top := topValues(t.MustColumn(name), n)
		for i := range tops {
			v := ""
			if i < len(top) {
				v = top[i]
			}
			tops[i] = append(tops[i], v)
		}
	}

	b := new(table.Builder).Add("column", append(make([]string, 0, len(names)), names...))
	for i, top := range tops {
		b.Add(fmt.Sprintf("top %d", i+1), append(make([]string, 0, len(names)), top...))
	}
	return b.Done()
}

// topValues returns the n most frequent values of col formatted as
// "value: pct%". NaNs are counted as a value of their own.
func topValues(col table.Slice, n int) []string {
	vals, missing := labels(col)
	var order []string
	counts := make(map[string]int)
	for i, v := range vals {
		if missing[i] {
			v = "NaN"
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	out := make([]string, len(order))
	for i, v := range order {
		pct := math.RoundToEven(100 * float64(counts[v]) / float64(len(vals)))
		out[i] = fmt.Sprintf("%s: %d%%", v, int(pct))
	}
	return out
}

// CorrelatedPairs returns the n most strongly correlated pairs of the
// numeric columns cols of t (or of all numeric columns if cols is
// nil).
//
// Correlation is Pearson's r over the rows where both columns are
// present. The result has columns "var 1", "var 2", and "value" (r),
// ordered by increasing |r| rounded to three places, so the strongest
// pair is last.
func CorrelatedPairs(t *table.Table, cols []string, n int) (*table.Table, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: pair count must not be negative, got %d", ErrConfig, n)
	}
	if cols == nil {
		for _, name := range t.Columns() {
			if isNumeric(t.MustColumn(name)) {
				cols = append(cols, name)
			}
		}
	}
	data := make([][]float64, len(cols))
	for i, name := range cols {
		col, err := column(t, name)
		if err != nil {
			return nil, err
		}
		if !isNumeric(col) {
			return nil, fmt.Errorf("%w: column %q is not numeric", ErrConfig, name)
		}
		slice.Convert(&data[i], col)
	}

	type pair struct {
		a, b   string
		r, abs float64
	}
	var pairs []pair
	for i := range cols {
		for j := i + 1; j < len(cols); j++ {
			r := correlation(data[i], data[j])
			pairs = append(pairs, pair{cols[i], cols[j], r, math.Round(math.Abs(r)*1000) / 1000})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		// NaN correlations sort first and so are the first cut.
		return pairs[i].abs < pairs[j].abs || (math.IsNaN(pairs[i].abs) && !math.IsNaN(pairs[j].abs))
	})
	if len(pairs) > n {
		pairs = pairs[len(pairs)-n:]
	}

	v1, v2, rs := make([]string, len(pairs)), make([]string, len(pairs)), make([]float64, len(pairs))
	for i, p := range pairs {
		v1[i], v2[i], rs[i] = p.a, p.b, p.r
	}
	return new(table.Builder).Add("var 1", v1).Add("var 2", v2).Add("value", rs).Done(), nil
}

// correlation returns Pearson's r of x and y over the indexes where
// neither is NaN.
func correlation(x, y []float64) float64 {
	var xs, ys []float64
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs, ys = append(xs, x[i]), append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
