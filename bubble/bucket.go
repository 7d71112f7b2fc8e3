// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/shopspring/decimal"
)

// labelPrecision is the minimum number of significant fractional
// digits used to label interval bounds.
const labelPrecision = 3

// An Interval is a half-open numeric bucket (Lo, Hi].
type Interval struct {
	Lo, Hi float64

	// Left and Right are Lo and Hi rounded for display. They are
	// what String prints and what Mid averages.
	Left, Right float64
}

// Contains reports whether x falls in (iv.Lo, iv.Hi].
func (iv Interval) Contains(x float64) bool {
	return iv.Lo < x && x <= iv.Hi
}

// Mid returns the midpoint of the displayed bounds.
func (iv Interval) Mid() float64 {
	return (iv.Left + iv.Right) / 2
}

func (iv Interval) String() string {
	return "(" + formatFloat(iv.Left) + ", " + formatFloat(iv.Right) + "]"
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Buckets is the bucket assignment of one column.
type Buckets struct {
	// Axis is the variant the buckets were built for.
	Axis Axis

	// Levels are the bucket labels in display order.
	Levels []string

	// Intervals are the numeric intervals behind Levels. It is
	// nil for a CategoricalAxis.
	Intervals []Interval

	// Index gives the position in Levels of each row's bucket,
	// or -1 if the row's value is missing.
	Index []int
}

// Len returns the number of rows that were bucketed.
func (b *Buckets) Len() int {
	return len(b.Index)
}

// Label returns the bucket label of row i. ok is false if the row's
// value is missing.
func (b *Buckets) Label(i int) (label string, ok bool) {
	if b.Index[i] < 0 {
		return "", false
	}
	return b.Levels[b.Index[i]], true
}

// level returns the position of label in b.Levels, or -1.
func (b *Buckets) level(label string) int {
	for i, l := range b.Levels {
		if l == label {
			return i
		}
	}
	return -1
}

// Table returns the row-by-row assignment as a table with a "bucket"
// column. Missing rows have an empty bucket.
func (b *Buckets) Table() *table.Table {
	out := make([]string, b.Len())
	for i := range out {
		out[i], _ = b.Label(i)
	}
	return new(table.Builder).Add("bucket", out).Done()
}

// Bucketize assigns each value of col to a bucket according to axis.
//
// For a NumericAxis, the range of the non-missing values is cut into
// axis.Bins equal-width intervals, each open on the left and closed
// on the right. The lowest edge is lowered by 0.1% of the range so
// the minimum falls into the first interval. A column whose values
// are all equal cannot be cut into more than one bin.
//
// For a CategoricalAxis, each value's fmt.Sprint form is its bucket.
// Floating-point NaNs are missing values in either case.
func Bucketize(col table.Slice, axis Axis) (*Buckets, error) {
	switch axis := axis.(type) {
	case NumericAxis:
		return bucketizeNumeric(col, axis)
	case CategoricalAxis:
		return bucketizeCategorical(col, axis)
	}
	return nil, fmt.Errorf("%w: unknown axis %v", ErrConfig, axis)
}

func bucketizeNumeric(col table.Slice, axis NumericAxis) (*Buckets, error) {
	if axis.Bins < 1 {
		return nil, fmt.Errorf("%w: bin count must be positive, got %d", ErrConfig, axis.Bins)
	}
	if !isNumeric(col) {
		return nil, fmt.Errorf("%w: cannot bin non-numeric %T", ErrConfig, col)
	}

	var xs []float64
	slice.Convert(&xs, col)
	present := make([]float64, 0, len(xs))
	for _, x := range xs {
		if math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: cannot bin infinite values", ErrConfig)
		}
		if !math.IsNaN(x) {
			present = append(present, x)
		}
	}
	if len(present) == 0 {
		return nil, fmt.Errorf("%w: no values to bin", ErrConfig)
	}

	edges, err := binEdges(present, axis.Bins)
	if err != nil {
		return nil, err
	}
	shown := roundEdges(edges)

	b := &Buckets{
		Axis:      axis,
		Levels:    make([]string, axis.Bins),
		Intervals: make([]Interval, axis.Bins),
		Index:     make([]int, len(xs)),
	}
	for i := range b.Intervals {
		b.Intervals[i] = Interval{edges[i], edges[i+1], shown[i], shown[i+1]}
		b.Levels[i] = b.Intervals[i].String()
	}
	for i, x := range xs {
		if math.IsNaN(x) {
			b.Index[i] = -1
			continue
		}
		// The first edge >= x closes x's interval.
		j := sort.SearchFloat64s(edges, x) - 1
		if j < 0 {
			j = 0
		} else if j >= axis.Bins {
			j = axis.Bins - 1
		}
		b.Index[i] = j
	}
	logger.Debug().Int("bins", axis.Bins).Float64("lo", edges[0]).Float64("hi", edges[axis.Bins]).Msg("numeric buckets")
	return b, nil
}

// binEdges returns the bins+1 edges of equal-width bins over xs.
func binEdges(xs []float64, bins int) ([]float64, error) {
	lo, hi := stats.Bounds(xs)
	if lo == hi {
		if bins > 1 {
			return nil, fmt.Errorf("%w: all values equal %v; cannot cut into %d bins", ErrConfig, lo, bins)
		}
		// Widen a single-value range so the value sits inside
		// the lone bin.
		pad := 0.001 * math.Abs(lo)
		if lo == 0 {
			pad = 0.001
		}
		return []float64{lo - pad, hi + pad}, nil
	}
	edges := vec.Linspace(lo, hi, bins+1)
	edges[bins] = hi
	edges[0] -= (hi - lo) * 0.001
	return edges, nil
}

// roundEdges rounds edges for display. It starts at labelPrecision
// significant fractional digits and adds digits until all rounded
// edges are distinct.
func roundEdges(edges []float64) []float64 {
	out := make([]float64, len(edges))
	for prec := labelPrecision; prec < 20; prec++ {
		seen := make(map[float64]bool, len(edges))
		for i, e := range edges {
			out[i] = roundFrac(e, prec)
			seen[out[i]] = true
		}
		if len(seen) == len(edges) {
			return out
		}
	}
	for i, e := range edges {
		out[i] = roundFrac(e, labelPrecision)
	}
	return out
}

// roundFrac rounds x to prec digits after the decimal point, or, if
// |x| < 1, to prec digits after its leading fractional zeros.
func roundFrac(x float64, prec int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	digits := prec
	if whole, frac := math.Modf(x); whole == 0 {
		digits = -int(math.Floor(math.Log10(math.Abs(frac)))) - 1 + prec
	}
	return roundBank(x, digits)
}

// roundBank rounds x half-to-even at the given number of decimal
// places.
func roundBank(x float64, places int) float64 {
	r, _ := decimal.NewFromFloat(x).RoundBank(int32(places)).Float64()
	return r
}

func bucketizeCategorical(col table.Slice, axis CategoricalAxis) (*Buckets, error) {
	vals, missing := labels(col)
	b := &Buckets{Axis: axis, Index: make([]int, len(vals))}

	index := make(map[string]int)
	if axis.Order != nil {
		for i, v := range axis.Order {
			if _, dup := index[v]; dup {
				return nil, fmt.Errorf("%w: %q appears twice in category order", ErrConfig, v)
			}
			index[v] = i
		}
		b.Levels = append([]string(nil), axis.Order...)
	} else {
		for i, v := range vals {
			if !missing[i] {
				index[v] = 0
			}
		}
		for v := range index {
			b.Levels = append(b.Levels, v)
		}
		sort.Strings(b.Levels)
		for i, v := range b.Levels {
			index[v] = i
		}
	}

	for i, v := range vals {
		if missing[i] {
			b.Index[i] = -1
			continue
		}
		j, ok := index[v]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, v)
		}
		b.Index[i] = j
	}
	logger.Debug().Str("axis", axis.String()).Int("levels", len(b.Levels)).Msg("categorical buckets")
	return b, nil
}
