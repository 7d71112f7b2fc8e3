// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"fmt"
	"strconv"
)

// An AxisMap places the buckets of one axis on the plot.
type AxisMap struct {
	Axis Axis

	// Ticks and Labels are the tick positions and their labels,
	// in increasing position.
	Ticks  []float64
	Labels []string

	// Domain is every position the axis spans, including those
	// with no tick. For a numeric axis it holds the midpoint of
	// every interval, so empty bins keep their space.
	Domain []float64

	coords map[string]float64
}

// MapAxis assigns plot coordinates to the buckets in observed, which
// must be levels of b.
//
// A numeric bucket is placed at the midpoint of its displayed bounds,
// rounded half-to-even to digits decimal places, and labeled with
// that midpoint. The axis Domain holds the midpoints of all of b's
// intervals, observed or not. A categorical bucket is placed at its zero-based rank
// in the explicit order if b has one, and otherwise at its rank in
// observed. Its label is the bucket itself.
func MapAxis(b *Buckets, observed []string, digits int) (*AxisMap, error) {
	m := &AxisMap{Axis: b.Axis, coords: make(map[string]float64)}
	for _, label := range observed {
		if b.level(label) < 0 {
			return nil, fmt.Errorf("%w: %q is not a bucket of this axis", ErrUnknownCategory, label)
		}
	}

	switch axis := b.Axis.(type) {
	case NumericAxis:
		for _, iv := range b.Intervals {
			m.Domain = append(m.Domain, roundBank(iv.Mid(), digits))
		}
		for _, label := range observed {
			mid := roundBank(b.Intervals[b.level(label)].Mid(), digits)
			m.coords[label] = mid
			m.Ticks = append(m.Ticks, mid)
			m.Labels = append(m.Labels, strconv.FormatFloat(mid, 'f', -1, 64))
		}
	case CategoricalAxis:
		order := observed
		if axis.Order != nil {
			order = axis.Order
		}
		for i, label := range order {
			m.coords[label] = float64(i)
			m.Ticks = append(m.Ticks, float64(i))
			m.Labels = append(m.Labels, label)
		}
		m.Domain = append([]float64(nil), m.Ticks...)
	}
	return m, nil
}

// Coord returns the plot coordinate of bucket label.
func (m *AxisMap) Coord(label string) (float64, error) {
	c, ok := m.coords[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
	}
	return c, nil
}

// tickLabel returns the label of the tick at x, or "" if there is no
// tick there.
func (m *AxisMap) tickLabel(x float64) string {
	for i, t := range m.Ticks {
		if t == x {
			return m.Labels[i]
		}
	}
	return ""
}
