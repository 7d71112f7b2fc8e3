// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// An Axis says how the values of one column are turned into buckets.
// It is either a NumericAxis or a CategoricalAxis.
type Axis interface {
	fmt.Stringer
	axis()
}

// NumericAxis cuts a numeric column into Bins equal-width intervals.
type NumericAxis struct {
	Bins int
}

// CategoricalAxis uses a column's values as buckets. If Order is nil,
// the buckets are the distinct values in lexicographic order.
// Otherwise Order lists every permitted value in display order.
type CategoricalAxis struct {
	Order []string
}

func (NumericAxis) axis()     {}
func (CategoricalAxis) axis() {}

func (a NumericAxis) String() string {
	return fmt.Sprintf("numeric(%d bins)", a.Bins)
}

func (a CategoricalAxis) String() string {
	if a.Order == nil {
		return "categorical(sorted)"
	}
	return fmt.Sprintf("categorical(%d ordered)", len(a.Order))
}

// ResolveAxis picks the Axis for col. A numeric column is binned
// unless an explicit order is given, which forces categorical
// treatment.
func ResolveAxis(col table.Slice, bins int, order []string) Axis {
	if order == nil && isNumeric(col) {
		return NumericAxis{bins}
	}
	return CategoricalAxis{order}
}
