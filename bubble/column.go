// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/table"
)

// column returns the named column of t.
func column(t *table.Table, name string) (table.Slice, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", ErrShape)
	}
	col := t.Column(name)
	if col == nil {
		return nil, fmt.Errorf("%w: no column %q", ErrShape, name)
	}
	return col, nil
}

func isNumeric(col table.Slice) bool {
	switch reflect.TypeOf(col).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// labels formats every value of col with fmt.Sprint. missing[i] is
// set for floating-point NaNs, which have no label.
func labels(col table.Slice) (out []string, missing []bool) {
	if ss, ok := col.([]string); ok {
		return append([]string(nil), ss...), make([]bool, len(ss))
	}
	cv := reflect.ValueOf(col)
	n := cv.Len()
	out, missing = make([]string, n), make([]bool, n)
	isFloat := false
	switch cv.Type().Elem().Kind() {
	case reflect.Float32, reflect.Float64:
		isFloat = true
	}
	for i := 0; i < n; i++ {
		v := cv.Index(i)
		if isFloat && math.IsNaN(v.Float()) {
			missing[i] = true
			continue
		}
		out[i] = fmt.Sprint(v.Interface())
	}
	return out, missing
}
