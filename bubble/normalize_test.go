// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

func exampleTable() *FreqTable {
	return &FreqTable{
		Rows: []string{"(0.999, 1.5]", "(1.5, 2]"},
		Cols: []string{"x", "y"},
		Cells: mat.NewDense(2, 2, []float64{
			2, 0,
			1, 2,
		}),
	}
}

func TestNormalizeConditional(t *testing.T) {
	ft := exampleTable()
	nt := Normalize(ft, Conditional, false)
	want := mat.NewDense(2, 2, []float64{
		1, 0,
		1.0 / 3, 2.0 / 3,
	})
	if !mat.EqualApprox(nt.Cells, want, tol) {
		t.Errorf("cells =\n%v\nwant\n%v", mat.Formatted(nt.Cells), mat.Formatted(want))
	}
	if ft.Cells.At(1, 1) != 2 {
		t.Errorf("Normalize modified its input")
	}
}

func TestNormalizeJoint(t *testing.T) {
	nt := Normalize(exampleTable(), Joint, false)
	if got := nt.Total(); math.Abs(got-1) > tol {
		t.Errorf("joint total = %v, want 1", got)
	}
	if got := nt.Cells.At(0, 0); math.Abs(got-0.4) > tol {
		t.Errorf("p(x bucket 0, y=x) = %v, want 0.4", got)
	}
}

func TestNormalizeZeroRow(t *testing.T) {
	ft := &FreqTable{
		Rows: []string{"a", "b"},
		Cols: []string{"c", "d", "e"},
		Cells: mat.NewDense(2, 3, []float64{
			0, 0, 0,
			1, 3, 4,
		}),
	}
	nt := Normalize(ft, Conditional, false)
	for j := 0; j < 3; j++ {
		if v := nt.Cells.At(0, j); !math.IsNaN(v) {
			t.Errorf("zero row cell %d = %v, want NaN", j, v)
		}
	}
	if got := floats.Sum(nt.Cells.RawRowView(1)); math.Abs(got-1) > tol {
		t.Errorf("row sum = %v, want 1", got)
	}
}

func TestNormalizeLog(t *testing.T) {
	ft := &FreqTable{
		Rows:  []string{"a"},
		Cols:  []string{"b", "c", "d", "e"},
		Cells: mat.NewDense(1, 4, []float64{1, 2, 5, 0}),
	}
	nt := Normalize(ft, Joint, true)
	row := nt.Cells.RawRowView(0)
	if !(row[0] < row[1] && row[1] < row[2]) {
		t.Errorf("log is not monotonic: %v", row)
	}
	if got, want := row[2], math.Log(5.0/8); math.Abs(got-want) > tol {
		t.Errorf("log cell = %v, want %v", got, want)
	}
	if !math.IsInf(row[3], -1) {
		t.Errorf("log of zero cell = %v, want -Inf", row[3])
	}
}
