// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestResolveAxis(t *testing.T) {
	for _, test := range []struct {
		col   interface{}
		order []string
		want  Axis
	}{
		{[]float64{1, 2}, nil, NumericAxis{5}},
		{[]int{1, 2}, nil, NumericAxis{5}},
		{[]uint8{1, 2}, nil, NumericAxis{5}},
		{[]int{1, 2}, []string{"2", "1"}, CategoricalAxis{[]string{"2", "1"}}},
		{[]string{"a"}, nil, CategoricalAxis{}},
		{[]bool{true}, nil, CategoricalAxis{}},
	} {
		got := ResolveAxis(test.col, 5, test.order)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("ResolveAxis(%v, 5, %v) = %v, want %v", test.col, test.order, got, test.want)
		}
	}
}

func TestBucketizeNumeric(t *testing.T) {
	b, err := Bucketize([]int{1, 1, 2, 2, 2}, NumericAxis{2})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"(0.999, 1.5]", "(1.5, 2]"}; !reflect.DeepEqual(b.Levels, want) {
		t.Errorf("levels = %q, want %q", b.Levels, want)
	}
	if want := []int{0, 0, 1, 1, 1}; !reflect.DeepEqual(b.Index, want) {
		t.Errorf("index = %v, want %v", b.Index, want)
	}
	if iv := b.Intervals[0]; !iv.Contains(1) || iv.Contains(1.6) || !iv.Contains(1.5) {
		t.Errorf("interval %v has wrong membership", iv)
	}
}

func TestBucketizeNumericEdges(t *testing.T) {
	// Values on an interior edge belong to the interval they close.
	b, err := Bucketize([]float64{0, 2.5, 5, 7.5, 10}, NumericAxis{4})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 0, 1, 2, 3}; !reflect.DeepEqual(b.Index, want) {
		t.Errorf("index = %v, want %v", b.Index, want)
	}
	want := []string{"(-0.01, 2.5]", "(2.5, 5]", "(5, 7.5]", "(7.5, 10]"}
	if !reflect.DeepEqual(b.Levels, want) {
		t.Errorf("levels = %q, want %q", b.Levels, want)
	}
}

func TestBucketizeMissing(t *testing.T) {
	nan := math.NaN()
	b, err := Bucketize([]float64{1, nan, 3}, NumericAxis{2})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, -1, 1}; !reflect.DeepEqual(b.Index, want) {
		t.Errorf("index = %v, want %v", b.Index, want)
	}
	if _, ok := b.Label(1); ok {
		t.Errorf("missing row has a label")
	}
	got := b.Table().MustColumn("bucket").([]string)
	if want := []string{"(0.998, 2]", "", "(2, 3]"}; !reflect.DeepEqual(got, want) {
		t.Errorf("bucket column = %q, want %q", got, want)
	}
}

func TestBucketizeEveryRow(t *testing.T) {
	xs := []float64{-3.2, 0.001, 7, 7, 19.75, 4.4, -3.2, 12}
	for bins := 1; bins <= 12; bins++ {
		b, err := Bucketize(xs, NumericAxis{bins})
		if err != nil {
			t.Fatalf("%d bins: %v", bins, err)
		}
		for i, x := range xs {
			if iv := b.Intervals[b.Index[i]]; !iv.Contains(x) {
				t.Errorf("%d bins: %v assigned to %v", bins, x, iv)
			}
		}
	}
}

func TestBucketizeDegenerate(t *testing.T) {
	_, err := Bucketize([]float64{4, 4, 4}, NumericAxis{3})
	if !errors.Is(err, ErrConfig) {
		t.Errorf("constant column with 3 bins: got %v, want ErrConfig", err)
	}

	// A single bin is fine; the range is widened around the value.
	b, err := Bucketize([]float64{4, 4, 4}, NumericAxis{1})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"(3.996, 4.004]"}; !reflect.DeepEqual(b.Levels, want) {
		t.Errorf("levels = %q, want %q", b.Levels, want)
	}
}

func TestBucketizeBadInput(t *testing.T) {
	for _, test := range []struct {
		name string
		col  interface{}
		axis Axis
	}{
		{"zero bins", []float64{1, 2}, NumericAxis{0}},
		{"infinite", []float64{1, math.Inf(1)}, NumericAxis{2}},
		{"all missing", []float64{math.NaN()}, NumericAxis{2}},
		{"strings", []string{"a"}, NumericAxis{2}},
		{"duplicate order", []string{"a"}, CategoricalAxis{[]string{"a", "a"}}},
	} {
		if _, err := Bucketize(test.col, test.axis); !errors.Is(err, ErrConfig) {
			t.Errorf("%s: got %v, want ErrConfig", test.name, err)
		}
	}
}

func TestBucketizeCategorical(t *testing.T) {
	b, err := Bucketize([]string{"pear", "apple", "fig", "apple"}, CategoricalAxis{})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"apple", "fig", "pear"}; !reflect.DeepEqual(b.Levels, want) {
		t.Errorf("levels = %q, want %q", b.Levels, want)
	}
	if want := []int{2, 0, 1, 0}; !reflect.DeepEqual(b.Index, want) {
		t.Errorf("index = %v, want %v", b.Index, want)
	}
}

func TestBucketizeOrdered(t *testing.T) {
	order := []string{"3", "1", "2", "4"}
	b, err := Bucketize([]int{1, 2, 3, 1}, CategoricalAxis{order})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(b.Levels, order) {
		t.Errorf("levels = %q, want %q", b.Levels, order)
	}
	if want := []int{1, 2, 0, 1}; !reflect.DeepEqual(b.Index, want) {
		t.Errorf("index = %v, want %v", b.Index, want)
	}

	_, err = Bucketize([]int{1, 5}, CategoricalAxis{order})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("value outside order: got %v, want ErrUnknownCategory", err)
	}
}

func TestRoundFrac(t *testing.T) {
	for _, test := range []struct {
		x    float64
		prec int
		want float64
	}{
		{0.999, 3, 0.999},
		{0.0012345, 3, 0.00123},
		{-0.0012345, 3, -0.00123},
		{12.34567, 3, 12.346},
		{2.5, 0, 2},
		{0, 3, 0},
	} {
		if got := roundFrac(test.x, test.prec); got != test.want {
			t.Errorf("roundFrac(%v, %d) = %v, want %v", test.x, test.prec, got, test.want)
		}
	}
}

func TestRoundEdgesDistinct(t *testing.T) {
	edges := []float64{1.00001, 1.00002, 1.00003}
	got := roundEdges(edges)
	if want := []float64{1.00001, 1.00002, 1.00003}; !reflect.DeepEqual(got, want) {
		t.Errorf("roundEdges(%v) = %v, want %v", edges, got, want)
	}
}
