// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bubble draws bubble plots: two-dimensional histograms of a
// pair of table columns in which every (x, y) bucket is a circle
// whose area is proportional to the bucket's frequency.
//
// Numeric columns are cut into equal-width bins and categorical
// columns are used as-is (optionally in an explicit order). The
// bucket counts are cross-tabulated and normalized either as a joint
// distribution p(x, y) or, by default, as the conditional
// distribution p(y | x). If a two-valued coloring column is given,
// each bubble is instead sized by its raw count and colored by the
// fraction of its rows holding the coloring column's second value.
//
// The pipeline is exposed stage by stage (Bucketize, CrossTab,
// Normalize, RatioColor, MapAxis, Render) so each stage can be used
// and tested on its own; Plot runs all of them.
//
//	tab := new(table.Builder).
//		Add("rooms", rooms).
//		Add("price", prices).
//		Done()
//	fig, err := bubble.Plot(tab, "rooms", "price", bubble.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fig.WriteSVG(os.Stdout)
package bubble
