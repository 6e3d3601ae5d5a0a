// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot provides the data and coordinate plumbing shared by plot
// items: series sources ([XYer] and its owned, borrowed and dual-array
// variants), [ScaleMap] coordinate transforms, the [Fitter] capability
// for smoothing pixel-space polylines, and clipping against a viewport.
// The items themselves live in plot/plots.
package plot

import "cogentcore.org/plotcurve/geom"

// Orientation determines which axis is the independent one for
// sticks, steps and fills.
type Orientation int32 //enums:enum

const (
	// Horizontal: x is the value axis, y the category axis.
	Horizontal Orientation = iota

	// Vertical: y = f(x), the usual orientation.
	Vertical
)

// Fitter transforms an ordered sequence of pixel-space points into a
// smoothed or simplified sequence, which may have a different length.
// Implementations must not modify the input.
type Fitter interface {
	FitCurve(pts []geom.Point) []geom.Point
}

// FitterFunc adapts an ordinary function to the [Fitter] interface.
type FitterFunc func(pts []geom.Point) []geom.Point

func (f FitterFunc) FitCurve(pts []geom.Point) []geom.Point { return f(pts) }

// VerifyRange clamps from and to into [0, size-1] and swaps them when
// from > to. It returns the number of samples in the range, 0 if size < 1.
func VerifyRange(size int, from, to *int) int {
	if size < 1 {
		return 0
	}
	*from = min(max(*from, 0), size-1)
	*to = min(max(*to, 0), size-1)
	if *from > *to {
		*from, *to = *to, *from
	}
	return *to - *from + 1
}
