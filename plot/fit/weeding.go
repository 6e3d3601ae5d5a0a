// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"slices"

	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/plot"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// WeedingFitter removes points that do not change the shape of the
// curve by more than Tolerance pixels (Douglas-Peucker). It reduces
// the work of painting dense curves without visible change.
type WeedingFitter struct {

	// Tolerance is the maximum distance, in pixels, of a dropped
	// point from the simplified polyline.
	Tolerance float64
}

var _ plot.Fitter = (*WeedingFitter)(nil)

// NewWeedingFitter returns a fitter with the given tolerance.
func NewWeedingFitter(tolerance float64) *WeedingFitter {
	return &WeedingFitter{Tolerance: tolerance}
}

// FitCurve returns the simplified polyline, always keeping the first
// and last points.
func (wf *WeedingFitter) FitCurve(pts []geom.Point) []geom.Point {
	if len(pts) <= 2 || wf.Tolerance <= 0 {
		return slices.Clone(pts)
	}
	ls := make(orb.LineString, len(pts))
	for i, pt := range pts {
		ls[i] = orb.Point{pt.X, pt.Y}
	}
	// simplifies ls in place
	ls = simplify.DouglasPeucker(wf.Tolerance).LineString(ls)
	res := make([]geom.Point, len(ls))
	for i, p := range ls {
		res[i] = geom.Pt(p[0], p[1])
	}
	return res
}
