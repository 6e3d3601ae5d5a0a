// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fit provides curve fitters that smooth or simplify the
// pixel-space polyline of a curve before it is painted.
package fit

import (
	"fmt"
	"slices"

	"cogentcore.org/plotcurve/base/errors"
	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/plot"
	"gonum.org/v1/gonum/interp"
)

// FitModes determine how a [SplineFitter] interpolates.
type FitModes int32 //enums:enum

const (
	// Auto uses Spline when the x values are strictly increasing,
	// and ParametricSpline otherwise.
	Auto FitModes = iota

	// Spline interpolates y as a function of x. Points whose x values
	// are not strictly increasing are returned unchanged.
	Spline

	// ParametricSpline interpolates x and y separately as functions of
	// the accumulated chord length, so any ordering of points works.
	ParametricSpline
)

// SplineKinds select the interpolating spline.
type SplineKinds int32 //enums:enum

const (
	// Natural is a natural cubic spline (zero second derivative at
	// the ends).
	Natural SplineKinds = iota

	// Akima is an Akima spline, less prone to overshoot near outliers.
	Akima

	// Monotone is a Fritsch-Butland spline, which preserves monotonicity
	// of the data.
	Monotone
)

// SplineFitter interpolates the points of a curve with a cubic spline.
type SplineFitter struct {

	// FitMode determines whether the spline is parametric.
	FitMode FitModes

	// Kind is the spline used.
	Kind SplineKinds

	// SplineSize is the number of points in the result.
	SplineSize int
}

var _ plot.Fitter = (*SplineFitter)(nil)

// NewSplineFitter returns a fitter with Auto mode, a natural spline,
// and 250 result points.
func NewSplineFitter() *SplineFitter {
	return &SplineFitter{FitMode: Auto, Kind: Natural, SplineSize: 250}
}

// FitCurve returns SplineSize points on the spline through pts.
// Fewer than three points are returned unchanged.
func (sf *SplineFitter) FitCurve(pts []geom.Point) []geom.Point {
	if len(pts) <= 2 {
		return slices.Clone(pts)
	}
	mode := sf.FitMode
	if mode == Auto {
		mode = Spline
		if !increasingX(pts) {
			mode = ParametricSpline
		}
	}
	var res []geom.Point
	var err error
	if mode == ParametricSpline {
		res, err = sf.fitParametric(pts)
	} else {
		res, err = sf.fitSpline(pts)
	}
	if errors.Log(err) != nil || res == nil {
		return slices.Clone(pts)
	}
	return res
}

func (sf *SplineFitter) size() int {
	return max(sf.SplineSize, 2)
}

func (sf *SplineFitter) predictor() interp.FittablePredictor {
	switch sf.Kind {
	case Akima:
		return &interp.AkimaSpline{}
	case Monotone:
		return &interp.FritschButland{}
	default:
		return &interp.NaturalCubic{}
	}
}

func increasingX(pts []geom.Point) bool {
	for i := 1; i < len(pts); i++ {
		if !(pts[i].X > pts[i-1].X) {
			return false
		}
	}
	return true
}

// fitSpline returns nil when x is not strictly increasing.
func (sf *SplineFitter) fitSpline(pts []geom.Point) ([]geom.Point, error) {
	if !increasingX(pts) {
		return nil, nil
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = pt.X, pt.Y
	}
	sp := sf.predictor()
	if err := sp.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("fit.SplineFitter: %w", err)
	}
	n := sf.size()
	x0, x1 := xs[0], xs[len(xs)-1]
	delta := (x1 - x0) / float64(n-1)
	res := make([]geom.Point, n)
	for i := range res {
		x := x0 + float64(i)*delta
		if i == n-1 {
			x = x1
		}
		res[i] = geom.Point{X: x, Y: sp.Predict(x)}
	}
	return res, nil
}

// fitParametric fits x(t) and y(t) over the chord length t.
// Consecutive duplicate points are dropped since t must strictly increase.
func (sf *SplineFitter) fitParametric(pts []geom.Point) ([]geom.Point, error) {
	ts := make([]float64, 0, len(pts))
	xs := make([]float64, 0, len(pts))
	ys := make([]float64, 0, len(pts))
	var t float64
	for i, pt := range pts {
		if i > 0 {
			d := pt.Distance(pts[i-1])
			if d == 0 {
				continue
			}
			t += d
		}
		ts = append(ts, t)
		xs = append(xs, pt.X)
		ys = append(ys, pt.Y)
	}
	if len(ts) < 2 {
		return nil, nil
	}
	spx, spy := sf.predictor(), sf.predictor()
	if err := spx.Fit(ts, xs); err != nil {
		return nil, fmt.Errorf("fit.SplineFitter: parametric x: %w", err)
	}
	if err := spy.Fit(ts, ys); err != nil {
		return nil, fmt.Errorf("fit.SplineFitter: parametric y: %w", err)
	}
	n := sf.size()
	delta := t / float64(n-1)
	res := make([]geom.Point, n)
	for i := range res {
		ti := float64(i) * delta
		if i == n-1 {
			ti = t
		}
		res[i] = geom.Point{X: spx.Predict(ti), Y: spy.Predict(ti)}
	}
	return res, nil
}
