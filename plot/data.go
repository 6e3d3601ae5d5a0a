// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from github.com/gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"

	"cogentcore.org/plotcurve/base/errors"
	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/geom/minmax"
)

var (
	ErrInfinity = errors.New("plotter: infinite data point")
	ErrNoData   = errors.New("plotter: no data points")
	ErrLength   = errors.New("plotter: x and y lengths differ")
)

// XY is one sample.
type XY struct {
	X, Y float64
}

// Point returns the sample as a [geom.Point].
func (xy XY) Point() geom.Point {
	return geom.Point{X: xy.X, Y: xy.Y}
}

// XYer is an ordered source of samples. Valid indexes are [0, Len()).
type XYer interface {
	// Len returns the number of x, y pairs.
	Len() int

	// XY returns an x, y pair.
	XY(i int) (x, y float64)
}

// Ownership records whether a series owns its storage.
type Ownership int32 //enums:enum

const (
	// Owned storage is a private copy of the caller's data.
	Owned Ownership = iota

	// Borrowed storage aliases caller-owned buffers, which must stay
	// alive and unmodified while the series is rendered.
	Borrowed
)

// Owner is implemented by series that report their [Ownership].
type Owner interface {
	Owner() Ownership
}

// OwnershipOf returns the ownership of data; series that do not
// implement [Owner] are treated as Borrowed.
func OwnershipOf(data XYer) Ownership {
	if o, ok := data.(Owner); ok {
		return o.Owner()
	}
	return Borrowed
}

// XYs is an owned slice of samples.
type XYs []XY

func (xys XYs) Len() int { return len(xys) }

func (xys XYs) XY(i int) (float64, float64) { return xys[i].X, xys[i].Y }

func (xys XYs) Owner() Ownership { return Owned }

// CopyXYs returns an owned copy of the samples in data. An infinite
// value is an error; NaN values are kept, and a curve leaves a gap
// at each of them.
func CopyXYs(data XYer) (XYs, error) {
	n := data.Len()
	cpy := make(XYs, n)
	for i := range cpy {
		cpy[i].X, cpy[i].Y = data.XY(i)
		if math.IsInf(cpy[i].X, 0) || math.IsInf(cpy[i].Y, 0) {
			return nil, fmt.Errorf("sample %d: %w", i, ErrInfinity)
		}
	}
	return cpy, nil
}

// NewXYs returns owned samples from parallel x and y slices,
// which must have the same length.
func NewXYs(xs, ys []float64) (XYs, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("NewXYs: %d x values, %d y values: %w", len(xs), len(ys), ErrLength)
	}
	return CopyXYs(ArrayXYs{X: xs, Y: ys})
}

// ArrayXYs holds separate x and y slices, combined pairwise by index.
// Len is the shorter of the two.
type ArrayXYs struct {
	X, Y []float64
}

// NewArrayXYs returns an ArrayXYs holding copies of xs and ys.
func NewArrayXYs(xs, ys []float64) ArrayXYs {
	return ArrayXYs{X: append([]float64(nil), xs...), Y: append([]float64(nil), ys...)}
}

func (ax ArrayXYs) Len() int { return min(len(ax.X), len(ax.Y)) }

func (ax ArrayXYs) XY(i int) (float64, float64) { return ax.X[i], ax.Y[i] }

func (ax ArrayXYs) Owner() Ownership { return Owned }

// RawXYs refers to caller-owned x and y slices without copying them.
// The caller keeps the slices alive and unmodified while the series
// is in use. Len is the shorter of the two.
type RawXYs struct {
	X, Y []float64
}

// NewRawXYs returns a RawXYs over xs and ys.
func NewRawXYs(xs, ys []float64) RawXYs {
	return RawXYs{X: xs, Y: ys}
}

func (rx RawXYs) Len() int { return min(len(rx.X), len(rx.Y)) }

func (rx RawXYs) XY(i int) (float64, float64) { return rx.X[i], rx.Y[i] }

func (rx RawXYs) Owner() Ownership { return Borrowed }

// XYRange returns the ranges of the x and y values in data, skipping
// NaNs. The ranges are invalid (Min > Max) when there are no values.
func XYRange(data XYer) (xr, yr minmax.F64) {
	xr.SetInfinity()
	yr.SetInfinity()
	for i := range data.Len() {
		x, y := data.XY(i)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		xr.FitValInRange(x)
		yr.FitValInRange(y)
	}
	return
}

// BoundingRect returns the rectangle in data coordinates enclosing all
// samples; for an empty series the result is not valid.
func BoundingRect(data XYer) geom.Rect {
	xr, yr := XYRange(data)
	if !xr.IsValid() || !yr.IsValid() {
		return geom.Empty()
	}
	return geom.Rect{Min: geom.Point{X: xr.Min, Y: yr.Min}, Max: geom.Point{X: xr.Max, Y: yr.Max}}
}

// CheckFloats returns an error if any of the arguments are Infinity.
// or if there are no non-NaN data points available for plotting.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// TransformXY maps sample i of data to pixel space.
func TransformXY(data XYer, i int, xMap, yMap ScaleMap) geom.Point {
	x, y := data.XY(i)
	return geom.Point{X: xMap.Transform(x), Y: yMap.Transform(y)}
}
