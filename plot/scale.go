// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"cogentcore.org/plotcurve/geom/minmax"
)

// ScaleMap converts a data coordinate on one axis to a pixel coordinate
// and back. One map is used per axis.
type ScaleMap interface {
	// Transform returns the pixel coordinate for data value v.
	Transform(v float64) float64

	// InvTransform returns the data value at pixel coordinate p.
	InvTransform(p float64) float64
}

// LogMin and LogMax bound the values a [LogMap] can transform.
const (
	LogMin = 1.0e-150
	LogMax = 1.0e150
)

// LinearMap maps the data Interval linearly onto the pixel range P1..P2.
// P1 may be greater than P2, as is usual for a y axis.
type LinearMap struct {
	Interval minmax.F64
	P1, P2   float64
}

// NewLinearMap returns a linear map from the data interval to p1..p2.
func NewLinearMap(interval minmax.F64, p1, p2 float64) *LinearMap {
	return &LinearMap{Interval: interval, P1: p1, P2: p2}
}

func (lm *LinearMap) Transform(v float64) float64 {
	d := lm.Interval.Range()
	if d == 0 {
		return lm.P1
	}
	return lm.P1 + (v-lm.Interval.Min)*(lm.P2-lm.P1)/d
}

func (lm *LinearMap) InvTransform(p float64) float64 {
	d := lm.P2 - lm.P1
	if d == 0 {
		return lm.Interval.Min
	}
	return lm.Interval.Min + (p-lm.P1)*lm.Interval.Range()/d
}

// LogMap maps the data Interval logarithmically (base 10) onto the pixel
// range P1..P2. Values are clamped into [LogMin, LogMax] first, so zero
// and negative values map to the low end instead of NaN.
type LogMap struct {
	Interval minmax.F64
	P1, P2   float64
}

// NewLogMap returns a log10 map from the data interval to p1..p2.
func NewLogMap(interval minmax.F64, p1, p2 float64) *LogMap {
	return &LogMap{Interval: interval, P1: p1, P2: p2}
}

func logClamp(v float64) float64 {
	return math.Log10(min(max(v, LogMin), LogMax))
}

func (lm *LogMap) Transform(v float64) float64 {
	s1, s2 := logClamp(lm.Interval.Min), logClamp(lm.Interval.Max)
	if s1 == s2 {
		return lm.P1
	}
	return lm.P1 + (logClamp(v)-s1)*(lm.P2-lm.P1)/(s2-s1)
}

func (lm *LogMap) InvTransform(p float64) float64 {
	s1, s2 := logClamp(lm.Interval.Min), logClamp(lm.Interval.Max)
	d := lm.P2 - lm.P1
	if d == 0 {
		return math.Pow(10, s1)
	}
	return math.Pow(10, s1+(p-lm.P1)*(s2-s1)/d)
}

// IdentityMap returns its input unchanged: data coordinates are pixels.
type IdentityMap struct{}

func (IdentityMap) Transform(v float64) float64 { return v }

func (IdentityMap) InvTransform(p float64) float64 { return p }
