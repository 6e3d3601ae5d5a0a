// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values,
// used for data bounds and scale intervals.
package minmax

import "math"

// F64 represents a min / max range for float64 values.
type F64 struct {
	Min float64
	Max float64
}

// New returns a range with the given min and max.
func New(mn, mx float64) F64 {
	return F64{Min: mn, Max: mx}
}

// Set sets the min and max values
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to +Inf, Max to -Inf, suitable for
// iteratively calling FitValInRange.
func (mr *F64) SetInfinity() {
	mr.Min = math.Inf(1)
	mr.Max = math.Inf(-1)
}

// IsValid returns true if Min <= Max
func (mr F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max)
func (mr F64) InRange(val float64) bool {
	return val >= mr.Min && val <= mr.Max
}

// Range returns Max - Min
func (mr F64) Range() float64 {
	return mr.Max - mr.Min
}

// Midpoint returns point halfway between Min and Max
func (mr F64) Midpoint() float64 {
	return 0.5 * (mr.Max + mr.Min)
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range.
// NaN values are ignored. Returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	if math.IsNaN(val) {
		return false
	}
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// ClipValue clips given value within Min / Max range.
// Note: a NaN will remain as a NaN
func (mr F64) ClipValue(val float64) float64 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

// Normalized returns the range with Min <= Max, swapping if needed.
func (mr F64) Normalized() F64 {
	if mr.Min > mr.Max {
		return F64{Min: mr.Max, Max: mr.Min}
	}
	return mr
}
