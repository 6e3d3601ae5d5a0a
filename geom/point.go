// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides float64 pixel-space geometry: points, sizes
// and rectangles, with a top-left origin and y increasing downward.
package geom

import (
	"fmt"
	"math"
)

// Point is a 2D point in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Add returns pt + o.
func (pt Point) Add(o Point) Point {
	return Point{X: pt.X + o.X, Y: pt.Y + o.Y}
}

// Sub returns pt - o.
func (pt Point) Sub(o Point) Point {
	return Point{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// MulScalar returns pt scaled by s.
func (pt Point) MulScalar(s float64) Point {
	return Point{X: pt.X * s, Y: pt.Y * s}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Sqrt(pt.DistanceSquared(o))
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Round returns a new point with x and y rounded to the nearest integers.
func (pt Point) Round() Point {
	return Point{X: math.Round(pt.X), Y: math.Round(pt.Y)}
}

// IsNaN returns true if either coordinate is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// IsFinite returns true if neither coordinate is NaN or infinite.
func (pt Point) IsFinite() bool {
	return !math.IsNaN(pt.X) && !math.IsNaN(pt.Y) && !math.IsInf(pt.X, 0) && !math.IsInf(pt.Y, 0)
}

// Size is a width and height.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size (w, h).
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

func (sz Size) String() string {
	return fmt.Sprintf("%gx%g", sz.Width, sz.Height)
}

// IsEmpty returns true if either dimension is <= 0.
func (sz Size) IsEmpty() bool {
	return sz.Width <= 0 || sz.Height <= 0
}
