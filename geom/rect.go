// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"image"
	"math"
)

// Rect is an axis-aligned rectangle defined by its minimum (top-left)
// and maximum (bottom-right) corners.
type Rect struct {
	Min Point
	Max Point
}

// R returns the rectangle with the given corners, normalized so that
// Min <= Max on both axes.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: Point{X: min(x0, x1), Y: min(y0, y1)},
		Max: Point{X: max(x0, x1), Y: max(y0, y1)},
	}
}

// XYWH returns the rectangle with the given origin and size.
func XYWH(x, y, w, h float64) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

// FromCenter returns a rectangle of the given size centered on c.
func FromCenter(c Point, sz Size) Rect {
	return Rect{
		Min: Point{X: c.X - sz.Width/2, Y: c.Y - sz.Height/2},
		Max: Point{X: c.X + sz.Width/2, Y: c.Y + sz.Height/2},
	}
}

// FromImage converts an [image.Rectangle].
func FromImage(r image.Rectangle) Rect {
	return Rect{
		Min: Point{X: float64(r.Min.X), Y: float64(r.Min.Y)},
		Max: Point{X: float64(r.Max.X), Y: float64(r.Max.Y)},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v-%v]", r.Min, r.Max)
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the width and height.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: 0.5 * (r.Min.X + r.Max.X), Y: 0.5 * (r.Min.Y + r.Max.Y)}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return !(r.Max.X > r.Min.X) || !(r.Max.Y > r.Min.Y)
}

// IsValid returns true if Min <= Max on both axes. A zero width or
// height rectangle is valid but empty.
func (r Rect) IsValid() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// TopLeft returns Min.
func (r Rect) TopLeft() Point { return r.Min }

// TopRight returns (Max.X, Min.Y).
func (r Rect) TopRight() Point { return Point{X: r.Max.X, Y: r.Min.Y} }

// BottomLeft returns (Min.X, Max.Y).
func (r Rect) BottomLeft() Point { return Point{X: r.Min.X, Y: r.Max.Y} }

// BottomRight returns Max.
func (r Rect) BottomRight() Point { return r.Max }

// Adjusted returns a rectangle with dx0, dy0 added to Min and
// dx1, dy1 added to Max. The result is not normalized.
func (r Rect) Adjusted(dx0, dy0, dx1, dy1 float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + dx0, Y: r.Min.Y + dy0},
		Max: Point{X: r.Max.X + dx1, Y: r.Max.Y + dy1},
	}
}

// Inset returns the rectangle shrunk by d on every side.
func (r Rect) Inset(d float64) Rect {
	return r.Adjusted(d, d, -d, -d)
}

// WithCenter returns r moved so that its center is c.
func (r Rect) WithCenter(c Point) Rect {
	return FromCenter(c, r.Size())
}

// Contains returns true if pt is inside r, borders included.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// Union returns the smallest rectangle containing r and o.
// An invalid rectangle acts as the identity.
func (r Rect) Union(o Rect) Rect {
	if !r.IsValid() {
		return o
	}
	if !o.IsValid() {
		return r
	}
	return Rect{
		Min: Point{X: min(r.Min.X, o.Min.X), Y: min(r.Min.Y, o.Min.Y)},
		Max: Point{X: max(r.Max.X, o.Max.X), Y: max(r.Max.Y, o.Max.Y)},
	}
}

// Polygon returns the four corners in clockwise screen order,
// starting at the top-left.
func (r Rect) Polygon() []Point {
	return []Point{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

// ToImage returns the enclosing integer [image.Rectangle].
func (r Rect) ToImage() image.Rectangle {
	return image.Rect(int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)))
}

// Empty returns an invalid rectangle suitable as the start of a
// sequence of [Rect.Union] or [Rect.ExpandToPoint] calls.
func Empty() Rect {
	return Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// ExpandToPoint returns r grown to include pt.
func (r Rect) ExpandToPoint(pt Point) Rect {
	return Rect{
		Min: Point{X: min(r.Min.X, pt.X), Y: min(r.Min.Y, pt.Y)},
		Max: Point{X: max(r.Max.X, pt.X), Y: max(r.Max.Y, pt.Y)},
	}
}

// EllipsePoints returns n points on the ellipse inscribed in r,
// clockwise in screen coordinates starting at the right-most point.
func (r Rect) EllipsePoints(n int) []Point {
	if n < 3 {
		n = 3
	}
	c := r.Center()
	rx, ry := r.Width()/2, r.Height()/2
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: c.X + rx*math.Cos(a), Y: c.Y + ry*math.Sin(a)}
	}
	return pts
}
