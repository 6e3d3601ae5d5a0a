// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record provides a [paint.Painter] that records every
// primitive it is asked to draw, together with the pen and brush in
// effect, so the drawing can be inspected, replayed, or hit tested.
package record

import (
	"slices"

	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/paint"
)

// Kinds are the kinds of recorded primitives.
type Kinds int32 //enums:enum

const (
	Line Kinds = iota
	Point
	Polyline
	Polygon
	Rect
	Ellipse
	FillRect
)

// Op is one recorded primitive.
type Op struct {
	Kind Kinds

	// Points are the vertices: two for Line, one for Point, the
	// corners (min, max) for the rect kinds.
	Points []geom.Point

	// Pen is the pen in effect, zero for FillRect.
	Pen paint.Pen

	// Brush is the brush in effect, or the explicit FillRect brush.
	Brush paint.Brush
}

// Rect returns the rectangle of a Rect, Ellipse or FillRect op.
func (op *Op) Rect() geom.Rect {
	if len(op.Points) < 2 {
		return geom.Rect{}
	}
	return geom.Rect{Min: op.Points[0], Max: op.Points[1]}
}

// Painter records primitives. The zero value is not usable; use [New].
type Painter struct {
	paint.State

	// Ops are the recorded primitives in drawing order.
	Ops []Op

	window geom.Rect
}

var _ paint.Painter = (*Painter)(nil)

// New returns a recording painter with the given viewport.
func New(window geom.Rect) *Painter {
	return &Painter{State: paint.NewState(), window: window}
}

// Window returns the viewport.
func (rp *Painter) Window() geom.Rect { return rp.window }

// Reset discards the recorded ops, keeping state.
func (rp *Painter) Reset() { rp.Ops = rp.Ops[:0] }

func (rp *Painter) add(kind Kinds, pts ...geom.Point) {
	rp.Ops = append(rp.Ops, Op{Kind: kind, Points: slices.Clone(pts), Pen: rp.Pen(), Brush: rp.Brush()})
}

func (rp *Painter) DrawLine(p1, p2 geom.Point) { rp.add(Line, p1, p2) }
func (rp *Painter) DrawPoint(pt geom.Point) { rp.add(Point, pt) }
func (rp *Painter) DrawPolyline(pts []geom.Point) { rp.add(Polyline, pts...) }
func (rp *Painter) DrawPolygon(pts []geom.Point) { rp.add(Polygon, pts...) }
func (rp *Painter) DrawRect(r geom.Rect) { rp.add(Rect, r.Min, r.Max) }
func (rp *Painter) DrawEllipse(r geom.Rect) { rp.add(Ellipse, r.Min, r.Max) }

// FillRect records the rectangle with the given brush.
func (rp *Painter) FillRect(r geom.Rect, brush paint.Brush) {
	rp.Ops = append(rp.Ops, Op{Kind: FillRect, Points: []geom.Point{r.Min, r.Max}, Brush: brush})
}

// Filter returns the ops of the given kind.
func (rp *Painter) Filter(kind Kinds) []Op {
	var ops []Op
	for _, op := range rp.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Count returns the number of ops of the given kind.
func (rp *Painter) Count(kind Kinds) int {
	n := 0
	for _, op := range rp.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Replay draws the recorded ops onto another painter.
func (rp *Painter) Replay(p paint.Painter) {
	p.Save()
	defer p.Restore()
	for _, op := range rp.Ops {
		if op.Kind != FillRect {
			p.SetPen(op.Pen)
			p.SetBrush(op.Brush)
		}
		switch op.Kind {
		case Line:
			p.DrawLine(op.Points[0], op.Points[1])
		case Point:
			p.DrawPoint(op.Points[0])
		case Polyline:
			p.DrawPolyline(op.Points)
		case Polygon:
			p.DrawPolygon(op.Points)
		case Rect:
			p.DrawRect(op.Rect())
		case Ellipse:
			p.DrawEllipse(op.Rect())
		case FillRect:
			p.FillRect(op.Rect(), op.Brush)
		}
	}
}

// Bounds returns the bounding rect of all recorded vertices,
// invalid if nothing was recorded.
func (rp *Painter) Bounds() geom.Rect {
	b := geom.Empty()
	for _, op := range rp.Ops {
		for _, pt := range op.Points {
			b = b.ExpandToPoint(pt)
		}
	}
	return b
}
