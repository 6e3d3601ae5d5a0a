// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"math"
	"slices"

	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/paint"
	"cogentcore.org/plotcurve/plot"
)

// SymbolStyles are the glyph shapes of a [Symbol].
type SymbolStyles int32 //enums:enum

const (
	// NoSymbol draws nothing.
	NoSymbol SymbolStyles = iota

	// Ellipse is an ellipse filling the symbol rect.
	Ellipse

	// Rect is the symbol rect.
	Rect

	// Diamond connects the midpoints of the rect edges.
	Diamond

	// Triangle points up.
	Triangle

	// DTriangle points down.
	DTriangle

	// UTriangle points up.
	UTriangle

	// LTriangle points left.
	LTriangle

	// RTriangle points right.
	RTriangle

	// Cross is a plus sign.
	Cross

	// XCross is a diagonal cross.
	XCross

	// HLine is a horizontal line.
	HLine

	// VLine is a vertical line.
	VLine

	// Star is an eight-armed asterisk.
	Star

	// Hexagon has pointed top and bottom.
	Hexagon
)

// Symbol is a glyph drawn at each sample of a curve.
type Symbol struct {

	// Style is the glyph shape.
	Style SymbolStyles

	// Size is the natural size of the glyph in pixels.
	Size geom.Size

	// Pen outlines the glyph.
	Pen paint.Pen

	// Brush fills closed glyphs.
	Brush paint.Brush
}

// NewSymbol returns a symbol of the given shape and size.
func NewSymbol(style SymbolStyles, brush paint.Brush, pen paint.Pen, size geom.Size) *Symbol {
	return &Symbol{Style: style, Size: size, Pen: pen, Brush: brush}
}

// Clone returns a deep copy of the symbol.
func (s *Symbol) Clone() *Symbol {
	cp := *s
	cp.Pen.Dashes = slices.Clone(s.Pen.Dashes)
	return &cp
}

// Equal reports whether two symbols draw identically.
func (s *Symbol) Equal(o *Symbol) bool {
	return s.Style == o.Style && s.Size == o.Size && s.Pen.Equal(o.Pen) && s.Brush.Equal(o.Brush)
}

// Draw draws the glyph filling r with the painter's current pen and brush.
func (s *Symbol) Draw(p paint.Painter, r geom.Rect) {
	if r.Width() < 0 || r.Height() < 0 {
		return
	}
	c := r.Center()
	l, t, rt, b := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y
	switch s.Style {
	case Ellipse:
		p.DrawEllipse(r)
	case Rect:
		p.DrawRect(r)
	case Diamond:
		p.DrawPolygon([]geom.Point{{c.X, t}, {rt, c.Y}, {c.X, b}, {l, c.Y}})
	case Triangle, UTriangle:
		p.DrawPolygon([]geom.Point{{c.X, t}, {rt, b}, {l, b}})
	case DTriangle:
		p.DrawPolygon([]geom.Point{{l, t}, {rt, t}, {c.X, b}})
	case LTriangle:
		p.DrawPolygon([]geom.Point{{l, c.Y}, {rt, t}, {rt, b}})
	case RTriangle:
		p.DrawPolygon([]geom.Point{{rt, c.Y}, {l, b}, {l, t}})
	case Cross:
		p.DrawLine(geom.Pt(l, c.Y), geom.Pt(rt, c.Y))
		p.DrawLine(geom.Pt(c.X, t), geom.Pt(c.X, b))
	case XCross:
		p.DrawLine(r.TopLeft(), r.BottomRight())
		p.DrawLine(r.TopRight(), r.BottomLeft())
	case HLine:
		p.DrawLine(geom.Pt(l, c.Y), geom.Pt(rt, c.Y))
	case VLine:
		p.DrawLine(geom.Pt(c.X, t), geom.Pt(c.X, b))
	case Star:
		p.DrawLine(geom.Pt(l, c.Y), geom.Pt(rt, c.Y))
		p.DrawLine(geom.Pt(c.X, t), geom.Pt(c.X, b))
		// diagonals end on the inscribed ellipse
		dx := r.Width() / 2 * (1 - math.Sqrt2/2)
		dy := r.Height() / 2 * (1 - math.Sqrt2/2)
		d := r.Adjusted(dx, dy, -dx, -dy)
		p.DrawLine(d.TopLeft(), d.BottomRight())
		p.DrawLine(d.TopRight(), d.BottomLeft())
	case Hexagon:
		q := r.Height() / 4
		p.DrawPolygon([]geom.Point{{c.X, t}, {rt, t + q}, {rt, b - q}, {c.X, b}, {l, b - q}, {l, t + q}})
	}
}

// DrawSymbols draws sym centered on the pixel position of each sample
// from..to of data, which must be a valid range. The symbol's pen and
// brush are set on the painter; callers wrap the call in Save / Restore.
func DrawSymbols(p paint.Painter, sym *Symbol, xMap, yMap plot.ScaleMap, data plot.XYer, from, to int) {
	if sym == nil || sym.Style == NoSymbol {
		return
	}
	p.SetBrush(sym.Brush)
	p.SetPen(sym.Pen)
	for i := from; i <= to; i++ {
		pt := plot.TransformXY(data, i, xMap, yMap)
		if !pt.IsFinite() {
			continue
		}
		sym.Draw(p, geom.FromCenter(pt, sym.Size))
	}
}
