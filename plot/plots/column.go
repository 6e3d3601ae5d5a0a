// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"cogentcore.org/plotcurve/base/bitflag"
	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/paint"
	"cogentcore.org/plotcurve/plot"
)

// ColumnStyles are the styles of a [ColumnSymbol].
type ColumnStyles int32 //enums:enum

const (
	// NoColumn draws nothing.
	NoColumn ColumnStyles = iota

	// Box draws a rectangle with an optional frame.
	Box
)

// FrameStyles are the frames drawn around a Box column.
type FrameStyles int32 //enums:enum

const (
	// NoFrame fills the box without a frame.
	NoFrame FrameStyles = iota

	// Plain draws a single-tone frame in the palette's dark color.
	Plain

	// Raised draws a bevel: light on the top and left,
	// dark on the bottom and right.
	Raised
)

// IntervalBorders mark interval borders that are not part of the interval.
type IntervalBorders int32 //enums:enum

const (
	// ExcludeMinimum excludes the minimum border.
	ExcludeMinimum IntervalBorders = iota

	// ExcludeMaximum excludes the maximum border.
	ExcludeMaximum
)

// Interval is a pixel interval on one axis.
type Interval struct {
	Min, Max float64

	// Borders are the excluded borders. Adjacent columns share a
	// border, which only one of them should draw.
	Borders bitflag.Bits[IntervalBorders]
}

// ColumnDirections give the direction a column grows in.
type ColumnDirections int32 //enums:enum

const (
	LeftToRight ColumnDirections = iota
	RightToLeft
	BottomToTop
	TopToBottom
)

// ColumnRect is the pixel rectangle of a column, given by its intervals.
type ColumnRect struct {
	HInterval Interval
	VInterval Interval
	Direction ColumnDirections
}

// Orientation returns Horizontal for columns growing left or right,
// Vertical otherwise.
func (cr ColumnRect) Orientation() plot.Orientation {
	if cr.Direction == LeftToRight || cr.Direction == RightToLeft {
		return plot.Horizontal
	}
	return plot.Vertical
}

// Rect returns the normalized rectangle spanned by the intervals,
// ignoring border flags.
func (cr ColumnRect) Rect() geom.Rect {
	return geom.R(cr.HInterval.Min, cr.VInterval.Min, cr.HInterval.Max, cr.VInterval.Max)
}

// ColumnSymbol draws the columns of bar charts and histograms.
type ColumnSymbol struct {

	// Style is the column style.
	Style ColumnStyles

	// FrameStyle is the frame drawn around Box columns.
	FrameStyle FrameStyles

	// Palette gives the fill (Window) and frame (Light, Dark) tones.
	Palette paint.Palette

	// LineWidth is the frame width in pixels.
	LineWidth float64

	// Label is an optional text for the column.
	Label string
}

// NewColumnSymbol returns a symbol of the given style with a raised
// frame of width 2 in gray tones.
func NewColumnSymbol(style ColumnStyles) *ColumnSymbol {
	return &ColumnSymbol{
		Style:      style,
		FrameStyle: Raised,
		Palette:    paint.NewPalette(paint.Gray),
		LineWidth:  2,
	}
}

// Equal reports whether two symbols draw identically.
func (cs *ColumnSymbol) Equal(o *ColumnSymbol) bool {
	return cs.Style == o.Style && cs.FrameStyle == o.FrameStyle && cs.LineWidth == o.LineWidth &&
		cs.Label == o.Label && cs.Palette.Equal(o.Palette)
}

// Draw draws the column into cr.
func (cs *ColumnSymbol) Draw(p paint.Painter, cr ColumnRect) {
	if p == nil {
		return
	}
	p.Save()
	defer p.Restore()
	switch cs.Style {
	case Box:
		cs.drawBox(p, cr)
	}
}

// BoxRect returns the rectangle of a Box column, shrunk by a pixel on
// each excluded border.
func (cr ColumnRect) BoxRect() geom.Rect {
	r := cr.Rect()
	if cr.HInterval.Borders.Has(ExcludeMinimum) {
		r = r.Adjusted(1, 0, 0, 0)
	}
	if cr.HInterval.Borders.Has(ExcludeMaximum) {
		r = r.Adjusted(0, 0, -1, 0)
	}
	if cr.VInterval.Borders.Has(ExcludeMinimum) {
		r = r.Adjusted(0, 1, 0, 0)
	}
	if cr.VInterval.Borders.Has(ExcludeMaximum) {
		r = r.Adjusted(0, 0, 0, -1)
	}
	return r
}

func (cs *ColumnSymbol) drawBox(p paint.Painter, cr ColumnRect) {
	r := cr.BoxRect()
	switch cs.FrameStyle {
	case Raised:
		drawPanel(p, r, cs.Palette, cs.LineWidth)
	case Plain:
		drawPlain(p, r, cs.Palette, cs.LineWidth)
	default:
		p.FillRect(r.Adjusted(0, 0, -1, -1), paint.NewBrush(cs.Palette.Window))
	}
}

// drawDegenerate draws a zero width or height rect as a line,
// returning false if r has area.
func drawDegenerate(p paint.Painter, r geom.Rect, c paint.Pen) bool {
	switch {
	case r.Width() == 0:
		p.SetPen(c)
		p.DrawLine(r.TopLeft(), r.BottomLeft())
	case r.Height() == 0:
		p.SetPen(c)
		p.DrawLine(r.TopLeft(), r.TopRight())
	default:
		return false
	}
	return true
}

// clampWidth limits the frame width so the inner rect never inverts.
func clampWidth(r geom.Rect, lw float64) float64 {
	lw = min(lw, r.Height()/2-1, r.Width()/2-1)
	return max(lw, 0)
}

// bevels returns the top-left and bottom-right L shaped polygons
// between outer and inner.
func bevels(outer, inner geom.Rect) (topLeft, bottomRight []geom.Point) {
	topLeft = []geom.Point{
		outer.BottomLeft(), outer.TopLeft(), outer.TopRight(),
		inner.TopRight(), inner.TopLeft(), inner.BottomLeft(),
	}
	bottomRight = []geom.Point{
		outer.TopRight(), outer.BottomRight(), outer.BottomLeft(),
		inner.BottomLeft(), inner.BottomRight(), inner.TopRight(),
	}
	return
}

// drawPlain draws a single-tone frame and fills the interior.
func drawPlain(p paint.Painter, r geom.Rect, pal paint.Palette, lw float64) {
	if lw > 0 {
		if drawDegenerate(p, r, paint.NewPen(pal.Dark, 0)) {
			return
		}
		lw = clampWidth(r, lw)
		outer := r.Adjusted(0, 0, 1, 1)
		p.SetPen(paint.Pen{Style: paint.NoPen})
		p.SetBrush(paint.NewBrush(pal.Dark))
		if lw > 0 {
			tl, br := bevels(outer, outer.Adjusted(lw, lw, -lw, -lw))
			p.DrawPolygon(tl)
			p.DrawPolygon(br)
		}
	}
	fillWindow(p, r, pal, lw)
}

// drawPanel draws a raised bevel and fills the interior.
func drawPanel(p paint.Painter, r geom.Rect, pal paint.Palette, lw float64) {
	if lw > 0 {
		if drawDegenerate(p, r, paint.NewPen(pal.Window, 0)) {
			return
		}
		lw = clampWidth(r, lw)
		outer := r.Adjusted(0, 0, 1, 1)
		p.SetPen(paint.Pen{Style: paint.NoPen})
		if lw > 0 {
			tl, br := bevels(outer, outer.Adjusted(lw, lw, -lw, -lw))
			p.SetBrush(paint.NewBrush(pal.Light))
			p.DrawPolygon(tl)
			p.SetBrush(paint.NewBrush(pal.Dark))
			p.DrawPolygon(br)
		}
	}
	fillWindow(p, r, pal, lw)
}

func fillWindow(p paint.Painter, r geom.Rect, pal paint.Palette, lw float64) {
	lw = max(lw, 0)
	wr := r.Adjusted(lw, lw, -lw+1, -lw+1)
	if wr.IsValid() {
		p.FillRect(wr, paint.NewBrush(pal.Window))
	}
}
