// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image"
	"math"

	"cogentcore.org/plotcurve/base/iox/imagex"
	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/paint"
	"cogentcore.org/plotcurve/paint/renderers/rasterizer"
)

// LegendAttributes select what the legend identifier of a [Curve]
// shows. With none set, the identifier is a swatch in the curve color.
type LegendAttributes int32 //enums:enum

const (
	// LegendShowLine draws a horizontal line with the curve pen.
	LegendShowLine LegendAttributes = iota

	// LegendShowSymbol draws the curve symbol.
	LegendShowSymbol

	// LegendShowBrush fills the swatch with the curve brush.
	LegendShowBrush
)

// DrawLegendIdentifier draws the icon representing the curve in a
// legend into rect. Layers are drawn in order: swatch, line, symbol.
func (c *Curve) DrawLegendIdentifier(p paint.Painter, rect geom.Rect) {
	if p == nil || rect.IsEmpty() {
		return
	}
	dim := min(rect.Width(), rect.Height())
	swatch := geom.FromCenter(rect.Center(), geom.Sz(dim, dim))

	if c.LegendAttributes.IsZero() {
		brush := c.Brush
		if !brush.IsVisible() {
			switch {
			case c.Style != NoCurve:
				brush = paint.NewBrush(c.Pen.Color)
			case c.symbol.Style != NoSymbol:
				brush = paint.NewBrush(c.symbol.Pen.Color)
			}
		}
		c.fillSwatch(p, swatch, brush)
	}
	if c.LegendAttributes.Has(LegendShowBrush) && c.Brush.IsVisible() {
		c.fillSwatch(p, swatch, c.Brush)
	}
	if c.LegendAttributes.Has(LegendShowLine) && c.Pen.IsVisible() {
		cy := rect.Center().Y
		p.Save()
		p.SetPen(c.Pen)
		p.DrawLine(geom.Pt(rect.Min.X, cy), geom.Pt(rect.Max.X-1, cy))
		p.Restore()
	}
	if c.LegendAttributes.Has(LegendShowSymbol) && c.symbol.Style != NoSymbol {
		sz := fitSize(c.symbol.Size, rect.Size())
		p.Save()
		p.SetBrush(c.symbol.Brush)
		p.SetPen(c.symbol.Pen)
		c.symbol.Draw(p, geom.FromCenter(rect.Center(), sz))
		p.Restore()
	}
}

// fillSwatch fills r with brush, taking a missing color from the pen.
func (c *Curve) fillSwatch(p paint.Painter, r geom.Rect, brush paint.Brush) {
	if !brush.IsVisible() {
		return
	}
	if !brush.HasColor() {
		brush = brush.WithColor(c.Pen.Color)
	}
	if brush.HasColor() {
		p.FillRect(r, brush)
	}
}

// fitSize scales sz down to fit within bounds, keeping its aspect
// ratio. Sizes that already fit are returned unchanged.
func fitSize(sz, bounds geom.Size) geom.Size {
	if sz.Width > bounds.Width && sz.Width > 0 {
		ratio := sz.Width / bounds.Width
		sz = geom.Sz(bounds.Width, math.Round(sz.Height/ratio))
	}
	if sz.Height > bounds.Height && sz.Height > 0 {
		ratio := sz.Height / bounds.Height
		sz = geom.Sz(math.Round(sz.Width/ratio), bounds.Height)
	}
	return sz
}

// LegendIcon renders the legend identifier into a new transparent
// image of the given size.
func (c *Curve) LegendIcon(size image.Point) *image.RGBA {
	rp := rasterizer.New(size, nil)
	c.DrawLegendIdentifier(rp, rp.Window())
	return rp.Image
}

// SaveLegendIcon renders the legend identifier at the given size and
// saves it to filename, in the image format named by its extension.
func (c *Curve) SaveLegendIcon(filename string, size image.Point) error {
	return imagex.Save(c.LegendIcon(size), filename)
}
