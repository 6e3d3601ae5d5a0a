// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vgrender provides a [paint.Painter] that draws onto a gonum
// [vg.Canvas], so plot items can be written as PNG, SVG or PDF
// through the vgimg, vgsvg and vgpdf backends. Pixel coordinates have
// a top-left origin; vg has a bottom-left origin, so y is flipped.
package vgrender

import (
	"image/color"
	"io"

	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/paint"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Painter draws onto Canvas.
type Painter struct {
	paint.State

	// Canvas is the vg canvas drawn onto.
	Canvas vg.Canvas

	// Size is the size of the canvas in pixels, one vg point per pixel.
	Size geom.Size

	// Scale is the device scale applied to non-cosmetic pen widths.
	Scale float64
}

var _ paint.Painter = (*Painter)(nil)

// New returns a Painter drawing onto the given canvas of the given size.
func New(c vg.Canvas, size geom.Size) *Painter {
	return &Painter{State: paint.NewState(), Canvas: c, Size: size, Scale: 1}
}

// NewImage returns a Painter drawing onto a new image canvas of the
// given pixel size, and the canvas for encoding.
func NewImage(width, height int, bg color.Color) (*Painter, *vgimg.Canvas) {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width), vg.Length(height)),
		vgimg.UseDPI(72),
		vgimg.UseBackgroundColor(bg),
	)
	return New(c, geom.Sz(float64(width), float64(height))), c
}

// WritePNG encodes an image canvas as PNG.
func WritePNG(c *vgimg.Canvas, w io.Writer) error {
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// NewSVG returns a Painter drawing onto a new SVG canvas of the
// given pixel size, and the canvas for encoding with WriteTo.
func NewSVG(width, height int) (*Painter, *vgsvg.Canvas) {
	c := vgsvg.New(vg.Length(width), vg.Length(height))
	return New(c, geom.Sz(float64(width), float64(height))), c
}

// Window returns the canvas bounds in pixels.
func (vp *Painter) Window() geom.Rect {
	return geom.XYWH(0, 0, vp.Size.Width, vp.Size.Height)
}

func (vp *Painter) point(pt geom.Point) vg.Point {
	return vg.Point{X: vg.Length(pt.X), Y: vg.Length(vp.Size.Height - pt.Y)}
}

func (vp *Painter) points(pts []geom.Point) []vg.Point {
	vps := make([]vg.Point, len(pts))
	for i, pt := range pts {
		vps[i] = vp.point(pt)
	}
	return vps
}

// clipper returns a draw.Canvas whose rectangle is the current clip,
// in vg coordinates, or false if there is no clipping.
func (vp *Painter) clipper() (draw.Canvas, bool) {
	clip, ok := vp.ClipRect()
	if !ok {
		return draw.Canvas{}, false
	}
	return draw.Canvas{Rectangle: vg.Rectangle{
		Min: vg.Point{X: vg.Length(clip.Min.X), Y: vg.Length(vp.Size.Height - clip.Max.Y)},
		Max: vg.Point{X: vg.Length(clip.Max.X), Y: vg.Length(vp.Size.Height - clip.Min.Y)},
	}}, true
}

// setPen configures the canvas for stroking; false if the pen is not visible.
func (vp *Painter) setPen() bool {
	pen := vp.Pen()
	if !pen.IsVisible() {
		return false
	}
	w := pen.WidthDots(vp.Scale)
	vp.Canvas.SetLineWidth(vg.Length(w))
	var dashes []vg.Length
	for _, d := range pen.DashPattern(w) {
		dashes = append(dashes, vg.Length(d))
	}
	vp.Canvas.SetLineDash(dashes, 0)
	vp.Canvas.SetColor(pen.Color)
	return true
}

func (vp *Painter) strokeLines(lines ...[]vg.Point) {
	if c, ok := vp.clipper(); ok {
		lines = c.ClipLinesXY(lines...)
	}
	for _, ln := range lines {
		if len(ln) < 2 {
			continue
		}
		var p vg.Path
		p.Move(ln[0])
		for _, pt := range ln[1:] {
			p.Line(pt)
		}
		vp.Canvas.Stroke(p)
	}
}

func (vp *Painter) fillPolygon(pts []vg.Point, brush paint.Brush) {
	if !brush.IsVisible() || brush.Color == nil || len(pts) < 3 {
		return
	}
	if c, ok := vp.clipper(); ok {
		pts = c.ClipPolygonXY(pts)
		if len(pts) < 3 {
			return
		}
	}
	var p vg.Path
	p.Move(pts[0])
	for _, pt := range pts[1:] {
		p.Line(pt)
	}
	p.Close()
	vp.Canvas.SetColor(brush.Color)
	vp.Canvas.Fill(p)
}

func (vp *Painter) DrawLine(p1, p2 geom.Point) {
	if vp.setPen() {
		vp.strokeLines([]vg.Point{vp.point(p1), vp.point(p2)})
	}
}

// DrawPoint fills a square of the pen width centered on pt.
func (vp *Painter) DrawPoint(pt geom.Point) {
	pen := vp.Pen()
	if !pen.IsVisible() {
		return
	}
	w := pen.WidthDots(vp.Scale)
	r := geom.FromCenter(pt, geom.Sz(w, w))
	vp.fillPolygon(vp.points(r.Polygon()), paint.NewBrush(pen.Color))
}

func (vp *Painter) DrawPolyline(pts []geom.Point) {
	if len(pts) >= 2 && vp.setPen() {
		vp.strokeLines(vp.points(pts))
	}
}

func (vp *Painter) DrawPolygon(pts []geom.Point) {
	vps := vp.points(pts)
	vp.fillPolygon(vps, vp.Brush())
	if len(vps) >= 2 && vp.setPen() {
		vp.strokeLines(append(vps, vps[0]))
	}
}

func (vp *Painter) DrawRect(r geom.Rect) {
	vp.DrawPolygon(r.Polygon())
}

func (vp *Painter) DrawEllipse(r geom.Rect) {
	vp.DrawPolygon(r.EllipsePoints(max(12, min(128, int(r.Width()+r.Height())))))
}

func (vp *Painter) FillRect(r geom.Rect, brush paint.Brush) {
	vp.fillPolygon(vp.points(r.Polygon()), brush)
}
