// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rasterizer provides a [paint.Painter] that rasterizes directly
// into an [image.RGBA] using golang.org/x/image/vector. Lines are stroked
// as quads with square joins, which is adequate for plot curves.
package rasterizer

import (
	"image"
	"image/color"
	"image/draw"
	"slices"

	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/paint"
	"github.com/chewxy/math32"
	"golang.org/x/image/vector"
)

// Painter rasterizes primitives into Image.
type Painter struct {
	paint.State

	// Image is the image we are rendering to.
	Image *image.RGBA

	// Scale is the device scale applied to non-cosmetic pen widths.
	Scale float64

	ras *vector.Rasterizer
}

var _ paint.Painter = (*Painter)(nil)

// New returns a new Painter rendering to given image,
// or to a new image of the given size if img is nil.
func New(size image.Point, img *image.RGBA) *Painter {
	if img == nil {
		img = image.NewRGBA(image.Rectangle{Max: size})
	}
	return &Painter{State: paint.NewState(), Image: img, Scale: 1, ras: &vector.Rasterizer{}}
}

// Window returns the image bounds.
func (rp *Painter) Window() geom.Rect {
	return geom.FromImage(rp.Image.Bounds())
}

// Fill fills the whole image with the given color.
func (rp *Painter) Fill(c color.Color) {
	draw.Draw(rp.Image, rp.Image.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// target returns the sub image that drawing is clipped to.
func (rp *Painter) target() *image.RGBA {
	b := rp.Image.Bounds()
	if clip, ok := rp.ClipRect(); ok {
		b = b.Intersect(clip.ToImage())
	}
	return rp.Image.SubImage(b).(*image.RGBA)
}

// begin resets the rasterizer for the target and returns the target,
// or nil if there is nothing to draw into.
func (rp *Painter) begin() *image.RGBA {
	dst := rp.target()
	b := dst.Bounds()
	if b.Empty() {
		return nil
	}
	rp.ras.Reset(b.Dx(), b.Dy())
	rp.ras.DrawOp = draw.Over
	return dst
}

func (rp *Painter) draw(dst *image.RGBA, src image.Image) {
	rp.ras.Draw(dst, dst.Bounds(), src, dst.Bounds().Min)
}

// addPolygon adds a closed polygon to the rasterizer, relative to dst.
// Non-finite vertices are dropped.
func (rp *Painter) addPolygon(dst *image.RGBA, pts []geom.Point) {
	pts = slices.DeleteFunc(slices.Clone(pts), func(pt geom.Point) bool { return !pt.IsFinite() })
	if len(pts) < 3 {
		return
	}
	off := dst.Bounds().Min
	ox, oy := float32(off.X), float32(off.Y)
	rp.ras.MoveTo(float32(pts[0].X)-ox, float32(pts[0].Y)-oy)
	for _, pt := range pts[1:] {
		rp.ras.LineTo(float32(pt.X)-ox, float32(pt.Y)-oy)
	}
	rp.ras.ClosePath()
}

// addSegment adds the quad covering a stroke of width w from a to b,
// extended by w/2 at both ends so consecutive segments join squarely.
func (rp *Painter) addSegment(dst *image.RGBA, a, b geom.Point, w float32) {
	off := dst.Bounds().Min
	ax, ay := float32(a.X)-float32(off.X), float32(a.Y)-float32(off.Y)
	bx, by := float32(b.X)-float32(off.X), float32(b.Y)-float32(off.Y)
	dx, dy := bx-ax, by-ay
	l := math32.Hypot(dx, dy)
	hw := w / 2
	if l == 0 {
		dx, dy = 1, 0
	} else {
		dx, dy = dx/l, dy/l
	}
	// tangent and normal scaled to half width
	tx, ty := dx*hw, dy*hw
	nx, ny := -ty, tx
	ax, ay = ax-tx, ay-ty
	bx, by = bx+tx, by+ty
	rp.ras.MoveTo(ax+nx, ay+ny)
	rp.ras.LineTo(bx+nx, by+ny)
	rp.ras.LineTo(bx-nx, by-ny)
	rp.ras.LineTo(ax-nx, ay-ny)
	rp.ras.ClosePath()
}

// stroke rasterizes an open or closed polyline with the current pen.
func (rp *Painter) stroke(pts []geom.Point, closed bool) {
	pen := rp.Pen()
	if !pen.IsVisible() || len(pts) < 2 {
		return
	}
	dst := rp.begin()
	if dst == nil {
		return
	}
	w := pen.WidthDots(rp.Scale)
	if closed {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	dashes := pen.DashPattern(w)
	for _, seg := range dashSegments(pts, dashes) {
		if !seg[0].IsFinite() || !seg[1].IsFinite() {
			continue
		}
		rp.addSegment(dst, seg[0], seg[1], float32(w))
	}
	rp.draw(dst, image.NewUniform(pen.Color))
}

// dashSegments splits a polyline into the segments that are "on"
// for the given dash pattern; a nil pattern returns every segment.
func dashSegments(pts []geom.Point, dashes []float64) [][2]geom.Point {
	var segs [][2]geom.Point
	if len(dashes) == 0 {
		for i := 1; i < len(pts); i++ {
			segs = append(segs, [2]geom.Point{pts[i-1], pts[i]})
		}
		return segs
	}
	di := 0
	left := dashes[0]
	on := true
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		l := a.Distance(b)
		pos := 0.0
		for l-pos > 1e-9 {
			step := min(left, l-pos)
			if on && step > 0 {
				t0, t1 := pos/l, (pos+step)/l
				segs = append(segs, [2]geom.Point{lerp(a, b, t0), lerp(a, b, t1)})
			}
			pos += step
			left -= step
			if left <= 0 {
				di = (di + 1) % len(dashes)
				left = dashes[di]
				on = !on
				if left <= 0 {
					left = 1
				}
			}
		}
	}
	return segs
}

func lerp(a, b geom.Point, t float64) geom.Point {
	return geom.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// fill rasterizes a polygon with the given brush.
func (rp *Painter) fill(pts []geom.Point, brush paint.Brush) {
	if !brush.IsVisible() || brush.Color == nil || len(pts) < 3 {
		return
	}
	dst := rp.begin()
	if dst == nil {
		return
	}
	rp.addPolygon(dst, pts)
	rp.draw(dst, paint.PatternImage(brush))
}

func (rp *Painter) DrawLine(p1, p2 geom.Point) {
	rp.stroke([]geom.Point{p1, p2}, false)
}

// DrawPoint fills a square of the pen width centered on pt.
func (rp *Painter) DrawPoint(pt geom.Point) {
	pen := rp.Pen()
	if !pen.IsVisible() {
		return
	}
	w := pen.WidthDots(rp.Scale)
	rp.fill(geom.FromCenter(pt, geom.Sz(w, w)).Polygon(), paint.NewBrush(pen.Color))
}

func (rp *Painter) DrawPolyline(pts []geom.Point) {
	rp.stroke(pts, false)
}

func (rp *Painter) DrawPolygon(pts []geom.Point) {
	rp.fill(pts, rp.Brush())
	rp.stroke(pts, true)
}

func (rp *Painter) DrawRect(r geom.Rect) {
	rp.DrawPolygon(r.Polygon())
}

func (rp *Painter) DrawEllipse(r geom.Rect) {
	rp.DrawPolygon(r.EllipsePoints(ellipseSegments(r)))
}

func (rp *Painter) FillRect(r geom.Rect, brush paint.Brush) {
	rp.fill(r.Polygon(), brush)
}

// ellipseSegments returns the number of polygon segments used to
// approximate an ellipse of the given bounds.
func ellipseSegments(r geom.Rect) int {
	return max(12, min(128, int(r.Width()+r.Height())))
}
