// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgrender provides a [paint.Painter] that writes SVG elements
// directly using github.com/ajstarks/svgo.
package svgrender

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/paint"
	svg "github.com/ajstarks/svgo/float"
)

// Painter writes SVG to the underlying writer. Call [Painter.End]
// when done.
type Painter struct {
	paint.State

	// SVG is the svgo writer.
	SVG *svg.SVG

	// Size is the document size in pixels.
	Size geom.Size

	clipID int
	inClip bool
}

var _ paint.Painter = (*Painter)(nil)

// New starts an SVG document of the given pixel size on w.
func New(w io.Writer, width, height float64) *Painter {
	s := svg.New(w)
	s.Start(width, height)
	return &Painter{State: paint.NewState(), SVG: s, Size: geom.Sz(width, height)}
}

// End closes any open clip group and the document.
func (sp *Painter) End() {
	sp.endClip()
	sp.SVG.End()
}

// Window returns the document bounds.
func (sp *Painter) Window() geom.Rect {
	return geom.XYWH(0, 0, sp.Size.Width, sp.Size.Height)
}

// Restore restores state, re-emitting the clip group if the clip changed.
func (sp *Painter) Restore() {
	old, _ := sp.ClipRect()
	sp.State.Restore()
	if nw, _ := sp.ClipRect(); nw != old {
		sp.applyClip()
	}
}

// SetClipRect starts a new clip group for subsequent elements.
func (sp *Painter) SetClipRect(r geom.Rect) {
	sp.State.SetClipRect(r)
	sp.applyClip()
}

func (sp *Painter) applyClip() {
	sp.endClip()
	r, ok := sp.ClipRect()
	if !ok {
		return
	}
	sp.clipID++
	id := fmt.Sprintf("clip%d", sp.clipID)
	sp.SVG.ClipPath(`id="` + id + `"`)
	sp.SVG.Rect(r.Min.X, r.Min.Y, r.Width(), r.Height())
	sp.SVG.ClipEnd()
	sp.SVG.Group(`clip-path="url(#` + id + `)"`)
	sp.inClip = true
}

func (sp *Painter) endClip() {
	if sp.inClip {
		sp.SVG.Gend()
		sp.inClip = false
	}
}

func coords(pts []geom.Point) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = pt.X, pt.Y
	}
	return
}

// strokeStyle returns the style for the current pen.
func (sp *Painter) strokeStyle() string {
	pen := sp.Pen()
	if !pen.IsVisible() {
		return "stroke:none"
	}
	w := pen.WidthDots(1)
	s := fmt.Sprintf("stroke:%s;stroke-width:%g", paint.HexString(pen.Color), w)
	if ds := pen.DashPattern(w); len(ds) > 0 {
		strs := make([]string, len(ds))
		for i, d := range ds {
			strs[i] = fmt.Sprintf("%g", d)
		}
		s += ";stroke-dasharray:" + strings.Join(strs, ",")
	}
	return s
}

func fillStyle(brush paint.Brush) string {
	if !brush.IsVisible() || brush.Color == nil {
		return "fill:none"
	}
	return "fill:" + paint.HexString(brush.Color)
}

func (sp *Painter) DrawLine(p1, p2 geom.Point) {
	sp.SVG.Line(p1.X, p1.Y, p2.X, p2.Y, sp.strokeStyle())
}

func (sp *Painter) DrawPoint(pt geom.Point) {
	pen := sp.Pen()
	if !pen.IsVisible() {
		return
	}
	w := max(1, pen.WidthDots(1))
	sp.SVG.Rect(pt.X-w/2, pt.Y-w/2, w, w, fillStyle(paint.NewBrush(pen.Color)))
}

func (sp *Painter) DrawPolyline(pts []geom.Point) {
	if len(pts) < 2 {
		return
	}
	xs, ys := coords(pts)
	sp.SVG.Polyline(xs, ys, "fill:none;"+sp.strokeStyle())
}

func (sp *Painter) DrawPolygon(pts []geom.Point) {
	if len(pts) < 2 {
		return
	}
	xs, ys := coords(pts)
	sp.SVG.Polygon(xs, ys, fillStyle(sp.Brush())+";"+sp.strokeStyle())
}

func (sp *Painter) DrawRect(r geom.Rect) {
	sp.SVG.Rect(r.Min.X, r.Min.Y, r.Width(), r.Height(), fillStyle(sp.Brush())+";"+sp.strokeStyle())
}

func (sp *Painter) DrawEllipse(r geom.Rect) {
	c := r.Center()
	sp.SVG.Ellipse(c.X, c.Y, r.Width()/2, r.Height()/2, fillStyle(sp.Brush())+";"+sp.strokeStyle())
}

func (sp *Painter) FillRect(r geom.Rect, brush paint.Brush) {
	sp.SVG.Rect(r.Min.X, r.Min.Y, r.Width(), r.Height(), fillStyle(brush)+";stroke:none")
}
