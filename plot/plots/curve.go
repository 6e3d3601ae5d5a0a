// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots provides the plot items: [Curve] renders a series as
// lines, sticks, steps or dots with optional fill and symbols, and
// [ColumnSymbol] renders the boxes of bar and histogram plots.
package plots

import (
	"math"

	"cogentcore.org/plotcurve/base/bitflag"
	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/paint"
	"cogentcore.org/plotcurve/plot"
	"cogentcore.org/plotcurve/plot/fit"
)

// CurveStyles determine how the samples of a [Curve] are connected.
type CurveStyles int32 //enums:enum

const (
	// NoCurve draws no body; symbols are still drawn.
	NoCurve CurveStyles = iota

	// Lines connects the samples with a polyline.
	Lines

	// Sticks draws a line from the baseline to each sample.
	Sticks

	// Steps connects the samples with a staircase.
	Steps

	// Dots draws a point at each sample.
	Dots
)

// CurveAttributes tweak how a [Curve] builds its geometry.
type CurveAttributes int32 //enums:enum

const (
	// Fitted runs the curve fitter on the Lines polyline before painting.
	Fitted CurveAttributes = iota

	// Inverted flips which leg of each step is drawn first.
	Inverted
)

// PaintAttributes tweak how a [Curve] is painted.
type PaintAttributes int32 //enums:enum

const (
	// ClipPolygons clips the generated geometry against the clip rect
	// before stroking or filling.
	ClipPolygons PaintAttributes = iota
)

// Curve renders a series of samples. The zero value is not usable;
// use [NewCurve].
//
// A Curve owns its series, symbol and fitter: the setters replace the
// previous value. Properties must not be changed during a Render call.
type Curve struct {

	// Title names the curve in legends.
	Title string

	// Style is the curve style.
	Style CurveStyles

	// Orientation determines the baseline axis of sticks and fills,
	// and the natural direction of steps.
	Orientation plot.Orientation

	// Pen strokes the curve body.
	Pen paint.Pen

	// Brush fills the area between the curve and the baseline when
	// visible. A nil brush color uses the pen color.
	Brush paint.Brush

	// Baseline is the data value sticks are drawn from and fills are
	// closed against: a y value for Vertical curves, an x value for
	// Horizontal ones.
	Baseline float64

	// Attributes are the curve attributes.
	Attributes bitflag.Bits[CurveAttributes]

	// PaintAttributes are the paint attributes.
	PaintAttributes bitflag.Bits[PaintAttributes]

	// LegendAttributes select what the legend identifier shows.
	LegendAttributes bitflag.Bits[LegendAttributes]

	data   plot.XYer
	symbol *Symbol
	fitter plot.Fitter
}

// NewCurve returns a Lines curve over an owned copy of data, drawn
// with a black hairline, clipped, with a spline fitter installed
// (used when [Fitted] is set).
func NewCurve(data plot.XYer) (*Curve, error) {
	c := newCurve()
	if data != nil {
		if err := c.SetSamples(data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func newCurve() *Curve {
	c := &Curve{
		Style:       Lines,
		Orientation: plot.Vertical,
		Pen:         paint.NewPen(paint.Black, 0),
		data:        plot.XYs{},
		symbol:      &Symbol{},
		fitter:      fit.NewSplineFitter(),
	}
	c.PaintAttributes.Set(ClipPolygons)
	return c
}

// Styler calls f on the curve and returns it, for use in chained
// construction.
func (c *Curve) Styler(f func(c *Curve)) *Curve {
	f(c)
	return c
}

// SetSamples replaces the series with an owned copy of data.
func (c *Curve) SetSamples(data plot.XYer) error {
	xys, err := plot.CopyXYs(data)
	if err != nil {
		return err
	}
	c.data = xys
	return nil
}

// SetArraySamples replaces the series with owned copies of xs and ys,
// combined by index. Extra values of the longer slice are ignored.
func (c *Curve) SetArraySamples(xs, ys []float64) {
	c.data = plot.NewArrayXYs(xs, ys)
}

// SetRawSamples replaces the series with one that refers to xs and ys
// directly. The caller keeps them alive and unmodified while the curve
// is rendered.
func (c *Curve) SetRawSamples(xs, ys []float64) {
	c.data = plot.NewRawXYs(xs, ys)
}

// SetData replaces the series with data itself, without copying.
// A nil data empties the curve.
func (c *Curve) SetData(data plot.XYer) {
	if data == nil {
		data = plot.XYs{}
	}
	c.data = data
}

// Data returns the series.
func (c *Curve) Data() plot.XYer { return c.data }

// DataSize returns the number of samples.
func (c *Curve) DataSize() int { return c.data.Len() }

// Sample returns sample i.
func (c *Curve) Sample(i int) plot.XY {
	x, y := c.data.XY(i)
	return plot.XY{X: x, Y: y}
}

// BoundingRect returns the bounding rectangle of the samples in data
// coordinates; it is not valid for an empty curve.
func (c *Curve) BoundingRect() geom.Rect {
	return plot.BoundingRect(c.data)
}

// SetSymbol replaces the symbol with a copy of sym. A nil sym removes
// the symbol.
func (c *Curve) SetSymbol(sym *Symbol) {
	if sym == nil {
		c.symbol = &Symbol{}
		return
	}
	c.symbol = sym.Clone()
}

// Symbol returns the curve symbol, never nil. Its Style is NoSymbol
// when the curve has none.
func (c *Curve) Symbol() *Symbol { return c.symbol }

// SetCurveFitter replaces the fitter. A nil fitter disables fitting.
func (c *Curve) SetCurveFitter(f plot.Fitter) { c.fitter = f }

// CurveFitter returns the fitter, nil if fitting is disabled.
func (c *Curve) CurveFitter() plot.Fitter { return c.fitter }

// Render paints samples from..to (inclusive) of the curve body and then
// its symbols. A negative to means the last sample; the range is
// clamped to the series. Geometry is clipped to canvas, or to the
// painter window when canvas is empty. Nothing is drawn for a nil
// painter or map, or an empty series.
func (c *Curve) Render(p paint.Painter, xMap, yMap plot.ScaleMap, canvas geom.Rect, from, to int) {
	n := c.DataSize()
	if p == nil || xMap == nil || yMap == nil || n <= 0 {
		return
	}
	if to < 0 {
		to = n - 1
	}
	if plot.VerifyRange(n, &from, &to) <= 0 {
		return
	}
	clip := canvas
	if clip.IsEmpty() {
		clip = p.Window()
	}

	p.Save()
	p.SetPen(c.Pen)
	c.drawCurve(p, xMap, yMap, clip, from, to)
	p.Restore()

	if c.symbol.Style != NoSymbol {
		p.Save()
		DrawSymbols(p, c.symbol, xMap, yMap, c.data, from, to)
		p.Restore()
	}
}

func (c *Curve) drawCurve(p paint.Painter, xMap, yMap plot.ScaleMap, clip geom.Rect, from, to int) {
	switch c.Style {
	case Lines:
		if c.Attributes.Has(Fitted) {
			from, to = 0, c.DataSize()-1
		}
		c.drawLines(p, xMap, yMap, clip, from, to)
	case Sticks:
		c.drawSticks(p, xMap, yMap, from, to)
	case Steps:
		c.drawSteps(p, xMap, yMap, clip, from, to)
	case Dots:
		c.drawDots(p, xMap, yMap, clip, from, to)
	}
}

func (c *Curve) transform(xMap, yMap plot.ScaleMap, from, to int) []geom.Point {
	pts := make([]geom.Point, 0, to-from+1)
	for i := from; i <= to; i++ {
		pts = append(pts, plot.TransformXY(c.data, i, xMap, yMap))
	}
	return pts
}

// finiteRuns splits pts at non-finite points, which leave gaps in
// the curve, into runs of finite points.
func finiteRuns(pts []geom.Point) [][]geom.Point {
	var runs [][]geom.Point
	start := -1
	for i, pt := range pts {
		switch {
		case pt.IsFinite() && start < 0:
			start = i
		case !pt.IsFinite() && start >= 0:
			runs = append(runs, pts[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, pts[start:])
	}
	return runs
}

func (c *Curve) clipping() bool {
	return c.PaintAttributes.Has(ClipPolygons)
}

// stroke strokes the open polyline pts, clipped when requested.
// A single point is not a line and draws nothing.
func (c *Curve) stroke(p paint.Painter, clip geom.Rect, pts []geom.Point) {
	if len(pts) < 2 {
		return
	}
	if !c.clipping() {
		p.DrawPolyline(pts)
		return
	}
	for _, piece := range plot.ClipPolyline(clip, pts) {
		p.DrawPolyline(piece)
	}
}

func (c *Curve) drawLines(p paint.Painter, xMap, yMap plot.ScaleMap, clip geom.Rect, from, to int) {
	if to-from+1 <= 0 {
		return
	}
	for _, pts := range finiteRuns(c.transform(xMap, yMap, from, to)) {
		if c.Attributes.Has(Fitted) && c.fitter != nil {
			pts = c.fitter.FitCurve(pts)
		}
		c.stroke(p, clip, pts)
		c.fillCurve(p, xMap, yMap, clip, pts)
	}
}

func (c *Curve) drawSticks(p paint.Painter, xMap, yMap plot.ScaleMap, from, to int) {
	x0 := xMap.Transform(c.Baseline)
	y0 := yMap.Transform(c.Baseline)
	for i := from; i <= to; i++ {
		pt := plot.TransformXY(c.data, i, xMap, yMap)
		if !pt.IsFinite() {
			continue
		}
		if c.Orientation == plot.Horizontal {
			p.DrawLine(geom.Pt(x0, pt.Y), pt)
		} else {
			p.DrawLine(geom.Pt(pt.X, y0), pt)
		}
	}
}

// StepPoints returns the staircase polyline through samples from..to:
// 2n-1 points for n samples.
func (c *Curve) StepPoints(xMap, yMap plot.ScaleMap, from, to int) []geom.Point {
	return c.steps(c.transform(xMap, yMap, from, to))
}

// steps returns the staircase polyline through the pixel points src.
func (c *Curve) steps(src []geom.Point) []geom.Point {
	inverted := c.Orientation == plot.Vertical
	if c.Attributes.Has(Inverted) {
		inverted = !inverted
	}
	pts := make([]geom.Point, 0, max(2*len(src)-1, 0))
	for _, pt := range src {
		if len(pts) > 0 {
			p0 := pts[len(pts)-1]
			if inverted {
				pts = append(pts, geom.Pt(p0.X, pt.Y))
			} else {
				pts = append(pts, geom.Pt(pt.X, p0.Y))
			}
		}
		pts = append(pts, pt)
	}
	return pts
}

func (c *Curve) drawSteps(p paint.Painter, xMap, yMap plot.ScaleMap, clip geom.Rect, from, to int) {
	for _, run := range finiteRuns(c.transform(xMap, yMap, from, to)) {
		pts := c.steps(run)
		c.stroke(p, clip, pts)
		c.fillCurve(p, xMap, yMap, clip, pts)
	}
}

func (c *Curve) drawDots(p paint.Painter, xMap, yMap plot.ScaleMap, clip geom.Rect, from, to int) {
	if clip.IsEmpty() {
		return
	}
	doFill := c.Brush.IsVisible()
	var pts []geom.Point
	for i := from; i <= to; i++ {
		pt := plot.TransformXY(c.data, i, xMap, yMap)
		if !pt.IsFinite() {
			continue
		}
		if doFill {
			pts = append(pts, pt)
		}
		if c.clipping() && !clip.Contains(pt) {
			continue
		}
		p.DrawPoint(pt)
	}
	if doFill {
		c.fillCurve(p, xMap, yMap, clip, pts)
	}
}

// fillCurve fills the area between pts and the baseline with the brush.
func (c *Curve) fillCurve(p paint.Painter, xMap, yMap plot.ScaleMap, clip geom.Rect, pts []geom.Point) {
	if !c.Brush.IsVisible() {
		return
	}
	poly := c.ClosePolyline(xMap, yMap, pts)
	if len(poly) <= 2 {
		return
	}
	if c.clipping() {
		poly = plot.ClipPolygon(clip, poly)
		if len(poly) <= 2 {
			return
		}
	}
	b := c.Brush
	if !b.HasColor() {
		b = b.WithColor(c.Pen.Color)
	}
	p.Save()
	p.SetPen(paint.Pen{Style: paint.NoPen})
	p.SetBrush(b)
	p.DrawPolygon(poly)
	p.Restore()
}

// ClosePolyline returns pts closed against the baseline, by appending
// the projections of the last and first points onto it. Fewer than two
// points are returned unchanged. pts itself is not modified.
func (c *Curve) ClosePolyline(xMap, yMap plot.ScaleMap, pts []geom.Point) []geom.Point {
	if len(pts) < 2 {
		return pts
	}
	first, last := pts[0], pts[len(pts)-1]
	res := make([]geom.Point, len(pts), len(pts)+2)
	copy(res, pts)
	if c.Orientation == plot.Vertical {
		refY := yMap.Transform(c.Baseline)
		return append(res, geom.Pt(last.X, refY), geom.Pt(first.X, refY))
	}
	refX := xMap.Transform(c.Baseline)
	return append(res, geom.Pt(refX, last.Y), geom.Pt(refX, first.Y))
}

// ClosestPoint returns the index of the sample whose pixel position is
// nearest pos, and its distance from pos. ok is false for an empty
// series, a series without finite samples, or a nil map. Every sample
// is visited.
func (c *Curve) ClosestPoint(pos geom.Point, xMap, yMap plot.ScaleMap) (index int, dist float64, ok bool) {
	n := c.DataSize()
	if n <= 0 || xMap == nil || yMap == nil {
		return -1, 0, false
	}
	index = -1
	dmin := 0.0
	for i := range n {
		pt := plot.TransformXY(c.data, i, xMap, yMap)
		if !pt.IsFinite() {
			continue
		}
		d := pt.DistanceSquared(pos)
		if index < 0 || d < dmin {
			index, dmin = i, d
		}
	}
	if index < 0 {
		return -1, 0, false
	}
	return index, math.Sqrt(dmin), true
}
