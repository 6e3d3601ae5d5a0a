// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"image"
	"math"
	"testing"

	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/geom/minmax"
	"cogentcore.org/plotcurve/paint"
	"cogentcore.org/plotcurve/paint/record"
	"cogentcore.org/plotcurve/paint/renderers/rasterizer"
	"cogentcore.org/plotcurve/plot"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ident  = plot.IdentityMap{}
	window = geom.R(0, 0, 100, 100)
)

func assertPoints(t *testing.T, want, got []geom.Point) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func testCurve(t *testing.T, xys plot.XYs) *Curve {
	t.Helper()
	c, err := NewCurve(xys)
	require.NoError(t, err)
	return c
}

func TestCurveDefaults(t *testing.T) {
	c := testCurve(t, nil)
	assert.Equal(t, Lines, c.Style)
	assert.Equal(t, plot.Vertical, c.Orientation)
	assert.True(t, c.PaintAttributes.Has(ClipPolygons))
	assert.True(t, c.Attributes.IsZero())
	assert.True(t, c.LegendAttributes.IsZero())
	assert.True(t, c.Pen.Equal(paint.NewPen(paint.Black, 0)))
	assert.False(t, c.Brush.IsVisible())
	assert.Equal(t, 0.0, c.Baseline)
	assert.NotNil(t, c.CurveFitter())
	assert.Equal(t, NoSymbol, c.Symbol().Style)
	assert.Equal(t, 0, c.DataSize())
	assert.False(t, c.BoundingRect().IsValid())
}

func TestRenderLines(t *testing.T) {
	c := testCurve(t, plot.XYs{{0, 0}, {1, 2}, {2, 1}})
	rp := record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	require.Len(t, rp.Ops, 1)
	op := rp.Ops[0]
	assert.Equal(t, record.Polyline, op.Kind)
	assert.True(t, op.Pen.Equal(c.Pen))
	assertPoints(t, []geom.Point{{0, 0}, {1, 2}, {2, 1}}, op.Points)
	assert.Empty(t, rp.Stack, "Save / Restore must balance")
}

func TestRenderScaleMaps(t *testing.T) {
	c := testCurve(t, plot.XYs{{0, 0}, {10, 10}})
	xMap := plot.NewLinearMap(minmax.New(0, 10), 0, 100)
	yMap := plot.NewLinearMap(minmax.New(0, 10), 100, 0)
	rp := record.New(window)
	c.Render(rp, xMap, yMap, geom.Rect{}, 0, -1)
	require.Equal(t, 1, rp.Count(record.Polyline))
	assertPoints(t, []geom.Point{{0, 100}, {100, 0}}, rp.Ops[0].Points)
}

func TestRenderRange(t *testing.T) {
	c := testCurve(t, plot.XYs{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}})
	c.PaintAttributes.Clear(ClipPolygons)
	tests := []struct {
		from, to int
		want     []geom.Point
	}{
		{0, -1, []geom.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}},
		{3, 1, []geom.Point{{1, 1}, {2, 2}, {3, 3}}},
		{-5, 1, []geom.Point{{0, 0}, {1, 1}}},
		{3, 100, []geom.Point{{3, 3}, {4, 4}}},
		{9, 9, []geom.Point{{4, 4}}},
	}
	for _, tt := range tests {
		rp := record.New(window)
		c.Render(rp, ident, ident, geom.Rect{}, tt.from, tt.to)
		require.Len(t, rp.Ops, 1, "range [%d, %d]", tt.from, tt.to)
		assertPoints(t, tt.want, rp.Ops[0].Points)
	}
}

func TestRenderNoOps(t *testing.T) {
	c := testCurve(t, nil)
	rp := record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	assert.Empty(t, rp.Ops)

	c = testCurve(t, plot.XYs{{1, 1}, {2, 2}})
	assert.NotPanics(t, func() { c.Render(nil, ident, ident, geom.Rect{}, 0, -1) })
	c.Render(rp, nil, ident, geom.Rect{}, 0, -1)
	assert.Empty(t, rp.Ops)

	c.Style = CurveStyles(99)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	assert.Empty(t, rp.Ops)

	c.Style = NoCurve
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	assert.Empty(t, rp.Ops)
}

func TestRenderFitted(t *testing.T) {
	c := testCurve(t, plot.XYs{{0, 0}, {1, 3}, {2, 1}, {3, 4}, {4, 2}})
	var got []geom.Point
	c.SetCurveFitter(plot.FitterFunc(func(pts []geom.Point) []geom.Point {
		got = append([]geom.Point(nil), pts...)
		return []geom.Point{{0, 0}, {4, 2}}
	}))

	// without Fitted the fitter is not used
	rp := record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 1, 2)
	assert.Nil(t, got)
	assertPoints(t, []geom.Point{{1, 3}, {2, 1}}, rp.Ops[0].Points)

	c.Attributes.Set(Fitted)
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 1, 2)
	assert.Len(t, got, 5, "the fitter always gets the whole series")
	require.Len(t, rp.Ops, 1)
	assertPoints(t, []geom.Point{{0, 0}, {4, 2}}, rp.Ops[0].Points)

	// Fitted without a fitter draws the whole series unfitted
	c.SetCurveFitter(nil)
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 1, 2)
	assert.Len(t, rp.Ops[0].Points, 5)
}

func TestRenderFittedSpline(t *testing.T) {
	c := testCurve(t, plot.XYs{{0, 10}, {10, 50}, {20, 30}, {30, 60}})
	c.Attributes.Set(Fitted)
	rp := record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	require.Len(t, rp.Ops, 1)
	assert.Len(t, rp.Ops[0].Points, 250)
}

func TestRenderClipSplits(t *testing.T) {
	c := testCurve(t, plot.XYs{{50, 50}, {150, 50}, {50, 80}})
	rp := record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	require.Equal(t, 2, rp.Count(record.Polyline))
	assertPoints(t, []geom.Point{{50, 50}, {100, 50}}, rp.Ops[0].Points)
	assertPoints(t, []geom.Point{{100, 65}, {50, 80}}, rp.Ops[1].Points)

	// the canvas argument takes precedence over the window
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.R(0, 0, 200, 200), 0, -1)
	assert.Equal(t, 1, rp.Count(record.Polyline))

	c.PaintAttributes.Clear(ClipPolygons)
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	require.Equal(t, 1, rp.Count(record.Polyline))
	assert.Len(t, rp.Ops[0].Points, 3)
}

func TestRenderSteps(t *testing.T) {
	xys := plot.XYs{{0, 0}, {1, 2}, {2, 1}}
	c := testCurve(t, xys)
	c.Style = Steps
	c.Orientation = plot.Horizontal
	rp := record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	require.Len(t, rp.Ops, 1)
	assertPoints(t, []geom.Point{{0, 0}, {1, 0}, {1, 2}, {2, 2}, {2, 1}}, rp.Ops[0].Points)

	c.Attributes.Set(Inverted)
	assertPoints(t, []geom.Point{{0, 0}, {0, 2}, {1, 2}, {1, 1}, {2, 1}}, c.StepPoints(ident, ident, 0, 2))

	// Vertical inverts the natural direction, and Inverted flips it back
	c.Orientation = plot.Vertical
	assertPoints(t, []geom.Point{{0, 0}, {1, 0}, {1, 2}, {2, 2}, {2, 1}}, c.StepPoints(ident, ident, 0, 2))
	c.Attributes.Clear(Inverted)
	assertPoints(t, []geom.Point{{0, 0}, {0, 2}, {1, 2}, {1, 1}, {2, 1}}, c.StepPoints(ident, ident, 0, 2))
}

func TestStepPointCount(t *testing.T) {
	for n := 1; n <= 12; n++ {
		xys := make(plot.XYs, n)
		for i := range xys {
			xys[i] = plot.XY{X: float64(i), Y: float64(i * i % 7)}
		}
		c := testCurve(t, xys)
		assert.Len(t, c.StepPoints(ident, ident, 0, n-1), 2*n-1, "n = %d", n)
	}
}

func TestRenderSticks(t *testing.T) {
	c := testCurve(t, plot.XYs{{0, 5}})
	c.Style = Sticks
	c.Orientation = plot.Horizontal
	rp := record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	require.Len(t, rp.Ops, 1)
	assert.Equal(t, record.Line, rp.Ops[0].Kind)
	assertPoints(t, []geom.Point{{0, 5}, {0, 5}}, rp.Ops[0].Points)

	c = testCurve(t, plot.XYs{{3, 5}, {6, 7}})
	c.Style = Sticks
	c.Baseline = 1
	c.Orientation = plot.Horizontal
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	require.Len(t, rp.Ops, 2)
	assertPoints(t, []geom.Point{{1, 5}, {3, 5}}, rp.Ops[0].Points)
	assertPoints(t, []geom.Point{{1, 7}, {6, 7}}, rp.Ops[1].Points)

	c.Orientation = plot.Vertical
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	assertPoints(t, []geom.Point{{3, 1}, {3, 5}}, rp.Ops[0].Points)
	assertPoints(t, []geom.Point{{6, 1}, {6, 7}}, rp.Ops[1].Points)
}

func TestRenderDots(t *testing.T) {
	c := testCurve(t, plot.XYs{{10, 10}, {20, 30}, {30, 20}, {200, 20}})
	c.Style = Dots
	c.Pen = paint.NewPen(paint.White, 1)
	rp := record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	assert.Equal(t, 3, rp.Count(record.Point), "points outside the clip rect are skipped")
	assert.Equal(t, 0, rp.Count(record.Polygon))

	c.Brush = paint.Brush{Style: paint.SolidPattern}
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, 2)
	assert.Equal(t, 3, rp.Count(record.Point))
	polys := rp.Filter(record.Polygon)
	require.Len(t, polys, 1)
	assert.False(t, polys[0].Pen.IsVisible())
	assert.True(t, paint.ColorsEqual(paint.White, polys[0].Brush.Color), "fill color falls back to the pen color")
	assertPoints(t, []geom.Point{{10, 10}, {20, 30}, {30, 20}, {30, 0}, {10, 0}}, polys[0].Points)

	// an empty clip rect draws nothing
	rp = record.New(geom.Rect{})
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	assert.Empty(t, rp.Ops)
}

func TestRenderFill(t *testing.T) {
	c := testCurve(t, plot.XYs{{10, 10}, {20, 30}, {30, 20}})
	c.Baseline = 5
	c.Brush = paint.NewBrush(paint.Gray)
	rp := record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	require.Len(t, rp.Ops, 2)
	assert.Equal(t, record.Polyline, rp.Ops[0].Kind, "the curve is stroked before it is filled")
	fill := rp.Ops[1]
	assert.Equal(t, record.Polygon, fill.Kind)
	assert.True(t, fill.Brush.Equal(paint.NewBrush(paint.Gray)))
	assertPoints(t, []geom.Point{{10, 10}, {20, 30}, {30, 20}, {30, 5}, {10, 5}}, fill.Points)

	// a single sample cannot be filled
	c = testCurve(t, plot.XYs{{10, 10}})
	c.Brush = paint.NewBrush(paint.Gray)
	c.PaintAttributes.Clear(ClipPolygons)
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	assert.Equal(t, 0, rp.Count(record.Polygon))
}

func TestClosePolyline(t *testing.T) {
	c := testCurve(t, nil)
	c.Baseline = 2
	assert.Empty(t, c.ClosePolyline(ident, ident, nil))
	one := []geom.Point{{1, 1}}
	assert.Equal(t, one, c.ClosePolyline(ident, ident, one))

	pts := []geom.Point{{1, 4}, {3, 6}, {5, 5}}
	got := c.ClosePolyline(ident, ident, pts)
	assert.Len(t, got, len(pts)+2)
	assertPoints(t, []geom.Point{{1, 4}, {3, 6}, {5, 5}, {5, 2}, {1, 2}}, got)
	assert.Len(t, pts, 3, "input is not modified")

	c.Orientation = plot.Horizontal
	assertPoints(t, []geom.Point{{1, 4}, {3, 6}, {5, 5}, {2, 5}, {2, 4}}, c.ClosePolyline(ident, ident, pts))
}

func TestClosestPoint(t *testing.T) {
	c := testCurve(t, nil)
	_, _, ok := c.ClosestPoint(geom.Pt(1, 1), ident, ident)
	assert.False(t, ok)

	c = testCurve(t, plot.XYs{{3, 4}})
	idx, dist, ok := c.ClosestPoint(geom.Pt(0, 0), ident, ident)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 5.0, dist)

	c = testCurve(t, plot.XYs{{0, 0}, {10, 10}, {20, 0}, {30, 10}})
	xMap := plot.NewLinearMap(minmax.New(0, 30), 0, 300)
	idx, dist, ok = c.ClosestPoint(geom.Pt(190, 3), xMap, ident)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.InDelta(t, 10.44030650891055, dist, 1e-9)

	_, _, ok = c.ClosestPoint(geom.Pt(0, 0), nil, ident)
	assert.False(t, ok)
}

func TestRenderSymbols(t *testing.T) {
	c := testCurve(t, plot.XYs{{10, 10}, {20, 20}})
	sym := NewSymbol(Ellipse, paint.NewBrush(paint.White), paint.NewPen(paint.Gray, 1), geom.Sz(4, 6))
	c.SetSymbol(sym)
	sym.Size = geom.Sz(100, 100)
	assert.Equal(t, geom.Sz(4, 6), c.Symbol().Size, "the curve keeps its own copy")

	rp := record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	require.Len(t, rp.Ops, 3)
	assert.Equal(t, record.Polyline, rp.Ops[0].Kind, "symbols are drawn after the curve")
	assert.Equal(t, geom.R(8, 7, 12, 13), rp.Ops[1].Rect())
	assert.Equal(t, geom.R(18, 17, 22, 23), rp.Ops[2].Rect())
	assert.True(t, rp.Ops[1].Pen.Equal(paint.NewPen(paint.Gray, 1)))
	assert.True(t, rp.Ops[1].Brush.Equal(paint.NewBrush(paint.White)))
	assert.True(t, rp.Pen().Equal(paint.NewPen(paint.Black, 0)), "painter state is restored")

	c.Style = NoCurve
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 1, 1)
	require.Len(t, rp.Ops, 1)
	assert.Equal(t, record.Ellipse, rp.Ops[0].Kind)

	c.SetSymbol(nil)
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	assert.Empty(t, rp.Ops)
}

func TestSymbolShapes(t *testing.T) {
	r := geom.R(0, 0, 10, 20)
	kinds := map[SymbolStyles][]record.Kinds{
		NoSymbol:  nil,
		Ellipse:   {record.Ellipse},
		Rect:      {record.Rect},
		Diamond:   {record.Polygon},
		Triangle:  {record.Polygon},
		DTriangle: {record.Polygon},
		UTriangle: {record.Polygon},
		LTriangle: {record.Polygon},
		RTriangle: {record.Polygon},
		Cross:     {record.Line, record.Line},
		XCross:    {record.Line, record.Line},
		HLine:     {record.Line},
		VLine:     {record.Line},
		Star:      {record.Line, record.Line, record.Line, record.Line},
		Hexagon:   {record.Polygon},
	}
	for _, st := range SymbolStylesValues() {
		rp := record.New(window)
		(&Symbol{Style: st}).Draw(rp, r)
		var got []record.Kinds
		for _, op := range rp.Ops {
			got = append(got, op.Kind)
			for _, pt := range op.Points {
				assert.True(t, r.Contains(pt), "%v: %v outside %v", st, pt, r)
			}
		}
		assert.Equal(t, kinds[st], got, st.String())
	}

	rp := record.New(window)
	(&Symbol{Style: Diamond}).Draw(rp, r)
	assertPoints(t, []geom.Point{{5, 0}, {10, 10}, {5, 20}, {0, 10}}, rp.Ops[0].Points)
}

func TestSetSamplesOwnership(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{3, 4, 5}
	c := testCurve(t, nil)

	c.SetRawSamples(xs, ys)
	assert.Equal(t, plot.Borrowed, plot.OwnershipOf(c.Data()))
	ys[0] = 9
	assert.Equal(t, plot.XY{X: 0, Y: 9}, c.Sample(0))

	c.SetArraySamples(xs, ys[:2])
	assert.Equal(t, 2, c.DataSize())
	ys[0] = 3
	assert.Equal(t, plot.XY{X: 0, Y: 9}, c.Sample(0))
	assert.Equal(t, plot.Owned, plot.OwnershipOf(c.Data()))

	assert.NoError(t, c.SetSamples(plot.NewRawXYs(xs, ys)))
	xs[2] = 100
	assert.Equal(t, plot.XY{X: 2, Y: 5}, c.Sample(2))
	assert.Equal(t, geom.R(0, 3, 2, 5), c.BoundingRect())

	c.SetData(nil)
	assert.Equal(t, 0, c.DataSize())
}

func ExampleCurve_Render() {
	c, _ := NewCurve(plot.XYs{{0, 0}, {1, 2}, {2, 1}})
	c.Style = Steps
	c.Orientation = plot.Horizontal

	rp := record.New(geom.R(0, 0, 10, 10))
	c.Render(rp, plot.IdentityMap{}, plot.IdentityMap{}, geom.Rect{}, 0, -1)
	for _, op := range rp.Ops {
		fmt.Println(op.Kind, op.Points)
	}
	// Output: Polyline [(0, 0) (1, 0) (1, 2) (2, 2) (2, 1)]
}

func TestRenderSinglePoint(t *testing.T) {
	for _, clip := range []bool{true, false} {
		c := testCurve(t, plot.XYs{{10, 10}})
		c.PaintAttributes.SetState(clip, ClipPolygons)
		rp := record.New(window)
		c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
		assert.Empty(t, rp.Ops, "clip = %v", clip)
	}
}

func TestRenderNaNGaps(t *testing.T) {
	nan := math.NaN()
	xys := plot.XYs{{0, 0}, {1, 1}, {2, nan}, {3, 3}, {4, 4}, {nan, 5}}
	c := testCurve(t, xys)
	rp := record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	lines := rp.Filter(record.Polyline)
	require.Len(t, lines, 2)
	assertPoints(t, []geom.Point{{0, 0}, {1, 1}}, lines[0].Points)
	assertPoints(t, []geom.Point{{3, 3}, {4, 4}}, lines[1].Points)

	c.Style = Steps
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	lines = rp.Filter(record.Polyline)
	require.Len(t, lines, 2)
	assertPoints(t, []geom.Point{{0, 0}, {0, 1}, {1, 1}}, lines[0].Points)
	assertPoints(t, []geom.Point{{3, 3}, {3, 4}, {4, 4}}, lines[1].Points)

	c.Style = Dots
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	assert.Equal(t, 4, rp.Count(record.Point))

	c.Style = Sticks
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	assert.Equal(t, 4, rp.Count(record.Line))

	c.Style = NoCurve
	c.SetSymbol(NewSymbol(Rect, paint.NewBrush(paint.White), paint.NewPen(paint.Black, 1), geom.Sz(2, 2)))
	rp = record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	assert.Equal(t, 4, rp.Count(record.Rect))
}

func TestRenderNaNFill(t *testing.T) {
	xys := plot.XYs{{1, 1}, {5, math.NaN()}, {10, 10}, {15, 5}, {18, 12}}
	for _, style := range []CurveStyles{Lines, Steps, Dots} {
		for _, clip := range []bool{true, false} {
			c := testCurve(t, xys)
			c.Style = style
			c.Brush = paint.NewBrush(paint.Gray)
			c.PaintAttributes.SetState(clip, ClipPolygons)
			rp := rasterizer.New(image.Pt(20, 20), nil)
			assert.NotPanics(t, func() {
				c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
			}, "%v clip = %v", style, clip)
		}
	}

	c := testCurve(t, xys)
	c.Brush = paint.NewBrush(paint.Gray)
	rp := record.New(window)
	c.Render(rp, ident, ident, geom.Rect{}, 0, -1)
	polys := rp.Filter(record.Polygon)
	require.Len(t, polys, 1, "only the run after the gap has enough points to fill")
	assertPoints(t, []geom.Point{{10, 10}, {15, 5}, {18, 12}, {18, 0}, {10, 0}}, polys[0].Points)
}

func TestClosestPointNaN(t *testing.T) {
	c := testCurve(t, plot.XYs{{math.NaN(), 0}, {3, 4}})
	idx, dist, ok := c.ClosestPoint(geom.Pt(0, 0), ident, ident)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 5.0, dist)

	c = testCurve(t, plot.XYs{{math.NaN(), math.NaN()}})
	_, _, ok = c.ClosestPoint(geom.Pt(0, 0), ident, ident)
	assert.False(t, ok)
}
