// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgrender

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/paint"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// fakeCanvas records strokes and fills.
type fakeCanvas struct {
	strokes []vg.Path
	fills   []vg.Path
	width   vg.Length
	dashes  []vg.Length
	color   color.Color
}

func (fc *fakeCanvas) SetLineWidth(w vg.Length) { fc.width = w }
func (fc *fakeCanvas) SetLineDash(pat []vg.Length, off vg.Length) { fc.dashes = pat }
func (fc *fakeCanvas) SetColor(c color.Color) { fc.color = c }
func (fc *fakeCanvas) Rotate(rad float64) {}
func (fc *fakeCanvas) Translate(pt vg.Point) {}
func (fc *fakeCanvas) Scale(x, y float64) {}
func (fc *fakeCanvas) Push() {}
func (fc *fakeCanvas) Pop() {}
func (fc *fakeCanvas) Stroke(p vg.Path) { fc.strokes = append(fc.strokes, p) }
func (fc *fakeCanvas) Fill(p vg.Path) { fc.fills = append(fc.fills, p) }
func (fc *fakeCanvas) FillString(f font.Face, pt vg.Point, text string) {}
func (fc *fakeCanvas) DrawImage(rect vg.Rectangle, img image.Image) {}

func TestFlipAndStroke(t *testing.T) {
	fc := &fakeCanvas{}
	vp := New(fc, geom.Sz(100, 50))
	assert.Equal(t, geom.R(0, 0, 100, 50), vp.Window())

	vp.SetPen(paint.Pen{Color: paint.Black, Width: 2, Style: paint.DashLine})
	vp.DrawPolyline([]geom.Point{{0, 0}, {10, 10}, {20, 0}})
	assert.Len(t, fc.strokes, 1)
	p := fc.strokes[0]
	assert.Len(t, p, 3)
	assert.Equal(t, vg.Point{X: 0, Y: 50}, p[0].Pos)
	assert.Equal(t, vg.Point{X: 10, Y: 40}, p[1].Pos)
	assert.Equal(t, vg.Length(2), fc.width)
	assert.Equal(t, []vg.Length{8, 4}, fc.dashes)

	vp.SetPen(paint.Pen{Style: paint.NoPen})
	vp.DrawLine(geom.Pt(0, 0), geom.Pt(1, 1))
	assert.Len(t, fc.strokes, 1)
}

func TestFillAndClip(t *testing.T) {
	fc := &fakeCanvas{}
	vp := New(fc, geom.Sz(100, 100))
	vp.FillRect(geom.R(10, 10, 20, 20), paint.NewBrush(paint.Gray))
	assert.Len(t, fc.fills, 1)
	assert.True(t, paint.ColorsEqual(paint.Gray, fc.color))

	vp.SetClipRect(geom.R(0, 0, 50, 100))
	vp.FillRect(geom.R(60, 10, 80, 20), paint.NewBrush(paint.Gray))
	assert.Len(t, fc.fills, 1)

	vp.SetPen(paint.NewPen(paint.Black, 1))
	vp.DrawLine(geom.Pt(0, 50), geom.Pt(100, 50))
	assert.Len(t, fc.strokes, 1)
	last := fc.strokes[0]
	assert.InDelta(t, 50, float64(last[len(last)-1].Pos.X), 1e-9)
}

func TestSVGOutput(t *testing.T) {
	vp, c := NewSVG(40, 30)
	vp.SetPen(paint.NewPen(paint.Black, 1))
	vp.SetBrush(paint.NewBrush(paint.White))
	vp.DrawEllipse(geom.R(5, 5, 35, 25))
	var b bytes.Buffer
	_, err := c.WriteTo(&b)
	assert.NoError(t, err)
	assert.Contains(t, b.String(), "<svg")
}

func TestPNGOutput(t *testing.T) {
	vp, c := NewImage(20, 20, color.White)
	vp.FillRect(geom.R(0, 0, 10, 10), paint.NewBrush(paint.Black))
	var b bytes.Buffer
	assert.NoError(t, WritePNG(c, &b))
	assert.True(t, bytes.HasPrefix(b.Bytes(), []byte("\x89PNG")))
}
