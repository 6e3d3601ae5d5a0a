// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the Painter capability that plot items draw
// through, along with the Pen and Brush that describe how primitives
// are stroked and filled. Concrete painters live in paint/record and
// paint/renderers.
package paint

import "cogentcore.org/plotcurve/geom"

// Painter issues drawing primitives in pixel coordinates.
// Plot items never rasterize directly; everything goes through a Painter.
// Implementations are not safe for concurrent use.
type Painter interface {
	// Save pushes the current pen, brush and clip state.
	Save()

	// Restore pops the state pushed by the matching Save.
	Restore()

	// SetPen sets the pen used for lines, points and outlines.
	SetPen(pen Pen)

	// SetBrush sets the brush used for polygon, rect and ellipse interiors.
	SetBrush(brush Brush)

	// Pen returns the current pen.
	Pen() Pen

	// Brush returns the current brush.
	Brush() Brush

	// Window returns the paint viewport in pixel coordinates.
	Window() geom.Rect

	// SetClipRect restricts subsequent drawing to r.
	// An empty rect removes clipping.
	SetClipRect(r geom.Rect)

	// DrawLine strokes a single segment with the current pen.
	DrawLine(p1, p2 geom.Point)

	// DrawPoint draws a single point with the current pen.
	DrawPoint(pt geom.Point)

	// DrawPolyline strokes an open polyline with the current pen.
	DrawPolyline(pts []geom.Point)

	// DrawPolygon fills a closed polygon with the current brush and
	// strokes its outline with the current pen.
	DrawPolygon(pts []geom.Point)

	// DrawRect fills and outlines a rectangle.
	DrawRect(r geom.Rect)

	// DrawEllipse fills and outlines the ellipse inscribed in r.
	DrawEllipse(r geom.Rect)

	// FillRect fills r with the given brush, without an outline,
	// independent of the current brush.
	FillRect(r geom.Rect, brush Brush)
}
