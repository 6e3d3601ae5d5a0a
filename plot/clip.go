// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"cogentcore.org/plotcurve/geom"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func clipCanvas(r geom.Rect) *draw.Canvas {
	return &draw.Canvas{Rectangle: vg.Rectangle{
		Min: vg.Point{X: vg.Length(r.Min.X), Y: vg.Length(r.Min.Y)},
		Max: vg.Point{X: vg.Length(r.Max.X), Y: vg.Length(r.Max.Y)},
	}}
}

func toVG(pts []geom.Point) []vg.Point {
	vps := make([]vg.Point, len(pts))
	for i, pt := range pts {
		vps[i] = vg.Point{X: vg.Length(pt.X), Y: vg.Length(pt.Y)}
	}
	return vps
}

func fromVG(vps []vg.Point) []geom.Point {
	pts := make([]geom.Point, len(vps))
	for i, vp := range vps {
		pts[i] = geom.Point{X: float64(vp.X), Y: float64(vp.Y)}
	}
	return pts
}

// ClipPolyline clips an open polyline against r. The result is the list
// of visible pieces, each with at least two points; a polyline leaving
// and re-entering r is split.
func ClipPolyline(r geom.Rect, pts []geom.Point) [][]geom.Point {
	if len(pts) < 2 || r.IsEmpty() {
		return nil
	}
	lines := clipCanvas(r).ClipLinesXY(toVG(pts))
	res := make([][]geom.Point, 0, len(lines))
	for _, ln := range lines {
		if len(ln) >= 2 {
			res = append(res, fromVG(ln))
		}
	}
	return res
}

// ClipPolygon clips a closed polygon against r, returning the polygon
// of the overlap. The closing edge from the last point to the first
// is implicit.
func ClipPolygon(r geom.Rect, pts []geom.Point) []geom.Point {
	if len(pts) == 0 || r.IsEmpty() {
		return nil
	}
	return fromVG(clipCanvas(r).ClipPolygonXY(toVG(pts)))
}
