// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"slices"
	"testing"

	"cogentcore.org/plotcurve/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestSplineFitterKnots(t *testing.T) {
	pts := []geom.Point{{0, 0}, {1, 1}, {2, 0}, {3, 1}}
	for _, kind := range SplineKindsValues() {
		sf := &SplineFitter{FitMode: Spline, Kind: kind, SplineSize: 4}
		got := sf.FitCurve(pts)
		if diff := cmp.Diff(pts, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("%v: spline does not pass through knots (-want +got):\n%s", kind, diff)
		}
	}
}

func TestSplineFitterSize(t *testing.T) {
	sf := NewSplineFitter()
	pts := []geom.Point{{0, 10}, {10, 20}, {20, 5}, {30, 15}}
	got := sf.FitCurve(pts)
	assert.Len(t, got, 250)
	assert.InDelta(t, 0, got[0].X, 1e-9)
	assert.InDelta(t, 10, got[0].Y, 1e-9)
	assert.InDelta(t, 30, got[249].X, 1e-9)
	assert.InDelta(t, 15, got[249].Y, 1e-9)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i].X, got[i-1].X)
	}
}

func TestSplineFitterParametric(t *testing.T) {
	// x goes back, so Auto picks the parametric spline
	pts := []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 10}}
	sf := NewSplineFitter()
	sf.SplineSize = 50
	got := sf.FitCurve(pts)
	assert.Len(t, got, 50)
	assert.InDelta(t, 0, got[0].X, 1e-9)
	assert.InDelta(t, 0, got[0].Y, 1e-9)
	assert.InDelta(t, 0, got[49].X, 1e-9)
	assert.InDelta(t, 10, got[49].Y, 1e-9)

	// an explicit plain spline cannot fit these and leaves them alone
	sf.FitMode = Spline
	assert.Equal(t, pts, sf.FitCurve(pts))
}

func TestSplineFitterFewPoints(t *testing.T) {
	sf := NewSplineFitter()
	assert.Empty(t, sf.FitCurve(nil))
	two := []geom.Point{{0, 0}, {5, 5}}
	got := sf.FitCurve(two)
	assert.Equal(t, two, got)
	got[0].X = 100
	assert.Equal(t, 0.0, two[0].X, "result must not alias the input")
}

func TestWeedingFitter(t *testing.T) {
	wf := NewWeedingFitter(1)
	line := []geom.Point{{0, 0}, {1, 0.1}, {2, -0.2}, {3, 0}, {4, 0.3}, {5, 0}}
	assert.Equal(t, []geom.Point{{0, 0}, {5, 0}}, wf.FitCurve(line))

	spike := []geom.Point{{0, 0}, {1, 0}, {2, 10}, {3, 0}, {4, 0}}
	wf.Tolerance = 0.5
	assert.Equal(t, []geom.Point{{0, 0}, {1, 0}, {2, 10}, {3, 0}, {4, 0}}, wf.FitCurve(spike))

	wf.Tolerance = 20
	assert.Equal(t, []geom.Point{{0, 0}, {4, 0}}, wf.FitCurve(spike))
}

func TestWeedingFitterInput(t *testing.T) {
	wf := NewWeedingFitter(1)
	pts := []geom.Point{{0, 0}, {1, 0.1}, {2, 5}, {3, 0}}
	orig := slices.Clone(pts)
	got := wf.FitCurve(pts)
	assert.Equal(t, []geom.Point{{0, 0}, {2, 5}, {3, 0}}, got)
	assert.Equal(t, orig, pts)

	// a closed loop has a zero length chord
	loop := []geom.Point{{0, 0}, {5, 0.2}, {10, 0}, {10, 10}, {0, 0}}
	assert.Equal(t, []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 0}}, wf.FitCurve(loop))

	wf.Tolerance = 0
	assert.Equal(t, pts, wf.FitCurve(pts))
}
