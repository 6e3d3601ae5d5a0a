// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"
	"slices"
)

// PenStyles are the line styles a [Pen] can stroke with.
type PenStyles int32 //enums:enum

const (
	// NoPen draws nothing.
	NoPen PenStyles = iota

	// SolidLine is a continuous line.
	SolidLine

	// DashLine is dashes separated by short gaps.
	DashLine

	// DotLine is dots separated by gaps.
	DotLine

	// DashDotLine alternates dashes and dots.
	DashDotLine

	// DashDotDotLine alternates one dash and two dots.
	DashDotDotLine

	// CustomDashLine uses the [Pen.Dashes] pattern.
	CustomDashLine
)

// Pen describes how lines and outlines are stroked.
type Pen struct {

	// Color is the stroke color; nil draws nothing.
	Color color.Color

	// Width is the line width. Zero is a one pixel hairline.
	Width float64

	// Style is the line style.
	Style PenStyles

	// Dashes is the on / off pattern for CustomDashLine,
	// in units of the effective line width.
	Dashes []float64

	// Cosmetic pens keep their width in device pixels regardless of
	// any scaling the painter applies; non-cosmetic widths are scaled.
	Cosmetic bool
}

// NewPen returns a solid pen with the given color and width.
func NewPen(c color.Color, width float64) Pen {
	return Pen{Color: c, Width: width, Style: SolidLine}
}

// IsVisible returns true if the pen draws anything.
func (p Pen) IsVisible() bool {
	if p.Style == NoPen || p.Style < 0 || p.Style > CustomDashLine || p.Color == nil {
		return false
	}
	_, _, _, a := p.Color.RGBA()
	return a > 0
}

// WidthDots returns the stroke width in device pixels for the given
// device scale. Hairlines are one pixel.
func (p Pen) WidthDots(scale float64) float64 {
	w := p.Width
	if w <= 0 {
		return 1
	}
	if !p.Cosmetic && scale > 0 {
		w *= scale
	}
	return w
}

// DashPattern returns the absolute on / off lengths for a pen of the
// given effective width, or nil for a continuous line.
func (p Pen) DashPattern(width float64) []float64 {
	var units []float64
	switch p.Style {
	case DashLine:
		units = []float64{4, 2}
	case DotLine:
		units = []float64{1, 2}
	case DashDotLine:
		units = []float64{4, 2, 1, 2}
	case DashDotDotLine:
		units = []float64{4, 2, 1, 2, 1, 2}
	case CustomDashLine:
		units = p.Dashes
	default:
		return nil
	}
	if len(units) == 0 {
		return nil
	}
	ds := slices.Clone(units)
	for i := range ds {
		ds[i] *= width
	}
	return ds
}

// Equal reports whether two pens draw identically.
func (p Pen) Equal(o Pen) bool {
	return p.Style == o.Style && p.Width == o.Width && p.Cosmetic == o.Cosmetic &&
		ColorsEqual(p.Color, o.Color) && slices.Equal(p.Dashes, o.Dashes)
}
