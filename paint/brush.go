// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import "image/color"

// BrushStyles are the fill patterns a [Brush] can use.
type BrushStyles int32 //enums:enum

const (
	// NoBrush fills nothing.
	NoBrush BrushStyles = iota

	// SolidPattern fills every pixel.
	SolidPattern

	// Dense4Pattern fills a checkerboard of every other pixel.
	Dense4Pattern

	// HorPattern fills horizontal lines.
	HorPattern

	// VerPattern fills vertical lines.
	VerPattern

	// CrossPattern fills horizontal and vertical lines.
	CrossPattern

	// BDiagPattern fills backward diagonal lines.
	BDiagPattern

	// FDiagPattern fills forward diagonal lines.
	FDiagPattern
)

// patternSpacing is the line spacing of hatch patterns, in pixels.
const patternSpacing = 8

// Brush describes how areas are filled.
type Brush struct {

	// Style is the fill pattern.
	Style BrushStyles

	// Color is the fill color. A nil color means that the user of the
	// brush derives one, typically from the pen color.
	Color color.Color
}

// NewBrush returns a solid brush with the given color.
func NewBrush(c color.Color) Brush {
	return Brush{Style: SolidPattern, Color: c}
}

// IsVisible returns true if the brush fills anything.
func (b Brush) IsVisible() bool {
	return b.Style > NoBrush && b.Style <= FDiagPattern
}

// HasColor returns true if the brush has an explicit color.
func (b Brush) HasColor() bool {
	return b.Color != nil
}

// WithColor returns a copy of the brush with the given color.
func (b Brush) WithColor(c color.Color) Brush {
	b.Color = c
	return b
}

// Covers returns true if the pattern covers the pixel at x, y.
func (b Brush) Covers(x, y int) bool {
	switch b.Style {
	case SolidPattern:
		return true
	case Dense4Pattern:
		return (x+y)%2 == 0
	case HorPattern:
		return y%patternSpacing == 0
	case VerPattern:
		return x%patternSpacing == 0
	case CrossPattern:
		return x%patternSpacing == 0 || y%patternSpacing == 0
	case BDiagPattern:
		return (x+y)%patternSpacing == 0
	case FDiagPattern:
		return ((x-y)%patternSpacing+patternSpacing)%patternSpacing == 0
	}
	return false
}

// Equal reports whether two brushes fill identically.
func (b Brush) Equal(o Brush) bool {
	return b.Style == o.Style && ColorsEqual(b.Color, o.Color)
}
