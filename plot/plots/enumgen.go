// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import "cogentcore.org/plotcurve/base/enums"

var _CurveStylesNames = []string{"NoCurve", "Lines", "Sticks", "Steps", "Dots"}

// CurveStylesN is the highest valid value for type CurveStyles, plus one.
const CurveStylesN CurveStyles = 5

// CurveStylesValues returns all possible values for the type CurveStyles.
func CurveStylesValues() []CurveStyles { return enums.Values[CurveStyles](_CurveStylesNames) }

// String returns the string representation of this CurveStyles value.
func (i CurveStyles) String() string { return enums.String(i, _CurveStylesNames) }

// SetString sets the CurveStyles value from its string representation,
// and returns an error if the string is invalid.
func (i *CurveStyles) SetString(s string) error {
	v, err := enums.Parse[CurveStyles](s, _CurveStylesNames, "CurveStyles")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i CurveStyles) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *CurveStyles) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _CurveAttributesNames = []string{"Fitted", "Inverted"}

// CurveAttributesN is the highest valid value for type CurveAttributes, plus one.
const CurveAttributesN CurveAttributes = 2

// CurveAttributesValues returns all possible values for the type CurveAttributes.
func CurveAttributesValues() []CurveAttributes { return enums.Values[CurveAttributes](_CurveAttributesNames) }

// String returns the string representation of this CurveAttributes value.
func (i CurveAttributes) String() string { return enums.String(i, _CurveAttributesNames) }

// SetString sets the CurveAttributes value from its string representation,
// and returns an error if the string is invalid.
func (i *CurveAttributes) SetString(s string) error {
	v, err := enums.Parse[CurveAttributes](s, _CurveAttributesNames, "CurveAttributes")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i CurveAttributes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *CurveAttributes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _PaintAttributesNames = []string{"ClipPolygons"}

// PaintAttributesN is the highest valid value for type PaintAttributes, plus one.
const PaintAttributesN PaintAttributes = 1

// PaintAttributesValues returns all possible values for the type PaintAttributes.
func PaintAttributesValues() []PaintAttributes { return enums.Values[PaintAttributes](_PaintAttributesNames) }

// String returns the string representation of this PaintAttributes value.
func (i PaintAttributes) String() string { return enums.String(i, _PaintAttributesNames) }

// SetString sets the PaintAttributes value from its string representation,
// and returns an error if the string is invalid.
func (i *PaintAttributes) SetString(s string) error {
	v, err := enums.Parse[PaintAttributes](s, _PaintAttributesNames, "PaintAttributes")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i PaintAttributes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *PaintAttributes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _LegendAttributesNames = []string{"LegendShowLine", "LegendShowSymbol", "LegendShowBrush"}

// LegendAttributesN is the highest valid value for type LegendAttributes, plus one.
const LegendAttributesN LegendAttributes = 3

// LegendAttributesValues returns all possible values for the type LegendAttributes.
func LegendAttributesValues() []LegendAttributes { return enums.Values[LegendAttributes](_LegendAttributesNames) }

// String returns the string representation of this LegendAttributes value.
func (i LegendAttributes) String() string { return enums.String(i, _LegendAttributesNames) }

// SetString sets the LegendAttributes value from its string representation,
// and returns an error if the string is invalid.
func (i *LegendAttributes) SetString(s string) error {
	v, err := enums.Parse[LegendAttributes](s, _LegendAttributesNames, "LegendAttributes")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i LegendAttributes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *LegendAttributes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _SymbolStylesNames = []string{"NoSymbol", "Ellipse", "Rect", "Diamond", "Triangle", "DTriangle", "UTriangle", "LTriangle", "RTriangle", "Cross", "XCross", "HLine", "VLine", "Star", "Hexagon"}

// SymbolStylesN is the highest valid value for type SymbolStyles, plus one.
const SymbolStylesN SymbolStyles = 15

// SymbolStylesValues returns all possible values for the type SymbolStyles.
func SymbolStylesValues() []SymbolStyles { return enums.Values[SymbolStyles](_SymbolStylesNames) }

// String returns the string representation of this SymbolStyles value.
func (i SymbolStyles) String() string { return enums.String(i, _SymbolStylesNames) }

// SetString sets the SymbolStyles value from its string representation,
// and returns an error if the string is invalid.
func (i *SymbolStyles) SetString(s string) error {
	v, err := enums.Parse[SymbolStyles](s, _SymbolStylesNames, "SymbolStyles")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i SymbolStyles) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *SymbolStyles) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _ColumnStylesNames = []string{"NoColumn", "Box"}

// ColumnStylesN is the highest valid value for type ColumnStyles, plus one.
const ColumnStylesN ColumnStyles = 2

// ColumnStylesValues returns all possible values for the type ColumnStyles.
func ColumnStylesValues() []ColumnStyles { return enums.Values[ColumnStyles](_ColumnStylesNames) }

// String returns the string representation of this ColumnStyles value.
func (i ColumnStyles) String() string { return enums.String(i, _ColumnStylesNames) }

// SetString sets the ColumnStyles value from its string representation,
// and returns an error if the string is invalid.
func (i *ColumnStyles) SetString(s string) error {
	v, err := enums.Parse[ColumnStyles](s, _ColumnStylesNames, "ColumnStyles")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i ColumnStyles) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *ColumnStyles) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _FrameStylesNames = []string{"NoFrame", "Plain", "Raised"}

// FrameStylesN is the highest valid value for type FrameStyles, plus one.
const FrameStylesN FrameStyles = 3

// FrameStylesValues returns all possible values for the type FrameStyles.
func FrameStylesValues() []FrameStyles { return enums.Values[FrameStyles](_FrameStylesNames) }

// String returns the string representation of this FrameStyles value.
func (i FrameStyles) String() string { return enums.String(i, _FrameStylesNames) }

// SetString sets the FrameStyles value from its string representation,
// and returns an error if the string is invalid.
func (i *FrameStyles) SetString(s string) error {
	v, err := enums.Parse[FrameStyles](s, _FrameStylesNames, "FrameStyles")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i FrameStyles) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *FrameStyles) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _IntervalBordersNames = []string{"ExcludeMinimum", "ExcludeMaximum"}

// IntervalBordersN is the highest valid value for type IntervalBorders, plus one.
const IntervalBordersN IntervalBorders = 2

// IntervalBordersValues returns all possible values for the type IntervalBorders.
func IntervalBordersValues() []IntervalBorders { return enums.Values[IntervalBorders](_IntervalBordersNames) }

// String returns the string representation of this IntervalBorders value.
func (i IntervalBorders) String() string { return enums.String(i, _IntervalBordersNames) }

// SetString sets the IntervalBorders value from its string representation,
// and returns an error if the string is invalid.
func (i *IntervalBorders) SetString(s string) error {
	v, err := enums.Parse[IntervalBorders](s, _IntervalBordersNames, "IntervalBorders")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i IntervalBorders) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *IntervalBorders) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _ColumnDirectionsNames = []string{"LeftToRight", "RightToLeft", "BottomToTop", "TopToBottom"}

// ColumnDirectionsN is the highest valid value for type ColumnDirections, plus one.
const ColumnDirectionsN ColumnDirections = 4

// ColumnDirectionsValues returns all possible values for the type ColumnDirections.
func ColumnDirectionsValues() []ColumnDirections { return enums.Values[ColumnDirections](_ColumnDirectionsNames) }

// String returns the string representation of this ColumnDirections value.
func (i ColumnDirections) String() string { return enums.String(i, _ColumnDirectionsNames) }

// SetString sets the ColumnDirections value from its string representation,
// and returns an error if the string is invalid.
func (i *ColumnDirections) SetString(s string) error {
	v, err := enums.Parse[ColumnDirections](s, _ColumnDirectionsNames, "ColumnDirections")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i ColumnDirections) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *ColumnDirections) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
