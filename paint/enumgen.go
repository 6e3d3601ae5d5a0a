// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import "cogentcore.org/plotcurve/base/enums"

var _PenStylesNames = []string{"NoPen", "SolidLine", "DashLine", "DotLine", "DashDotLine", "DashDotDotLine", "CustomDashLine"}

// PenStylesN is the highest valid value for type PenStyles, plus one.
const PenStylesN PenStyles = 7

// PenStylesValues returns all possible values for the type PenStyles.
func PenStylesValues() []PenStyles { return enums.Values[PenStyles](_PenStylesNames) }

// String returns the string representation of this PenStyles value.
func (i PenStyles) String() string { return enums.String(i, _PenStylesNames) }

// SetString sets the PenStyles value from its string representation,
// and returns an error if the string is invalid.
func (i *PenStyles) SetString(s string) error {
	v, err := enums.Parse[PenStyles](s, _PenStylesNames, "PenStyles")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i PenStyles) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *PenStyles) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _BrushStylesNames = []string{"NoBrush", "SolidPattern", "Dense4Pattern", "HorPattern", "VerPattern", "CrossPattern", "BDiagPattern", "FDiagPattern"}

// BrushStylesN is the highest valid value for type BrushStyles, plus one.
const BrushStylesN BrushStyles = 8

// BrushStylesValues returns all possible values for the type BrushStyles.
func BrushStylesValues() []BrushStyles { return enums.Values[BrushStyles](_BrushStylesNames) }

// String returns the string representation of this BrushStyles value.
func (i BrushStyles) String() string { return enums.String(i, _BrushStylesNames) }

// SetString sets the BrushStyles value from its string representation,
// and returns an error if the string is invalid.
func (i *BrushStyles) SetString(s string) error {
	v, err := enums.Parse[BrushStyles](s, _BrushStylesNames, "BrushStyles")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i BrushStyles) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *BrushStyles) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
