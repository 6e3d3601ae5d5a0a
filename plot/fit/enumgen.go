// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import "cogentcore.org/plotcurve/base/enums"

var _FitModesNames = []string{"Auto", "Spline", "ParametricSpline"}

// FitModesN is the highest valid value for type FitModes, plus one.
const FitModesN FitModes = 3

// FitModesValues returns all possible values for the type FitModes.
func FitModesValues() []FitModes { return enums.Values[FitModes](_FitModesNames) }

// String returns the string representation of this FitModes value.
func (i FitModes) String() string { return enums.String(i, _FitModesNames) }

// SetString sets the FitModes value from its string representation,
// and returns an error if the string is invalid.
func (i *FitModes) SetString(s string) error {
	v, err := enums.Parse[FitModes](s, _FitModesNames, "FitModes")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i FitModes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *FitModes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _SplineKindsNames = []string{"Natural", "Akima", "Monotone"}

// SplineKindsN is the highest valid value for type SplineKinds, plus one.
const SplineKindsN SplineKinds = 3

// SplineKindsValues returns all possible values for the type SplineKinds.
func SplineKindsValues() []SplineKinds { return enums.Values[SplineKinds](_SplineKindsNames) }

// String returns the string representation of this SplineKinds value.
func (i SplineKinds) String() string { return enums.String(i, _SplineKindsNames) }

// SetString sets the SplineKinds value from its string representation,
// and returns an error if the string is invalid.
func (i *SplineKinds) SetString(s string) error {
	v, err := enums.Parse[SplineKinds](s, _SplineKindsNames, "SplineKinds")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i SplineKinds) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *SplineKinds) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
