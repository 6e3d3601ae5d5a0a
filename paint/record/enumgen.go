// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import "cogentcore.org/plotcurve/base/enums"

var _KindsNames = []string{"Line", "Point", "Polyline", "Polygon", "Rect", "Ellipse", "FillRect"}

// KindsN is the highest valid value for type Kinds, plus one.
const KindsN Kinds = 7

// KindsValues returns all possible values for the type Kinds.
func KindsValues() []Kinds { return enums.Values[Kinds](_KindsNames) }

// String returns the string representation of this Kinds value.
func (i Kinds) String() string { return enums.String(i, _KindsNames) }

// SetString sets the Kinds value from its string representation,
// and returns an error if the string is invalid.
func (i *Kinds) SetString(s string) error {
	v, err := enums.Parse[Kinds](s, _KindsNames, "Kinds")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Kinds) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Kinds) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
