// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "cogentcore.org/plotcurve/base/enums"

var _OrientationNames = []string{"Horizontal", "Vertical"}

// OrientationN is the highest valid value for type Orientation, plus one.
const OrientationN Orientation = 2

// OrientationValues returns all possible values for the type Orientation.
func OrientationValues() []Orientation { return enums.Values[Orientation](_OrientationNames) }

// String returns the string representation of this Orientation value.
func (i Orientation) String() string { return enums.String(i, _OrientationNames) }

// SetString sets the Orientation value from its string representation,
// and returns an error if the string is invalid.
func (i *Orientation) SetString(s string) error {
	v, err := enums.Parse[Orientation](s, _OrientationNames, "Orientation")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Orientation) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Orientation) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _OwnershipNames = []string{"Owned", "Borrowed"}

// OwnershipN is the highest valid value for type Ownership, plus one.
const OwnershipN Ownership = 2

// OwnershipValues returns all possible values for the type Ownership.
func OwnershipValues() []Ownership { return enums.Values[Ownership](_OwnershipNames) }

// String returns the string representation of this Ownership value.
func (i Ownership) String() string { return enums.String(i, _OwnershipNames) }

// SetString sets the Ownership value from its string representation,
// and returns an error if the string is invalid.
func (i *Ownership) SetString(s string) error {
	v, err := enums.Parse[Ownership](s, _OwnershipNames, "Ownership")
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Ownership) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Ownership) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
