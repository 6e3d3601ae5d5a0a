// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitflag provides simple bit flag setting, checking, and clearing
// for enum types whose values are ordinal bit positions (const iota's),
// doing the bit shifting from there.
package bitflag

// Mask makes a mask for checking multiple different flags
func Mask[F ~int32](flags ...F) int64 {
	var mask int64
	for _, f := range flags {
		mask |= 1 << uint32(f)
	}
	return mask
}

// Bits is a set of ordinal bit position flags of type F.
// The zero value has no flags set.
type Bits[F ~int32] int64

// Of returns Bits with the given flags set.
func Of[F ~int32](flags ...F) Bits[F] {
	return Bits[F](Mask(flags...))
}

// Set sets bit value(s) for ordinal bit position flags
func (b *Bits[F]) Set(flags ...F) {
	*b |= Bits[F](Mask(flags...))
}

// Clear clears bit value(s) for ordinal bit position flags
func (b *Bits[F]) Clear(flags ...F) {
	*b &^= Bits[F](Mask(flags...))
}

// SetState sets or clears bit value(s) depending on state (on / off) for
// ordinal bit position flags
func (b *Bits[F]) SetState(state bool, flags ...F) {
	if state {
		b.Set(flags...)
	} else {
		b.Clear(flags...)
	}
}

// Has checks if given bit value is set for ordinal bit position flag
func (b Bits[F]) Has(flag F) bool {
	return int64(b)&(1<<uint32(flag)) != 0
}

// HasAny checks if any of a set of flags are set (logical OR)
func (b Bits[F]) HasAny(flags ...F) bool {
	return int64(b)&Mask(flags...) != 0
}

// HasAll checks if all of a set of flags are set (logical AND)
func (b Bits[F]) HasAll(flags ...F) bool {
	m := Mask(flags...)
	return int64(b)&m == m
}

// IsZero returns true if no flags are set.
func (b Bits[F]) IsZero() bool {
	return b == 0
}
