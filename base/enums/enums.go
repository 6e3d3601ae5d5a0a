// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides the shared name lookup used by the String,
// SetString and text marshaling methods of enum types, which are
// declared as int32 constants with a parallel slice of names.
package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the name of v in names, or its integer value if
// it is out of range.
func String[T ~int32](v T, names []string) string {
	if v >= 0 && int(v) < len(names) {
		return names[v]
	}
	return strconv.FormatInt(int64(v), 10)
}

// Parse returns the value whose name matches s, ignoring case.
// Integer strings within range are also accepted.
func Parse[T ~int32](s string, names []string, typ string) (T, error) {
	for i, nm := range names {
		if strings.EqualFold(nm, s) {
			return T(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(names) {
		return T(n), nil
	}
	return 0, fmt.Errorf("%q is not a valid value for type %s", s, typ)
}

// Values returns all of the values of an enum with the given names.
func Values[T ~int32](names []string) []T {
	vs := make([]T, len(names))
	for i := range vs {
		vs[i] = T(i)
	}
	return vs
}
