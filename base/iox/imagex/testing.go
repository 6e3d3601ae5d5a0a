// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// CompareUint8 returns true if two numbers are within tol of each other.
func CompareUint8(cc, ic uint8, tol int) bool {
	d := int(cc) - int(ic)
	return d >= -tol && d <= tol
}

// CompareColors returns true if all channels of two colors are within tol.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	return CompareUint8(cc.R, ic.R, tol) && CompareUint8(cc.G, ic.G, tol) &&
		CompareUint8(cc.B, ic.B, tol) && CompareUint8(cc.A, ic.A, tol)
}

// AssertPixel reports an error if the pixel at x, y of img differs
// from the expected color by more than tol on any channel.
func AssertPixel(t TestingT, img image.Image, x, y int, expect color.Color, tol int) bool {
	got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	want := color.RGBAModel.Convert(expect).(color.RGBA)
	if !CompareColors(got, want, tol) {
		t.Errorf("imagex.AssertPixel: pixel (%d, %d) is %v, expected %v", x, y, got, want)
		return false
	}
	return true
}
