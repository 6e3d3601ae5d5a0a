// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	Black = color.RGBA{0, 0, 0, 0xff}
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Gray  = color.RGBA{0xa0, 0xa0, 0xa4, 0xff}
)

// AsNRGBA returns the non-premultiplied form of c.
// A nil color is fully transparent.
func AsNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// ColorsEqual reports whether two colors are the same, treating two
// nil colors as equal.
func ColorsEqual(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// ParseColor parses a hex color (#rgb, #rrggbb, #rrggbbaa) or an SVG / CSS
// color name such as "steelblue". The empty string and "none" give nil.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return nil, nil
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[s]
		if !ok {
			return nil, fmt.Errorf("paint.ParseColor: unknown color name %q", s)
		}
		return c, nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("paint.ParseColor: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("paint.ParseColor: invalid hex color %q: %w", s, err)
	}
	n := color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
	return n, nil
}

// HexString returns the #rrggbb (or #rrggbbaa when not opaque) form of c,
// and "none" for nil.
func HexString(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := AsNRGBA(c)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// Lighter returns a lighter color: factor 150 returns a color that is
// 50% brighter in HSV value. Alpha is preserved.
func Lighter(c color.Color, factor int) color.Color {
	if factor <= 0 {
		return Darker(c, -factor)
	}
	if factor < 100 {
		return Darker(c, 10000/factor)
	}
	return scaleValue(c, float64(factor)/100)
}

// Darker returns a darker color: factor 200 returns a color with half
// the HSV value. Alpha is preserved.
func Darker(c color.Color, factor int) color.Color {
	if factor <= 0 {
		return Lighter(c, -factor)
	}
	if factor < 100 {
		return Lighter(c, 10000/factor)
	}
	return scaleValue(c, 100/float64(factor))
}

func scaleValue(c color.Color, f float64) color.Color {
	n := AsNRGBA(c)
	cf, _ := colorful.MakeColor(color.NRGBA{n.R, n.G, n.B, 0xff})
	h, s, v := cf.Hsv()
	v *= f
	if v > 1 {
		// saturated colors lose saturation instead of overflowing value
		s -= v - 1
		if s < 0 {
			s = 0
		}
		v = 1
	}
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return color.NRGBA{r, g, b, n.A}
}

// Palette is the set of tones used by shaded frames.
type Palette struct {

	// Window is the interior fill color.
	Window color.Color

	// Light is the highlight tone.
	Light color.Color

	// Dark is the shadow tone.
	Dark color.Color
}

// NewPalette returns a palette derived from the given base color:
// Light is 150% and Dark 50% of its value.
func NewPalette(base color.Color) Palette {
	return Palette{
		Window: base,
		Light:  Lighter(base, 150),
		Dark:   Darker(base, 200),
	}
}

// Equal reports whether two palettes have the same tones.
func (p Palette) Equal(o Palette) bool {
	return ColorsEqual(p.Window, o.Window) && ColorsEqual(p.Light, o.Light) && ColorsEqual(p.Dark, o.Dark)
}

// PatternImage returns an unbounded image filling the pixels the brush
// pattern covers with the brush color, and transparent elsewhere.
func PatternImage(b Brush) image.Image {
	if b.Style == SolidPattern {
		return image.NewUniform(b.Color)
	}
	return &pattern{brush: b, color: AsNRGBA(b.Color)}
}

type pattern struct {
	brush Brush
	color color.NRGBA
}

func (p *pattern) ColorModel() color.Model {
	return color.NRGBAModel
}

func (p *pattern) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (p *pattern) At(x, y int) color.Color {
	if p.brush.Covers(x, y) {
		return p.color
	}
	return color.NRGBA{}
}
