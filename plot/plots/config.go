// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/plotcurve/base/errors"
	"cogentcore.org/plotcurve/base/iox/tomlx"
	"cogentcore.org/plotcurve/base/iox/yamlx"
	"cogentcore.org/plotcurve/geom"
	"cogentcore.org/plotcurve/paint"
	"cogentcore.org/plotcurve/plot"
	"cogentcore.org/plotcurve/plot/fit"
)

// PenConfig describes a [paint.Pen] in a config file.
// Colors are hex (#rrggbb) or CSS names; "none" is no color.
type PenConfig struct {
	Color    string          `toml:"color,omitempty" yaml:"color,omitempty"`
	Width    float64         `toml:"width,omitempty" yaml:"width,omitempty"`
	Style    paint.PenStyles `toml:"style" yaml:"style"`
	Dashes   []float64       `toml:"dashes,omitempty" yaml:"dashes,omitempty"`
	Cosmetic bool            `toml:"cosmetic,omitempty" yaml:"cosmetic,omitempty"`
}

// Pen returns the pen, starting from def for an empty color.
func (pc *PenConfig) Pen(def paint.Pen) (paint.Pen, error) {
	pen := paint.Pen{Color: def.Color, Width: pc.Width, Style: pc.Style, Dashes: slices.Clone(pc.Dashes), Cosmetic: pc.Cosmetic}
	if pc.Color != "" {
		c, err := paint.ParseColor(pc.Color)
		if err != nil {
			return pen, err
		}
		pen.Color = c
	}
	return pen, nil
}

func penConfig(pen paint.Pen) PenConfig {
	return PenConfig{Color: paint.HexString(pen.Color), Width: pen.Width, Style: pen.Style,
		Dashes: slices.Clone(pen.Dashes), Cosmetic: pen.Cosmetic}
}

// BrushConfig describes a [paint.Brush] in a config file. An empty
// color derives the fill color from the pen.
type BrushConfig struct {
	Color string            `toml:"color,omitempty" yaml:"color,omitempty"`
	Style paint.BrushStyles `toml:"style" yaml:"style"`
}

// Brush returns the brush.
func (bc *BrushConfig) Brush() (paint.Brush, error) {
	c, err := paint.ParseColor(bc.Color)
	return paint.Brush{Style: bc.Style, Color: c}, err
}

func brushConfig(b paint.Brush) BrushConfig {
	bc := BrushConfig{Style: b.Style}
	if b.HasColor() {
		bc.Color = paint.HexString(b.Color)
	}
	return bc
}

// SymbolConfig describes a [Symbol] in a config file.
type SymbolConfig struct {
	Style  SymbolStyles `toml:"style" yaml:"style"`
	Width  float64      `toml:"width" yaml:"width"`
	Height float64      `toml:"height" yaml:"height"`
	Pen    PenConfig    `toml:"pen" yaml:"pen"`
	Brush  BrushConfig  `toml:"brush" yaml:"brush"`
}

// Symbol returns the symbol.
func (sc *SymbolConfig) Symbol() (*Symbol, error) {
	pen, err := sc.Pen.Pen(paint.NewPen(paint.Black, 0))
	if err != nil {
		return nil, err
	}
	brush, err := sc.Brush.Brush()
	if err != nil {
		return nil, err
	}
	return NewSymbol(sc.Style, brush, pen, geom.Sz(sc.Width, sc.Height)), nil
}

// Fitter names used in config files.
const (
	FitterNone    = "none"
	FitterSpline  = "spline"
	FitterWeeding = "weeding"
)

// CurveConfig describes the appearance of a [Curve] in a TOML or YAML
// config file. Zero values keep the curve defaults, except for the
// pen and brush, which are always set.
type CurveConfig struct {
	Title       string           `toml:"title,omitempty" yaml:"title,omitempty"`
	Style       CurveStyles      `toml:"style" yaml:"style"`
	Orientation plot.Orientation `toml:"orientation" yaml:"orientation"`
	Baseline    float64          `toml:"baseline,omitempty" yaml:"baseline,omitempty"`
	Pen         PenConfig        `toml:"pen" yaml:"pen"`
	Brush       BrushConfig      `toml:"brush" yaml:"brush"`
	Symbol      *SymbolConfig    `toml:"symbol,omitempty" yaml:"symbol,omitempty"`

	Fitted   bool `toml:"fitted,omitempty" yaml:"fitted,omitempty"`
	Inverted bool `toml:"inverted,omitempty" yaml:"inverted,omitempty"`

	// NoClip turns off the ClipPolygons paint attribute.
	NoClip bool `toml:"no_clip,omitempty" yaml:"no_clip,omitempty"`

	Legend []LegendAttributes `toml:"legend,omitempty" yaml:"legend,omitempty"`

	// Fitter is one of "spline" (default), "weeding" or "none".
	Fitter string `toml:"fitter,omitempty" yaml:"fitter,omitempty"`

	// FitMode is the spline fit mode.
	FitMode fit.FitModes `toml:"fit_mode,omitempty" yaml:"fit_mode,omitempty"`

	// SplineSize is the number of spline points; 0 keeps the default.
	SplineSize int `toml:"spline_size" yaml:"spline_size"`

	// Tolerance is the weeding tolerance in pixels; 0 keeps the default of 1.
	Tolerance float64 `toml:"tolerance" yaml:"tolerance"`
}

// NewCurveConfig returns the config of a default curve.
func NewCurveConfig() *CurveConfig {
	return newCurve().Config()
}

// OpenCurveConfig reads a curve config from a .toml, .yaml or .yml file.
func OpenCurveConfig(filename string) (*CurveConfig, error) {
	cfg := NewCurveConfig()
	if err := openConfig(cfg, filename); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openConfig(v any, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Open(v, filename)
	case ".yaml", ".yml":
		return yamlx.Open(v, filename)
	}
	return fmt.Errorf("plots: unsupported config file extension %q", filepath.Ext(filename))
}

// SaveConfig writes v to a .toml, .yaml or .yml file.
func SaveConfig(v any, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Save(v, filename)
	case ".yaml", ".yml":
		return yamlx.Save(v, filename)
	}
	return fmt.Errorf("plots: unsupported config file extension %q", filepath.Ext(filename))
}

// Apply sets the appearance of c from the config. On error c is
// left unchanged.
func (cfg *CurveConfig) Apply(c *Curve) error {
	pen, err := cfg.Pen.Pen(c.Pen)
	if err != nil {
		return fmt.Errorf("curve pen: %w", err)
	}
	brush, err := cfg.Brush.Brush()
	if err != nil {
		return fmt.Errorf("curve brush: %w", err)
	}
	sym := &Symbol{}
	if cfg.Symbol != nil {
		if sym, err = cfg.Symbol.Symbol(); err != nil {
			return fmt.Errorf("curve symbol: %w", err)
		}
	}
	var fitter plot.Fitter
	switch strings.ToLower(cfg.Fitter) {
	case "", FitterSpline:
		sf := fit.NewSplineFitter()
		sf.FitMode = cfg.FitMode
		if cfg.SplineSize > 0 {
			sf.SplineSize = cfg.SplineSize
		}
		fitter = sf
	case FitterWeeding:
		fitter = fit.NewWeedingFitter(1)
		if cfg.Tolerance > 0 {
			fitter = fit.NewWeedingFitter(cfg.Tolerance)
		}
	case FitterNone:
	default:
		return fmt.Errorf("curve fitter: unknown fitter %q", cfg.Fitter)
	}

	c.Title = cfg.Title
	c.Style = cfg.Style
	c.Orientation = cfg.Orientation
	c.Baseline = cfg.Baseline
	c.Pen = pen
	c.Brush = brush
	c.symbol = sym
	c.fitter = fitter
	c.Attributes.SetState(cfg.Fitted, Fitted)
	c.Attributes.SetState(cfg.Inverted, Inverted)
	c.PaintAttributes.SetState(!cfg.NoClip, ClipPolygons)
	c.LegendAttributes = 0
	c.LegendAttributes.Set(cfg.Legend...)
	return nil
}

// Config returns the config describing the appearance of c.
func (c *Curve) Config() *CurveConfig {
	cfg := &CurveConfig{
		Title:       c.Title,
		Style:       c.Style,
		Orientation: c.Orientation,
		Baseline:    c.Baseline,
		Pen:         penConfig(c.Pen),
		Brush:       brushConfig(c.Brush),
		Fitted:      c.Attributes.Has(Fitted),
		Inverted:    c.Attributes.Has(Inverted),
		NoClip:      !c.PaintAttributes.Has(ClipPolygons),
	}
	for _, la := range LegendAttributesValues() {
		if c.LegendAttributes.Has(la) {
			cfg.Legend = append(cfg.Legend, la)
		}
	}
	if c.symbol.Style != NoSymbol {
		cfg.Symbol = &SymbolConfig{Style: c.symbol.Style, Width: c.symbol.Size.Width, Height: c.symbol.Size.Height,
			Pen: penConfig(c.symbol.Pen), Brush: brushConfig(c.symbol.Brush)}
	}
	switch f := c.fitter.(type) {
	case nil:
		cfg.Fitter = FitterNone
	case *fit.SplineFitter:
		cfg.Fitter = FitterSpline
		cfg.FitMode = f.FitMode
		cfg.SplineSize = f.SplineSize
	case *fit.WeedingFitter:
		cfg.Fitter = FitterWeeding
		cfg.Tolerance = f.Tolerance
	}
	return cfg
}

// NewCurveFromConfig returns a curve over an owned copy of data with
// the appearance given by cfg.
func NewCurveFromConfig(cfg *CurveConfig, data plot.XYer) (*Curve, error) {
	c, err := NewCurve(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ColumnConfig describes a [ColumnSymbol] in a config file.
type ColumnConfig struct {
	Style      ColumnStyles `toml:"style" yaml:"style"`
	FrameStyle FrameStyles  `toml:"frame_style" yaml:"frame_style"`

	// Color is the base color; the frame tones are derived from it.
	Color     string  `toml:"color,omitempty" yaml:"color,omitempty"`
	LineWidth float64 `toml:"line_width" yaml:"line_width"`
	Label     string  `toml:"label,omitempty" yaml:"label,omitempty"`
}

// OpenColumnConfig reads a column config from a .toml, .yaml or .yml file.
// Missing values keep the [NewColumnSymbol] defaults.
func OpenColumnConfig(filename string) (*ColumnConfig, error) {
	cfg := &ColumnConfig{Style: Box, FrameStyle: Raised, LineWidth: 2}
	if err := openConfig(cfg, filename); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ColumnSymbol returns the column symbol described by the config.
// An invalid color is logged and the default gray used.
func (cc *ColumnConfig) ColumnSymbol() *ColumnSymbol {
	cs := NewColumnSymbol(cc.Style)
	cs.FrameStyle = cc.FrameStyle
	cs.LineWidth = cc.LineWidth
	cs.Label = cc.Label
	if cc.Color != "" {
		if c := errors.Log1(paint.ParseColor(cc.Color)); c != nil {
			cs.Palette = paint.NewPalette(c)
		}
	}
	return cs
}
