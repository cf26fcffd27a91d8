// Package theme holds the visual configuration the layout engine consumes:
// palette, card metrics, spacing. The engine treats these as opaque numbers;
// anything presentation-specific beyond sizing lives in the host.
package theme

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/riverline/riverline/internal/geom"
)

// Theme configures layout metrics and the participant color palette.
type Theme struct {
	// Palette is cycled for per-participant river colors and cluster
	// accents. Never empty after validation.
	Palette []geom.ColorRGBA

	// AxisOffset is the cross-axis position of the timeline spine.
	AxisOffset float64

	// MarkerRadius is the event marker radius.
	MarkerRadius float64

	// CardWidth and CardHeight size event cards in maximal display mode.
	CardWidth  float64
	CardHeight float64

	// CardMinHeight and CardMinWidth are the floors cards shrink to when
	// packing is tight (height packs vertical timelines, width packs
	// horizontal ones).
	CardMinHeight float64
	CardMinWidth  float64

	// CardGap is the minimum primary-axis gap between adjacent cards.
	CardGap float64

	// LaneSpacing separates participant lanes in the river view.
	LaneSpacing float64

	// LabelMinWidth is the marker spacing below which labels thin out.
	LabelMinWidth float64
}

// themeFile is the YAML representation. Colors are hex strings.
type themeFile struct {
	Palette       []string `yaml:"palette"`
	AxisOffset    *float64 `yaml:"axis_offset"`
	MarkerRadius  *float64 `yaml:"marker_radius"`
	CardWidth     *float64 `yaml:"card_width"`
	CardHeight    *float64 `yaml:"card_height"`
	CardMinHeight *float64 `yaml:"card_min_height"`
	CardMinWidth  *float64 `yaml:"card_min_width"`
	CardGap       *float64 `yaml:"card_gap"`
	LaneSpacing   *float64 `yaml:"lane_spacing"`
	LabelMinWidth *float64 `yaml:"label_min_width"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Palette: []geom.ColorRGBA{
			geom.RGB(0x4c, 0x8b, 0xf5),
			geom.RGB(0xe9, 0x6a, 0x5c),
			geom.RGB(0x58, 0xb6, 0x8a),
			geom.RGB(0xf2, 0xb1, 0x34),
			geom.RGB(0x9b, 0x6f, 0xd1),
			geom.RGB(0x3f, 0xb5, 0xc9),
			geom.RGB(0xd9, 0x6f, 0xa8),
			geom.RGB(0x8a, 0x9a, 0x5b),
		},
		AxisOffset:    48,
		MarkerRadius:  6,
		CardWidth:     220,
		CardHeight:    72,
		CardMinHeight: 28,
		CardMinWidth:  64,
		CardGap:       8,
		LaneSpacing:   40,
		LabelMinWidth: 64,
	}
}

// Load reads a theme YAML file, merging file values over defaults.
// Unknown fields are rejected to catch typos.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme file: %w", err)
	}
	return Parse(data)
}

// Parse decodes theme YAML, merging over defaults and validating.
func Parse(data []byte) (Theme, error) {
	var file themeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme YAML: %w", err)
	}

	th := Default()
	if len(file.Palette) > 0 {
		palette := make([]geom.ColorRGBA, 0, len(file.Palette))
		for i, hex := range file.Palette {
			c, err := ParseHexColor(hex)
			if err != nil {
				return Theme{}, fmt.Errorf("palette[%d]: %w", i, err)
			}
			palette = append(palette, c)
		}
		th.Palette = palette
	}

	setIf := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setIf(&th.AxisOffset, file.AxisOffset)
	setIf(&th.MarkerRadius, file.MarkerRadius)
	setIf(&th.CardWidth, file.CardWidth)
	setIf(&th.CardHeight, file.CardHeight)
	setIf(&th.CardMinHeight, file.CardMinHeight)
	setIf(&th.CardMinWidth, file.CardMinWidth)
	setIf(&th.CardGap, file.CardGap)
	setIf(&th.LaneSpacing, file.LaneSpacing)
	setIf(&th.LabelMinWidth, file.LabelMinWidth)

	if err := th.validate(); err != nil {
		return Theme{}, fmt.Errorf("invalid theme: %w", err)
	}
	return th, nil
}

func (t Theme) validate() error {
	if len(t.Palette) == 0 {
		return fmt.Errorf("palette must be non-empty")
	}
	if t.CardMinHeight > t.CardHeight {
		return fmt.Errorf("card_min_height (%v) exceeds card_height (%v)", t.CardMinHeight, t.CardHeight)
	}
	if t.CardMinWidth > t.CardWidth {
		return fmt.Errorf("card_min_width (%v) exceeds card_width (%v)", t.CardMinWidth, t.CardWidth)
	}
	for name, v := range map[string]float64{
		"marker_radius":   t.MarkerRadius,
		"card_width":      t.CardWidth,
		"card_height":     t.CardHeight,
		"card_min_height": t.CardMinHeight,
		"card_min_width":  t.CardMinWidth,
		"lane_spacing":    t.LaneSpacing,
		"label_min_width": t.LabelMinWidth,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, v)
		}
	}
	if t.CardGap < 0 {
		return fmt.Errorf("card_gap must be non-negative, got %v", t.CardGap)
	}
	return nil
}

// ParseHexColor parses #rgb, #rrggbb, or #rrggbbaa.
func ParseHexColor(s string) (geom.ColorRGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return geom.ColorRGBA{}, fmt.Errorf("color %q must start with '#'", s)
	}
	hex := s[1:]
	var r, g, b, a uint8
	a = 0xff
	switch len(hex) {
	case 3:
		vals, err := hexNibbles(hex)
		if err != nil {
			return geom.ColorRGBA{}, fmt.Errorf("color %q: %w", s, err)
		}
		r, g, b = vals[0]*17, vals[1]*17, vals[2]*17
	case 6, 8:
		vals, err := hexBytes(hex)
		if err != nil {
			return geom.ColorRGBA{}, fmt.Errorf("color %q: %w", s, err)
		}
		r, g, b = vals[0], vals[1], vals[2]
		if len(vals) == 4 {
			a = vals[3]
		}
	default:
		return geom.ColorRGBA{}, fmt.Errorf("color %q has unsupported length", s)
	}
	return geom.ColorRGBA{R: r, G: g, B: b, A: a}, nil
}

func hexNibbles(s string) ([]uint8, error) {
	out := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		v, err := hexDigit(s[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func hexBytes(s string) ([]uint8, error) {
	out := make([]uint8, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, err := hexDigit(s[i])
		if err != nil {
			return nil, err
		}
		lo, err := hexDigit(s[i+1])
		if err != nil {
			return nil, err
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

func hexDigit(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
}
