package geom

import "fmt"

// ColorRGBA is an 8-bit-per-channel color. It is plain data; the host maps
// it onto its rendering framework's color type.
type ColorRGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// RGB constructs a fully opaque color.
func RGB(r, g, b uint8) ColorRGBA {
	return ColorRGBA{R: r, G: g, B: b, A: 0xff}
}

// Hex returns the color as #rrggbbaa.
func (c ColorRGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// WithAlpha returns the same color with a replaced alpha channel.
func (c ColorRGBA) WithAlpha(a uint8) ColorRGBA {
	c.A = a
	return c
}
