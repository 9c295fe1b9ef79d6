// Package colors provides the structured colour values used by graphspin.
//
// Vertex colours are stored as 8-bit [RGB] triples. Depth-derived colours add a
// floating point alpha channel ([RGBA]). Colours are only turned into text at
// the rendering boundary: [RGBA.String] produces the CSS form used by SVG
// frames, and [RGBA.NRGBA] feeds raster sinks.
//
// Parsing and palette generation use go-colorful, so any hex string it
// understands ("#f00", "#ff0000") is accepted as input.
package colors

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// Predefined colours.
var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
	Red   = RGB{255, 0, 0}
)

// WithAlpha returns c with the given alpha, clamped to [0,1].
// NaN alpha becomes 0.
func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{RGB: c, A: clampUnit(a)}
}

// Opaque returns c with alpha 1.
func (c RGB) Opaque() RGBA { return RGBA{RGB: c, A: 1} }

// Hex returns c as a "#rrggbb" string.
func (c RGB) Hex() string { return c.colorful().Hex() }

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful converts a go-colorful colour to RGB, clamping out-of-gamut values.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// ParseHex parses a hex colour string such as "#ff8800" or "#f80".
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// MarshalJSON encodes c as a [r, g, b] array.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]uint8{c.R, c.G, c.B})
}

// UnmarshalJSON accepts either a [r, g, b] array with 0-255 channels or a
// hex string. Channel values outside 0-255 are clamped.
func (c *RGB) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseHex(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var ch []float64
	if err := json.Unmarshal(data, &ch); err != nil {
		return fmt.Errorf("color must be [r,g,b] or a hex string: %w", err)
	}
	if len(ch) != 3 {
		return fmt.Errorf("color must have 3 channels, got %d", len(ch))
	}
	*c = RGB{clampByte(ch[0]), clampByte(ch[1]), clampByte(ch[2])}
	return nil
}

// RGBA is an 8-bit colour with a fractional alpha channel in [0,1].
type RGBA struct {
	RGB
	A float64
}

// String returns the CSS form, e.g. "rgba(255,0,0,0.25)".
// Alpha is printed with two decimals.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, c.A)
}

// NRGBA converts c to a non-premultiplied image/color value.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clampUnit(c.A) * 255))}
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) { return c.NRGBA().RGBA() }

var _ color.Color = RGBA{}

func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func clampByte(v float64) uint8 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(math.Round(v))
}
