package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an RGBA color used by draw commands.
// The zero value is ColorDefault and means "no explicit color".
type Color struct {
	R, G, B, A uint8
}

// Predefined colors for game elements.
var (
	ColorDefault = Color{}
	ColorWhite   = Color{R: 255, G: 255, B: 255, A: 255}
	ColorBlack   = Color{A: 255}
	ColorOrange  = Color{R: 255, G: 165, A: 255}
	ColorGray    = Color{R: 128, G: 128, B: 128, A: 255}
	ColorRed     = Color{R: 220, G: 50, B: 47, A: 255}
)

// namedColors maps the CSS names accepted in config files.
var namedColors = map[string]Color{
	"white":  ColorWhite,
	"black":  ColorBlack,
	"orange": ColorOrange,
	"gray":   ColorGray,
	"grey":   ColorGray,
	"red":    ColorRed,
}

// ParseColor parses "#rgb", "#rrggbb" or a small set of CSS color names.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil //#nosec G115 -- masked to 8 bits
}

// ParseColorOr is like ParseColor but returns fallback on error.
func ParseColorOr(s string, fallback Color) Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

// IsDefault reports whether the color is the zero value.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA converts to the standard library color type.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any image color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
