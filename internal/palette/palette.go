// Package palette handles colors packed as 0xRRGGBB.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// Color is an RGB color packed into the low 24 bits.
type Color uint32

// RGB packs three 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Invert flips every channel.
func (c Color) Invert() Color {
	return (^c) & 0xFFFFFF
}

// String formats the color as #RRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// Lerp interpolates channel by channel and rounds each result to the nearest integer.
// t is clamped to [0, 1]; t=0 returns a exactly and t=1 returns b exactly.
func Lerp(a, b Color, t float32) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB(
		lerpChannel(a.R(), b.R(), t),
		lerpChannel(a.G(), b.G(), t),
		lerpChannel(a.B(), b.B(), t),
	)
}

func lerpChannel(from, to uint8, t float32) uint8 {
	v := float32(from) + (float32(to)-float32(from))*t
	return uint8(math32.Floor(v + 0.5))
}

// Parse accepts "#RRGGBB", "0xRRGGBB", "#RGB" or a CSS color name ("black", "steelblue").
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "#"):
		return parseHex(lower[1:])
	case strings.HasPrefix(lower, "0x"):
		return parseHex(lower[2:])
	}
	if named, ok := colornames.Map[lower]; ok {
		return RGB(named.R, named.G, named.B), nil
	}
	return 0, fmt.Errorf("palette: unknown color %q", s)
}

func parseHex(hex string) (Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("palette: bad hex color %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("palette: bad hex color %q: %w", hex, err)
	}
	return Color(v), nil
}

// UnmarshalText lets colors appear as strings in config files.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText writes the #RRGGBB form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
