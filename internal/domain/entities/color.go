package entities

import (
	"fmt"
	"math"
	"strings"
)

// RGB holds the three channels of a parsed hex color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a "#RRGGBB" or "RRGGBB" color string. Shorthand "#RGB" is
// expanded. Invalid input degrades to black rather than failing: slide colors
// come from untrusted AI output and a bad value must never abort a render.
func ParseHex(hex string) RGB {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}
	}
	var c RGB
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}
	}
	return c
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lighten interpolates each channel toward white by factor (clamped to [0,1])
// and returns the new hex string.
func Lighten(hex string, factor float64) string {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	c := ParseHex(hex)
	mix := func(ch uint8) uint8 {
		return uint8(math.Round(float64(ch) + (255-float64(ch))*factor))
	}
	return RGB{R: mix(c.R), G: mix(c.G), B: mix(c.B)}.Hex()
}

// RelativeLuminance returns the WCAG relative luminance of a hex color,
// in [0,1]. Channels are gamma-corrected before the weighted sum.
func RelativeLuminance(hex string) float64 {
	c := ParseHex(hex)
	lin := func(ch uint8) float64 {
		v := float64(ch) / 255
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// PickDarkest returns the color with the minimum relative luminance.
// Ties resolve to the first-encountered minimum. An empty list yields black.
func PickDarkest(colors []string) string {
	if len(colors) == 0 {
		return "#000000"
	}
	darkest := colors[0]
	best := RelativeLuminance(colors[0])
	for _, c := range colors[1:] {
		if l := RelativeLuminance(c); l < best {
			best = l
			darkest = c
		}
	}
	return darkest
}
