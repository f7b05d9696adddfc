package css

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a straight (non-premultiplied) RGBA color.
type Color struct {
	R, G, B, A uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

var namedColors = map[string]Color{
	"black":   {0, 0, 0, 255},
	"silver":  {192, 192, 192, 255},
	"gray":    {128, 128, 128, 255},
	"white":   {255, 255, 255, 255},
	"maroon":  {128, 0, 0, 255},
	"red":     {255, 0, 0, 255},
	"purple":  {128, 0, 128, 255},
	"fuchsia": {255, 0, 255, 255},
	"green":   {0, 128, 0, 255},
	"lime":    {0, 255, 0, 255},
	"olive":   {128, 128, 0, 255},
	"yellow":  {255, 255, 0, 255},
	"navy":    {0, 0, 128, 255},
	"blue":    {0, 0, 255, 255},
	"teal":    {0, 128, 128, 255},
	"aqua":    {0, 255, 255, 255},
	"orange":  {255, 165, 0, 255},
}

// ParseColor parses hex notation (#rgb, #rrggbb, #rrggbbaa) and the CSS
// basic color keywords. The second result reports whether the input was a
// color; a '#'-prefixed string that fails to parse here is a malformed
// color, which ParseValue turns into an error.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, false
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		r, okR := hexNibble(hex[0])
		g, okG := hexNibble(hex[1])
		b, okB := hexNibble(hex[2])
		if !okR || !okG || !okB {
			return Color{}, false
		}
		return Color{r * 17, g * 17, b * 17, 255}, true
	case 6, 8:
		n, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return Color{}, false
		}
		if len(hex) == 6 {
			return Color{uint8(n >> 16), uint8(n >> 8), uint8(n), 255}, true
		}
		return Color{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}, true
	}
	return Color{}, false
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}
