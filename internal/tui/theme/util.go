package theme

import (
	"fmt"
	"strings"
)

// InterpolateColor blends two #rrggbb colors; pos 0 is a, pos 1 is b.
func InterpolateColor(a, b string, pos float64) string {
	r1, g1, b1 := ParseHexColor(a)
	r2, g2, b2 := ParseHexColor(b)

	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-pos) + float64(y)*pos)
	}
	return FormatHexColor(mix(r1, r2), mix(g1, g2), mix(b1, b2))
}

// ParseHexColor splits #rrggbb into channels. Anything else is black.
func ParseHexColor(hex string) (r, g, b uint8) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 6 {
		_, _ = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	}
	return r, g, b
}

// FormatHexColor formats channels as #rrggbb.
func FormatHexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
