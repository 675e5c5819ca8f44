package slidegen

import (
	"fmt"
	"regexp"
	"strconv"
)

// RGB holds numeric color channels for encoders that cannot consume
// hex strings directly.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// HexToRGB converts a 6-digit hex color string to RGB channels.
// Malformed or missing input yields black; template colors are
// cosmetic, so a bad value must never fail an export.
func HexToRGB(hex string) RGB {
	if !hexColorRe.MatchString(hex) {
		return RGB{}
	}
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return RGB{R: int(r), G: int(g), B: int(b)}
}

// ARGB renders the color as the AARRGGBB hex form used by the slide
// archive encoder.
func (c RGB) ARGB(alpha uint8) string {
	return fmt.Sprintf("%02X%02X%02X%02X", alpha, c.R, c.G, c.B)
}
