package config

import (
	"image/color"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"golang.org/x/image/colornames"
)

// ParseColor accepts an SVG color name ("black", "white", "red", ...) or a
// hex value in #rgb or #rrggbb form.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, errorsmod.Wrapf(ErrUnknownColor, "%q", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, errorsmod.Wrapf(ErrUnknownColor, "%q: want #rgb or #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errorsmod.Wrapf(ErrUnknownColor, "%q: %v", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
