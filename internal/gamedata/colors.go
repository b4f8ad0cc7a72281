package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#3B6EA5" or "3B6EA5")
// to a tcell.Color. Feature definitions carry their colors in this form.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	r := int32(value >> 16 & 0xFF)
	g := int32(value >> 8 & 0xFF)
	b := int32(value & 0xFF)
	return tcell.NewRGBColor(r, g, b), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking
// on error. Use only for compile-time constant colors.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}
