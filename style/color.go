// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style/color.go
// Summary: Tagged color model covering 4-bit, 256-color and RGB modes.
// Usage: Consumed by the SGR decoder and by rendering consumers.
// Notes: The zero Color means "unset"; Style relies on that for patching.

package style

// ColorMode identifies which variant a Color holds.
type ColorMode uint8

const (
	// ColorModeNone is the zero mode: no color set, terminal default applies.
	ColorModeNone ColorMode = iota
	// ColorModeAnsi is the 16-entry 4-bit palette (values 0-15).
	ColorModeAnsi
	// ColorModeAnsi256 is the 256-entry indexed palette.
	ColorModeAnsi256
	// ColorModeRGB is 24-bit true color.
	ColorModeRGB
)

// Color represents a terminal color in one of three encodings.
// The zero value is "unset" and renders nothing.
type Color struct {
	Mode    ColorMode
	Value   uint8 // palette value for Ansi (0-15) and Ansi256 (0-255)
	R, G, B uint8 // channels for RGB mode
}

// The 16-entry 4-bit palette in SGR order.
var (
	Black         = Color{Mode: ColorModeAnsi, Value: 0}
	Red           = Color{Mode: ColorModeAnsi, Value: 1}
	Green         = Color{Mode: ColorModeAnsi, Value: 2}
	Yellow        = Color{Mode: ColorModeAnsi, Value: 3}
	Blue          = Color{Mode: ColorModeAnsi, Value: 4}
	Magenta       = Color{Mode: ColorModeAnsi, Value: 5}
	Cyan          = Color{Mode: ColorModeAnsi, Value: 6}
	White         = Color{Mode: ColorModeAnsi, Value: 7}
	BrightBlack   = Color{Mode: ColorModeAnsi, Value: 8}
	BrightRed     = Color{Mode: ColorModeAnsi, Value: 9}
	BrightGreen   = Color{Mode: ColorModeAnsi, Value: 10}
	BrightYellow  = Color{Mode: ColorModeAnsi, Value: 11}
	BrightBlue    = Color{Mode: ColorModeAnsi, Value: 12}
	BrightMagenta = Color{Mode: ColorModeAnsi, Value: 13}
	BrightCyan    = Color{Mode: ColorModeAnsi, Value: 14}
	BrightWhite   = Color{Mode: ColorModeAnsi, Value: 15}
)

// Ansi returns a 4-bit palette color. Values above 15 are masked.
func Ansi(v uint8) Color {
	return Color{Mode: ColorModeAnsi, Value: v & 0x0f}
}

// Ansi256 returns a 256-color palette index.
func Ansi256(v uint8) Color {
	return Color{Mode: ColorModeAnsi256, Value: v}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorModeRGB, R: r, G: g, B: b}
}

// IsSet reports whether the color carries an actual value.
func (c Color) IsSet() bool { return c.Mode != ColorModeNone }

// Bright reports whether a 4-bit color is in the bright half of the palette.
func (c Color) Bright() bool { return c.Mode == ColorModeAnsi && c.Value >= 8 }

// FourBit converts an Ansi256 color with index 0-15 to its exact 4-bit
// equivalent. Indices 16-255 have no 4-bit equivalent; consumers that need
// one must go through an approximate RGB mapping instead.
func (c Color) FourBit() (Color, bool) {
	switch c.Mode {
	case ColorModeAnsi:
		return c, true
	case ColorModeAnsi256:
		if c.Value < 16 {
			return Color{Mode: ColorModeAnsi, Value: c.Value}, true
		}
	}
	return Color{}, false
}

// EightBit widens a 4-bit color to its lossless 256-palette alias.
// Colors already in 256 mode pass through unchanged.
func (c Color) EightBit() (Color, bool) {
	switch c.Mode {
	case ColorModeAnsi:
		return Color{Mode: ColorModeAnsi256, Value: c.Value}, true
	case ColorModeAnsi256:
		return c, true
	}
	return Color{}, false
}

var ansiNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// String returns a human-readable representation of the color.
func (c Color) String() string {
	switch c.Mode {
	case ColorModeAnsi:
		return ansiNames[c.Value&0x0f]
	case ColorModeAnsi256:
		return "ansi256(" + itoa(c.Value) + ")"
	case ColorModeRGB:
		return "rgb(" + itoa(c.R) + "," + itoa(c.G) + "," + itoa(c.B) + ")"
	}
	return "default"
}

// itoa formats a uint8 without pulling strconv into the value types.
func itoa(v uint8) string {
	var buf [3]byte
	n := len(buf)
	for {
		n--
		buf[n] = '0' + v%10
		v /= 10
		if v == 0 {
			break
		}
	}
	return string(buf[n:])
}

// Compare imposes a total order on colors: unset < Ansi < Ansi256 < RGB,
// then by payload. The order carries no terminal meaning; it exists so
// tests and sorts are deterministic.
func (c Color) Compare(o Color) int {
	if c.Mode != o.Mode {
		if c.Mode < o.Mode {
			return -1
		}
		return 1
	}
	switch c.Mode {
	case ColorModeAnsi, ColorModeAnsi256:
		return int(c.Value) - int(o.Value)
	case ColorModeRGB:
		if d := int(c.R) - int(o.R); d != 0 {
			return d
		}
		if d := int(c.G) - int(o.G); d != 0 {
			return d
		}
		return int(c.B) - int(o.B)
	}
	return 0
}
