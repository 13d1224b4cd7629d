// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tcellbridge/palette.go
// Summary: Approximate mapping of indexed/RGB colors onto the 4-bit palette.
// Usage: For consumers limited to 16 colors (markup converters, old terms).
// Notes: Indices 0-15 convert losslessly; everything else goes through a
// nearest-color search in Lab space.

package tcellbridge

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/ansidoc/style"
)

// xterm's default rendering of the 16 ANSI palette entries.
var ansiRGB = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0xcd, 0x00, 0x00}, {0x00, 0xcd, 0x00}, {0xcd, 0xcd, 0x00},
	{0x00, 0x00, 0xee}, {0xcd, 0x00, 0xcd}, {0x00, 0xcd, 0xcd}, {0xe5, 0xe5, 0xe5},
	{0x7f, 0x7f, 0x7f}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x5c, 0x5c, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// cubeLevels are the channel values of the 6x6x6 color cube (indices 16-231).
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// RGBOf expands any color to 24-bit channels. Unset colors report false.
func RGBOf(c style.Color) (r, g, b uint8, ok bool) {
	switch c.Mode {
	case style.ColorModeRGB:
		return c.R, c.G, c.B, true
	case style.ColorModeAnsi:
		e := ansiRGB[c.Value&0x0f]
		return e[0], e[1], e[2], true
	case style.ColorModeAnsi256:
		v := c.Value
		switch {
		case v < 16:
			e := ansiRGB[v]
			return e[0], e[1], e[2], true
		case v < 232:
			v -= 16
			return cubeLevels[v/36], cubeLevels[v/6%6], cubeLevels[v%6], true
		default:
			gray := 8 + 10*(v-232)
			return gray, gray, gray, true
		}
	}
	return 0, 0, 0, false
}

// NearestAnsi reduces a color to the 4-bit palette. Exact 4-bit aliases
// pass through losslessly; other colors pick the perceptually closest
// palette entry by Lab distance. Unset stays unset.
func NearestAnsi(c style.Color) style.Color {
	if !c.IsSet() {
		return c
	}
	if fb, ok := c.FourBit(); ok {
		return fb
	}
	r, g, b, _ := RGBOf(c)
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best, bestDist := 0, -1.0
	for i, e := range ansiRGB {
		cand := colorful.Color{R: float64(e[0]) / 255, G: float64(e[1]) / 255, B: float64(e[2]) / 255}
		d := target.DistanceLab(cand)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return style.Ansi(uint8(best))
}
