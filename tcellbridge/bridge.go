// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tcellbridge/bridge.go
// Summary: Maps document styles onto tcell for screen painting.
// Usage: Terminal-UI consumers convert Style/Text with these helpers.

package tcellbridge

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/ansidoc/document"
	"github.com/framegrace/ansidoc/style"
)

// ToTcellColor converts a document color to its tcell equivalent.
// Unset maps to the terminal default.
func ToTcellColor(c style.Color) tcell.Color {
	switch c.Mode {
	case style.ColorModeAnsi:
		return tcell.PaletteColor(int(c.Value))
	case style.ColorModeAnsi256:
		return tcell.PaletteColor(int(c.Value))
	case style.ColorModeRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}

// ToTcellStyle converts a document style to a tcell style. Hidden has no
// tcell attribute and is dropped; both blink speeds map to plain blink.
func ToTcellStyle(s style.Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(ToTcellColor(s.Fg)).
		Background(ToTcellColor(s.Bg))
	if s.Mod&style.Bold != 0 {
		st = st.Bold(true)
	}
	if s.Mod&style.Dim != 0 {
		st = st.Dim(true)
	}
	if s.Mod&style.Italic != 0 {
		st = st.Italic(true)
	}
	if s.Mod&style.Underline != 0 {
		st = st.Underline(true)
	}
	if s.Mod&(style.SlowBlink|style.RapidBlink) != 0 {
		st = st.Blink(true)
	}
	if s.Mod&style.Reverse != 0 {
		st = st.Reverse(true)
	}
	if s.Mod&style.CrossedOut != 0 {
		st = st.StrikeThrough(true)
	}
	return st
}

// Draw paints a document onto a tcell screen starting at (x, y), one screen
// row per line. Wide runes occupy the cells runewidth says they do.
func Draw(screen tcell.Screen, x, y int, text document.Text) {
	for row, line := range text {
		col := x
		for _, span := range line {
			st := ToTcellStyle(span.Style)
			for _, r := range span.Content {
				screen.SetContent(col, y+row, r, nil, st)
				col += runewidth.RuneWidth(r)
			}
		}
	}
}
