// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style/style.go
// Summary: Styles combine optional colors with a modifier bit-set.
// Usage: Built by the SGR decoder, consumed by rendering bridges.

package style

// Modifier is a bit-set of non-color text attributes.
type Modifier uint16

const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underline
	SlowBlink
	RapidBlink
	Reverse
	Hidden
	CrossedOut
)

var modifierNames = []struct {
	bit  Modifier
	name string
}{
	{Bold, "bold"},
	{Dim, "dim"},
	{Italic, "italic"},
	{Underline, "underline"},
	{SlowBlink, "slowblink"},
	{RapidBlink, "rapidblink"},
	{Reverse, "reverse"},
	{Hidden, "hidden"},
	{CrossedOut, "crossedout"},
}

// String returns a human-readable representation of the modifier flags.
func (m Modifier) String() string {
	if m == 0 {
		return "none"
	}
	var result string
	for _, e := range modifierNames {
		if m&e.bit == 0 {
			continue
		}
		if result != "" {
			result += "|"
		}
		result += e.name
	}
	if result == "" {
		return "unknown"
	}
	return result
}

// Style holds an optional foreground, an optional background and a set of
// modifiers. The zero Style is the fully reset state.
type Style struct {
	Fg  Color
	Bg  Color
	Mod Modifier
}

// String returns a human-readable representation, e.g.
// "fg=green bg=default mod=bold|underline".
func (s Style) String() string {
	return "fg=" + s.Fg.String() + " bg=" + s.Bg.String() + " mod=" + s.Mod.String()
}

// IsZero reports whether the style is fully reset.
func (s Style) IsZero() bool {
	return !s.Fg.IsSet() && !s.Bg.IsSet() && s.Mod == 0
}

// Patch merges o onto s: o's set colors overwrite, unset colors inherit,
// and modifiers accumulate. SGR "off" codes clear bits on the carried style
// before it is ever patched, so a union is sufficient here.
func (s Style) Patch(o Style) Style {
	out := s
	if o.Fg.IsSet() {
		out.Fg = o.Fg
	}
	if o.Bg.IsSet() {
		out.Bg = o.Bg
	}
	out.Mod |= o.Mod
	return out
}
