// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sgr/fold.go
// Summary: Folds one SGR parameter list into a Style.
// Usage: Called by the document builder for every dispatched "...m" sequence.
// Notes: An empty parameter list is a full reset by definition, not fallback.

package sgr

import "github.com/framegrace/ansidoc/style"

// Fold interprets the raw parameter bytes of one SGR sequence (everything
// between "\x1b[" and the final "m") against the carried style base and
// returns the resulting style.
//
// Rules, in order of precedence:
//   - zero parameters (bare "\x1b[m") is an unconditional full reset;
//   - a parameter list that stops parsing before the buffer is exhausted is
//     malformed and produces no style change at all;
//   - otherwise items apply in list order, with Reset clearing everything
//     it reaches and later items applying on the cleared baseline.
func Fold(base style.Style, params []byte) style.Style {
	cur := NewCursor(params)
	out := base
	applied := 0
	for !cur.Empty() {
		item, ok := parseItem(cur)
		if !ok {
			return base
		}
		out = apply(out, item)
		applied++
		cur.SkipSemicolon()
	}
	if applied == 0 {
		return style.Style{}
	}
	return out
}

// parseItem reads one decimal parameter and, for the extended-color markers
// 38/48, the color payload that follows. A failed extended color aborts only
// the color: the marker still registers with no color attached.
func parseItem(c *Cursor) (Item, bool) {
	n, ok := c.ParseUint8()
	if !ok {
		return Item{}, false
	}
	item := decode(n)
	if item.Code == CodeSetForeground || item.Code == CodeSetBackground {
		if col, ok := parseExtendedColor(c); ok {
			item.Color = col
		}
	}
	return item, true
}

// parseExtendedColor reads the payload after a 38/48 marker: ";5;n" for an
// indexed color or ";2;r;g;b" for truecolor. Bytes consumed by a failed
// attempt stay consumed so they are never reinterpreted as fresh parameters.
func parseExtendedColor(c *Cursor) (style.Color, bool) {
	c.SkipSemicolon()
	kind, ok := c.ParseUint8()
	if !ok {
		return style.Color{}, false
	}
	switch kind {
	case 5:
		c.SkipSemicolon()
		if v, ok := c.ParseUint8(); ok {
			return style.Ansi256(v), true
		}
	case 2:
		c.SkipSemicolon()
		r, ok := c.ParseUint8()
		if !ok {
			break
		}
		c.SkipSemicolon()
		g, ok := c.ParseUint8()
		if !ok {
			break
		}
		c.SkipSemicolon()
		b, ok := c.ParseUint8()
		if !ok {
			break
		}
		return style.RGB(r, g, b), true
	}
	return style.Color{}, false
}

func apply(s style.Style, item Item) style.Style {
	switch item.Code {
	case CodeReset:
		return style.Style{}
	case CodeBold:
		s.Mod |= style.Bold
	case CodeFaint:
		s.Mod |= style.Dim
	case CodeItalic:
		s.Mod |= style.Italic
	case CodeUnderline:
		s.Mod |= style.Underline
	case CodeSlowBlink:
		s.Mod |= style.SlowBlink
	case CodeRapidBlink:
		s.Mod |= style.RapidBlink
	case CodeReverse:
		s.Mod |= style.Reverse
	case CodeConceal:
		s.Mod |= style.Hidden
	case CodeCrossedOut:
		s.Mod |= style.CrossedOut
	case CodeNormalIntensity:
		s.Mod &^= style.Bold | style.Dim
	case CodeNotItalic:
		s.Mod &^= style.Italic
	case CodeUnderlineOff:
		s.Mod &^= style.Underline
	case CodeBlinkOff:
		s.Mod &^= style.SlowBlink | style.RapidBlink
	case CodeReverseOff:
		s.Mod &^= style.Reverse
	case CodeReveal:
		s.Mod &^= style.Hidden
	case CodeCrossedOutOff:
		s.Mod &^= style.CrossedOut
	case CodeForeground:
		s.Fg = item.Color
	case CodeBackground:
		s.Bg = item.Color
	case CodeSetForeground:
		if item.Color.IsSet() {
			s.Fg = item.Color
		}
	case CodeSetBackground:
		if item.Color.IsSet() {
			s.Bg = item.Color
		}
	case CodeDefaultForeground:
		s.Fg = style.Color{}
	case CodeDefaultBackground:
		s.Bg = style.Color{}
	case CodeRaw:
		// Unknown parameter: recognized enough to be discarded.
	}
	return s
}
