// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sgr/codes.go
// Summary: Numeric SGR parameter -> semantic operation table.
// Usage: Feeds the fold step that turns a parameter list into a Style.

package sgr

import "github.com/framegrace/ansidoc/style"

// Code is the semantic operation encoded by one numeric SGR parameter.
type Code uint8

const (
	CodeRaw Code = iota // unmapped parameter, carried opaquely

	CodeReset

	CodeBold
	CodeFaint
	CodeItalic
	CodeUnderline
	CodeSlowBlink
	CodeRapidBlink
	CodeReverse
	CodeConceal
	CodeCrossedOut

	CodeNormalIntensity // 22: clears bold and faint
	CodeNotItalic       // 23
	CodeUnderlineOff    // 24
	CodeBlinkOff        // 25: clears slow and rapid blink
	CodeReverseOff      // 27
	CodeReveal          // 28
	CodeCrossedOutOff   // 29

	CodeForeground        // 30-37, 90-97: carries a 4-bit color
	CodeBackground        // 40-47, 100-107
	CodeSetForeground     // 38: extended color follows
	CodeSetBackground     // 48
	CodeDefaultForeground // 39
	CodeDefaultBackground // 49
)

// Item is one decoded SGR parameter: the operation plus, for color-bearing
// codes, the color payload. Transient: it only lives inside one fold.
type Item struct {
	Code  Code
	Color style.Color
	Raw   uint8 // original number, kept for CodeRaw
}

// decode maps one numeric parameter to its semantic operation.
func decode(n uint8) Item {
	switch {
	case n == 0:
		return Item{Code: CodeReset}
	case n >= 1 && n <= 9:
		return Item{Code: CodeBold + Code(n-1)}
	case n == 22:
		return Item{Code: CodeNormalIntensity}
	case n == 23:
		return Item{Code: CodeNotItalic}
	case n == 24:
		return Item{Code: CodeUnderlineOff}
	case n == 25:
		return Item{Code: CodeBlinkOff}
	case n == 27:
		return Item{Code: CodeReverseOff}
	case n == 28:
		return Item{Code: CodeReveal}
	case n == 29:
		return Item{Code: CodeCrossedOutOff}
	case n >= 30 && n <= 37:
		return Item{Code: CodeForeground, Color: style.Ansi(n - 30)}
	case n == 38:
		return Item{Code: CodeSetForeground}
	case n == 39:
		return Item{Code: CodeDefaultForeground}
	case n >= 40 && n <= 47:
		return Item{Code: CodeBackground, Color: style.Ansi(n - 40)}
	case n == 48:
		return Item{Code: CodeSetBackground}
	case n == 49:
		return Item{Code: CodeDefaultBackground}
	case n >= 90 && n <= 97:
		return Item{Code: CodeForeground, Color: style.Ansi(n - 90 + 8)}
	case n >= 100 && n <= 107:
		return Item{Code: CodeBackground, Color: style.Ansi(n - 100 + 8)}
	}
	return Item{Code: CodeRaw, Raw: n}
}
