// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hlfmt/hlfmt.go
// Summary: Syntax highlighting straight into styled documents.
// Usage: hlfmt.Highlight(name, src, styleName) returns a document.Text.
// Notes: Lexer resolution order: explicit name, enry content detection,
// chroma filename match, chroma content analysis, fallback.

package hlfmt

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/ansidoc/document"
	"github.com/framegrace/ansidoc/style"
)

// DefaultStyle is used when no style name is given or the name is unknown.
const DefaultStyle = "catppuccin-mocha"

// Style resolves a Chroma style name, falling back to the default.
func Style(name string) *chroma.Style {
	if name == "" {
		name = DefaultStyle
	}
	return styles.Get(name)
}

// Highlight tokenizes src and returns it as a styled document. filename and
// lexerName are both optional hints; content detection fills the gaps.
func Highlight(filename string, src []byte, lexerName, styleName string) document.Text {
	lexer := resolveLexer(filename, src, lexerName)
	lexer = chroma.Coalesce(lexer)
	cs := Style(styleName)

	tokens, err := chroma.Tokenise(lexer, nil, string(src))
	if err != nil {
		// Tokenization failing means no styling, not no output.
		return document.Parse(src)
	}

	base := cs.Get(chroma.Text).Colour

	var (
		text document.Text
		line document.Line
	)
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st := tokenStyle(cs.Get(tok.Type), base)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				text = append(text, line)
				line = nil
			}
			if part == "" {
				continue
			}
			// Adjacent tokens often map to the same style; merging keeps
			// the output canonical (Parse never splits equal-style runs).
			if n := len(line); n > 0 && line[n-1].Style == st {
				line[n-1].Content += part
				continue
			}
			line = append(line, document.Span{Content: part, Style: st})
		}
	}
	// A trailing newline closes the last record instead of opening a new
	// one, same as Parse.
	if len(line) > 0 || len(text) == 0 {
		text = append(text, line)
	}
	return text
}

// tokenStyle maps a Chroma style entry to a document style. Colors equal to
// the style's base text color stay unset so terminal defaults shine through,
// mirroring how the terminal formatter treats base-colored tokens.
func tokenStyle(entry chroma.StyleEntry, base chroma.Colour) style.Style {
	var st style.Style
	if entry.Bold == chroma.Yes {
		st.Mod |= style.Bold
	}
	if entry.Italic == chroma.Yes {
		st.Mod |= style.Italic
	}
	if entry.Underline == chroma.Yes {
		st.Mod |= style.Underline
	}
	if entry.Colour.IsSet() && entry.Colour != base {
		st.Fg = style.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	return st
}

// resolveLexer picks a lexer from the available hints.
func resolveLexer(filename string, src []byte, name string) chroma.Lexer {
	if name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if filename != "" {
		if lang, safe := enry.GetLanguageByContent(filename, src); safe {
			if l := lexers.Get(lang); l != nil {
				return l
			}
		}
		if l := lexers.Match(filename); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(string(src)); l != nil {
		return l
	}
	return lexers.Fallback
}
