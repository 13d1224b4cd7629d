// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: document/text.go
// Summary: Styled document model: Text is Lines, a Line is styled Spans.
// Usage: The output of Parse and the input to rendering bridges.

package document

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/ansidoc/style"
)

// Span is the smallest styled unit: a run of text under one style.
// A span never crosses a line boundary and never contains escape bytes.
type Span struct {
	Content string
	Style   style.Style
}

// Width returns the span's display width in terminal cells.
func (s Span) Width() int {
	return runewidth.StringWidth(s.Content)
}

// Line is one newline-delimited record of the input, in span order.
type Line []Span

// Width returns the line's display width in terminal cells.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += s.Width()
	}
	return w
}

// String returns the line's text with all styling dropped.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Content)
	}
	return b.String()
}

// Text is an ordered sequence of lines.
type Text []Line

// String returns the document's plain text, lines joined with '\n'.
func (t Text) String() string {
	var b strings.Builder
	for i, l := range t {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.String())
	}
	return b.String()
}

// AppendSGR appends an escape-encoded rendition of the document: every span
// is prefixed with the sequence reproducing its style, lines are joined with
// '\n'. Parsing the result yields an equal document, except that a trailing
// empty line cannot survive the trip (a trailing '\n' closes the final
// record instead of opening a new one).
func (t Text) AppendSGR(dst []byte) []byte {
	for i, l := range t {
		if i > 0 {
			dst = append(dst, '\n')
		}
		for _, s := range l {
			dst = s.Style.AppendSequence(dst)
			dst = append(dst, s.Content...)
		}
	}
	return dst
}

// RenderSGR returns AppendSGR as a string.
func (t Text) RenderSGR() string {
	return string(t.AppendSGR(nil))
}
