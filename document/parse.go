// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: document/parse.go
// Summary: Builds a styled Text from a raw terminal byte stream.
// Usage: document.Parse(b) / document.ParseString(s); total on any input.
// Notes: One recovery mechanism only: the vtscan table decides what is a
// sequence; everything it discards never reaches the document.

package document

import (
	"github.com/framegrace/ansidoc/sgr"
	"github.com/framegrace/ansidoc/style"
	"github.com/framegrace/ansidoc/vtscan"
)

// Parse converts a byte stream that may mix plain text, newlines, SGR
// sequences and arbitrary other escape sequences into a styled document.
//
// It never fails and never panics: malformed or foreign sequences are
// consumed and discarded, truncated sequences at end of input vanish, and
// invalid UTF-8 bytes inside text runs are dropped. Empty input yields a
// single empty line. Bytes after the final newline open one last record
// even when none of them survive as text. The active style carries across
// newlines until an SGR sequence or end of input changes it.
func Parse(input []byte) Text {
	b := &builder{}
	sc := vtscan.NewScanner(b)
	for _, c := range input {
		// Any byte opens a record; only a newline executed in ground
		// state closes one. Escape noise after the final newline still
		// counts as a (possibly empty) last record.
		b.open = true
		sc.Advance(c)
	}
	sc.Finish()
	return b.finish()
}

// ParseString is Parse for string input.
func ParseString(input string) Text {
	return Parse([]byte(input))
}

// ParseLine parses a single record: the first newline (or end of input)
// terminates it. Convenient for consumers that feed pre-split lines.
func ParseLine(input []byte) Line {
	return Parse(input)[0]
}

// builder accumulates spans and lines while implementing vtscan.Performer.
type builder struct {
	vtscan.NopPerformer

	lines Text
	spans Line
	buf   []byte      // pending span content
	cur   style.Style // carried style, continuous across newlines
	open  bool        // bytes seen since the last record-closing newline
}

func (b *builder) Print(r rune) {
	b.buf = append(b.buf, string(r)...)
}

// Execute keeps C0 bytes verbatim in the text, except the newline which
// closes the current record. Tabs, carriage returns and stray controls are
// content as far as the document is concerned.
func (b *builder) Execute(c byte) {
	if c == '\n' {
		b.flushSpan()
		b.flushLine()
		b.open = false
		return
	}
	b.buf = append(b.buf, c)
}

func (b *builder) CsiDispatch(params, intermediates []byte, final byte) {
	if final != 'm' || len(intermediates) != 0 {
		return
	}
	next := sgr.Fold(b.cur, params)
	if next == b.cur {
		return
	}
	// The style changes even when the pending span is empty; only spans
	// with actual content make it into the line.
	b.flushSpan()
	b.cur = next
}

func (b *builder) flushSpan() {
	if len(b.buf) == 0 {
		return
	}
	b.spans = append(b.spans, Span{Content: string(b.buf), Style: b.cur})
	b.buf = b.buf[:0]
}

func (b *builder) flushLine() {
	b.lines = append(b.lines, b.spans)
	b.spans = nil
}

// finish closes the document: an open record forms a final line even when
// nothing printable survived it, and a document with no lines at all still
// gets its one empty line.
func (b *builder) finish() Text {
	b.flushSpan()
	if len(b.spans) > 0 || b.open || len(b.lines) == 0 {
		b.flushLine()
	}
	return b.lines
}
