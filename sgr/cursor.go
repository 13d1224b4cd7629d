// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sgr/cursor.go
// Summary: Panic-free byte cursor shared by the SGR parameter parser.
// Usage: Wraps a raw byte slice with peek/advance/take/expect primitives.
// Notes: Every operation is O(bytes consumed) and can never loop forever.

package sgr

import "unicode/utf8"

// Cursor scans a byte buffer with a monotonically non-decreasing position.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf at position zero.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current position.
func (c *Cursor) Pos() int { return c.pos }

// Seek moves the cursor to an absolute position, clamped to the buffer.
func (c *Cursor) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(c.buf) {
		pos = len(c.buf)
	}
	c.pos = pos
}

// Empty reports whether the cursor is exhausted.
func (c *Cursor) Empty() bool { return c.pos >= len(c.buf) }

// Peek returns the next byte without advancing.
func (c *Cursor) Peek() (byte, bool) {
	if c.Empty() {
		return 0, false
	}
	return c.buf[c.pos], true
}

// PeekRune decodes the next UTF-8 rune without advancing. Invalid encodings
// report utf8.RuneError with width 1, like the standard decoder.
func (c *Cursor) PeekRune() (rune, bool) {
	if c.Empty() {
		return 0, false
	}
	r, _ := utf8.DecodeRune(c.buf[c.pos:])
	return r, true
}

// Advance consumes and returns one byte.
func (c *Cursor) Advance() (byte, bool) {
	if c.Empty() {
		return 0, false
	}
	b := c.buf[c.pos]
	c.pos++
	return b, true
}

// TakeWhile consumes the maximal run of bytes satisfying pred. The returned
// slice aliases the buffer and may be empty.
func (c *Cursor) TakeWhile(pred func(byte) bool) []byte {
	start := c.pos
	for c.pos < len(c.buf) && pred(c.buf[c.pos]) {
		c.pos++
	}
	return c.buf[start:c.pos]
}

// TakeUntil consumes bytes up to (not including) the first byte satisfying
// pred, or the rest of the buffer if none does.
func (c *Cursor) TakeUntil(pred func(byte) bool) []byte {
	return c.TakeWhile(func(b byte) bool { return !pred(b) })
}

// Expect consumes the next byte only if it equals b.
func (c *Cursor) Expect(b byte) bool {
	if n, ok := c.Peek(); ok && n == b {
		c.pos++
		return true
	}
	return false
}

// ExpectTag consumes tag only if the buffer starts with it at the current
// position. On mismatch nothing is consumed.
func (c *Cursor) ExpectTag(tag []byte) bool {
	if len(c.buf)-c.pos < len(tag) {
		return false
	}
	for i, b := range tag {
		if c.buf[c.pos+i] != b {
			return false
		}
	}
	c.pos += len(tag)
	return true
}

// ParseUint8 consumes a run of ASCII digits and returns its value,
// saturating at 255. Reports false if no digit was consumed; the position
// is unchanged in that case.
func (c *Cursor) ParseUint8() (uint8, bool) {
	v, n := 0, 0
	for c.pos < len(c.buf) && isDigit(c.buf[c.pos]) {
		if v < 1000 {
			v = v*10 + int(c.buf[c.pos]-'0')
		}
		c.pos++
		n++
	}
	if n == 0 {
		return 0, false
	}
	if v > 255 {
		return 255, true
	}
	return uint8(v), true
}

// ParseInt consumes a run of ASCII digits as a non-negative int.
// Reports false if no digit was consumed.
func (c *Cursor) ParseInt() (int, bool) {
	v, n := 0, 0
	for c.pos < len(c.buf) && isDigit(c.buf[c.pos]) {
		if v < 1<<30 {
			v = v*10 + int(c.buf[c.pos]-'0')
		}
		c.pos++
		n++
	}
	if n == 0 {
		return 0, false
	}
	return v, true
}

// SkipSemicolon consumes one optional ';' separator.
func (c *Cursor) SkipSemicolon() {
	c.Expect(';')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
