// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style/render.go
// Summary: Allocation-free emission of SGR escape bytes for colors/styles.
// Usage: Hot path for re-rendering parsed documents back to a terminal.
// Notes: Manual base-10 digit formatting; no fmt or strconv here.

package style

// MaxColorSeq is the longest single color escape a Color can produce:
// "\x1b[38;2;255;255;255m", 19 bytes.
const MaxColorSeq = 19

// SeqBuffer is a fixed-capacity, stack-allocatable writer for one color
// escape sequence. It never grows and never allocates.
type SeqBuffer struct {
	buf [MaxColorSeq]byte
	n   int
}

// Reset empties the buffer.
func (b *SeqBuffer) Reset() { b.n = 0 }

// Len returns the number of bytes written.
func (b *SeqBuffer) Len() int { return b.n }

// Bytes returns the written bytes. The slice aliases the buffer and is
// invalidated by the next Reset/render call.
func (b *SeqBuffer) Bytes() []byte { return b.buf[:b.n] }

// String copies the written bytes out as a string.
func (b *SeqBuffer) String() string { return string(b.buf[:b.n]) }

func (b *SeqBuffer) writeByte(c byte) {
	if b.n < len(b.buf) {
		b.buf[b.n] = c
		b.n++
	}
}

// writeUint8 writes v in base 10 with no leading zeros.
func (b *SeqBuffer) writeUint8(v uint8) {
	if v >= 100 {
		b.writeByte('0' + v/100)
		v %= 100
		b.writeByte('0' + v/10)
		b.writeByte('0' + v%10)
		return
	}
	if v >= 10 {
		b.writeByte('0' + v/10)
	}
	b.writeByte('0' + v%10)
}

// Escape slot leaders for the three colorable targets.
const (
	slotFg        = 3  // 30-37 / 38;... / 90-97
	slotBg        = 4  // 40-47 / 48;... / 100-107
	slotUnderline = 5  // 58;... (extended only)
	extFg         = 38
	extBg         = 48
	extUnderline  = 58
)

// RenderFg writes the minimal foreground escape for c into b.
// Unset colors write nothing.
func (c Color) RenderFg(b *SeqBuffer) { c.render(b, slotFg, extFg) }

// RenderBg writes the minimal background escape for c into b.
func (c Color) RenderBg(b *SeqBuffer) { c.render(b, slotBg, extBg) }

// RenderUnderline writes the underline-color escape for c into b.
// Only the extended forms exist for underline color, so 4-bit colors
// are widened to their 256-palette alias.
func (c Color) RenderUnderline(b *SeqBuffer) {
	if c.Mode == ColorModeAnsi {
		c = Color{Mode: ColorModeAnsi256, Value: c.Value}
	}
	c.render(b, 0, extUnderline)
}

func (c Color) render(b *SeqBuffer, slot int, ext uint8) {
	switch c.Mode {
	case ColorModeNone:
		return
	case ColorModeAnsi:
		b.writeByte(0x1b)
		b.writeByte('[')
		if c.Value < 8 {
			b.writeByte('0' + byte(slot))
			b.writeByte('0' + c.Value)
		} else if slot == slotFg {
			b.writeByte('9')
			b.writeByte('0' + c.Value - 8)
		} else {
			b.writeByte('1')
			b.writeByte('0')
			b.writeByte('0' + c.Value - 8)
		}
	case ColorModeAnsi256:
		b.writeByte(0x1b)
		b.writeByte('[')
		b.writeUint8(ext)
		b.writeByte(';')
		b.writeByte('5')
		b.writeByte(';')
		b.writeUint8(c.Value)
	case ColorModeRGB:
		b.writeByte(0x1b)
		b.writeByte('[')
		b.writeUint8(ext)
		b.writeByte(';')
		b.writeByte('2')
		b.writeByte(';')
		b.writeUint8(c.R)
		b.writeByte(';')
		b.writeUint8(c.G)
		b.writeByte(';')
		b.writeUint8(c.B)
	}
	b.writeByte('m')
}

// Modifier SGR "on" codes, in bit order.
var modifierCodes = [...]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}

// AppendSequence appends the escape bytes that reproduce s on a terminal
// whose current state is unknown: a reset, the active modifiers, then the
// color escapes. Feeding the result back through the parser yields s again.
func (s Style) AppendSequence(dst []byte) []byte {
	dst = append(dst, 0x1b, '[', '0')
	for i, code := range modifierCodes {
		if s.Mod&(1<<uint(i)) != 0 {
			dst = append(dst, ';', '0'+code)
		}
	}
	dst = append(dst, 'm')
	var b SeqBuffer
	if s.Fg.IsSet() {
		s.Fg.RenderFg(&b)
		dst = append(dst, b.Bytes()...)
		b.Reset()
	}
	if s.Bg.IsSet() {
		s.Bg.RenderBg(&b)
		dst = append(dst, b.Bytes()...)
	}
	return dst
}

// Sequence returns AppendSequence as a string.
func (s Style) Sequence() string {
	return string(s.AppendSequence(nil))
}
