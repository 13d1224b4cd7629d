// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style/render_test.go
// Summary: Tests for escape rendering: exact bytes, buffer bounds.

package style

import "testing"

func renderFg(c Color) string {
	var b SeqBuffer
	c.RenderFg(&b)
	return b.String()
}

func renderBg(c Color) string {
	var b SeqBuffer
	c.RenderBg(&b)
	return b.String()
}

func TestRenderForeground(t *testing.T) {
	cases := []struct {
		name string
		c    Color
		want string
	}{
		{"unset", Color{}, ""},
		{"black", Black, "\x1b[30m"},
		{"white", White, "\x1b[37m"},
		{"bright-black", BrightBlack, "\x1b[90m"},
		{"bright-white", BrightWhite, "\x1b[97m"},
		{"indexed-zero", Ansi256(0), "\x1b[38;5;0m"},
		{"indexed-max", Ansi256(255), "\x1b[38;5;255m"},
		{"rgb", RGB(1, 22, 77), "\x1b[38;2;1;22;77m"},
		{"rgb-max", RGB(255, 255, 255), "\x1b[38;2;255;255;255m"},
	}
	for _, tc := range cases {
		if got := renderFg(tc.c); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRenderBackground(t *testing.T) {
	cases := []struct {
		name string
		c    Color
		want string
	}{
		{"red", Red, "\x1b[41m"},
		{"bright-cyan", BrightCyan, "\x1b[106m"},
		{"indexed", Ansi256(120), "\x1b[48;5;120m"},
		{"rgb", RGB(10, 0, 200), "\x1b[48;2;10;0;200m"},
	}
	for _, tc := range cases {
		if got := renderBg(tc.c); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRenderUnderlineColor(t *testing.T) {
	cases := []struct {
		name string
		c    Color
		want string
	}{
		{"four-bit-widens", Blue, "\x1b[58;5;4m"},
		{"indexed", Ansi256(99), "\x1b[58;5;99m"},
		{"rgb", RGB(9, 9, 9), "\x1b[58;2;9;9;9m"},
	}
	for _, tc := range cases {
		var b SeqBuffer
		tc.c.RenderUnderline(&b)
		if got := b.String(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

// TestWorstCaseFits verifies the longest escape exactly fills the fixed
// buffer without truncation.
func TestWorstCaseFits(t *testing.T) {
	var b SeqBuffer
	RGB(255, 255, 255).RenderFg(&b)
	if b.Len() != MaxColorSeq {
		t.Fatalf("worst case length = %d, want %d", b.Len(), MaxColorSeq)
	}
	if got := b.String(); got != "\x1b[38;2;255;255;255m" {
		t.Fatalf("worst case = %q", got)
	}
}

func TestAppendSequence(t *testing.T) {
	cases := []struct {
		name string
		s    Style
		want string
	}{
		{"reset", Style{}, "\x1b[0m"},
		{"bold", Style{Mod: Bold}, "\x1b[0;1m"},
		{"bold-underline", Style{Mod: Bold | Underline}, "\x1b[0;1;4m"},
		{"green-fg", Style{Fg: Green}, "\x1b[0m\x1b[32m"},
		{
			"full",
			Style{Fg: Ansi256(100), Bg: RGB(1, 2, 3), Mod: Italic},
			"\x1b[0;3m\x1b[38;5;100m\x1b[48;2;1;2;3m",
		},
	}
	for _, tc := range cases {
		if got := tc.s.Sequence(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestModifierString(t *testing.T) {
	if got := Modifier(0).String(); got != "none" {
		t.Errorf("zero modifier = %q", got)
	}
	if got := (Bold | CrossedOut).String(); got != "bold|crossedout" {
		t.Errorf("bold|crossedout = %q", got)
	}
}

func TestPatch(t *testing.T) {
	base := Style{Fg: Green, Mod: Bold}
	over := Style{Bg: Ansi256(20), Mod: Italic}
	got := base.Patch(over)
	want := Style{Fg: Green, Bg: Ansi256(20), Mod: Bold | Italic}
	if got != want {
		t.Errorf("Patch = %+v, want %+v", got, want)
	}

	// A set foreground overwrites the carried one.
	got = base.Patch(Style{Fg: Red})
	if got.Fg != Red || got.Mod != Bold {
		t.Errorf("Patch fg overwrite = %+v", got)
	}
}
