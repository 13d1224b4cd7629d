// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: document/parse_test.go
// Summary: Behavioral tests for the stream -> styled document builder.

package document

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/framegrace/ansidoc/style"
)

func plain(content string) Line {
	return Line{{Content: content}}
}

func expectText(t *testing.T, input string, want Text) {
	t.Helper()
	got := ParseString(input)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse(%q):\n got  %+v\n want %+v", input, got, want)
	}
}

// TestPlainTextVerbatim: with no ESC byte, every newline-delimited segment
// becomes one line holding a single unstyled span, byte for byte.
func TestPlainTextVerbatim(t *testing.T) {
	cases := []struct {
		input string
		want  Text
	}{
		{"hello", Text{plain("hello")}},
		{"a\nb", Text{plain("a"), plain("b")}},
		{"a\tb\rc", Text{plain("a\tb\rc")}},
		{"tabs\tstay", Text{plain("tabs\tstay")}},
		{"trailing\n", Text{plain("trailing")}},
		{"a\n\nb", Text{plain("a"), nil, plain("b")}},
		{"über\n漢字", Text{plain("über"), plain("漢字")}},
	}
	for _, tc := range cases {
		expectText(t, tc.input, tc.want)
	}
}

func TestEmptyInputIsOneEmptyLine(t *testing.T) {
	got := Parse(nil)
	if len(got) != 1 || len(got[0]) != 0 {
		t.Fatalf("Parse(nil) = %+v, want one empty line", got)
	}
}

// TestBareResetEquivalence: "\x1b[0m" and "\x1b[m" mean the same thing.
func TestBareResetEquivalence(t *testing.T) {
	a := ParseString("\x1b[32mA\x1b[0mB")
	b := ParseString("\x1b[32mA\x1b[mB")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("reset forms disagree:\n %+v\n %+v", a, b)
	}
	want := Text{Line{
		{Content: "A", Style: style.Style{Fg: style.Green}},
		{Content: "B"},
	}}
	if !reflect.DeepEqual(a, want) {
		t.Fatalf("got %+v, want %+v", a, want)
	}
}

// TestIndexedColorSweep: every palette index parses for both slots.
func TestIndexedColorSweep(t *testing.T) {
	for i := 0; i <= 255; i++ {
		input := fmt.Sprintf("\x1b[38;5;%dmx", i)
		got := ParseString(input)
		want := style.Ansi256(uint8(i))
		if len(got) != 1 || len(got[0]) != 1 || got[0][0].Style.Fg != want {
			t.Fatalf("fg index %d: %+v", i, got)
		}

		input = fmt.Sprintf("\x1b[48;5;%dmx", i)
		got = ParseString(input)
		if got[0][0].Style.Bg != want {
			t.Fatalf("bg index %d: %+v", i, got)
		}
	}
}

// TestTruecolorPairs: combined fg/bg truecolor parameters in one sequence.
func TestTruecolorPairs(t *testing.T) {
	levels := []uint8{1, 50, 100, 150, 200, 255}
	for _, r := range levels {
		for _, g := range levels {
			b := levels[(int(r)+int(g))%len(levels)]
			r2, g2, b2 := g, b, r
			input := fmt.Sprintf("\x1b[38;2;%d;%d;%d;48;2;%d;%d;%dmx", r, g, b, r2, g2, b2)
			got := ParseString(input)
			st := got[0][0].Style
			if st.Fg != style.RGB(r, g, b) || st.Bg != style.RGB(r2, g2, b2) {
				t.Fatalf("truecolor %s: %+v", input, st)
			}
		}
	}
}

// TestStyleCrossesLines: the style timeline continues across newlines.
func TestStyleCrossesLines(t *testing.T) {
	green := style.Style{Fg: style.Green}
	expectText(t, "\x1b[32mA\nB", Text{
		Line{{Content: "A", Style: green}},
		Line{{Content: "B", Style: green}},
	})
}

// TestScenarioGreenReset is the first concrete scenario from the contract.
func TestScenarioGreenReset(t *testing.T) {
	expectText(t, "\x1b[32mGREEN\x1b[mFOO\nFOO", Text{
		Line{
			{Content: "GREEN", Style: style.Style{Fg: style.Green}},
			{Content: "FOO"},
		},
		Line{{Content: "FOO"}},
	})
}

// TestScenarioYellowReset is the second concrete scenario.
func TestScenarioYellowReset(t *testing.T) {
	expectText(t, "\x1b[33mA\x1b[0mB", Text{
		Line{
			{Content: "A", Style: style.Style{Fg: style.Yellow}},
			{Content: "B"},
		},
	})
}

// TestMalformedNeverLeaks: broken escapes produce no text and no panic.
func TestMalformedNeverLeaks(t *testing.T) {
	cases := []string{
		"\x1b[",
		"\x1b\x1b[0\x1b[m\x1b",
		"\x1b[38;5",
		"\x1b]unterminated osc",
		"\x1bP dcs noise",
	}
	for _, input := range cases {
		got := ParseString(input)
		if len(got) != 1 || len(got[0]) != 0 {
			t.Errorf("Parse(%q) = %+v, want one empty line", input, got)
		}
	}
}

// TestTrailingEscapeOpensRecord: bytes after the final newline form one
// last record even when every one of them is escape noise, matching the
// record count a raw newline split of the input would produce.
func TestTrailingEscapeOpensRecord(t *testing.T) {
	cases := []struct {
		input string
		lines int
	}{
		{"a\n\x1b[31m", 2},
		{"a\n\x1b[2J", 2},
		{"a\n\x1b]0;t\x07", 2},
		{"a\n\x1b[31mb", 2},
		{"a\n", 1},
	}
	for _, tc := range cases {
		got := ParseString(tc.input)
		if len(got) != tc.lines {
			t.Errorf("Parse(%q) = %d lines, want %d", tc.input, len(got), tc.lines)
			continue
		}
		if last := got[len(got)-1]; last.String() == "" && len(last) != 0 {
			t.Errorf("Parse(%q) trailing line holds empty spans: %+v", tc.input, last)
		}
	}

	// The same residue alone and after "a\n" must agree on the extra record.
	alone := ParseString("\x1b[31m")
	after := ParseString("a\n\x1b[31m")
	if !reflect.DeepEqual(alone[0], after[1]) {
		t.Errorf("trailing record %+v differs from standalone parse %+v", after[1], alone[0])
	}
}

// TestForeignSequencesDiscarded: non-SGR sequences vanish without touching
// the styled text around them.
func TestForeignSequencesDiscarded(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"a\x1b[2Jb", "ab"},                 // clear screen
		{"a\x1b[?25hb", "ab"},               // cursor visibility
		{"a\x1b]0;title\x07b", "ab"},        // OSC, BEL-terminated
		{"a\x1b]0;title\x1b\\b", "ab"},      // OSC, ST-terminated
		{"a\x1bPq payload\x1b\\b", "ab"},    // DCS
		{"a\x1b(Bb", "ab"},                  // charset designation
	}
	for _, tc := range cases {
		got := ParseString(tc.input)
		if got.String() != tc.want {
			t.Errorf("Parse(%q) text = %q, want %q", tc.input, got.String(), tc.want)
		}
		if len(got[0]) != 1 || !got[0][0].Style.IsZero() {
			t.Errorf("Parse(%q) spans = %+v", tc.input, got[0])
		}
	}
}

// TestEmptySpansDropStyleAdvances: style-only sequences never emit empty
// spans, but the style change still lands on subsequent text.
func TestEmptySpansDropStyleAdvances(t *testing.T) {
	got := ParseString("\x1b[31m\x1b[32mx")
	want := Text{Line{{Content: "x", Style: style.Style{Fg: style.Green}}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

// TestStyleRenderRoundTrip: rendering a style's escapes and re-parsing them
// yields the same style, across representative colors and modifiers.
func TestStyleRenderRoundTrip(t *testing.T) {
	colors := []style.Color{
		{},
		style.Black,
		style.Green,
		style.BrightWhite,
		style.Ansi256(0),
		style.Ansi256(16),
		style.Ansi256(214),
		style.Ansi256(255),
		style.RGB(0, 0, 0),
		style.RGB(1, 50, 100),
		style.RGB(150, 200, 255),
	}
	mods := []style.Modifier{
		0,
		style.Bold,
		style.Dim | style.Italic,
		style.Underline | style.SlowBlink | style.RapidBlink,
		style.Reverse | style.Hidden | style.CrossedOut,
	}
	for _, fg := range colors {
		for _, bg := range colors {
			for _, mod := range mods {
				orig := style.Style{Fg: fg, Bg: bg, Mod: mod}
				input := append(orig.AppendSequence(nil), 'x')
				got := Parse(input)
				if len(got) != 1 || len(got[0]) != 1 {
					t.Fatalf("round trip shape for %v: %+v", orig, got)
				}
				if got[0][0].Style != orig {
					t.Fatalf("round trip of %v came back %v", orig, got[0][0].Style)
				}
			}
		}
	}
}

// TestDocumentRenderRoundTrip: a parsed document survives RenderSGR.
func TestDocumentRenderRoundTrip(t *testing.T) {
	input := "\x1b[1;38;5;214mtitle\x1b[m\nbody \x1b[4munder\x1b[24mline\n\x1b[48;2;10;20;30m end"
	text := ParseString(input)
	again := ParseString(text.RenderSGR())
	if !reflect.DeepEqual(text, again) {
		t.Fatalf("render round trip:\n got  %+v\n want %+v", again, text)
	}
}

func TestParseLine(t *testing.T) {
	line := ParseLine([]byte("\x1b[35mm\x1b[0magenta"))
	want := Line{
		{Content: "m", Style: style.Style{Fg: style.Magenta}},
		{Content: "agenta"},
	}
	if !reflect.DeepEqual(line, want) {
		t.Fatalf("ParseLine = %+v, want %+v", line, want)
	}
	if got := ParseLine([]byte("first\nsecond")); !reflect.DeepEqual(got, plain("first")) {
		t.Fatalf("ParseLine multi-record = %+v", got)
	}
}

func TestInvalidUtf8Dropped(t *testing.T) {
	// Invalid bytes disappear; surrounding text survives.
	got := ParseString("a\x80\xffb")
	if got.String() != "ab" {
		t.Fatalf("invalid utf8: %q", got.String())
	}
}

func TestWidths(t *testing.T) {
	text := ParseString("ab漢\n\x1b[1mxy")
	if w := text[0].Width(); w != 4 {
		t.Errorf("line 0 width = %d, want 4", w)
	}
	if w := text[1].Width(); w != 2 {
		t.Errorf("line 1 width = %d, want 2", w)
	}
	if w := (Span{Content: "漢字"}).Width(); w != 4 {
		t.Errorf("span width = %d, want 4", w)
	}
}

func TestTextString(t *testing.T) {
	text := ParseString("\x1b[31mred\x1b[m line\nsecond")
	if got := text.String(); got != "red line\nsecond" {
		t.Fatalf("String = %q", got)
	}
}

// TestAdversarialTermination throws escape soup at the parser; the only
// requirement is that it returns with no escape bytes in the output.
func TestAdversarialTermination(t *testing.T) {
	soup := strings.Repeat("\x1b[38;2;1;\x1b]x\x1b\x1b[m;;;\x07\x90\xc2ok\n", 257)
	text := ParseString(soup)
	if strings.ContainsRune(text.String(), 0x1b) {
		t.Fatal("escape byte leaked into document text")
	}
}
