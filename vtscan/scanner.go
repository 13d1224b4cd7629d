// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtscan/scanner.go
// Summary: Byte-at-a-time VT escape scanner driving a Performer.
// Usage: Feed arbitrary terminal output; the Performer sees a clean action
// stream (printable runes, C0 controls, dispatched sequences).
// Notes: Total on any input. Truncated sequences at end of stream are
// silently discarded, never replayed as text.

package vtscan

import (
	"bytes"
	"unicode/utf8"
)

// Buffer caps. Sequences that overflow keep their tail bytes dropped
// rather than aborting; the dispatch still fires with what fits, cut at
// a parameter boundary so no number arrives with digits missing.
const (
	maxParams        = 1024
	maxIntermediates = 4
	maxOscLen        = 4096
)

// Performer receives the scanner's action stream.
//
// CSI parameter bytes are delivered raw (digits and ';' separators) so
// consumers keep control over numeric interpretation; intermediates include
// any private-use markers ('<'..'?').
type Performer interface {
	// Print delivers one decoded printable rune from ground state.
	Print(r rune)
	// Execute delivers one C0 control byte (e.g. '\n', '\t', BEL).
	Execute(b byte)
	// CsiDispatch delivers a complete CSI sequence.
	CsiDispatch(params, intermediates []byte, final byte)
	// EscDispatch delivers a complete non-CSI escape (e.g. ESC c, ESC \).
	EscDispatch(intermediates []byte, final byte)
	// OscDispatch delivers an OSC payload. bel is true when the sequence
	// ended with BEL rather than the ESC \ string terminator.
	OscDispatch(data []byte, bel bool)
	// Hook, Put and Unhook frame a DCS passthrough payload.
	Hook(params, intermediates []byte, final byte)
	Put(b byte)
	Unhook()
}

// NopPerformer implements Performer with no-ops; embed it to pick out
// only the actions a consumer cares about.
type NopPerformer struct{}

func (NopPerformer) Print(rune)                      {}
func (NopPerformer) Execute(byte)                    {}
func (NopPerformer) CsiDispatch(_, _ []byte, _ byte) {}
func (NopPerformer) EscDispatch(_ []byte, _ byte)    {}
func (NopPerformer) OscDispatch(_ []byte, _ bool)    {}
func (NopPerformer) Hook(_, _ []byte, _ byte)        {}
func (NopPerformer) Put(byte)                        {}
func (NopPerformer) Unhook()                         {}

// Scanner is the escape-sequence state machine. The zero value is not
// usable; construct with NewScanner.
type Scanner struct {
	state State
	perf  Performer

	params        []byte
	paramsFull    bool
	intermediates []byte
	osc           []byte

	utf8buf  [4]byte
	utf8len  int
	utf8need int
}

// NewScanner returns a scanner in ground state feeding p.
func NewScanner(p Performer) *Scanner {
	return &Scanner{
		state:  StateGround,
		perf:   p,
		params: make([]byte, 0, 32),
		osc:    make([]byte, 0, 64),
	}
}

// State exposes the current state, mostly for tests and diagnostics.
func (s *Scanner) State() State { return s.state }

// Parse feeds a whole buffer through the scanner.
func (s *Scanner) Parse(data []byte) {
	for _, b := range data {
		s.Advance(b)
	}
}

// Finish discards any unterminated sequence and returns to ground state.
// Partial escapes at end of input contribute neither text nor dispatches,
// except that a DCS left open still gets its closing Unhook so the
// Hook/Put/Unhook bracketing stays balanced.
func (s *Scanner) Finish() {
	if s.state == StateDcsPassthrough {
		s.perf.Unhook()
	}
	s.state = StateGround
	s.utf8len = 0
	s.osc = s.osc[:0]
	s.clear()
}

// Advance processes one input byte.
func (s *Scanner) Advance(b byte) {
	if s.state == StateUtf8 {
		s.advanceUtf8(b)
		return
	}

	// Anywhere pass: CAN/SUB abort any sequence, ESC restarts one.
	// Evaluated before the per-state table.
	switch b {
	case 0x18, 0x1a:
		s.transition(ActionExecute, StateGround, b)
		return
	case 0x1b:
		s.transition(ActionNop, StateEscape, b)
		return
	}

	p := table[s.state][b]
	s.transition(p.action(), p.nextState(), b)
}

// transition runs the current state's exit action, the transition action,
// then the next state's entry action, in that order. The state is assigned
// before the action fires: BeginUtf8 sets StateUtf8 itself and that must
// survive the transition.
func (s *Scanner) transition(a Action, next State, b byte) {
	prev := s.state
	if next != prev {
		switch prev {
		case StateOscString:
			s.perf.OscDispatch(s.osc, b == 0x07)
		case StateDcsPassthrough:
			s.perf.Unhook()
		}
	}

	s.state = next
	s.perform(a, b)

	if next != prev {
		switch next {
		case StateEscape, StateCsiEntry, StateDcsEntry:
			s.clear()
		case StateOscString:
			s.osc = s.osc[:0]
		case StateDcsPassthrough:
			s.perf.Hook(s.params, s.intermediates, b)
		}
	}
}

func (s *Scanner) perform(a Action, b byte) {
	switch a {
	case ActionPrint:
		s.perf.Print(rune(b))
	case ActionExecute:
		s.perf.Execute(b)
	case ActionClear:
		s.clear()
	case ActionCollect:
		if len(s.intermediates) < maxIntermediates {
			s.intermediates = append(s.intermediates, b)
		}
	case ActionParam:
		if s.paramsFull {
			break
		}
		if len(s.params) == maxParams {
			s.paramsFull = true
			// A digit here would extend a number the buffer already cut
			// short, so the partial tail is dropped back to the last ';';
			// a ';' means the buffered tail number is intact.
			if b != ';' {
				if i := bytes.LastIndexByte(s.params, ';'); i >= 0 {
					s.params = s.params[:i]
				} else {
					s.params = s.params[:0]
				}
			}
			break
		}
		s.params = append(s.params, b)
	case ActionCsiDispatch:
		s.perf.CsiDispatch(s.params, s.intermediates, b)
	case ActionEscDispatch:
		s.perf.EscDispatch(s.intermediates, b)
	case ActionOscPut:
		if len(s.osc) < maxOscLen {
			s.osc = append(s.osc, b)
		}
	case ActionPut:
		s.perf.Put(b)
	case ActionOscEnd:
		// Dispatch happens in the exit hook; nothing extra here.
	case ActionBeginUtf8:
		s.beginUtf8(b)
	case ActionNop, ActionIgnore, ActionHook, ActionUnhook, ActionOscStart:
		// Hook, Unhook and OscStart run as entry/exit hooks instead.
	}
}

func (s *Scanner) clear() {
	s.params = s.params[:0]
	s.paramsFull = false
	s.intermediates = s.intermediates[:0]
}

// beginUtf8 starts collecting a multi-byte rune. Invalid lead bytes are
// dropped on the spot.
func (s *Scanner) beginUtf8(b byte) {
	switch {
	case b >= 0xc2 && b <= 0xdf:
		s.utf8need = 2
	case b >= 0xe0 && b <= 0xef:
		s.utf8need = 3
	case b >= 0xf0 && b <= 0xf4:
		s.utf8need = 4
	default:
		return // continuation or invalid lead in ground state
	}
	s.utf8buf[0] = b
	s.utf8len = 1
	s.state = StateUtf8
}

// advanceUtf8 collects continuation bytes. A non-continuation byte abandons
// the partial rune (dropped, not replaced) and is reprocessed from ground.
func (s *Scanner) advanceUtf8(b byte) {
	if b < 0x80 || b > 0xbf {
		s.state = StateGround
		s.utf8len = 0
		s.Advance(b)
		return
	}
	s.utf8buf[s.utf8len] = b
	s.utf8len++
	if s.utf8len < s.utf8need {
		return
	}
	r, size := utf8.DecodeRune(s.utf8buf[:s.utf8len])
	s.state = StateGround
	s.utf8len = 0
	if r == utf8.RuneError && size <= 1 {
		return // overlong or otherwise invalid encoding, dropped
	}
	s.perf.Print(r)
}
