// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtscan/machine.go
// Summary: States, actions and the packed transition table of the VT scanner.
// Usage: Internal machinery for Scanner; see scanner.go for the byte feed.
// Notes: Modeled on the classic DEC parser state diagram. One packed byte
// per (state, input) cell: high nibble action, low nibble next state.

package vtscan

// State identifies where the scanner is inside the escape grammar.
type State uint8

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateCsiEntry
	StateCsiParam
	StateCsiIntermediate
	StateCsiIgnore
	StateDcsEntry
	StateDcsParam
	StateDcsIntermediate
	StateDcsPassthrough
	StateDcsIgnore
	StateOscString
	StateSosPmApcString
	StateUtf8

	stateCount
)

var stateNames = [...]string{
	"Ground", "Escape", "EscapeIntermediate", "CsiEntry", "CsiParam",
	"CsiIntermediate", "CsiIgnore", "DcsEntry", "DcsParam",
	"DcsIntermediate", "DcsPassthrough", "DcsIgnore", "OscString",
	"SosPmApcString", "Utf8",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "invalid"
}

// Action is what the scanner does with one input byte.
type Action uint8

const (
	ActionNop Action = iota
	ActionPrint
	ActionExecute
	ActionClear
	ActionCollect
	ActionParam
	ActionCsiDispatch
	ActionEscDispatch
	ActionHook
	ActionPut
	ActionUnhook
	ActionOscStart
	ActionOscPut
	ActionOscEnd
	ActionIgnore
	ActionBeginUtf8
)

var actionNames = [...]string{
	"Nop", "Print", "Execute", "Clear", "Collect", "Param", "CsiDispatch",
	"EscDispatch", "Hook", "Put", "Unhook", "OscStart", "OscPut", "OscEnd",
	"Ignore", "BeginUtf8",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "invalid"
}

// packed holds an (action, next-state) pair in one byte.
type packed uint8

func pack(a Action, s State) packed { return packed(a)<<4 | packed(s) }

func (p packed) action() Action   { return Action(p >> 4) }
func (p packed) nextState() State { return State(p & 0x0f) }

var table [stateCount][256]packed

// fill sets one contiguous byte range of a state's row.
func fill(s State, lo, hi int, a Action, next State) {
	for b := lo; b <= hi; b++ {
		table[s][b] = pack(a, next)
	}
}

// execRanges marks the C0 controls a state forwards to Execute. ESC, CAN
// and SUB are excluded: the Anywhere pass claims those before the table.
func execRanges(s State) {
	fill(s, 0x00, 0x17, ActionExecute, s)
	fill(s, 0x19, 0x19, ActionExecute, s)
	fill(s, 0x1c, 0x1f, ActionExecute, s)
}

// ignoreC0 marks the C0 controls a state swallows (the DCS family).
func ignoreC0(s State) {
	fill(s, 0x00, 0x17, ActionIgnore, s)
	fill(s, 0x19, 0x19, ActionIgnore, s)
	fill(s, 0x1c, 0x1f, ActionIgnore, s)
}

func init() {
	// Undefined cells ignore the byte and hold the current state.
	for s := State(0); s < stateCount; s++ {
		fill(s, 0x00, 0xff, ActionIgnore, s)
	}

	// Ground
	execRanges(StateGround)
	fill(StateGround, 0x20, 0x7f, ActionPrint, StateGround)
	fill(StateGround, 0x80, 0xff, ActionBeginUtf8, StateGround)

	// Escape
	execRanges(StateEscape)
	fill(StateEscape, 0x20, 0x2f, ActionCollect, StateEscapeIntermediate)
	fill(StateEscape, 0x30, 0x7e, ActionEscDispatch, StateGround)
	fill(StateEscape, 0x50, 0x50, ActionNop, StateDcsEntry)       // P
	fill(StateEscape, 0x58, 0x58, ActionNop, StateSosPmApcString) // X
	fill(StateEscape, 0x5b, 0x5b, ActionNop, StateCsiEntry)       // [
	fill(StateEscape, 0x5d, 0x5d, ActionNop, StateOscString)      // ]
	fill(StateEscape, 0x5e, 0x5f, ActionNop, StateSosPmApcString) // ^ _
	fill(StateEscape, 0x7f, 0x7f, ActionIgnore, StateEscape)

	// EscapeIntermediate
	execRanges(StateEscapeIntermediate)
	fill(StateEscapeIntermediate, 0x20, 0x2f, ActionCollect, StateEscapeIntermediate)
	fill(StateEscapeIntermediate, 0x30, 0x7e, ActionEscDispatch, StateGround)
	fill(StateEscapeIntermediate, 0x7f, 0x7f, ActionIgnore, StateEscapeIntermediate)

	// CsiEntry
	execRanges(StateCsiEntry)
	fill(StateCsiEntry, 0x20, 0x2f, ActionCollect, StateCsiIntermediate)
	fill(StateCsiEntry, 0x30, 0x39, ActionParam, StateCsiParam)
	fill(StateCsiEntry, 0x3a, 0x3a, ActionIgnore, StateCsiIgnore)
	fill(StateCsiEntry, 0x3b, 0x3b, ActionParam, StateCsiParam)
	fill(StateCsiEntry, 0x3c, 0x3f, ActionCollect, StateCsiParam)
	fill(StateCsiEntry, 0x40, 0x7e, ActionCsiDispatch, StateGround)
	fill(StateCsiEntry, 0x7f, 0x7f, ActionIgnore, StateCsiEntry)

	// CsiParam
	execRanges(StateCsiParam)
	fill(StateCsiParam, 0x20, 0x2f, ActionCollect, StateCsiIntermediate)
	fill(StateCsiParam, 0x30, 0x39, ActionParam, StateCsiParam)
	fill(StateCsiParam, 0x3a, 0x3a, ActionIgnore, StateCsiIgnore)
	fill(StateCsiParam, 0x3b, 0x3b, ActionParam, StateCsiParam)
	fill(StateCsiParam, 0x3c, 0x3f, ActionIgnore, StateCsiIgnore)
	fill(StateCsiParam, 0x40, 0x7e, ActionCsiDispatch, StateGround)
	fill(StateCsiParam, 0x7f, 0x7f, ActionIgnore, StateCsiParam)

	// CsiIntermediate
	execRanges(StateCsiIntermediate)
	fill(StateCsiIntermediate, 0x20, 0x2f, ActionCollect, StateCsiIntermediate)
	fill(StateCsiIntermediate, 0x30, 0x3f, ActionIgnore, StateCsiIgnore)
	fill(StateCsiIntermediate, 0x40, 0x7e, ActionCsiDispatch, StateGround)
	fill(StateCsiIntermediate, 0x7f, 0x7f, ActionIgnore, StateCsiIntermediate)

	// CsiIgnore
	execRanges(StateCsiIgnore)
	fill(StateCsiIgnore, 0x20, 0x3f, ActionIgnore, StateCsiIgnore)
	fill(StateCsiIgnore, 0x40, 0x7e, ActionIgnore, StateGround)
	fill(StateCsiIgnore, 0x7f, 0x7f, ActionIgnore, StateCsiIgnore)

	// DcsEntry
	ignoreC0(StateDcsEntry)
	fill(StateDcsEntry, 0x20, 0x2f, ActionCollect, StateDcsIntermediate)
	fill(StateDcsEntry, 0x30, 0x39, ActionParam, StateDcsParam)
	fill(StateDcsEntry, 0x3a, 0x3a, ActionIgnore, StateDcsIgnore)
	fill(StateDcsEntry, 0x3b, 0x3b, ActionParam, StateDcsParam)
	fill(StateDcsEntry, 0x3c, 0x3f, ActionCollect, StateDcsParam)
	fill(StateDcsEntry, 0x40, 0x7e, ActionNop, StateDcsPassthrough)
	fill(StateDcsEntry, 0x7f, 0x7f, ActionIgnore, StateDcsEntry)

	// DcsParam
	ignoreC0(StateDcsParam)
	fill(StateDcsParam, 0x20, 0x2f, ActionCollect, StateDcsIntermediate)
	fill(StateDcsParam, 0x30, 0x39, ActionParam, StateDcsParam)
	fill(StateDcsParam, 0x3a, 0x3a, ActionIgnore, StateDcsIgnore)
	fill(StateDcsParam, 0x3b, 0x3b, ActionParam, StateDcsParam)
	fill(StateDcsParam, 0x3c, 0x3f, ActionIgnore, StateDcsIgnore)
	fill(StateDcsParam, 0x40, 0x7e, ActionNop, StateDcsPassthrough)
	fill(StateDcsParam, 0x7f, 0x7f, ActionIgnore, StateDcsParam)

	// DcsIntermediate
	ignoreC0(StateDcsIntermediate)
	fill(StateDcsIntermediate, 0x20, 0x2f, ActionCollect, StateDcsIntermediate)
	fill(StateDcsIntermediate, 0x30, 0x3f, ActionIgnore, StateDcsIgnore)
	fill(StateDcsIntermediate, 0x40, 0x7e, ActionNop, StateDcsPassthrough)
	fill(StateDcsIntermediate, 0x7f, 0x7f, ActionIgnore, StateDcsIntermediate)

	// DcsPassthrough: everything is payload until ST/CAN/SUB.
	fill(StateDcsPassthrough, 0x00, 0x17, ActionPut, StateDcsPassthrough)
	fill(StateDcsPassthrough, 0x19, 0x19, ActionPut, StateDcsPassthrough)
	fill(StateDcsPassthrough, 0x1c, 0x1f, ActionPut, StateDcsPassthrough)
	fill(StateDcsPassthrough, 0x20, 0x7e, ActionPut, StateDcsPassthrough)
	fill(StateDcsPassthrough, 0x80, 0xff, ActionPut, StateDcsPassthrough)
	fill(StateDcsPassthrough, 0x7f, 0x7f, ActionIgnore, StateDcsPassthrough)

	// OscString: BEL terminates (xterm form); ESC \ arrives via Anywhere.
	fill(StateOscString, 0x07, 0x07, ActionOscEnd, StateGround)
	fill(StateOscString, 0x20, 0xff, ActionOscPut, StateOscString)

	// DcsIgnore and SosPmApcString keep the init default: swallow
	// everything until the Anywhere pass pulls the scanner out.
}
