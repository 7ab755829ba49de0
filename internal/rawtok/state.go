package rawtok

import (
	"fmt"
	"strings"
)

// LexState is the grammatical position the upstream tokenizer believes it
// is in after emitting a token. It is a bitset: a few states travel
// combined (e.g. END|LABEL after a label-capable expression). LexState is
// input only — it never appears in output tokens.
type LexState uint16

const (
	// StateBeg marks the beginning of an expression.
	StateBeg LexState = 1 << iota
	// StateEnd marks the end of an expression.
	StateEnd
	// StateEndArg marks the end of an argument list.
	StateEndArg
	// StateEndFn marks the end of a method definition name.
	StateEndFn
	// StateArg marks argument position.
	StateArg
	// StateCmdArg marks command-argument position (paren-less call).
	StateCmdArg
	// StateMid marks mid-expression position (after return/break).
	StateMid
	// StateFname marks function-name position (after def).
	StateFname
	// StateDot marks the position after a method-call dot.
	StateDot
	// StateClass marks class-name position (after class).
	StateClass
	// StateLabel marks label position (hash keys, keyword arguments).
	StateLabel
	// StateLabeled marks the position right after a label.
	StateLabeled
	// StateFitem marks method-reference position (undef/alias arguments).
	StateFitem

	// StateNone is the zero state.
	StateNone LexState = 0
)

var stateNames = map[string]LexState{
	"BEG":     StateBeg,
	"END":     StateEnd,
	"ENDARG":  StateEndArg,
	"ENDFN":   StateEndFn,
	"ARG":     StateArg,
	"CMDARG":  StateCmdArg,
	"MID":     StateMid,
	"FNAME":   StateFname,
	"DOT":     StateDot,
	"CLASS":   StateClass,
	"LABEL":   StateLabel,
	"LABELED": StateLabeled,
	"FITEM":   StateFitem,
}

var stateBits = []struct {
	bit  LexState
	name string
}{
	{StateBeg, "BEG"},
	{StateEnd, "END"},
	{StateEndArg, "ENDARG"},
	{StateEndFn, "ENDFN"},
	{StateArg, "ARG"},
	{StateCmdArg, "CMDARG"},
	{StateMid, "MID"},
	{StateFname, "FNAME"},
	{StateDot, "DOT"},
	{StateClass, "CLASS"},
	{StateLabel, "LABEL"},
	{StateLabeled, "LABELED"},
	{StateFitem, "FITEM"},
}

// ParseState parses a |-joined state expression such as "BEG" or
// "END|LABEL". The empty string parses to StateNone.
func ParseState(s string) (LexState, error) {
	if s == "" {
		return StateNone, nil
	}
	var st LexState
	for _, part := range strings.Split(s, "|") {
		bit, ok := stateNames[strings.TrimSpace(part)]
		if !ok {
			return StateNone, fmt.Errorf("unknown lexer state %q", part)
		}
		st |= bit
	}
	return st, nil
}

// HasBeg reports whether the beginning-of-expression bit is set.
func (s LexState) HasBeg() bool {
	return s&StateBeg != 0
}

// Is reports exact equality with the given state value.
func (s LexState) Is(other LexState) bool {
	return s == other
}

// Any reports whether any of the given bits are set.
func (s LexState) Any(bits LexState) bool {
	return s&bits != 0
}

func (s LexState) String() string {
	if s == StateNone {
		return "NONE"
	}
	var parts []string
	for _, sb := range stateBits {
		if s&sb.bit != 0 {
			parts = append(parts, sb.name)
		}
	}
	return strings.Join(parts, "|")
}
