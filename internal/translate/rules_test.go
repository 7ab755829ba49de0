package translate

import (
	"math/big"
	"testing"

	"relex/internal/rawtok"
	"relex/internal/token"
)

func TestBraceKind(t *testing.T) {
	tests := []struct {
		name     string
		st       rawtok.LexState
		expected token.Kind
	}{
		{name: "end of expression opens a block", st: rawtok.StateEnd, expected: token.BlockBrace},
		{name: "end of argument list opens an arg block", st: rawtok.StateEndArg, expected: token.ArgBrace},
		{name: "beginning of expression is generic", st: rawtok.StateBeg, expected: token.LBrace},
		{name: "combined end-label is generic", st: rawtok.StateEnd | rawtok.StateLabel, expected: token.LBrace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := braceKind(tt.st); got != tt.expected {
				t.Errorf("braceKind(%v) = %v, want %v", tt.st, got, tt.expected)
			}
		})
	}
}

func TestBracketKind(t *testing.T) {
	if got := bracketKind(rawtok.StateBeg); got != token.ArrayBracket {
		t.Errorf("BEG bracket = %v, want array", got)
	}
	if got := bracketKind(rawtok.StateEnd); got != token.IndexBracket {
		t.Errorf("END bracket = %v, want index", got)
	}
	if got := bracketKind(rawtok.StateBeg | rawtok.StateLabel); got != token.IndexBracket {
		t.Errorf("BEG|LABEL bracket = %v, want index (exact-state rule)", got)
	}
}

func TestParenKind(t *testing.T) {
	tests := []struct {
		name     string
		st       rawtok.LexState
		expected token.Kind
	}{
		{name: "beg bit groups", st: rawtok.StateBeg, expected: token.GroupParen},
		{name: "beg bit with label groups", st: rawtok.StateBeg | rawtok.StateLabel, expected: token.GroupParen},
		{name: "mid groups", st: rawtok.StateMid, expected: token.GroupParen},
		{name: "command argument calls", st: rawtok.StateCmdArg, expected: token.CallParen},
		{name: "argument calls", st: rawtok.StateArg, expected: token.CallParen},
		{name: "end-label calls", st: rawtok.StateEnd | rawtok.StateLabel, expected: token.CallParen},
		{name: "plain end is plain", st: rawtok.StateEnd, expected: token.LParen},
		{name: "fname is plain", st: rawtok.StateFname, expected: token.LParen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parenKind(tt.st); got != tt.expected {
				t.Errorf("parenKind(%v) = %v, want %v", tt.st, got, tt.expected)
			}
		})
	}
}

func TestAmpKind(t *testing.T) {
	if got := ampKind(rawtok.StateBeg); got != token.BlockPassAmp {
		t.Errorf("BEG amp = %v, want block pass", got)
	}
	if got := ampKind(rawtok.StateArg); got != token.Amp {
		t.Errorf("ARG amp = %v, want plain amp", got)
	}
}

func TestMinusKind(t *testing.T) {
	num := &rawtok.Token{Kind: rawtok.KindInt, Text: "1"}
	ident := &rawtok.Token{Kind: rawtok.KindIdent, Text: "x"}

	tests := []struct {
		name     string
		st       rawtok.LexState
		next     *rawtok.Token
		expected token.Kind
	}{
		{name: "beg before numeric is a sign", st: rawtok.StateBeg, next: num, expected: token.UnaryNum},
		{name: "cmdarg before numeric is a sign", st: rawtok.StateCmdArg, next: num, expected: token.UnaryNum},
		{name: "beg before ident is unary", st: rawtok.StateBeg, next: ident, expected: token.UnaryMinus},
		{name: "beg with no lookahead is unary", st: rawtok.StateBeg, next: nil, expected: token.UnaryMinus},
		{name: "end is binary", st: rawtok.StateEnd, next: num, expected: token.Minus},
		{name: "arg is binary", st: rawtok.StateArg, next: ident, expected: token.Minus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minusKind(tt.st, tt.next); got != tt.expected {
				t.Errorf("minusKind(%v) = %v, want %v", tt.st, got, tt.expected)
			}
		})
	}
}

func TestColonColonKind(t *testing.T) {
	if got := colonColonKind(rawtok.StateBeg); got != token.TopConstColon {
		t.Errorf("BEG :: = %v, want top const", got)
	}
	if got := colonColonKind(rawtok.StateEnd); got != token.ScopeColon {
		t.Errorf("END :: = %v, want scope", got)
	}
}

func TestRangeKind(t *testing.T) {
	tests := []struct {
		text     string
		st       rawtok.LexState
		expected token.Kind
	}{
		{text: "..", st: rawtok.StateBeg, expected: token.BeglessRange2},
		{text: "...", st: rawtok.StateBeg, expected: token.BeglessRange3},
		{text: "..", st: rawtok.StateEnd, expected: token.Range2},
		{text: "...", st: rawtok.StateEnd, expected: token.Range3},
	}
	for _, tt := range tests {
		if got := rangeKind(tt.text, tt.st); got != tt.expected {
			t.Errorf("rangeKind(%q, %v) = %v, want %v", tt.text, tt.st, got, tt.expected)
		}
	}
}

func TestModifierPosition(t *testing.T) {
	for _, st := range []rawtok.LexState{rawtok.StateBeg, rawtok.StateFname, rawtok.StateClass} {
		if modifierPosition(st) {
			t.Errorf("state %v should read as block form", st)
		}
	}
	for _, st := range []rawtok.LexState{rawtok.StateEnd, rawtok.StateArg, rawtok.StateMid, rawtok.StateEnd | rawtok.StateLabel} {
		if !modifierPosition(st) {
			t.Errorf("state %v should read as modifier form", st)
		}
	}
}

func TestOpAssignBase(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{text: "+=", expected: "+"},
		{text: "||=", expected: "||"},
		{text: "&&=", expected: "&&"},
		{text: "<<=", expected: "<<"},
		{text: "**=", expected: "**"},
		{text: "<=", expected: ""},
		{text: ">=", expected: ""},
		{text: "==", expected: ""},
		{text: "===", expected: ""},
		{text: "!=", expected: ""},
		{text: "=", expected: ""},
	}
	for _, tt := range tests {
		if got := opAssignBase(tt.text); got != tt.expected {
			t.Errorf("opAssignBase(%q) = %q, want %q", tt.text, got, tt.expected)
		}
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		text     string
		expected int64
	}{
		{text: "42", expected: 42},
		{text: "1_000", expected: 1000},
		{text: "0x2A", expected: 42},
		{text: "0b101010", expected: 42},
		{text: "0o52", expected: 42},
		{text: "052", expected: 42},
		{text: "0d42", expected: 42},
		{text: "+7", expected: 7},
		{text: "0", expected: 0},
	}
	for _, tt := range tests {
		got, err := parseInteger(tt.text)
		if err != nil {
			t.Errorf("parseInteger(%q) returned error: %v", tt.text, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("parseInteger(%q) = %d, want %d", tt.text, got, tt.expected)
		}
	}
}

func TestParseFloat(t *testing.T) {
	got, err := parseFloat("1_0.5e1")
	if err != nil {
		t.Fatalf("parseFloat returned error: %v", err)
	}
	if got != 105.0 {
		t.Errorf("parseFloat = %v, want 105.0", got)
	}
}

func TestParseRational(t *testing.T) {
	tests := []struct {
		text     string
		expected *big.Rat
	}{
		{text: "3r", expected: big.NewRat(3, 1)},
		{text: "3.14r", expected: big.NewRat(157, 50)},
		{text: "1_0r", expected: big.NewRat(10, 1)},
		{text: "0x10r", expected: big.NewRat(16, 1)},
	}
	for _, tt := range tests {
		got, err := parseRational(tt.text)
		if err != nil {
			t.Errorf("parseRational(%q) returned error: %v", tt.text, err)
			continue
		}
		if got.Cmp(tt.expected) != 0 {
			t.Errorf("parseRational(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

func TestParseImaginary(t *testing.T) {
	tests := []struct {
		text     string
		expected complex128
	}{
		{text: "3i", expected: complex(0, 3)},
		{text: "3.5i", expected: complex(0, 3.5)},
		{text: "2ri", expected: complex(0, 2)},
		{text: "0x10i", expected: complex(0, 16)},
	}
	for _, tt := range tests {
		got, err := parseImaginary(tt.text)
		if err != nil {
			t.Errorf("parseImaginary(%q) returned error: %v", tt.text, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("parseImaginary(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

func TestHeredocIdent(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{text: "<<END", expected: "END"},
		{text: "<<~END", expected: "END"},
		{text: "<<-STOP", expected: "STOP"},
		{text: "<<~'EOS'", expected: "EOS"},
		{text: `<<"DOC"`, expected: "DOC"},
	}
	for _, tt := range tests {
		if got := heredocIdent(tt.text); got != tt.expected {
			t.Errorf("heredocIdent(%q) = %q, want %q", tt.text, got, tt.expected)
		}
	}
}
