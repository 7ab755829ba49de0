package translate

import (
	"relex/internal/rawtok"
	"relex/internal/token"
)

// Disambiguation rules: pure functions of the current lexer state (and,
// for unary minus, one token of lookahead) returning the output kind for
// an ambiguous lexeme. The state passed in is the one in effect *before*
// the token under classification.

// braceKind classifies '{'.
func braceKind(st rawtok.LexState) token.Kind {
	switch {
	case st.Is(rawtok.StateEnd):
		return token.BlockBrace
	case st.Is(rawtok.StateEndArg):
		return token.ArgBrace
	default:
		return token.LBrace
	}
}

// bracketKind classifies '['.
func bracketKind(st rawtok.LexState) token.Kind {
	if st.Is(rawtok.StateBeg) {
		return token.ArrayBracket
	}
	return token.IndexBracket
}

// parenKind classifies '('.
func parenKind(st rawtok.LexState) token.Kind {
	switch {
	case st.HasBeg() || st.Is(rawtok.StateMid):
		return token.GroupParen
	case st.Is(rawtok.StateCmdArg), st.Is(rawtok.StateArg),
		st.Is(rawtok.StateEnd | rawtok.StateLabel):
		return token.CallParen
	default:
		return token.LParen
	}
}

// ampKind classifies '&'.
func ampKind(st rawtok.LexState) token.Kind {
	if st.Is(rawtok.StateBeg) {
		return token.BlockPassAmp
	}
	return token.Amp
}

// minusKind classifies '-'. next is the lookahead token, nil when the
// stream ends after the minus.
func minusKind(st rawtok.LexState, next *rawtok.Token) token.Kind {
	unary := st.HasBeg() || st.Is(rawtok.StateCmdArg)
	switch {
	case unary && next != nil && next.IsNumeric():
		return token.UnaryNum
	case unary:
		return token.UnaryMinus
	default:
		return token.Minus
	}
}

// colonColonKind classifies '::'.
func colonColonKind(st rawtok.LexState) token.Kind {
	if st.Is(rawtok.StateBeg) {
		return token.TopConstColon
	}
	return token.ScopeColon
}

// rangeKind classifies '..' and '...'.
func rangeKind(text string, st rawtok.LexState) token.Kind {
	begless := st.Is(rawtok.StateBeg)
	if len(text) == 3 {
		if begless {
			return token.BeglessRange3
		}
		return token.Range3
	}
	if begless {
		return token.BeglessRange2
	}
	return token.Range2
}

// modifierPosition reports whether a modifier-capable keyword reads as a
// modifier in the given state: true unless the state is
// beginning-of-expression, function-name, or class-name position.
func modifierPosition(st rawtok.LexState) bool {
	switch {
	case st.Is(rawtok.StateBeg), st.Is(rawtok.StateFname), st.Is(rawtok.StateClass):
		return false
	default:
		return true
	}
}
