// Package rawtok models the primitive token stream produced by the
// upstream tokenizer.
// Invariants:
//   - Tokens arrive in source order, except heredoc bodies: the body
//     content and terminator directly follow the opener token, ahead of
//     the remainder of the opener's source line.
//   - Token.State is the lexer state *after* the token; the state in
//     effect while classifying a token is the previous token's State.
//   - Positions are 1-based lines and 0-based byte columns.
package rawtok

// Kind is the primitive token type tag: the upstream scanner event name
// without its event prefix. The set is closed; a tag outside it is a
// fatal version mismatch, not a parse error.
type Kind string

const (
	KindIdent     Kind = "ident"
	KindConst     Kind = "const"
	KindIVar      Kind = "ivar"
	KindCVar      Kind = "cvar"
	KindGVar      Kind = "gvar"
	KindBackRef   Kind = "backref"
	KindLabel     Kind = "label"
	KindInt       Kind = "int"
	KindFloat     Kind = "float"
	KindRational  Kind = "rational"
	KindImaginary Kind = "imaginary"
	// KindChar is the character-literal tag. Upstream revisions disagree
	// on its casing; see KindCharLower.
	KindChar      Kind = "CHAR"
	KindCharLower Kind = "char"

	KindKeyword  Kind = "kw"
	KindOperator Kind = "op"

	KindLBrace    Kind = "lbrace"
	KindRBrace    Kind = "rbrace"
	KindLBracket  Kind = "lbracket"
	KindRBracket  Kind = "rbracket"
	KindLParen    Kind = "lparen"
	KindRParen    Kind = "rparen"
	KindComma     Kind = "comma"
	KindPeriod    Kind = "period"
	KindSemicolon Kind = "semicolon"
	KindBacktick  Kind = "backtick"
	KindLambda    Kind = "tlambda"
	KindLambdaBeg Kind = "tlambeg"

	KindEmbExprBeg Kind = "embexpr_beg"
	KindEmbExprEnd Kind = "embexpr_end"
	KindEmbVar     Kind = "embvar"

	KindStringBeg     Kind = "tstring_beg"
	KindStringContent Kind = "tstring_content"
	KindStringEnd     Kind = "tstring_end"
	KindSymBeg        Kind = "symbeg"
	KindHeredocBeg    Kind = "heredoc_beg"
	KindHeredocEnd    Kind = "heredoc_end"
	KindRegexpBeg     Kind = "regexp_beg"
	KindRegexpEnd     Kind = "regexp_end"

	KindWordsBeg    Kind = "words_beg"
	KindQWordsBeg   Kind = "qwords_beg"
	KindSymbolsBeg  Kind = "symbols_beg"
	KindQSymbolsBeg Kind = "qsymbols_beg"
	KindWordsSep    Kind = "words_sep"

	KindEmbdocBeg Kind = "embdoc_beg"
	KindEmbdoc    Kind = "embdoc"
	KindEmbdocEnd Kind = "embdoc_end"
	KindComment   Kind = "comment"

	KindNewline   Kind = "nl"
	KindIgnoredNL Kind = "ignored_nl"
	KindSpace     Kind = "sp"
	KindIgnoredSp Kind = "ignored_sp"

	KindEndMarker Kind = "__end__"
)

// Token is one primitive token as delivered by the upstream tokenizer.
type Token struct {
	Line  uint32
	Col   uint32
	Kind  Kind
	Text  string
	State LexState // lexer state after this token
}

// IsNumeric reports whether the token is a numeric literal, for the
// one-token lookahead used by the unary-minus rule.
func (t Token) IsNumeric() bool {
	switch t.Kind {
	case KindInt, KindFloat, KindRational, KindImaginary:
		return true
	default:
		return false
	}
}

// IsIgnored reports whether the token produces no output at all.
// Ignored tokens still advance the lexer state.
func (t Token) IsIgnored() bool {
	switch t.Kind {
	case KindSpace, KindIgnoredSp, KindIgnoredNL:
		return true
	default:
		return false
	}
}
