package token

// Kind represents the category of an output token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota

	// Ident represents a local variable or method name.
	Ident
	// Const represents a constant name.
	Const
	// IVar represents an instance variable.
	IVar // @foo
	// CVar represents a class variable.
	CVar // @@foo
	// GVar represents a global variable.
	GVar // $foo
	// Label represents a hash-key or keyword-argument label.
	Label // foo:
	// Backtick represents the command-string opening backtick.
	Backtick

	// NthRef represents a numbered regexp group reference.
	NthRef // $1
	// BackRef represents a named or special back-reference.
	BackRef // $&, $`

	// Integer represents an integer literal.
	Integer
	// Float represents a floating-point literal.
	Float
	// Rational represents a rational literal.
	Rational // 3r, 3.14r
	// Imaginary represents an imaginary literal.
	Imaginary // 3i, 3.14i
	// Char represents a character literal.
	Char // ?a

	// String represents a fully folded trivial string literal.
	String
	// Symbol represents a fully folded shorthand symbol literal.
	Symbol

	// StringBeg opens a non-trivial string or a heredoc.
	StringBeg
	// StringContent is one content segment of an unfolded string.
	StringContent
	// StringEnd closes a string, heredoc, or regexp body.
	StringEnd
	// SymbolBeg opens a quoted symbol.
	SymbolBeg
	// RegexpBeg opens a regexp literal.
	RegexpBeg
	// RegexpOpt carries the option flags trailing a regexp.
	RegexpOpt
	// WordsBeg opens a %W word list.
	WordsBeg
	// QWordsBeg opens a %w word list.
	QWordsBeg
	// SymbolsBeg opens a %I symbol list.
	SymbolsBeg
	// QSymbolsBeg opens a %i symbol list.
	QSymbolsBeg
	// WordsSep separates word-list elements.
	WordsSep
	// EmbExprBeg opens an interpolation.
	EmbExprBeg // #{
	// EmbExprEnd closes an interpolation.
	EmbExprEnd // }
	// EmbVar marks a shorthand interpolated variable.
	EmbVar // #@foo, #$foo

	// Comment represents a line comment or a folded embedded-doc block.
	Comment
	// EndMarker represents the data-section marker.
	EndMarker // __END__

	// Newline represents a logical line end.
	Newline
	// Semicolon represents the statement separator.
	Semicolon // ;
	// Comma represents the comma separator.
	Comma // ,
	// Dot represents the method-call period.
	Dot // .

	// BlockBrace opens a block at end-of-expression position.
	BlockBrace // {
	// ArgBrace opens a block after an argument list.
	ArgBrace // {
	// LBrace opens a hash or other generic brace construct.
	LBrace // {
	// RBrace closes a brace.
	RBrace // }
	// ArrayBracket opens an array literal.
	ArrayBracket // [
	// IndexBracket opens an index operation.
	IndexBracket // [
	// RBracket closes a bracket.
	RBracket // ]
	// GroupParen opens a grouping parenthesis.
	GroupParen // (
	// CallParen opens a call argument list.
	CallParen // (
	// LParen opens a plain parenthesis.
	LParen // (
	// RParen closes a parenthesis.
	RParen // )

	// Lambda represents the stabby-lambda arrow.
	Lambda // ->
	// LambdaBrace opens a lambda body brace.
	LambdaBrace // {

	// BlockPassAmp represents a block-pass ampersand.
	BlockPassAmp // &expr
	// Amp represents the bitwise/boolean ampersand.
	Amp // &

	// UnaryNum represents a numeric sign folded onto a literal.
	UnaryNum // -1
	// UnaryMinus represents unary minus.
	UnaryMinus // -x
	// Minus represents binary minus.
	Minus // a - b
	// UnaryPlus represents unary plus.
	UnaryPlus // +x
	// Plus represents binary plus.
	Plus // a + b

	// TopConstColon represents the top-level scope operator.
	TopConstColon // ::Foo
	// ScopeColon represents the scope-resolution operator.
	ScopeColon // Foo::Bar
	// Colon represents the ternary colon.
	Colon // ? :

	// BeglessRange2 represents a begin-less two-dot range.
	BeglessRange2 // ..2
	// BeglessRange3 represents a begin-less three-dot range.
	BeglessRange3 // ...2
	// Range2 represents a two-dot range.
	Range2 // 1..2
	// Range3 represents a three-dot range.
	Range3 // 1...2

	// OpAssign represents compound assignment; the payload carries the
	// base operator text with the trailing '=' stripped.
	OpAssign // +=, ||=

	// Star represents splat or multiplication.
	Star // *
	// DStar represents double-splat or exponentiation.
	DStar // **
	// Slash represents division.
	Slash // /
	// Percent represents modulo.
	Percent // %
	// Caret represents bitwise xor.
	Caret // ^
	// Pipe represents bitwise or block-parameter pipe.
	Pipe // |
	// Tilde represents bitwise negation.
	Tilde // ~
	// Bang represents boolean negation.
	Bang // !
	// Assign represents plain assignment.
	Assign // =
	// EqEq represents equality.
	EqEq // ==
	// EqEqEq represents case equality.
	EqEqEq // ===
	// Match represents the regexp match operator.
	Match // =~
	// NotMatch represents the regexp non-match operator.
	NotMatch // !~
	// NotEq represents inequality.
	NotEq // !=
	// Cmp represents the comparison operator.
	Cmp // <=>
	// Lt represents less-than.
	Lt // <
	// LtEq represents less-or-equal.
	LtEq // <=
	// Gt represents greater-than.
	Gt // >
	// GtEq represents greater-or-equal.
	GtEq // >=
	// Shl represents left shift.
	Shl // <<
	// Shr represents right shift.
	Shr // >>
	// AndOp represents boolean and.
	AndOp // &&
	// OrOp represents boolean or.
	OrOp // ||
	// Assoc represents the hash-rocket.
	Assoc // =>
	// SafeNav represents the safe-navigation operator.
	SafeNav // &.
	// Question represents the ternary question mark.
	Question // ?
	// ARef represents the index-read operator method name.
	ARef // []
	// ASet represents the index-write operator method name.
	ASet // []=

	// KwAlias represents the 'alias' keyword.
	KwAlias
	// KwAnd represents the 'and' keyword.
	KwAnd
	// KwBegin represents the 'begin' keyword.
	KwBegin
	// KwBeginUpcase represents the 'BEGIN' keyword.
	KwBeginUpcase
	// KwBreak represents the 'break' keyword.
	KwBreak
	// KwCase represents the 'case' keyword.
	KwCase
	// KwClass represents the 'class' keyword.
	KwClass
	// KwDef represents the 'def' keyword.
	KwDef
	// KwDefined represents the 'defined?' keyword.
	KwDefined
	// KwDo represents the 'do' keyword.
	KwDo
	// KwElse represents the 'else' keyword.
	KwElse
	// KwElsif represents the 'elsif' keyword.
	KwElsif
	// KwEnd represents the 'end' keyword.
	KwEnd
	// KwEndUpcase represents the 'END' keyword.
	KwEndUpcase
	// KwEnsure represents the 'ensure' keyword.
	KwEnsure
	// KwFalse represents the 'false' keyword.
	KwFalse
	// KwFor represents the 'for' keyword.
	KwFor
	// KwIf represents the block form of 'if'.
	KwIf
	// KwIfMod represents the modifier form of 'if'.
	KwIfMod
	// KwIn represents the 'in' keyword.
	KwIn
	// KwModule represents the 'module' keyword.
	KwModule
	// KwNext represents the 'next' keyword.
	KwNext
	// KwNil represents the 'nil' keyword.
	KwNil
	// KwNot represents the 'not' keyword.
	KwNot
	// KwOr represents the 'or' keyword.
	KwOr
	// KwRedo represents the 'redo' keyword.
	KwRedo
	// KwRescue represents the block form of 'rescue'.
	KwRescue
	// KwRescueMod represents the modifier form of 'rescue'.
	KwRescueMod
	// KwRetry represents the 'retry' keyword.
	KwRetry
	// KwReturn represents the 'return' keyword.
	KwReturn
	// KwSelf represents the 'self' keyword.
	KwSelf
	// KwSuper represents the 'super' keyword.
	KwSuper
	// KwThen represents the 'then' keyword.
	KwThen
	// KwTrue represents the 'true' keyword.
	KwTrue
	// KwUndef represents the 'undef' keyword.
	KwUndef
	// KwUnless represents the block form of 'unless'.
	KwUnless
	// KwUnlessMod represents the modifier form of 'unless'.
	KwUnlessMod
	// KwUntil represents the block form of 'until'.
	KwUntil
	// KwUntilMod represents the modifier form of 'until'.
	KwUntilMod
	// KwWhen represents the 'when' keyword.
	KwWhen
	// KwWhile represents the block form of 'while'.
	KwWhile
	// KwWhileMod represents the modifier form of 'while'.
	KwWhileMod
	// KwYield represents the 'yield' keyword.
	KwYield
	// KwFile represents the '__FILE__' pseudo-literal.
	KwFile
	// KwLine represents the '__LINE__' pseudo-literal.
	KwLine
	// KwEncoding represents the '__ENCODING__' pseudo-literal.
	KwEncoding
)

var kindNames = map[Kind]string{
	Invalid:       "invalid",
	Ident:         "ident",
	Const:         "const",
	IVar:          "ivar",
	CVar:          "cvar",
	GVar:          "gvar",
	Label:         "label",
	Backtick:      "backtick",
	NthRef:        "nth_ref",
	BackRef:       "back_ref",
	Integer:       "integer",
	Float:         "float",
	Rational:      "rational",
	Imaginary:     "imaginary",
	Char:          "char",
	String:        "string",
	Symbol:        "symbol",
	StringBeg:     "string_beg",
	StringContent: "string_content",
	StringEnd:     "string_end",
	SymbolBeg:     "symbol_beg",
	RegexpBeg:     "regexp_beg",
	RegexpOpt:     "regexp_opt",
	WordsBeg:      "words_beg",
	QWordsBeg:     "qwords_beg",
	SymbolsBeg:    "symbols_beg",
	QSymbolsBeg:   "qsymbols_beg",
	WordsSep:      "words_sep",
	EmbExprBeg:    "embexpr_beg",
	EmbExprEnd:    "embexpr_end",
	EmbVar:        "embvar",
	Comment:       "comment",
	EndMarker:     "end_marker",
	Newline:       "newline",
	Semicolon:     "semicolon",
	Comma:         "comma",
	Dot:           "dot",
	BlockBrace:    "block_brace",
	ArgBrace:      "arg_brace",
	LBrace:        "lbrace",
	RBrace:        "rbrace",
	ArrayBracket:  "array_bracket",
	IndexBracket:  "index_bracket",
	RBracket:      "rbracket",
	GroupParen:    "group_paren",
	CallParen:     "call_paren",
	LParen:        "lparen",
	RParen:        "rparen",
	Lambda:        "lambda",
	LambdaBrace:   "lambda_brace",
	BlockPassAmp:  "block_pass_amp",
	Amp:           "amp",
	UnaryNum:      "unary_num",
	UnaryMinus:    "unary_minus",
	Minus:         "minus",
	UnaryPlus:     "unary_plus",
	Plus:          "plus",
	TopConstColon: "top_const_colon",
	ScopeColon:    "scope_colon",
	Colon:         "colon",
	BeglessRange2: "begless_range2",
	BeglessRange3: "begless_range3",
	Range2:        "range2",
	Range3:        "range3",
	OpAssign:      "op_assign",
	Star:          "star",
	DStar:         "dstar",
	Slash:         "slash",
	Percent:       "percent",
	Caret:         "caret",
	Pipe:          "pipe",
	Tilde:         "tilde",
	Bang:          "bang",
	Assign:        "assign",
	EqEq:          "eq_eq",
	EqEqEq:        "eq_eq_eq",
	Match:         "match",
	NotMatch:      "not_match",
	NotEq:         "not_eq",
	Cmp:           "cmp",
	Lt:            "lt",
	LtEq:          "lt_eq",
	Gt:            "gt",
	GtEq:          "gt_eq",
	Shl:           "shl",
	Shr:           "shr",
	AndOp:         "and_op",
	OrOp:          "or_op",
	Assoc:         "assoc",
	SafeNav:       "safe_nav",
	Question:      "question",
	ARef:          "aref",
	ASet:          "aset",
	KwAlias:       "kw_alias",
	KwAnd:         "kw_and",
	KwBegin:       "kw_begin",
	KwBeginUpcase: "kw_BEGIN",
	KwBreak:       "kw_break",
	KwCase:        "kw_case",
	KwClass:       "kw_class",
	KwDef:         "kw_def",
	KwDefined:     "kw_defined",
	KwDo:          "kw_do",
	KwElse:        "kw_else",
	KwElsif:       "kw_elsif",
	KwEnd:         "kw_end",
	KwEndUpcase:   "kw_END",
	KwEnsure:      "kw_ensure",
	KwFalse:       "kw_false",
	KwFor:         "kw_for",
	KwIf:          "kw_if",
	KwIfMod:       "kw_if_mod",
	KwIn:          "kw_in",
	KwModule:      "kw_module",
	KwNext:        "kw_next",
	KwNil:         "kw_nil",
	KwNot:         "kw_not",
	KwOr:          "kw_or",
	KwRedo:        "kw_redo",
	KwRescue:      "kw_rescue",
	KwRescueMod:   "kw_rescue_mod",
	KwRetry:       "kw_retry",
	KwReturn:      "kw_return",
	KwSelf:        "kw_self",
	KwSuper:       "kw_super",
	KwThen:        "kw_then",
	KwTrue:        "kw_true",
	KwUndef:       "kw_undef",
	KwUnless:      "kw_unless",
	KwUnlessMod:   "kw_unless_mod",
	KwUntil:       "kw_until",
	KwUntilMod:    "kw_until_mod",
	KwWhen:        "kw_when",
	KwWhile:       "kw_while",
	KwWhileMod:    "kw_while_mod",
	KwYield:       "kw_yield",
	KwFile:        "kw___FILE__",
	KwLine:        "kw___LINE__",
	KwEncoding:    "kw___ENCODING__",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// IsKeyword reports whether the kind is a keyword or pseudo-literal.
func (k Kind) IsKeyword() bool {
	return k >= KwAlias && k <= KwEncoding
}
