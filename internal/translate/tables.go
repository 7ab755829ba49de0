package translate

import (
	"relex/internal/rawtok"
	"relex/internal/token"
)

// Static mapping tables. Read-only after package init; safe for
// concurrent translations.

// keywordKinds maps raw keyword text to the output kind. The five
// modifier-capable keywords map to their block forms here; the modifier
// rule overrides them by state. A miss is fatal.
var keywordKinds = map[string]token.Kind{
	"alias":        token.KwAlias,
	"and":          token.KwAnd,
	"begin":        token.KwBegin,
	"BEGIN":        token.KwBeginUpcase,
	"break":        token.KwBreak,
	"case":         token.KwCase,
	"class":        token.KwClass,
	"def":          token.KwDef,
	"defined?":     token.KwDefined,
	"do":           token.KwDo,
	"else":         token.KwElse,
	"elsif":        token.KwElsif,
	"end":          token.KwEnd,
	"END":          token.KwEndUpcase,
	"ensure":       token.KwEnsure,
	"false":        token.KwFalse,
	"for":          token.KwFor,
	"if":           token.KwIf,
	"in":           token.KwIn,
	"module":       token.KwModule,
	"next":         token.KwNext,
	"nil":          token.KwNil,
	"not":          token.KwNot,
	"or":           token.KwOr,
	"redo":         token.KwRedo,
	"rescue":       token.KwRescue,
	"retry":        token.KwRetry,
	"return":       token.KwReturn,
	"self":         token.KwSelf,
	"super":        token.KwSuper,
	"then":         token.KwThen,
	"true":         token.KwTrue,
	"undef":        token.KwUndef,
	"unless":       token.KwUnless,
	"until":        token.KwUntil,
	"when":         token.KwWhen,
	"while":        token.KwWhile,
	"yield":        token.KwYield,
	"__FILE__":     token.KwFile,
	"__LINE__":     token.KwLine,
	"__ENCODING__": token.KwEncoding,
}

// modifierKinds pairs each modifier-capable keyword with its two forms.
var modifierKinds = map[string]struct{ block, modifier token.Kind }{
	"if":     {token.KwIf, token.KwIfMod},
	"unless": {token.KwUnless, token.KwUnlessMod},
	"while":  {token.KwWhile, token.KwWhileMod},
	"until":  {token.KwUntil, token.KwUntilMod},
	"rescue": {token.KwRescue, token.KwRescueMod},
}

// operatorKinds maps operator text whose meaning does not depend on
// lexer state. State-dependent lexemes ('-', '&', '::', '..', '...')
// and compound assignments are routed to rules before this table.
var operatorKinds = map[string]token.Kind{
	"+":   token.Plus,
	"*":   token.Star,
	"**":  token.DStar,
	"/":   token.Slash,
	"%":   token.Percent,
	"^":   token.Caret,
	"|":   token.Pipe,
	"~":   token.Tilde,
	"!":   token.Bang,
	"=":   token.Assign,
	"==":  token.EqEq,
	"===": token.EqEqEq,
	"=~":  token.Match,
	"!~":  token.NotMatch,
	"!=":  token.NotEq,
	"<=>": token.Cmp,
	"<":   token.Lt,
	"<=":  token.LtEq,
	">":   token.Gt,
	">=":  token.GtEq,
	"<<":  token.Shl,
	">>":  token.Shr,
	"&&":  token.AndOp,
	"||":  token.OrOp,
	"=>":  token.Assoc,
	"&.":  token.SafeNav,
	"?":   token.Question,
	":":   token.Colon,
	".":   token.Dot,
	"[]":  token.ARef,
	"[]=": token.ASet,
	"+@":  token.UnaryPlus,
	"-@":  token.UnaryMinus,
	"!@":  token.Bang,
	"~@":  token.Tilde,
}

// opAssignBases is the set of operators that form compound assignments.
// Membership distinguishes '+=' from comparison texts like '<=' whose
// stripped base is not an operator in this set.
var opAssignBases = map[string]bool{
	"+":  true,
	"-":  true,
	"*":  true,
	"/":  true,
	"%":  true,
	"**": true,
	"<<": true,
	">>": true,
	"&":  true,
	"|":  true,
	"^":  true,
	"&&": true,
	"||": true,
}

// opAssignBase returns the base operator text for a compound
// assignment lexeme, or "" when the text is not one.
func opAssignBase(text string) string {
	if len(text) < 2 || text[len(text)-1] != '=' {
		return ""
	}
	base := text[:len(text)-1]
	if opAssignBases[base] {
		return base
	}
	return ""
}

// directKinds maps primitive kinds whose translation never depends on
// state or lookahead.
var directKinds = map[rawtok.Kind]token.Kind{
	rawtok.KindIdent:       token.Ident,
	rawtok.KindConst:       token.Const,
	rawtok.KindIVar:        token.IVar,
	rawtok.KindCVar:        token.CVar,
	rawtok.KindGVar:        token.GVar,
	rawtok.KindLabel:       token.Label,
	rawtok.KindBacktick:    token.Backtick,
	rawtok.KindComma:       token.Comma,
	rawtok.KindPeriod:      token.Dot,
	rawtok.KindSemicolon:   token.Semicolon,
	rawtok.KindRBrace:      token.RBrace,
	rawtok.KindRBracket:    token.RBracket,
	rawtok.KindRParen:      token.RParen,
	rawtok.KindLambda:      token.Lambda,
	rawtok.KindLambdaBeg:   token.LambdaBrace,
	rawtok.KindEmbExprBeg:  token.EmbExprBeg,
	rawtok.KindEmbExprEnd:  token.EmbExprEnd,
	rawtok.KindEmbVar:      token.EmbVar,
	rawtok.KindStringEnd:   token.StringEnd,
	rawtok.KindRegexpBeg:   token.RegexpBeg,
	rawtok.KindWordsBeg:    token.WordsBeg,
	rawtok.KindQWordsBeg:   token.QWordsBeg,
	rawtok.KindSymbolsBeg:  token.SymbolsBeg,
	rawtok.KindQSymbolsBeg: token.QSymbolsBeg,
	rawtok.KindWordsSep:    token.WordsSep,
	rawtok.KindEndMarker:   token.EndMarker,
}
