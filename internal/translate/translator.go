// Package translate turns the primitive token stream of the upstream
// tokenizer into the output taxonomy the downstream parser expects.
// One pass: static tables for simple tokens, state-driven rules for
// ambiguous lexemes, and a folding engine for multi-token runs.
package translate

import (
	"fmt"
	"regexp"
	"strconv"

	"fortio.org/safecast"

	"relex/internal/rawtok"
	"relex/internal/source"
	"relex/internal/token"
)

// Translator translates primitive token streams lexed from one source
// buffer. It is stateless across Translate calls; concurrent calls on
// distinct Translators are safe.
type Translator struct {
	buf   *source.Buffer
	index source.LineIndex
	opts  Options
}

// New builds a Translator and its line-offset index for one buffer.
func New(buf *source.Buffer, opts Options) *Translator {
	return &Translator{
		buf:   buf,
		index: source.NewLineIndex(buf),
		opts:  opts,
	}
}

// run is the transient state of one Translate invocation.
type run struct {
	t   *Translator
	cur *cursor
	st  rawtok.LexState // state in effect before the token under the cursor
	out []token.Token
}

// Translate walks the primitive sequence once and produces the output
// sequence. On an unmapped kind or lexeme it aborts with no output.
func (t *Translator) Translate(raw []rawtok.Token) ([]token.Token, error) {
	r := &run{
		t:   t,
		cur: newCursor(raw),
		st:  rawtok.StateBeg,
		out: make([]token.Token, 0, len(raw)),
	}
	for !r.cur.eof() {
		if err := r.step(); err != nil {
			return nil, err
		}
	}
	return r.out, nil
}

func (r *run) step() error {
	tk := r.cur.tok()
	switch tk.Kind {
	case rawtok.KindSpace, rawtok.KindIgnoredSp, rawtok.KindIgnoredNL:
		// No output; the state still advances.
		r.st = tk.State
		r.cur.advance()

	case rawtok.KindKeyword:
		return r.keyword(tk)

	case rawtok.KindOperator:
		return r.operator(tk)

	case rawtok.KindLBrace:
		r.emitSimple(tk, braceKind(r.st))
	case rawtok.KindLBracket:
		r.emitSimple(tk, bracketKind(r.st))
	case rawtok.KindLParen:
		r.emitSimple(tk, parenKind(r.st))

	case rawtok.KindInt:
		return r.integer(tk)
	case rawtok.KindFloat:
		f, err := parseFloat(tk.Text)
		if err != nil {
			return err
		}
		r.emitLit(tk, token.Float, token.FloatLit(f))
	case rawtok.KindRational:
		rat, err := parseRational(tk.Text)
		if err != nil {
			return err
		}
		r.emitLit(tk, token.Rational, token.RatLit(rat))
	case rawtok.KindImaginary:
		c, err := parseImaginary(tk.Text)
		if err != nil {
			return err
		}
		r.emitLit(tk, token.Imaginary, token.CplxLit(c))
	case rawtok.KindChar, rawtok.KindCharLower:
		// The payload drops the leading marker byte.
		r.emitLit(tk, token.Char, token.StringLit(tk.Text[1:]))
	case rawtok.KindBackRef:
		r.backRef(tk)

	case rawtok.KindComment:
		r.emitLit(tk, token.Comment, token.StringLit(tk.Text))
	case rawtok.KindStringContent:
		r.emitLit(tk, token.StringContent, token.StringLit(tk.Text))

	case rawtok.KindStringBeg:
		r.foldString(tk)
	case rawtok.KindSymBeg:
		r.foldSymbol(tk)
	case rawtok.KindRegexpEnd:
		r.splitRegexpEnd(tk)
	case rawtok.KindEmbdocBeg:
		return r.foldEmbdoc(tk)
	case rawtok.KindHeredocBeg:
		return r.beginHeredoc(tk)
	case rawtok.KindHeredocEnd:
		r.endHeredoc(tk)
	case rawtok.KindNewline:
		r.lineEnd(tk)

	default:
		kind, ok := directKinds[tk.Kind]
		if !ok {
			return &UnmappedKindError{Kind: tk.Kind, Line: tk.Line, Col: tk.Col}
		}
		r.emitSimple(tk, kind)
	}
	return nil
}

// keyword classifies a keyword token: the five modifier-capable
// keywords consult the current state, everything else is a table
// lookup. A miss is a fatal version mismatch.
func (r *run) keyword(tk *rawtok.Token) error {
	if forms, ok := modifierKinds[tk.Text]; ok {
		kind := forms.block
		if modifierPosition(r.st) {
			kind = forms.modifier
		}
		r.emitSimple(tk, kind)
		return nil
	}
	kind, ok := keywordKinds[tk.Text]
	if !ok {
		return &UnmappedTextError{Table: "keyword", Text: tk.Text, Line: tk.Line, Col: tk.Col}
	}
	r.emitSimple(tk, kind)
	return nil
}

// operator classifies an operator token: compound assignments first,
// then the state-dependent lexemes, then the static table.
func (r *run) operator(tk *rawtok.Token) error {
	if base := opAssignBase(tk.Text); base != "" {
		r.emitLit(tk, token.OpAssign, token.StringLit(base))
		return nil
	}
	switch tk.Text {
	case "-":
		r.emitSimple(tk, minusKind(r.st, r.cur.peek(1)))
	case "&":
		r.emitSimple(tk, ampKind(r.st))
	case "::":
		r.emitSimple(tk, colonColonKind(r.st))
	case "..", "...":
		r.emitSimple(tk, rangeKind(tk.Text, r.st))
	default:
		kind, ok := operatorKinds[tk.Text]
		if !ok {
			return &UnmappedTextError{Table: "operator", Text: tk.Text, Line: tk.Line, Col: tk.Col}
		}
		r.emitSimple(tk, kind)
	}
	return nil
}

var nthRefPattern = regexp.MustCompile(`^\$\d+$`)

// backRef splits numbered group references from named and special
// back-references.
func (r *run) backRef(tk *rawtok.Token) {
	if nthRefPattern.MatchString(tk.Text) {
		n, err := strconv.ParseInt(tk.Text[1:], 10, 64)
		if err == nil {
			r.emitLit(tk, token.NthRef, token.IntLit(n))
			return
		}
	}
	r.emitLit(tk, token.BackRef, token.StringLit(tk.Text))
}

// integer emits an integer literal, honoring the unary-plus compat
// option for a leading '+' in the lexeme.
func (r *run) integer(tk *rawtok.Token) error {
	if r.t.opts.SplitUnaryPlus && len(tk.Text) > 1 && tk.Text[0] == '+' {
		span := r.span(tk)
		n, err := parseInteger(tk.Text[1:])
		if err != nil {
			return err
		}
		r.emit(token.UnaryPlus, nil, sliceSpan(span, 0, 1))
		r.emit(token.Integer, token.IntLit(n), sliceSpan(span, 1, span.Len()))
		r.st = tk.State
		r.cur.advance()
		return nil
	}
	n, err := parseInteger(tk.Text)
	if err != nil {
		return err
	}
	r.emitLit(tk, token.Integer, token.IntLit(n))
	return nil
}

// span computes the absolute byte range of a primitive token from its
// line/column position and lexeme length.
func (r *run) span(tk *rawtok.Token) source.Span {
	start := r.t.index.Offset(tk.Line, tk.Col)
	length, err := safecast.Conv[uint32](len(tk.Text))
	if err != nil {
		panic(fmt.Errorf("token length overflow: %w", err))
	}
	return source.Span{Start: start, End: start + length}
}

func (r *run) emit(kind token.Kind, lit *token.Literal, span source.Span) {
	r.out = append(r.out, token.Token{Kind: kind, Lit: lit, Span: span})
}

// emitSimple emits one payload-free token for tk and steps past it.
func (r *run) emitSimple(tk *rawtok.Token, kind token.Kind) {
	r.emit(kind, nil, r.span(tk))
	r.st = tk.State
	r.cur.advance()
}

// emitLit emits one payload-carrying token for tk and steps past it.
func (r *run) emitLit(tk *rawtok.Token, kind token.Kind, lit *token.Literal) {
	r.emit(kind, lit, r.span(tk))
	r.st = tk.State
	r.cur.advance()
}

// sliceSpan carves [from, to) out of a span, offsets relative to Start.
func sliceSpan(s source.Span, from, to uint32) source.Span {
	return source.Span{Start: s.Start + from, End: s.Start + to}
}
