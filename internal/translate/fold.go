package translate

import (
	"fmt"
	"regexp"
	"strings"

	"relex/internal/rawtok"
	"relex/internal/token"
)

// Folding engine: merges multi-token lexical runs into the shapes the
// downstream taxonomy expects. Each fold consumes its whole run and
// leaves the cursor on the next untranslated token.

// foldString handles a string-open token. Empty and single-segment
// strings fold into one token; anything else (interpolation, multiple
// segments) is emitted unfolded, begin first.
func (r *run) foldString(tk *rawtok.Token) {
	n1 := r.cur.peek(1)
	if n1 != nil && n1.Kind == rawtok.KindStringEnd {
		span := r.span(tk).Cover(r.span(n1))
		r.emit(token.String, token.StringLit(""), span)
		r.st = n1.State
		r.cur.jump(r.cur.idx + 2)
		return
	}
	n2 := r.cur.peek(2)
	if n1 != nil && n1.Kind == rawtok.KindStringContent &&
		n2 != nil && n2.Kind == rawtok.KindStringEnd {
		span := r.span(tk).Cover(r.span(n2))
		r.emit(token.String, token.StringLit(n1.Text), span)
		r.st = n2.State
		r.cur.jump(r.cur.idx + 3)
		return
	}
	r.emit(token.StringBeg, nil, r.span(tk))
	r.st = tk.State
	r.cur.advance()
}

// symbolContent holds the primitive kinds that can serve as the body of
// a shorthand symbol.
func symbolContent(k rawtok.Kind) bool {
	switch k {
	case rawtok.KindIdent, rawtok.KindConst, rawtok.KindIVar,
		rawtok.KindCVar, rawtok.KindGVar, rawtok.KindKeyword,
		rawtok.KindOperator, rawtok.KindBacktick:
		return true
	default:
		return false
	}
}

// foldSymbol handles a symbol-open token. The shorthand form (bare ':'
// opener) folds with its content token; quoted symbol openers are
// emitted as symbol-begin and left to the string machinery.
func (r *run) foldSymbol(tk *rawtok.Token) {
	n1 := r.cur.peek(1)
	if tk.Text == ":" && n1 != nil && symbolContent(n1.Kind) {
		span := r.span(tk).Cover(r.span(n1))
		r.emit(token.Symbol, token.SymbolLit(n1.Text), span)
		r.st = n1.State
		r.cur.jump(r.cur.idx + 2)
		return
	}
	r.emit(token.SymbolBeg, nil, r.span(tk))
	r.st = tk.State
	r.cur.advance()
}

// splitRegexpEnd splits a regexp-end token into the one-byte closing
// delimiter and an options token covering the remaining bytes. The
// options token is always emitted; its range is empty when the regexp
// carries no flags.
func (r *run) splitRegexpEnd(tk *rawtok.Token) {
	span := r.span(tk)
	r.emit(token.StringEnd, nil, sliceSpan(span, 0, 1))
	r.emit(token.RegexpOpt, token.StringLit(tk.Text[1:]), sliceSpan(span, 1, span.Len()))
	r.st = tk.State
	r.cur.advance()
}

// foldEmbdoc folds an embedded documentation block into a single
// comment token spanning the begin marker through the end marker.
func (r *run) foldEmbdoc(tk *rawtok.Token) error {
	var body strings.Builder
	end := -1
	for i := r.cur.idx; i < len(r.cur.toks); i++ {
		body.WriteString(r.cur.toks[i].Text)
		if r.cur.toks[i].Kind == rawtok.KindEmbdocEnd {
			end = i
			break
		}
	}
	if end < 0 {
		return fmt.Errorf("unterminated embedded doc at %d:%d", tk.Line, tk.Col)
	}
	last := &r.cur.toks[end]
	span := r.span(tk).Cover(r.span(last))
	r.emit(token.Comment, token.StringLit(body.String()), span)
	r.st = last.State
	r.cur.jump(end + 1)
	return nil
}

var heredocIdentPattern = regexp.MustCompile("^<<[-~]?['\"`]?(\\w+)")

// heredocIdent extracts the delimiter identifier from an opener lexeme
// such as <<~END or <<-'STOP'.
func heredocIdent(text string) string {
	if m := heredocIdentPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

// beginHeredoc handles a heredoc opener. The upstream tokenizer places
// the body content and terminator directly after the opener, ahead of
// the remainder of the opener's line; we emit the string-begin now,
// queue the body segment, and skip past the terminator so the line tail
// is translated next. The queued segment drains at the line end.
func (r *run) beginHeredoc(tk *rawtok.Token) error {
	r.emit(token.StringBeg, token.StringLit(heredocIdent(tk.Text)), r.span(tk))
	r.st = tk.State
	term := r.cur.findAhead(rawtok.KindHeredocEnd)
	if term < 0 {
		return fmt.Errorf("unterminated heredoc at %d:%d", tk.Line, tk.Col)
	}
	r.cur.queueBody(r.cur.idx + 1)
	r.cur.jump(term + 1)
	return nil
}

// endHeredoc handles a heredoc terminator, reached only while draining
// a queued body segment. It emits the string-end and either moves to
// the next queued segment or returns to the resume point past the
// interrupted line end.
func (r *run) endHeredoc(tk *rawtok.Token) {
	r.emit(token.StringEnd, nil, r.span(tk))
	r.st = tk.State
	switch {
	case r.cur.hasPending():
		r.cur.jump(r.cur.popPending())
	case r.cur.draining():
		r.cur.jump(r.cur.takeResume())
	default:
		// Already-ordered stream: terminator arrived inline.
		r.cur.advance()
	}
}

// lineEnd handles a logical line end. When heredoc body segments are
// queued and no drain is in progress, the line end interrupts: a resume
// point is armed just past it and the cursor jumps back into the
// earliest deferred segment.
func (r *run) lineEnd(tk *rawtok.Token) {
	r.emit(token.Newline, nil, r.span(tk))
	r.st = tk.State
	if r.cur.hasPending() && !r.cur.draining() {
		r.cur.setResume(r.cur.idx + 1)
		r.cur.jump(r.cur.popPending())
		return
	}
	r.cur.advance()
}
