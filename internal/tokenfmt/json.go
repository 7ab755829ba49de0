// Package tokenfmt renders translated token sequences for inspection
// and downstream consumption: a human-readable dump, a JSON dump, and
// a compact msgpack envelope.
package tokenfmt

import (
	"encoding/json"
	"io"
	"strconv"

	"relex/internal/source"
	"relex/internal/token"
)

// TokenOutput is the JSON shape of one translated token.
type TokenOutput struct {
	Kind    string      `json:"kind"`
	Payload string      `json:"payload,omitempty"`
	Span    source.Span `json:"span"`
	Line    uint32      `json:"line"`
	Col     uint32      `json:"col"`
}

// payloadString renders a literal payload as text. The bool is false
// for payload-free tokens.
func payloadString(lit *token.Literal) (string, bool) {
	if lit == nil {
		return "", false
	}
	switch lit.Kind {
	case token.LitString, token.LitSymbol:
		return lit.Str, true
	case token.LitInteger:
		return strconv.FormatInt(lit.Int, 10), true
	case token.LitFloat:
		return strconv.FormatFloat(lit.Float, 'g', -1, 64), true
	case token.LitRational:
		return lit.Rat.RatString(), true
	case token.LitComplex:
		return strconv.FormatComplex(lit.Cplx, 'g', -1, 128), true
	default:
		return "", false
	}
}

// FormatJSON writes the token sequence as an indented JSON array.
func FormatJSON(w io.Writer, tokens []token.Token, buf *source.Buffer) error {
	index := source.NewLineIndex(buf)
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		pos := index.LineCol(tok.Span.Start)
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Span: tok.Span,
			Line: pos.Line,
			Col:  pos.Col,
		}
		if payload, ok := payloadString(tok.Lit); ok {
			out.Payload = payload
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
