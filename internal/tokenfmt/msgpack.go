package tokenfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"relex/internal/source"
	"relex/internal/token"
)

// Current schema version - increment when Envelope format changes
const msgpackSchemaVersion uint16 = 1

// Envelope is the msgpack container for one translated file.
type Envelope struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	// Source is the buffer name the spans refer to.
	Source string

	Tokens []Record
}

// Record is one token in the msgpack envelope. Spans stay byte-based;
// consumers resolve positions against their own copy of the source.
type Record struct {
	Kind    string
	Payload string
	HasLit  bool
	Start   uint32
	End     uint32
}

// WriteMsgpack encodes the token sequence into a msgpack envelope.
func WriteMsgpack(w io.Writer, tokens []token.Token, buf *source.Buffer) error {
	env := Envelope{
		Schema: msgpackSchemaVersion,
		Source: buf.Name,
		Tokens: make([]Record, 0, len(tokens)),
	}
	for _, tok := range tokens {
		rec := Record{
			Kind:  tok.Kind.String(),
			Start: tok.Span.Start,
			End:   tok.Span.End,
		}
		if payload, ok := payloadString(tok.Lit); ok {
			rec.Payload = payload
			rec.HasLit = true
		}
		env.Tokens = append(env.Tokens, rec)
	}
	return msgpack.NewEncoder(w).Encode(&env)
}

// ReadMsgpack decodes a previously written envelope.
func ReadMsgpack(r io.Reader) (*Envelope, error) {
	var env Envelope
	if err := msgpack.NewDecoder(r).Decode(&env); err != nil {
		return nil, err
	}
	return &env, nil
}
