package rawtok

import (
	"strings"
	"testing"
)

const sampleStream = `
- pos: [1, 0]
  kind: ident
  text: x
  state: CMDARG
- pos: [1, 2]
  kind: op
  text: "="
  state: BEG
- pos: [1, 4]
  kind: int
  text: "42"
  state: END
- pos: [1, 6]
  kind: nl
  text: "\n"
  state: BEG
`

func TestDecodeStream(t *testing.T) {
	toks, err := DecodeStream(strings.NewReader(sampleStream))
	if err != nil {
		t.Fatalf("DecodeStream returned error: %v", err)
	}
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(toks))
	}

	first := toks[0]
	if first.Kind != KindIdent || first.Text != "x" || first.Line != 1 || first.Col != 0 {
		t.Errorf("unexpected first token: %+v", first)
	}
	if first.State != StateCmdArg {
		t.Errorf("first token state = %v, want CMDARG", first.State)
	}
	if toks[2].Kind != KindInt || toks[2].State != StateEnd {
		t.Errorf("unexpected int token: %+v", toks[2])
	}
}

func TestDecodeStream_Empty(t *testing.T) {
	toks, err := DecodeStream(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty stream should not error: %v", err)
	}
	if len(toks) != 0 {
		t.Fatalf("expected no tokens, got %d", len(toks))
	}
}

func TestDecodeStream_BadState(t *testing.T) {
	in := "- pos: [1, 0]\n  kind: ident\n  text: x\n  state: WAT\n"
	if _, err := DecodeStream(strings.NewReader(in)); err == nil {
		t.Fatal("expected error for unknown state")
	}
}

func TestToken_IsNumeric(t *testing.T) {
	for _, k := range []Kind{KindInt, KindFloat, KindRational, KindImaginary} {
		if !(Token{Kind: k}).IsNumeric() {
			t.Errorf("%s should be numeric", k)
		}
	}
	if (Token{Kind: KindIdent}).IsNumeric() {
		t.Error("ident should not be numeric")
	}
}
