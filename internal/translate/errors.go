package translate

import (
	"fmt"

	"relex/internal/rawtok"
)

// UnmappedKindError reports a primitive token type absent from every
// table and rule. It signals an incompatibility between the static
// tables and the upstream tokenizer's token set, not a user error.
// Translation aborts immediately with no output.
type UnmappedKindError struct {
	Kind rawtok.Kind
	Line uint32
	Col  uint32
}

func (e *UnmappedKindError) Error() string {
	return fmt.Sprintf("unmapped primitive token kind %q at %d:%d", e.Kind, e.Line, e.Col)
}

// UnmappedTextError reports a keyword or operator lexeme missing from
// the static mapping tables. Same fatal treatment as UnmappedKindError.
type UnmappedTextError struct {
	Table string // "keyword" or "operator"
	Text  string
	Line  uint32
	Col   uint32
}

func (e *UnmappedTextError) Error() string {
	return fmt.Sprintf("unmapped %s %q at %d:%d", e.Table, e.Text, e.Line, e.Col)
}
