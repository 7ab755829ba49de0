// Package token defines the output token taxonomy consumed by the
// downstream parser.
// Invariants:
//   - Token.Span is an absolute byte range into the source buffer the
//     translation ran against.
//   - Token.Lit is nil unless the kind carries a literal payload
//     (strings, symbols, numerics, references, comments, op-assign).
//   - The emitted sequence is ordered by Span.Start; heredoc and
//     embedded-doc folding restore source order before emission.
//   - Lexer state never appears here; it is consumed entirely during
//     translation.
package token
