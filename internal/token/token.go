package token

import (
	"math/big"

	"relex/internal/source"
)

// LiteralKind discriminates the payload variants a token can carry.
type LiteralKind uint8

const (
	// LitString is a string payload.
	LitString LiteralKind = iota
	// LitSymbol is a symbol payload.
	LitSymbol
	// LitInteger is an integer payload.
	LitInteger
	// LitFloat is a floating-point payload.
	LitFloat
	// LitRational is an exact rational payload.
	LitRational
	// LitComplex is a complex payload.
	LitComplex
)

// Literal is the optional payload of an output token.
type Literal struct {
	Kind  LiteralKind
	Str   string
	Int   int64
	Float float64
	Rat   *big.Rat
	Cplx  complex128
}

// Token is the unit the downstream parser consumes.
type Token struct {
	Kind Kind
	Lit  *Literal
	Span source.Span
}

// StringLit builds a string payload.
func StringLit(s string) *Literal {
	return &Literal{Kind: LitString, Str: s}
}

// SymbolLit builds a symbol payload.
func SymbolLit(s string) *Literal {
	return &Literal{Kind: LitSymbol, Str: s}
}

// IntLit builds an integer payload.
func IntLit(n int64) *Literal {
	return &Literal{Kind: LitInteger, Int: n}
}

// FloatLit builds a floating-point payload.
func FloatLit(f float64) *Literal {
	return &Literal{Kind: LitFloat, Float: f}
}

// RatLit builds a rational payload.
func RatLit(r *big.Rat) *Literal {
	return &Literal{Kind: LitRational, Rat: r}
}

// CplxLit builds a complex payload.
func CplxLit(c complex128) *Literal {
	return &Literal{Kind: LitComplex, Cplx: c}
}
