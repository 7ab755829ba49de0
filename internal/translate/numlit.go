package translate

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Numeric-literal parsing for the exact grammar the upstream tokenizer
// accepts. Rational and imaginary payloads are computed here instead of
// evaluating the literal text.

// parseInteger parses an integer literal in any supported radix
// (0x, 0o, 0b, leading-zero octal, 0d decimal) with underscores.
func parseInteger(text string) (int64, error) {
	s := strings.ReplaceAll(text, "_", "")
	neg := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	}
	base := 0
	if len(s) > 2 && s[0] == '0' && (s[1] == 'd' || s[1] == 'D') {
		s = s[2:]
		base = 10
	}
	n, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("integer literal %q: %w", text, err)
	}
	if neg {
		n = -n
	}
	return n, nil
}

// parseFloat parses a floating-point literal with underscores.
func parseFloat(text string) (float64, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("float literal %q: %w", text, err)
	}
	return f, nil
}

// parseRational parses a rational literal: an integer or decimal body
// with a trailing 'r'.
func parseRational(text string) (*big.Rat, error) {
	s := strings.ReplaceAll(text, "_", "")
	s = strings.TrimSuffix(s, "r")
	if hasRadixPrefix(s) {
		n, err := parseInteger(s)
		if err != nil {
			return nil, fmt.Errorf("rational literal %q: %w", text, err)
		}
		return new(big.Rat).SetInt64(n), nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("rational literal %q: malformed body", text)
	}
	return r, nil
}

// parseImaginary parses an imaginary literal: an integer, decimal, or
// rational body with a trailing 'i'. The payload is a complex value
// with a zero real part.
func parseImaginary(text string) (complex128, error) {
	s := strings.ReplaceAll(text, "_", "")
	s = strings.TrimSuffix(s, "i")
	if strings.HasSuffix(s, "r") {
		r, err := parseRational(s)
		if err != nil {
			return 0, fmt.Errorf("imaginary literal %q: %w", text, err)
		}
		f, _ := r.Float64()
		return complex(0, f), nil
	}
	if hasRadixPrefix(s) {
		n, err := parseInteger(s)
		if err != nil {
			return 0, fmt.Errorf("imaginary literal %q: %w", text, err)
		}
		return complex(0, float64(n)), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("imaginary literal %q: %w", text, err)
	}
	return complex(0, f), nil
}

func hasRadixPrefix(s string) bool {
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'b', 'B', 'o', 'O', 'd', 'D':
		return true
	default:
		return false
	}
}
