package source

import (
	"fmt"
)

// Span is a half-open byte interval [Start, End) anchored to one Buffer.
// Invariant: 0 <= Start <= End <= len(buffer).
type Span struct {
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover extends the span to include other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Within reports whether the span lies inside a buffer of the given length.
func (s Span) Within(bufLen uint32) bool {
	return s.Start <= s.End && s.End <= bufLen
}
