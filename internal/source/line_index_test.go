package source

import (
	"testing"
)

func TestLineIndex_Offset(t *testing.T) {
	buf := NewBuffer("test.rb", []byte("abc\ndefgh\n\nxyz"))
	ix := NewLineIndex(buf)

	tests := []struct {
		name     string
		line     uint32
		col      uint32
		expected uint32
	}{
		{name: "first line start", line: 1, col: 0, expected: 0},
		{name: "first line middle", line: 1, col: 2, expected: 2},
		{name: "second line start", line: 2, col: 0, expected: 4},
		{name: "second line middle", line: 2, col: 3, expected: 7},
		{name: "empty third line", line: 3, col: 0, expected: 10},
		{name: "last line", line: 4, col: 2, expected: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.Offset(tt.line, tt.col)
			if got != tt.expected {
				t.Errorf("Offset(%d, %d) = %d, want %d", tt.line, tt.col, got, tt.expected)
			}
		})
	}
}

func TestLineIndex_EmptyBuffer(t *testing.T) {
	ix := NewLineIndex(NewBuffer("empty.rb", nil))
	if ix.Lines() != 1 {
		t.Fatalf("empty buffer should yield a single boundary, got %d", ix.Lines())
	}
	if got := ix.Offset(1, 0); got != 0 {
		t.Errorf("Offset(1, 0) = %d, want 0", got)
	}
}

func TestLineIndex_LineCol(t *testing.T) {
	buf := NewBuffer("test.rb", []byte("abc\ndefgh\nxyz"))
	ix := NewLineIndex(buf)

	tests := []struct {
		off      uint32
		expected LineCol
	}{
		{off: 0, expected: LineCol{Line: 1, Col: 0}},
		{off: 3, expected: LineCol{Line: 1, Col: 3}},
		{off: 4, expected: LineCol{Line: 2, Col: 0}},
		{off: 9, expected: LineCol{Line: 2, Col: 5}},
		{off: 10, expected: LineCol{Line: 3, Col: 0}},
		{off: 12, expected: LineCol{Line: 3, Col: 2}},
	}

	for _, tt := range tests {
		got := ix.LineCol(tt.off)
		if got != tt.expected {
			t.Errorf("LineCol(%d) = %+v, want %+v", tt.off, got, tt.expected)
		}
	}
}

func TestLineIndex_RoundTrip(t *testing.T) {
	buf := NewBuffer("test.rb", []byte("x = 1\ny = 2\nputs x + y\n"))
	ix := NewLineIndex(buf)

	for off := uint32(0); off < buf.Len(); off++ {
		lc := ix.LineCol(off)
		if back := ix.Offset(lc.Line, lc.Col); back != off {
			t.Fatalf("round trip failed for offset %d: got %d via %+v", off, back, lc)
		}
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{Start: 10, End: 20}
	b := Span{Start: 5, End: 15}
	got := a.Cover(b)
	if got.Start != 5 || got.End != 20 {
		t.Errorf("Cover = %v, want 5-20", got)
	}
}

func TestSpan_Within(t *testing.T) {
	if !(Span{Start: 0, End: 4}).Within(4) {
		t.Error("span touching buffer end should be within bounds")
	}
	if (Span{Start: 2, End: 5}).Within(4) {
		t.Error("span past buffer end should not be within bounds")
	}
}
