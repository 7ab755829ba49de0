package source

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// LineCol is a 1-based line and 0-based byte column position.
type LineCol struct {
	Line uint32
	Col  uint32
}

// LineIndex maps (line, column) positions to absolute byte offsets.
// starts[i] is the cumulative byte offset of the first byte of line i+1,
// so Offset(line, col) = starts[line-1] + col in O(1).
// Built once per Buffer and discarded with the translation that owns it.
type LineIndex struct {
	starts []uint32
}

// NewLineIndex scans the buffer once and records the starting offset of
// every line. A buffer with zero lines yields a single boundary at 0.
func NewLineIndex(b *Buffer) LineIndex {
	starts := make([]uint32, 1, 16)
	starts[0] = 0
	for i, ch := range b.Content {
		if ch == '\n' {
			off, err := safecast.Conv[uint32](i + 1)
			if err != nil {
				panic(fmt.Errorf("line offset overflow: %w", err))
			}
			starts = append(starts, off)
		}
	}
	return LineIndex{starts: starts}
}

// Lines returns the number of line boundaries in the index.
func (ix LineIndex) Lines() int {
	return len(ix.starts)
}

// Offset converts a 1-based line and 0-based byte column to an absolute
// byte offset. Lines past the end of the index clamp to the last boundary.
func (ix LineIndex) Offset(line, col uint32) uint32 {
	if line == 0 {
		return col
	}
	i := int(line - 1)
	if i >= len(ix.starts) {
		i = len(ix.starts) - 1
	}
	return ix.starts[i] + col
}

// LineCol converts an absolute byte offset back to a line/column position.
func (ix LineIndex) LineCol(off uint32) LineCol {
	i := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > off
	})
	line, err := safecast.Conv[uint32](i)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return LineCol{Line: line, Col: off - ix.starts[i-1]}
}
