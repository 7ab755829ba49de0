package translate

import (
	"relex/internal/rawtok"
)

// cursor walks the primitive token sequence. Folding installs controlled
// jumps through the pending queue and the resume slot so heredoc bodies
// are re-emitted in source order; jumps cannot leak across unrelated
// folds because both slots drain before normal advancement resumes.
type cursor struct {
	toks    []rawtok.Token
	idx     int
	pending []int // start indexes of queued heredoc body segments, in order
	resume  int   // index to continue from once the heredoc group drains
}

func newCursor(toks []rawtok.Token) *cursor {
	return &cursor{toks: toks, resume: -1}
}

func (c *cursor) eof() bool {
	return c.idx >= len(c.toks)
}

// tok returns the token under the cursor.
func (c *cursor) tok() *rawtok.Token {
	return &c.toks[c.idx]
}

// peek returns the token n positions ahead, or nil past the end.
// Out-of-range lookahead reads as "no lookahead", never a fault.
func (c *cursor) peek(n int) *rawtok.Token {
	if c.idx+n >= len(c.toks) {
		return nil
	}
	return &c.toks[c.idx+n]
}

func (c *cursor) advance() {
	c.idx++
}

func (c *cursor) jump(i int) {
	c.idx = i
}

// findAhead returns the index of the first token of the given kind
// after the cursor, or -1.
func (c *cursor) findAhead(kind rawtok.Kind) int {
	for i := c.idx + 1; i < len(c.toks); i++ {
		if c.toks[i].Kind == kind {
			return i
		}
	}
	return -1
}

// queueBody records the start of a deferred heredoc body segment.
func (c *cursor) queueBody(start int) {
	c.pending = append(c.pending, start)
}

func (c *cursor) hasPending() bool {
	return len(c.pending) > 0
}

// popPending removes and returns the earliest queued segment start.
func (c *cursor) popPending() int {
	start := c.pending[0]
	c.pending = c.pending[1:]
	return start
}

// draining reports whether the cursor is currently inside a heredoc
// group, i.e. a resume point is armed.
func (c *cursor) draining() bool {
	return c.resume >= 0
}

func (c *cursor) setResume(i int) {
	c.resume = i
}

// takeResume clears and returns the resume point, or -1 when unset.
func (c *cursor) takeResume() int {
	r := c.resume
	c.resume = -1
	return r
}
