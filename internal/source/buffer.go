package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

// Buffer is one immutable source text plus an identifying name.
// The translator borrows it for the duration of a single translation;
// it is never mutated.
type Buffer struct {
	Name    string
	Content []byte
}

// NewBuffer wraps already-loaded content in a Buffer.
func NewBuffer(name string, content []byte) *Buffer {
	return &Buffer{Name: name, Content: content}
}

// Load reads a file from disk and wraps it in a Buffer.
func Load(path string) (*Buffer, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Buffer{Name: path, Content: content}, nil
}

// Len returns the buffer length in bytes as uint32.
func (b *Buffer) Len() uint32 {
	n, err := safecast.Conv[uint32](len(b.Content))
	if err != nil {
		panic(fmt.Errorf("buffer length overflow: %w", err))
	}
	return n
}
