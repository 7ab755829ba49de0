package rawtok

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// streamEntry is the on-disk shape of one primitive token. The upstream
// tokenizer runs in a different runtime and hands its event stream over
// as a YAML sequence.
type streamEntry struct {
	Pos   [2]uint32 `yaml:"pos"`
	Kind  string    `yaml:"kind"`
	Text  string    `yaml:"text"`
	State string    `yaml:"state"`
}

// DecodeStream reads a serialized primitive-token stream.
func DecodeStream(r io.Reader) ([]Token, error) {
	var entries []streamEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode token stream: %w", err)
	}

	toks := make([]Token, 0, len(entries))
	for i, e := range entries {
		st, err := ParseState(e.State)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		toks = append(toks, Token{
			Line:  e.Pos[0],
			Col:   e.Pos[1],
			Kind:  Kind(e.Kind),
			Text:  e.Text,
			State: st,
		})
	}
	return toks, nil
}

// LoadStream reads a primitive-token stream from a file.
func LoadStream(path string) ([]Token, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeStream(f)
}
