// Package driver wires source buffers, primitive-token streams, and the
// translator into file- and directory-level operations for the CLI.
package driver

import (
	"fmt"
	"strings"

	"relex/internal/rawtok"
	"relex/internal/source"
	"relex/internal/token"
	"relex/internal/translate"
)

// TokensSuffix is the sibling-file suffix holding a source file's
// serialized primitive-token stream.
const TokensSuffix = ".tokens.yaml"

// Result bundles everything produced for one source file.
type Result struct {
	SourcePath string
	TokensPath string
	Buffer     *source.Buffer
	Tokens     []token.Token
}

// TokensPathFor derives the sibling token-stream path for a source file:
// lib/foo.rb -> lib/foo.tokens.yaml.
func TokensPathFor(srcPath string) string {
	return strings.TrimSuffix(srcPath, ".rb") + TokensSuffix
}

// TranslateFile loads one source file and its primitive-token stream and
// runs the translator over them.
func TranslateFile(srcPath, tokensPath string, opts translate.Options) (*Result, error) {
	buf, err := source.Load(srcPath)
	if err != nil {
		return nil, err
	}
	raw, err := rawtok.LoadStream(tokensPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tokensPath, err)
	}

	toks, err := translate.New(buf, opts).Translate(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", srcPath, err)
	}
	return &Result{
		SourcePath: srcPath,
		TokensPath: tokensPath,
		Buffer:     buf,
		Tokens:     toks,
	}, nil
}
