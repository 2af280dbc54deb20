package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"unify/internal/source"
	"unify/internal/token"
)

// TokenOutput is the JSON shape for one token.
type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
}

// FormatTokensPretty prints one line per token with its position range.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		file := fs.Get(tok.Span.File)
		if file == nil {
			return fmt.Errorf("token %d references unknown file %d", i, tok.Span.File)
		}
		start := file.LineCol(tok.Span.Start)
		end := file.LineCol(tok.Span.End)

		fmt.Fprintf(w, "%3d: %-8s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n", start.Line, start.Col, end.Line, end.Col)

		if tok.IsEOF() {
			break
		}
	}
	return nil
}

// FormatTokensJSON prints the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		}
		if file := fs.Get(tok.Span.File); file != nil {
			pos := file.LineCol(tok.Span.Start)
			out.Line = pos.Line
			out.Col = pos.Col
		}
		output = append(output, out)
		if tok.IsEOF() {
			break
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
