package driver

import (
	"os"

	"unify/internal/diag"
	"unify/internal/lexer"
	"unify/internal/source"
	"unify/internal/textenc"
	"unify/internal/token"
)

// TokenizeResult bundles the outputs of a debug tokenization run.
type TokenizeResult struct {
	FileSet *source.FileSet
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes a single file for inspection, decoding it the same way the
// formatter would. Lexical problems land in the bag, not in err; err covers
// IO and encoding failures only.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, enc, err := textenc.Decode(raw)
	if err != nil {
		return nil, err
	}

	fs := source.NewFileSet()
	flags := source.FileFlags(0)
	if len(enc.BOM) > 0 {
		flags |= source.FileHadBOM
	}
	id := fs.Add(path, text, flags)

	bag := diag.NewBag(maxDiagnostics)
	tokens, _ := lexer.Tokenize(fs.Get(id), lexer.Options{
		Reporter: lexer.BagReporter{Bag: bag},
	})
	bag.Sort()

	return &TokenizeResult{FileSet: fs, Tokens: tokens, Bag: bag}, nil
}
