package format

import (
	"unify/internal/lexer"
	"unify/internal/source"
	"unify/internal/strlit"
	"unify/internal/token"
)

// Source rewrites string-literal quote characters in src toward rules and
// returns the new buffer. Everything outside string tokens is reproduced
// byte-for-byte. On any lexical error the original buffer is returned
// unchanged: fail open, never corrupt.
func Source(src []byte, rules strlit.Rules) []byte {
	out, _ := SourceFile(virtualFile(src), rules, nil)
	return out
}

// Changed reports whether formatting src under rules would modify it.
func Changed(src []byte, rules strlit.Rules) bool {
	_, changed := SourceFile(virtualFile(src), rules, nil)
	return changed
}

// SourceFile is the file-aware variant of Source. Lexer diagnostics go to
// reporter (which may be nil); when any error is reported the input content
// is returned untouched and changed is false.
func SourceFile(sf *source.File, rules strlit.Rules, reporter lexer.Reporter) ([]byte, bool) {
	if len(sf.Content) == 0 {
		return sf.Content, false
	}

	toks, errs := lexer.Tokenize(sf, lexer.Options{Reporter: reporter})
	if errs > 0 {
		return sf.Content, false
	}

	var edits []edit
	for _, tok := range toks {
		if tok.Kind != token.String {
			continue
		}
		rewritten := strlit.Unify(tok.Text, rules)
		if rewritten == tok.Text {
			continue
		}
		edits = append(edits, edit{
			start: int(tok.Span.Start),
			end:   int(tok.Span.End),
			data:  []byte(rewritten),
		})
	}

	if len(edits) == 0 {
		return sf.Content, false
	}
	return applyEdits(sf.Content, edits), true
}

func virtualFile(src []byte) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("<buffer>", src))
}
