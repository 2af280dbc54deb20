package format

// edit replaces content[start:end] with data. Token spans never overlap, so
// edits collected in lexing order are already sorted and disjoint.
type edit struct {
	start int
	end   int
	data  []byte
}

// applyEdits splices the edits over the original bytes. Bytes between edits
// are copied verbatim, which is what keeps whitespace, continuations, and
// comments untouched: a rewrite affects only its own token's span.
func applyEdits(content []byte, edits []edit) []byte {
	out := make([]byte, 0, len(content))
	pos := 0
	for _, e := range edits {
		if e.start < pos || e.end > len(content) {
			// malformed edit; keep the original bytes rather than guess
			continue
		}
		out = append(out, content[pos:e.start]...)
		out = append(out, e.data...)
		pos = e.end
	}
	out = append(out, content[pos:]...)
	return out
}
