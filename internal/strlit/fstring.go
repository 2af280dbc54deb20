package strlit

import (
	"strings"
)

// ExpressionArea is a matched {...} region inside an f-string body, braces
// included, as half-open byte offsets into the body.
type ExpressionArea struct {
	Start int
	End   int
}

// Chunk is one piece of an f-string body: either literal text (escaped
// double braces kept verbatim) or a single brace-delimited expression area.
type Chunk struct {
	Text   string
	IsExpr bool
}

// ExpressionAreas scans an f-string body and returns its expression areas.
// Two-state machine with an explicit depth counter; no recursion. Escaped
// braces ({{ and }}) outside an area are literal text. An area that never
// closes is clamped to the end of the body so malformed input cannot loop.
func ExpressionAreas(body string) []ExpressionArea {
	var areas []ExpressionArea

	inside := false
	depth := 0
	start := 0

	i := 0
	for i < len(body) {
		b := body[i]
		if !inside {
			switch b {
			case '{':
				if i+1 < len(body) && body[i+1] == '{' {
					i += 2
					continue
				}
				inside = true
				depth = 1
				start = i
			case '}':
				if i+1 < len(body) && body[i+1] == '}' {
					i += 2
					continue
				}
				// stray closing brace; literal by leniency
			}
			i++
			continue
		}

		switch b {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				areas = append(areas, ExpressionArea{Start: start, End: i + 1})
				inside = false
			}
		}
		i++
	}

	if inside {
		// unterminated area: close at end of body
		areas = append(areas, ExpressionArea{Start: start, End: len(body)})
	}
	return areas
}

// SplitFString partitions an f-string body into alternating literal and
// expression chunks. Adjacent expression areas produce adjacent expression
// chunks with no literal text between them; concatenating all chunk texts
// reproduces the body exactly.
func SplitFString(body string) []Chunk {
	areas := ExpressionAreas(body)
	if len(areas) == 0 {
		if body == "" {
			return nil
		}
		return []Chunk{{Text: body}}
	}

	var chunks []Chunk
	pos := 0
	for _, a := range areas {
		if a.Start > pos {
			chunks = append(chunks, Chunk{Text: body[pos:a.Start]})
		}
		text := body[a.Start:a.End]
		chunks = append(chunks, Chunk{Text: text, IsExpr: IsExpressionArea(text)})
		pos = a.End
	}
	if pos < len(body) {
		chunks = append(chunks, Chunk{Text: body[pos:]})
	}
	return chunks
}

// IsExpressionArea applies the brace-balance test to a chunk in isolation: a
// chunk is an expression area iff a single outermost brace pair wraps the
// whole chunk, excluding the fully-escaped {{literal}} case.
func IsExpressionArea(chunk string) bool {
	if len(chunk) < 2 || chunk[0] != '{' || chunk[len(chunk)-1] != '}' {
		return false
	}
	if strings.HasPrefix(chunk, "{{") {
		return false
	}
	depth := 0
	for i := 0; i < len(chunk); i++ {
		switch chunk[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth == 0 && i != len(chunk)-1 {
			return false
		}
		if depth < 0 {
			return false
		}
	}
	return depth == 0
}
