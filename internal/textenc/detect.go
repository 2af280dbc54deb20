package textenc

import (
	"bytes"
)

// Encoding names as they appear in coding cookies, normalized.
const (
	NameUTF8    = "utf-8"
	NameUTF16LE = "utf-16-le"
	NameUTF16BE = "utf-16-be"
	NameLatin1  = "latin-1"
	NameCP1252  = "cp1252"
	NameASCII   = "ascii"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Encoding describes how a file's bytes map to text and how to write them
// back. BOM holds the exact bytes to re-attach on encode.
type Encoding struct {
	Name string
	BOM  []byte
}

// Detect inspects raw file bytes and decides the source encoding: first the
// BOM, then a PEP 263 coding cookie on one of the first two lines, then
// UTF-8 with a latin-1 fallback. Latin-1 round-trips any byte sequence, so
// an undeclared non-UTF-8 file survives a rewrite unharmed.
func Detect(raw []byte) Encoding {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return Encoding{Name: NameUTF8, BOM: bomUTF8}
	case bytes.HasPrefix(raw, bomUTF16LE):
		return Encoding{Name: NameUTF16LE, BOM: bomUTF16LE}
	case bytes.HasPrefix(raw, bomUTF16BE):
		return Encoding{Name: NameUTF16BE, BOM: bomUTF16BE}
	}

	if name, ok := codingCookie(raw); ok {
		return Encoding{Name: normalizeName(name)}
	}
	return Encoding{Name: NameUTF8}
}

// codingCookie scans the first two lines for a `coding: name` or
// `coding=name` marker inside a comment. Plain byte scan, no regex.
func codingCookie(raw []byte) (string, bool) {
	lines := bytes.SplitN(raw, []byte("\n"), 3)
	limit := min(len(lines), 2)
	for i := 0; i < limit; i++ {
		line := lines[i]
		if i == 1 {
			// a second-line cookie only counts when the first line is
			// blank or a comment
			first := bytes.TrimSpace(lines[0])
			if len(first) != 0 && first[0] != '#' {
				break
			}
		}
		hash := bytes.IndexByte(line, '#')
		if hash < 0 {
			continue
		}
		comment := line[hash:]
		idx := bytes.Index(comment, []byte("coding"))
		if idx < 0 {
			continue
		}
		rest := comment[idx+len("coding"):]
		if len(rest) == 0 || (rest[0] != ':' && rest[0] != '=') {
			continue
		}
		rest = bytes.TrimLeft(rest[1:], " \t")
		end := 0
		for end < len(rest) && isCookieNameByte(rest[end]) {
			end++
		}
		if end == 0 {
			continue
		}
		return string(rest[:end]), true
	}
	return "", false
}

func isCookieNameByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '_' || b == '.':
		return true
	}
	return false
}

// normalizeName folds common aliases onto the canonical names above.
// Unrecognized names fall back to latin-1.
func normalizeName(name string) string {
	switch lower(name) {
	case "utf-8", "utf8", "u8", "utf-8-sig":
		return NameUTF8
	case "ascii", "us-ascii", "646":
		return NameASCII
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1", "8859", "cp819", "latin":
		return NameLatin1
	case "cp1252", "windows-1252":
		return NameCP1252
	case "utf-16", "utf16", "utf-16-le", "utf-16le":
		return NameUTF16LE
	case "utf-16-be", "utf-16be":
		return NameUTF16BE
	default:
		return NameLatin1
	}
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
