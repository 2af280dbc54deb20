package textenc

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Decode turns raw file bytes into UTF-8 text for the formatter, reporting
// the encoding to use when writing back. The BOM is stripped here and
// re-attached by Encode. A file that fails to decode as UTF-8 is retried as
// latin-1, which always succeeds.
func Decode(raw []byte) ([]byte, Encoding, error) {
	enc := Detect(raw)
	body := raw[len(enc.BOM):]

	switch enc.Name {
	case NameUTF8, NameASCII:
		if utf8.Valid(body) {
			return body, enc, nil
		}
		// mislabeled or cookie-less binary-ish file
		enc = Encoding{Name: NameLatin1, BOM: enc.BOM}
		return decodeWith(body, enc)
	default:
		return decodeWith(body, enc)
	}
}

// Encode converts formatted UTF-8 text back to the file's own encoding,
// BOM included.
func Encode(text []byte, enc Encoding) ([]byte, error) {
	var out []byte
	switch enc.Name {
	case NameUTF8, NameASCII:
		out = text
	default:
		e, err := codec(enc.Name)
		if err != nil {
			return nil, err
		}
		encoded, err := e.NewEncoder().Bytes(text)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", enc.Name, err)
		}
		out = encoded
	}

	if len(enc.BOM) == 0 {
		return out, nil
	}
	withBOM := make([]byte, 0, len(enc.BOM)+len(out))
	withBOM = append(withBOM, enc.BOM...)
	withBOM = append(withBOM, out...)
	return withBOM, nil
}

func decodeWith(body []byte, enc Encoding) ([]byte, Encoding, error) {
	e, err := codec(enc.Name)
	if err != nil {
		return nil, enc, err
	}
	decoded, err := e.NewDecoder().Bytes(body)
	if err != nil {
		return nil, enc, fmt.Errorf("decode %s: %w", enc.Name, err)
	}
	return decoded, enc, nil
}

func codec(name string) (encoding.Encoding, error) {
	switch name {
	case NameLatin1:
		return charmap.ISO8859_1, nil
	case NameCP1252:
		return charmap.Windows1252, nil
	case NameUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case NameUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", name)
}
