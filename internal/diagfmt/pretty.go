package diagfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"unify/internal/diag"
	"unify/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	markColor = color.New(color.FgGreen, color.Bold)
)

// Pretty renders the bag's diagnostics one by one. Call bag.Sort() first for
// a stable order. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line and a caret underline covering the primary
// span, then the notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		head := fmt.Sprintf("%s %s", d.Severity.String(), d.Code.ID())
		if opts.Color {
			head = sevColor(d.Severity).Sprint(head)
		}
		writeEntry(w, fs, opts, d.Primary, head, d.Message)

		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			label := "note"
			if opts.Color {
				label = infoColor.Sprint(label)
			}
			writeEntry(w, fs, opts, note.Span, label, note.Msg)
		}
	}
}

func writeEntry(w io.Writer, fs *source.FileSet, opts PrettyOpts, span source.Span, head, msg string) {
	file := fs.Get(span.File)
	if file == nil {
		fmt.Fprintf(w, "%s: %s\n", head, msg)
		return
	}
	pos := file.LineCol(span.Start)
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", displayPath(file.Path, opts.PathMode), pos.Line, pos.Col, head, msg)

	line := file.Line(pos.Line)
	if line == "" && span.Empty() {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	underline := caretLine(line, pos, span)
	if opts.Color {
		underline = markColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s\n", underline)
}

// caretLine builds the "^~~~" marker aligned under the span, accounting for
// tabs and wide runes in the prefix.
func caretLine(line string, pos source.LineCol, span source.Span) string {
	col := int(pos.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	pad := displayWidth(line[:col])

	spanLen := int(span.Len())
	// clamp the underline to the rest of the line
	if rest := len(line) - col; spanLen > rest {
		spanLen = rest
	}
	width := 1
	if spanLen > 1 {
		width = displayWidth(line[col : col+spanLen])
	}
	if width < 1 {
		width = 1
	}
	return strings.Repeat(" ", pad) + "^" + strings.Repeat("~", width-1)
}

func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += 8 - w%8
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative:
		if wd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil {
				return rel
			}
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	}
	return infoColor
}
