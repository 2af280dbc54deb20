package driver

import (
	"github.com/pmezard/go-difflib/difflib"
)

// unifiedDiff renders the before/after text as a unified diff labeled
// before/<path> and after/<path>.
func unifiedDiff(before, after []byte, path string) ([]byte, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "before/" + path,
		ToFile:   "after/" + path,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}
