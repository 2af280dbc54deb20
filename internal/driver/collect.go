package driver

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CollectFiles expands the argument list into the files to format.
// Directories are walked only in recursive mode, taking files with one of
// the given extensions and skipping hidden files and hidden directories
// (names starting with a dot). Non-directory arguments are kept as given,
// whatever their extension: naming a file explicitly always includes it.
// The result is deduplicated and sorted for a deterministic order.
func CollectFiles(paths []string, recursive bool, exts []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		clean := filepath.Clean(path)
		if _, dup := seen[clean]; dup {
			return
		}
		seen[clean] = struct{}{}
		files = append(files, clean)
	}

	for _, path := range paths {
		if recursive && isDir(path) {
			err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				name := d.Name()
				if d.IsDir() {
					if p != path && strings.HasPrefix(name, ".") {
						return fs.SkipDir
					}
					return nil
				}
				if strings.HasPrefix(name, ".") {
					return nil
				}
				if hasExt(name, exts) {
					add(p)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}
		add(path)
	}

	sort.Strings(files)
	return files, nil
}

func hasExt(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
