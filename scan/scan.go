// Package scan resolves generator inputs (files, directories, and glob
// patterns) into the set of Kotlin source files to process.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceExt is the file extension recognized as Kotlin source.
const SourceExt = ".kt"

// Resolve expands each input into Kotlin source files. An existing .kt file
// is taken as-is, a directory is searched recursively, and anything else is
// tried as a glob pattern. Inputs that do not exist or match nothing yield
// nothing. The result contains each file exactly once, sorted, so a run
// over an unchanged file set is reproducible.
func Resolve(inputs []string) []string {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, input := range inputs {
		info, err := os.Stat(input)
		switch {
		case err == nil && !info.IsDir() && strings.HasSuffix(input, SourceExt):
			add(input)
		case err == nil && info.IsDir():
			// Walk errors mean unreadable subtrees; those yield nothing.
			filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return nil
				}
				if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
					add(path)
				}
				return nil
			})
		default:
			matches, _ := filepath.Glob(input)
			for _, m := range matches {
				if info, err := os.Stat(m); err == nil && !info.IsDir() {
					add(m)
				}
			}
		}
	}

	sort.Strings(files)
	return files
}
