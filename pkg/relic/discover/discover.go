// Package discover lists corpus input files by naming convention.
package discover

import (
	"os"
	"path/filepath"
	"strings"
)

// Files returns the files in dir whose name starts with prefix
// (case-insensitive) and ends with ext, as full paths in lexical order.
// An empty result is not an error; the pipeline treats it as a zero-record
// input set.
func Files(dir, prefix, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	prefix = strings.ToLower(prefix)
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(strings.ToLower(name), prefix) {
			continue
		}
		if !strings.HasSuffix(name, ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}
