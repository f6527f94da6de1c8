package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// CaptureFile is one capture output file found under the capture root.
type CaptureFile struct {
	// Path is the absolute location on disk.
	Path string
	// RelPath is the location relative to the capture root.
	RelPath string
	// Category is the capture-type label derived from the file's first
	// folder under the root. Files sitting directly in the root have no
	// folder to name them and classify as "unknown".
	Category string
}

// unknownCategory labels files that sit directly in the capture root.
const unknownCategory = "unknown"

// FindCaptures walks root and returns every file carrying the capture
// suffix. Hidden directories (dot-prefixed) are excluded from traversal.
func FindCaptures(root, suffix string) ([]CaptureFile, error) {
	var files []CaptureFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, CaptureFile{
			Path:     path,
			RelPath:  rel,
			Category: categoryOf(rel),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan capture tree %q: %w", root, err)
	}
	return files, nil
}

func categoryOf(rel string) string {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 {
		return unknownCategory
	}
	return parts[0]
}

// groupByCategory buckets capture files and returns the bucket names in
// sorted order so processing is deterministic.
func groupByCategory(files []CaptureFile) (map[string][]CaptureFile, []string) {
	groups := make(map[string][]CaptureFile)
	for _, file := range files {
		groups[file.Category] = append(groups[file.Category], file)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return groups, names
}
