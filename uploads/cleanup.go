package uploads

import (
	"os"
	"path/filepath"
)

// RemoveTree deletes everything under dir depth-first, files before
// directories, then removes dir itself. A tree that never existed is a
// no-op. Individual delete failures do not stop the walk; they are
// collected and returned so the caller can log them. The surrounding
// entity delete must never fail because of a stray file.
func (s *Storage) RemoveTree(dir string) []error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []error{err}
	}

	var failures []error
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			failures = append(failures, s.RemoveTree(path)...)
			continue
		}
		if err := os.Remove(path); err != nil {
			failures = append(failures, err)
		}
	}

	// The root is only removable once its contents are gone.
	if err := os.Remove(dir); err != nil {
		failures = append(failures, err)
	}
	return failures
}
