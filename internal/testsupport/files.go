package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteCapture places a capture file under root at the given relative path,
// creating any intermediate directories.
func WriteCapture(t testing.TB, root, relPath, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for capture: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write capture %s: %v", relPath, err)
	}
	return path
}
