package flatfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteLines_AtomicBesideTarget(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "books.txt")

	if err := writeLines(path, []string{"Dune, Frank Herbert", "Foundation, Isaac Asimov"}); err != nil {
		t.Fatalf("writeLines failed: %v", err)
	}

	lines, err := readLines(path)
	if err != nil {
		t.Fatalf("readLines failed: %v", err)
	}
	if len(lines) != 2 || lines[0] != "Dune, Frank Herbert" {
		t.Errorf("round trip mismatch: %v", lines)
	}

	// The temp file is created in the target's directory and renamed away.
	leftovers, err := filepath.Glob(filepath.Join(tmpDir, ".txt-*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("target missing after write: %v", err)
	}
}
