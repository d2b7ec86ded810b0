package flatfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sweta-r4/library-api/pkg/types"
)

func attachTest(t *testing.T) (*Backend, string) {
	t.Helper()
	tmpDir := t.TempDir()
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendFlatFile,
		DataDir: tmpDir,
	}
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return b, tmpDir
}

func TestBackend_AttachCreatesFiles(t *testing.T) {
	_, tmpDir := attachTest(t)

	for _, name := range []string{BooksFileName, StaffFileName, ReadersFileName} {
		if _, err := os.Stat(filepath.Join(tmpDir, name)); err != nil {
			t.Errorf("table file %s not created: %v", name, err)
		}
	}
}

func TestBackend_AttachPreservesExistingFiles(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, BooksFileName)
	if err := os.WriteFile(path, []byte("Dune, Frank Herbert\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := NewBackend()
	if err := b.Attach(types.Config{Backend: types.BackendFlatFile, DataDir: tmpDir}); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	table, _ := b.GetTable(types.BooksTable)
	records, err := table.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record from pre-existing file, got %d", len(records))
	}
	if records[0].(*types.Book).Title != "Dune" {
		t.Errorf("Title = %q, want Dune", records[0].(*types.Book).Title)
	}
}

func TestBackend_Lifecycle(t *testing.T) {
	b, _ := attachTest(t)

	if err := b.Attach(types.Config{Backend: types.BackendFlatFile, DataDir: t.TempDir()}); err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}
	if _, err := b.GetTable(types.BooksTable); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached, got %v", err)
	}
}

func TestBackend_Clear(t *testing.T) {
	b, _ := attachTest(t)

	books, _ := b.GetTable(types.BooksTable)
	if _, err := books.Insert(&types.Book{Title: "Dune", Author: "Frank Herbert"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	readers, _ := b.GetTable(types.ReadersTable)
	if _, err := readers.Insert(&types.Reader{Name: "Alice", Contact: "a@example.com"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := b.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	for _, name := range types.StandardTableNames {
		table, _ := b.GetTable(name)
		records, err := table.List()
		if err != nil {
			t.Fatalf("List(%s) failed: %v", name, err)
		}
		if len(records) != 0 {
			t.Errorf("table %s not empty after Clear: %d records", name, len(records))
		}
	}
}
