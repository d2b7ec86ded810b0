package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sweta-r4/library-api/pkg/types"
)

func attachTest(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}

	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	// Verify database file created
	dbPath := filepath.Join(tmpDir, DBFileName)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("library.db not created")
	}

	// Verify double attach fails
	if err := b.Attach(config); err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}
}

func TestBackend_AttachValidatesConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	if err != types.ErrBackendUnknown {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}

	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Verify idempotent
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	// Verify operations fail after detach
	if _, err := b.GetTable(types.BooksTable); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached, got %v", err)
	}
}

func TestBackend_GetTable(t *testing.T) {
	b := attachTest(t)

	for _, name := range types.StandardTableNames {
		if _, err := b.GetTable(name); err != nil {
			t.Errorf("GetTable(%q) failed: %v", name, err)
		}
	}

	if _, err := b.GetTable("loans"); err != types.ErrTableNotFound {
		t.Errorf("expected ErrTableNotFound, got %v", err)
	}
}

func TestBackend_PersistsAcrossReattach(t *testing.T) {
	tmpDir := t.TempDir()
	config := types.Config{Backend: types.BackendSQLite, DataDir: tmpDir}

	b := NewBackend()
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	table, _ := b.GetTable(types.BooksTable)
	id, err := table.Insert(&types.Book{Title: "Dune", Author: "Frank Herbert", Stock: 1})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	b2 := NewBackend()
	if err := b2.Attach(config); err != nil {
		t.Fatalf("re-Attach failed: %v", err)
	}
	defer b2.Detach()

	table2, _ := b2.GetTable(types.BooksTable)
	rec, err := table2.Get(id)
	if err != nil {
		t.Fatalf("Get after re-attach failed: %v", err)
	}
	if rec.(*types.Book).Title != "Dune" {
		t.Errorf("Title = %q, want Dune", rec.(*types.Book).Title)
	}
}

func TestBackend_Clear(t *testing.T) {
	b := attachTest(t)

	books, _ := b.GetTable(types.BooksTable)
	if _, err := books.Insert(&types.Book{Title: "Dune", Author: "Frank Herbert", Stock: 1}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	staff, _ := b.GetTable(types.StaffTable)
	if _, err := staff.Insert(&types.Staff{Name: "Bob", Role: "Librarian"}); err != nil {
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

func TestBackend_Init(t *testing.T) {
	b := attachTest(t)

	books, _ := b.GetTable(types.BooksTable)
	id, err := books.Insert(&types.Book{Title: "Dune", Author: "Frank Herbert", Stock: 1})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// Init is idempotent and preserves rows.
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if _, err := books.Get(id); err != nil {
		t.Errorf("record lost after Init: %v", err)
	}
}
