package flatfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sweta-r4/library-api/pkg/types"
)

func TestBooksTable_CRUD(t *testing.T) {
	b, _ := attachTest(t)
	table, _ := b.GetTable(types.BooksTable)

	id, err := table.Insert(&types.Book{Title: "Dune", Author: "Frank Herbert", Genre: "SF", Stock: 3})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("first insert id = %d, want 1", id)
	}

	rec, err := table.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	book := rec.(*types.Book)
	if book.Title != "Dune" || book.Author != "Frank Herbert" || book.Genre != "SF" || book.Stock != 3 {
		t.Errorf("round trip mismatch: %+v", book)
	}

	author := "F. Herbert"
	if err := table.Update(id, &types.BookUpdate{Author: &author}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	rec, _ = table.Get(id)
	book = rec.(*types.Book)
	if book.Author != "F. Herbert" || book.Title != "Dune" || book.Stock != 3 {
		t.Errorf("partial update mismatch: %+v", book)
	}

	if err := table.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := table.Get(id); err != types.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestBooksTable_LineDerivedIDs(t *testing.T) {
	b, _ := attachTest(t)
	table, _ := b.GetTable(types.BooksTable)

	for i, title := range []string{"Dune", "Foundation", "Hyperion"} {
		id, err := table.Insert(&types.Book{Title: title, Author: "A"})
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if id != int64(i+1) {
			t.Errorf("insert %d: id = %d, want %d", i, id, i+1)
		}
	}

	// Deleting line 1 shifts later records up: old ID 2 becomes ID 1.
	if err := table.Delete(1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	rec, err := table.Get(1)
	if err != nil {
		t.Fatalf("Get(1) after delete failed: %v", err)
	}
	if rec.(*types.Book).Title != "Foundation" {
		t.Errorf("ID 1 = %q after deleting first line, want Foundation", rec.(*types.Book).Title)
	}
	if _, err := table.Get(3); err != types.ErrNotFound {
		t.Errorf("expected ErrNotFound for vacated ID 3, got %v", err)
	}
}

func TestBooksTable_DefaultStockAndShortLines(t *testing.T) {
	tmpDir := t.TempDir()
	content := "Dune, Frank Herbert\n" + // two fields only
		"\n" + // blank line, skipped
		"malformed-line-without-separator\n" + // too short, skipped
		"Foundation, Isaac Asimov, SF, 4\n"
	if err := os.WriteFile(filepath.Join(tmpDir, BooksFileName), []byte(content), 0o644); err != nil {
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
	if len(records) != 2 {
		t.Fatalf("List returned %d records, want 2", len(records))
	}

	first := records[0].(*types.Book)
	if first.ID != 1 || first.Stock != types.DefaultStock || first.Genre != "" {
		t.Errorf("short-line defaults wrong: %+v", first)
	}
	second := records[1].(*types.Book)
	if second.ID != 2 || second.Genre != "SF" || second.Stock != 4 {
		t.Errorf("full-line parse wrong: %+v", second)
	}
}

func TestBooksTable_ExplicitZeroStock(t *testing.T) {
	b, _ := attachTest(t)
	table, _ := b.GetTable(types.BooksTable)

	id, err := table.Insert(&types.Book{Title: "Dune", Author: "Frank Herbert", Stock: 0})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	rec, err := table.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got := rec.(*types.Book).Stock; got != 0 {
		t.Errorf("Stock = %d after inserting 0, want 0", got)
	}

	stock := int64(0)
	if err := table.Update(id, &types.BookUpdate{Stock: &stock}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	rec, _ = table.Get(id)
	if got := rec.(*types.Book).Stock; got != 0 {
		t.Errorf("Stock = %d after updating to 0, want 0", got)
	}
}

func TestBooksTable_SanitizesCommas(t *testing.T) {
	b, tmpDir := attachTest(t)
	table, _ := b.GetTable(types.BooksTable)

	if _, err := table.Insert(&types.Book{Title: "Dune, Deluxe Edition", Author: "Frank Herbert"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(tmpDir, BooksFileName))
	if err != nil {
		t.Fatal(err)
	}
	line := strings.TrimSpace(string(raw))
	if strings.Count(line, ",") != 3 {
		t.Errorf("field commas leaked into line: %q", line)
	}

	rec, _ := table.Get(1)
	if got := rec.(*types.Book).Title; strings.Contains(got, ",") {
		t.Errorf("Title = %q, commas should be sanitized", got)
	}
}

func TestStaffTable_CRUD(t *testing.T) {
	b, _ := attachTest(t)
	table, _ := b.GetTable(types.StaffTable)

	id, err := table.Insert(&types.Staff{Name: "Bob", Role: "Librarian", Contact: "bob@example.com"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	rec, err := table.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	member := rec.(*types.Staff)
	if member.Name != "Bob" || member.Role != "Librarian" || member.Contact != "bob@example.com" {
		t.Errorf("round trip mismatch: %+v", member)
	}

	contact := "bob@lib.example"
	if err := table.Update(id, &types.StaffUpdate{Contact: &contact}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	rec, _ = table.Get(id)
	if rec.(*types.Staff).Contact != "bob@lib.example" {
		t.Errorf("Contact = %q, want updated value", rec.(*types.Staff).Contact)
	}

	if err := table.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := table.Get(id); err != types.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestReadersTable_CRUD(t *testing.T) {
	b, _ := attachTest(t)
	table, _ := b.GetTable(types.ReadersTable)

	id, err := table.Insert(&types.Reader{Name: "Alice", Contact: "M-1001"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	rec, err := table.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	reader := rec.(*types.Reader)
	if reader.Name != "Alice" || reader.Contact != "M-1001" {
		t.Errorf("round trip mismatch: %+v", reader)
	}
	// The line format has no borrowed list; it is always empty.
	if reader.BorrowedBooks == nil || len(reader.BorrowedBooks) != 0 {
		t.Errorf("BorrowedBooks = %v, want empty non-nil", reader.BorrowedBooks)
	}

	name := "Alice B"
	if err := table.Update(id, &types.ReaderUpdate{Name: &name}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	rec, _ = table.Get(id)
	if rec.(*types.Reader).Name != "Alice B" {
		t.Errorf("Name = %q, want updated value", rec.(*types.Reader).Name)
	}

	if err := table.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := table.Get(id); err != types.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestTables_ValidationErrors(t *testing.T) {
	b, _ := attachTest(t)

	books, _ := b.GetTable(types.BooksTable)
	if _, err := books.Insert(&types.Book{Title: " ", Author: "A"}); err != types.ErrTitleEmpty {
		t.Errorf("expected ErrTitleEmpty, got %v", err)
	}
	if _, err := books.Insert(42); err != types.ErrInvalidData {
		t.Errorf("expected ErrInvalidData, got %v", err)
	}
	if _, err := books.Get(0); err != types.ErrInvalidID {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}

	staff, _ := b.GetTable(types.StaffTable)
	if _, err := staff.Insert(&types.Staff{Name: "Bob", Role: ""}); err != types.ErrRoleEmpty {
		t.Errorf("expected ErrRoleEmpty, got %v", err)
	}
}
