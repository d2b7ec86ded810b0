package export

import (
	"fmt"
	"path/filepath"

	"github.com/sweta-r4/library-api/internal/flatfile"
	"github.com/sweta-r4/library-api/pkg/types"
)

// Defaults applied to fields the flat-file format does not carry.
const (
	defaultMembershipType = "Standard"
	defaultJoinDate       = "2024-01-01"
	defaultHireDate       = "2024-01-01"
)

// bookCatalogRecord is the wide book shape written by Convert.
type bookCatalogRecord struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	PublishedYear *int64 `json:"published_year"`
	Genre         string `json:"genre"`
	Available     bool   `json:"available"`
}

// readerCatalogRecord is the wide reader shape written by Convert.
type readerCatalogRecord struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	MembershipID   string  `json:"membership_id"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	MembershipType string  `json:"membership_type"`
	JoinDate       string  `json:"join_date"`
	BooksBorrowed  []int64 `json:"books_borrowed"`
}

// staffCatalogRecord is the wide staff shape written by Convert.
type staffCatalogRecord struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Salary     int64  `json:"salary"`
	HireDate   string `json:"hire_date"`
	IsActive   bool   `json:"is_active"`
}

// Convert reads the flat text files in dataDir through the flatfile backend
// and writes books.json, readers.json, and staff.json next to them, widening
// each record with blank defaults for the fields the line format lacks.
func Convert(dataDir string) ([]Result, error) {
	backend := flatfile.NewBackend()
	cfg := types.Config{Backend: types.BackendFlatFile, DataDir: dataDir}
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attaching flatfile store: %w", err)
	}
	defer backend.Detach()

	var results []Result

	books, err := listTable(backend, types.BooksTable)
	if err != nil {
		return nil, err
	}
	bookRecords := make([]bookCatalogRecord, 0, len(books))
	for _, rec := range books {
		b := rec.(*types.Book)
		bookRecords = append(bookRecords, bookCatalogRecord{
			ID:        b.ID,
			Title:     b.Title,
			Author:    b.Author,
			Genre:     b.Genre,
			Available: true,
		})
	}
	path := filepath.Join(dataDir, "books.json")
	if err := writeJSON(path, map[string]any{"books": bookRecords}); err != nil {
		return nil, err
	}
	results = append(results, Result{Table: types.BooksTable, Count: len(bookRecords), Path: path})

	readers, err := listTable(backend, types.ReadersTable)
	if err != nil {
		return nil, err
	}
	readerRecords := make([]readerCatalogRecord, 0, len(readers))
	for _, rec := range readers {
		r := rec.(*types.Reader)
		readerRecords = append(readerRecords, readerCatalogRecord{
			ID:             r.ID,
			Name:           r.Name,
			MembershipID:   r.Contact,
			MembershipType: defaultMembershipType,
			JoinDate:       defaultJoinDate,
			BooksBorrowed:  []int64{},
		})
	}
	path = filepath.Join(dataDir, "readers.json")
	if err := writeJSON(path, map[string]any{"readers": readerRecords}); err != nil {
		return nil, err
	}
	results = append(results, Result{Table: types.ReadersTable, Count: len(readerRecords), Path: path})

	staff, err := listTable(backend, types.StaffTable)
	if err != nil {
		return nil, err
	}
	staffRecords := make([]staffCatalogRecord, 0, len(staff))
	for _, rec := range staff {
		s := rec.(*types.Staff)
		staffRecords = append(staffRecords, staffCatalogRecord{
			ID:       s.ID,
			Name:     s.Name,
			Position: s.Role,
			HireDate: defaultHireDate,
			IsActive: true,
		})
	}
	path = filepath.Join(dataDir, "staff.json")
	if err := writeJSON(path, map[string]any{"staff": staffRecords}); err != nil {
		return nil, err
	}
	results = append(results, Result{Table: types.StaffTable, Count: len(staffRecords), Path: path})

	return results, nil
}

// listTable fetches every record of one table.
func listTable(store types.Store, name string) ([]any, error) {
	table, err := store.GetTable(name)
	if err != nil {
		return nil, fmt.Errorf("getting table %s: %w", name, err)
	}
	records, err := table.List()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", name, err)
	}
	return records, nil
}
