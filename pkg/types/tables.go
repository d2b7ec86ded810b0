package types

// Standard table names for Store.GetTable.
const (
	BooksTable   = "books"
	StaffTable   = "staff"
	ReadersTable = "readers"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	BooksTable,
	StaffTable,
	ReadersTable,
}
