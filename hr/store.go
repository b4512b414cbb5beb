/*
store.go - Persistence interface for employee records

PURPOSE:
  Defines the interface between the domain and the database. Different
  implementations can use SQLite or in-memory storage.

CONTRACT:
  - Identifier uniqueness holds at all times; Insert assigns max(id)+1.
  - Every mutating operation is durably persisted before returning.
  - UpdateIncome changes exactly one field on exactly one record.
  - There is NO delete operation. Records only accumulate.
  - A failed mutation leaves the store unchanged.

IMPLEMENTATIONS:
  - store/sqlite: Production file-backed store
  - store/memory: In-memory store for testing

SEE ALSO:
  - store/sqlite/sqlite.go: Concrete implementation
  - ingest: One-time dataset import through ImportBatch
*/
package hr

import "context"

// Store handles persistence of employee records.
type Store interface {
	// LoadAll returns every record in insertion (identifier) order.
	LoadAll(ctx context.Context) ([]Employee, error)

	// LoadFiltered returns records whose department equals the given value.
	// The AllDepartments sentinel behaves identically to LoadAll.
	LoadFiltered(ctx context.Context, department string) ([]Employee, error)

	// Insert validates the payload, assigns the next unused identifier,
	// persists the record, and returns the identifier.
	Insert(ctx context.Context, rec NewEmployee) (int64, error)

	// UpdateIncome overwrites the monthly income of one record.
	// Returns ErrNotFound when no record has the identifier and a
	// *ValidationError when the income is negative.
	UpdateIncome(ctx context.Context, id int64, income int64) error

	// Departments returns the distinct department values, sorted.
	Departments(ctx context.Context) ([]string, error)

	// Count returns the number of persisted records.
	Count(ctx context.Context) (int, error)

	// Close releases the underlying resources.
	Close() error
}

// Importer is implemented by stores that support the one-time bulk import.
// Records keep their dataset-assigned identifiers; the write is atomic.
type Importer interface {
	ImportBatch(ctx context.Context, records []Employee) error
}
