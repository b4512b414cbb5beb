// Package memory provides an in-memory hr.Store for testing and demos.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pulse/hr-insight/hr"
)

// Store keeps records in a slice ordered by identifier.
// Semantics match store/sqlite: assigned IDs are max(id)+1, failed
// mutations leave the store unchanged, no delete operation exists.
type Store struct {
	mu      sync.RWMutex
	records []hr.Employee
}

var _ hr.Store = (*Store)(nil)
var _ hr.Importer = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// Seed builds a store pre-loaded with the given records.
func Seed(records ...hr.Employee) *Store {
	s := New()
	s.records = append(s.records, records...)
	sort.Slice(s.records, func(i, j int) bool { return s.records[i].ID < s.records[j].ID })
	return s
}

// LoadAll returns a copy of every record in identifier order.
func (s *Store) LoadAll(_ context.Context) ([]hr.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]hr.Employee, len(s.records))
	copy(out, s.records)
	return out, nil
}

// LoadFiltered returns records for one department.
func (s *Store) LoadFiltered(ctx context.Context, department string) ([]hr.Employee, error) {
	if department == "" || department == hr.AllDepartments {
		return s.LoadAll(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []hr.Employee
	for _, r := range s.records {
		if r.Department == department {
			out = append(out, r)
		}
	}
	return out, nil
}

// Insert assigns the next unused identifier and stores the record.
func (s *Store) Insert(_ context.Context, rec hr.NewEmployee) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var next int64 = 1
	if n := len(s.records); n > 0 {
		next = s.records[n-1].ID + 1
	}
	s.records = append(s.records, rec.Record(next))
	return next, nil
}

// UpdateIncome overwrites the monthly income of one record.
func (s *Store) UpdateIncome(_ context.Context, id int64, income int64) error {
	if err := hr.ValidateIncome(income); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].MonthlyIncome = income
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", hr.ErrNotFound, id)
}

// Departments returns the distinct department values, sorted.
func (s *Store) Departments(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.records {
		if _, ok := seen[r.Department]; !ok {
			seen[r.Department] = struct{}{}
			out = append(out, r.Department)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Count returns the number of stored records.
func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// ImportBatch stores dataset records, keeping their identifiers.
func (s *Store) ImportBatch(_ context.Context, records []hr.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, records...)
	sort.Slice(s.records, func(i, j int) bool { return s.records[i].ID < s.records[j].ID })
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}
