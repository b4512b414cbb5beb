/*
Package sqlite provides the SQLite-backed implementation of hr.Store.

PURPOSE:
  File-backed persistence for employee records. One table, identifier as
  primary key. Every mutation is committed before the call returns; there is
  no write-behind caching.

IDENTIFIER ASSIGNMENT:
  Insert computes max(id)+1 and writes the row inside a single database
  transaction, so inserts through one process cannot collide. The mutex
  serializes writers; the design assumes a single active writer.

WAL MODE:
  The database is opened with WAL (Write-Ahead Logging):
  - Readers don't block on the writer
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./hr.db", logger)
  if err != nil {
      // errors.Is(err, hr.ErrStoreUnavailable) at startup halts the app
  }
  defer store.Close()

SEE ALSO:
  - hr/store.go: Interface definition
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pulse/hr-insight/hr"
)

// Store implements hr.Store using SQLite.
type Store struct {
	db  *sql.DB
	log *zap.Logger
	mu  sync.RWMutex
}

var _ hr.Store = (*Store)(nil)
var _ hr.Importer = (*Store)(nil)

// New opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an in-memory database. A nil logger is allowed.
func New(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", hr.ErrStoreUnavailable, path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", hr.ErrStoreUnavailable, path, err)
	}

	s := &Store{db: db, log: log}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migrate: %v", hr.ErrStoreUnavailable, err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the employees table.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY,
		age INTEGER NOT NULL DEFAULT 0,
		gender TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL,
		job_role TEXT NOT NULL DEFAULT '',
		monthly_income INTEGER NOT NULL CHECK (monthly_income >= 0),
		performance_rating INTEGER NOT NULL DEFAULT 0,
		job_satisfaction INTEGER NOT NULL DEFAULT 0,
		years_at_company INTEGER NOT NULL DEFAULT 0,
		attrition TEXT NOT NULL CHECK (attrition IN ('Yes', 'No'))
	);

	CREATE INDEX IF NOT EXISTS idx_employees_department
		ON employees(department);
	`

	_, err := s.db.Exec(schema)
	return err
}

const employeeColumns = `id, age, gender, department, job_role, monthly_income,
	performance_rating, job_satisfaction, years_at_company, attrition`

// =============================================================================
// READS
// =============================================================================

// LoadAll returns every record in identifier order.
func (s *Store) LoadAll(ctx context.Context) ([]hr.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id ASC`
	return s.queryEmployees(ctx, query)
}

// LoadFiltered returns records for one department.
// The hr.AllDepartments sentinel behaves like LoadAll.
func (s *Store) LoadFiltered(ctx context.Context, department string) ([]hr.Employee, error) {
	if department == "" || department == hr.AllDepartments {
		return s.LoadAll(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE department = ? ORDER BY id ASC`
	return s.queryEmployees(ctx, query, department)
}

// Departments returns the distinct department values, sorted.
func (s *Store) Departments(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT department FROM employees ORDER BY department ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// Count returns the number of persisted records.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&count)
	return count, err
}

func (s *Store) queryEmployees(ctx context.Context, query string, args ...any) ([]hr.Employee, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []hr.Employee
	for rows.Next() {
		var e hr.Employee
		if err := rows.Scan(
			&e.ID, &e.Age, &e.Gender, &e.Department, &e.JobRole,
			&e.MonthlyIncome, &e.PerformanceRating, &e.JobSatisfaction,
			&e.YearsAtCompany, &e.Attrition,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// =============================================================================
// WRITES
// =============================================================================

// Insert validates the payload, assigns the next unused identifier, and
// persists the record. The assignment and write share one transaction.
func (s *Store) Insert(ctx context.Context, rec hr.NewEmployee) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var next int64
	if err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(id), 0) + 1 FROM employees").Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to assign identifier: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO employees
		(id, age, gender, department, job_role, monthly_income,
		 performance_rating, job_satisfaction, years_at_company, attrition)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		next, rec.Age, rec.Gender, rec.Department, rec.JobRole,
		rec.MonthlyIncome, rec.PerformanceRating, rec.JobSatisfaction,
		rec.YearsAtCompany, rec.Attrition,
	); err != nil {
		return 0, fmt.Errorf("failed to insert employee: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit insert: %w", err)
	}

	s.log.Info("employee inserted",
		zap.Int64("id", next),
		zap.String("department", rec.Department))
	return next, nil
}

// UpdateIncome overwrites the monthly income of one record.
func (s *Store) UpdateIncome(ctx context.Context, id int64, income int64) error {
	if err := hr.ValidateIncome(income); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"UPDATE employees SET monthly_income = ? WHERE id = ?", income, id)
	if err != nil {
		return fmt.Errorf("failed to update income: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", hr.ErrNotFound, id)
	}

	s.log.Info("income updated", zap.Int64("id", id), zap.Int64("monthly_income", income))
	return nil
}

// ImportBatch writes dataset records atomically, keeping their identifiers.
// Used by the one-time setup import only.
func (s *Store) ImportBatch(ctx context.Context, records []hr.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO employees
		(id, age, gender, department, job_role, monthly_income,
		 performance_rating, job_satisfaction, years_at_company, attrition)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare import: %w", err)
	}
	defer stmt.Close()

	for _, e := range records {
		if _, err := stmt.ExecContext(ctx,
			e.ID, e.Age, e.Gender, e.Department, e.JobRole,
			e.MonthlyIncome, e.PerformanceRating, e.JobSatisfaction,
			e.YearsAtCompany, e.Attrition,
		); err != nil {
			return fmt.Errorf("failed to import employee %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	s.log.Info("dataset imported", zap.Int("records", len(records)))
	return nil
}
