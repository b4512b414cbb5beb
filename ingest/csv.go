/*
Package ingest loads the employee attrition dataset into a record store.

PURPOSE:
  One-time setup path: read the raw CSV, clean it up, and populate the
  employees table. Split from the long-running server so the dashboard
  process never touches the raw file.

CLEANING STEPS (in order):
  1. Header names are stripped to [0-9A-Za-z_] so they line up with the
     table columns ("Monthly Income ($)" becomes "MonthlyIncome").
  2. Identifiers come from an EmployeeID or EmployeeNumber column; when
     neither exists, sequential identifiers 1..n are assigned.
  3. Missing YearsAtCompany cells are filled with the column median.
  4. Duplicate identifiers reject the whole dataset.

IDEMPOTENCY:
  Populate refuses to touch a store that already holds records and returns
  hr.ErrAlreadyPopulated. Re-running setup is safe.

SEE ALSO:
  - cmd/setup: CLI wrapper around this package
  - hr/store.go: Importer interface used for the atomic write
*/
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"

	"github.com/pulse/hr-insight/hr"
)

var columnCleaner = regexp.MustCompile(`[^0-9a-zA-Z_]`)

// cleanColumn strips a raw header name down to a database-safe identifier.
func cleanColumn(name string) string {
	return columnCleaner.ReplaceAllString(name, "")
}

// ReadDataset parses the attrition CSV into employee records.
// The header row is required. Department, MonthlyIncome, and Attrition
// columns are required; the remaining fields default to zero values when
// their columns are absent.
func ReadDataset(r io.Reader) ([]hr.Employee, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &hr.ValidationError{Field: "header", Message: "dataset is empty"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		if cleaned := cleanColumn(name); cleaned != "" {
			cols[cleaned] = i
		}
	}
	for _, required := range []string{"Department", "MonthlyIncome", "Attrition"} {
		if _, ok := cols[required]; !ok {
			return nil, &hr.ValidationError{Field: required, Message: "required column is missing"}
		}
	}

	idCol, hasID := cols["EmployeeID"]
	if !hasID {
		idCol, hasID = cols["EmployeeNumber"]
	}
	yearsCol, hasYears := cols["YearsAtCompany"]

	var (
		records      []hr.Employee
		missingYears []int // indexes into records needing the median fill
		seen         = make(map[int64]struct{})
		line         = 1
	)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line++

		var e hr.Employee
		if hasID {
			e.ID, err = strconv.ParseInt(field(row, idCol), 10, 64)
			if err != nil {
				return nil, &hr.ValidationError{
					Field:   "EmployeeID",
					Message: fmt.Sprintf("line %d: not an integer: %q", line, field(row, idCol)),
				}
			}
		} else {
			e.ID = int64(len(records) + 1)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, &hr.ValidationError{
				Field:   "EmployeeID",
				Message: fmt.Sprintf("line %d: duplicate identifier %d", line, e.ID),
			}
		}
		seen[e.ID] = struct{}{}

		e.Department = field(row, cols["Department"])
		e.Attrition = field(row, cols["Attrition"])
		e.MonthlyIncome, err = strconv.ParseInt(field(row, cols["MonthlyIncome"]), 10, 64)
		if err != nil {
			return nil, &hr.ValidationError{
				Field:   "MonthlyIncome",
				Message: fmt.Sprintf("line %d: not an integer: %q", line, field(row, cols["MonthlyIncome"])),
			}
		}

		e.Age = intColumn(row, cols, "Age")
		e.Gender = stringColumn(row, cols, "Gender")
		e.JobRole = stringColumn(row, cols, "JobRole")
		e.PerformanceRating = intColumn(row, cols, "PerformanceRating")
		e.JobSatisfaction = intColumn(row, cols, "JobSatisfaction")

		if hasYears && field(row, yearsCol) == "" {
			missingYears = append(missingYears, len(records))
		} else {
			e.YearsAtCompany = intColumn(row, cols, "YearsAtCompany")
		}

		if err := validateRow(e, line); err != nil {
			return nil, err
		}
		records = append(records, e)
	}

	fillMissingYears(records, missingYears)
	return records, nil
}

// validateRow enforces the record invariants on a parsed dataset row.
func validateRow(e hr.Employee, line int) error {
	if e.MonthlyIncome < 0 {
		return &hr.ValidationError{
			Field:   "MonthlyIncome",
			Message: fmt.Sprintf("line %d: negative income %d", line, e.MonthlyIncome),
		}
	}
	if e.Attrition != hr.AttritionYes && e.Attrition != hr.AttritionNo {
		return &hr.ValidationError{
			Field:   "Attrition",
			Message: fmt.Sprintf("line %d: must be Yes or No, got %q", line, e.Attrition),
		}
	}
	if e.Department == "" {
		return &hr.ValidationError{
			Field:   "Department",
			Message: fmt.Sprintf("line %d: department is empty", line),
		}
	}
	return nil
}

// fillMissingYears replaces absent YearsAtCompany values with the median of
// the observed ones, mirroring the original setup script's cleaning step.
func fillMissingYears(records []hr.Employee, missing []int) {
	if len(missing) == 0 || len(missing) == len(records) {
		return
	}

	skip := make(map[int]struct{}, len(missing))
	for _, i := range missing {
		skip[i] = struct{}{}
	}

	var observed []int
	for i, r := range records {
		if _, ok := skip[i]; !ok {
			observed = append(observed, r.YearsAtCompany)
		}
	}
	sort.Ints(observed)

	median := observed[len(observed)/2]
	if len(observed)%2 == 0 {
		median = (observed[len(observed)/2-1] + observed[len(observed)/2]) / 2
	}

	for _, i := range missing {
		records[i].YearsAtCompany = median
	}
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func stringColumn(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok {
		return ""
	}
	return field(row, i)
}

func intColumn(row []string, cols map[string]int, name string) int {
	i, ok := cols[name]
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(field(row, i))
	if err != nil {
		return 0
	}
	return v
}
