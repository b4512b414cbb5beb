/*
Package hr provides the core domain model for the attrition insight engine.

PURPOSE:
  This package contains the employee record type, its validation rules, the
  storage interface, and the filter gateway. The metrics engine and every
  store implementation build on these types.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee:    One persisted employee row (identifier assigned by the store)
  - NewEmployee: Insert payload before an identifier exists
  - GroupKey:    Named accessor for categorical chart dimensions
  - Axis:        Named accessor for numeric chart dimensions

DESIGN PRINCIPLES:
  1. Identifiers are store-assigned and stable once assigned
  2. Validation lives with the type, stores call it before any write
  3. Chart dimensions are selected by name so the presentation layer never
     reaches into struct fields

SEE ALSO:
  - store.go: Persistence interface
  - filter.go: Department selection to predicate
  - errors.go: Error taxonomy
*/
package hr

import "strconv"

// Attrition flag values. Exactly these two are valid.
const (
	AttritionYes = "Yes"
	AttritionNo  = "No"
)

// =============================================================================
// EMPLOYEE - One row in the employees table
// =============================================================================

// Employee is a persisted employee record.
type Employee struct {
	ID                int64  `json:"id"`
	Age               int    `json:"age"`
	Gender            string `json:"gender"`
	Department        string `json:"department"`
	JobRole           string `json:"job_role"`
	MonthlyIncome     int64  `json:"monthly_income"`
	PerformanceRating int    `json:"performance_rating"`
	JobSatisfaction   int    `json:"job_satisfaction"`
	YearsAtCompany    int    `json:"years_at_company"`
	Attrition         string `json:"attrition"`
}

// NewEmployee is the insert payload. The store assigns the identifier.
type NewEmployee struct {
	Age               int
	Gender            string
	Department        string
	JobRole           string
	MonthlyIncome     int64
	PerformanceRating int
	JobSatisfaction   int
	YearsAtCompany    int
	Attrition         string
}

// Validate checks the payload against the record invariants.
// Returns a *ValidationError naming the first offending field.
func (n NewEmployee) Validate() error {
	if n.Department == "" {
		return &ValidationError{Field: "department", Message: "department is required"}
	}
	if n.JobRole == "" {
		return &ValidationError{Field: "job_role", Message: "job role is required"}
	}
	if n.MonthlyIncome < 0 {
		return &ValidationError{Field: "monthly_income", Message: "monthly income must not be negative"}
	}
	if n.Attrition != AttritionYes && n.Attrition != AttritionNo {
		return &ValidationError{Field: "attrition", Message: `attrition must be "Yes" or "No"`}
	}
	if n.Age < 0 {
		return &ValidationError{Field: "age", Message: "age must not be negative"}
	}
	return nil
}

// ValidateIncome checks an income value for the update operation.
func ValidateIncome(income int64) error {
	if income < 0 {
		return &ValidationError{Field: "monthly_income", Message: "monthly income must not be negative"}
	}
	return nil
}

// Record converts the payload into an Employee with the given identifier.
func (n NewEmployee) Record(id int64) Employee {
	return Employee{
		ID:                id,
		Age:               n.Age,
		Gender:            n.Gender,
		Department:        n.Department,
		JobRole:           n.JobRole,
		MonthlyIncome:     n.MonthlyIncome,
		PerformanceRating: n.PerformanceRating,
		JobSatisfaction:   n.JobSatisfaction,
		YearsAtCompany:    n.YearsAtCompany,
		Attrition:         n.Attrition,
	}
}

// Left says whether the employee has left the company.
func (e Employee) Left() bool {
	return e.Attrition == AttritionYes
}

// =============================================================================
// NAMED ATTRIBUTES - Chart dimensions selected by name
// =============================================================================

// GroupKeyFunc extracts a categorical value used for grouped distributions.
type GroupKeyFunc func(Employee) string

// AxisFunc extracts a numeric value used for scatter axes.
type AxisFunc func(Employee) float64

var groupKeys = map[string]GroupKeyFunc{
	"Department":        func(e Employee) string { return e.Department },
	"JobRole":           func(e Employee) string { return e.JobRole },
	"Gender":            func(e Employee) string { return e.Gender },
	"Attrition":         func(e Employee) string { return e.Attrition },
	"PerformanceRating": func(e Employee) string { return strconv.Itoa(e.PerformanceRating) },
	"JobSatisfaction":   func(e Employee) string { return strconv.Itoa(e.JobSatisfaction) },
}

var axes = map[string]AxisFunc{
	"MonthlyIncome":     func(e Employee) float64 { return float64(e.MonthlyIncome) },
	"Age":               func(e Employee) float64 { return float64(e.Age) },
	"JobSatisfaction":   func(e Employee) float64 { return float64(e.JobSatisfaction) },
	"PerformanceRating": func(e Employee) float64 { return float64(e.PerformanceRating) },
	"YearsAtCompany":    func(e Employee) float64 { return float64(e.YearsAtCompany) },
}

// GroupKey looks up a categorical accessor by column name.
func GroupKey(name string) (GroupKeyFunc, bool) {
	fn, ok := groupKeys[name]
	return fn, ok
}

// Axis looks up a numeric accessor by column name.
func Axis(name string) (AxisFunc, bool) {
	fn, ok := axes[name]
	return fn, ok
}
