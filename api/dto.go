/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Parsing happens in handlers; domain validation happens in the store.
  DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/pulse/hr-insight/hr"
	"github.com/pulse/hr-insight/metrics"
)

// EmployeeDTO represents an employee record in API responses.
type EmployeeDTO struct {
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

func toEmployeeDTO(e hr.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:                e.ID,
		Age:               e.Age,
		Gender:            e.Gender,
		Department:        e.Department,
		JobRole:           e.JobRole,
		MonthlyIncome:     e.MonthlyIncome,
		PerformanceRating: e.PerformanceRating,
		JobSatisfaction:   e.JobSatisfaction,
		YearsAtCompany:    e.YearsAtCompany,
		Attrition:         e.Attrition,
	}
}

// CreateEmployeeRequest is the "add employee" form payload.
// The identifier is assigned by the store, never by the client.
type CreateEmployeeRequest struct {
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

// UpdateIncomeRequest is the "update income" form payload.
type UpdateIncomeRequest struct {
	MonthlyIncome int64 `json:"monthly_income"`
}

// CreatedDTO returns the identifier assigned to a new record.
type CreatedDTO struct {
	ID int64 `json:"id"`
}

// SummaryDTO carries the headline KPIs for one department selection.
type SummaryDTO struct {
	Department string          `json:"department"`
	Summary    metrics.Summary `json:"summary"`
}

// DistributionDTO carries ordered buckets for a bar or pie chart.
type DistributionDTO struct {
	Department string           `json:"department"`
	Key        string           `json:"key"`
	Buckets    []metrics.Bucket `json:"buckets"`
}

// ScatterDTO carries raw pairs for a scatter chart.
type ScatterDTO struct {
	Department string         `json:"department"`
	X          string         `json:"x"`
	Y          string         `json:"y"`
	Points     []metrics.Pair `json:"points"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
