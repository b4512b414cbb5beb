/*
handlers.go - HTTP API handlers for the attrition dashboard backend

PURPOSE:
  Exposes the record store and metrics engine via REST. Handles HTTP
  request/response, JSON serialization, and delegates everything else to
  the domain packages.

ENDPOINTS:
  Employees:
    GET  /api/employees?department=    Filtered record list
    POST /api/employees                Insert record, returns assigned id
    PUT  /api/employees/{id}/income    Update one record's monthly income

  Filter:
    GET  /api/departments              Known departments for the selector

  Metrics:
    GET  /api/metrics/summary?department=
    GET  /api/metrics/distribution?key=&department=
    GET  /api/metrics/scatter?x=&y=&department=

REQUEST FLOW:
  1. Parse HTTP request
  2. Resolve the department selection through the filter gateway
  3. Load a fresh snapshot and compute
  4. Serialize response

  There is no cached snapshot. Every interaction recomputes from the store,
  so a mutation is visible to the next read immediately.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Unknown identifier
  - 500: Store failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pulse/hr-insight/hr"
	"github.com/pulse/hr-insight/metrics"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store hr.Store
	Log   *zap.Logger
}

// NewHandler creates a handler backed by the given store.
func NewHandler(store hr.Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Store: store, Log: log}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns the records for the current department selection.
// GET /api/employees?department=Sales
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")

	employees, err := h.Store.LoadFiltered(r.Context(), department)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateEmployee inserts a new record and returns the assigned identifier.
// POST /api/employees
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id, err := h.Store.Insert(r.Context(), hr.NewEmployee{
		Age:               req.Age,
		Gender:            req.Gender,
		Department:        req.Department,
		JobRole:           req.JobRole,
		MonthlyIncome:     req.MonthlyIncome,
		PerformanceRating: req.PerformanceRating,
		JobSatisfaction:   req.JobSatisfaction,
		YearsAtCompany:    req.YearsAtCompany,
		Attrition:         req.Attrition,
	})
	if err != nil {
		if hr.IsValidation(err) {
			writeError(w, http.StatusBadRequest, "Invalid employee record", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to insert employee", err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatedDTO{ID: id})
}

// UpdateIncome overwrites the monthly income of one record.
// PUT /api/employees/{id}/income
func (h *Handler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid employee id", err)
		return
	}

	var req UpdateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.Store.UpdateIncome(r.Context(), id, req.MonthlyIncome); err != nil {
		switch {
		case hr.IsNotFound(err):
			writeError(w, http.StatusNotFound, "Employee not found", err)
		case hr.IsValidation(err):
			writeError(w, http.StatusBadRequest, "Invalid income", err)
		default:
			writeError(w, http.StatusInternalServerError, "Failed to update income", err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// FILTER HANDLERS
// =============================================================================

// ListDepartments returns the known department values plus the sentinel.
// GET /api/departments
func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Store.Departments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load departments", err)
		return
	}

	writeJSON(w, http.StatusOK, append([]string{hr.AllDepartments}, departments...))
}

// =============================================================================
// METRICS HANDLERS
// =============================================================================

// snapshot loads the full record set and applies the department selection.
// Returns false after writing an error response when the selection is not a
// known department.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) ([]hr.Employee, string, bool) {
	department := r.URL.Query().Get("department")
	if department == "" {
		department = hr.AllDepartments
	}

	records, err := h.Store.LoadAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load employees", err)
		return nil, "", false
	}

	gw := hr.GatewayFromRecords(records)
	if !gw.Known(department) {
		writeError(w, http.StatusBadRequest, "Unknown department: "+department, nil)
		return nil, "", false
	}

	return hr.Apply(records, gw.Resolve(department)), department, true
}

// GetSummary returns the headline KPIs for one department selection.
// GET /api/metrics/summary?department=Sales
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	records, department, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, SummaryDTO{
		Department: department,
		Summary:    metrics.Summarize(records),
	})
}

// GetDistribution returns grouped counts for a bar or pie chart.
// GET /api/metrics/distribution?key=JobRole&department=Sales
func (h *Handler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	keyName := r.URL.Query().Get("key")
	key, ok := hr.GroupKey(keyName)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown grouping key: "+keyName, nil)
		return
	}

	records, department, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, DistributionDTO{
		Department: department,
		Key:        keyName,
		Buckets:    metrics.GroupedDistribution(records, key),
	})
}

// GetScatter returns one (x, y) point per record for a scatter chart.
// GET /api/metrics/scatter?x=JobSatisfaction&y=MonthlyIncome&department=Sales
func (h *Handler) GetScatter(w http.ResponseWriter, r *http.Request) {
	xName := r.URL.Query().Get("x")
	yName := r.URL.Query().Get("y")

	x, ok := hr.Axis(xName)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown axis: "+xName, nil)
		return
	}
	y, ok := hr.Axis(yName)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown axis: "+yName, nil)
		return
	}

	records, department, ok := h.snapshot(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, ScatterDTO{
		Department: department,
		X:          xName,
		Y:          yName,
		Points:     metrics.ScatterPairs(records, x, y),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
