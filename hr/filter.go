/*
filter.go - Filter gateway: department selection to record predicate

PURPOSE:
  Maps a UI selection value to either "no restriction" or "department equals
  selection". The gateway holds nothing but the set of known departments,
  derived once from a full load; resolution itself is a pure function.

USAGE:
  gw := hr.GatewayFromRecords(records)
  keep := gw.Resolve(selection)
  visible := hr.Apply(records, keep)

SEE ALSO:
  - metrics: Consumes the already-filtered snapshot
*/
package hr

import "sort"

// AllDepartments is the sentinel selection meaning "no restriction".
const AllDepartments = "All"

// Predicate reports whether a record is included in the current view.
type Predicate func(Employee) bool

// Gateway resolves department selections against the known department set.
type Gateway struct {
	known map[string]struct{}
}

// NewGateway builds a gateway from a list of department values.
func NewGateway(departments []string) *Gateway {
	g := &Gateway{known: make(map[string]struct{}, len(departments))}
	for _, d := range departments {
		g.known[d] = struct{}{}
	}
	return g
}

// GatewayFromRecords derives the department set from a full record load.
func GatewayFromRecords(records []Employee) *Gateway {
	g := &Gateway{known: make(map[string]struct{})}
	for _, r := range records {
		g.known[r.Department] = struct{}{}
	}
	return g
}

// Resolve maps a selection to a predicate. The AllDepartments sentinel and
// the empty string resolve to a pass-through; anything else restricts to
// records whose department equals the selection.
func (g *Gateway) Resolve(selection string) Predicate {
	if selection == "" || selection == AllDepartments {
		return func(Employee) bool { return true }
	}
	return func(e Employee) bool { return e.Department == selection }
}

// Known reports whether the selection is the sentinel or an observed department.
func (g *Gateway) Known(selection string) bool {
	if selection == "" || selection == AllDepartments {
		return true
	}
	_, ok := g.known[selection]
	return ok
}

// Departments returns the known department values, sorted for display.
func (g *Gateway) Departments() []string {
	out := make([]string, 0, len(g.known))
	for d := range g.known {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Apply returns the records matching the predicate, preserving input order.
func Apply(records []Employee, keep Predicate) []Employee {
	out := make([]Employee, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
