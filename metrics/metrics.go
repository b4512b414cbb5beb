/*
Package metrics computes dashboard KPIs over employee record snapshots.

PURPOSE:
  Pure aggregation over an already-filtered slice of records: scalar KPIs
  (count, average income, attrition rate), grouped distributions for bar and
  pie charts, and raw pairs for scatter plots.

DESIGN PRINCIPLES:
  1. Purity: No side effects, no stored state. Same input, same output.
  2. Totality: Every function tolerates an empty snapshot without failing.
  3. Precision: Income sums use decimal.Decimal, not float accumulation.

The caller is responsible for filtering; see hr.Gateway. Each render pass
takes the current snapshot as a parameter, there is no hidden cache.

SEE ALSO:
  - hr/filter.go: Produces the filtered snapshot
  - api: Serializes these outputs for the dashboard
*/
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/pulse/hr-insight/hr"
)

// =============================================================================
// SCALAR KPIS
// =============================================================================

// Summary bundles the three headline KPIs computed in one pass.
type Summary struct {
	TotalCount    int     `json:"total_count"`
	AverageIncome float64 `json:"average_income"`
	AttritionRate float64 `json:"attrition_rate"`
}

// TotalCount returns the number of records in the snapshot.
func TotalCount(records []hr.Employee) int {
	return len(records)
}

// AverageIncome returns the arithmetic mean of monthly income.
// Defined as 0 for an empty snapshot.
func AverageIncome(records []hr.Employee) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(decimal.NewFromInt(r.MonthlyIncome))
	}
	avg, _ := sum.Div(decimal.NewFromInt(int64(len(records)))).Float64()
	return avg
}

// AttritionRate returns the fraction of records with the attrition flag set,
// always in [0,1]. Defined as 0 for an empty snapshot.
func AttritionRate(records []hr.Employee) float64 {
	if len(records) == 0 {
		return 0
	}
	left := 0
	for _, r := range records {
		if r.Left() {
			left++
		}
	}
	return float64(left) / float64(len(records))
}

// Summarize computes all three KPIs for a snapshot.
func Summarize(records []hr.Employee) Summary {
	return Summary{
		TotalCount:    TotalCount(records),
		AverageIncome: AverageIncome(records),
		AttritionRate: AttritionRate(records),
	}
}

// =============================================================================
// DISTRIBUTIONS - Grouped counts for bar/pie charts
// =============================================================================

// Bucket is one distinct attribute value and its record count.
type Bucket struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// GroupedDistribution counts records per distinct key value. Buckets appear
// in first-seen order of the input snapshot, so chart ordering is stable for
// a given load order. Bucket counts always sum to TotalCount.
func GroupedDistribution(records []hr.Employee, key hr.GroupKeyFunc) []Bucket {
	index := make(map[string]int, 8)
	buckets := make([]Bucket, 0, 8)
	for _, r := range records {
		v := key(r)
		i, seen := index[v]
		if !seen {
			index[v] = len(buckets)
			buckets = append(buckets, Bucket{Value: v})
			i = len(buckets) - 1
		}
		buckets[i].Count++
	}
	return buckets
}

// =============================================================================
// SCATTER - Raw pairs, no aggregation
// =============================================================================

// Pair is one scatter point.
type Pair struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScatterPairs extracts one (x, y) pair per record, in input order.
func ScatterPairs(records []hr.Employee, x, y hr.AxisFunc) []Pair {
	pairs := make([]Pair, len(records))
	for i, r := range records {
		pairs[i] = Pair{X: x(r), Y: y(r)}
	}
	return pairs
}
