package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse/hr-insight/hr"
	"github.com/pulse/hr-insight/metrics"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

func emp(id int64, dept string, income int64, attrition string) hr.Employee {
	return hr.Employee{
		ID:            id,
		Department:    dept,
		JobRole:       "Analyst",
		MonthlyIncome: income,
		Attrition:     attrition,
	}
}

func sampleRecords() []hr.Employee {
	return []hr.Employee{
		emp(1, "Sales", 5000, hr.AttritionNo),
		emp(2, "R&D", 7000, hr.AttritionYes),
		emp(3, "Sales", 3000, hr.AttritionNo),
		emp(4, "HR", 4000, hr.AttritionYes),
	}
}

// =============================================================================
// SCALAR KPIS
// =============================================================================

func TestAverageIncome_EqualsSumOverCount(t *testing.T) {
	records := sampleRecords()

	avg := metrics.AverageIncome(records)

	// (5000 + 7000 + 3000 + 4000) / 4
	assert.InDelta(t, 4750.0, avg, 1e-9)
}

func TestAverageIncome_Empty_IsZero(t *testing.T) {
	assert.Equal(t, 0.0, metrics.AverageIncome(nil))
	assert.Equal(t, 0.0, metrics.AverageIncome([]hr.Employee{}))
}

func TestAttritionRate_InUnitInterval(t *testing.T) {
	records := sampleRecords()

	rate := metrics.AttritionRate(records)

	assert.GreaterOrEqual(t, rate, 0.0)
	assert.LessOrEqual(t, rate, 1.0)
	assert.InDelta(t, 0.5, rate, 1e-9)
}

func TestAttritionRate_NoneSet_IsZero(t *testing.T) {
	records := []hr.Employee{
		emp(1, "Sales", 5000, hr.AttritionNo),
		emp(2, "Sales", 6000, hr.AttritionNo),
	}

	assert.Equal(t, 0.0, metrics.AttritionRate(records))
}

func TestAttritionRate_Empty_IsZero(t *testing.T) {
	assert.Equal(t, 0.0, metrics.AttritionRate(nil))
}

func TestSummarize_MatchesIndividualKPIs(t *testing.T) {
	records := sampleRecords()

	s := metrics.Summarize(records)

	assert.Equal(t, metrics.TotalCount(records), s.TotalCount)
	assert.Equal(t, metrics.AverageIncome(records), s.AverageIncome)
	assert.Equal(t, metrics.AttritionRate(records), s.AttritionRate)
}

// =============================================================================
// DISTRIBUTIONS
// =============================================================================

func TestGroupedDistribution_CountsSumToTotal(t *testing.T) {
	records := sampleRecords()
	key, ok := hr.GroupKey("Department")
	require.True(t, ok)

	buckets := metrics.GroupedDistribution(records, key)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, metrics.TotalCount(records), total)
}

func TestGroupedDistribution_FirstSeenOrder(t *testing.T) {
	records := sampleRecords()
	key, ok := hr.GroupKey("Department")
	require.True(t, ok)

	buckets := metrics.GroupedDistribution(records, key)

	require.Len(t, buckets, 3)
	assert.Equal(t, metrics.Bucket{Value: "Sales", Count: 2}, buckets[0])
	assert.Equal(t, metrics.Bucket{Value: "R&D", Count: 1}, buckets[1])
	assert.Equal(t, metrics.Bucket{Value: "HR", Count: 1}, buckets[2])
}

func TestGroupedDistribution_Empty(t *testing.T) {
	key, ok := hr.GroupKey("Attrition")
	require.True(t, ok)

	buckets := metrics.GroupedDistribution(nil, key)

	assert.Empty(t, buckets)
}

// =============================================================================
// SCATTER
// =============================================================================

func TestScatterPairs_OnePairPerRecordInOrder(t *testing.T) {
	records := []hr.Employee{
		{ID: 1, JobSatisfaction: 3, MonthlyIncome: 5000},
		{ID: 2, JobSatisfaction: 1, MonthlyIncome: 7000},
	}
	x, ok := hr.Axis("JobSatisfaction")
	require.True(t, ok)
	y, ok := hr.Axis("MonthlyIncome")
	require.True(t, ok)

	pairs := metrics.ScatterPairs(records, x, y)

	require.Len(t, pairs, 2)
	assert.Equal(t, metrics.Pair{X: 3, Y: 5000}, pairs[0])
	assert.Equal(t, metrics.Pair{X: 1, Y: 7000}, pairs[1])
}

func TestScatterPairs_Empty(t *testing.T) {
	x, _ := hr.Axis("Age")
	y, _ := hr.Axis("MonthlyIncome")

	assert.Empty(t, metrics.ScatterPairs(nil, x, y))
}
