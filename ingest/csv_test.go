package ingest_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse/hr-insight/hr"
	"github.com/pulse/hr-insight/ingest"
	"github.com/pulse/hr-insight/store/memory"
)

const sampleCSV = `EmployeeNumber,Age,Gender,Department,JobRole,MonthlyIncome,PerformanceRating,JobSatisfaction,YearsAtCompany,Attrition
10,41,Female,Sales,Sales Executive,5993,3,4,6,Yes
11,49,Male,Research & Development,Research Scientist,5130,4,2,10,No
12,37,Male,Research & Development,Laboratory Technician,2090,3,3,0,Yes
`

func TestReadDataset_ParsesRows(t *testing.T) {
	records, err := ingest.ReadDataset(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, int64(10), first.ID)
	assert.Equal(t, 41, first.Age)
	assert.Equal(t, "Sales", first.Department)
	assert.Equal(t, "Sales Executive", first.JobRole)
	assert.Equal(t, int64(5993), first.MonthlyIncome)
	assert.Equal(t, hr.AttritionYes, first.Attrition)
}

func TestReadDataset_CleansHeaderNames(t *testing.T) {
	csv := "Employee ID,Department,Monthly Income ($),Attrition\n1,Sales,5000,No\n"

	records, err := ingest.ReadDataset(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, int64(5000), records[0].MonthlyIncome)
}

func TestReadDataset_SynthesizesIdentifiers(t *testing.T) {
	csv := "Department,MonthlyIncome,Attrition\nSales,5000,No\nHR,4000,Yes\n"

	records, err := ingest.ReadDataset(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, int64(2), records[1].ID)
}

func TestReadDataset_FillsMissingYearsWithMedian(t *testing.T) {
	csv := `Department,MonthlyIncome,YearsAtCompany,Attrition
Sales,5000,2,No
Sales,5000,4,No
Sales,5000,,No
Sales,5000,10,No
`
	records, err := ingest.ReadDataset(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 4)

	// Observed values 2, 4, 10 -> median 4.
	assert.Equal(t, 4, records[2].YearsAtCompany)
}

func TestReadDataset_DuplicateIdentifier_Rejected(t *testing.T) {
	csv := "EmployeeID,Department,MonthlyIncome,Attrition\n1,Sales,5000,No\n1,HR,4000,No\n"

	_, err := ingest.ReadDataset(strings.NewReader(csv))
	assert.True(t, hr.IsValidation(err), "expected validation error, got %v", err)
}

func TestReadDataset_MissingRequiredColumn_Rejected(t *testing.T) {
	csv := "Department,MonthlyIncome\nSales,5000\n"

	_, err := ingest.ReadDataset(strings.NewReader(csv))
	assert.True(t, hr.IsValidation(err), "expected validation error, got %v", err)
}

func TestReadDataset_BadAttritionValue_Rejected(t *testing.T) {
	csv := "Department,MonthlyIncome,Attrition\nSales,5000,Perhaps\n"

	_, err := ingest.ReadDataset(strings.NewReader(csv))
	assert.True(t, hr.IsValidation(err), "expected validation error, got %v", err)
}

func TestPopulate_IdempotentSkip(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	records, err := ingest.ReadDataset(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.NoError(t, ingest.Populate(ctx, store, records, nil))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Second run leaves the store untouched.
	err = ingest.Populate(ctx, store, records, nil)
	assert.ErrorIs(t, err, hr.ErrAlreadyPopulated)

	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
