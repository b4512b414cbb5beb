package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse/hr-insight/hr"
	"github.com/pulse/hr-insight/store/memory"
)

func seeded() *memory.Store {
	return memory.Seed(
		hr.Employee{ID: 1, Department: "Sales", JobRole: "Rep", MonthlyIncome: 5000, Attrition: hr.AttritionNo},
		hr.Employee{ID: 2, Department: "R&D", JobRole: "Scientist", MonthlyIncome: 7000, Attrition: hr.AttritionYes},
	)
}

func TestMemory_MatchesStoreContract(t *testing.T) {
	store := seeded()
	ctx := context.Background()

	// Insert assigns max(id)+1.
	id, err := store.Insert(ctx, hr.NewEmployee{
		Department: "HR", JobRole: "Manager", MonthlyIncome: 4000, Attrition: hr.AttritionNo,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// The All sentinel behaves like LoadAll.
	all, err := store.LoadAll(ctx)
	require.NoError(t, err)
	filtered, err := store.LoadFiltered(ctx, hr.AllDepartments)
	require.NoError(t, err)
	assert.Equal(t, all, filtered)

	// Department equality.
	sales, err := store.LoadFiltered(ctx, "Sales")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, int64(1), sales[0].ID)

	// Update reflects on reload, unknown id is a not-found.
	require.NoError(t, store.UpdateIncome(ctx, 1, 5200))
	all, err = store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5200), all[0].MonthlyIncome)

	err = store.UpdateIncome(ctx, 99, 1000)
	assert.True(t, hr.IsNotFound(err))

	err = store.UpdateIncome(ctx, 1, -5)
	assert.True(t, hr.IsValidation(err))

	departments, err := store.Departments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"HR", "R&D", "Sales"}, departments)
}

func TestMemory_LoadAll_ReturnsCopies(t *testing.T) {
	store := seeded()
	ctx := context.Background()

	all, err := store.LoadAll(ctx)
	require.NoError(t, err)
	all[0].MonthlyIncome = 1

	again, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), again[0].MonthlyIncome)
}
