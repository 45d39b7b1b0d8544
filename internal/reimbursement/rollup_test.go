package reimbursement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openclaims/remit/internal/expense"
	"github.com/openclaims/remit/internal/reimbursement"
)

func TestService_OverallRollup_Empty(t *testing.T) {
	svc, m := newService(t)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	window := expense.DateRange{From: &from, To: &to}

	m.expenses.EXPECT().
		ListEligible(gomock.Any(), owner, window).
		Return(nil, nil)

	got, err := svc.OverallRollup(context.Background(), owner, window)
	require.NoError(t, err)

	assert.Equal(t, int64(0), got.TotalEligible)
	assert.Equal(t, int64(0), got.TotalReimbursed)
	assert.Equal(t, int64(0), got.Remaining)
	assert.Empty(t, got.ByCategory)
	assert.NotNil(t, got.ByCategory)
}

func TestService_OverallRollup(t *testing.T) {
	svc, m := newService(t)

	medicalID := uuid.New()
	dentalID := uuid.New()
	orphanID := uuid.New() // category row was deleted; name unresolvable

	expenses := []*expense.Expense{
		{ID: uuid.New(), UserID: owner, Amount: 10000, CategoryID: &medicalID},
		{ID: uuid.New(), UserID: owner, Amount: 5000, CategoryID: &medicalID},
		{ID: uuid.New(), UserID: owner, Amount: 8000, CategoryID: &dentalID},
		{ID: uuid.New(), UserID: owner, Amount: 3000, CategoryID: &orphanID},
		{ID: uuid.New(), UserID: owner, Amount: 2000}, // uncategorized, no payments
	}

	sums := map[uuid.UUID]int64{
		expenses[0].ID: 10000, // fully reimbursed
		expenses[1].ID: 1000,
		expenses[2].ID: 2500,
	}

	m.expenses.EXPECT().
		ListEligible(gomock.Any(), owner, expense.DateRange{}).
		Return(expenses, nil)
	m.repo.EXPECT().
		SumByExpense(gomock.Any(), owner, gomock.Len(5)).
		Return(sums, nil)
	m.categories.EXPECT().
		ResolveNames(gomock.Any(), gomock.InAnyOrder([]uuid.UUID{medicalID, dentalID, orphanID})).
		Return(map[uuid.UUID]string{medicalID: "Medical", dentalID: "Dental"}, nil)

	got, err := svc.OverallRollup(context.Background(), owner, expense.DateRange{})
	require.NoError(t, err)

	assert.Equal(t, int64(28000), got.TotalEligible)
	assert.Equal(t, int64(13500), got.TotalReimbursed)
	assert.Equal(t, int64(14500), got.Remaining)

	require.Len(t, got.ByCategory, 4)

	// Buckets come back sorted by display name.
	names := make([]string, len(got.ByCategory))
	for i, b := range got.ByCategory {
		names[i] = b.CategoryName
	}
	assert.Equal(t, []string{"Dental", "Medical", "Uncategorized", "Unknown"}, names)

	byName := make(map[string]reimbursement.CategoryRollup)
	for _, b := range got.ByCategory {
		byName[b.CategoryName] = b
	}

	medical := byName["Medical"]
	assert.Equal(t, int64(15000), medical.TotalEligible)
	assert.Equal(t, int64(11000), medical.TotalReimbursed)

	dental := byName["Dental"]
	assert.Equal(t, int64(8000), dental.TotalEligible)
	assert.Equal(t, int64(2500), dental.TotalReimbursed)

	unknown := byName["Unknown"]
	require.NotNil(t, unknown.CategoryID)
	assert.Equal(t, orphanID, *unknown.CategoryID)
	assert.Equal(t, int64(3000), unknown.TotalEligible)

	uncategorized := byName["Uncategorized"]
	assert.Nil(t, uncategorized.CategoryID)
	assert.Equal(t, int64(2000), uncategorized.TotalEligible)
	assert.Equal(t, int64(0), uncategorized.TotalReimbursed)
	assert.Equal(t, int64(2000), uncategorized.Remaining)

	// remaining = eligible - reimbursed holds per bucket and overall.
	var eligible, reimbursed int64
	for _, b := range got.ByCategory {
		assert.Equal(t, b.TotalEligible-b.TotalReimbursed, b.Remaining)

		eligible += b.TotalEligible
		reimbursed += b.TotalReimbursed
	}
	assert.Equal(t, got.TotalEligible, eligible)
	assert.Equal(t, got.TotalReimbursed, reimbursed)
	assert.Equal(t, got.TotalEligible-got.TotalReimbursed, got.Remaining)
}

func TestService_OverallRollup_StableOrder(t *testing.T) {
	catA := uuid.New()
	catB := uuid.New()

	expenses := []*expense.Expense{
		{ID: uuid.New(), UserID: owner, Amount: 1000, CategoryID: &catB},
		{ID: uuid.New(), UserID: owner, Amount: 2000, CategoryID: &catA},
		{ID: uuid.New(), UserID: owner, Amount: 500},
	}

	run := func(t *testing.T) []reimbursement.CategoryRollup {
		svc, m := newService(t)

		m.expenses.EXPECT().
			ListEligible(gomock.Any(), owner, expense.DateRange{}).
			Return(expenses, nil)
		m.repo.EXPECT().
			SumByExpense(gomock.Any(), owner, gomock.Any()).
			Return(map[uuid.UUID]int64{}, nil)
		m.categories.EXPECT().
			ResolveNames(gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]string{catA: "Alpha", catB: "Beta"}, nil)

		got, err := svc.OverallRollup(context.Background(), owner, expense.DateRange{})
		require.NoError(t, err)

		return got.ByCategory
	}

	first := run(t)
	second := run(t)
	assert.Equal(t, first, second)
	assert.Equal(t, "Alpha", first[0].CategoryName)
	assert.Equal(t, "Beta", first[1].CategoryName)
	assert.Equal(t, "Uncategorized", first[2].CategoryName)
}

func TestService_OverallRollup_Errors(t *testing.T) {
	t.Run("ListError", func(t *testing.T) {
		svc, m := newService(t)

		m.expenses.EXPECT().
			ListEligible(gomock.Any(), owner, expense.DateRange{}).
			Return(nil, errors.New("db error"))

		_, err := svc.OverallRollup(context.Background(), owner, expense.DateRange{})
		assert.Error(t, err)
	})

	t.Run("SumError", func(t *testing.T) {
		svc, m := newService(t)

		m.expenses.EXPECT().
			ListEligible(gomock.Any(), owner, expense.DateRange{}).
			Return([]*expense.Expense{{ID: uuid.New(), Amount: 1000}}, nil)
		m.repo.EXPECT().
			SumByExpense(gomock.Any(), owner, gomock.Any()).
			Return(nil, reimbursement.ErrStoreUnavailable)

		_, err := svc.OverallRollup(context.Background(), owner, expense.DateRange{})
		assert.ErrorIs(t, err, reimbursement.ErrStoreUnavailable)
	})
}
