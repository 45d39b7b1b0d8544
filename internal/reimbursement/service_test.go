package reimbursement_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openclaims/remit/internal/expense"
	"github.com/openclaims/remit/internal/reimbursement"
)

const owner = "user-1"

func strPtr(s string) *string { return &s }

type mocks struct {
	repo       *reimbursement.MockRepository
	itx        *reimbursement.MockIntakeTx
	expenses   *reimbursement.MockExpenseStore
	categories *reimbursement.MockCategoryResolver
}

func newService(t *testing.T) (*reimbursement.Service, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := mocks{
		repo:       reimbursement.NewMockRepository(ctrl),
		itx:        reimbursement.NewMockIntakeTx(ctrl),
		expenses:   reimbursement.NewMockExpenseStore(ctrl),
		categories: reimbursement.NewMockCategoryResolver(ctrl),
	}

	return reimbursement.NewService(m.repo, m.expenses, m.categories), m
}

// expectRecompute wires the three store calls of a recomputation and
// returns the summary captured from the UpdateSummary call.
func expectRecompute(m mocks, e *expense.Expense, payments []*reimbursement.Payment, captured *expense.Summary) {
	m.expenses.EXPECT().
		Get(gomock.Any(), e.ID, owner).
		Return(e, nil)
	m.repo.EXPECT().
		ListPayments(gomock.Any(), e.ID, owner).
		Return(payments, nil)
	m.expenses.EXPECT().
		UpdateSummary(gomock.Any(), e.ID, owner, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, s expense.Summary) (*expense.Expense, error) {
			if captured != nil {
				*captured = s
			}

			updated := *e
			updated.Reimbursed = s.Reimbursed
			updated.ReimbursedAt = s.ReimbursedAt
			updated.ReimbursementMethod = s.Method
			updated.ReimbursementNotes = s.Notes

			return &updated, nil
		})
}

func TestService_Record(t *testing.T) {
	expenseID := uuid.New()
	e := &expense.Expense{ID: expenseID, UserID: owner, Amount: 10000}

	type testCase struct {
		name      string
		params    reimbursement.RecordParams
		setupMock func(m mocks)
		check     func(t *testing.T, got *reimbursement.RecordResult, err error)
	}

	tests := []testCase{
		{
			name:   "Success",
			params: reimbursement.RecordParams{ExpenseID: expenseID, Amount: 6000},
			setupMock: func(m mocks) {
				m.repo.EXPECT().BeginIntake(gomock.Any(), expenseID).Return(m.itx, nil)
				m.itx.EXPECT().ExpenseAmount(gomock.Any(), owner).Return(int64(10000), nil)
				m.itx.EXPECT().TotalReimbursed(gomock.Any(), owner).Return(int64(0), nil)
				m.itx.EXPECT().InsertPayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *reimbursement.Payment) error {
						p.CreatedAt = time.Now()
						return nil
					})
				m.itx.EXPECT().Commit().Return(nil)
				m.itx.EXPECT().Rollback().Return(nil)

				m.expenses.EXPECT().Get(gomock.Any(), expenseID, owner).Return(e, nil)
				m.repo.EXPECT().ListPayments(gomock.Any(), expenseID, owner).
					DoAndReturn(func(context.Context, uuid.UUID, string) ([]*reimbursement.Payment, error) {
						return []*reimbursement.Payment{{ID: uuid.New(), Amount: 6000, ReimbursedAt: time.Now()}}, nil
					})
				m.expenses.EXPECT().UpdateSummary(gomock.Any(), expenseID, owner, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, s expense.Summary) (*expense.Expense, error) {
						updated := *e
						updated.Reimbursed = s.Reimbursed
						return &updated, nil
					})
			},
			check: func(t *testing.T, got *reimbursement.RecordResult, err error) {
				require.NoError(t, err)
				require.NotNil(t, got.Payment)
				assert.NotEmpty(t, got.Payment.ID)
				assert.Equal(t, owner, got.Payment.UserID)
				assert.False(t, got.Payment.ReimbursedAt.IsZero())

				require.NotNil(t, got.Totals)
				assert.Equal(t, int64(10000), got.Totals.ExpenseAmount)
				assert.Equal(t, int64(6000), got.Totals.TotalReimbursed)
				assert.Equal(t, int64(4000), got.Totals.Remaining)
				assert.False(t, got.Totals.FullyReimbursed)
			},
		},
		{
			name:   "NonPositiveAmount",
			params: reimbursement.RecordParams{ExpenseID: expenseID, Amount: 0},
			check: func(t *testing.T, got *reimbursement.RecordResult, err error) {
				assert.ErrorIs(t, err, reimbursement.ErrInvalidAmount)
				assert.Nil(t, got)
			},
		},
		{
			name:   "ExpenseNotFound",
			params: reimbursement.RecordParams{ExpenseID: expenseID, Amount: 1000},
			setupMock: func(m mocks) {
				m.repo.EXPECT().BeginIntake(gomock.Any(), expenseID).Return(m.itx, nil)
				m.itx.EXPECT().ExpenseAmount(gomock.Any(), owner).Return(int64(0), reimbursement.ErrExpenseNotFound)
				m.itx.EXPECT().Rollback().Return(nil)
			},
			check: func(t *testing.T, got *reimbursement.RecordResult, err error) {
				assert.ErrorIs(t, err, reimbursement.ErrExpenseNotFound)
				assert.Nil(t, got)
			},
		},
		{
			name:   "OverdraftRejected",
			params: reimbursement.RecordParams{ExpenseID: expenseID, Amount: 5000},
			setupMock: func(m mocks) {
				m.repo.EXPECT().BeginIntake(gomock.Any(), expenseID).Return(m.itx, nil)
				m.itx.EXPECT().ExpenseAmount(gomock.Any(), owner).Return(int64(10000), nil)
				m.itx.EXPECT().TotalReimbursed(gomock.Any(), owner).Return(int64(6000), nil)
				m.itx.EXPECT().Rollback().Return(nil)
			},
			check: func(t *testing.T, got *reimbursement.RecordResult, err error) {
				assert.Nil(t, got)

				var overdraft *reimbursement.OverdraftError
				require.ErrorAs(t, err, &overdraft)
				assert.Equal(t, int64(10000), overdraft.ExpenseAmount)
				assert.Equal(t, int64(6000), overdraft.CurrentTotal)
				assert.Equal(t, int64(5000), overdraft.AttemptedAmount)
				assert.Equal(t, int64(11000), overdraft.ResultingTotal)
			},
		},
		{
			name:   "ExactRemainingAccepted",
			params: reimbursement.RecordParams{ExpenseID: expenseID, Amount: 4000},
			setupMock: func(m mocks) {
				m.repo.EXPECT().BeginIntake(gomock.Any(), expenseID).Return(m.itx, nil)
				m.itx.EXPECT().ExpenseAmount(gomock.Any(), owner).Return(int64(10000), nil)
				m.itx.EXPECT().TotalReimbursed(gomock.Any(), owner).Return(int64(6000), nil)
				m.itx.EXPECT().InsertPayment(gomock.Any(), gomock.Any()).Return(nil)
				m.itx.EXPECT().Commit().Return(nil)
				m.itx.EXPECT().Rollback().Return(nil)

				m.expenses.EXPECT().Get(gomock.Any(), expenseID, owner).Return(e, nil)
				m.repo.EXPECT().ListPayments(gomock.Any(), expenseID, owner).
					Return([]*reimbursement.Payment{
						{ID: uuid.New(), Amount: 6000, ReimbursedAt: time.Now().Add(-time.Hour)},
						{ID: uuid.New(), Amount: 4000, ReimbursedAt: time.Now()},
					}, nil)
				m.expenses.EXPECT().UpdateSummary(gomock.Any(), expenseID, owner, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, s expense.Summary) (*expense.Expense, error) {
						updated := *e
						updated.Reimbursed = s.Reimbursed
						return &updated, nil
					})
			},
			check: func(t *testing.T, got *reimbursement.RecordResult, err error) {
				require.NoError(t, err)
				require.NotNil(t, got.Totals)
				assert.Equal(t, int64(10000), got.Totals.TotalReimbursed)
				assert.Equal(t, int64(0), got.Totals.Remaining)
				assert.True(t, got.Totals.FullyReimbursed)
			},
		},
		{
			name:   "DegradedSuccessWhenRecomputeFails",
			params: reimbursement.RecordParams{ExpenseID: expenseID, Amount: 1000},
			setupMock: func(m mocks) {
				m.repo.EXPECT().BeginIntake(gomock.Any(), expenseID).Return(m.itx, nil)
				m.itx.EXPECT().ExpenseAmount(gomock.Any(), owner).Return(int64(10000), nil)
				m.itx.EXPECT().TotalReimbursed(gomock.Any(), owner).Return(int64(0), nil)
				m.itx.EXPECT().InsertPayment(gomock.Any(), gomock.Any()).Return(nil)
				m.itx.EXPECT().Commit().Return(nil)
				m.itx.EXPECT().Rollback().Return(nil)

				m.expenses.EXPECT().Get(gomock.Any(), expenseID, owner).
					Return(nil, reimbursement.ErrStoreUnavailable)
			},
			check: func(t *testing.T, got *reimbursement.RecordResult, err error) {
				require.NoError(t, err)
				require.NotNil(t, got.Payment)
				assert.Nil(t, got.Expense)
				assert.Nil(t, got.Totals)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			got, err := svc.Record(context.Background(), owner, tt.params)
			tt.check(t, got, err)
		})
	}
}

func TestService_Record_SuppliedTimestamp(t *testing.T) {
	svc, m := newService(t)

	expenseID := uuid.New()
	at := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	m.repo.EXPECT().BeginIntake(gomock.Any(), expenseID).Return(m.itx, nil)
	m.itx.EXPECT().ExpenseAmount(gomock.Any(), owner).Return(int64(10000), nil)
	m.itx.EXPECT().TotalReimbursed(gomock.Any(), owner).Return(int64(0), nil)
	m.itx.EXPECT().InsertPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *reimbursement.Payment) error {
			assert.True(t, p.ReimbursedAt.Equal(at))
			return nil
		})
	m.itx.EXPECT().Commit().Return(nil)
	m.itx.EXPECT().Rollback().Return(nil)

	// Recompute finds the expense gone: degraded success.
	m.expenses.EXPECT().Get(gomock.Any(), expenseID, owner).Return(nil, expense.ErrNotFound)

	got, err := svc.Record(context.Background(), owner, reimbursement.RecordParams{
		ExpenseID:    expenseID,
		Amount:       2500,
		ReimbursedAt: &at,
	})
	require.NoError(t, err)
	assert.NotNil(t, got.Payment)
	assert.Nil(t, got.Totals)
}

func TestService_Retract(t *testing.T) {
	expenseID := uuid.New()
	paymentID := uuid.New()
	e := &expense.Expense{ID: expenseID, UserID: owner, Amount: 10000}

	t.Run("Success", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GetPayment(gomock.Any(), paymentID, owner).
			Return(&reimbursement.Payment{ID: paymentID, ExpenseID: expenseID, UserID: owner, Amount: 4000}, nil)
		m.repo.EXPECT().RetractPayment(gomock.Any(), paymentID, owner).Return(true, nil)

		var captured expense.Summary
		expectRecompute(m, e, []*reimbursement.Payment{
			{ID: uuid.New(), Amount: 6000, ReimbursedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Method: strPtr("bank transfer")},
		}, &captured)

		got, err := svc.Retract(context.Background(), paymentID, owner)
		require.NoError(t, err)
		assert.True(t, got.Payment.Retracted)

		require.NotNil(t, got.Totals)
		assert.Equal(t, int64(6000), got.Totals.TotalReimbursed)
		assert.Equal(t, int64(4000), got.Totals.Remaining)
		assert.False(t, got.Totals.FullyReimbursed)

		// Summary reverts to the remaining payment's metadata.
		require.NotNil(t, captured.Method)
		assert.Equal(t, "bank transfer", *captured.Method)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GetPayment(gomock.Any(), paymentID, owner).
			Return(nil, reimbursement.ErrNotFound)

		got, err := svc.Retract(context.Background(), paymentID, owner)
		assert.ErrorIs(t, err, reimbursement.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("AlreadyRetractedStillRecomputes", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GetPayment(gomock.Any(), paymentID, owner).
			Return(&reimbursement.Payment{ID: paymentID, ExpenseID: expenseID, UserID: owner, Retracted: true}, nil)
		m.repo.EXPECT().RetractPayment(gomock.Any(), paymentID, owner).Return(false, nil)

		expectRecompute(m, e, nil, nil)

		got, err := svc.Retract(context.Background(), paymentID, owner)
		require.NoError(t, err)
		require.NotNil(t, got.Totals)
		assert.Equal(t, int64(0), got.Totals.TotalReimbursed)
	})

	t.Run("ExpenseGoneDuringRecompute", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GetPayment(gomock.Any(), paymentID, owner).
			Return(&reimbursement.Payment{ID: paymentID, ExpenseID: expenseID, UserID: owner}, nil)
		m.repo.EXPECT().RetractPayment(gomock.Any(), paymentID, owner).Return(true, nil)
		m.expenses.EXPECT().Get(gomock.Any(), expenseID, owner).Return(nil, expense.ErrNotFound)

		got, err := svc.Retract(context.Background(), paymentID, owner)
		require.NoError(t, err)
		assert.Nil(t, got.Expense)
		assert.Nil(t, got.Totals)
	})
}

func TestService_Recompute(t *testing.T) {
	expenseID := uuid.New()

	t.Run("ClearsSummaryWhenNothingReimbursed", func(t *testing.T) {
		svc, m := newService(t)
		e := &expense.Expense{ID: expenseID, UserID: owner, Amount: 10000}

		var captured expense.Summary
		expectRecompute(m, e, nil, &captured)

		updated, totals, err := svc.Recompute(context.Background(), expenseID, owner)
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.False(t, captured.Reimbursed)
		assert.Nil(t, captured.ReimbursedAt)
		assert.Nil(t, captured.Method)
		assert.Nil(t, captured.Notes)

		assert.Equal(t, int64(0), totals.TotalReimbursed)
		assert.Equal(t, int64(10000), totals.Remaining)
	})

	t.Run("ZeroAmountExpenseNeverFullyReimbursed", func(t *testing.T) {
		svc, m := newService(t)
		e := &expense.Expense{ID: expenseID, UserID: owner, Amount: 0}

		var captured expense.Summary
		expectRecompute(m, e, nil, &captured)

		_, totals, err := svc.Recompute(context.Background(), expenseID, owner)
		require.NoError(t, err)
		assert.False(t, captured.Reimbursed)
		assert.False(t, totals.FullyReimbursed)
	})

	t.Run("SummaryFollowsLatestPayment", func(t *testing.T) {
		svc, m := newService(t)
		e := &expense.Expense{ID: expenseID, UserID: owner, Amount: 10000}

		older := &reimbursement.Payment{
			ID:           uuid.New(),
			Amount:       3000,
			ReimbursedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Method:       strPtr("check"),
		}
		newer := &reimbursement.Payment{
			ID:           uuid.New(),
			Amount:       2000,
			ReimbursedAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Method:       strPtr("direct deposit"),
			Notes:        strPtr("claim #42"),
		}

		var captured expense.Summary
		expectRecompute(m, e, []*reimbursement.Payment{older, newer}, &captured)

		_, totals, err := svc.Recompute(context.Background(), expenseID, owner)
		require.NoError(t, err)

		assert.Equal(t, int64(5000), totals.TotalReimbursed)
		require.NotNil(t, captured.ReimbursedAt)
		assert.True(t, captured.ReimbursedAt.Equal(newer.ReimbursedAt))
		assert.Equal(t, "direct deposit", *captured.Method)
		assert.Equal(t, "claim #42", *captured.Notes)
	})

	t.Run("TimestampTieBrokenByPaymentID", func(t *testing.T) {
		svc, m := newService(t)
		e := &expense.Expense{ID: expenseID, UserID: owner, Amount: 10000}

		at := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		low := &reimbursement.Payment{
			ID:           uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Amount:       1000,
			ReimbursedAt: at,
			Method:       strPtr("low"),
		}
		high := &reimbursement.Payment{
			ID:           uuid.MustParse("99999999-9999-9999-9999-999999999999"),
			Amount:       1000,
			ReimbursedAt: at,
			Method:       strPtr("high"),
		}

		var captured expense.Summary

		// Input order must not matter: the higher id wins the tie.
		expectRecompute(m, e, []*reimbursement.Payment{high, low}, &captured)

		_, _, err := svc.Recompute(context.Background(), expenseID, owner)
		require.NoError(t, err)
		assert.Equal(t, "high", *captured.Method)
	})

	t.Run("Idempotent", func(t *testing.T) {
		svc, m := newService(t)
		e := &expense.Expense{ID: expenseID, UserID: owner, Amount: 10000}

		payments := []*reimbursement.Payment{
			{ID: uuid.New(), Amount: 6000, ReimbursedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Method: strPtr("check")},
		}

		var first, second expense.Summary
		expectRecompute(m, e, payments, &first)
		expectRecompute(m, e, payments, &second)

		_, _, err := svc.Recompute(context.Background(), expenseID, owner)
		require.NoError(t, err)
		_, _, err = svc.Recompute(context.Background(), expenseID, owner)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("MissingExpenseIsNullResult", func(t *testing.T) {
		svc, m := newService(t)

		m.expenses.EXPECT().Get(gomock.Any(), expenseID, owner).Return(nil, expense.ErrNotFound)

		updated, totals, err := svc.Recompute(context.Background(), expenseID, owner)
		require.NoError(t, err)
		assert.Nil(t, updated)
		assert.Nil(t, totals)
	})
}

// TestService_PartialReimbursementScenario walks the full lifecycle:
// a 100.00 expense takes a 60.00 payment, rejects a 50.00 payment,
// accepts a 40.00 payment reaching fully reimbursed, then reverts when
// the 40.00 payment is retracted.
func TestService_PartialReimbursementScenario(t *testing.T) {
	svc, m := newService(t)

	expenseID := uuid.New()
	e := &expense.Expense{ID: expenseID, UserID: owner, Amount: 10000}

	paymentA := &reimbursement.Payment{
		ID:           uuid.New(),
		ExpenseID:    expenseID,
		UserID:       owner,
		Amount:       6000,
		ReimbursedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Method:       strPtr("payroll"),
	}

	// Step 1: payment A of 60.00.
	atA := paymentA.ReimbursedAt

	m.repo.EXPECT().BeginIntake(gomock.Any(), expenseID).Return(m.itx, nil)
	m.itx.EXPECT().ExpenseAmount(gomock.Any(), owner).Return(int64(10000), nil)
	m.itx.EXPECT().TotalReimbursed(gomock.Any(), owner).Return(int64(0), nil)
	m.itx.EXPECT().InsertPayment(gomock.Any(), gomock.Any()).Return(nil)
	m.itx.EXPECT().Commit().Return(nil)
	m.itx.EXPECT().Rollback().Return(nil)

	var afterA expense.Summary
	expectRecompute(m, e, []*reimbursement.Payment{paymentA}, &afterA)

	got, err := svc.Record(context.Background(), owner, reimbursement.RecordParams{
		ExpenseID:    expenseID,
		Amount:       6000,
		Method:       strPtr("payroll"),
		ReimbursedAt: &atA,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6000), got.Totals.TotalReimbursed)
	assert.False(t, got.Totals.FullyReimbursed)

	// Step 2: payment B of 50.00 is rejected with the computed totals.
	m.repo.EXPECT().BeginIntake(gomock.Any(), expenseID).Return(m.itx, nil)
	m.itx.EXPECT().ExpenseAmount(gomock.Any(), owner).Return(int64(10000), nil)
	m.itx.EXPECT().TotalReimbursed(gomock.Any(), owner).Return(int64(6000), nil)
	m.itx.EXPECT().Rollback().Return(nil)

	_, err = svc.Record(context.Background(), owner, reimbursement.RecordParams{ExpenseID: expenseID, Amount: 5000})

	var overdraft *reimbursement.OverdraftError
	require.ErrorAs(t, err, &overdraft)
	assert.Equal(t, int64(6000), overdraft.CurrentTotal)
	assert.Equal(t, int64(5000), overdraft.AttemptedAmount)
	assert.Equal(t, int64(11000), overdraft.ResultingTotal)

	// Step 3: payment B of 40.00 lands and fully reimburses.
	paymentB := &reimbursement.Payment{
		ID:           uuid.New(),
		ExpenseID:    expenseID,
		UserID:       owner,
		Amount:       4000,
		ReimbursedAt: time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		Method:       strPtr("bank transfer"),
	}
	atB := paymentB.ReimbursedAt

	m.repo.EXPECT().BeginIntake(gomock.Any(), expenseID).Return(m.itx, nil)
	m.itx.EXPECT().ExpenseAmount(gomock.Any(), owner).Return(int64(10000), nil)
	m.itx.EXPECT().TotalReimbursed(gomock.Any(), owner).Return(int64(6000), nil)
	m.itx.EXPECT().InsertPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *reimbursement.Payment) error {
			paymentB.ID = p.ID
			return nil
		})
	m.itx.EXPECT().Commit().Return(nil)
	m.itx.EXPECT().Rollback().Return(nil)

	var afterB expense.Summary
	expectRecompute(m, e, []*reimbursement.Payment{paymentA, paymentB}, &afterB)

	got, err = svc.Record(context.Background(), owner, reimbursement.RecordParams{
		ExpenseID:    expenseID,
		Amount:       4000,
		Method:       strPtr("bank transfer"),
		ReimbursedAt: &atB,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), got.Totals.TotalReimbursed)
	assert.True(t, got.Totals.FullyReimbursed)
	require.NotNil(t, afterB.ReimbursedAt)
	assert.True(t, afterB.ReimbursedAt.Equal(paymentB.ReimbursedAt))
	assert.Equal(t, "bank transfer", *afterB.Method)

	// Step 4: retracting payment B reverts the summary to payment A.
	m.repo.EXPECT().GetPayment(gomock.Any(), paymentB.ID, owner).Return(paymentB, nil)
	m.repo.EXPECT().RetractPayment(gomock.Any(), paymentB.ID, owner).Return(true, nil)

	var afterRetract expense.Summary
	expectRecompute(m, e, []*reimbursement.Payment{paymentA}, &afterRetract)

	retracted, err := svc.Retract(context.Background(), paymentB.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), retracted.Totals.TotalReimbursed)
	assert.False(t, retracted.Totals.FullyReimbursed)
	require.NotNil(t, afterRetract.ReimbursedAt)
	assert.True(t, afterRetract.ReimbursedAt.Equal(paymentA.ReimbursedAt))
	assert.Equal(t, "payroll", *afterRetract.Method)
}

func TestService_ListForExpense(t *testing.T) {
	svc, m := newService(t)

	expenseID := uuid.New()

	m.repo.EXPECT().
		ListPayments(gomock.Any(), expenseID, owner).
		Return([]*reimbursement.Payment{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	got, err := svc.ListForExpense(context.Background(), expenseID, owner)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
