package expense_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/openclaims/remit/internal/expense"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    expense.CreateParams
		setupMock func(m *expense.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: expense.CreateParams{
				Amount:        12500,
				DatePaid:      time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
				PaymentMethod: "card",
				Description:   "Dental cleaning",
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *expense.Expense) error {
						e.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "MissingAmount",
			params: expense.CreateParams{
				DatePaid:      time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
				PaymentMethod: "card",
			},
			wantErr: expense.ErrMissingField,
		},
		{
			name: "MissingPaymentMethod",
			params: expense.CreateParams{
				Amount:   12500,
				DatePaid: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			},
			wantErr: expense.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := expense.NewService(repo)
			got, err := svc.Create(context.Background(), "user-1", tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, "user-1", got.UserID)
			assert.Equal(t, tt.params.Amount, got.Amount)
		})
	}
}

func TestService_Archive_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().
		ArchiveExpense(gomock.Any(), id, "user-1").
		Return(expense.ErrNotFound)

	svc := expense.NewService(repo)
	err := svc.Archive(context.Background(), id, "user-1")
	assert.ErrorIs(t, err, expense.ErrNotFound)
}

func TestService_ListEligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	window := expense.DateRange{From: &from}

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().
		ListEligibleExpenses(gomock.Any(), "user-1", window).
		Return([]*expense.Expense{{ID: uuid.New()}}, nil)

	svc := expense.NewService(repo)
	got, err := svc.ListEligible(context.Background(), "user-1", window)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_ListEligible_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().
		ListEligibleExpenses(gomock.Any(), "user-1", expense.DateRange{}).
		Return(nil, errors.New("db error"))

	svc := expense.NewService(repo)
	_, err := svc.ListEligible(context.Background(), "user-1", expense.DateRange{})
	assert.Error(t, err)
}
