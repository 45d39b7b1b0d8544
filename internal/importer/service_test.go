package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaims/remit/internal/importer"
	"github.com/openclaims/remit/internal/reimbursement"
)

type recorderFunc func(ctx context.Context, ownerID string, params reimbursement.RecordParams) (*reimbursement.RecordResult, error)

func (f recorderFunc) Record(ctx context.Context, ownerID string, params reimbursement.RecordParams) (*reimbursement.RecordResult, error) {
	return f(ctx, ownerID, params)
}

func TestService_Import(t *testing.T) {
	expenseID := uuid.New()

	const input = `Date,Amount,Method
2024-03-01,60.00,check
2024-03-05,50.00,check
2024-03-10,40.00,check
`

	var recorded []reimbursement.RecordParams

	// Expense worth 100.00: the 50.00 row overdrafts, the rest land.
	recorder := recorderFunc(func(_ context.Context, ownerID string, params reimbursement.RecordParams) (*reimbursement.RecordResult, error) {
		assert.Equal(t, "user-1", ownerID)
		assert.Equal(t, expenseID, params.ExpenseID)

		var total int64
		for _, p := range recorded {
			total += p.Amount
		}

		if total+params.Amount > 10000 {
			return nil, &reimbursement.OverdraftError{
				ExpenseAmount:   10000,
				CurrentTotal:    total,
				AttemptedAmount: params.Amount,
				ResultingTotal:  total + params.Amount,
			}
		}

		recorded = append(recorded, params)

		return &reimbursement.RecordResult{
			Payment: &reimbursement.Payment{ID: uuid.New(), ExpenseID: expenseID, Amount: params.Amount},
		}, nil
	})

	report, err := importer.NewService(recorder).Import(context.Background(), "user-1", expenseID, strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, report.Recorded, 2)
	assert.Equal(t, int64(6000), report.Recorded[0].Amount)
	assert.Equal(t, int64(4000), report.Recorded[1].Amount)

	require.Len(t, report.Rejected, 1)
	assert.Equal(t, 3, report.Rejected[0].Line)
	assert.Equal(t, int64(5000), report.Rejected[0].Amount)
	assert.Contains(t, report.Rejected[0].Reason, "exceed")

	require.NotNil(t, recorded[0].ReimbursedAt)
	assert.Equal(t, "2024-03-01", recorded[0].ReimbursedAt.Format("2006-01-02"))
}

func TestService_Import_StoreFailureAborts(t *testing.T) {
	recorder := recorderFunc(func(context.Context, string, reimbursement.RecordParams) (*reimbursement.RecordResult, error) {
		return nil, reimbursement.ErrStoreUnavailable
	})

	_, err := importer.NewService(recorder).Import(context.Background(), "user-1", uuid.New(),
		strings.NewReader("Date,Amount\n2024-03-01,45.00\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, reimbursement.ErrStoreUnavailable)
}

func TestService_Import_ParseErrorSurfaced(t *testing.T) {
	recorder := recorderFunc(func(context.Context, string, reimbursement.RecordParams) (*reimbursement.RecordResult, error) {
		t.Fatal("recorder should not be called")
		return nil, nil
	})

	_, err := importer.NewService(recorder).Import(context.Background(), "user-1", uuid.New(),
		strings.NewReader("nothing,to,see\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}
