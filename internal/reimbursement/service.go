package reimbursement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openclaims/remit/internal/expense"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=reimbursement

// Repository is the payment ledger store.
type Repository interface {
	// BeginIntake opens a transaction that serializes overdraft checks
	// and inserts for a single expense.
	BeginIntake(ctx context.Context, expenseID uuid.UUID) (IntakeTx, error)

	// ListPayments returns the non-retracted payments for an expense,
	// ordered by effective timestamp ascending, then id ascending.
	ListPayments(ctx context.Context, expenseID uuid.UUID, ownerID string) ([]*Payment, error)

	GetPayment(ctx context.Context, id uuid.UUID, ownerID string) (*Payment, error)

	// RetractPayment flags the payment as retracted. Returns false when
	// the payment was already retracted.
	RetractPayment(ctx context.Context, id uuid.UUID, ownerID string) (bool, error)

	// SumByExpense returns the non-retracted payment total per expense.
	// Expenses with no payments are absent from the result.
	SumByExpense(ctx context.Context, ownerID string, expenseIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

// IntakeTx scopes the check-then-insert sequence of a payment intake.
// The implementation must hold a per-expense exclusive lock until Commit
// or Rollback, so that two concurrent intakes on the same expense cannot
// both pass the overdraft check against a stale total.
type IntakeTx interface {
	// ExpenseAmount returns the expense's amount in cents, or
	// ErrExpenseNotFound when it does not exist or is not owned.
	ExpenseAmount(ctx context.Context, ownerID string) (int64, error)

	// TotalReimbursed returns the current non-retracted payment total.
	TotalReimbursed(ctx context.Context, ownerID string) (int64, error)

	InsertPayment(ctx context.Context, p *Payment) error

	Commit() error
	Rollback() error
}

// ExpenseStore is the expense record collaborator. Satisfied by
// *expense.Service.
type ExpenseStore interface {
	Get(ctx context.Context, id uuid.UUID, ownerID string) (*expense.Expense, error)
	UpdateSummary(ctx context.Context, id uuid.UUID, ownerID string, summary expense.Summary) (*expense.Expense, error)
	ListEligible(ctx context.Context, ownerID string, window expense.DateRange) ([]*expense.Expense, error)
}

// CategoryResolver maps category ids to display names. Satisfied by
// *category.Service.
type CategoryResolver interface {
	ResolveNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type Service struct {
	repo       Repository
	expenses   ExpenseStore
	categories CategoryResolver
}

func NewService(repo Repository, expenses ExpenseStore, categories CategoryResolver) *Service {
	return &Service{repo: repo, expenses: expenses, categories: categories}
}

type RecordParams struct {
	ExpenseID    uuid.UUID
	Amount       int64
	Method       *string
	Notes        *string
	ReimbursedAt *time.Time
}

// RecordResult is the outcome of a successful payment intake. Expense
// and Totals are nil on degraded success: the payment was durably
// inserted but the summary could not be recomputed (the expense may
// have been archived concurrently, or the store failed). The next
// mutating call on the expense repairs the summary.
type RecordResult struct {
	Payment *Payment
	Expense *expense.Expense
	Totals  *Totals
}

// Record validates and inserts a payment against an expense, enforcing
// that the non-retracted total never exceeds the expense amount, then
// synchronously recomputes the expense summary.
//
// The overdraft check and the insert run inside a single transaction
// holding a per-expense lock, so concurrent intakes on the same expense
// are serialized and cannot jointly overdraw it.
func (s *Service) Record(ctx context.Context, ownerID string, params RecordParams) (*RecordResult, error) {
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	itx, err := s.repo.BeginIntake(ctx, params.ExpenseID)
	if err != nil {
		return nil, fmt.Errorf("begin intake: %w", err)
	}
	defer itx.Rollback()

	expenseAmount, err := itx.ExpenseAmount(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	currentTotal, err := itx.TotalReimbursed(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("summing payments: %w", err)
	}

	if currentTotal+params.Amount > expenseAmount {
		return nil, &OverdraftError{
			ExpenseAmount:   expenseAmount,
			CurrentTotal:    currentTotal,
			AttemptedAmount: params.Amount,
			ResultingTotal:  currentTotal + params.Amount,
		}
	}

	effectiveAt := time.Now().UTC()
	if params.ReimbursedAt != nil {
		effectiveAt = *params.ReimbursedAt
	}

	p := &Payment{
		ID:           uuid.New(),
		ExpenseID:    params.ExpenseID,
		UserID:       ownerID,
		Amount:       params.Amount,
		ReimbursedAt: effectiveAt,
		Method:       params.Method,
		Notes:        params.Notes,
	}
	if err := itx.InsertPayment(ctx, p); err != nil {
		return nil, fmt.Errorf("inserting payment: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit intake: %w", err)
	}

	// The insert is committed and durable. A failed recomputation is a
	// degraded success, never a rollback; it is repaired by the next
	// recomputation trigger on this expense.
	updated, totals, err := s.Recompute(ctx, params.ExpenseID, ownerID)
	if err != nil {
		slog.Warn("summary recomputation failed after payment insert",
			"expense_id", params.ExpenseID, "payment_id", p.ID, "error", err)

		return &RecordResult{Payment: p}, nil
	}

	return &RecordResult{Payment: p, Expense: updated, Totals: totals}, nil
}

// ListForExpense returns the non-retracted payments for an expense,
// earliest first.
func (s *Service) ListForExpense(ctx context.Context, expenseID uuid.UUID, ownerID string) ([]*Payment, error) {
	return s.repo.ListPayments(ctx, expenseID, ownerID)
}

// RetractResult is the outcome of a payment retraction. Expense and
// Totals are nil when the owning expense could not be found during
// recomputation.
type RetractResult struct {
	Payment *Payment
	Expense *expense.Expense
	Totals  *Totals
}

// Retract flags a payment as retracted and recomputes the owning
// expense's summary. Retracting an already-retracted payment leaves the
// ledger untouched but still triggers recomputation.
func (s *Service) Retract(ctx context.Context, id uuid.UUID, ownerID string) (*RetractResult, error) {
	p, err := s.repo.GetPayment(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	changed, err := s.repo.RetractPayment(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("retracting payment: %w", err)
	}

	if changed {
		p.Retracted = true
	}

	updated, totals, err := s.Recompute(ctx, p.ExpenseID, ownerID)
	if err != nil {
		slog.Warn("summary recomputation failed after payment retraction",
			"expense_id", p.ExpenseID, "payment_id", p.ID, "error", err)

		return &RetractResult{Payment: p}, nil
	}

	return &RetractResult{Payment: p, Expense: updated, Totals: totals}, nil
}

// Recompute derives the reimbursement summary from the non-retracted
// payments and persists it on the expense in a single update. It is
// idempotent: with no intervening ledger change, a second call writes
// the same state.
//
// A missing expense is a null result, not an error: the expense may
// have been removed or archived concurrently, and the caller treats
// the summary as unavailable.
func (s *Service) Recompute(ctx context.Context, expenseID uuid.UUID, ownerID string) (*expense.Expense, *Totals, error) {
	e, err := s.expenses.Get(ctx, expenseID, ownerID)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			return nil, nil, nil
		}

		return nil, nil, fmt.Errorf("getting expense: %w", err)
	}

	payments, err := s.repo.ListPayments(ctx, expenseID, ownerID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing payments: %w", err)
	}

	summary, total := deriveSummary(e.Amount, payments)

	updated, err := s.expenses.UpdateSummary(ctx, expenseID, ownerID, summary)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			return nil, nil, nil
		}

		return nil, nil, fmt.Errorf("updating summary: %w", err)
	}

	return updated, &Totals{
		ExpenseAmount:   e.Amount,
		TotalReimbursed: total,
		Remaining:       e.Amount - total,
		FullyReimbursed: updated.Reimbursed,
	}, nil
}

// deriveSummary computes the persisted summary fields from the
// non-retracted payments of an expense.
//
// The expense is fully reimbursed when the total reaches its amount and
// the amount is positive; a zero-amount expense is never considered
// reimbursed. The summary metadata mirrors the most recent payment,
// with ties on the effective timestamp broken by the larger payment id,
// and is cleared when nothing has been reimbursed.
func deriveSummary(expenseAmount int64, payments []*Payment) (expense.Summary, int64) {
	var total int64
	for _, p := range payments {
		total += p.Amount
	}

	summary := expense.Summary{
		Reimbursed: total >= expenseAmount && expenseAmount > 0,
	}

	if total > 0 {
		if last := latestPayment(payments); last != nil {
			at := last.ReimbursedAt
			summary.ReimbursedAt = &at
			summary.Method = last.Method
			summary.Notes = last.Notes
		}
	}

	return summary, total
}

// latestPayment picks the payment with the latest effective timestamp,
// breaking ties by id so the choice is stable regardless of input order.
func latestPayment(payments []*Payment) *Payment {
	var last *Payment

	for _, p := range payments {
		switch {
		case last == nil:
			last = p
		case p.ReimbursedAt.After(last.ReimbursedAt):
			last = p
		case p.ReimbursedAt.Equal(last.ReimbursedAt) && p.ID.String() > last.ID.String():
			last = p
		}
	}

	return last
}
