// Package reimbursement tracks partial reimbursement payments recorded
// against expenses. It owns the payment ledger, the derived summary
// fields on each expense, and the cross-expense category rollup.
package reimbursement

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means the payment does not exist or belongs to
	// another user.
	ErrNotFound = errors.New("reimbursement not found or not authorized")

	// ErrExpenseNotFound means the target expense does not exist or
	// belongs to another user.
	ErrExpenseNotFound = errors.New("expense not found or not authorized")

	// ErrInvalidAmount rejects non-positive payment amounts.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrStoreUnavailable wraps store timeouts and connection failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// OverdraftError is returned when a payment would push the non-retracted
// total above the expense amount. It carries the computed totals so the
// caller can report what would have happened. No mutation occurs.
type OverdraftError struct {
	ExpenseAmount   int64
	CurrentTotal    int64
	AttemptedAmount int64
	ResultingTotal  int64
}

func (e *OverdraftError) Error() string {
	return fmt.Sprintf("reimbursement amount exceeds original expense amount: %d + %d > %d",
		e.CurrentTotal, e.AttemptedAmount, e.ExpenseAmount)
}

// Payment is a single reimbursement recorded against an expense. Rows
// are append-only: after creation only the Retracted flag may change,
// and retracted rows are excluded from every sum but never deleted.
type Payment struct {
	ID           uuid.UUID
	ExpenseID    uuid.UUID
	UserID       string
	Amount       int64 // Amount in cents
	ReimbursedAt time.Time
	Method       *string
	Notes        *string
	Retracted    bool
	CreatedAt    time.Time
}

// Totals is the reimbursement breakdown for a single expense.
type Totals struct {
	ExpenseAmount   int64
	TotalReimbursed int64
	Remaining       int64
	FullyReimbursed bool
}
