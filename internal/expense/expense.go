package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("expense not found")

// Expense is a reimbursable spending record owned by a user.
type Expense struct {
	ID              uuid.UUID
	UserID          string
	Amount          int64 // Amount in cents
	DatePaid        time.Time
	PaymentMethod   string
	Description     string
	InvoiceImageURL *string
	CategoryID      *uuid.UUID
	Archived        bool

	// Derived reimbursement summary. These fields are written only by
	// the reimbursement engine's recomputation; they are a pure
	// function of the expense's non-retracted payments.
	Reimbursed          bool
	ReimbursedAt        *time.Time
	ReimbursementMethod *string
	ReimbursementNotes  *string

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Summary holds the derived reimbursement fields persisted on an expense.
type Summary struct {
	Reimbursed   bool
	ReimbursedAt *time.Time
	Method       *string
	Notes        *string
}

// DateRange is an optional inclusive [From, To] window. A nil bound
// means unbounded on that side.
type DateRange struct {
	From *time.Time
	To   *time.Time
}
