package expense

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetOwnedExpense(ctx context.Context, id uuid.UUID, ownerID string) (*Expense, error)
	ListExpenses(ctx context.Context, ownerID string) ([]*Expense, error)
	ListEligibleExpenses(ctx context.Context, ownerID string, window DateRange) ([]*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	UpdateSummary(ctx context.Context, id uuid.UUID, ownerID string, summary Summary) (*Expense, error)
	ArchiveExpense(ctx context.Context, id uuid.UUID, ownerID string) error
}

var ErrMissingField = errors.New("amount, date_paid and payment_method are required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Amount          int64
	DatePaid        time.Time
	PaymentMethod   string
	Description     string
	InvoiceImageURL *string
	CategoryID      *uuid.UUID
}

func (s *Service) Create(ctx context.Context, ownerID string, params CreateParams) (*Expense, error) {
	if params.Amount <= 0 || params.DatePaid.IsZero() || params.PaymentMethod == "" {
		return nil, ErrMissingField
	}

	e := &Expense{
		ID:              uuid.New(),
		UserID:          ownerID,
		Amount:          params.Amount,
		DatePaid:        params.DatePaid,
		PaymentMethod:   params.PaymentMethod,
		Description:     params.Description,
		InvoiceImageURL: params.InvoiceImageURL,
		CategoryID:      params.CategoryID,
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Get returns the expense only if it exists and belongs to the owner.
func (s *Service) Get(ctx context.Context, id uuid.UUID, ownerID string) (*Expense, error) {
	return s.repo.GetOwnedExpense(ctx, id, ownerID)
}

// List returns all non-archived expenses for the owner, newest first.
func (s *Service) List(ctx context.Context, ownerID string) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, ownerID)
}

// ListEligible returns non-archived expenses whose payment date falls
// inside the window. Used by the rollup aggregator.
func (s *Service) ListEligible(ctx context.Context, ownerID string, window DateRange) ([]*Expense, error) {
	return s.repo.ListEligibleExpenses(ctx, ownerID, window)
}

func (s *Service) Update(ctx context.Context, e *Expense) error {
	return s.repo.UpdateExpense(ctx, e)
}

// UpdateSummary persists the derived reimbursement fields in a single
// update keyed by expense id and owner. Returns ErrNotFound when the
// expense no longer exists or changed hands.
func (s *Service) UpdateSummary(ctx context.Context, id uuid.UUID, ownerID string, summary Summary) (*Expense, error) {
	return s.repo.UpdateSummary(ctx, id, ownerID, summary)
}

// Archive soft-deletes the expense. Archived expenses are excluded from
// listings and rollups but their ledger rows are kept.
func (s *Service) Archive(ctx context.Context, id uuid.UUID, ownerID string) error {
	return s.repo.ArchiveExpense(ctx, id, ownerID)
}
