package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/openclaims/remit/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectExpenseColumns = `
	id, user_id, amount, date_paid, payment_method, description, invoice_image_url,
	category_id, is_archived, is_reimbursed, reimbursed_at, reimbursement_method,
	reimbursement_notes, created_at, updated_at
`

// scanExpense reads an expense row. Column order must match selectExpenseColumns.
func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	if err := s.Scan(
		&e.ID, &e.UserID, &e.Amount, &e.DatePaid, &e.PaymentMethod, &e.Description,
		&e.InvoiceImageURL, &e.CategoryID, &e.Archived, &e.Reimbursed, &e.ReimbursedAt,
		&e.ReimbursementMethod, &e.ReimbursementNotes, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (id, user_id, amount, date_paid, payment_method, description, invoice_image_url, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.ID,
		e.UserID,
		e.Amount,
		e.DatePaid,
		e.PaymentMethod,
		e.Description,
		e.InvoiceImageURL,
		e.CategoryID,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) GetOwnedExpense(ctx context.Context, id uuid.UUID, ownerID string) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses
		WHERE id = $1 AND user_id = $2`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context, ownerID string) ([]*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses
		WHERE user_id = $1 AND is_archived = FALSE
		ORDER BY date_paid DESC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	return collectExpenses(rows)
}

func (s *Store) ListEligibleExpenses(ctx context.Context, ownerID string, window expense.DateRange) ([]*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses
		WHERE user_id = $1 AND is_archived = FALSE`

	args := []any{ownerID}
	argIdx := 2

	if window.From != nil {
		query += fmt.Sprintf(" AND date_paid >= $%d", argIdx)

		args = append(args, *window.From)
		argIdx++
	}

	if window.To != nil {
		query += fmt.Sprintf(" AND date_paid <= $%d", argIdx)

		args = append(args, *window.To)
		argIdx++
	}

	query += " ORDER BY date_paid ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing eligible expenses: %w", err)
	}
	defer rows.Close()

	return collectExpenses(rows)
}

func collectExpenses(rows *sql.Rows) ([]*expense.Expense, error) {
	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return expenses, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		UPDATE expenses
		SET amount = $1, date_paid = $2, payment_method = $3, description = $4,
		    invoice_image_url = $5, category_id = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8 AND is_archived = FALSE
	`

	res, err := s.db.ExecContext(ctx, query,
		e.Amount,
		e.DatePaid,
		e.PaymentMethod,
		e.Description,
		e.InvoiceImageURL,
		e.CategoryID,
		e.ID,
		e.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return expense.ErrNotFound
	}

	return nil
}

// UpdateSummary writes the four derived reimbursement fields in a single
// update keyed by both expense id and owner id.
func (s *Store) UpdateSummary(ctx context.Context, id uuid.UUID, ownerID string, summary expense.Summary) (*expense.Expense, error) {
	query := `
		UPDATE expenses
		SET is_reimbursed = $3,
		    reimbursed_at = $4,
		    reimbursement_method = $5,
		    reimbursement_notes = $6,
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + selectExpenseColumns

	e, err := scanExpense(s.db.QueryRowContext(ctx, query,
		id,
		ownerID,
		summary.Reimbursed,
		summary.ReimbursedAt,
		summary.Method,
		summary.Notes,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("updating expense summary: %w", err)
	}

	return e, nil
}

func (s *Store) ArchiveExpense(ctx context.Context, id uuid.UUID, ownerID string) error {
	query := `
		UPDATE expenses
		SET is_archived = TRUE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND is_archived = FALSE
	`

	res, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("archiving expense: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return expense.ErrNotFound
	}

	return nil
}
