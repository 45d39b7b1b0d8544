package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/google/uuid"

	"github.com/openclaims/remit/internal/reimbursement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// wrapErr classifies timeouts and dead connections as store
// unavailability so callers can distinguish them from data errors.
func wrapErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%s: %w", op, reimbursement.ErrStoreUnavailable)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectPaymentColumns = `
	id, expense_id, user_id, amount, reimbursed_at, method, notes, is_retracted, created_at
`

func scanPayment(s scanner) (*reimbursement.Payment, error) {
	var p reimbursement.Payment

	if err := s.Scan(
		&p.ID, &p.ExpenseID, &p.UserID, &p.Amount, &p.ReimbursedAt,
		&p.Method, &p.Notes, &p.Retracted, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

// intakeLockKey derives a stable advisory-lock key from the expense id.
func intakeLockKey(expenseID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(expenseID[:])

	return int64(h.Sum64())
}

type intakeTx struct {
	tx        *sql.Tx
	expenseID uuid.UUID
}

// BeginIntake opens a transaction holding a per-expense advisory lock.
// The lock is released on Commit or Rollback, so overdraft checks and
// inserts for the same expense never interleave.
func (s *Store) BeginIntake(ctx context.Context, expenseID uuid.UUID) (reimbursement.IntakeTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr("beginning intake tx", err)
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", intakeLockKey(expenseID)); err != nil {
		tx.Rollback()
		return nil, wrapErr("acquiring intake lock", err)
	}

	return &intakeTx{tx: tx, expenseID: expenseID}, nil
}

func (itx *intakeTx) Commit() error   { return itx.tx.Commit() }
func (itx *intakeTx) Rollback() error { return itx.tx.Rollback() }

func (itx *intakeTx) ExpenseAmount(ctx context.Context, ownerID string) (int64, error) {
	query := `SELECT amount FROM expenses WHERE id = $1 AND user_id = $2`

	var amount int64

	err := itx.tx.QueryRowContext(ctx, query, itx.expenseID, ownerID).Scan(&amount)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, reimbursement.ErrExpenseNotFound
		}

		return 0, wrapErr("getting expense amount", err)
	}

	return amount, nil
}

func (itx *intakeTx) TotalReimbursed(ctx context.Context, ownerID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expense_reimbursements
		WHERE expense_id = $1 AND user_id = $2 AND is_retracted = FALSE
	`

	var total int64
	if err := itx.tx.QueryRowContext(ctx, query, itx.expenseID, ownerID).Scan(&total); err != nil {
		return 0, wrapErr("summing payments", err)
	}

	return total, nil
}

func (itx *intakeTx) InsertPayment(ctx context.Context, p *reimbursement.Payment) error {
	query := `
		INSERT INTO expense_reimbursements (id, expense_id, user_id, amount, reimbursed_at, method, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`

	err := itx.tx.QueryRowContext(ctx, query,
		p.ID,
		p.ExpenseID,
		p.UserID,
		p.Amount,
		p.ReimbursedAt,
		p.Method,
		p.Notes,
	).Scan(&p.CreatedAt)
	if err != nil {
		return wrapErr("inserting payment", err)
	}

	return nil
}

func (s *Store) ListPayments(ctx context.Context, expenseID uuid.UUID, ownerID string) ([]*reimbursement.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + `
		FROM expense_reimbursements
		WHERE expense_id = $1 AND user_id = $2 AND is_retracted = FALSE
		ORDER BY reimbursed_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, expenseID, ownerID)
	if err != nil {
		return nil, wrapErr("listing payments", err)
	}
	defer rows.Close()

	var payments []*reimbursement.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterating payment rows", err)
	}

	return payments, nil
}

// GetPayment fetches a payment by id regardless of retraction state.
func (s *Store) GetPayment(ctx context.Context, id uuid.UUID, ownerID string) (*reimbursement.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + `
		FROM expense_reimbursements
		WHERE id = $1 AND user_id = $2`

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, reimbursement.ErrNotFound
		}

		return nil, wrapErr("getting payment", err)
	}

	return p, nil
}

// RetractPayment flips the retracted flag. Already-retracted rows match
// zero rows, which reports changed = false without an error.
func (s *Store) RetractPayment(ctx context.Context, id uuid.UUID, ownerID string) (bool, error) {
	query := `
		UPDATE expense_reimbursements
		SET is_retracted = TRUE
		WHERE id = $1 AND user_id = $2 AND is_retracted = FALSE
	`

	res, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return false, wrapErr("retracting payment", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}

	return n > 0, nil
}

func (s *Store) SumByExpense(ctx context.Context, ownerID string, expenseIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if len(expenseIDs) == 0 {
		return map[uuid.UUID]int64{}, nil
	}

	placeholders := make([]string, len(expenseIDs))
	args := make([]any, 0, len(expenseIDs)+1)
	args = append(args, ownerID)

	for i, id := range expenseIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, id)
	}

	query := fmt.Sprintf(`
		SELECT expense_id, SUM(amount)
		FROM expense_reimbursements
		WHERE user_id = $1 AND is_retracted = FALSE AND expense_id IN (%s)
		GROUP BY expense_id`,
		strings.Join(placeholders, ", "),
	)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("summing payments per expense", err)
	}
	defer rows.Close()

	sums := make(map[uuid.UUID]int64, len(expenseIDs))

	for rows.Next() {
		var (
			expenseID uuid.UUID
			total     int64
		)

		if err := rows.Scan(&expenseID, &total); err != nil {
			return nil, fmt.Errorf("scanning payment sum: %w", err)
		}

		sums[expenseID] = total
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterating payment sums", err)
	}

	return sums, nil
}
