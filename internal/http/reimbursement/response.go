package reimbursement

import (
	"time"

	"github.com/google/uuid"

	"github.com/openclaims/remit/internal/expense"
	"github.com/openclaims/remit/internal/reimbursement"
)

type paymentResponse struct {
	ID           uuid.UUID `json:"id"`
	ExpenseID    uuid.UUID `json:"expense_id"`
	Amount       int64     `json:"amount"`
	ReimbursedAt time.Time `json:"reimbursed_at"`
	Method       *string   `json:"method,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type totalsResponse struct {
	ExpenseAmount   int64 `json:"expense_amount"`
	TotalReimbursed int64 `json:"total_reimbursed"`
	Remaining       int64 `json:"remaining"`
	FullyReimbursed bool  `json:"fully_reimbursed"`
}

type expenseSummaryResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Amount              int64      `json:"amount"`
	Reimbursed          bool       `json:"reimbursed"`
	ReimbursedAt        *time.Time `json:"reimbursed_at,omitempty"`
	ReimbursementMethod *string    `json:"reimbursement_method,omitempty"`
	ReimbursementNotes  *string    `json:"reimbursement_notes,omitempty"`
}

// recordResponse is returned for both intake and retraction. Expense
// and totals are null when the summary recomputation could not run;
// the payment change itself is already durable.
type recordResponse struct {
	Payment paymentResponse         `json:"payment"`
	Expense *expenseSummaryResponse `json:"expense"`
	Totals  *totalsResponse         `json:"totals"`
}

type overdraftResponse struct {
	Error           string `json:"error"`
	ExpenseAmount   int64  `json:"expense_amount"`
	CurrentTotal    int64  `json:"current_total"`
	AttemptedAmount int64  `json:"attempted_amount"`
	ResultingTotal  int64  `json:"resulting_total"`
}

type categoryRollupResponse struct {
	CategoryID      *uuid.UUID `json:"category_id"`
	CategoryName    string     `json:"category_name"`
	TotalEligible   int64      `json:"total_eligible"`
	TotalReimbursed int64      `json:"total_reimbursed"`
	Remaining       int64      `json:"remaining"`
}

type rollupResponse struct {
	TotalEligible   int64                    `json:"total_eligible"`
	TotalReimbursed int64                    `json:"total_reimbursed"`
	Remaining       int64                    `json:"remaining"`
	ByCategory      []categoryRollupResponse `json:"by_category"`
}

func toPaymentResponse(p *reimbursement.Payment) paymentResponse {
	return paymentResponse{
		ID:           p.ID,
		ExpenseID:    p.ExpenseID,
		Amount:       p.Amount,
		ReimbursedAt: p.ReimbursedAt,
		Method:       p.Method,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
	}
}

func toPaymentList(payments []*reimbursement.Payment) []paymentResponse {
	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = toPaymentResponse(p)
	}

	return resp
}

func toExpenseSummary(e *expense.Expense) *expenseSummaryResponse {
	if e == nil {
		return nil
	}

	return &expenseSummaryResponse{
		ID:                  e.ID,
		Amount:              e.Amount,
		Reimbursed:          e.Reimbursed,
		ReimbursedAt:        e.ReimbursedAt,
		ReimbursementMethod: e.ReimbursementMethod,
		ReimbursementNotes:  e.ReimbursementNotes,
	}
}

func toTotals(t *reimbursement.Totals) *totalsResponse {
	if t == nil {
		return nil
	}

	return &totalsResponse{
		ExpenseAmount:   t.ExpenseAmount,
		TotalReimbursed: t.TotalReimbursed,
		Remaining:       t.Remaining,
		FullyReimbursed: t.FullyReimbursed,
	}
}

func toRollupResponse(r *reimbursement.Rollup) rollupResponse {
	byCategory := make([]categoryRollupResponse, len(r.ByCategory))
	for i, c := range r.ByCategory {
		byCategory[i] = categoryRollupResponse{
			CategoryID:      c.CategoryID,
			CategoryName:    c.CategoryName,
			TotalEligible:   c.TotalEligible,
			TotalReimbursed: c.TotalReimbursed,
			Remaining:       c.Remaining,
		}
	}

	return rollupResponse{
		TotalEligible:   r.TotalEligible,
		TotalReimbursed: r.TotalReimbursed,
		Remaining:       r.Remaining,
		ByCategory:      byCategory,
	}
}
