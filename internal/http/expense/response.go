package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/openclaims/remit/internal/expense"
)

type expenseResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Amount              int64      `json:"amount"`
	DatePaid            time.Time  `json:"date_paid"`
	PaymentMethod       string     `json:"payment_method"`
	Description         string     `json:"description,omitempty"`
	InvoiceImageURL     *string    `json:"invoice_image_url,omitempty"`
	CategoryID          *uuid.UUID `json:"category_id,omitempty"`
	Reimbursed          bool       `json:"reimbursed"`
	ReimbursedAt        *time.Time `json:"reimbursed_at,omitempty"`
	ReimbursementMethod *string    `json:"reimbursement_method,omitempty"`
	ReimbursementNotes  *string    `json:"reimbursement_notes,omitempty"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:                  e.ID,
		Amount:              e.Amount,
		DatePaid:            e.DatePaid,
		PaymentMethod:       e.PaymentMethod,
		Description:         e.Description,
		InvoiceImageURL:     e.InvoiceImageURL,
		CategoryID:          e.CategoryID,
		Reimbursed:          e.Reimbursed,
		ReimbursedAt:        e.ReimbursedAt,
		ReimbursementMethod: e.ReimbursementMethod,
		ReimbursementNotes:  e.ReimbursementNotes,
		CreatedAt:           &e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func toResponseList(expenses []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
	}

	return resp
}
