package reimbursement

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openclaims/remit/internal/auth"
	"github.com/openclaims/remit/internal/expense"
	"github.com/openclaims/remit/internal/reimbursement"
)

type Handler struct {
	svc *reimbursement.Service
}

func NewHandler(svc *reimbursement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.record)
	r.Get("/summary/overall", h.overallRollup)
	r.Get("/{expenseID}", h.listForExpense)
	r.Delete("/{id}", h.retract)
}

type recordRequest struct {
	ExpenseID    uuid.UUID  `json:"expense_id"`
	Amount       int64      `json:"amount"`
	Method       *string    `json:"method,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	ReimbursedAt *time.Time `json:"reimbursed_at,omitempty"`
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.ExpenseID == uuid.Nil {
		http.Error(w, "expense_id is required", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Record(r.Context(), auth.OwnerID(r.Context()), reimbursement.RecordParams{
		ExpenseID:    req.ExpenseID,
		Amount:       req.Amount,
		Method:       req.Method,
		Notes:        req.Notes,
		ReimbursedAt: req.ReimbursedAt,
	})
	if err != nil {
		h.writeRecordError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, recordResponse{
		Payment: toPaymentResponse(result.Payment),
		Expense: toExpenseSummary(result.Expense),
		Totals:  toTotals(result.Totals),
	})
}

func (h *Handler) writeRecordError(w http.ResponseWriter, err error) {
	var overdraft *reimbursement.OverdraftError
	if errors.As(err, &overdraft) {
		writeJSON(w, http.StatusBadRequest, overdraftResponse{
			Error:           overdraft.Error(),
			ExpenseAmount:   overdraft.ExpenseAmount,
			CurrentTotal:    overdraft.CurrentTotal,
			AttemptedAmount: overdraft.AttemptedAmount,
			ResultingTotal:  overdraft.ResultingTotal,
		})

		return
	}

	switch {
	case errors.Is(err, reimbursement.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, reimbursement.ErrExpenseNotFound):
		http.Error(w, "expense not found", http.StatusNotFound)
	case errors.Is(err, reimbursement.ErrStoreUnavailable):
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) listForExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := uuid.Parse(chi.URLParam(r, "expenseID"))
	if err != nil {
		http.Error(w, "invalid expense id", http.StatusBadRequest)
		return
	}

	payments, err := h.svc.ListForExpense(r.Context(), expenseID, auth.OwnerID(r.Context()))
	if err != nil {
		if errors.Is(err, reimbursement.ErrStoreUnavailable) {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toPaymentList(payments))
}

func (h *Handler) retract(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Retract(r.Context(), id, auth.OwnerID(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, reimbursement.ErrNotFound):
			http.Error(w, "reimbursement not found", http.StatusNotFound)
		case errors.Is(err, reimbursement.ErrStoreUnavailable):
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, recordResponse{
		Payment: toPaymentResponse(result.Payment),
		Expense: toExpenseSummary(result.Expense),
		Totals:  toTotals(result.Totals),
	})
}

func (h *Handler) overallRollup(w http.ResponseWriter, r *http.Request) {
	var window expense.DateRange

	if s := r.URL.Query().Get("from"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}

		window.From = &t
	}

	if s := r.URL.Query().Get("to"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}

		window.To = &t
	}

	rollup, err := h.svc.OverallRollup(r.Context(), auth.OwnerID(r.Context()), window)
	if err != nil {
		if errors.Is(err, reimbursement.ErrStoreUnavailable) {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toRollupResponse(rollup))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
