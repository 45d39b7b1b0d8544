package expense

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
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.archive)
}

type createExpenseRequest struct {
	Amount          int64      `json:"amount"`
	DatePaid        time.Time  `json:"date_paid"`
	PaymentMethod   string     `json:"payment_method"`
	Description     string     `json:"description"`
	InvoiceImageURL *string    `json:"invoice_image_url,omitempty"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Create(r.Context(), auth.OwnerID(r.Context()), expense.CreateParams{
		Amount:          req.Amount,
		DatePaid:        req.DatePaid,
		PaymentMethod:   req.PaymentMethod,
		Description:     req.Description,
		InvoiceImageURL: req.InvoiceImageURL,
		CategoryID:      req.CategoryID,
	})
	if err != nil {
		if errors.Is(err, expense.ErrMissingField) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.List(r.Context(), auth.OwnerID(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(expenses)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id, auth.OwnerID(r.Context()))
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateExpenseRequest struct {
	Amount          *int64     `json:"amount,omitempty"`
	DatePaid        *time.Time `json:"date_paid,omitempty"`
	PaymentMethod   *string    `json:"payment_method,omitempty"`
	Description     *string    `json:"description,omitempty"`
	InvoiceImageURL *string    `json:"invoice_image_url,omitempty"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id, auth.OwnerID(r.Context()))
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Amount != nil {
		e.Amount = *req.Amount
	}

	if req.DatePaid != nil {
		e.DatePaid = *req.DatePaid
	}

	if req.PaymentMethod != nil {
		e.PaymentMethod = *req.PaymentMethod
	}

	if req.Description != nil {
		e.Description = *req.Description
	}

	if req.InvoiceImageURL != nil {
		e.InvoiceImageURL = req.InvoiceImageURL
	}

	if req.CategoryID != nil {
		e.CategoryID = req.CategoryID
	}

	if err := h.svc.Update(r.Context(), e); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) archive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Archive(r.Context(), id, auth.OwnerID(r.Context())); err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
