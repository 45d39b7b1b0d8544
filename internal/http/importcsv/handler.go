package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openclaims/remit/internal/auth"
	"github.com/openclaims/remit/internal/importer"
	"github.com/openclaims/remit/internal/reimbursement"
)

type Handler struct {
	svc *importer.Service
}

func NewHandler(svc *importer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importResponse struct {
	Recorded int                    `json:"recorded"`
	Rejected []importer.RejectedRow `json:"rejected"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	expenseID, err := uuid.Parse(r.FormValue("expense_id"))
	if err != nil {
		http.Error(w, "expense_id field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	report, err := h.svc.Import(r.Context(), auth.OwnerID(r.Context()), expenseID, file)
	if err != nil {
		switch {
		case errors.Is(err, reimbursement.ErrExpenseNotFound):
			http.Error(w, "expense not found", http.StatusNotFound)
		case errors.Is(err, reimbursement.ErrStoreUnavailable):
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importResponse{
		Recorded: len(report.Recorded),
		Rejected: report.Rejected,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
