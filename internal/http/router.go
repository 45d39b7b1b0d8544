package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/openclaims/remit/internal/auth"
	"github.com/openclaims/remit/internal/http/category"
	"github.com/openclaims/remit/internal/http/expense"
	"github.com/openclaims/remit/internal/http/importcsv"
	"github.com/openclaims/remit/internal/http/reimbursement"
)

func New(
	verifier *auth.Verifier,
	expensesV1 *expense.Handler,
	categoriesV1 *category.Handler,
	reimbursementsV1 *reimbursement.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(verifier.Middleware)

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expensesV1.Routes(r)
		})

		r.Route("/categories", categoriesV1.Routes)

		r.Route("/reimbursements", func(r chi.Router) {
			reimbursementsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
	})

	return router
}
