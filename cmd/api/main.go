package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/openclaims/remit/internal/auth"
	"github.com/openclaims/remit/internal/category"
	categoryStore "github.com/openclaims/remit/internal/category/store"
	"github.com/openclaims/remit/internal/config"
	"github.com/openclaims/remit/internal/database"
	"github.com/openclaims/remit/internal/expense"
	expenseStore "github.com/openclaims/remit/internal/expense/store"
	remitHttp "github.com/openclaims/remit/internal/http"
	categoryHandler "github.com/openclaims/remit/internal/http/category"
	expenseHandler "github.com/openclaims/remit/internal/http/expense"
	importHandler "github.com/openclaims/remit/internal/http/importcsv"
	reimbHandler "github.com/openclaims/remit/internal/http/reimbursement"
	"github.com/openclaims/remit/internal/importer"
	"github.com/openclaims/remit/internal/reimbursement"
	reimbStore "github.com/openclaims/remit/internal/reimbursement/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		expenseService  = expense.NewService(expenseStore.New(db))
		categoryService = category.NewService(categoryStore.New(db))
		reimbService    = reimbursement.NewService(reimbStore.New(db), expenseService, categoryService)
		importService   = importer.NewService(reimbService)
	)

	var (
		expenseH  = expenseHandler.NewHandler(expenseService)
		categoryH = categoryHandler.NewHandler(categoryService)
		reimbH    = reimbHandler.NewHandler(reimbService)
		importH   = importHandler.NewHandler(importService)
	)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)
	router := remitHttp.New(verifier, expenseH, categoryH, reimbH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
