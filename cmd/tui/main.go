package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/openclaims/remit/cmd/tui/internal/view"
	"github.com/openclaims/remit/internal/category"
	categoryStore "github.com/openclaims/remit/internal/category/store"
	"github.com/openclaims/remit/internal/config"
	"github.com/openclaims/remit/internal/database"
	"github.com/openclaims/remit/internal/expense"
	expenseStore "github.com/openclaims/remit/internal/expense/store"
	"github.com/openclaims/remit/internal/importer"
	"github.com/openclaims/remit/internal/reimbursement"
	reimbStore "github.com/openclaims/remit/internal/reimbursement/store"
)

type model struct {
	expenseService *expense.Service
	reimbService   *reimbursement.Service
	importService  *importer.Service
	ownerID        string

	currentView View

	expensesView view.ExpensesModel
	ledgerView   view.LedgerModel
	rollupView   view.RollupModel
	importView   view.ImportModel
}

type View int

const (
	ViewMenu View = iota
	ViewExpenses
	ViewLedger
	ViewRollup
	ViewImport
)

func initialModel() model {
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

	expenseSvc := expense.NewService(expenseStore.New(db))
	categorySvc := category.NewService(categoryStore.New(db))
	reimbSvc := reimbursement.NewService(reimbStore.New(db), expenseSvc, categorySvc)
	importSvc := importer.NewService(reimbSvc)

	ownerID := cfg.TUI.UserID

	return model{
		expenseService: expenseSvc,
		reimbService:   reimbSvc,
		importService:  importSvc,
		ownerID:        ownerID,
		currentView:    ViewMenu,
		expensesView:   view.NewExpensesModel(expenseSvc, ownerID),
		rollupView:     view.NewRollupModel(reimbSvc, ownerID),
		importView:     view.NewImportModel(importSvc, expenseSvc, ownerID),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewExpenses
				m.expensesView = view.NewExpensesModel(m.expenseService, m.ownerID)

				return m, m.expensesView.Init()
			case "2":
				m.currentView = ViewRollup
				m.rollupView = view.NewRollupModel(m.reimbService, m.ownerID)

				return m, m.rollupView.Init()
			case "3":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService, m.expenseService, m.ownerID)

				return m, m.importView.Init()
			}
		}
	case view.OpenLedgerMsg:
		m.currentView = ViewLedger
		m.ledgerView = view.NewLedgerModel(m.reimbService, m.ownerID, msg.Expense)

		return m, m.ledgerView.Init()
	case view.BackMsg:
		// The ledger sits below the expenses screen, everything else
		// returns to the menu.
		if m.currentView == ViewLedger {
			m.currentView = ViewExpenses
			m.expensesView = view.NewExpensesModel(m.expenseService, m.ownerID)

			return m, m.expensesView.Init()
		}

		m.currentView = ViewMenu

		return m, nil
	}

	switch m.currentView {
	case ViewExpenses:
		var newModel tea.Model
		newModel, cmd = m.expensesView.Update(msg)
		m.expensesView = newModel.(view.ExpensesModel)
	case ViewLedger:
		var newModel tea.Model
		newModel, cmd = m.ledgerView.Update(msg)
		m.ledgerView = newModel.(view.LedgerModel)
	case ViewRollup:
		var newModel tea.Model
		newModel, cmd = m.rollupView.Update(msg)
		m.rollupView = newModel.(view.RollupModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Remit TUI\n\n" +
				"1. Expenses & Payments\n" +
				"2. Reimbursement Summary\n" +
				"3. Import Payments CSV\n\n" +
				"q. Quit",
		)
	case ViewExpenses:
		return m.expensesView.View()
	case ViewLedger:
		return m.ledgerView.View()
	case ViewRollup:
		return m.rollupView.View()
	case ViewImport:
		return m.importView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
