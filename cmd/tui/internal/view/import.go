package view

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/openclaims/remit/internal/expense"
	"github.com/openclaims/remit/internal/importer"
)

type importState int

const (
	importStateLoading importState = iota
	importStateForm
	importStateDone
)

// ImportModel drives a CSV payment import against a chosen expense.
type ImportModel struct {
	CommonModel
	importSvc  *importer.Service
	expenseSvc *expense.Service
	ownerID    string

	state importState
	form  *huh.Form

	report *importer.Report
	status string

	// Form field bindings
	formExpenseID string
	formPath      string
}

func NewImportModel(importSvc *importer.Service, expenseSvc *expense.Service, ownerID string) ImportModel {
	return ImportModel{
		importSvc:  importSvc,
		expenseSvc: expenseSvc,
		ownerID:    ownerID,
	}
}

func (m ImportModel) Init() tea.Cmd {
	return m.loadTargetsCmd()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTargetsMsg:
		if msg.err != nil {
			m.state = importStateDone
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		if len(msg.expenses) == 0 {
			m.state = importStateDone
			m.status = "No expenses to import against."

			return m, nil
		}

		return m.startForm(msg.expenses)

	case importDoneMsg:
		m.state = importStateDone
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Import failed: %v", msg.err)
			return m, nil
		}

		m.report = msg.report

		return m, nil
	}

	switch m.state {
	case importStateForm:
		return m.updateForm(msg)
	case importStateDone:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc", "q", "enter":
				return m, Back
			}
		}
	}

	return m, nil
}

func (m ImportModel) startForm(expenses []*expense.Expense) (tea.Model, tea.Cmd) {
	options := make([]huh.Option[string], len(expenses))
	for i, e := range expenses {
		label := fmt.Sprintf("%s  %s  %s", FormatDate(e.DatePaid), FormatAmount(e.Amount), e.Description)
		options[i] = huh.NewOption(label, e.ID.String())
	}

	m.formExpenseID = options[0].Value
	m.formPath = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("expense").
				Title("Expense").
				Options(options...).
				Value(&m.formExpenseID),

			huh.NewInput().
				Key("path").
				Title("CSV File Path").
				Placeholder("/path/to/export.csv").
				Value(&m.formPath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("path cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(70).WithShowHelp(false)

	m.state = importStateForm

	return m, m.form.Init()
}

func (m ImportModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.runImportCmd()
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading expenses...")

	case importStateForm:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render("Import Payments\n\n" + m.form.View())

	case importStateDone:
		if m.status != "" {
			return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\n(Esc to back)")
		}

		return lipgloss.NewStyle().Padding(1).Render(m.renderReport())
	}

	return ""
}

func (m ImportModel) renderReport() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Import Complete"))
	b.WriteString(fmt.Sprintf("\n\nRecorded %d payment(s).\n", len(m.report.Recorded)))

	if len(m.report.Rejected) > 0 {
		b.WriteString(fmt.Sprintf("\nRejected %d row(s):\n", len(m.report.Rejected)))

		for _, r := range m.report.Rejected {
			b.WriteString(fmt.Sprintf("  line %d (%s): %s\n", r.Line, FormatAmount(r.Amount), r.Reason))
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Esc: back"))

	return b.String()
}

// Messages

type loadTargetsMsg struct {
	expenses []*expense.Expense
	err      error
}

func (m ImportModel) loadTargetsCmd() tea.Cmd {
	svc := m.expenseSvc
	ownerID := m.ownerID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		expenses, err := svc.List(ctx, ownerID)

		return loadTargetsMsg{expenses: expenses, err: err}
	}
}

type importDoneMsg struct {
	report *importer.Report
	err    error
}

func (m ImportModel) runImportCmd() tea.Cmd {
	svc := m.importSvc
	ownerID := m.ownerID
	idStr := m.formExpenseID
	path := strings.TrimSpace(m.formPath)

	return func() tea.Msg {
		expenseID, err := uuid.Parse(idStr)
		if err != nil {
			return importDoneMsg{err: err}
		}

		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := DbCtx()
		defer cancel()

		report, err := svc.Import(ctx, ownerID, expenseID, f)

		return importDoneMsg{report: report, err: err}
	}
}
