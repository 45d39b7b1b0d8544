package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/openclaims/remit/internal/expense"
)

type expensesState int

const (
	expensesStateList expensesState = iota
	expensesStateCreating
)

// expenseItem wraps an expense to implement list.Item.
type expenseItem struct {
	e *expense.Expense
}

func (i expenseItem) Title() string {
	status := "open"
	if i.e.Reimbursed {
		status = "reimbursed"
	}

	statusStr := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", status))

	return fmt.Sprintf("%s  %s  %s  %s", FormatDate(i.e.DatePaid), FormatAmount(i.e.Amount), statusStr, i.e.Description)
}

func (i expenseItem) Description() string {
	if i.e.ReimbursedAt != nil {
		return fmt.Sprintf("Reimbursed on %s", FormatDate(*i.e.ReimbursedAt))
	}

	return ""
}

func (i expenseItem) FilterValue() string {
	return i.e.Description
}

// OpenLedgerMsg asks the root model to open the payment ledger for an expense.
type OpenLedgerMsg struct {
	Expense *expense.Expense
}

type ExpensesModel struct {
	CommonModel
	svc     *expense.Service
	ownerID string

	state expensesState
	list  list.Model
	form  *huh.Form

	loading bool
	status  string

	// Form field bindings
	formAmount string
	formDate   string
	formMethod string
	formDesc   string
}

func NewExpensesModel(svc *expense.Service, ownerID string) ExpensesModel {
	l := list.New([]list.Item{}, expenseItemDelegate{}, 0, 0)
	l.Title = "Expenses"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return ExpensesModel{
		svc:     svc,
		ownerID: ownerID,
		list:    l,
	}
}

func (m ExpensesModel) Init() tea.Cmd {
	m.loading = true
	return m.loadExpensesCmd()
}

func (m ExpensesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadExpensesMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		items := make([]list.Item, len(msg.expenses))
		for i, e := range msg.expenses {
			items[i] = expenseItem{e: e}
		}

		m.list.SetItems(items)

		if len(msg.expenses) == 0 {
			m.status = "No expenses yet. Press n to add one."
		}

		return m, nil

	case createExpenseResultMsg:
		m.state = expensesStateList
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = "Expense created."

		return m, m.loadExpensesCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case expensesStateList:
		return m.updateList(msg)
	case expensesStateCreating:
		return m.updateCreating(msg)
	}

	return m, nil
}

func (m ExpensesModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.list.FilterState() != list.Filtering {
			switch keyMsg.String() {
			case "esc":
				return m, Back
			case "n":
				return m.startCreating()
			case "enter":
				selected, ok := m.list.SelectedItem().(expenseItem)
				if !ok {
					return m, nil
				}

				return m, func() tea.Msg {
					return OpenLedgerMsg{Expense: selected.e}
				}
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ExpensesModel) startCreating() (tea.Model, tea.Cmd) {
	m.formAmount = ""
	m.formDate = FormatDate(time.Now())
	m.formMethod = ""
	m.formDesc = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("123.45").
				Value(&m.formAmount).
				Validate(validateAmount),

			huh.NewInput().
				Key("date_paid").
				Title("Date Paid").
				Value(&m.formDate).
				Validate(validateDate),

			huh.NewInput().
				Key("payment_method").
				Title("Payment Method").
				Placeholder("credit_card").
				Value(&m.formMethod).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("payment method cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = expensesStateCreating

	return m, m.form.Init()
}

func (m ExpensesModel) updateCreating(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = expensesStateList
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.createExpenseCmd()
}

func (m ExpensesModel) View() string {
	switch m.state {
	case expensesStateCreating:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render("New Expense\n\n" + m.form.View())

	case expensesStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading expenses...")
		}

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		help := lipgloss.NewStyle().Faint(true).Render("Enter: ledger | n: new | Esc: back")

		return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View() + "\n" + help)
	}

	return ""
}

// Messages

type loadExpensesMsg struct {
	expenses []*expense.Expense
	err      error
}

func (m ExpensesModel) loadExpensesCmd() tea.Cmd {
	svc := m.svc
	ownerID := m.ownerID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		expenses, err := svc.List(ctx, ownerID)

		return loadExpensesMsg{expenses: expenses, err: err}
	}
}

type createExpenseResultMsg struct {
	err error
}

func (m ExpensesModel) createExpenseCmd() tea.Cmd {
	svc := m.svc
	ownerID := m.ownerID
	amountStr := m.formAmount
	dateStr := m.formDate
	method := m.formMethod
	desc := m.formDesc

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		amount, err := parseAmountInput(amountStr)
		if err != nil {
			return createExpenseResultMsg{err: err}
		}

		datePaid, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return createExpenseResultMsg{err: err}
		}

		_, err = svc.Create(ctx, ownerID, expense.CreateParams{
			Amount:        amount,
			DatePaid:      datePaid,
			PaymentMethod: method,
			Description:   desc,
		})

		return createExpenseResultMsg{err: err}
	}
}

// Shared form validators

func validateAmount(s string) error {
	if _, err := parseAmountInput(s); err != nil {
		return fmt.Errorf("invalid amount")
	}

	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}

	return nil
}

// parseAmountInput converts a decimal input like "123.45" into cents.
func parseAmountInput(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}

	return cents, nil
}

// expenseItemDelegate renders items in the list.
type expenseItemDelegate struct{}

func (d expenseItemDelegate) Height() int                             { return 2 }
func (d expenseItemDelegate) Spacing() int                            { return 0 }
func (d expenseItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d expenseItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(expenseItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)

	if desc := i.Description(); desc != "" {
		fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(desc))
		return
	}

	fmt.Fprintln(w)
}
