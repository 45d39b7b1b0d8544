package view

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/openclaims/remit/internal/expense"
	"github.com/openclaims/remit/internal/reimbursement"
)

type ledgerState int

const (
	ledgerStateList ledgerState = iota
	ledgerStateRecording
)

// paymentItem wraps a payment to implement list.Item.
type paymentItem struct {
	p *reimbursement.Payment
}

func (i paymentItem) Title() string {
	method := ""
	if i.p.Method != nil {
		method = lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", *i.p.Method))
	}

	return fmt.Sprintf("%s  %s  %s", FormatDate(i.p.ReimbursedAt), FormatAmount(i.p.Amount), method)
}

func (i paymentItem) Description() string {
	if i.p.Notes != nil {
		return *i.p.Notes
	}

	return ""
}

func (i paymentItem) FilterValue() string {
	if i.p.Notes != nil {
		return *i.p.Notes
	}

	return ""
}

// LedgerModel shows the payment ledger for one expense and lets the
// user record and retract payments.
type LedgerModel struct {
	CommonModel
	svc     *reimbursement.Service
	ownerID string
	exp     *expense.Expense

	state ledgerState
	list  list.Model
	form  *huh.Form

	total   int64
	loading bool
	status  string

	// Form field bindings
	formAmount string
	formDate   string
	formMethod string
	formNotes  string
}

func NewLedgerModel(svc *reimbursement.Service, ownerID string, exp *expense.Expense) LedgerModel {
	l := list.New([]list.Item{}, paymentItemDelegate{}, 0, 0)
	l.Title = "Payments"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return LedgerModel{
		svc:     svc,
		ownerID: ownerID,
		exp:     exp,
		list:    l,
	}
}

func (m LedgerModel) Init() tea.Cmd {
	m.loading = true
	return m.loadPaymentsCmd()
}

func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPaymentsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		items := make([]list.Item, len(msg.payments))

		m.total = 0
		for i, p := range msg.payments {
			items[i] = paymentItem{p: p}
			m.total += p.Amount
		}

		m.list.SetItems(items)

		return m, nil

	case recordPaymentMsg:
		m.state = ledgerStateList
		m.form = nil

		if msg.err != nil {
			var overdraft *reimbursement.OverdraftError
			if errors.As(msg.err, &overdraft) {
				m.status = fmt.Sprintf("Rejected: would bring total to %s against an expense of %s",
					FormatAmount(overdraft.ResultingTotal), FormatAmount(overdraft.ExpenseAmount))
			} else {
				m.status = fmt.Sprintf("Error: %v", msg.err)
			}

			return m, nil
		}

		if msg.result.Expense != nil {
			m.exp = msg.result.Expense
		}

		m.status = "Payment recorded."

		return m, m.loadPaymentsCmd()

	case retractPaymentMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		if msg.result.Expense != nil {
			m.exp = msg.result.Expense
		}

		m.status = "Payment retracted."

		return m, m.loadPaymentsCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-12)
		return m, nil
	}

	switch m.state {
	case ledgerStateList:
		return m.updateList(msg)
	case ledgerStateRecording:
		return m.updateRecording(msg)
	}

	return m, nil
}

func (m LedgerModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			return m.startRecording()
		case "d":
			selected, ok := m.list.SelectedItem().(paymentItem)
			if !ok {
				return m, nil
			}

			return m, m.retractCmd(selected.p)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m LedgerModel) startRecording() (tea.Model, tea.Cmd) {
	m.formAmount = ""
	m.formDate = FormatDate(time.Now())
	m.formMethod = ""
	m.formNotes = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("123.45").
				Value(&m.formAmount).
				Validate(validateAmount),

			huh.NewInput().
				Key("reimbursed_at").
				Title("Reimbursed On").
				Value(&m.formDate).
				Validate(validateDate),

			huh.NewInput().
				Key("method").
				Title("Method (optional)").
				Placeholder("hsa_debit").
				Value(&m.formMethod),

			huh.NewInput().
				Key("notes").
				Title("Notes (optional)").
				Value(&m.formNotes),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = ledgerStateRecording

	return m, m.form.Init()
}

func (m LedgerModel) updateRecording(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = ledgerStateList
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

	return m, m.recordCmd()
}

func (m LedgerModel) View() string {
	header := m.headerView()

	switch m.state {
	case ledgerStateRecording:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(header + "\n" + m.form.View())

	case ledgerStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading payments...")
		}

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		help := lipgloss.NewStyle().Faint(true).Render("r: record | d: retract | Esc: back")

		return lipgloss.NewStyle().Padding(1).Render(
			header + "\n" + statusLine + m.list.View() + "\n" + help,
		)
	}

	return ""
}

func (m LedgerModel) headerView() string {
	status := "open"
	if m.exp.Reimbursed {
		status = "fully reimbursed"
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(fmt.Sprintf(
			"%s  |  Amount: %s  |  Reimbursed: %s  |  Remaining: %s  |  %s",
			m.exp.Description,
			FormatAmount(m.exp.Amount),
			FormatAmount(m.total),
			FormatAmount(m.exp.Amount-m.total),
			status,
		))
}

// Messages

type loadPaymentsMsg struct {
	payments []*reimbursement.Payment
	err      error
}

func (m LedgerModel) loadPaymentsCmd() tea.Cmd {
	svc := m.svc
	ownerID := m.ownerID
	expenseID := m.exp.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		payments, err := svc.ListForExpense(ctx, expenseID, ownerID)

		return loadPaymentsMsg{payments: payments, err: err}
	}
}

type recordPaymentMsg struct {
	result *reimbursement.RecordResult
	err    error
}

func (m LedgerModel) recordCmd() tea.Cmd {
	svc := m.svc
	ownerID := m.ownerID
	expenseID := m.exp.ID
	amountStr := m.formAmount
	dateStr := m.formDate
	method := m.formMethod
	notes := m.formNotes

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		amount, err := parseAmountInput(amountStr)
		if err != nil {
			return recordPaymentMsg{err: err}
		}

		at, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return recordPaymentMsg{err: err}
		}

		params := reimbursement.RecordParams{
			ExpenseID:    expenseID,
			Amount:       amount,
			ReimbursedAt: &at,
		}

		if method != "" {
			params.Method = &method
		}

		if notes != "" {
			params.Notes = &notes
		}

		result, err := svc.Record(ctx, ownerID, params)

		return recordPaymentMsg{result: result, err: err}
	}
}

type retractPaymentMsg struct {
	result *reimbursement.RetractResult
	err    error
}

func (m LedgerModel) retractCmd(p *reimbursement.Payment) tea.Cmd {
	svc := m.svc
	ownerID := m.ownerID
	id := p.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := svc.Retract(ctx, id, ownerID)

		return retractPaymentMsg{result: result, err: err}
	}
}

// paymentItemDelegate renders items in the list.
type paymentItemDelegate struct{}

func (d paymentItemDelegate) Height() int                             { return 2 }
func (d paymentItemDelegate) Spacing() int                            { return 0 }
func (d paymentItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d paymentItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(paymentItem)
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
