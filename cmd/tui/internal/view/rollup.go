package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openclaims/remit/internal/expense"
	"github.com/openclaims/remit/internal/reimbursement"
)

type rollupState int

const (
	rollupStateWindow rollupState = iota
	rollupStateResult
)

// RollupModel shows the per-category reimbursement summary for a
// selected date window.
type RollupModel struct {
	CommonModel
	svc     *reimbursement.Service
	ownerID string

	state  rollupState
	picker WindowPicker

	rollup  *reimbursement.Rollup
	loading bool
	status  string
}

func NewRollupModel(svc *reimbursement.Service, ownerID string) RollupModel {
	return RollupModel{
		svc:     svc,
		ownerID: ownerID,
		picker:  NewWindowPicker(),
	}
}

func (m RollupModel) Init() tea.Cmd {
	return nil
}

func (m RollupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case WindowSelectedMsg:
		m.state = rollupStateResult
		m.loading = true

		return m, m.loadRollupCmd(expense.DateRange{From: msg.From, To: msg.To})

	case loadRollupMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.rollup = msg.rollup

		return m, nil
	}

	switch m.state {
	case rollupStateWindow:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			if keyMsg.Type == tea.KeyEsc && m.picker.IsSelecting() {
				return m, Back
			}
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd

	case rollupStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				m.state = rollupStateWindow
				m.rollup = nil
				m.status = ""

				return m, nil
			case "q":
				return m, Back
			}
		}
	}

	return m, nil
}

func (m RollupModel) View() string {
	if m.state == rollupStateWindow {
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Computing summary...")
	}

	if m.status != "" {
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	}

	if m.rollup == nil {
		return ""
	}

	return lipgloss.NewStyle().Padding(1).Render(m.renderRollup())
}

func (m RollupModel) renderRollup() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Reimbursement Summary"))
	b.WriteString("\n\n")

	if len(m.rollup.ByCategory) == 0 {
		b.WriteString("No eligible expenses in this window.\n")
	}

	nameWidth := 0
	for _, c := range m.rollup.ByCategory {
		if len(c.CategoryName) > nameWidth {
			nameWidth = len(c.CategoryName)
		}
	}

	for _, c := range m.rollup.ByCategory {
		b.WriteString(fmt.Sprintf("%-*s  eligible %10s  reimbursed %10s  remaining %10s\n",
			nameWidth, c.CategoryName,
			FormatAmount(c.TotalEligible),
			FormatAmount(c.TotalReimbursed),
			FormatAmount(c.Remaining),
		))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf(
		"Total: eligible %s, reimbursed %s, remaining %s",
		FormatAmount(m.rollup.TotalEligible),
		FormatAmount(m.rollup.TotalReimbursed),
		FormatAmount(m.rollup.Remaining),
	)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Esc: change window | q: back"))

	return b.String()
}

// Messages

type loadRollupMsg struct {
	rollup *reimbursement.Rollup
	err    error
}

func (m RollupModel) loadRollupCmd(window expense.DateRange) tea.Cmd {
	svc := m.svc
	ownerID := m.ownerID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rollup, err := svc.OverallRollup(ctx, ownerID, window)

		return loadRollupMsg{rollup: rollup, err: err}
	}
}
