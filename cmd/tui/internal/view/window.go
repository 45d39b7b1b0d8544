package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Window is a predefined or custom date range for summary views.
type Window int

const (
	WindowThisMonth Window = iota
	WindowLastMonth
	WindowYearToDate
	WindowAllTime
	WindowCustom
)

func (w Window) String() string {
	switch w {
	case WindowThisMonth:
		return "This Month"
	case WindowLastMonth:
		return "Last Month"
	case WindowYearToDate:
		return "Year to Date"
	case WindowAllTime:
		return "All Time"
	case WindowCustom:
		return "Custom Range"
	}

	return "Unknown"
}

// windowBounds resolves a predefined window to its inclusive bounds.
func windowBounds(w Window) (time.Time, time.Time) {
	now := time.Now()

	var from, to time.Time

	switch w {
	case WindowThisMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = now
	case WindowLastMonth:
		lastMonth := now.AddDate(0, -1, 0)
		from = time.Date(lastMonth.Year(), lastMonth.Month(), 1, 0, 0, 0, 0, lastMonth.Location())
		to = from.AddDate(0, 1, -1)
	case WindowYearToDate:
		from = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		to = now
	}

	return from, to
}

func normalizeBounds(from, to time.Time) (time.Time, time.Time) {
	return time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC),
		time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
}

// WindowSelectedMsg is emitted when the user picked a date range.
// Both bounds are nil for all-time.
type WindowSelectedMsg struct {
	From *time.Time
	To   *time.Time
}

type windowState int

const (
	windowStateSelect windowState = iota
	windowStateCustom
)

// WindowPicker is a reusable component for selecting a summary window.
type WindowPicker struct {
	state    windowState
	selected Window

	fromInput  textinput.Model
	toInput    textinput.Model
	focusIndex int

	err error
}

func NewWindowPicker() WindowPicker {
	fi := textinput.New()
	fi.Placeholder = "YYYY-MM-DD"
	fi.CharLimit = 10
	fi.Width = 12
	fi.Prompt = "From: "

	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 12
	ti.Prompt = "To:   "

	return WindowPicker{
		state:     windowStateSelect,
		selected:  WindowThisMonth,
		fromInput: fi,
		toInput:   ti,
	}
}

func (m WindowPicker) Init() tea.Cmd {
	return nil
}

func (m WindowPicker) Update(msg tea.Msg) (WindowPicker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case windowStateSelect:
			return m.updateSelect(keyMsg)
		case windowStateCustom:
			return m.updateCustom(keyMsg)
		}
	}

	if m.state == windowStateCustom {
		return m.updateInputs(msg)
	}

	return m, nil
}

func (m WindowPicker) updateSelect(msg tea.KeyMsg) (WindowPicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > WindowThisMonth {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < WindowCustom {
			m.selected++
		}
	case tea.KeyEnter:
		if m.selected == WindowCustom {
			m.state = windowStateCustom
			m.fromInput.Focus()
			m.focusIndex = 0

			return m, textinput.Blink
		}

		if m.selected == WindowAllTime {
			return m, func() tea.Msg {
				return WindowSelectedMsg{}
			}
		}

		from, to := normalizeBounds(windowBounds(m.selected))

		return m, func() tea.Msg {
			return WindowSelectedMsg{From: &from, To: &to}
		}
	}

	return m, nil
}

func (m WindowPicker) updateCustom(msg tea.KeyMsg) (WindowPicker, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusIndex = (m.focusIndex + 1) % 2
		m.fromInput.Blur()
		m.toInput.Blur()

		if m.focusIndex == 0 {
			m.fromInput.Focus()
			return m, textinput.Blink
		}

		m.toInput.Focus()

		return m, textinput.Blink

	case "enter":
		from, err := time.Parse(time.DateOnly, m.fromInput.Value())
		if err != nil {
			m.err = fmt.Errorf("invalid from date (YYYY-MM-DD)")
			return m, nil
		}

		to, err := time.Parse(time.DateOnly, m.toInput.Value())
		if err != nil {
			m.err = fmt.Errorf("invalid to date (YYYY-MM-DD)")
			return m, nil
		}

		m.err = nil
		from, to = normalizeBounds(from, to)

		return m, func() tea.Msg {
			return WindowSelectedMsg{From: &from, To: &to}
		}

	case "esc":
		m.state = windowStateSelect
		m.err = nil

		return m, nil
	}

	return m, nil
}

func (m WindowPicker) updateInputs(msg tea.Msg) (WindowPicker, tea.Cmd) {
	var cmds []tea.Cmd
	var c tea.Cmd

	m.fromInput, c = m.fromInput.Update(msg)
	cmds = append(cmds, c)
	m.toInput, c = m.toInput.Update(msg)
	cmds = append(cmds, c)

	return m, tea.Batch(cmds...)
}

func (m WindowPicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("\n\nError: %v", m.err))
	}

	if m.state == windowStateCustom {
		return fmt.Sprintf(
			"Enter Custom Range:\n\n%s\n%s\n\n(Enter to confirm, Tab to switch, Esc to back)%s",
			m.fromInput.View(),
			m.toInput.View(),
			errStr,
		)
	}

	s := "Select Window:\n\n"

	for w := WindowThisMonth; w <= WindowCustom; w++ {
		cursor := " "
		if m.selected == w {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, w.String())
	}

	s += "\n(Enter to select, Esc to back)"

	return s + errStr
}

// IsSelecting reports whether the picker is in the selection state.
func (m WindowPicker) IsSelecting() bool {
	return m.state == windowStateSelect
}
