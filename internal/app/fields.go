package app

import (
	"fmt"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/copteruni/rulecalc/internal/solver"
)

// fieldAdapter connects the solver session to the textinputs. It is both
// the value source (parsed field text) and the value sink (field writes and
// the three status indicators).
type fieldAdapter struct {
	m *Model
}

func (a fieldAdapter) Read(f solver.Field) solver.Value {
	i, ok := fieldIndex(f)
	if !ok {
		return solver.None()
	}
	return solver.ParseValue(a.m.inputs[i].Value())
}

func (a fieldAdapter) Write(f solver.Field, text string) {
	i, ok := fieldIndex(f)
	if !ok {
		return
	}
	a.m.inputs[i].SetValue(text)
	a.m.inputs[i].CursorEnd()
}

func (a fieldAdapter) ShowStatus(c solver.Compliance) {
	a.m.compliance = c
}

func fieldIndex(f solver.Field) (int, bool) {
	for i, field := range solver.Fields() {
		if field == f {
			return i, true
		}
	}
	return 0, false
}

// handleFieldInput forwards a key to the focused input and runs the solver
// when the text changed.
func (m *Model) handleFieldInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes && !acceptsRunes(msg.Runes) {
		return m, nil
	}
	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.onFieldChanged(m.focusedField())
	}
	return m, cmd
}

// acceptsRunes allows characters that can be part of a decimal number.
func acceptsRunes(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		switch {
		case unicode.IsDigit(r):
		case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}

func (m *Model) onFieldChanged(field solver.Field) {
	plan, ran := m.session.OnFieldChanged(field)
	if !ran {
		return
	}
	m.status = planStatus(plan)
	if plan.HasWrite() {
		appLog.Debug("solved field", "changed", field, "solved", plan.Solved, "value", plan.Text, "compliance", plan.Status.Kind)
	}
}

func planStatus(plan solver.Plan) string {
	switch {
	case !plan.HasWrite():
		return ""
	case plan.Text == "":
		return fmt.Sprintf("Cleared %s (angle unusable)", plan.Solved)
	default:
		return fmt.Sprintf("Computed %s = %s %s", plan.Solved, plan.Text, plan.Solved.Unit())
	}
}

// moveFocus cycles focus between the three inputs.
func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = ((m.focus+delta)%n + n) % n
	return m.inputs[m.focus].Focus()
}

// toggleLock switches the lock mode, re-runs the solver and saves the mode.
func (m *Model) toggleLock() {
	lock := m.session.Lock().Toggle()
	m.session.SetLock(lock)
	m.status = "Locked: " + lock.String()
	if err := m.persistLockMode(lock); err != nil {
		m.setStatusError("Lock changed but state save failed", err, "path", m.statePath)
	}
}

// clearFields empties all inputs and refreshes the status.
func (m *Model) clearFields() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.session.Refresh()
	m.status = "Cleared"
}

// indicators mirrors the three status elements of the form: the compliant
// message, the violation message and the violation amount.
type indicators struct {
	ok       bool
	nok      bool
	nokValue string
}

func indicatorsFor(c solver.Compliance) indicators {
	switch c.Kind {
	case solver.Compliant:
		return indicators{ok: true}
	case solver.Violation:
		return indicators{nok: true, nokValue: c.DeficitText()}
	}
	return indicators{}
}
