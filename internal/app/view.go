package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/copteruni/rulecalc/internal/solver"
)

// View draws the calculator pane (or the help overlay) and the footer.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	footerHeight := m.footerHeightForWidth(m.width)
	contentHeight := max(0, m.height-footerHeight)

	var body string
	if m.showHelp {
		body = m.renderHelp(m.width, contentHeight)
	} else {
		body = m.renderForm(m.formWidth(), contentHeight)
	}
	body = padBlock(body, m.width, contentHeight)

	view := body + "\n" + m.renderStatus(m.width, footerHeight)
	return padBlock(view, m.width, m.height)
}

func (m *Model) formWidth() int {
	return min(FormMaxWidth, m.width)
}

// applyLayout sizes the inputs to the space left of the label and marker
// columns. Called on every resize.
func (m *Model) applyLayout() {
	inner := max(0, m.formWidth()-paneStyle.GetHorizontalFrameSize())
	// The textinput renders its prompt and one cursor cell beyond Width.
	inputWidth := max(1, inner-LabelWidth-MarkerWidth-lipgloss.Width(m.inputs[0].Prompt)-1)
	for i := range m.inputs {
		m.inputs[i].Width = inputWidth
	}
}

func (m *Model) renderForm(width, height int) string {
	innerWidth := max(0, width-paneStyle.GetHorizontalFrameSize())
	innerHeight := max(0, height-paneStyle.GetVerticalFrameSize())

	lines := []string{titleStyle.Render("1:1 Rule Calculator"), ""}
	for i, f := range solver.Fields() {
		label := labelStyle
		if i == m.focus {
			label = focusedLabel
		}
		marker := ""
		if m.session.Lock().Locks(f) {
			marker = lockedStyle.Render(" [locked]")
		}
		row := label.Width(LabelWidth).Render(fieldLabels[f]) + m.inputs[i].View() + marker
		lines = append(lines, truncate(row, innerWidth))
	}

	lines = append(lines, "", truncate(m.renderLockSelector(), innerWidth), "")
	for _, line := range m.renderCompliance() {
		lines = append(lines, truncate(line, innerWidth))
	}

	content := padBlock(strings.Join(lines, "\n"), innerWidth, innerHeight)
	return paneStyle.Render(content)
}

func (m *Model) renderLockSelector() string {
	lock := m.session.Lock()
	option := func(mode solver.LockMode, label string) string {
		if lock == mode {
			return lockedStyle.Render("(•) " + label)
		}
		return mutedStyle.Render("( ) " + label)
	}
	hint := mutedStyle.Render("  " + m.primaryActionKey(actionLockToggle, "Ctrl+L") + " to switch")
	return "Lock: " + option(solver.AngleLocked, "angle") + "  " + option(solver.HeightLocked, "height") + hint
}

// renderCompliance shows the visible status indicators. Nothing is shown
// while height or distance is missing.
func (m *Model) renderCompliance() []string {
	ind := indicatorsFor(m.compliance)
	var lines []string
	if ind.ok {
		lines = append(lines, okStyle.Render("✓ 1:1 rule satisfied: distance ≥ height"))
	}
	if ind.nok {
		lines = append(lines, nokStyle.Render("✗ 1:1 rule violated: distance < height"))
	}
	if ind.nokValue != "" {
		lines = append(lines, nokValueStyle.Render("  Missing distance: "+ind.nokValue))
	}
	return lines
}
