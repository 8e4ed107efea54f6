package app

import tea "github.com/charmbracelet/bubbletea"

// handleKey dispatches bound actions and types everything else into the
// focused field.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.actionForKey(msg.String())

	if m.showHelp {
		switch action {
		case actionHelp:
			return m.toggleHelp()
		case actionQuit:
			if msg.Type == tea.KeyCtrlC {
				return m.quit()
			}
			return m.toggleHelp()
		}
		return m, nil
	}

	switch action {
	case actionQuit:
		return m.quit()
	case actionHelp:
		return m.toggleHelp()
	case actionFocusNext:
		return m, m.moveFocus(1)
	case actionFocusPrev:
		return m, m.moveFocus(-1)
	case actionLockToggle:
		m.toggleLock()
		return m, nil
	case actionClear:
		m.clearFields()
		return m, nil
	case actionCopy:
		m.copySummaryToClipboard()
		return m, nil
	}
	return m.handleFieldInput(msg)
}

func (m *Model) toggleHelp() (tea.Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	if m.showHelp {
		m.status = ""
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}
