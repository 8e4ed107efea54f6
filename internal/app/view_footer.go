package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHeightForWidth prefers FooterMinRows and expands to FooterMaxRows
// when the footer segments cannot fit without dropping content.
func (m *Model) footerHeightForWidth(width int) int {
	_, fit := m.buildStatusRows(width, FooterMinRows)
	if fit {
		return FooterMinRows
	}
	return FooterMaxRows
}

func (m *Model) renderStatus(width, rows int) string {
	statusRows, _ := m.buildStatusRows(width, rows)
	for len(statusRows) < rows {
		statusRows = append(statusRows, "")
	}

	rendered := make([]string, 0, len(statusRows))
	for _, line := range statusRows {
		line = " " + truncate(line, max(0, width-1))
		rendered = append(rendered, statusStyle.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

// buildStatusRows packs the help, context and status segments into at most
// rowLimit rows separated by " | ". The second result is false when
// something had to be truncated.
func (m *Model) buildStatusRows(width, rowLimit int) ([]string, bool) {
	if width <= 0 || rowLimit <= 0 {
		return nil, true
	}

	help := m.statusHelpSegments()
	context := m.statusContextSegments()

	segments := make([]string, 0, len(help)+len(context)+1)
	if len(help) > 0 {
		segments = append(segments, "Keys: "+help[0])
		segments = append(segments, help[1:]...)
	}
	if len(context) > 0 {
		segments = append(segments, "Context: "+context[0])
		segments = append(segments, context[1:]...)
	}
	if m.status != "" {
		segments = append(segments, "Status: "+m.status)
	}

	rows := make([]string, 1, rowLimit)
	rowIndex := 0
	fit := true
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segment := seg
		if lipgloss.Width(segment) > width {
			segment = truncateWithEllipsis(segment, width)
		}

		candidate := segment
		if rows[rowIndex] != "" {
			candidate = rows[rowIndex] + " | " + segment
		}
		if lipgloss.Width(candidate) <= width {
			rows[rowIndex] = candidate
			continue
		}
		if rowIndex+1 < rowLimit {
			rowIndex++
			rows = append(rows, segment)
			continue
		}

		fit = false
		rows[rowIndex] = truncateWithEllipsis(rows[rowIndex]+" | "+segment, width)
		break
	}
	return rows, fit
}

func (m *Model) statusHelpSegments() []string {
	if m.showHelp {
		return []string{
			m.primaryActionKey(actionHelp, "?") + " close help",
			m.primaryActionKey(actionQuit, "Esc") + " close",
		}
	}
	return []string{
		m.primaryActionKey(actionFocusNext, "Tab") + " next field",
		m.primaryActionKey(actionLockToggle, "Ctrl+L") + " lock",
		m.primaryActionKey(actionClear, "Ctrl+R") + " clear",
		m.primaryActionKey(actionCopy, "Ctrl+Y") + " copy",
		m.primaryActionKey(actionHelp, "?") + " help",
		m.primaryActionKey(actionQuit, "Esc") + " quit",
	}
}

func (m *Model) statusContextSegments() []string {
	return []string{
		"lock " + m.session.Lock().String(),
		"editing " + m.focusedField().String(),
	}
}
