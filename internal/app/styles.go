package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

var (
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("62"))
	helpPane      = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("204"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusedLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	lockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	nokStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	nokValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func applyInputTheme(input *textinput.Model) {
	input.Prompt = "▸ "
	input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	input.PlaceholderStyle = mutedStyle
}
