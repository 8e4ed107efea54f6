package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
)

// helpCache keeps the last rendered help text; glamour rendering is too
// slow to repeat on every frame.
type helpCache struct {
	width   int
	content string
}

// renderHelp draws the help overlay inside the full content area.
func (m *Model) renderHelp(width, height int) string {
	innerWidth := max(0, width-helpPane.GetHorizontalFrameSize())
	innerHeight := max(0, height-helpPane.GetVerticalFrameSize())
	if m.help.width != innerWidth || m.help.content == "" {
		m.help = helpCache{
			width:   innerWidth,
			content: renderMarkdown(m.helpMarkdown(time.Now().Year()), innerWidth),
		}
	}
	content := strings.TrimRight(m.help.content, "\n")
	return helpPane.Render(padBlock(content, innerWidth, innerHeight))
}

func (m *Model) helpMarkdown(year int) string {
	var b strings.Builder
	b.WriteString("# 1:1 Rule Calculator\n\n")
	b.WriteString("Enter any two of **camera angle**, **drone height** and **distance**. ")
	b.WriteString("The third value is computed from `tan(angle) = height / distance`.\n\n")
	b.WriteString("With all three filled, editing one field recomputes distance first, ")
	b.WriteString("or the other free field when distance cannot be updated.\n\n")
	b.WriteString("## Lock\n\n")
	b.WriteString("The locked field is never overwritten. Only angle or height can be locked.\n\n")
	b.WriteString("## 1:1 rule\n\n")
	b.WriteString("The horizontal distance must be at least the flight height. ")
	b.WriteString("When it is not, the missing distance is shown.\n\n")
	b.WriteString("## Keys\n\n")
	b.WriteString("| Action | Keys |\n|---|---|\n")
	rows := []struct {
		action string
		label  string
	}{
		{actionFocusNext, "Next field"},
		{actionFocusPrev, "Previous field"},
		{actionLockToggle, "Toggle lock"},
		{actionClear, "Clear all fields"},
		{actionCopy, "Copy result"},
		{actionHelp, "Toggle help"},
		{actionQuit, "Quit"},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", row.label, m.allActionKeys(row.action, "unbound"))
	}
	fmt.Fprintf(&b, "\n---\n\n© %d rulecalc\n", year)
	return b.String()
}

// renderMarkdown renders markdown for the terminal, falling back to the raw
// text when glamour fails.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		appLog.Warn("create markdown renderer", "error", err)
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		appLog.Warn("render markdown", "error", err)
		return content
	}
	return out
}
