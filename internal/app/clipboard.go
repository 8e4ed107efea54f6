package app

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/copteruni/rulecalc/internal/solver"
)

// copySummaryToClipboard copies a one-line summary of the three fields and
// the 1:1 rule status to the system clipboard.
func (m *Model) copySummaryToClipboard() {
	if solver.ReadObservations(fieldAdapter{m: m}).ValidCount() == 0 {
		m.status = "Nothing to copy"
		return
	}
	summary := m.resultSummary()
	if err := clipboard.WriteAll(summary); err != nil {
		m.setStatusError("Clipboard copy failed", err)
		return
	}
	m.status = "Copied result"
}

// resultSummary formats the current fields, e.g.
// "angle 45.00°, height 12.00 m, distance 9.50 m: 1:1 rule violated by 2.50 m".
func (m *Model) resultSummary() string {
	value := func(f solver.Field) string {
		n, ok := solver.ParseValue(m.FieldText(f)).Get()
		if !ok {
			return "–"
		}
		sep := " "
		if f == solver.Angle {
			sep = ""
		}
		return solver.FormatValue(n) + sep + f.Unit()
	}
	head := fmt.Sprintf("angle %s, height %s, distance %s",
		value(solver.Angle), value(solver.Height), value(solver.Distance))

	switch m.compliance.Kind {
	case solver.Compliant:
		return head + ": 1:1 rule satisfied"
	case solver.Violation:
		return head + ": 1:1 rule violated by " + m.compliance.DeficitText()
	}
	return head
}
