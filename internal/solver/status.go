package solver

import "math"

// complianceTolerance absorbs rounding noise when comparing distance and
// height.
const complianceTolerance = 1e-9

// ComplianceKind is the outcome of the 1:1 rule check.
type ComplianceKind int

const (
	// Incomplete means height or distance is absent; nothing is shown.
	Incomplete ComplianceKind = iota
	Compliant
	Violation
)

func (k ComplianceKind) String() string {
	switch k {
	case Compliant:
		return "ok"
	case Violation:
		return "violation"
	}
	return "incomplete"
}

// Compliance reports whether distance >= height holds.
type Compliance struct {
	Kind ComplianceKind
	// Deficit is height - distance for a violation, zero otherwise.
	Deficit float64
}

// DeficitText is the shortfall with unit, e.g. "2.50 m". It is empty
// unless the rule is violated.
func (c Compliance) DeficitText() string {
	if c.Kind != Violation {
		return ""
	}
	return FormatValue(c.Deficit) + " m"
}

// ReportStatus checks the 1:1 rule for the given height and distance.
func ReportStatus(height, distance Value) Compliance {
	h, hOK := height.Get()
	d, dOK := distance.Get()
	if !hOK || !dOK {
		return Compliance{Kind: Incomplete}
	}
	if d-h >= -complianceTolerance {
		return Compliance{Kind: Compliant}
	}
	return Compliance{Kind: Violation, Deficit: math.Max(0, h-d)}
}
