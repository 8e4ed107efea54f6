package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportStatus(t *testing.T) {
	tests := []struct {
		name     string
		height   Value
		distance Value
		kind     ComplianceKind
		deficit  string
	}{
		{name: "height absent", height: None(), distance: Some(10), kind: Incomplete},
		{name: "distance absent", height: Some(10), distance: None(), kind: Incomplete},
		{name: "both absent", height: None(), distance: None(), kind: Incomplete},
		{name: "equal", height: Some(10), distance: Some(10), kind: Compliant},
		{name: "larger distance", height: Some(10), distance: Some(25), kind: Compliant},
		{name: "within tolerance", height: Some(10 + 5e-10), distance: Some(10), kind: Compliant},
		{name: "short", height: Some(12), distance: Some(9.5), kind: Violation, deficit: "2.50 m"},
		{name: "barely short", height: Some(10.004), distance: Some(10), kind: Violation, deficit: "0.00 m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReportStatus(tt.height, tt.distance)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.deficit, got.DeficitText())
		})
	}
}

func TestReportStatusViolationDeficitMatchesDifference(t *testing.T) {
	for h := 1.0; h <= 50; h += 3.25 {
		for d := 0.0; d < h; d += 1.5 {
			got := ReportStatus(Some(h), Some(d))
			if assert.Equal(t, Violation, got.Kind, "h=%v d=%v", h, d) {
				assert.Equal(t, FormatValue(h-d)+" m", got.DeficitText())
			}
		}
	}
}

func TestReportStatusCompliantWhenDistanceCoversHeight(t *testing.T) {
	for h := 0.0; h <= 50; h += 2.5 {
		for d := h; d <= h+20; d += 4 {
			assert.Equal(t, Compliant, ReportStatus(Some(h), Some(d)).Kind, "h=%v d=%v", h, d)
		}
	}
}
