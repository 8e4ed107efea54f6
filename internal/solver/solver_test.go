package solver

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(angle, height, distance string) Observations {
	return Observations{
		Angle:    ParseValue(angle),
		Height:   ParseValue(height),
		Distance: ParseValue(distance),
	}
}

func TestOnFieldChangedTwoValid(t *testing.T) {
	tests := []struct {
		name    string
		changed Field
		in      Observations
		lock    LockMode
		want    Plan
	}{
		{
			name:    "distance from angle and height",
			changed: Height,
			in:      obs("45", "12", ""),
			lock:    AngleLocked,
			want:    Plan{Changed: Height, Solved: Distance, Text: "12.00", Status: Compliance{Kind: Compliant}},
		},
		{
			name:    "height from angle and distance",
			changed: Distance,
			in:      obs("30", "", "100"),
			lock:    AngleLocked,
			want:    Plan{Changed: Distance, Solved: Height, Text: "57.74", Status: Compliance{Kind: Compliant}},
		},
		{
			name:    "angle from height and distance",
			changed: Distance,
			in:      obs("", "10", "10"),
			lock:    HeightLocked,
			want:    Plan{Changed: Distance, Solved: Angle, Text: "45.00", Status: Compliance{Kind: Compliant}},
		},
		{
			name:    "missing height is locked",
			changed: Distance,
			in:      obs("30", "", "100"),
			lock:    HeightLocked,
			want:    Plan{Changed: Distance, Status: Compliance{Kind: Incomplete}},
		},
		{
			name:    "missing angle is locked",
			changed: Height,
			in:      obs("", "12", "9.5"),
			lock:    AngleLocked,
			want:    Plan{Changed: Height, Status: Compliance{Kind: Violation, Deficit: 2.5}},
		},
		{
			name:    "zero angle clears distance",
			changed: Angle,
			in:      obs("0", "12", ""),
			lock:    AngleLocked,
			want:    Plan{Changed: Angle, Solved: Distance, Text: "", Status: Compliance{Kind: Incomplete}},
		},
		{
			name:    "zero height and distance clears angle",
			changed: Distance,
			in:      obs("", "0", "0"),
			lock:    HeightLocked,
			want:    Plan{Changed: Distance, Solved: Angle, Text: "", Status: Compliance{Kind: Compliant}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OnFieldChanged(tt.changed, tt.in, tt.lock)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("plan mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOnFieldChangedAllValid(t *testing.T) {
	tests := []struct {
		name    string
		changed Field
		in      Observations
		lock    LockMode
		solved  Field
		text    string
	}{
		{"angle edit updates distance", Angle, obs("45", "20", "5"), AngleLocked, Distance, "20.00"},
		{"angle edit with height lock updates distance", Angle, obs("45", "20", "5"), HeightLocked, Distance, "20.00"},
		{"height edit updates distance", Height, obs("45", "30", "20"), AngleLocked, Distance, "30.00"},
		{"distance edit updates height", Distance, obs("45", "30", "20"), AngleLocked, Height, "20.00"},
		{"distance edit with height lock updates angle", Distance, obs("45", "10", "20"), HeightLocked, Angle, "26.57"},
		{"mode change writes nothing", NoField, obs("45", "10", "20"), HeightLocked, NoField, ""},
		{"degenerate angle edit writes nothing", Angle, obs("0", "10", "20"), AngleLocked, NoField, ""},
		{"degenerate angle height edit with angle lock", Height, obs("90", "10", "20"), AngleLocked, NoField, ""},
		{"degenerate angle height edit falls back to angle", Height, obs("90", "10", "20"), HeightLocked, Angle, "26.57"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OnFieldChanged(tt.changed, tt.in, tt.lock)
			assert.Equal(t, tt.changed, got.Changed)
			assert.Equal(t, tt.solved, got.Solved)
			assert.Equal(t, tt.text, got.Text)
		})
	}
}

func TestOnFieldChangedNeverWritesLockedOrEditedField(t *testing.T) {
	values := []string{"", "0", "15", "45", "89.9", "90", "10", "250", "-3", "abc"}
	for _, lock := range []LockMode{AngleLocked, HeightLocked} {
		for _, changed := range append(Fields(), NoField) {
			for _, a := range values {
				for _, h := range values {
					for _, d := range values {
						plan := OnFieldChanged(changed, obs(a, h, d), lock)
						if !plan.HasWrite() {
							continue
						}
						require.NotEqual(t, lock.Field(), plan.Solved,
							"lock=%s changed=%s a=%q h=%q d=%q", lock, changed, a, h, d)
						in := obs(a, h, d)
						if in.ValidCount() == 3 {
							require.NotEqual(t, changed, plan.Solved,
								"lock=%s changed=%s a=%q h=%q d=%q", lock, changed, a, h, d)
						}
					}
				}
			}
		}
	}
}

func TestAngleLockedHeightEditNeverTouchesAngle(t *testing.T) {
	for _, angle := range []string{"0", "10", "45", "80", "90"} {
		plan := OnFieldChanged(Height, obs(angle, "40", "25"), AngleLocked)
		assert.NotEqual(t, Angle, plan.Solved, "angle=%s", angle)
		if plan.HasWrite() {
			assert.Equal(t, Distance, plan.Solved, "angle=%s", angle)
		}
	}
}

func TestRoundTripAngleThroughDistance(t *testing.T) {
	for _, height := range []float64{100, 150, 400} {
		for angle := 1.0; angle < 90; angle += 2.5 {
			angleText := FormatValue(angle)
			first := OnFieldChanged(Height, obs(angleText, FormatValue(height), ""), AngleLocked)
			require.Equal(t, Distance, first.Solved)
			require.NotEmpty(t, first.Text)

			second := OnFieldChanged(Distance, obs("", FormatValue(height), first.Text), HeightLocked)
			require.Equal(t, Angle, second.Solved)
			got, ok := ParseValue(second.Text).Get()
			require.True(t, ok)
			assert.InDelta(t, angle, got, 0.01, "height=%v angle=%v", height, angle)
		}
	}
}

func TestNinetyDegreesClearsInsteadOfOverflowing(t *testing.T) {
	plan := OnFieldChanged(Angle, obs("90", "25", ""), AngleLocked)
	require.Equal(t, Distance, plan.Solved)
	assert.Empty(t, plan.Text)

	plan = OnFieldChanged(Angle, obs("90", "", "25"), HeightLocked)
	// Height is locked: nothing may be written.
	assert.False(t, plan.HasWrite())

	plan = OnFieldChanged(Angle, obs("90", "", "25"), AngleLocked)
	require.Equal(t, Height, plan.Solved)
	assert.Empty(t, plan.Text)
}

func TestOnlyAngleFilledIsIncomplete(t *testing.T) {
	plan := OnFieldChanged(Angle, obs("30", "", ""), AngleLocked)
	assert.False(t, plan.HasWrite())
	assert.Equal(t, Incomplete, plan.Status.Kind)
	assert.Empty(t, plan.Status.DeficitText())
}

func TestNegativeInputsAreNotClamped(t *testing.T) {
	plan := OnFieldChanged(Height, obs("45", "-10", ""), AngleLocked)
	assert.Equal(t, "-10.00", plan.Text)
	assert.Equal(t, Compliant, plan.Status.Kind)
}

func TestPlanStatusUsesWrittenValue(t *testing.T) {
	// distance = 12 / tan(60°) = 6.93 which is short of the height.
	plan := OnFieldChanged(Height, obs("60", "12", ""), AngleLocked)
	require.Equal(t, "6.93", plan.Text)
	assert.Equal(t, Violation, plan.Status.Kind)
	assert.Equal(t, "5.07 m", plan.Status.DeficitText())
}

func TestUsableTan(t *testing.T) {
	for _, angle := range []float64{0, 180, -180, 90, 270, 1e-9} {
		_, ok := usableTan(angle)
		assert.False(t, ok, "angle %v", angle)
	}
	for _, angle := range []float64{1, 45, 89, -30} {
		tan, ok := usableTan(angle)
		assert.True(t, ok, "angle %v", angle)
		assert.InDelta(t, math.Tan(angle*math.Pi/180), tan, 1e-12)
	}
}

func ExampleOnFieldChanged() {
	in := Observations{Angle: Some(45), Height: Some(12)}
	plan := OnFieldChanged(Height, in, AngleLocked)
	fmt.Println(plan.Solved, plan.Text, plan.Status.Kind)
	// Output: distance 12.00 ok
}
