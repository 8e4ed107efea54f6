// Package solver keeps camera angle, drone height and horizontal distance
// consistent under tan(angle) = height / distance and checks the 1:1 rule
// (distance must be at least the height).
//
// The solver is pure: OnFieldChanged takes the current observations and
// returns a Plan describing at most one field write plus the resulting
// compliance status. Callers that drive real input widgets wrap the solver
// in a Session, which reads through a ValueSource and applies plans to a
// ValueSink.
//
// Usage:
//
//	obs := solver.Observations{Angle: solver.Some(45), Height: solver.Some(12)}
//	plan := solver.OnFieldChanged(solver.Height, obs, solver.AngleLocked)
//	// plan.Solved == solver.Distance, plan.Text == "12.00"
package solver

import "math"

const (
	// minTangent and maxTangent bound the usable tangent range. Outside it
	// the angle is too close to 0° or 90° for the division to be meaningful.
	minTangent = 1e-8
	maxTangent = 1e8
)

// Plan is the result of one recomputation pass. Applying it writes Text
// into Solved (an empty Text clears the field) and then shows Status.
type Plan struct {
	// Changed is the field whose edit triggered the pass.
	Changed Field
	// Solved is the field to write, NoField when nothing is written.
	Solved Field
	Text   string
	// Status is the compliance after the write has been applied.
	Status Compliance
}

// HasWrite reports whether the plan writes a field.
func (p Plan) HasWrite() bool {
	return p.Solved != NoField
}

// Apply returns obs with the plan's write applied, reading the written
// text back the way an input field would.
func (p Plan) Apply(obs Observations) Observations {
	if !p.HasWrite() {
		return obs
	}
	return obs.With(p.Solved, ParseValue(p.Text))
}

// OnFieldChanged recomputes the triangle after changed was edited (or after
// a lock mode change when changed is NoField).
//
// With exactly two valid fields the third is computed unless it is locked.
// With all three valid the field that depends on the edit is updated,
// preferring distance, and never the locked field or the edited one. With
// fewer than two nothing is written. The status is refreshed in every case.
func OnFieldChanged(changed Field, obs Observations, lock LockMode) Plan {
	plan := solve(changed, obs, lock)
	plan.Changed = changed
	after := plan.Apply(obs)
	plan.Status = ReportStatus(after.Height, after.Distance)
	return plan
}

func solve(changed Field, obs Observations, lock LockMode) Plan {
	angle, aOK := obs.Angle.Get()
	height, hOK := obs.Height.Get()
	distance, dOK := obs.Distance.Get()

	switch {
	case aOK && hOK && !dOK && !lock.Locks(Distance):
		return write(Distance, distanceFrom(angle, height))
	case aOK && dOK && !hOK && !lock.Locks(Height):
		return write(Height, heightFrom(angle, distance))
	case hOK && dOK && !aOK && !lock.Locks(Angle):
		return write(Angle, angleFrom(height, distance))
	case !(aOK && hOK && dOK):
		return Plan{}
	}

	t, tOK := usableTan(angle)
	switch changed {
	case Angle:
		if tOK && !lock.Locks(Distance) {
			return write(Distance, height/t)
		}
		if tOK && !lock.Locks(Height) {
			return write(Height, distance*t)
		}
	case Height:
		if tOK && !lock.Locks(Distance) {
			return write(Distance, height/t)
		}
		if !lock.Locks(Angle) {
			return write(Angle, angleFrom(height, distance))
		}
	case Distance:
		if tOK && !lock.Locks(Height) {
			return write(Height, distance*t)
		}
		if !lock.Locks(Angle) {
			return write(Angle, angleFrom(height, distance))
		}
	}
	return Plan{}
}

// write builds a single-field plan. NaN marks a value that cannot be
// computed and clears the field.
func write(f Field, v float64) Plan {
	return Plan{Solved: f, Text: FormatValue(v)}
}

func distanceFrom(angle, height float64) float64 {
	t, ok := usableTan(angle)
	if !ok {
		return math.NaN()
	}
	return height / t
}

func heightFrom(angle, distance float64) float64 {
	t, ok := usableTan(angle)
	if !ok {
		return math.NaN()
	}
	return distance * t
}

func angleFrom(height, distance float64) float64 {
	return toDegrees(math.Atan(height / distance))
}

// usableTan returns tan(angleDeg) when it is finite and within the usable
// range.
func usableTan(angleDeg float64) (float64, bool) {
	t := math.Tan(toRadians(angleDeg))
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, false
	}
	if abs := math.Abs(t); abs < minTangent || abs > maxTangent {
		return 0, false
	}
	return t, true
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
