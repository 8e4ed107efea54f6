package solver

// ValueSource reads the current content of a field as a parsed value.
type ValueSource interface {
	Read(f Field) Value
}

// ValueSink receives the output of a recomputation pass.
type ValueSink interface {
	// Write replaces the text of f. An empty text clears it.
	Write(f Field, text string)
	// ShowStatus toggles the compliance indicators.
	ShowStatus(c Compliance)
}

// Session binds the solver to a pair of field adapters and a lock mode.
//
// A sink may dispatch its writes back as change notifications (a widget
// that fires an input event on programmatic updates). Such notifications
// arrive while the session is applying a plan and are suppressed, so each
// external trigger produces exactly one status report.
type Session struct {
	src  ValueSource
	sink ValueSink
	lock LockMode

	applying bool
}

// NewSession creates a session. The lock mode must already be resolved by
// the caller.
func NewSession(src ValueSource, sink ValueSink, lock LockMode) *Session {
	return &Session{src: src, sink: sink, lock: lock}
}

// Lock returns the current lock mode.
func (s *Session) Lock() LockMode {
	return s.lock
}

// SetLock changes the lock mode and re-runs the solver as a mode-change
// trigger.
func (s *Session) SetLock(lock LockMode) (Plan, bool) {
	s.lock = lock
	return s.OnFieldChanged(NoField)
}

// OnFieldChanged reads the fields, solves and applies the plan. The second
// result is false when the call was suppressed because another pass is
// being applied.
func (s *Session) OnFieldChanged(changed Field) (Plan, bool) {
	if s.applying {
		return Plan{}, false
	}
	plan := OnFieldChanged(changed, ReadObservations(s.src), s.lock)

	s.applying = true
	if plan.HasWrite() {
		s.sink.Write(plan.Solved, plan.Text)
	}
	s.applying = false

	s.sink.ShowStatus(plan.Status)
	return plan, true
}

// Refresh reports the status of the current fields without recomputing.
func (s *Session) Refresh() Compliance {
	c := ReportStatus(s.src.Read(Height), s.src.Read(Distance))
	s.sink.ShowStatus(c)
	return c
}
