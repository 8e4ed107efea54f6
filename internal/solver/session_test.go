package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeForm stores field text the way an input widget would. When echo is
// set, every Write is dispatched back to the session as an input event.
type fakeForm struct {
	text     map[Field]string
	statuses []Compliance
	nested   []bool
	session  *Session
	echo     bool
}

func newFakeForm(angle, height, distance string) *fakeForm {
	return &fakeForm{text: map[Field]string{
		Angle:    angle,
		Height:   height,
		Distance: distance,
	}}
}

func (f *fakeForm) Read(field Field) Value {
	return ParseValue(f.text[field])
}

func (f *fakeForm) Write(field Field, text string) {
	f.text[field] = text
	if f.echo {
		_, ran := f.session.OnFieldChanged(field)
		f.nested = append(f.nested, ran)
	}
}

func (f *fakeForm) ShowStatus(c Compliance) {
	f.statuses = append(f.statuses, c)
}

func TestSessionAppliesPlan(t *testing.T) {
	form := newFakeForm("45", "12", "")
	s := NewSession(form, form, AngleLocked)

	plan, ran := s.OnFieldChanged(Height)
	require.True(t, ran)
	assert.Equal(t, Distance, plan.Solved)
	assert.Equal(t, "12.00", form.text[Distance])
	assert.Equal(t, "45", form.text[Angle])
	require.Len(t, form.statuses, 1)
	assert.Equal(t, Compliant, form.statuses[0].Kind)
}

func TestSessionSuppressesNestedSolve(t *testing.T) {
	form := newFakeForm("45", "30", "20")
	form.echo = true
	s := NewSession(form, form, AngleLocked)
	form.session = s

	plan, ran := s.OnFieldChanged(Height)
	require.True(t, ran)
	assert.Equal(t, Distance, plan.Solved)
	assert.Equal(t, "30.00", form.text[Distance])
	assert.Equal(t, "30", form.text[Height])

	// The echoed input event for the distance write must not run.
	assert.Equal(t, []bool{false}, form.nested)
	// Exactly one terminal status per external trigger.
	require.Len(t, form.statuses, 1)
	assert.Equal(t, Compliant, form.statuses[0].Kind)

	// The guard is released afterwards.
	_, ran = s.OnFieldChanged(Angle)
	assert.True(t, ran)
	assert.Len(t, form.statuses, 2)
}

func TestSessionSetLockRunsModeChange(t *testing.T) {
	form := newFakeForm("", "12", "9.5")
	s := NewSession(form, form, AngleLocked)

	// Angle is locked so the missing angle stays empty.
	plan, _ := s.OnFieldChanged(Distance)
	assert.False(t, plan.HasWrite())
	assert.Equal(t, "", form.text[Angle])
	assert.Equal(t, Violation, form.statuses[0].Kind)
	assert.Equal(t, "2.50 m", form.statuses[0].DeficitText())

	plan, ran := s.SetLock(HeightLocked)
	require.True(t, ran)
	assert.Equal(t, HeightLocked, s.Lock())
	assert.Equal(t, NoField, plan.Changed)
	assert.Equal(t, Angle, plan.Solved)
	assert.Equal(t, "51.63", form.text[Angle])
	assert.Len(t, form.statuses, 2)
}

func TestSessionRefreshDoesNotWrite(t *testing.T) {
	form := newFakeForm("30", "12", "")
	s := NewSession(form, form, AngleLocked)

	c := s.Refresh()
	assert.Equal(t, Incomplete, c.Kind)
	assert.Equal(t, "", form.text[Distance])
	assert.Len(t, form.statuses, 1)
}
