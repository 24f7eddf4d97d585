package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetStatusKeepsCompletedMirror(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusPlanned}

	a.SetStatus(AppointmentStatusCompleted)
	assert.True(t, a.Completed)
	assert.True(t, a.IsCompleted())

	a.SetStatus(AppointmentStatusNoShow)
	assert.False(t, a.Completed)
	assert.True(t, a.IsNoShow())

	a.SetStatus(AppointmentStatusCancelled)
	assert.False(t, a.Completed)
	assert.True(t, a.IsCancelled())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(AppointmentStatusPlanned))
	assert.True(t, ValidStatus(AppointmentStatusCancelled))
	assert.False(t, ValidStatus("rescheduled"))
	assert.False(t, ValidStatus(""))
}
