package scheduling

import (
	"testing"
	"time"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryFor(t *testing.T) {
	appointments := []entity.Appointment{
		{Date: "2025-03-01", PatientName: "Ayşe Yılmaz"},
		{Date: "2025-06-01", PatientName: "Ayşe Yılmaz"},
		{Date: "2025-05-01", PatientName: "Fatma Demir"},
		{Date: "2025-04-01", PatientName: "Ayşe Yılmaz"},
	}

	history := HistoryFor(appointments, "Ayşe Yılmaz")
	require.Len(t, history, 3)
	assert.Equal(t, "2025-06-01", history[0].Date)
	assert.Equal(t, "2025-04-01", history[1].Date)
	assert.Equal(t, "2025-03-01", history[2].Date)

	assert.Empty(t, HistoryFor(appointments, "Zeynep Kaya"))
}

func TestPatientStats(t *testing.T) {
	today := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	history := []entity.Appointment{
		{Date: "2025-05-01", Completed: true},
		{Date: "2025-06-10", Completed: false}, // today counts as upcoming
		{Date: "2025-06-20", Completed: false},
		{Date: "2025-04-01", Completed: false}, // past and not completed: not upcoming
	}

	stats := PatientStats(history, today)
	assert.Equal(t, "2025-06-20", stats.LastVisit)
	assert.Equal(t, 4, stats.TotalVisits)
	assert.Equal(t, 2, stats.Upcoming)
}

func TestPatientStatsEmptyHistory(t *testing.T) {
	stats := PatientStats(nil, time.Now())
	assert.Empty(t, stats.LastVisit)
	assert.Zero(t, stats.TotalVisits)
	assert.Zero(t, stats.Upcoming)
}

func TestMostRecent(t *testing.T) {
	assert.Nil(t, MostRecent(nil))

	history := []entity.Appointment{
		{Date: "2025-01-15"},
		{Date: "2025-06-01"},
		{Date: "2025-03-10"},
	}
	latest := MostRecent(history)
	require.NotNil(t, latest)
	assert.Equal(t, "2025-06-01", latest.Date)
}
