package scheduling

import (
	"sort"
	"time"

	"clinic-appointment-service/internal/domain/entity"
)

// HistoryFor returns the patient's appointments, most recent date first.
// Matching is by exact canonical name.
func HistoryFor(appointments []entity.Appointment, patientName string) []entity.Appointment {
	var history []entity.Appointment
	for _, apt := range appointments {
		if apt.PatientName == patientName {
			history = append(history, apt)
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return NormalizeDate(history[i].Date) > NormalizeDate(history[j].Date)
	})
	return history
}

// Stats are the derived per-patient figures shown in the roster. They are
// computed on demand from the appointment snapshot, never stored.
type Stats struct {
	LastVisit   string // YYYY-MM-DD, empty when the patient never visited
	TotalVisits int
	Upcoming    int
}

// PatientStats derives the roster figures from a patient's history.
// Upcoming counts appointments that are not completed and fall on or after
// today.
func PatientStats(history []entity.Appointment, today time.Time) Stats {
	todayStr := DateString(today)

	stats := Stats{TotalVisits: len(history)}
	for _, apt := range history {
		date := NormalizeDate(apt.Date)
		if date > stats.LastVisit {
			stats.LastVisit = date
		}
		if !apt.Completed && date >= todayStr {
			stats.Upcoming++
		}
	}
	return stats
}

// MostRecent returns the history record with the latest date, without
// assuming pre-sorted input. Returns nil for an empty history.
func MostRecent(history []entity.Appointment) *entity.Appointment {
	var latest *entity.Appointment
	for i := range history {
		if latest == nil || NormalizeDate(history[i].Date) > NormalizeDate(latest.Date) {
			latest = &history[i]
		}
	}
	return latest
}
