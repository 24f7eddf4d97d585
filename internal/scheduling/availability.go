package scheduling

import "clinic-appointment-service/internal/domain/entity"

// SlotPolicy configures how occupied slots are determined.
//
// The zero value matches the clinic's historical behavior: a cancelled
// appointment keeps occupying its slot until the record is deleted. Setting
// CancelledFreesSlot releases cancelled slots for rebooking.
type SlotPolicy struct {
	CancelledFreesSlot bool
}

// IsSlotAvailable reports whether the (date, time) slot is free within the
// given appointment snapshot. Both candidate and stored values are compared
// in canonical form, so any representation of the same slot collides.
//
// This is an optimistic client-side check only; the database carries a
// unique index on (date, time) as the authoritative guard.
func IsSlotAvailable(appointments []entity.Appointment, date, timeOfDay string, policy SlotPolicy) bool {
	dateStr := NormalizeDate(date)
	timeStr := NormalizeTime(timeOfDay)

	for _, apt := range appointments {
		if policy.CancelledFreesSlot && apt.IsCancelled() {
			continue
		}
		if NormalizeDate(apt.Date) == dateStr && NormalizeTime(apt.Time) == timeStr {
			return false
		}
	}
	return true
}
