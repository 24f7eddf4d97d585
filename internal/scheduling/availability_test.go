package scheduling

import (
	"testing"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestIsSlotAvailable(t *testing.T) {
	appointments := []entity.Appointment{
		{Date: "2025-06-10", Time: "09:00", Status: entity.AppointmentStatusPlanned},
	}

	assert.False(t, IsSlotAvailable(appointments, "2025-06-10", "09:00", SlotPolicy{}))
	assert.True(t, IsSlotAvailable(appointments, "2025-06-10", "09:30", SlotPolicy{}))
	assert.True(t, IsSlotAvailable(appointments, "2025-06-11", "09:00", SlotPolicy{}))
}

// Two representations of the same date/time must collide after
// normalization or double-booking prevention breaks.
func TestIsSlotAvailableNormalizesBeforeComparing(t *testing.T) {
	appointments := []entity.Appointment{
		{Date: "2025-06-10", Time: "9:00", Status: entity.AppointmentStatusPlanned},
	}

	assert.False(t, IsSlotAvailable(appointments, "2025-06-10", "09:00", SlotPolicy{}))
	assert.False(t, IsSlotAvailable(appointments, "2025-06-10T00:00:00Z", "09:00:00", SlotPolicy{}))
}

func TestIsSlotAvailableCancelledPolicy(t *testing.T) {
	appointments := []entity.Appointment{
		{Date: "2025-06-10", Time: "09:00", Status: entity.AppointmentStatusCancelled},
	}

	// Historical behavior: cancelled still occupies the slot.
	assert.False(t, IsSlotAvailable(appointments, "2025-06-10", "09:00", SlotPolicy{}))

	// Relaxed policy frees it for rebooking.
	assert.True(t, IsSlotAvailable(appointments, "2025-06-10", "09:00", SlotPolicy{CancelledFreesSlot: true}))
}
