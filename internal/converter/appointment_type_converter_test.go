package converter

import (
	"testing"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDurationTable(t *testing.T) {
	types := []entity.AppointmentType{
		{Value: "Kontrol", DurationMinutes: 30},
		{Value: "Ultrason", DurationMinutes: 45},
		{Value: "Acil", DurationMinutes: 30},
	}

	table := DurationTable(types)

	assert.Len(t, table, 3)
	assert.Equal(t, 30, table["Kontrol"])
	assert.Equal(t, 45, table["Ultrason"])
	assert.Equal(t, 30, table["Acil"])
}

func TestDurationTableEmpty(t *testing.T) {
	assert.Empty(t, DurationTable(nil))
}

func TestAppointmentTypeToResponseNil(t *testing.T) {
	assert.Nil(t, AppointmentTypeToResponse(nil))
}
