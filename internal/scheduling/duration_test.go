package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationForType(t *testing.T) {
	durations := map[string]int{
		"Kontrol":     30,
		"Ultrason":    45,
		"İlk Muayene": 45,
		"Acil":        30,
	}

	assert.Equal(t, 45, DurationForType(durations, "Ultrason", 30))
	assert.Equal(t, 30, DurationForType(durations, "Kontrol", 30))
	assert.Equal(t, 30, DurationForType(durations, "unknown", 30))
	assert.Equal(t, 30, DurationForType(nil, "Kontrol", 30))
}

func TestDurationBetween(t *testing.T) {
	d, err := DurationBetween("09:00", "10:15")
	require.NoError(t, err)
	assert.Equal(t, 75, d)

	d, err = DurationBetween("9:00", "10:15:00")
	require.NoError(t, err)
	assert.Equal(t, 75, d)
}

func TestDurationBetweenRejectsNonPositive(t *testing.T) {
	_, err := DurationBetween("10:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = DurationBetween("10:00", "09:30")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
