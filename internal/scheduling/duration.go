package scheduling

import "errors"

// ErrInvalidTimeRange is returned when an end time is not after its start
// time. A zero or negative duration must never be persisted.
var ErrInvalidTimeRange = errors.New("end time must be after start time")

// DurationForType resolves an appointment duration from the type catalog,
// falling back to fallbackMinutes when the type is unknown.
func DurationForType(durations map[string]int, typ string, fallbackMinutes int) int {
	if d, ok := durations[typ]; ok && d > 0 {
		return d
	}
	return fallbackMinutes
}

// DurationBetween computes the duration in minutes between two times of day.
// Inputs are normalized before the subtraction. Rejects end <= start rather
// than clamping.
func DurationBetween(start, end string) (int, error) {
	startMin := TimeToMinutes(start)
	endMin := TimeToMinutes(end)

	if endMin <= startMin {
		return 0, ErrInvalidTimeRange
	}
	return endMin - startMin, nil
}
