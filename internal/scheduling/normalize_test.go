package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateString(t *testing.T) {
	d := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-03", DateString(d))
}

// A date constructed at local midnight must round-trip to the same string
// regardless of the host timezone offset sign.
func TestDateStringLocalMidnightRoundTrip(t *testing.T) {
	zones := []*time.Location{
		time.FixedZone("UTC-7", -7*3600),
		time.FixedZone("UTC+9", 9*3600),
		time.UTC,
	}

	for _, zone := range zones {
		midnight := time.Date(2025, 6, 10, 0, 0, 0, 0, zone)
		assert.Equal(t, "2025-06-10", DateString(midnight), "zone %s", zone)
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-06-10", "2025-06-10"},
		{"2025-6-3", "2025-06-03"},
		{"2025-06-10T00:00:00Z", "2025-06-10"},
		{"2025-06-10T14:30:00", "2025-06-10"},
		{"2025-06-10 09:30:00", "2025-06-10"},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDate(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeDateIdempotent(t *testing.T) {
	for _, in := range []string{"2025-06-10", "2025-6-3", "2025-06-10T00:00:00Z", "garbage"} {
		once := NormalizeDate(in)
		assert.Equal(t, once, NormalizeDate(once), "input %q", in)
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00", "09:00"},
		{"9:00", "09:00"},
		{"9:5", "09:05"},
		{"9", "09:00"},
		{"14:30:00", "14:30"},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTime(tt.in), "input %q", tt.in)
	}
}

func TestTimeMinutesRoundTrip(t *testing.T) {
	assert.Equal(t, 570, TimeToMinutes("09:30"))
	assert.Equal(t, 0, TimeToMinutes(""))
	assert.Equal(t, "09:30", MinutesToTime(570))
	assert.Equal(t, "00:05", MinutesToTime(5))
}

func TestWeekDatesStartsOnMonday(t *testing.T) {
	// 2025-06-11 is a Wednesday
	week := WeekDates(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2025-06-09", DateString(week[0]))
	assert.Equal(t, time.Monday, week[0].Weekday())
	assert.Equal(t, "2025-06-15", DateString(week[6]))

	// A Sunday belongs to the week that began the previous Monday.
	week = WeekDates(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-06-09", DateString(week[0]))
}
