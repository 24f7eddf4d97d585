package scheduling

import (
	"testing"
	"time"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

var riskNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func TestCalculateRiskEmptyHistory(t *testing.T) {
	result := CalculateRisk(nil, nil, riskNow)

	assert.Equal(t, 10, result.Score)
	assert.Equal(t, RiskLevelLow, result.Level)
}

// Six completed visits, the latest ten days ago, patient aged 45:
// base 20, no recency bonus, no no-shows, -10 for five-plus completed,
// +5 for five-plus records, +5 for age = 20.
func TestCalculateRiskEstablishedPatient(t *testing.T) {
	history := []entity.Appointment{
		{Date: "2025-05-31", Status: entity.AppointmentStatusCompleted},
		{Date: "2025-05-01", Status: entity.AppointmentStatusCompleted},
		{Date: "2025-04-01", Status: entity.AppointmentStatusCompleted},
		{Date: "2025-03-01", Status: entity.AppointmentStatusCompleted},
		{Date: "2025-02-01", Status: entity.AppointmentStatusCompleted},
		{Date: "2025-01-01", Status: entity.AppointmentStatusCompleted},
	}
	age := 45

	result := CalculateRisk(history, &age, riskNow)

	assert.Equal(t, 20, result.Score)
	assert.Equal(t, RiskLevelLow, result.Level)
}

// Three no-shows with the last visit 400 days back:
// base 20 + recency 40 + no-shows 45 = 105, clamped to 100.
func TestCalculateRiskClampsToHundred(t *testing.T) {
	history := []entity.Appointment{
		{Date: "2024-05-01", Status: entity.AppointmentStatusNoShow},
		{Date: "2024-04-01", Status: entity.AppointmentStatusNoShow},
		{Date: "2024-03-01", Status: entity.AppointmentStatusNoShow},
	}

	result := CalculateRisk(history, nil, riskNow)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, RiskLevelHigh, result.Level)
}

func TestCalculateRiskRecencyTiers(t *testing.T) {
	tests := []struct {
		lastDate string
		want     int
	}{
		{"2025-06-01", 20}, // 9 days: no bonus
		{"2025-02-01", 30}, // ~129 days: +10
		{"2024-11-01", 45}, // ~221 days: +25
		{"2024-05-01", 60}, // ~405 days: +40
	}

	for _, tt := range tests {
		history := []entity.Appointment{{Date: tt.lastDate, Status: entity.AppointmentStatusPlanned}}
		result := CalculateRisk(history, nil, riskNow)
		assert.Equal(t, tt.want, result.Score, "last visit %s", tt.lastDate)
	}
}

func TestCalculateRiskMarkers(t *testing.T) {
	recent := "2025-06-01"

	t.Run("operation in history", func(t *testing.T) {
		history := []entity.Appointment{
			{Date: recent, Type: "Operasyon Sonrası Kontrol", Status: entity.AppointmentStatusCompleted},
		}
		result := CalculateRisk(history, nil, riskNow)
		assert.Equal(t, 35, result.Score)
	})

	t.Run("high-risk note", func(t *testing.T) {
		history := []entity.Appointment{
			{Date: recent, Notes: "Yüksek Risk takibi gerekli", Status: entity.AppointmentStatusCompleted},
		}
		result := CalculateRisk(history, nil, riskNow)
		assert.Equal(t, 30, result.Score)
	})

	t.Run("markers only count once", func(t *testing.T) {
		history := []entity.Appointment{
			{Date: recent, Type: "operasyon", Status: entity.AppointmentStatusCompleted},
			{Date: "2025-05-01", Type: "Operasyon", Status: entity.AppointmentStatusCompleted},
		}
		result := CalculateRisk(history, nil, riskNow)
		assert.Equal(t, 35, result.Score)
	})
}

func TestCalculateRiskLevels(t *testing.T) {
	// Two no-shows, recent visit: 20 + 30 = 50 -> medium.
	history := []entity.Appointment{
		{Date: "2025-06-01", Status: entity.AppointmentStatusNoShow},
		{Date: "2025-05-20", Status: entity.AppointmentStatusNoShow},
	}
	result := CalculateRisk(history, nil, riskNow)
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, RiskLevelMedium, result.Level)
}

// The formula is order-independent: the most recent visit is found by a
// max-by-date reduction, not by position.
func TestCalculateRiskOrderIndependent(t *testing.T) {
	forward := []entity.Appointment{
		{Date: "2024-05-01", Status: entity.AppointmentStatusNoShow},
		{Date: "2025-06-01", Status: entity.AppointmentStatusCompleted},
		{Date: "2025-01-01", Status: entity.AppointmentStatusCompleted},
	}
	reversed := []entity.Appointment{forward[2], forward[1], forward[0]}

	assert.Equal(t, CalculateRisk(forward, nil, riskNow), CalculateRisk(reversed, nil, riskNow))
}
