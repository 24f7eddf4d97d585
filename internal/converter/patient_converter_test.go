package converter

import (
	"testing"
	"time"

	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientToResponseWithStats(t *testing.T) {
	dob := time.Date(1985, 3, 14, 0, 0, 0, 0, time.UTC)
	patient := &entity.Patient{
		ID:          uuid.New(),
		Name:        "Ayşe Yılmaz",
		Phone:       "+90 555 000 0000",
		DateOfBirth: &dob,
	}

	stats := scheduling.Stats{
		LastVisit:   "2025-05-02",
		TotalVisits: 4,
		Upcoming:    1,
	}

	response := PatientToResponseWithStats(patient, stats)
	require.NotNil(t, response)

	assert.Equal(t, "Ayşe Yılmaz", response.Name)
	assert.Equal(t, "1985-03-14", response.DateOfBirth)
	assert.Equal(t, "2025-05-02", response.LastVisit)
	assert.Equal(t, 4, response.TotalVisits)
	assert.Equal(t, 1, response.Upcoming)
}

func TestPatientToResponseWithStatsNil(t *testing.T) {
	assert.Nil(t, PatientToResponseWithStats(nil, scheduling.Stats{}))
}
