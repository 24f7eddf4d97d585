package scheduling

import (
	"testing"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPatientByName(t *testing.T) {
	roster := []entity.Patient{
		{Name: "Ayşe Yılmaz"},
		{Name: "Fatma Demir"},
	}

	t.Run("trims and matches case-insensitively", func(t *testing.T) {
		match := MatchPatientByName(roster, " ayşe Yılmaz ")
		require.NotNil(t, match)
		assert.Equal(t, "Ayşe Yılmaz", match.Name)
	})

	t.Run("no match for an unknown name", func(t *testing.T) {
		assert.Nil(t, MatchPatientByName(roster, "Zeynep Kaya"))
	})

	t.Run("different spellings stay different patients", func(t *testing.T) {
		assert.Nil(t, MatchPatientByName(roster, "Ayse Yilmaz"))
	})

	t.Run("blank name never matches", func(t *testing.T) {
		assert.Nil(t, MatchPatientByName(roster, "   "))
	})
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "ayşe Yılmaz", NormalizeName(" ayşe Yılmaz ")) // trim only, case kept
	assert.Equal(t, "Fatma Demir", NormalizeName("  Fatma Demir  "))
}
