package scheduling

import (
	"strings"

	"clinic-appointment-service/internal/domain/entity"
)

// NormalizeName trims a free-text patient name to its canonical stored form.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// MatchPatientByName looks a free-text name up in the roster,
// case-insensitively after trimming. Returns nil when no patient matches —
// the caller must then create the record before (or alongside) the
// appointment insert, which is the only thing keeping the roster from
// fragmenting: appointments reference patients by name, not by foreign key.
func MatchPatientByName(patients []entity.Patient, name string) *entity.Patient {
	trimmed := NormalizeName(name)
	if trimmed == "" {
		return nil
	}

	for i := range patients {
		if strings.EqualFold(patients[i].Name, trimmed) {
			return &patients[i]
		}
	}
	return nil
}
