package repository

import (
	"clinic-appointment-service/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientProfileNoteRepository interface {
	Upsert(db *gorm.DB, note *entity.PatientProfileNote) error
	FindByPatientName(db *gorm.DB, patientName string) (*entity.PatientProfileNote, error)
}
