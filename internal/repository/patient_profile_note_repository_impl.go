package repository

import (
	"errors"

	"clinic-appointment-service/internal/domain/entity"
	domainRepo "clinic-appointment-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientProfileNoteRepository struct{}

func NewPatientProfileNoteRepository() domainRepo.PatientProfileNoteRepository {
	return &patientProfileNoteRepository{}
}

// Upsert inserts or updates the note keyed by patient name.
func (r *patientProfileNoteRepository) Upsert(db *gorm.DB, note *entity.PatientProfileNote) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "patient_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone", "diagnosis", "notes", "updated_at"}),
	}).Create(note).Error
}

func (r *patientProfileNoteRepository) FindByPatientName(db *gorm.DB, patientName string) (*entity.PatientProfileNote, error) {
	var note entity.PatientProfileNote
	err := db.Where("patient_name = ?", patientName).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}
