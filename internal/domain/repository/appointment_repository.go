package repository

import (
	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByDate(db *gorm.DB, date string) ([]entity.Appointment, error)
	FindByDateRange(db *gorm.DB, startDate, endDate string) ([]entity.Appointment, error)
	FindByPatientName(db *gorm.DB, patientName string) ([]entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
	Delete(db *gorm.DB, id uuid.UUID) error
	CountByPatientName(db *gorm.DB, patientName string) (int64, error)
	FindAllInBatches(db *gorm.DB, batchSize int, fn func(batch []entity.Appointment) error) error
}
