package repository

import (
	"clinic-appointment-service/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentTypeRepository interface {
	Create(db *gorm.DB, appointmentType *entity.AppointmentType) error
	FindByID(db *gorm.DB, id int) (*entity.AppointmentType, error)
	FindByValue(db *gorm.DB, value string) (*entity.AppointmentType, error)
	FindAll(db *gorm.DB) ([]entity.AppointmentType, error)
	Update(db *gorm.DB, appointmentType *entity.AppointmentType) error
	Delete(db *gorm.DB, id int) error
}
