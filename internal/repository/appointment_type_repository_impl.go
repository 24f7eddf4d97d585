package repository

import (
	"errors"

	"clinic-appointment-service/internal/domain/entity"
	domainRepo "clinic-appointment-service/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentTypeRepository struct{}

func NewAppointmentTypeRepository() domainRepo.AppointmentTypeRepository {
	return &appointmentTypeRepository{}
}

func (r *appointmentTypeRepository) Create(db *gorm.DB, appointmentType *entity.AppointmentType) error {
	return db.Create(appointmentType).Error
}

func (r *appointmentTypeRepository) FindByID(db *gorm.DB, id int) (*entity.AppointmentType, error) {
	var appointmentType entity.AppointmentType
	err := db.Where("id = ?", id).First(&appointmentType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointmentType, nil
}

func (r *appointmentTypeRepository) FindByValue(db *gorm.DB, value string) (*entity.AppointmentType, error) {
	var appointmentType entity.AppointmentType
	err := db.Where("value = ?", value).First(&appointmentType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointmentType, nil
}

func (r *appointmentTypeRepository) FindAll(db *gorm.DB) ([]entity.AppointmentType, error) {
	var appointmentTypes []entity.AppointmentType
	err := db.Order("id ASC").Find(&appointmentTypes).Error
	if err != nil {
		return nil, err
	}
	return appointmentTypes, nil
}

func (r *appointmentTypeRepository) Update(db *gorm.DB, appointmentType *entity.AppointmentType) error {
	return db.Save(appointmentType).Error
}

func (r *appointmentTypeRepository) Delete(db *gorm.DB, id int) error {
	return db.Where("id = ?", id).Delete(&entity.AppointmentType{}).Error
}
