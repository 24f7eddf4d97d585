package usecase

import (
	"context"
	"errors"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentTypeNotFound = errors.New("appointment type not found")
	ErrAppointmentTypeExists   = errors.New("appointment type already exists")
)

type AppointmentTypeUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error)
	GetAll(ctx context.Context) (*dto.AppointmentTypeListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.AppointmentTypeResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error)
	Delete(ctx context.Context, id int) error
}

type appointmentTypeUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	typeRepo     repository.AppointmentTypeRepository
	auditService service.AuditService
}

func NewAppointmentTypeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	typeRepo repository.AppointmentTypeRepository,
	auditService service.AuditService,
) AppointmentTypeUsecase {
	return &appointmentTypeUsecase{
		db:           db,
		log:          log,
		typeRepo:     typeRepo,
		auditService: auditService,
	}
}

func (u *appointmentTypeUsecase) Create(ctx context.Context, req *dto.CreateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error) {
	existing, err := u.typeRepo.FindByValue(u.db.WithContext(ctx), req.Value)
	if err != nil {
		u.log.Warnf("Failed to look up appointment type %q: %+v", req.Value, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAppointmentTypeExists
	}

	appointmentType := &entity.AppointmentType{
		Value:           req.Value,
		DurationMinutes: req.DurationMinutes,
		Color:           req.Color,
		Icon:            req.Icon,
	}

	if err := u.typeRepo.Create(u.db.WithContext(ctx), appointmentType); err != nil {
		if isDuplicateKeyError(err, "value") {
			return nil, ErrAppointmentTypeExists
		}
		u.log.Warnf("Failed to create appointment type: %+v", err)
		return nil, err
	}

	return converter.AppointmentTypeToResponse(appointmentType), nil
}

func (u *appointmentTypeUsecase) GetAll(ctx context.Context) (*dto.AppointmentTypeListResponse, error) {
	appointmentTypes, err := u.typeRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointment types: %+v", err)
		return nil, err
	}

	return &dto.AppointmentTypeListResponse{
		AppointmentTypes: converter.AppointmentTypesToResponses(appointmentTypes),
		Total:            len(appointmentTypes),
	}, nil
}

func (u *appointmentTypeUsecase) GetByID(ctx context.Context, id int) (*dto.AppointmentTypeResponse, error) {
	appointmentType, err := u.typeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment type %d: %+v", id, err)
		return nil, err
	}
	if appointmentType == nil {
		return nil, ErrAppointmentTypeNotFound
	}

	return converter.AppointmentTypeToResponse(appointmentType), nil
}

// Update changes a catalog entry. Duration changes apply to future
// bookings only, existing appointments keep the duration they were booked
// with.
func (u *appointmentTypeUsecase) Update(ctx context.Context, id int, req *dto.UpdateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error) {
	appointmentType, err := u.typeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment type %d: %+v", id, err)
		return nil, err
	}
	if appointmentType == nil {
		return nil, ErrAppointmentTypeNotFound
	}

	oldValue := *appointmentType

	appointmentType.Value = req.Value
	appointmentType.DurationMinutes = req.DurationMinutes
	appointmentType.Color = req.Color
	appointmentType.Icon = req.Icon

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.typeRepo.Update(tx, appointmentType); err != nil {
		if isDuplicateKeyError(err, "value") {
			return nil, ErrAppointmentTypeExists
		}
		u.log.Warnf("Failed to update appointment type %d: %+v", id, err)
		return nil, err
	}

	userID := auditUserID(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, userID, entity.AuditActionAppointmentTypeSet, "appointment_type", appointmentType.Value, &oldValue, appointmentType); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentTypeToResponse(appointmentType), nil
}

func (u *appointmentTypeUsecase) Delete(ctx context.Context, id int) error {
	appointmentType, err := u.typeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment type %d: %+v", id, err)
		return err
	}
	if appointmentType == nil {
		return ErrAppointmentTypeNotFound
	}

	if err := u.typeRepo.Delete(u.db.WithContext(ctx), id); err != nil {
		u.log.Warnf("Failed to delete appointment type %d: %+v", id, err)
		return err
	}

	return nil
}
