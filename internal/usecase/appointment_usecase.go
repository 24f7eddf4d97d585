package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/delivery/http/middleware"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/internal/scheduling"
	"clinic-appointment-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotTaken           = errors.New("slot is already taken")
	ErrPatientNameRequired = errors.New("patient name is required for patient appointments")
	ErrInvalidDate         = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime         = errors.New("invalid time format, use HH:MM")
	ErrInvalidDuration     = errors.New("end time must be after start time")
	ErrUnknownStatus       = errors.New("unknown appointment status")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	GetDaySchedule(ctx context.Context, date string) (*dto.DayScheduleResponse, error)
	GetWeekSchedule(ctx context.Context, date string) (*dto.WeekScheduleResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	typeRepo        repository.AppointmentTypeRepository
	slotService     *service.SlotReservationService
	auditService    service.AuditService

	policy          scheduling.SlotPolicy
	defaultDuration int
	workingHours    []string
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	typeRepo repository.AppointmentTypeRepository,
	slotService *service.SlotReservationService,
	auditService service.AuditService,
	policy scheduling.SlotPolicy,
	defaultDuration int,
	workingHours []string,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		typeRepo:        typeRepo,
		slotService:     slotService,
		auditService:    auditService,
		policy:          policy,
		defaultDuration: defaultDuration,
		workingHours:    workingHours,
	}
}

// normalizeSlot validates and canonicalizes the requested date and time.
func normalizeSlot(date, timeOfDay string) (string, string, error) {
	normalizedDate := scheduling.NormalizeDate(date)
	if _, err := time.Parse("2006-01-02", normalizedDate); err != nil {
		return "", "", ErrInvalidDate
	}

	normalizedTime := scheduling.NormalizeTime(timeOfDay)
	if _, err := time.Parse("15:04", normalizedTime); err != nil {
		return "", "", ErrInvalidTime
	}

	return normalizedDate, normalizedTime, nil
}

// resolveDuration picks the appointment length. An explicit end time wins,
// then an explicit minute count, then the duration configured for the
// appointment type, then the clinic default.
func (u *appointmentUsecase) resolveDuration(ctx context.Context, startTime, endTime string, minutes int, appointmentType string) (int, error) {
	if endTime != "" {
		normalizedEnd := scheduling.NormalizeTime(endTime)
		if _, err := time.Parse("15:04", normalizedEnd); err != nil {
			return 0, ErrInvalidTime
		}
		duration, err := scheduling.DurationBetween(startTime, normalizedEnd)
		if err != nil {
			return 0, ErrInvalidDuration
		}
		return duration, nil
	}

	if minutes > 0 {
		return minutes, nil
	}

	types, err := u.typeRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load appointment types: %+v", err)
		return 0, err
	}

	return scheduling.DurationForType(converter.DurationTable(types), appointmentType, u.defaultDuration), nil
}

// CreateAppointment books a slot with a Redis-first reservation flow.
//
// Flow:
// 1. Validate and canonicalize the requested slot
// 2. Optimistic availability check against the day's appointments
// 3. Reserve the slot in Redis (serializes racing writers)
// 4. Insert appointment + reconcile patient roster in one DB transaction
// 5. If DB fails -> compensate: release the Redis reservation
// 6. Confirm the reservation with the persisted appointment id
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	isPatientAppointment := req.IsPatientAppointment == nil || *req.IsPatientAppointment

	patientName := scheduling.NormalizeName(req.PatientName)
	if isPatientAppointment && patientName == "" {
		return nil, ErrPatientNameRequired
	}

	date, timeOfDay, err := normalizeSlot(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	duration, err := u.resolveDuration(ctx, timeOfDay, req.EndTime, req.DurationMinutes, req.Type)
	if err != nil {
		return nil, err
	}

	// Step 2: optimistic precheck, cheap rejection before touching Redis
	dayAppointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), date)
	if err != nil {
		u.log.Warnf("Failed to load appointments for %s: %+v", date, err)
		return nil, err
	}
	if !scheduling.IsSlotAvailable(dayAppointments, date, timeOfDay, u.policy) {
		return nil, ErrSlotTaken
	}

	// Step 3: Redis reservation, the critical section for concurrent bookings
	reservationOwner := uuid.New().String()
	if err := u.slotService.Reserve(ctx, date, timeOfDay, reservationOwner); err != nil {
		if errors.Is(err, service.ErrSlotReserved) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed Redis slot reservation for %s %s: %+v", date, timeOfDay, err)
		return nil, err
	}

	appointment := &entity.Appointment{
		Date:                 date,
		Time:                 timeOfDay,
		DurationMinutes:      duration,
		PatientName:          patientName,
		IsPatientAppointment: isPatientAppointment,
		Phone:                req.Phone,
		Type:                 req.Type,
		Notes:                req.Notes,
	}
	appointment.SetStatus(entity.AppointmentStatusPlanned)

	// Step 4: single transaction for the insert, roster reconciliation and
	// the audit entry
	if err := u.insertAppointment(ctx, appointment, isPatientAppointment); err != nil {
		u.releaseReservation(date, timeOfDay, reservationOwner)
		return nil, err
	}

	// Step 6: pin the reservation to the persisted row
	if err := u.slotService.Confirm(ctx, date, timeOfDay, appointment.ID.String()); err != nil {
		// Non-fatal: the pending reservation expires and the startup sync
		// rebuilds the key from the database.
		u.log.Warnf("Failed to confirm slot reservation for %s %s (non-fatal): %+v", date, timeOfDay, err)
	}

	u.log.Infof("Appointment created: id=%s, slot=%s %s, patient=%s", appointment.ID, date, timeOfDay, patientName)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) insertAppointment(ctx context.Context, appointment *entity.Appointment, reconcile bool) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		// The unique index on (date, time) is the last line of defense
		// against writers that raced past the Redis reservation.
		if isDuplicateKeyError(err, "idx_appointments_slot") {
			return ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return err
	}

	if reconcile {
		if err := u.reconcilePatient(tx, appointment.PatientName, appointment.Phone); err != nil {
			return err
		}
	}

	userID := auditUserID(ctx)
	if err := u.auditService.LogCreate(ctx, tx, userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), appointment); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		if isDuplicateKeyError(err, "idx_appointments_slot") {
			return ErrSlotTaken
		}
		return err
	}

	return nil
}

// reconcilePatient ensures the booked name exists in the patient roster.
// Matching is case-insensitive so "ayşe yılmaz" does not fork a second
// record next to "Ayşe Yılmaz".
func (u *appointmentUsecase) reconcilePatient(tx *gorm.DB, patientName, phone string) error {
	existing, err := u.patientRepo.FindByNameInsensitive(tx, patientName)
	if err != nil {
		u.log.Warnf("Failed to look up patient %q: %+v", patientName, err)
		return err
	}
	if existing != nil {
		return nil
	}

	patient := &entity.Patient{
		Name:  patientName,
		Phone: phone,
	}
	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient %q: %+v", patientName, err)
		return err
	}

	return nil
}

func (u *appointmentUsecase) releaseReservation(date, timeOfDay, owner string) {
	// Detached context: the request context may already be cancelled.
	releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := u.slotService.Release(releaseCtx, date, timeOfDay, owner); err != nil {
		u.log.Errorf("Failed to release slot reservation for %s %s: %+v", date, timeOfDay, err)
	}
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	if filter != nil {
		if filter.StartDate != "" {
			filter.StartDate = scheduling.NormalizeDate(filter.StartDate)
		}
		if filter.EndDate != "" {
			filter.EndDate = scheduling.NormalizeDate(filter.EndDate)
		}
	}

	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// GetDaySchedule returns the day's appointments plus the bookable slot grid
// with per-slot availability.
func (u *appointmentUsecase) GetDaySchedule(ctx context.Context, date string) (*dto.DayScheduleResponse, error) {
	normalizedDate := scheduling.NormalizeDate(date)
	if _, err := time.Parse("2006-01-02", normalizedDate); err != nil {
		return nil, ErrInvalidDate
	}

	appointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), normalizedDate)
	if err != nil {
		u.log.Warnf("Failed to load appointments for %s: %+v", normalizedDate, err)
		return nil, err
	}

	slots := make([]dto.SlotResponse, len(u.workingHours))
	for i, slot := range u.workingHours {
		slots[i] = dto.SlotResponse{
			Time:      slot,
			Available: scheduling.IsSlotAvailable(appointments, normalizedDate, slot, u.policy),
		}
	}

	return &dto.DayScheduleResponse{
		Date:         normalizedDate,
		Slots:        slots,
		Appointments: converter.AppointmentsToResponses(appointments),
	}, nil
}

// GetWeekSchedule returns the Monday-to-Sunday week containing the given
// date, one bucket per day.
func (u *appointmentUsecase) GetWeekSchedule(ctx context.Context, date string) (*dto.WeekScheduleResponse, error) {
	normalizedDate := scheduling.NormalizeDate(date)
	base, err := time.Parse("2006-01-02", normalizedDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	week := scheduling.WeekDates(base)
	startDate := scheduling.DateString(week[0])
	endDate := scheduling.DateString(week[6])

	appointments, err := u.appointmentRepo.FindByDateRange(u.db.WithContext(ctx), startDate, endDate)
	if err != nil {
		u.log.Warnf("Failed to load appointments for week %s..%s: %+v", startDate, endDate, err)
		return nil, err
	}

	byDate := make(map[string][]entity.Appointment, len(week))
	for _, appointment := range appointments {
		byDate[appointment.Date] = append(byDate[appointment.Date], appointment)
	}

	days := make([]dto.WeekDayResponse, len(week))
	for i, day := range week {
		dayDate := scheduling.DateString(day)
		days[i] = dto.WeekDayResponse{
			Date:         dayDate,
			Appointments: converter.AppointmentsToResponses(byDate[dayDate]),
		}
	}

	today := scheduling.DateString(time.Now())
	return &dto.WeekScheduleResponse{
		Days:       days,
		TodayCount: len(byDate[today]),
		WeekCount:  len(appointments),
	}, nil
}

// UpdateAppointment reschedules or edits an appointment. A slot change runs
// the same reserve-insert-confirm flow as a fresh booking, then releases the
// old slot.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	patientName := scheduling.NormalizeName(req.PatientName)
	if appointment.IsPatientAppointment && patientName == "" {
		return nil, ErrPatientNameRequired
	}

	date, timeOfDay, err := normalizeSlot(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	duration, err := u.resolveDuration(ctx, timeOfDay, req.EndTime, req.DurationMinutes, req.Type)
	if err != nil {
		return nil, err
	}

	oldDate, oldTime := appointment.Date, appointment.Time
	slotChanged := date != oldDate || timeOfDay != oldTime

	reservationOwner := uuid.New().String()
	if slotChanged {
		dayAppointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), date)
		if err != nil {
			u.log.Warnf("Failed to load appointments for %s: %+v", date, err)
			return nil, err
		}
		if !scheduling.IsSlotAvailable(dayAppointments, date, timeOfDay, u.policy) {
			return nil, ErrSlotTaken
		}

		if err := u.slotService.Reserve(ctx, date, timeOfDay, reservationOwner); err != nil {
			if errors.Is(err, service.ErrSlotReserved) {
				return nil, ErrSlotTaken
			}
			u.log.Warnf("Failed Redis slot reservation for %s %s: %+v", date, timeOfDay, err)
			return nil, err
		}
	}

	oldValue := *appointment

	appointment.Date = date
	appointment.Time = timeOfDay
	appointment.DurationMinutes = duration
	appointment.PatientName = patientName
	appointment.Phone = req.Phone
	appointment.Type = req.Type
	appointment.Notes = req.Notes

	if err := u.persistUpdate(ctx, appointment, &oldValue, entity.AuditActionAppointmentUpdate); err != nil {
		if slotChanged {
			u.releaseReservation(date, timeOfDay, reservationOwner)
		}
		return nil, err
	}

	if slotChanged {
		if err := u.slotService.Confirm(ctx, date, timeOfDay, appointment.ID.String()); err != nil {
			u.log.Warnf("Failed to confirm slot reservation for %s %s (non-fatal): %+v", date, timeOfDay, err)
		}
		u.releaseReservation(oldDate, oldTime, appointment.ID.String())
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointmentStatus transitions the appointment lifecycle state. The
// Completed mirror follows the status. Whether a cancelled appointment
// frees its slot depends on the clinic policy.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	status := entity.AppointmentStatus(req.Status)
	if !entity.ValidStatus(status) {
		return nil, ErrUnknownStatus
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := *appointment
	appointment.SetStatus(status)

	if err := u.persistUpdate(ctx, appointment, &oldValue, entity.AuditActionAppointmentStatus); err != nil {
		return nil, err
	}

	if appointment.IsCancelled() && u.policy.CancelledFreesSlot {
		u.releaseReservation(appointment.Date, appointment.Time, appointment.ID.String())
	}

	u.log.Infof("Appointment status updated: id=%s, status=%s", id, status)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) persistUpdate(ctx context.Context, appointment, oldValue *entity.Appointment, action string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "idx_appointments_slot") {
			return ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment %s: %+v", appointment.ID, err)
		return err
	}

	userID := auditUserID(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, userID, action, "appointment", appointment.ID.String(), oldValue, appointment); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		if isDuplicateKeyError(err, "idx_appointments_slot") {
			return ErrSlotTaken
		}
		return err
	}

	return nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}

	userID := auditUserID(ctx)
	if err := u.auditService.LogDelete(ctx, tx, userID, entity.AuditActionAppointmentDelete, "appointment", id.String(), appointment); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.releaseReservation(appointment.Date, appointment.Time, appointment.ID.String())

	u.log.Infof("Appointment deleted: id=%s, slot=%s %s", id, appointment.Date, appointment.Time)
	return nil
}

// auditUserID extracts the acting staff user from the request context.
// Unauthenticated paths (none today) log with a nil user.
func auditUserID(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}
