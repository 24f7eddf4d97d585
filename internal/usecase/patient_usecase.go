package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/internal/scheduling"
	"clinic-appointment-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound        = errors.New("patient not found")
	ErrPatientNameEmpty       = errors.New("patient name is required")
	ErrPatientExists          = errors.New("a patient with this name already exists")
	ErrPatientHasAppointments = errors.New("patient still has appointments")
	ErrInvalidDateOfBirth     = errors.New("invalid date of birth, use YYYY-MM-DD")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
	GetPatientHistory(ctx context.Context, id uuid.UUID) (*dto.PatientHistoryResponse, error)
	UpsertProfileNote(ctx context.Context, id uuid.UUID, req *dto.UpsertProfileNoteRequest) (*dto.ProfileNoteResponse, error)
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	noteRepo        repository.PatientProfileNoteRepository
	auditService    service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	noteRepo repository.PatientProfileNoteRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		noteRepo:        noteRepo,
		auditService:    auditService,
	}
}

func parseDateOfBirth(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	dob, err := time.Parse("2006-01-02", scheduling.NormalizeDate(s))
	if err != nil {
		return nil, ErrInvalidDateOfBirth
	}
	return &dob, nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	name := scheduling.NormalizeName(req.Name)
	if name == "" {
		return nil, ErrPatientNameEmpty
	}

	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	// Name is the identity key, so a case-insensitive duplicate would fork
	// the appointment history between two records.
	existing, err := u.patientRepo.FindByNameInsensitive(u.db.WithContext(ctx), name)
	if err != nil {
		u.log.Warnf("Failed to look up patient %q: %+v", name, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPatientExists
	}

	patient := &entity.Patient{
		Name:        name,
		Phone:       req.Phone,
		Email:       req.Email,
		DateOfBirth: dob,
		Notes:       req.Notes,
	}
	patient.SetKVKKApproval(req.KVKKApproved, time.Now())

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	userID := auditUserID(ctx)
	if err := u.auditService.LogCreate(ctx, tx, userID, entity.AuditActionPatientCreate, "patient", patient.ID.String(), patient); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient created: id=%s, name=%s", patient.ID, patient.Name)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	history, err := u.appointmentRepo.FindByPatientName(u.db.WithContext(ctx), patient.Name)
	if err != nil {
		u.log.Warnf("Failed to load history for patient %s: %+v", id, err)
		return nil, err
	}

	stats := scheduling.PatientStats(history, time.Now())
	return converter.PatientToResponseWithStats(patient, stats), nil
}

// ListPatients returns the roster enriched with visit statistics, ordered
// by most recent visit first. Patients who never visited sort last, then
// alphabetically.
func (u *patientUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	// One appointment scan serves the whole roster instead of a query per
	// patient.
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), nil)
	if err != nil {
		u.log.Warnf("Failed to load appointments: %+v", err)
		return nil, err
	}

	now := time.Now()
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		history := scheduling.HistoryFor(appointments, patient.Name)
		stats := scheduling.PatientStats(history, now)
		responses[i] = *converter.PatientToResponseWithStats(&patients[i], stats)
	}

	sort.SliceStable(responses, func(i, j int) bool {
		a, b := responses[i], responses[j]
		if a.LastVisit != b.LastVisit {
			if a.LastVisit == "" {
				return false
			}
			if b.LastVisit == "" {
				return true
			}
			return a.LastVisit > b.LastVisit
		}
		return a.Name < b.Name
	})

	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	name := scheduling.NormalizeName(req.Name)
	if name == "" {
		return nil, ErrPatientNameEmpty
	}

	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	// Renaming must not collide with another roster entry.
	if !strings.EqualFold(name, patient.Name) {
		existing, err := u.patientRepo.FindByNameInsensitive(u.db.WithContext(ctx), name)
		if err != nil {
			u.log.Warnf("Failed to look up patient %q: %+v", name, err)
			return nil, err
		}
		if existing != nil && existing.ID != patient.ID {
			return nil, ErrPatientExists
		}
	}

	oldValue := *patient

	patient.Name = name
	patient.Phone = req.Phone
	patient.Email = req.Email
	patient.DateOfBirth = dob
	patient.Notes = req.Notes
	if req.KVKKApproved != patient.KVKKApproved {
		patient.SetKVKKApproval(req.KVKKApproved, time.Now())
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}

	userID := auditUserID(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, userID, entity.AuditActionPatientUpdate, "patient", patient.ID.String(), &oldValue, patient); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatient removes a roster entry. Patients with any appointment on
// record are protected, the history would be orphaned otherwise.
func (u *patientUsecase) DeletePatient(ctx context.Context, id uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	count, err := u.appointmentRepo.CountByPatientName(u.db.WithContext(ctx), patient.Name)
	if err != nil {
		u.log.Warnf("Failed to count appointments for patient %s: %+v", id, err)
		return err
	}
	if count > 0 {
		return ErrPatientHasAppointments
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete patient %s: %+v", id, err)
		return err
	}

	userID := auditUserID(ctx)
	if err := u.auditService.LogDelete(ctx, tx, userID, entity.AuditActionPatientDelete, "patient", id.String(), patient); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Patient deleted: id=%s, name=%s", id, patient.Name)
	return nil
}

// GetPatientHistory returns the appointment history newest-first plus the
// computed no-show risk and the profile note, when one exists.
func (u *patientUsecase) GetPatientHistory(ctx context.Context, id uuid.UUID) (*dto.PatientHistoryResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	history, err := u.appointmentRepo.FindByPatientName(u.db.WithContext(ctx), patient.Name)
	if err != nil {
		u.log.Warnf("Failed to load history for patient %s: %+v", id, err)
		return nil, err
	}

	now := time.Now()
	var agePtr *int
	if age, ok := patient.Age(now); ok {
		agePtr = &age
	}
	risk := scheduling.CalculateRisk(history, agePtr, now)

	note, err := u.noteRepo.FindByPatientName(u.db.WithContext(ctx), patient.Name)
	if err != nil {
		u.log.Warnf("Failed to load profile note for patient %s: %+v", id, err)
		return nil, err
	}

	stats := scheduling.PatientStats(history, now)
	return &dto.PatientHistoryResponse{
		Patient:     *converter.PatientToResponseWithStats(patient, stats),
		History:     converter.AppointmentsToResponses(history),
		Risk:        converter.RiskToResponse(risk),
		ProfileNote: converter.ProfileNoteToResponse(note),
	}, nil
}

// UpsertProfileNote writes the clinical profile note keyed by patient name.
// The request may also flip the KVKK consent flag in the same call.
func (u *patientUsecase) UpsertProfileNote(ctx context.Context, id uuid.UUID, req *dto.UpsertProfileNoteRequest) (*dto.ProfileNoteResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	note := &entity.PatientProfileNote{
		PatientName: patient.Name,
		Phone:       req.Phone,
		Diagnosis:   req.Diagnosis,
		Notes:       req.Notes,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.noteRepo.Upsert(tx, note); err != nil {
		u.log.Warnf("Failed to upsert profile note for %q: %+v", patient.Name, err)
		return nil, err
	}

	if req.KVKKApproved != nil && *req.KVKKApproved != patient.KVKKApproved {
		patient.SetKVKKApproval(*req.KVKKApproved, time.Now())
		if err := u.patientRepo.Update(tx, patient); err != nil {
			u.log.Warnf("Failed to update KVKK consent for patient %s: %+v", id, err)
			return nil, err
		}
	}

	userID := auditUserID(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, userID, entity.AuditActionProfileNoteUpsert, "patient_profile_note", patient.Name, nil, note); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProfileNoteToResponse(note), nil
}
