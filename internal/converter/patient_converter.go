package converter

import (
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/scheduling"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		Phone:          patient.Phone,
		Email:          patient.Email,
		Notes:          patient.Notes,
		KVKKApproved:   patient.KVKKApproved,
		KVKKApprovedAt: patient.KVKKApprovedAt,
		CreatedAt:      patient.CreatedAt,
		UpdatedAt:      patient.UpdatedAt,
	}

	if patient.DateOfBirth != nil {
		response.DateOfBirth = scheduling.DateString(*patient.DateOfBirth)
	}

	return response
}

// PatientToResponseWithStats attaches the derived roster figures to the
// patient response.
func PatientToResponseWithStats(patient *entity.Patient, stats scheduling.Stats) *dto.PatientResponse {
	response := PatientToResponse(patient)
	if response == nil {
		return nil
	}

	response.LastVisit = stats.LastVisit
	response.TotalVisits = stats.TotalVisits
	response.Upcoming = stats.Upcoming
	return response
}

// ProfileNoteToResponse converts a PatientProfileNote entity to ProfileNoteResponse DTO
func ProfileNoteToResponse(note *entity.PatientProfileNote) *dto.ProfileNoteResponse {
	if note == nil {
		return nil
	}

	return &dto.ProfileNoteResponse{
		PatientName: note.PatientName,
		Phone:       note.Phone,
		Diagnosis:   note.Diagnosis,
		Notes:       note.Notes,
		UpdatedAt:   note.UpdatedAt,
	}
}

// RiskToResponse converts a RiskAssessment to RiskResponse DTO
func RiskToResponse(risk scheduling.RiskAssessment) dto.RiskResponse {
	return dto.RiskResponse{
		Score: risk.Score,
		Level: string(risk.Level),
	}
}
