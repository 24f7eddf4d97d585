package converter

import (
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:                   appointment.ID,
		Date:                 appointment.Date,
		Time:                 appointment.Time,
		DurationMinutes:      appointment.DurationMinutes,
		PatientName:          appointment.PatientName,
		IsPatientAppointment: appointment.IsPatientAppointment,
		Phone:                appointment.Phone,
		Type:                 appointment.Type,
		Notes:                appointment.Notes,
		Status:               string(appointment.Status),
		Completed:            appointment.Completed,
		CreatedAt:            appointment.CreatedAt,
		UpdatedAt:            appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}
