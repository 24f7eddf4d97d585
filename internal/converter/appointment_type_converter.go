package converter

import (
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
)

// AppointmentTypeToResponse converts an AppointmentType entity to AppointmentTypeResponse DTO
func AppointmentTypeToResponse(appointmentType *entity.AppointmentType) *dto.AppointmentTypeResponse {
	if appointmentType == nil {
		return nil
	}

	return &dto.AppointmentTypeResponse{
		ID:              appointmentType.ID,
		Value:           appointmentType.Value,
		DurationMinutes: appointmentType.DurationMinutes,
		Color:           appointmentType.Color,
		Icon:            appointmentType.Icon,
		CreatedAt:       appointmentType.CreatedAt,
		UpdatedAt:       appointmentType.UpdatedAt,
	}
}

// AppointmentTypesToResponses converts a slice of AppointmentType entities to slice of DTOs
func AppointmentTypesToResponses(appointmentTypes []entity.AppointmentType) []dto.AppointmentTypeResponse {
	responses := make([]dto.AppointmentTypeResponse, len(appointmentTypes))
	for i, appointmentType := range appointmentTypes {
		responses[i] = *AppointmentTypeToResponse(&appointmentType)
	}
	return responses
}

// DurationTable flattens the type catalog into the lookup map the
// scheduling engine consumes.
func DurationTable(appointmentTypes []entity.AppointmentType) map[string]int {
	table := make(map[string]int, len(appointmentTypes))
	for _, appointmentType := range appointmentTypes {
		table[appointmentType.Value] = appointmentType.DurationMinutes
	}
	return table
}
