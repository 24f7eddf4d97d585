package dto

import "time"

// Request DTOs

type CreateAppointmentTypeRequest struct {
	Value           string `json:"value" validate:"required,max=100"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gte=1"`
	Color           string `json:"color,omitempty"`
	Icon            string `json:"icon,omitempty"`
}

type UpdateAppointmentTypeRequest struct {
	Value           string `json:"value" validate:"required,max=100"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gte=1"`
	Color           string `json:"color,omitempty"`
	Icon            string `json:"icon,omitempty"`
}

// Response DTOs

type AppointmentTypeResponse struct {
	ID              int       `json:"id"`
	Value           string    `json:"value"`
	DurationMinutes int       `json:"duration_minutes"`
	Color           string    `json:"color,omitempty"`
	Icon            string    `json:"icon,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentTypeListResponse struct {
	AppointmentTypes []AppointmentTypeResponse `json:"appointment_types"`
	Total            int                       `json:"total"`
}
