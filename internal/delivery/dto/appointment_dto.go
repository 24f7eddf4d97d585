package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	Date                 string `json:"date" validate:"required"`
	Time                 string `json:"time" validate:"required"`
	EndTime              string `json:"end_time,omitempty"`
	DurationMinutes      int    `json:"duration_minutes,omitempty" validate:"omitempty,gte=1"`
	PatientName          string `json:"patient_name"`
	IsPatientAppointment *bool  `json:"is_patient_appointment,omitempty"`
	Phone                string `json:"phone,omitempty"`
	Type                 string `json:"type,omitempty"`
	Notes                string `json:"notes,omitempty"`
}

type UpdateAppointmentRequest struct {
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	EndTime         string `json:"end_time,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty" validate:"omitempty,gte=1"`
	PatientName     string `json:"patient_name"`
	Phone           string `json:"phone,omitempty"`
	Type            string `json:"type,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=planned completed no_show cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                   uuid.UUID `json:"id"`
	Date                 string    `json:"date"`
	Time                 string    `json:"time"`
	DurationMinutes      int       `json:"duration_minutes"`
	PatientName          string    `json:"patient_name"`
	IsPatientAppointment bool      `json:"is_patient_appointment"`
	Phone                string    `json:"phone,omitempty"`
	Type                 string    `json:"type,omitempty"`
	Notes                string    `json:"notes,omitempty"`
	Status               string    `json:"status"`
	Completed            bool      `json:"completed"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// SlotResponse is one bookable grid position in the day view.
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type DayScheduleResponse struct {
	Date         string                `json:"date"`
	Slots        []SlotResponse        `json:"slots"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type WeekDayResponse struct {
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type WeekScheduleResponse struct {
	Days       []WeekDayResponse `json:"days"`
	TodayCount int               `json:"today_count"`
	WeekCount  int               `json:"week_count"`
}
