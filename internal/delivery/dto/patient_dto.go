package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	DateOfBirth  string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes        string `json:"notes,omitempty"`
	KVKKApproved bool   `json:"kvkk_approved"`
}

type UpdatePatientRequest struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	DateOfBirth  string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes        string `json:"notes,omitempty"`
	KVKKApproved bool   `json:"kvkk_approved"`
}

type UpsertProfileNoteRequest struct {
	Phone        string `json:"phone,omitempty"`
	Diagnosis    string `json:"diagnosis,omitempty"`
	Notes        string `json:"notes,omitempty"`
	KVKKApproved *bool  `json:"kvkk_approved,omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone,omitempty"`
	Email          string     `json:"email,omitempty"`
	DateOfBirth    string     `json:"date_of_birth,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	KVKKApproved   bool       `json:"kvkk_approved"`
	KVKKApprovedAt *time.Time `json:"kvkk_approved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Derived roster figures, computed from the appointment snapshot.
	LastVisit   string `json:"last_visit,omitempty"`
	TotalVisits int    `json:"total_visits"`
	Upcoming    int    `json:"upcoming_appointments"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type RiskResponse struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

type ProfileNoteResponse struct {
	PatientName string    `json:"patient_name"`
	Phone       string    `json:"phone,omitempty"`
	Diagnosis   string    `json:"diagnosis,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PatientHistoryResponse struct {
	Patient     PatientResponse       `json:"patient"`
	History     []AppointmentResponse `json:"history"`
	Risk        RiskResponse          `json:"risk"`
	ProfileNote *ProfileNoteResponse  `json:"profile_note,omitempty"`
}
