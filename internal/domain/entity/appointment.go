package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPlanned   AppointmentStatus = "planned"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPlanned, AppointmentStatusCompleted,
		AppointmentStatusNoShow, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents one scheduled clinic visit or a non-patient
// calendar block.
//
// Date and Time are stored in canonical form (YYYY-MM-DD, HH:MM) — all slot
// equality comparisons run over these strings. The composite unique index
// backs the client-side availability check with a server-side guarantee.
//
// PatientName is the join key against the patient roster; there is no
// foreign key between appointments and patients. Linkage is by
// exact-normalized name, which is fragile under typos — kept for
// compatibility with the data this service inherited.
type Appointment struct {
	ID                   uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date                 string            `gorm:"type:varchar(10);not null;uniqueIndex:idx_appointments_slot;index" json:"date"`
	Time                 string            `gorm:"type:varchar(5);not null;uniqueIndex:idx_appointments_slot" json:"time"`
	DurationMinutes      int               `gorm:"not null" json:"duration_minutes"`
	PatientName          string            `gorm:"type:varchar(255);not null;index" json:"patient_name"`
	IsPatientAppointment bool              `gorm:"not null;default:true" json:"is_patient_appointment"`
	Phone                string            `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Type                 string            `gorm:"type:varchar(100)" json:"type,omitempty"`
	Notes                string            `gorm:"type:text" json:"notes,omitempty"`
	Status               AppointmentStatus `gorm:"type:varchar(20);not null;default:'planned';index" json:"status"`
	Completed            bool              `gorm:"not null;default:false" json:"completed"`
	CreatedAt            time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCompleted checks if the appointment was completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsNoShow checks if the patient did not show up
func (a *Appointment) IsNoShow() bool {
	return a.Status == AppointmentStatusNoShow
}

// SetStatus updates the status and keeps the derived Completed mirror in
// sync. Completed is persisted alongside status for compatibility with the
// data model this service inherited.
func (a *Appointment) SetStatus(status AppointmentStatus) {
	a.Status = status
	a.Completed = status == AppointmentStatusCompleted
}
