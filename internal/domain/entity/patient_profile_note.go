package entity

import "time"

// PatientProfileNote is the free-text clinical summary kept per patient,
// keyed by patient name and upserted on save. It is a separate record from
// the patient row so a note can exist before (or survive without) a formal
// patient registration.
type PatientProfileNote struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientName string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"patient_name"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Diagnosis   string    `gorm:"type:text" json:"diagnosis,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PatientProfileNote) TableName() string {
	return "patient_profile_notes"
}
