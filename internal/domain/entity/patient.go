package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a person known to the clinic, independent of any single
// appointment.
//
// Name is the identity key appointments join against. Uniqueness is enforced
// case-insensitively by the reconciliation step before insert, not by a
// database constraint.
type Patient struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string     `gorm:"type:varchar(255);not null;index" json:"name"`
	Phone          string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email          string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`
	KVKKApproved   bool       `gorm:"not null;default:false" json:"kvkk_approved"`
	KVKKApprovedAt *time.Time `json:"kvkk_approved_at,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// SetKVKKApproval records the consent flag. The timestamp is set exactly
// when the flag transitions to true (an existing timestamp is kept) and
// cleared when it transitions to false.
func (p *Patient) SetKVKKApproval(approved bool, now time.Time) {
	p.KVKKApproved = approved
	if !approved {
		p.KVKKApprovedAt = nil
		return
	}
	if p.KVKKApprovedAt == nil {
		t := now
		p.KVKKApprovedAt = &t
	}
}

// Age returns the patient's age in full years at now, or false when the
// date of birth is unknown.
func (p *Patient) Age(now time.Time) (int, bool) {
	if p.DateOfBirth == nil {
		return 0, false
	}
	dob := *p.DateOfBirth
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age, true
}
