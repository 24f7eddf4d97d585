package entity

import "time"

// AppointmentType is a catalog entry mapping an appointment type to its
// default duration. Color and icon are presentation hints passed through to
// clients.
type AppointmentType struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Value           string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"value"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Color           string    `gorm:"type:varchar(100)" json:"color,omitempty"`
	Icon            string    `gorm:"type:varchar(10)" json:"icon,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AppointmentType) TableName() string {
	return "appointment_types"
}
