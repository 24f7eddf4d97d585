package entity

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by the repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	StartDate   string // Format: YYYY-MM-DD, inclusive
	EndDate     string // Format: YYYY-MM-DD, inclusive
	PatientName string // Exact match on the canonical name
	Status      string // Filter by appointment status
}
