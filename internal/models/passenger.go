package models

import "time"

// Passenger represents a passenger identity, deduplicated by passport number.
// A passenger is created once per unique passport number and never deleted
// while referenced by a booking.
type Passenger struct {
	ID          string    `json:"passenger_id" db:"passenger_id"`
	LegalName   string    `json:"legal_name" db:"legal_name"`
	FirstName   *string   `json:"first_name,omitempty" db:"first_name"`
	LastName    *string   `json:"last_name,omitempty" db:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth" db:"date_of_birth"`
	PassportNo  string    `json:"passport_no" db:"passport_no"`
	Email       string    `json:"email" db:"email"`
	ContactNo   *string   `json:"contact_no,omitempty" db:"contact_no"`
}
