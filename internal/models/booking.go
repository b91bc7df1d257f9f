package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for all dates handled by the API
const DateLayout = "2006-01-02"

// Booking represents a passenger booking on a flight. A booking receives at
// most one invoice; payment_received only ever reflects the provider's last
// reported status.
type Booking struct {
	ID                string       `json:"booking_id" db:"booking_id"`
	FlightID          string       `json:"flight_code" db:"flight_id"`
	PassengerID       string       `json:"passenger_id" db:"passenger_id"`
	DateOfDeparture   time.Time    `json:"date_of_departure" db:"date_of_departure"`
	Class             BookingClass `json:"class" db:"booking_class"`
	PaymentProviderID *string      `json:"payment_provider,omitempty" db:"pp_id"`
	InvoiceID         *int64       `json:"invoice_id,omitempty" db:"invoice_id"`
	PaymentReceived   bool         `json:"payment_received" db:"payment_received"`
}

// Invoiced reports whether an invoice has already been issued for the booking
func (b *Booking) Invoiced() bool {
	return b.InvoiceID != nil
}

// MakeBookingRequest carries the form fields of the /make-booking/ endpoint.
// All ten fields are required. Validate parses the two date fields into
// DOB and Departure.
type MakeBookingRequest struct {
	LegalName       string `form:"legal_name"`
	FirstName       string `form:"first_name"`
	LastName        string `form:"last_name"`
	DateOfBirth     string `form:"date_of_birth"`
	PassportNo      string `form:"passport_no"`
	Email           string `form:"email"`
	ContactNo       string `form:"contact_no"`
	FlightCode      string `form:"flight_code"`
	DateOfDeparture string `form:"date_of_departure"`
	Class           string `form:"class"`

	// Populated by Validate
	DOB       time.Time `form:"-"`
	Departure time.Time `form:"-"`
}

// Validate checks the request fields in the order the API documents them and
// returns a distinct human-readable message for the first failing condition.
// Flight existence is checked separately by the workflow, against storage.
func (r *MakeBookingRequest) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"legal_name", r.LegalName},
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"date_of_birth", r.DateOfBirth},
		{"passport_no", r.PassportNo},
		{"email", r.Email},
		{"contact_no", r.ContactNo},
		{"flight_code", r.FlightCode},
		{"date_of_departure", r.DateOfDeparture},
		{"class", r.Class},
	}
	for _, p := range required {
		if p.value == "" {
			return fmt.Errorf("Missing required parameter: '%s'", p.name)
		}
	}

	dob, err := time.Parse(DateLayout, r.DateOfBirth)
	if err != nil {
		return fmt.Errorf("Invalid date format for 'date_of_birth'. Expected YYYY-MM-DD.")
	}
	departure, err := time.Parse(DateLayout, r.DateOfDeparture)
	if err != nil {
		return fmt.Errorf("Invalid date format for 'date_of_departure'. Expected YYYY-MM-DD.")
	}

	if dob.Year() < 1900 || dob.Year() > 2023 {
		return fmt.Errorf("Invalid Date of Birth. Please enter a value between 1900 and 2023 for the year of birth.")
	}
	if departure.Year() < 2023 || departure.Year() > 2025 {
		return fmt.Errorf("Invalid Date of Departure. Bookings only between the year 2023 and 2025 are allowed.")
	}
	if len(r.PassportNo) != 9 {
		return fmt.Errorf("Invalid Passport Number. Ensure that there are 9 characters in your passport number.")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("Invalid Email address.")
	}
	if !BookingClass(r.Class).IsValid() {
		return fmt.Errorf("Invalid Booking Class - 'eco/bus'")
	}

	r.DOB = dob
	r.Departure = departure
	return nil
}
