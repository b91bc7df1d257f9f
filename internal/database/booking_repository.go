package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rairline/booking-backend/internal/models"
)

// ErrBookingNotFound is returned when a booking lookup matches no row
var ErrBookingNotFound = fmt.Errorf("booking not found")

// BookingRepository handles database operations for the bookings table
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create persists a new booking. The table carries a unique constraint on
// (flight_id, passenger_id, date_of_departure), which is the authoritative
// duplicate-booking check; violations surface through IsUniqueViolation.
func (r *BookingRepository) Create(booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			booking_id, flight_id, passenger_id, date_of_departure,
			booking_class, pp_id, invoice_id, payment_received
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(
		query,
		booking.ID, booking.FlightID, booking.PassengerID, booking.DateOfDeparture,
		booking.Class, booking.PaymentProviderID, booking.InvoiceID, booking.PaymentReceived,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by id. Returns ErrBookingNotFound when absent.
func (r *BookingRepository) GetByID(bookingID string) (*models.Booking, error) {
	query := `
		SELECT booking_id, flight_id, passenger_id, date_of_departure,
		       booking_class, pp_id, invoice_id, payment_received
		FROM bookings
		WHERE booking_id = $1
	`

	return r.scanBooking(r.db.QueryRow(query, bookingID))
}

// FindByTriple retrieves the booking for an exact (flight, passenger,
// departure date) combination. Returns ErrBookingNotFound when absent.
func (r *BookingRepository) FindByTriple(flightID, passengerID string, departure time.Time) (*models.Booking, error) {
	query := `
		SELECT booking_id, flight_id, passenger_id, date_of_departure,
		       booking_class, pp_id, invoice_id, payment_received
		FROM bookings
		WHERE flight_id = $1 AND passenger_id = $2 AND date_of_departure = $3
	`

	return r.scanBooking(r.db.QueryRow(query, flightID, passengerID, departure))
}

// Exists reports whether a booking with the given id exists
func (r *BookingRepository) Exists(bookingID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE booking_id = $1)`

	var exists bool
	if err := r.db.QueryRow(query, bookingID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check booking: %w", err)
	}
	return exists, nil
}

// CountForFlightDate returns the number of bookings made for a flight on a
// departure date. Effective seat availability is the flight's static capacity
// minus this count.
func (r *BookingRepository) CountForFlightDate(flightID string, departure time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE flight_id = $1 AND date_of_departure = $2
	`

	var count int
	if err := r.db.QueryRow(query, flightID, departure).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// SetInvoice records the chosen payment provider and the provider-issued
// invoice id on a booking
func (r *BookingRepository) SetInvoice(bookingID, ppID string, invoiceID int64) error {
	query := `
		UPDATE bookings
		SET pp_id = $2, invoice_id = $3
		WHERE booking_id = $1
	`

	result, err := r.db.Exec(query, bookingID, ppID, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to set invoice: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// SetPaymentReceived stores the provider's latest reported payment status
func (r *BookingRepository) SetPaymentReceived(bookingID string, paid bool) error {
	query := `
		UPDATE bookings
		SET payment_received = $2
		WHERE booking_id = $1
	`

	result, err := r.db.Exec(query, bookingID, paid)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// scanBooking scans a single booking row
func (r *BookingRepository) scanBooking(row scanner) (*models.Booking, error) {
	booking := &models.Booking{}
	var ppID sql.NullString
	var invoiceID sql.NullInt64

	err := row.Scan(
		&booking.ID, &booking.FlightID, &booking.PassengerID, &booking.DateOfDeparture,
		&booking.Class, &ppID, &invoiceID, &booking.PaymentReceived,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}

	if ppID.Valid {
		booking.PaymentProviderID = &ppID.String
	}
	if invoiceID.Valid {
		booking.InvoiceID = &invoiceID.Int64
	}

	return booking, nil
}
