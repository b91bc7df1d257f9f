package database

import (
	"database/sql"
	"fmt"

	"github.com/rairline/booking-backend/internal/models"
)

// ErrPassengerNotFound is returned when a passenger lookup matches no row
var ErrPassengerNotFound = fmt.Errorf("passenger not found")

// PassengerRepository handles database operations for the passengers table
type PassengerRepository struct {
	db DB
}

// NewPassengerRepository creates a new PassengerRepository
func NewPassengerRepository(db DB) *PassengerRepository {
	return &PassengerRepository{db: db}
}

// Create persists a new passenger. The passport_no and email columns carry
// unique constraints; violations surface through IsUniqueViolation.
func (r *PassengerRepository) Create(passenger *models.Passenger) error {
	query := `
		INSERT INTO passengers (
			passenger_id, legal_name, first_name, last_name,
			date_of_birth, passport_no, email, contact_no
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(
		query,
		passenger.ID, passenger.LegalName, passenger.FirstName, passenger.LastName,
		passenger.DateOfBirth, passenger.PassportNo, passenger.Email, passenger.ContactNo,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("failed to create passenger: %w", err)
	}
	return nil
}

// GetByPassport retrieves a passenger by passport number, the deduplication
// key for passenger identities. Returns ErrPassengerNotFound when absent.
func (r *PassengerRepository) GetByPassport(passportNo string) (*models.Passenger, error) {
	query := `
		SELECT passenger_id, legal_name, first_name, last_name,
		       date_of_birth, passport_no, email, contact_no
		FROM passengers
		WHERE passport_no = $1
	`

	return r.scanPassenger(r.db.QueryRow(query, passportNo))
}

// Exists reports whether a passenger with the given id exists
func (r *PassengerRepository) Exists(passengerID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM passengers WHERE passenger_id = $1)`

	var exists bool
	if err := r.db.QueryRow(query, passengerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check passenger: %w", err)
	}
	return exists, nil
}

// scanPassenger scans a single passenger row
func (r *PassengerRepository) scanPassenger(row scanner) (*models.Passenger, error) {
	passenger := &models.Passenger{}
	var firstName sql.NullString
	var lastName sql.NullString
	var contactNo sql.NullString

	err := row.Scan(
		&passenger.ID, &passenger.LegalName, &firstName, &lastName,
		&passenger.DateOfBirth, &passenger.PassportNo, &passenger.Email, &contactNo,
	)
	if err == sql.ErrNoRows {
		return nil, ErrPassengerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch passenger: %w", err)
	}

	if firstName.Valid {
		passenger.FirstName = &firstName.String
	}
	if lastName.Valid {
		passenger.LastName = &lastName.String
	}
	if contactNo.Valid {
		passenger.ContactNo = &contactNo.String
	}

	return passenger, nil
}
