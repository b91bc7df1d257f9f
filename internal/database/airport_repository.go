package database

import (
	"fmt"

	"github.com/rairline/booking-backend/internal/models"
)

// AirportRepository handles read access to the airports table
type AirportRepository struct {
	db DB
}

// NewAirportRepository creates a new AirportRepository
func NewAirportRepository(db DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// List retrieves all airports ordered by code
func (r *AirportRepository) List() ([]models.Airport, error) {
	query := `
		SELECT airport_code, airport_name
		FROM airports
		ORDER BY airport_code
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list airports: %w", err)
	}
	defer rows.Close()

	airports := []models.Airport{}
	for rows.Next() {
		var a models.Airport
		if err := rows.Scan(&a.Code, &a.Name); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}

	return airports, rows.Err()
}

// Exists reports whether an airport with the given code exists
func (r *AirportRepository) Exists(code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM airports WHERE airport_code = $1)`

	var exists bool
	if err := r.db.QueryRow(query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check airport: %w", err)
	}
	return exists, nil
}
