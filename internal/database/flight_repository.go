package database

import (
	"database/sql"
	"fmt"

	"github.com/rairline/booking-backend/internal/models"
)

// FlightRepository handles read access to the flights table
type FlightRepository struct {
	db DB
}

// NewFlightRepository creates a new FlightRepository
func NewFlightRepository(db DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// GetByID retrieves a flight by its flight code
func (r *FlightRepository) GetByID(flightID string) (*models.Flight, error) {
	query := `
		SELECT flight_id, capacity, source, destination, duration, time,
		       business, eco_price, bus_price
		FROM flights
		WHERE flight_id = $1
	`

	return r.scanFlight(r.db.QueryRow(query, flightID))
}

// ListByRoute retrieves all flights from a source to a destination airport
func (r *FlightRepository) ListByRoute(source, destination string) ([]models.Flight, error) {
	query := `
		SELECT flight_id, capacity, source, destination, duration, time,
		       business, eco_price, bus_price
		FROM flights
		WHERE source = $1 AND destination = $2
		ORDER BY flight_id
	`

	rows, err := r.db.Query(query, source, destination)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	defer rows.Close()

	flights := []models.Flight{}
	for rows.Next() {
		flight, err := r.scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *flight)
	}

	return flights, rows.Err()
}

// Exists reports whether a flight with the given code exists
func (r *FlightRepository) Exists(flightID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM flights WHERE flight_id = $1)`

	var exists bool
	if err := r.db.QueryRow(query, flightID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check flight: %w", err)
	}
	return exists, nil
}

// scanFlight scans a single flight row
func (r *FlightRepository) scanFlight(row scanner) (*models.Flight, error) {
	flight := &models.Flight{}
	var busPrice sql.NullFloat64

	err := row.Scan(
		&flight.ID, &flight.Capacity, &flight.Source, &flight.Destination,
		&flight.Duration, &flight.Time, &flight.Business, &flight.EcoPrice,
		&busPrice,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("flight not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}

	if busPrice.Valid {
		flight.BusPrice = &busPrice.Float64
	}

	return flight, nil
}
