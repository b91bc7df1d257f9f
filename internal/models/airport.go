package models

// Airport represents a single airport served by the airline.
// Airports are seeded reference data and never mutated by request handling.
type Airport struct {
	Code string `json:"airport_code" db:"airport_code"`
	Name string `json:"airport_name" db:"airport_name"`
}

// AirportInfo is the list item returned by the /airports/ endpoint
type AirportInfo struct {
	AirportName string `json:"airport_name"`
	AirportCode string `json:"airport_code"`
}
