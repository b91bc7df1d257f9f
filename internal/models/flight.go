package models

import "errors"

var (
	// ErrNoBusinessFare is returned when a business fare is requested on a
	// flight that has no business cabin price.
	ErrNoBusinessFare = errors.New("flight has no business class fare")

	// ErrInvalidClass is returned for a fare class outside eco/bus.
	ErrInvalidClass = errors.New("invalid booking class")
)

// BookingClass represents the fare class of a booking
type BookingClass string

const (
	ClassEconomy  BookingClass = "eco"
	ClassBusiness BookingClass = "bus"
)

// IsValid reports whether the class is one of the two supported cabins
func (c BookingClass) IsValid() bool {
	return c == ClassEconomy || c == ClassBusiness
}

// Flight represents a scheduled flight. Flights are seeded reference data;
// capacity is a static ceiling, not a live seat counter.
type Flight struct {
	ID          string   `json:"flight_code" db:"flight_id"`
	Capacity    int      `json:"capacity" db:"capacity"`
	Source      string   `json:"source" db:"source"`
	Destination string   `json:"destination" db:"destination"`
	Duration    int      `json:"duration" db:"duration"`
	Time        int      `json:"flight_time" db:"time"`
	Business    bool     `json:"business_status" db:"business"`
	EcoPrice    float64  `json:"eco_price" db:"eco_price"`
	BusPrice    *float64 `json:"bus_price" db:"bus_price"`
}

// FareAmount returns the fare for the given class in integer minor currency
// units (price x 100, truncated). Business fares require a business price on
// the flight; flights without a business cabin have none.
func (f *Flight) FareAmount(class BookingClass) (int64, error) {
	switch class {
	case ClassEconomy:
		return int64(f.EcoPrice * 100), nil
	case ClassBusiness:
		if f.BusPrice == nil {
			return 0, ErrNoBusinessFare
		}
		return int64(*f.BusPrice * 100), nil
	}
	return 0, ErrInvalidClass
}

// FlightInfo is the list item returned by the /flights/ endpoint.
// RemainingSeats is capacity minus bookings for the requested date and can
// go negative, since capacity is not enforced at booking time.
type FlightInfo struct {
	FlightCode     string   `json:"flight_code"`
	Duration       int      `json:"duration"`
	FlightTime     int      `json:"flight_time"`
	RemainingSeats int      `json:"remaining_seats"`
	BusinessStatus bool     `json:"business_status"`
	EcoPrice       float64  `json:"eco_price"`
	BusPrice       *float64 `json:"bus_price"`
}
