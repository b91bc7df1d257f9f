package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateRequest() *MakeBookingRequest {
	return &MakeBookingRequest{
		LegalName:       "William Herondale",
		FirstName:       "William",
		LastName:        "Herondale",
		DateOfBirth:     "1997-11-09",
		PassportNo:      "WARK25679",
		Email:           "herondale@gmail.com",
		ContactNo:       "7786653417",
		FlightCode:      "R003CC",
		DateOfDeparture: "2023-07-04",
		Class:           "eco",
	}
}

func TestMakeBookingRequestValidate(t *testing.T) {
	t.Run("Valid Request Parses Dates", func(t *testing.T) {
		req := validateRequest()
		require.NoError(t, req.Validate())

		assert.Equal(t, time.Date(1997, 11, 9, 0, 0, 0, 0, time.UTC), req.DOB)
		assert.Equal(t, time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC), req.Departure)
	})

	t.Run("Missing Parameters Reported In Order", func(t *testing.T) {
		req := &MakeBookingRequest{}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Missing required parameter: 'legal_name'", err.Error())

		req = validateRequest()
		req.ContactNo = ""
		req.Class = ""
		err = req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Missing required parameter: 'contact_no'", err.Error())
	})

	t.Run("Boundary Years Accepted", func(t *testing.T) {
		req := validateRequest()
		req.DateOfBirth = "1900-01-01"
		assert.NoError(t, req.Validate())

		req = validateRequest()
		req.DateOfBirth = "2023-06-30"
		assert.NoError(t, req.Validate())

		req = validateRequest()
		req.DateOfDeparture = "2025-12-31"
		assert.NoError(t, req.Validate())
	})

	t.Run("Out Of Range Years Rejected", func(t *testing.T) {
		req := validateRequest()
		req.DateOfBirth = "1899-12-31"
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Invalid Date of Birth. Please enter a value between 1900 and 2023 for the year of birth.", err.Error())

		req = validateRequest()
		req.DateOfDeparture = "2026-01-01"
		err = req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Invalid Date of Departure. Bookings only between the year 2023 and 2025 are allowed.", err.Error())
	})

	t.Run("Passport And Email Checks", func(t *testing.T) {
		req := validateRequest()
		req.PassportNo = "TOOLONG1234"
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Invalid Passport Number. Ensure that there are 9 characters in your passport number.", err.Error())

		req = validateRequest()
		req.Email = "no-at-sign.example.com"
		err = req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Invalid Email address.", err.Error())
	})
}

func TestBookingClass(t *testing.T) {
	assert.True(t, ClassEconomy.IsValid())
	assert.True(t, ClassBusiness.IsValid())
	assert.False(t, BookingClass("first").IsValid())
	assert.False(t, BookingClass("").IsValid())
}

func TestFareAmount(t *testing.T) {
	busPrice := 990.00
	flight := &Flight{ID: "R003CC", EcoPrice: 320.00, BusPrice: &busPrice}

	t.Run("Economy", func(t *testing.T) {
		amount, err := flight.FareAmount(ClassEconomy)
		require.NoError(t, err)
		assert.Equal(t, int64(32000), amount)
	})

	t.Run("Business", func(t *testing.T) {
		amount, err := flight.FareAmount(ClassBusiness)
		require.NoError(t, err)
		assert.Equal(t, int64(99000), amount)
	})

	t.Run("Business Without Fare", func(t *testing.T) {
		economyOnly := &Flight{ID: "R004DD", EcoPrice: 320.00}
		_, err := economyOnly.FareAmount(ClassBusiness)
		assert.ErrorIs(t, err, ErrNoBusinessFare)
	})

	t.Run("Unknown Class", func(t *testing.T) {
		_, err := flight.FareAmount(BookingClass("first"))
		assert.ErrorIs(t, err, ErrInvalidClass)
	})
}

func TestBookingInvoiced(t *testing.T) {
	booking := &Booking{ID: "ZXFZDJAE"}
	assert.False(t, booking.Invoiced())

	invoiceID := int64(4077)
	booking.InvoiceID = &invoiceID
	assert.True(t, booking.Invoiced())
}
