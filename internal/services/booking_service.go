package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rairline/booking-backend/internal/database"
	"github.com/rairline/booking-backend/internal/models"
	"github.com/rairline/booking-backend/pkg/idgen"
	"github.com/rairline/booking-backend/pkg/payments"
	"github.com/sirupsen/logrus"
)

const (
	passengerIDLength = 6
	bookingIDLength   = 8

	// Attempts before giving up on finding an unused random id. Collisions
	// are vanishingly rare in the 36^8 booking id space; the retry loop
	// exists so a collision degrades to another draw instead of a failure.
	idAttempts = 5
)

// BookingService orchestrates the booking workflow: booking creation,
// invoice issuance against a payment provider, and payment confirmation.
type BookingService struct {
	flights    *database.FlightRepository
	passengers *database.PassengerRepository
	bookings   *database.BookingRepository
	providers  *database.ProviderRepository
	gateway    payments.Gateway
	ids        idgen.Generator
	logger     *logrus.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(
	flights *database.FlightRepository,
	passengers *database.PassengerRepository,
	bookings *database.BookingRepository,
	providers *database.ProviderRepository,
	gateway payments.Gateway,
	ids idgen.Generator,
	logger *logrus.Logger,
) *BookingService {
	return &BookingService{
		flights:    flights,
		passengers: passengers,
		bookings:   bookings,
		providers:  providers,
		gateway:    gateway,
		ids:        ids,
		logger:     logger,
	}
}

// MakeBookingResult carries the outcome of a successful booking: the new
// booking id and the provider list the client chooses from for invoicing.
type MakeBookingResult struct {
	BookingID string
	Providers []models.PaymentProvider
}

// MakeBooking validates the request, resolves or creates the passenger
// identity, and creates the booking. Capacity is deliberately not enforced
// here; it is only reported by the flight listing.
func (s *BookingService) MakeBooking(req *models.MakeBookingRequest) (*MakeBookingResult, error) {
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	exists, err := s.flights.Exists(req.FlightCode)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &NotFoundError{Message: "Invalid flight code"}
	}

	passenger, err := s.resolveOrCreatePassenger(req)
	if err != nil {
		return nil, err
	}

	// Pre-check so the duplicate error can carry the existing booking id.
	// The unique constraint on the insert below is the authoritative check.
	existing, err := s.bookings.FindByTriple(req.FlightCode, passenger.ID, req.Departure)
	if err != nil && !errors.Is(err, database.ErrBookingNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &DuplicateBookingError{BookingID: existing.ID}
	}

	bookingID, err := s.uniqueID(bookingIDLength, s.bookings.Exists)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:              bookingID,
		FlightID:        req.FlightCode,
		PassengerID:     passenger.ID,
		DateOfDeparture: req.Departure,
		Class:           models.BookingClass(req.Class),
	}
	if err := s.bookings.Create(booking); err != nil {
		if database.IsUniqueViolation(err) {
			// Lost the race to a concurrent identical request; report the
			// booking that won.
			winner, ferr := s.bookings.FindByTriple(req.FlightCode, passenger.ID, req.Departure)
			if ferr != nil {
				return nil, ferr
			}
			return nil, &DuplicateBookingError{BookingID: winner.ID}
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id":   bookingID,
		"flight_code":  req.FlightCode,
		"passenger_id": passenger.ID,
		"class":        req.Class,
	}).Info("Booking created")

	providers, err := s.providers.List()
	if err != nil {
		return nil, err
	}

	return &MakeBookingResult{BookingID: bookingID, Providers: providers}, nil
}

// CreateInvoice issues an invoice for a booking through the preferred
// payment provider and stores the returned invoice id. A booking receives
// at most one invoice.
func (s *BookingService) CreateInvoice(ctx context.Context, bookingID, preferredVendor string) (int64, error) {
	provider, err := s.providers.GetByID(preferredVendor)
	if err != nil {
		if errors.Is(err, database.ErrProviderNotFound) {
			return 0, &NotFoundError{Message: "'preferred_vendor' is invalid"}
		}
		return 0, err
	}

	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, database.ErrBookingNotFound) {
			return 0, &NotFoundError{Message: "'booking_id' is invalid"}
		}
		return 0, err
	}

	if booking.Invoiced() {
		return 0, &AlreadyInvoicedError{BookingID: bookingID, InvoiceID: *booking.InvoiceID}
	}

	flight, err := s.flights.GetByID(booking.FlightID)
	if err != nil {
		return 0, err
	}

	amount, err := flight.FareAmount(booking.Class)
	if err != nil {
		if errors.Is(err, models.ErrNoBusinessFare) {
			return 0, &ValidationError{Message: fmt.Sprintf("Flight %s has no business class fare", flight.ID)}
		}
		return 0, err
	}

	invoiceID, err := s.gateway.CreateInvoice(ctx, provider.URL, amount)
	if err != nil {
		return 0, err
	}

	if err := s.bookings.SetInvoice(bookingID, provider.ID, invoiceID); err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id":   bookingID,
		"provider":     provider.ID,
		"invoice_id":   invoiceID,
		"amount_minor": amount,
	}).Info("Invoice created")

	return invoiceID, nil
}

// ConfirmInvoice queries the booking's payment provider for the invoice
// status and stores the reported flag. It may be called any number of times
// and always reflects only the provider's most recent answer, so the flag
// can flip in either direction.
func (s *BookingService) ConfirmInvoice(ctx context.Context, bookingID string) (bool, error) {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, database.ErrBookingNotFound) {
			return false, &NotFoundError{Message: "'booking_id' is invalid"}
		}
		return false, err
	}

	if booking.InvoiceID == nil || booking.PaymentProviderID == nil {
		return false, &ValidationError{
			Message: fmt.Sprintf("Given 'booking_id': %s has no invoice to confirm", bookingID),
		}
	}

	provider, err := s.providers.GetByID(*booking.PaymentProviderID)
	if err != nil {
		return false, err
	}

	paid, err := s.gateway.InvoiceStatus(ctx, provider.URL, *booking.InvoiceID)
	if err != nil {
		return false, err
	}

	if err := s.bookings.SetPaymentReceived(bookingID, paid); err != nil {
		return false, err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": bookingID,
		"invoice_id": *booking.InvoiceID,
		"paid":       paid,
	}).Info("Payment status confirmed")

	return paid, nil
}

// resolveOrCreatePassenger looks up the passenger by passport number and
// creates one when absent. An existing passenger with a different stored
// email is rejected, so a passport-linked identity cannot be reused with a
// mismatched contact channel.
func (s *BookingService) resolveOrCreatePassenger(req *models.MakeBookingRequest) (*models.Passenger, error) {
	const emailTaken = "This Email ID is already registered for a passenger. Please use a different email address"

	passenger, err := s.passengers.GetByPassport(req.PassportNo)
	if err == nil {
		if passenger.Email != req.Email {
			return nil, &ValidationError{Message: emailTaken}
		}
		return passenger, nil
	}
	if !errors.Is(err, database.ErrPassengerNotFound) {
		return nil, err
	}

	passengerID, err := s.uniqueID(passengerIDLength, s.passengers.Exists)
	if err != nil {
		return nil, err
	}

	passenger = &models.Passenger{
		ID:          passengerID,
		LegalName:   req.LegalName,
		FirstName:   &req.FirstName,
		LastName:    &req.LastName,
		DateOfBirth: req.DOB,
		PassportNo:  req.PassportNo,
		Email:       req.Email,
		ContactNo:   &req.ContactNo,
	}
	if err := s.passengers.Create(passenger); err != nil {
		if database.IsUniqueViolation(err) {
			// The email unique constraint backstops the mismatch check above
			return nil, &ValidationError{Message: emailTaken}
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"passenger_id": passengerID,
		"passport_no":  req.PassportNo,
	}).Info("Passenger created")

	return passenger, nil
}

// uniqueID draws random ids until one is not already stored
func (s *BookingService) uniqueID(length int, exists func(string) (bool, error)) (string, error) {
	for i := 0; i < idAttempts; i++ {
		id := s.ids.ID(length)
		taken, err := exists(id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique id after %d attempts", idAttempts)
}
