package services

import "fmt"

// ValidationError reports malformed, missing, or out-of-range request input.
// The message is client-facing and returned verbatim in the 400 body.
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an unknown booking id, flight code, or payment
// provider. It is kept distinct from other validation failures.
type NotFoundError struct {
	Message string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return e.Message
}

// DuplicateBookingError reports that a booking already exists for the exact
// (flight, passenger, departure date) combination. It carries the id of the
// existing booking.
type DuplicateBookingError struct {
	BookingID string
}

// Error implements the error interface
func (e *DuplicateBookingError) Error() string {
	return fmt.Sprintf("This booking already exists. Refer booking id %s", e.BookingID)
}

// AlreadyInvoicedError reports that invoice creation was attempted on a
// booking that already holds an invoice. It carries the existing invoice id.
type AlreadyInvoicedError struct {
	BookingID string
	InvoiceID int64
}

// Error implements the error interface
func (e *AlreadyInvoicedError) Error() string {
	return fmt.Sprintf("Given 'booking_id': %s already has an invoice: %d", e.BookingID, e.InvoiceID)
}
