package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rairline/booking-backend/internal/models"
	"github.com/rairline/booking-backend/internal/services"
	"github.com/rairline/booking-backend/pkg/payments"
	"github.com/sirupsen/logrus"
)

// BookingHandler handles HTTP requests for the booking workflow: creating
// bookings, issuing invoices, and confirming payment.
type BookingHandler struct {
	service *services.BookingService
	logger  *logrus.Logger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(service *services.BookingService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		logger:  logger,
	}
}

// MakeBooking handles POST /make-booking/
// On success it returns the new booking id and the list of payment providers
// the client may invoice through.
func (h *BookingHandler) MakeBooking(c *gin.Context) {
	var req models.MakeBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := h.service.MakeBooking(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ppList := []models.ProviderInfo{}
	for _, pp := range result.Providers {
		ppList = append(ppList, models.ProviderInfo{
			PPCode: pp.ID,
			PPName: pp.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": "200",
		"booking_id":  result.BookingID,
		"pp_list":     ppList,
	})
}

// CreateInvoice handles POST /invoice/:booking_id/
// It issues an invoice for the booking through the preferred payment provider.
func (h *BookingHandler) CreateInvoice(c *gin.Context) {
	bookingID := c.Param("booking_id")

	preferredVendor := c.PostForm("preferred_vendor")
	if preferredVendor == "" {
		c.String(http.StatusBadRequest, "Missing required parameter: 'preferred_vendor'")
		return
	}

	invoiceID, err := h.service.CreateInvoice(c.Request.Context(), bookingID, preferredVendor)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": "200",
		"invoice_id":  invoiceID,
	})
}

// ConfirmInvoice handles POST /confirm/:booking_id/
// It asks the booking's payment provider whether the invoice is paid and
// returns the reported status.
func (h *BookingHandler) ConfirmInvoice(c *gin.Context) {
	bookingID := c.Param("booking_id")

	paid, err := h.service.ConfirmInvoice(c.Request.Context(), bookingID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code":    "200",
		"payment_status": paid,
	})
}

// respondError maps workflow errors onto the HTTP surface. Client mistakes
// come back as a plain-text 400 with the message verbatim; payment provider
// failures come back as 502 so the client can tell the two apart.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var (
		validation *services.ValidationError
		notFound   *services.NotFoundError
		duplicate  *services.DuplicateBookingError
		invoiced   *services.AlreadyInvoicedError
		provider   *payments.ProviderError
	)

	switch {
	case errors.As(err, &validation),
		errors.As(err, &notFound),
		errors.As(err, &duplicate),
		errors.As(err, &invoiced):
		c.String(http.StatusBadRequest, err.Error())
	case errors.As(err, &provider):
		h.logger.WithFields(logrus.Fields{
			"status_code": provider.StatusCode,
			"reason":      provider.Reason,
		}).Warn("Payment provider returned an error")
		c.String(http.StatusBadGateway, err.Error())
	default:
		h.logger.WithError(err).Error("Booking request failed")
		c.String(http.StatusInternalServerError, "Internal server error")
	}
}
