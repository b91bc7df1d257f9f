package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rairline/booking-backend/internal/database"
	"github.com/rairline/booking-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// FlightHandler handles HTTP requests for flight availability
type FlightHandler struct {
	airports *database.AirportRepository
	flights  *database.FlightRepository
	bookings *database.BookingRepository
	logger   *logrus.Logger
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(
	airports *database.AirportRepository,
	flights *database.FlightRepository,
	bookings *database.BookingRepository,
	logger *logrus.Logger,
) *FlightHandler {
	return &FlightHandler{
		airports: airports,
		flights:  flights,
		bookings: bookings,
		logger:   logger,
	}
}

// List handles GET /flights/
// It returns every flight on the requested route together with the seats
// remaining on the requested date. Remaining seats are informational and can
// go negative because bookings are accepted past capacity.
func (h *FlightHandler) List(c *gin.Context) {
	for _, param := range []string{"source", "destination", "date"} {
		if c.Query(param) == "" {
			c.String(http.StatusBadRequest, fmt.Sprintf("Missing required parameter: '%s'", param))
			return
		}
	}

	source := c.Query("source")
	destination := c.Query("destination")

	date, err := time.Parse(models.DateLayout, c.Query("date"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid date format for 'date'. Expected YYYY-MM-DD.")
		return
	}

	ok, err := h.airports.Exists(source)
	if err != nil {
		h.logger.WithError(err).Error("Failed to check source airport")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	if !ok {
		c.String(http.StatusBadRequest, "Invalid Source")
		return
	}

	ok, err = h.airports.Exists(destination)
	if err != nil {
		h.logger.WithError(err).Error("Failed to check destination airport")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	if !ok {
		c.String(http.StatusBadRequest, "Invalid Destination")
		return
	}

	flights, err := h.flights.ListByRoute(source, destination)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list flights")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	flightList := []models.FlightInfo{}
	for _, f := range flights {
		booked, err := h.bookings.CountForFlightDate(f.ID, date)
		if err != nil {
			h.logger.WithError(err).Error("Failed to count bookings for flight")
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}

		flightList = append(flightList, models.FlightInfo{
			FlightCode:     f.ID,
			Duration:       f.Duration,
			FlightTime:     f.Time,
			RemainingSeats: f.Capacity - booked,
			BusinessStatus: f.Business,
			EcoPrice:       f.EcoPrice,
			BusPrice:       f.BusPrice,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": "200",
		"flight_list": flightList,
	})
}
