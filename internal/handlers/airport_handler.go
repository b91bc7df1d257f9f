package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rairline/booking-backend/internal/database"
	"github.com/rairline/booking-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// AirportHandler handles HTTP requests for airport reference data
type AirportHandler struct {
	airports *database.AirportRepository
	logger   *logrus.Logger
}

// NewAirportHandler creates a new airport handler
func NewAirportHandler(airports *database.AirportRepository, logger *logrus.Logger) *AirportHandler {
	return &AirportHandler{
		airports: airports,
		logger:   logger,
	}
}

// List handles GET /airports/
// It returns the name and code of every airport served by the airline.
func (h *AirportHandler) List(c *gin.Context) {
	airports, err := h.airports.List()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list airports")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	airportList := []models.AirportInfo{}
	for _, a := range airports {
		airportList = append(airportList, models.AirportInfo{
			AirportName: a.Name,
			AirportCode: a.Code,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code":  "200",
		"airport_list": airportList,
	})
}
