package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rairline/booking-backend/internal/config"
	"github.com/rairline/booking-backend/internal/database"
	"github.com/rairline/booking-backend/internal/handlers"
	"github.com/rairline/booking-backend/internal/middleware"
	"github.com/rairline/booking-backend/internal/services"
	"github.com/rairline/booking-backend/pkg/idgen"
	"github.com/rairline/booking-backend/pkg/payments"
	"github.com/sirupsen/logrus"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Rairline Booking Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Initialize repositories
	airportRepository := database.NewAirportRepository(db)
	flightRepository := database.NewFlightRepository(db)
	passengerRepository := database.NewPassengerRepository(db)
	bookingRepository := database.NewBookingRepository(db)
	providerRepository := database.NewProviderRepository(db)

	// Initialize the payment provider gateway and the booking workflow
	gateway := payments.NewRESTGateway(payments.Config{
		APIKey:  cfg.Payment.APIKey,
		Timeout: cfg.Payment.Timeout,
	})
	bookingService := services.NewBookingService(
		flightRepository,
		passengerRepository,
		bookingRepository,
		providerRepository,
		gateway,
		idgen.New(),
		logger,
	)
	logger.Info("Services initialized")

	// Initialize handlers
	airportHandler := handlers.NewAirportHandler(airportRepository, logger)
	flightHandler := handlers.NewFlightHandler(airportRepository, flightRepository, bookingRepository, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(requestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:  cfg.CORS.AllowedOrigins,
		AllowMethods:  cfg.CORS.AllowedMethods,
		AllowHeaders:  cfg.CORS.AllowedHeaders,
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	// Booking API routes. Each endpoint supports exactly one method and
	// answers the other with a plain-text 400 naming the supported one.
	router.GET("/airports/", airportHandler.List)
	router.POST("/airports/", handlers.WrongMethod(http.MethodGet))

	router.GET("/flights/", flightHandler.List)
	router.POST("/flights/", handlers.WrongMethod(http.MethodGet))

	router.POST("/make-booking/", bookingHandler.MakeBooking)
	router.GET("/make-booking/", handlers.WrongMethod(http.MethodPost))

	router.POST("/invoice/:booking_id/", bookingHandler.CreateInvoice)
	router.GET("/invoice/:booking_id/", handlers.WrongMethod(http.MethodPost))

	router.POST("/confirm/:booking_id/", bookingHandler.ConfirmInvoice)
	router.GET("/confirm/:booking_id/", handlers.WrongMethod(http.MethodPost))

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}
		if requestID, exists := c.Get("request_id"); exists {
			fields["request_id"] = requestID
		}

		entry := logger.WithFields(fields)

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
