package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"transit-ticketing/models"
	"transit-ticketing/services"
)

// Handlers serves the HTTP API over one network
type Handlers struct {
	Network *services.Network
}

// New creates handlers backed by network
func New(network *services.Network) *Handlers {
	return &Handlers{Network: network}
}

// Register mounts the API routes on router
func (h *Handlers) Register(router gin.IRouter) {
	api := router.Group("/api")
	{
		// Station routes
		api.GET("/stations", h.GetStations)
		api.POST("/stations", h.CreateStation)
		api.GET("/stations/:name", h.GetStation)
		api.POST("/stations/:name/schedules", h.AddStationSchedule)

		// Vehicle routes
		api.GET("/vehicles", h.GetVehicles)
		api.POST("/vehicles", h.CreateVehicle)
		api.GET("/vehicles/:route", h.GetVehicle)
		api.POST("/vehicles/:route/stations", h.AssignStation)
		api.POST("/vehicles/:route/schedules", h.AddVehicleSchedule)
		api.GET("/vehicles/:route/travel-time", h.GetTravelTime)

		// Passenger and ticket routes
		api.GET("/passengers", h.GetPassengers)
		api.POST("/passengers", h.CreatePassenger)
		api.GET("/passengers/:id", h.GetPassenger)
		api.POST("/passengers/:id/tickets", h.BookTicket)
		api.POST("/passengers/:id/tickets/cancel", h.CancelTicket)
	}
}

// statusFor maps ledger and registry errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, models.ErrTicketNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrVehicleFull),
		errors.Is(err, models.ErrNoSeatsToCancel),
		errors.Is(err, models.ErrScheduleListFull),
		errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusBadRequest {
		log.Debug().Err(err).Str("path", c.FullPath()).Msg("Rejected request")
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": services.ErrorCode(err)})
}
