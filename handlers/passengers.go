package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"transit-ticketing/models"
	"transit-ticketing/services"
)

// GetPassengers returns all passengers
func (h *Handlers) GetPassengers(c *gin.Context) {
	passengers := h.Network.Passengers()

	infos := make([]models.PassengerInfo, 0, len(passengers))
	for _, passenger := range passengers {
		infos = append(infos, passenger.Info())
	}

	c.JSON(http.StatusOK, infos)
}

// CreatePassenger registers a passenger, generating an ID when none is given
func (h *Handlers) CreatePassenger(c *gin.Context) {
	var req models.PassengerCreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	passenger := models.NewPassenger(req.Name, req.ID)
	if err := h.Network.AddPassenger(passenger); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, passenger.Info())
}

// GetPassenger returns passenger details by ID
func (h *Handlers) GetPassenger(c *gin.Context) {
	passenger, err := h.Network.Passenger(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, passenger.Info())
}

// BookTicket books a ticket for the passenger
func (h *Handlers) BookTicket(c *gin.Context) {
	var req models.TicketRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passengerID := c.Param("id")
	passenger, vehicle, err := h.Network.BookTicket(c.Request.Context(), passengerID, req.Route, req.Descriptor)
	if err != nil {
		h.ticketFailure(c, passenger, vehicle, err)
		return
	}

	c.JSON(http.StatusOK, ticketResponse(fmt.Sprintf("%s booked: %s", passenger.Name(), req.Descriptor), passenger, vehicle, nil))
}

// CancelTicket cancels the passenger's first matching ticket
func (h *Handlers) CancelTicket(c *gin.Context) {
	var req models.TicketRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passengerID := c.Param("id")
	passenger, vehicle, err := h.Network.CancelTicket(c.Request.Context(), passengerID, req.Route, req.Descriptor)
	if err != nil {
		h.ticketFailure(c, passenger, vehicle, err)
		return
	}

	c.JSON(http.StatusOK, ticketResponse(fmt.Sprintf("%s cancelled: %s", passenger.Name(), req.Descriptor), passenger, vehicle, nil))
}

// ticketFailure reports a failed booking or cancellation with the
// unchanged passenger and vehicle state when they were resolved.
func (h *Handlers) ticketFailure(c *gin.Context, passenger *models.Passenger, vehicle models.Vehicle, err error) {
	log.Debug().Err(err).Str("passenger", c.Param("id")).Msg("Ticket request failed")

	if passenger == nil || vehicle == nil {
		abortWithError(c, err)
		return
	}

	c.JSON(statusFor(err), ticketResponse(err.Error(), passenger, vehicle, err))
}

func ticketResponse(message string, passenger *models.Passenger, vehicle models.Vehicle, err error) models.TicketResponse {
	passengerInfo := passenger.Info()
	vehicleInfo := vehicle.Info()

	return models.TicketResponse{
		Success:   err == nil,
		Code:      services.ErrorCode(err),
		Message:   message,
		Passenger: &passengerInfo,
		Vehicle:   &vehicleInfo,
	}
}
