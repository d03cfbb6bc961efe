package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"transit-ticketing/models"
)

// GetVehicles returns all vehicles
func (h *Handlers) GetVehicles(c *gin.Context) {
	vehicles := h.Network.Vehicles()

	infos := make([]models.VehicleInfo, 0, len(vehicles))
	for _, vehicle := range vehicles {
		infos = append(infos, vehicle.Info())
	}

	c.JSON(http.StatusOK, infos)
}

// CreateVehicle registers a bus or an express bus
func (h *Handlers) CreateVehicle(c *gin.Context) {
	var req models.VehicleCreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.Network.CreateVehicle(req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle.Info())
}

// GetVehicle returns vehicle details by route
func (h *Handlers) GetVehicle(c *gin.Context) {
	vehicle, err := h.Network.Vehicle(c.Param("route"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle.Info())
}

// AssignStation records a station name on the vehicle
func (h *Handlers) AssignStation(c *gin.Context) {
	var req models.AssignStationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.Network.AssignVehicleToStation(c.Param("route"), req.Station)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicle.Info())
}

// AddVehicleSchedule appends to the vehicle's own timetable
func (h *Handlers) AddVehicleSchedule(c *gin.Context) {
	var req models.ScheduleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := models.NewSchedule(req.Time, req.Action, req.Route)
	if err != nil {
		abortWithError(c, err)
		return
	}

	vehicle, err := h.Network.AddVehicleSchedule(c.Param("route"), schedule)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle.Info())
}

// GetTravelTime returns hours needed for ?distance=
func (h *Handlers) GetTravelTime(c *gin.Context) {
	distance, err := strconv.ParseFloat(c.Query("distance"), 64)
	if err != nil || math.IsNaN(distance) || math.IsInf(distance, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid distance: %q", c.Query("distance"))})
		return
	}

	result, err := h.Network.TravelTime(c.Param("route"), distance)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
