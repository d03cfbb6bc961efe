package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit-ticketing/models"
)

// GetStations returns all stations
func (h *Handlers) GetStations(c *gin.Context) {
	stations := h.Network.Stations()

	infos := make([]models.StationInfo, 0, len(stations))
	for _, station := range stations {
		infos = append(infos, station.Info())
	}

	c.JSON(http.StatusOK, infos)
}

// CreateStation registers a new station
func (h *Handlers) CreateStation(c *gin.Context) {
	var req models.StationCreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	station := models.NewStation(req.Name, req.Location)
	if err := h.Network.AddStation(station); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, station.Info())
}

// GetStation returns station details by name
func (h *Handlers) GetStation(c *gin.Context) {
	station, err := h.Network.Station(c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, station.Info())
}

// AddStationSchedule adds an entry to the station's bounded schedule list
func (h *Handlers) AddStationSchedule(c *gin.Context) {
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

	station, err := h.Network.AddStationSchedule(c.Request.Context(), c.Param("name"), schedule)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, station.Info())
}
