package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transit-ticketing/models"
	"transit-ticketing/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.Network) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	network, err := services.LoadDefaultSeed(nil)
	require.NoError(t, err)

	router := gin.New()
	New(network).Register(router)
	return router, network
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBookTicket_UntilFull(t *testing.T) {
	router, _ := newTestRouter(t)
	ticket := models.TicketRequest{Route: "Route 01", Descriptor: "Route 01 - 08:00"}

	for i := 0; i < 40; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/passengers/P002/tickets", ticket)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodPost, "/api/passengers/P002/tickets", ticket)
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp models.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VehicleFull", resp.Code)
	require.NotNil(t, resp.Vehicle)
	assert.Equal(t, 40, resp.Vehicle.Passengers)
	require.NotNil(t, resp.Passenger)
	assert.Equal(t, 40, resp.Passenger.TicketCount)
}

func TestCancelTicket(t *testing.T) {
	tests := []struct {
		name         string
		book         bool
		passenger    string
		ticket       models.TicketRequest
		expectStatus int
		expectCode   string
	}{
		{
			name:         "cancels booked ticket",
			book:         true,
			passenger:    "P001",
			ticket:       models.TicketRequest{Route: "Route 01", Descriptor: "Route 01 - 08:00"},
			expectStatus: http.StatusOK,
		},
		{
			name:         "unknown descriptor",
			passenger:    "P001",
			ticket:       models.TicketRequest{Route: "Express Route 02", Descriptor: "Express Route 02 - 08:15"},
			expectStatus: http.StatusNotFound,
			expectCode:   "TicketNotFound",
		},
		{
			name:         "unknown passenger",
			passenger:    "P404",
			ticket:       models.TicketRequest{Route: "Route 01", Descriptor: "Route 01 - 08:00"},
			expectStatus: http.StatusNotFound,
			expectCode:   "NotFound",
		},
		{
			name:         "missing descriptor",
			passenger:    "P001",
			ticket:       models.TicketRequest{Route: "Route 01"},
			expectStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, network := newTestRouter(t)

			if tc.book {
				w := doJSON(t, router, http.MethodPost, "/api/passengers/"+tc.passenger+"/tickets", tc.ticket)
				require.Equal(t, http.StatusOK, w.Code)
			}

			w := doJSON(t, router, http.MethodPost, "/api/passengers/"+tc.passenger+"/tickets/cancel", tc.ticket)
			assert.Equal(t, tc.expectStatus, w.Code, w.Body.String())

			if tc.expectCode != "" {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tc.expectCode, body["code"])
			}

			vehicle, err := network.Vehicle("Route 01")
			require.NoError(t, err)
			assert.Equal(t, 0, vehicle.Passengers())
		})
	}
}

func TestAddStationSchedule_Bound(t *testing.T) {
	router, _ := newTestRouter(t)
	entry := models.ScheduleRequest{Time: "10:04", Action: "departure", Route: "Route 4"}

	for i := 0; i < models.MaxStationSchedules; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/stations/Ben%20Thanh%20Station/schedules", entry)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodPost, "/api/stations/Ben%20Thanh%20Station/schedules", entry)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/stations/Ben%20Thanh%20Station", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var info models.StationInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, models.MaxStationSchedules, info.ScheduleCount)
}

func TestAddStationSchedule_InvalidAction(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/stations/Thu%20Duc%20Station/schedules",
		models.ScheduleRequest{Time: "08:00", Action: "boarding", Route: "Route 01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTravelTime(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		expectStatus int
		expectHours  float64
	}{
		{name: "bus", path: "/api/vehicles/Route%2001/travel-time?distance=100", expectStatus: http.StatusOK, expectHours: 2.0},
		{name: "express", path: "/api/vehicles/Express%20Route%2002/travel-time?distance=100", expectStatus: http.StatusOK, expectHours: 100.0 / 60.0},
		{name: "negative distance", path: "/api/vehicles/Route%2001/travel-time?distance=-50", expectStatus: http.StatusOK, expectHours: -1.0},
		{name: "zero distance", path: "/api/vehicles/Route%2001/travel-time?distance=0", expectStatus: http.StatusOK, expectHours: 0},
		{name: "missing distance", path: "/api/vehicles/Route%2001/travel-time", expectStatus: http.StatusBadRequest},
		{name: "NaN distance", path: "/api/vehicles/Route%2001/travel-time?distance=NaN", expectStatus: http.StatusBadRequest},
		{name: "infinite distance", path: "/api/vehicles/Route%2001/travel-time?distance=Inf", expectStatus: http.StatusBadRequest},
		{name: "negative infinite distance", path: "/api/vehicles/Express%20Route%2002/travel-time?distance=-Inf", expectStatus: http.StatusBadRequest},
		{name: "overflowing distance", path: "/api/vehicles/Route%2001/travel-time?distance=1e400", expectStatus: http.StatusBadRequest},
		{name: "unknown route", path: "/api/vehicles/Route%2099/travel-time?distance=1", expectStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			w := doJSON(t, router, http.MethodGet, tc.path, nil)
			require.Equal(t, tc.expectStatus, w.Code, w.Body.String())
			if tc.expectStatus != http.StatusOK {
				return
			}

			var resp models.TravelTimeResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.InDelta(t, tc.expectHours, resp.Hours, 1e-9)
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectStatus int
	}{
		{name: "unknown entity", err: services.ErrNotFound, expectStatus: http.StatusNotFound},
		{name: "ticket not found", err: models.ErrTicketNotFound, expectStatus: http.StatusNotFound},
		{name: "vehicle full", err: models.ErrVehicleFull, expectStatus: http.StatusConflict},
		{name: "no seats to cancel", err: models.ErrNoSeatsToCancel, expectStatus: http.StatusConflict},
		{name: "schedule list full", err: models.ErrScheduleListFull, expectStatus: http.StatusConflict},
		{name: "already exists", err: services.ErrAlreadyExists, expectStatus: http.StatusConflict},
		{name: "wrapped no seats to cancel", err: fmt.Errorf("failed to cancel %q: %w", "Adult", models.ErrNoSeatsToCancel), expectStatus: http.StatusConflict},
		{name: "wrapped ticket not found", err: fmt.Errorf("failed to cancel: %w", models.ErrTicketNotFound), expectStatus: http.StatusNotFound},
		{name: "invalid action", err: models.ErrInvalidAction, expectStatus: http.StatusBadRequest},
		{name: "invalid speed", err: models.ErrInvalidSpeed, expectStatus: http.StatusBadRequest},
		{name: "invalid capacity", err: models.ErrInvalidCapacity, expectStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectStatus, statusFor(tc.err))
		})
	}
}

func TestCreateEntities(t *testing.T) {
	router, network := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/vehicles", models.VehicleCreateRequest{Route: "Express 9", Capacity: 12, Kind: models.KindExpressBus, Speed: 90})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/vehicles", models.VehicleCreateRequest{Route: "Route 01", Capacity: 5})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/vehicles", models.VehicleCreateRequest{Route: "Route 02", Capacity: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/stations", models.StationCreateRequest{Name: "Cho Lon", Location: "District 5"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/passengers", models.PassengerCreateRequest{Name: "Tran Thi B"})
	require.Equal(t, http.StatusCreated, w.Code)

	var passenger models.PassengerInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &passenger))
	assert.NotEmpty(t, passenger.ID)

	w = doJSON(t, router, http.MethodPost, "/api/vehicles/Express%209/stations", models.AssignStationRequest{Station: "Cho Lon"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/vehicles/Express%209/schedules", models.ScheduleRequest{Time: "07:00", Action: "departure", Route: "Express 9"})
	require.Equal(t, http.StatusCreated, w.Code)

	vehicle, err := network.Vehicle("Express 9")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cho Lon"}, vehicle.AssignedStations())
	assert.Len(t, vehicle.Schedules(), 1)
	assert.Equal(t, 90.0, vehicle.Speed())

	assert.Len(t, network.Stations(), 3)
	assert.Len(t, network.Passengers(), 3)
}

func TestListEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/stations", "/api/vehicles", "/api/passengers"} {
		t.Run(path, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, path, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var items []map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
			assert.Len(t, items, 2)
		})
	}
}
